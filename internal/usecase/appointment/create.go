package appointment

import (
	"context"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/audit"
	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
	"github.com/StyleHubServices/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	StylistID uint

	// Fecha y hora locales (Europe/Madrid). Vacías = ahora.
	Date string
	Time string

	Notes string
	Lines []LineInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	stylist, err := uc.repo.GetStylist(ctx, in.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}

	var start time.Time
	if in.Date == "" && in.Time == "" {
		start = time.Now().UTC()
	} else {
		local, err := timezone.ParseDateTime(in.Date, in.Time)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		start = local.UTC()
	}

	lines, err := buildLines(ctx, uc.repo, 0, in.Lines)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:  client.ID,
		Client:    *client,
		StylistID: stylist.ID,
		Stylist:   *stylist,
		StartTime: &start,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
		Lines:     lines,
	}

	domain.Recompute(ap)

	if err := domain.CheckBusinessHours(
		timezone.Business(),
		ap.StartTime,
		ap.EndTime,
	); err != nil {
		return nil, err
	}

	// El solape se comprueba dentro de la transacción de guardado.
	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
