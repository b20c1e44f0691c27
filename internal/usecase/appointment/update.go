package appointment

import (
	"context"

	"github.com/StyleHubServices/salon-scheduler/internal/audit"
	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
	"github.com/StyleHubServices/salon-scheduler/internal/timezone"
)

type UpdateAppointmentInput struct {
	ClientID  *uint
	StylistID *uint

	// Ambos campos juntos para reprogramar (hora local Europe/Madrid)
	Date *string
	Time *string

	Notes *string

	// nil = conservar líneas; lista (incluso vacía) = reemplazarlas
	Lines *[]LineInput
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.ClientID != nil {
		client, err := uc.repo.GetClient(ctx, *in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		ap.ClientID = client.ID
		ap.Client = *client
	}

	if in.StylistID != nil {
		stylist, err := uc.repo.GetStylist(ctx, *in.StylistID)
		if err != nil {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}
		ap.StylistID = stylist.ID
		ap.Stylist = *stylist
	}

	// Reprogramar exige fecha y hora juntas
	if (in.Date != nil) != (in.Time != nil) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if in.Date != nil && in.Time != nil {
		local, err := timezone.ParseDateTime(*in.Date, *in.Time)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		start := local.UTC()
		ap.StartTime = &start
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	// Las líneas se reescriben siempre en bloque: o las nuevas de la
	// petición, o las existentes regeneradas con su precio ya fijado.
	lineInputs := make([]LineInput, 0, len(ap.Lines))
	if in.Lines != nil {
		lineInputs = *in.Lines
	} else {
		for _, line := range ap.Lines {
			price := line.Price
			lineInputs = append(lineInputs, LineInput{
				ServiceID: line.ServiceID,
				Price:     &price,
			})
		}
	}

	lines, err := buildLines(ctx, uc.repo, ap.ID, lineInputs)
	if err != nil {
		return nil, err
	}
	ap.Lines = lines

	domain.Recompute(ap)

	if err := domain.CheckBusinessHours(
		timezone.Business(),
		ap.StartTime,
		ap.EndTime,
	); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
