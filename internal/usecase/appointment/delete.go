package appointment

import (
	"context"

	"github.com/StyleHubServices/salon-scheduler/internal/audit"
	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Borrar la cita arrastra sus líneas: el agregado es el dueño exclusivo.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
