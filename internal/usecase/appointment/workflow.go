package appointment

import (
	"context"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/audit"
	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
	"github.com/StyleHubServices/salon-scheduler/internal/timezone"
	"github.com/StyleHubServices/salon-scheduler/internal/vip"
)

// Workflow aplica las transiciones de estado sobre conjuntos de citas.
// Cada cita se procesa y persiste por separado: si una falla, las ya
// procesadas quedan como están.
type Workflow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	vip   *vip.Service
}

func NewWorkflow(
	repo domain.Repository,
	audit *audit.Dispatcher,
	vip *vip.Service,
) *Workflow {
	return &Workflow{
		repo:  repo,
		audit: audit,
		vip:   vip,
	}
}

func (uc *Workflow) Confirm(
	ctx context.Context,
	userID uint,
	ids []uint,
) ([]models.Appointment, error) {

	return uc.apply(ctx, userID, ids, "appointment_confirmed",
		func(ap *models.Appointment, _ time.Time) error {
			return domain.Confirm(ap)
		})
}

func (uc *Workflow) Complete(
	ctx context.Context,
	userID uint,
	ids []uint,
) ([]models.Appointment, error) {

	return uc.apply(ctx, userID, ids, "appointment_completed",
		func(ap *models.Appointment, now time.Time) error {
			domain.Complete(ap, now)
			return nil
		})
}

func (uc *Workflow) Cancel(
	ctx context.Context,
	userID uint,
	ids []uint,
) ([]models.Appointment, error) {

	return uc.apply(ctx, userID, ids, "appointment_cancelled",
		func(ap *models.Appointment, now time.Time) error {
			domain.Cancel(ap, now)
			return nil
		})
}

func (uc *Workflow) ResetToDraft(
	ctx context.Context,
	userID uint,
	ids []uint,
) ([]models.Appointment, error) {

	return uc.apply(ctx, userID, ids, "appointment_reset_to_draft",
		func(ap *models.Appointment, _ time.Time) error {
			domain.ResetToDraft(ap)
			return nil
		})
}

func (uc *Workflow) apply(
	ctx context.Context,
	userID uint,
	ids []uint,
	action string,
	transition func(*models.Appointment, time.Time) error,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListAppointments(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	out := make([]models.Appointment, 0, len(aps))

	for i := range aps {
		ap := &aps[i]

		if err := transition(ap, now); err != nil {
			return out, err
		}

		if err := uc.repo.UpdateStatus(ctx, ap); err != nil {
			return out, err
		}

		// El contador VIP del cliente depende del estado de sus citas
		uc.vip.Invalidate(ctx, ap.ClientID)

		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   action,
			Entity:   "appointment",
			EntityID: &ap.ID,
		})

		out = append(out, *ap)
	}

	return out, nil
}
