package appointment

import (
	"context"
	"time"

	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Huecos libres del estilista dentro del horario comercial del día,
// en pasos de la duración del servicio pedido.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := uc.repo.ListBusyForDay(
		ctx,
		in.StylistID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := domain.DurationFromHours(service.DurationHours)
	if slotDuration <= 0 {
		return []domain.TimeSlot{}, nil
	}

	return domain.FreeSlots(in.Date, slotDuration, busy), nil
}
