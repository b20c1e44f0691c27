package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo guarda todo en memoria y reproduce en SaveAppointment el
// mismo chequeo de solape que la implementación de gorm.
type fakeRepo struct {
	services     map[uint]models.Service
	stylists     map[uint]models.Stylist
	clients      map[uint]models.Client
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uint]models.Service{},
		stylists:     map[uint]models.Stylist{},
		clients:      map[uint]models.Client{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (r *fakeRepo) GetStylist(_ context.Context, id uint) (*models.Stylist, error) {
	s, ok := r.stylists[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errNotFound
	}
	return &c, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, ids []uint) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(ids))
	for _, id := range ids {
		if ap, ok := r.appointments[id]; ok {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, stylistID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if stylistID != 0 && ap.StylistID != stylistID {
			continue
		}
		if ap.StartTime != nil && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBusyForDay(ctx context.Context, stylistID uint, start, end time.Time) ([]models.Appointment, error) {
	aps, _ := r.ListAppointmentsForPeriod(ctx, stylistID, start, end)
	var out []models.Appointment
	for _, ap := range aps {
		if ap.Status != string(domain.StatusCancelled) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.StartTime != nil && ap.EndTime != nil {
		for _, other := range r.appointments {
			if other.ID == ap.ID ||
				other.StylistID != ap.StylistID ||
				other.Status == string(domain.StatusCancelled) ||
				other.StartTime == nil || other.EndTime == nil {
				continue
			}
			if domain.Overlaps(*ap.StartTime, *ap.EndTime, *other.StartTime, *other.EndTime) {
				return domain.ErrSchedulingConflict(ap.Stylist.Name)
			}
		}
	}

	if ap.ID == 0 {
		ap.ID = r.nextID
		r.nextID++
	}

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, ap *models.Appointment) error {
	stored, ok := r.appointments[ap.ID]
	if !ok {
		return errNotFound
	}
	stored.Status = ap.Status
	stored.CancelledAt = ap.CancelledAt
	stored.CompletedAt = ap.CompletedAt
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) CountCompletedForClient(_ context.Context, clientID uint) (int64, error) {
	var count int64
	for _, ap := range r.appointments {
		if ap.ClientID == clientID && ap.Status == string(domain.StatusCompleted) {
			count++
		}
	}
	return count, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
