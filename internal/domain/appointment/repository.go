package appointment

import (
	"context"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Stylist --------
	GetStylist(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		ids []uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListBusyForDay(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	// SaveAppointment persiste la cita y sus líneas dentro de una
	// transacción que incluye el chequeo de solape del estilista.
	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Client stats --------
	CountCompletedForClient(
		ctx context.Context,
		clientID uint,
	) (int64, error)
}
