package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, id).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("appointment_lines.id ASC")
		}).
		Preload("Lines.Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	ids []uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("appointment_lines.id ASC")
		}).
		Preload("Lines.Service").
		Where("id IN ?", ids).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Lines.Service").
		Where("start_time >= ? AND start_time < ?", start, end)

	if stylistID != 0 {
		q = q.Where("stylist_id = ?", stylistID)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListBusyForDay(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"stylist_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			stylistID, string(domain.StatusCancelled), start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// conflictQuery selecciona las citas no canceladas del estilista que se
// cruzan con el rango [start, end), excluyendo la propia cita. Bloquea
// las filas con FOR UPDATE; por eso pide ids y no un count(*), que
// Postgres rechaza combinado con un lock de filas.
func conflictQuery(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"stylist_id = ? AND id <> ? AND status <> ? AND start_time < ? AND end_time > ?",
			ap.StylistID,
			ap.ID,
			string(domain.StatusCancelled),
			ap.EndTime,
			ap.StartTime,
		)
}

// SaveAppointment crea o actualiza la cita con sus líneas. El chequeo de
// solape corre dentro de la misma transacción; si alguna cita del
// estilista choca, la transacción entera se revierte.
func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if ap.StartTime != nil && ap.EndTime != nil {
			var conflictIDs []uint
			if err := conflictQuery(tx, ap).
				Pluck("id", &conflictIDs).Error; err != nil {
				return err
			}

			if len(conflictIDs) > 0 {
				return domain.ErrSchedulingConflict(ap.Stylist.Name)
			}
		}

		if ap.ID == 0 {
			return tx.Create(ap).Error
		}

		// Las líneas se reemplazan en bloque: son propiedad exclusiva
		// de la cita.
		if err := tx.
			Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentLine{}).Error; err != nil {
			return err
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).
			Save(ap).Error
	})
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
		}).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentLine{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Appointment{}, id).Error
	})
}

// --------------------------------------------------
// Client stats
// --------------------------------------------------

func (r *AppointmentGormRepository) CountCompletedForClient(
	ctx context.Context,
	clientID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"client_id = ? AND status = ?",
			clientID, string(domain.StatusCompleted),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
