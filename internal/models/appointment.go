package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StylistID uint    `json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'draft'" json:"status"`

	// Derivados, recalculados en cada mutación antes de validar
	DisplayName string  `gorm:"size:255" json:"display_name"`
	TotalPrice  float64 `json:"total_price"`

	// Las líneas pertenecen a la cita: borrar la cita borra sus líneas
	Lines []AppointmentLine `gorm:"constraint:OnDelete:CASCADE;" json:"lines"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Una línea une la cita con un servicio del catálogo; el precio se
// copia del catálogo al elegir el servicio y después es editable.
type AppointmentLine struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"not null" json:"appointment_id"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Price float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
