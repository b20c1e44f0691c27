package models

import "time"

// Servicio del catálogo. La duración se expresa en horas decimales
// (0.5 = media hora) y se usa para calcular el fin de la cita.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string  `gorm:"size:100;not null" json:"name"`
	Price         float64 `gorm:"not null" json:"price"`
	DurationHours float64 `gorm:"not null;default:0.5" json:"duration_hours"`
	Category      string  `gorm:"size:50" json:"category"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
