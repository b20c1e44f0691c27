package models

import "time"

type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`

	PortraitURL string `gorm:"size:500" json:"portrait_url"`

	Active bool `gorm:"default:true" json:"active"`

	Appointments []Appointment `gorm:"foreignKey:StylistID" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
