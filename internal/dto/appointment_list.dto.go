package dto

import "time"

type AppointmentListDTO struct {
	ID          uint       `json:"id"`
	DisplayName string     `json:"display_name"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `json:"status"`
	ClientName  string     `json:"client_name"`
	StylistName string     `json:"stylist_name"`
	TotalPrice  float64    `json:"total_price"`
}
