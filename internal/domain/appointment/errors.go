package appointment

import (
	"fmt"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
)

const (
	CodeSchedulingConflict    = "scheduling_conflict"
	CodeBusinessHoursViolated = "business_hours_violation"
	CodeEmptyAppointment      = "empty_appointment"
)

// ErrSchedulingConflict: el estilista ya tiene otra cita en ese rango.
func ErrSchedulingConflict(stylistName string) error {
	return httperr.ErrBusinessMsg(
		CodeSchedulingConflict,
		fmt.Sprintf(
			"¡CONFLICTO! El estilista %s ya tiene una cita en ese horario.",
			stylistName,
		),
	)
}

// ErrBusinessHours: la cita cae fuera del horario comercial.
// start y end ya vienen convertidos a hora local.
func ErrBusinessHours(start, end time.Time) error {
	return httperr.ErrBusinessMsg(
		CodeBusinessHoursViolated,
		fmt.Sprintf(
			"¡Horario no válido! El horario comercial es de 08:00 a 20:00 (Hora de España). "+
				"Estás intentando guardar una cita de %s a %s.",
			start.Format("15:04"),
			end.Format("15:04"),
		),
	)
}

// ErrEmptyAppointment: no se puede confirmar una cita sin servicios.
func ErrEmptyAppointment() error {
	return httperr.ErrBusinessMsg(
		CodeEmptyAppointment,
		"No puedes confirmar una cita vacía. Añade servicios primero.",
	)
}
