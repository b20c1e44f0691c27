package appointment

import (
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Las acciones de flujo aplican a conjuntos de citas: los casos de uso
// las ejecutan en bucle, una a una, sin atomicidad entre elementos.
// Solo confirmar tiene guarda; el resto son transiciones incondicionales,
// incluido volver a borrador desde cualquier estado.

func Confirm(ap *models.Appointment) error {
	if len(ap.Lines) == 0 {
		return ErrEmptyAppointment()
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
}

func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}

func ResetToDraft(ap *models.Appointment) {
	ap.Status = string(StatusDraft)
	ap.CancelledAt = nil
	ap.CompletedAt = nil
}
