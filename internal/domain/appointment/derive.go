package appointment

import (
	"math"
	"strings"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

// ===============================
// Derived fields
// ===============================
//
// DisplayName, TotalPrice y EndTime se recalculan de forma síncrona en
// cada mutación (alta, edición de líneas, cambio de fecha) antes de
// ejecutar las validaciones. Las líneas deben traer el Service cargado.

// Recompute actualiza los tres campos derivados de la cita.
func Recompute(ap *models.Appointment) {
	ap.DisplayName = DisplayName(ap)
	ap.TotalPrice = TotalPrice(ap)
	ap.EndTime = EndTime(ap)
}

// DisplayName une los nombres de los servicios con el cliente.
// Ejemplo: "Corte, Lavado - Juan Pérez"
func DisplayName(ap *models.Appointment) string {
	if ap.ClientID == 0 && ap.Client.ID == 0 {
		return "Nueva Cita"
	}

	names := make([]string, 0, len(ap.Lines))
	for _, line := range ap.Lines {
		names = append(names, line.Service.Name)
	}

	services := "Sin servicios"
	if len(names) > 0 {
		services = strings.Join(names, ", ")
	}

	return services + " - " + ap.Client.Name
}

// TotalPrice suma el precio de todas las líneas.
func TotalPrice(ap *models.Appointment) float64 {
	var total float64
	for _, line := range ap.Lines {
		total += line.Price
	}
	return total
}

// EndTime suma la duración (en horas) de todos los servicios a la fecha
// de inicio. Aritmética de tiempo absoluto: cruzar un cambio de hora DST
// no estira ni encoge la cita.
func EndTime(ap *models.Appointment) *time.Time {
	if ap.StartTime == nil {
		return nil
	}

	var hours float64
	for _, line := range ap.Lines {
		hours += line.Service.DurationHours
	}

	end := ap.StartTime.Add(DurationFromHours(hours))
	return &end
}

// DurationFromHours redondea al segundo para que 0.25h sean
// exactamente 15 minutos.
func DurationFromHours(hours float64) time.Duration {
	return time.Duration(math.Round(hours*3600)) * time.Second
}
