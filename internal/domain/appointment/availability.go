package appointment

import (
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

type AvailabilityInput struct {
	StylistID uint
	ServiceID uint
	Date      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots recorre el horario comercial del día en pasos de la duración
// pedida y descarta los huecos que chocan con citas existentes. Las citas
// deben venir ordenadas por fecha de inicio.
func FreeSlots(
	day time.Time,
	slotDuration time.Duration,
	busy []models.Appointment,
) []TimeSlot {

	loc := day.Location()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), OpeningHour, 0, 0, 0, loc)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), ClosingHour, 0, 0, 0, loc)

	var slots []TimeSlot
	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {
		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// Citas que terminan en o antes del inicio del hueco ya no
		// pueden chocar con este ni con los siguientes.
		for apIdx < len(busy) && busy[apIdx].EndTime != nil && !busy[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		for i := apIdx; i < len(busy); i++ {
			ap := busy[i]
			if ap.StartTime == nil || ap.EndTime == nil {
				continue
			}
			if !ap.StartTime.Before(slotEnd) {
				break
			}
			if Overlaps(slotStart, slotEnd, *ap.StartTime, *ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots
}
