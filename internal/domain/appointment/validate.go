package appointment

import "time"

// ===============================
// Validations
// ===============================

// Overlaps aplica el test de intervalos semiabiertos:
// dos citas que solo se tocan en el borde no chocan.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

const (
	OpeningHour = 8
	ClosingHour = 20
)

// CheckBusinessHours valida la cita contra el horario comercial
// [08:00, 20:00] en la zona horaria indicada. Terminar a las 20:00 en
// punto es válido; a las 20:01 ya no. Si falta alguna de las dos fechas
// no hay nada que validar.
func CheckBusinessHours(loc *time.Location, start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}

	localStart := start.In(loc)
	localEnd := end.In(loc)

	startHour := localStart.Hour()
	endHour := localEnd.Hour()
	endMinute := localEnd.Minute()

	if startHour < OpeningHour || endHour > ClosingHour ||
		(endHour == ClosingHour && endMinute > 0) {
		return ErrBusinessHours(localStart, localEnd)
	}

	return nil
}
