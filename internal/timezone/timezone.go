package timezone

import (
	"sync"
	"time"
)

// Todas las citas se validan contra la hora de España peninsular.
// Las fechas se almacenan en UTC y solo se convierten para validar
// y para mostrar.
const BusinessTimezone = "Europe/Madrid"

var (
	businessOnce sync.Once
	businessLoc  *time.Location
)

func Business() *time.Location {
	businessOnce.Do(func() {
		loc, err := time.LoadLocation(BusinessTimezone)
		if err != nil {
			businessLoc = time.UTC
			return
		}
		businessLoc = loc
	})
	return businessLoc
}

func Now() time.Time {
	return time.Now().In(Business())
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Business())
}

func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		Business(),
	)
}
