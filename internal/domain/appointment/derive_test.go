package appointment

import (
	"testing"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

func mkAppointment(clientName string, start *time.Time, lines ...models.AppointmentLine) *models.Appointment {
	ap := &models.Appointment{
		StartTime: start,
		Lines:     lines,
	}
	if clientName != "" {
		ap.ClientID = 1
		ap.Client = models.Client{ID: 1, Name: clientName}
	}
	return ap
}

func mkLine(serviceName string, price, durationHours float64) models.AppointmentLine {
	return models.AppointmentLine{
		Service: models.Service{Name: serviceName, Price: price, DurationHours: durationHours},
		Price:   price,
	}
}

func TestRecompute_CorteLavado(t *testing.T) {
	start := time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC)

	ap := mkAppointment("Juan Pérez", &start,
		mkLine("Corte", 15, 0.5),
		mkLine("Lavado", 5, 0.25),
	)

	Recompute(ap)

	if ap.DisplayName != "Corte, Lavado - Juan Pérez" {
		t.Fatalf("unexpected display name: %q", ap.DisplayName)
	}

	if ap.TotalPrice != 20 {
		t.Fatalf("expected total 20, got %v", ap.TotalPrice)
	}

	wantEnd := time.Date(2026, 4, 14, 10, 45, 0, 0, time.UTC)
	if ap.EndTime == nil || !ap.EndTime.Equal(wantEnd) {
		t.Fatalf("expected end 10:45, got %v", ap.EndTime)
	}
}

func TestDisplayName_NoLines(t *testing.T) {
	ap := mkAppointment("Ana López", nil)

	if got := DisplayName(ap); got != "Sin servicios - Ana López" {
		t.Fatalf("unexpected display name: %q", got)
	}
}

func TestDisplayName_NoClient(t *testing.T) {
	ap := mkAppointment("", nil, mkLine("Corte", 15, 0.5))

	if got := DisplayName(ap); got != "Nueva Cita" {
		t.Fatalf("unexpected display name: %q", got)
	}
}

func TestTotalPrice_NoLines(t *testing.T) {
	ap := mkAppointment("Ana López", nil)

	if got := TotalPrice(ap); got != 0 {
		t.Fatalf("expected 0 for zero lines, got %v", got)
	}
}

func TestEndTime_NoStart(t *testing.T) {
	ap := mkAppointment("Ana López", nil, mkLine("Corte", 15, 0.5))

	if got := EndTime(ap); got != nil {
		t.Fatalf("expected nil end time without start, got %v", got)
	}
}

// Una cita que cruza el cambio de hora dura lo que suman sus servicios,
// medido en tiempo real, no en hora de pared.
func TestEndTime_AcrossDSTChange(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 29 de marzo de 2026: a las 02:00 CET se salta a las 03:00 CEST
	start := time.Date(2026, 3, 29, 1, 30, 0, 0, madrid).UTC()
	ap := mkAppointment("Ana López", &start, mkLine("Tinte", 40, 1))

	end := EndTime(ap)
	if end == nil {
		t.Fatal("expected end time")
	}

	if got := end.Sub(start); got != time.Hour {
		t.Fatalf("expected 1h elapsed, got %v", got)
	}
}

func TestDurationFromHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  time.Duration
	}{
		{0.25, 15 * time.Minute},
		{0.5, 30 * time.Minute},
		{0.75, 45 * time.Minute},
		{1.5, 90 * time.Minute},
		{0, 0},
	}

	for _, tc := range cases {
		if got := DurationFromHours(tc.hours); got != tc.want {
			t.Errorf("DurationFromHours(%v) = %v, want %v", tc.hours, got, tc.want)
		}
	}
}
