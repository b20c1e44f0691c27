package appointment

import (
	"testing"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

func TestFreeSlots_SkipsBusyRanges(t *testing.T) {
	day := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)

	busyStart := day.Add(9 * time.Hour)
	busyEnd := day.Add(10 * time.Hour)
	busy := []models.Appointment{
		{StartTime: &busyStart, EndTime: &busyEnd},
	}

	slots := FreeSlots(day, time.Hour, busy)

	// 12 horas de apertura menos la hora ocupada
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(slots))
	}

	if slots[0].Start != "08:00" || slots[0].End != "09:00" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}

	for _, s := range slots {
		if s.Start == "09:00" {
			t.Fatal("09:00 should be busy")
		}
	}

	last := slots[len(slots)-1]
	if last.End != "20:00" {
		t.Fatalf("expected last slot to end at closing, got %+v", last)
	}
}

// Una cita que termina justo donde empieza el hueco no debe ocultar
// otra posterior que sí se cruza con él.
func TestFreeSlots_BoundaryEndDoesNotMaskLaterOverlap(t *testing.T) {
	day := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)

	firstStart := day.Add(9 * time.Hour)
	firstEnd := day.Add(10 * time.Hour)
	secondStart := day.Add(10*time.Hour + 30*time.Minute)
	secondEnd := day.Add(10*time.Hour + 45*time.Minute)

	busy := []models.Appointment{
		{StartTime: &firstStart, EndTime: &firstEnd},
		{StartTime: &secondStart, EndTime: &secondEnd},
	}

	slots := FreeSlots(day, time.Hour, busy)

	for _, s := range slots {
		if s.Start == "09:00" || s.Start == "10:00" {
			t.Fatalf("slot %s-%s should be busy", s.Start, s.End)
		}
	}

	// 12 horas de apertura menos las dos ocupadas
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}
}

func TestFreeSlots_EmptyDay(t *testing.T) {
	day := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)

	slots := FreeSlots(day, 30*time.Minute, nil)
	if len(slots) != 24 {
		t.Fatalf("expected 24 half-hour slots, got %d", len(slots))
	}
}
