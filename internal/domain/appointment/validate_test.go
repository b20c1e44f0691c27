package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC)
	at := func(m int) time.Time { return base.Add(time.Duration(m) * time.Minute) }

	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"contained", at(0), at(60), at(30), at(90), true},
		{"identical", at(0), at(60), at(0), at(60), true},
		{"inside", at(0), at(60), at(15), at(45), true},
		{"touching end", at(0), at(60), at(60), at(120), false},
		{"touching start", at(60), at(120), at(0), at(60), false},
		{"disjoint", at(0), at(60), at(90), at(120), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheckBusinessHours(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skip("tzdata not available")
	}

	at := func(hour, min int) *time.Time {
		ts := time.Date(2026, 4, 14, hour, min, 0, 0, madrid).UTC()
		return &ts
	}

	cases := []struct {
		name       string
		start, end *time.Time
		wantErr    bool
	}{
		{"mid morning", at(10, 0), at(10, 45), false},
		{"opens exactly", at(8, 0), at(9, 0), false},
		{"closes exactly", at(19, 0), at(20, 0), false},
		{"before opening", at(7, 59), at(9, 0), true},
		{"ends past closing", at(19, 30), at(20, 1), true},
		{"ends well past closing", at(20, 0), at(21, 0), true},
		{"unset start", nil, at(10, 0), false},
		{"unset end", at(10, 0), nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckBusinessHours(madrid, tc.start, tc.end)
			if tc.wantErr && err == nil {
				t.Fatal("expected business hours violation")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !httperr.IsBusiness(err, CodeBusinessHoursViolated) {
				t.Fatalf("unexpected error code: %v", err)
			}
		})
	}
}

func TestCheckBusinessHours_MessageCarriesLocalTimes(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skip("tzdata not available")
	}

	start := time.Date(2026, 4, 14, 7, 30, 0, 0, madrid).UTC()
	end := time.Date(2026, 4, 14, 8, 15, 0, 0, madrid).UTC()

	err = CheckBusinessHours(madrid, &start, &end)
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	for _, want := range []string{"07:30", "08:15", "08:00 a 20:00"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}
