package appointment

import (
	"context"
	"testing"

	domain "github.com/StyleHubServices/salon-scheduler/internal/domain/appointment"
	"github.com/StyleHubServices/salon-scheduler/internal/httperr"
)

func TestUpdateAppointment_KeepsLinePrices(t *testing.T) {
	repo := seedRepo()

	created, err := NewCreateAppointment(repo, nil).Execute(context.Background(), 1, CreateAppointmentInput{
		ClientID:  1,
		StylistID: 1,
		Date:      "2026-04-14",
		Time:      "10:00",
		Lines:     []LineInput{{ServiceID: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// El catálogo sube de precio después de crear la cita
	svc := repo.services[1]
	svc.Price = 30
	repo.services[1] = svc

	notes := "prefiere por la tarde"
	updated, err := NewUpdateAppointment(repo, nil).Execute(context.Background(), 1, created.ID, UpdateAppointmentInput{
		Notes: &notes,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Lines[0].Price != 15 {
		t.Fatalf("line price should stay at 15, got %v", updated.Lines[0].Price)
	}
	if updated.Notes != notes {
		t.Fatalf("notes not applied: %q", updated.Notes)
	}
}

func TestUpdateAppointment_ReplaceLinesRecomputes(t *testing.T) {
	repo := seedRepo()

	created, err := NewCreateAppointment(repo, nil).Execute(context.Background(), 1, CreateAppointmentInput{
		ClientID:  1,
		StylistID: 1,
		Date:      "2026-04-14",
		Time:      "10:00",
		Lines:     []LineInput{{ServiceID: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	lines := []LineInput{{ServiceID: 1}, {ServiceID: 2}}
	updated, err := NewUpdateAppointment(repo, nil).Execute(context.Background(), 1, created.ID, UpdateAppointmentInput{
		Lines: &lines,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.DisplayName != "Corte, Lavado - Juan Pérez" {
		t.Fatalf("unexpected display name: %q", updated.DisplayName)
	}
	if updated.TotalPrice != 20 {
		t.Fatalf("expected total 20, got %v", updated.TotalPrice)
	}
	if got := updated.EndTime.Sub(*updated.StartTime); got.Minutes() != 45 {
		t.Fatalf("expected 45m duration, got %v", got)
	}
}

func TestUpdateAppointment_RescheduleValidatesHours(t *testing.T) {
	repo := seedRepo()

	created, err := NewCreateAppointment(repo, nil).Execute(context.Background(), 1, CreateAppointmentInput{
		ClientID:  1,
		StylistID: 1,
		Date:      "2026-04-14",
		Time:      "10:00",
		Lines:     []LineInput{{ServiceID: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	date, hour := "2026-04-14", "21:00"
	_, err = NewUpdateAppointment(repo, nil).Execute(context.Background(), 1, created.ID, UpdateAppointmentInput{
		Date: &date,
		Time: &hour,
	})
	if err == nil {
		t.Fatal("expected business hours violation")
	}
	if !httperr.IsBusiness(err, domain.CodeBusinessHoursViolated) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateAppointment_RescheduleNeedsDateAndTime(t *testing.T) {
	repo := seedRepo()

	created, err := NewCreateAppointment(repo, nil).Execute(context.Background(), 1, CreateAppointmentInput{
		ClientID:  1,
		StylistID: 1,
		Date:      "2026-04-14",
		Time:      "10:00",
		Lines:     []LineInput{{ServiceID: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	date := "2026-04-15"
	hour := "11:00"

	cases := []struct {
		name string
		in   UpdateAppointmentInput
	}{
		{"only date", UpdateAppointmentInput{Date: &date}},
		{"only time", UpdateAppointmentInput{Time: &hour}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUpdateAppointment(repo, nil).Execute(context.Background(), 1, created.ID, tc.in)
			if err == nil {
				t.Fatal("expected error for partial reschedule")
			}
			if !httperr.IsBusiness(err, "invalid_date_or_time") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	stored, err := repo.GetAppointment(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.StartTime.Equal(*created.StartTime) {
		t.Fatal("start time should not change on rejected reschedule")
	}
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	repo := seedRepo()

	_, err := NewUpdateAppointment(repo, nil).Execute(context.Background(), 1, 99, UpdateAppointmentInput{})
	if err == nil {
		t.Fatal("expected error for unknown appointment")
	}
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("unexpected error: %v", err)
	}
}
