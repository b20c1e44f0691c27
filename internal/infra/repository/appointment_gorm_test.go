package repository

import (
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/StyleHubServices/salon-scheduler/internal/models"
)

// Postgres rechaza FOR UPDATE sobre agregados ("FOR UPDATE is not
// allowed with aggregate functions"), así que el chequeo de solape tiene
// que bloquear filas, nunca un count(*).
func TestConflictQueryLocksRowsNotAggregates(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	start := time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	ap := &models.Appointment{
		ID:        7,
		StylistID: 3,
		StartTime: &start,
		EndTime:   &end,
	}

	var ids []uint
	stmt := conflictQuery(db, ap).Pluck("id", &ids).Statement

	sql := strings.ToLower(stmt.SQL.String())

	if !strings.Contains(sql, "for update") {
		t.Fatalf("conflict query must lock the rows it checks: %q", sql)
	}
	if strings.Contains(sql, "count(") {
		t.Fatalf("conflict query must not aggregate under a row lock: %q", sql)
	}

	for _, want := range []string{"stylist_id", "start_time <", "end_time >"} {
		if !strings.Contains(sql, want) {
			t.Fatalf("conflict query %q missing %q", sql, want)
		}
	}
}
