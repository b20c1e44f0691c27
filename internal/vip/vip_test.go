package vip

import (
	"context"
	"errors"
	"testing"
)

type fakeCounter struct {
	counts map[uint]int64
	calls  int
}

func (f *fakeCounter) CountCompletedForClient(_ context.Context, clientID uint) (int64, error) {
	f.calls++
	count, ok := f.counts[clientID]
	if !ok {
		return 0, errors.New("unknown client")
	}
	return count, nil
}

func TestStats_Threshold(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 5, 2: 4, 3: 0}}
	svc := NewService(counter, nil)

	cases := []struct {
		clientID uint
		count    int64
		vip      bool
	}{
		{1, 5, true},
		{2, 4, false},
		{3, 0, false},
	}

	for _, tc := range cases {
		stats, err := svc.Stats(context.Background(), tc.clientID)
		if err != nil {
			t.Fatalf("client %d: %v", tc.clientID, err)
		}
		if stats.CompletedAppointmentCount != tc.count {
			t.Fatalf("client %d: expected count %d, got %d", tc.clientID, tc.count, stats.CompletedAppointmentCount)
		}
		if stats.IsVIP != tc.vip {
			t.Fatalf("client %d: expected vip=%v", tc.clientID, tc.vip)
		}
	}
}

func TestStats_CounterError(t *testing.T) {
	svc := NewService(&fakeCounter{counts: map[uint]int64{}}, nil)

	if _, err := svc.Stats(context.Background(), 99); err == nil {
		t.Fatal("expected error for unknown client")
	}
}

func TestInvalidate_NoCacheIsNoop(t *testing.T) {
	svc := NewService(&fakeCounter{counts: map[uint]int64{}}, nil)
	svc.Invalidate(context.Background(), 1)
}
