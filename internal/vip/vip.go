package vip

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Un cliente es VIP a partir de cinco citas realizadas.
const Threshold = 5

func IsVIP(count int64) bool {
	return count >= Threshold
}

type Stats struct {
	CompletedAppointmentCount int64 `json:"completed_appointment_count"`
	IsVIP                     bool  `json:"is_vip"`
}

type Counter interface {
	CountCompletedForClient(ctx context.Context, clientID uint) (int64, error)
}

// Service calcula las estadísticas VIP bajo demanda. El contador se
// apoya en Redis con un TTL corto; las transiciones de estado de cita
// invalidan la entrada para que el valor converja tras cada commit.
type Service struct {
	counter Counter
	rdb     *redis.Client
	ttl     time.Duration
}

func NewService(counter Counter, rdb *redis.Client) *Service {
	return &Service{
		counter: counter,
		rdb:     rdb,
		ttl:     5 * time.Minute,
	}
}

func cacheKey(clientID uint) string {
	return fmt.Sprintf("vip:client:%d", clientID)
}

func (s *Service) Stats(ctx context.Context, clientID uint) (Stats, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey(clientID)).Result(); err == nil {
			if count, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return Stats{
					CompletedAppointmentCount: count,
					IsVIP:                     IsVIP(count),
				}, nil
			}
		}
	}

	count, err := s.counter.CountCompletedForClient(ctx, clientID)
	if err != nil {
		return Stats{}, err
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, cacheKey(clientID), count, s.ttl)
	}

	return Stats{
		CompletedAppointmentCount: count,
		IsVIP:                     IsVIP(count),
	}, nil
}

func (s *Service) Invalidate(ctx context.Context, clientID uint) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, cacheKey(clientID))
}
