package service

import (
	"math"
	"time"

	"github.com/ds124wfegd/eventease/internal/entity"
)

type HealthService struct {
	started time.Time
	since   func(time.Time) time.Duration
}

func NewHealthService() *HealthService {
	return &HealthService{
		started: time.Now(),
		since:   time.Since,
	}
}

// Check reports liveness and uptime in seconds, rounded to two decimals.
func (s *HealthService) Check() entity.Health {
	uptime := s.since(s.started).Seconds()
	return entity.Health{
		OK:     true,
		Uptime: math.Round(uptime*100) / 100,
	}
}
