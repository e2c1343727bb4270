package service

import (
	"context"
	"time"

	"home_security/internal/logger"
	"home_security/internal/models"
	"home_security/internal/repository"
)

// Gateway is the feed-service surface the services depend on. Implemented by
// feeds.Client; mocked in tests. Every method makes at most one upstream
// attempt and returns an error instead of swallowing failures — the services
// own the collapse-to-null policy.
type Gateway interface {
	Latest(ctx context.Context, sensor string) (models.Sample, error)
	Append(ctx context.Context, sensor, value string) error
	Range(ctx context.Context, sensor, start, end string) ([]models.Sample, error)
}

// Live assembles the latest values across the dashboard sensors.
type Live interface {
	Snapshot(ctx context.Context) models.LiveSnapshot
}

// History serves per-sensor time series for one UTC calendar day.
type History interface {
	Series(ctx context.Context, sensor, date string) (models.TimeSeries, error)
}

// Security serves intrusion history and the current system status.
type Security interface {
	Intrusions(ctx context.Context, date string) []models.IntrusionEvent
	Status(ctx context.Context) models.SystemStatus
}

// Control forwards device commands to the actuator feeds.
type Control interface {
	Set(ctx context.Context, device, value string) (bool, error)
}

// Recorder mirrors motion transitions into the local intrusion log.
// Stop via context cancellation in main() for graceful shutdown.
type Recorder interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Live
	History
	Security
	Control
	Recorder
}

// NewService wires the feed gateway and the local event log into concrete
// services. repos may be nil when no local database is configured; the
// degraded-mode intrusion fallback is then disabled.
func NewService(gw Gateway, repos *repository.Repository, log *logger.Logger) *Service {
	var intrusionLog repository.IntrusionLog
	if repos != nil {
		intrusionLog = repos.Intrusions
	}
	return &Service{
		Live:     NewLiveService(gw, log),
		History:  NewHistoryService(gw, log),
		Security: NewSecurityService(gw, intrusionLog, log),
		Control:  NewControlService(gw),
		Recorder: NewRecorderService(gw, intrusionLog, log),
	}
}
