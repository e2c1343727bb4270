package service

import (
	"context"
	"time"

	"home_security/internal/logger"
	"home_security/internal/models"
	"home_security/internal/repository"
)

// RecorderService populates the local intrusion log by watching the motion
// feed for off-to-on transitions. It exists so the degraded-mode fallback has
// content when the upstream later becomes unreachable; it is best effort and
// never affects request handling.
type RecorderService struct {
	gw           Gateway
	intrusionLog repository.IntrusionLog
	log          *logger.Logger

	lastValue string
}

func NewRecorderService(gw Gateway, intrusionLog repository.IntrusionLog, log *logger.Logger) *RecorderService {
	return &RecorderService{gw: gw, intrusionLog: intrusionLog, log: log}
}

// Run polls the motion feed at the given interval until ctx is canceled.
// Read faults are skipped; only a 0->1 transition appends an event.
func (s *RecorderService) Run(ctx context.Context, tick time.Duration) {
	if s.intrusionLog == nil {
		return
	}

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.observe(ctx)
		}
	}
}

func (s *RecorderService) observe(ctx context.Context) {
	sample, err := s.gw.Latest(ctx, models.SensorMotion)
	if err != nil {
		if s.log != nil {
			s.log.Infow("recorder_read_failed", "err", err)
		}
		return
	}

	prev := s.lastValue
	s.lastValue = sample.Value

	if sample.Value != models.OnValue || prev == models.OnValue {
		return
	}

	event := models.IntrusionEvent{Timestamp: sample.CreatedAt, Details: IntrusionDetails}
	if err := s.intrusionLog.Append(ctx, event); err != nil {
		if s.log != nil {
			s.log.Errorw("recorder_append_failed", "err", err)
		}
		return
	}
	if s.log != nil {
		s.log.Infow("recorder_motion_logged", "at", sample.CreatedAt)
	}
}
