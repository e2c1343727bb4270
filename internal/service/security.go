package service

import (
	"context"
	"sync"
	"time"

	"home_security/internal/logger"
	"home_security/internal/models"
	"home_security/internal/repository"
)

// SecurityService answers intrusion-history and system-status queries over
// the motion and actuator feeds. The local event log, when configured, backs
// intrusion queries while the upstream is unreachable.
type SecurityService struct {
	gw           Gateway
	intrusionLog repository.IntrusionLog
	log          *logger.Logger
}

func NewSecurityService(gw Gateway, intrusionLog repository.IntrusionLog, log *logger.Logger) *SecurityService {
	return &SecurityService{gw: gw, intrusionLog: intrusionLog, log: log}
}

// Intrusions scans the motion feed for the given day (default: today, UTC)
// and reports one event per "1" sample, oldest first. On an upstream fault
// the local log serves as a degraded-mode source; with no log configured the
// result is an empty list, never an error.
func (s *SecurityService) Intrusions(ctx context.Context, date string) []models.IntrusionEvent {
	day := defaultDate(date)
	start, end := DayRange(day)

	samples, err := s.gw.Range(ctx, models.SensorMotion, start, end)
	if err != nil {
		if s.log != nil {
			s.log.Infow("intrusions_range_failed", "date", day, "err", err)
		}
		return s.localIntrusions(ctx, day)
	}
	return FilterIntrusions(samples)
}

// localIntrusions reads the day's events from the local log.
func (s *SecurityService) localIntrusions(ctx context.Context, day string) []models.IntrusionEvent {
	empty := make([]models.IntrusionEvent, 0)
	if s.intrusionLog == nil {
		return empty
	}

	dayStart, err := time.Parse(time.RFC3339, day+dayStartSuffix)
	if err != nil {
		return empty
	}
	dayEnd, err := time.Parse(time.RFC3339, day+dayEndSuffix)
	if err != nil {
		return empty
	}

	events, err := s.intrusionLog.ListDay(ctx, dayStart, dayEnd)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("intrusions_local_log_failed", "date", day, "err", err)
		}
		return empty
	}
	if events == nil {
		return empty
	}
	return events
}

// Status reads mode, motion, light and fan concurrently; booleans come from
// comparing the boolean-style feeds with "1", a failed read reading as off.
func (s *SecurityService) Status(ctx context.Context) models.SystemStatus {
	var (
		wg                       sync.WaitGroup
		mode                     *string
		motionOn, lightOn, fanOn bool
	)

	read := func(sensor string, apply func(models.Sample, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sample, err := s.gw.Latest(ctx, sensor)
			if err != nil && s.log != nil {
				s.log.Infow("status_read_failed", "sensor", sensor, "err", err)
			}
			apply(sample, err)
		}()
	}

	read(models.SensorMode, func(sample models.Sample, err error) {
		if err == nil {
			v := sample.Value
			mode = &v
		}
	})
	read(models.SensorMotion, func(sample models.Sample, err error) {
		motionOn = err == nil && sample.Value == models.OnValue
	})
	read(models.SensorLight, func(sample models.Sample, err error) {
		lightOn = err == nil && sample.Value == models.OnValue
	})
	read(models.SensorFan, func(sample models.Sample, err error) {
		fanOn = err == nil && sample.Value == models.OnValue
	})
	wg.Wait()

	return models.SystemStatus{
		Mode:           mode,
		MotionDetected: motionOn,
		Devices:        models.DeviceStates{Light: lightOn, Fan: fanOn},
		LastUpdate:     time.Now().UTC(),
	}
}
