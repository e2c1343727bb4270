package service

import (
	"context"
	"sync"
	"time"

	"home_security/internal/logger"
	"home_security/internal/models"
)

// LiveService assembles live snapshots from independent per-sensor reads.
type LiveService struct {
	gw  Gateway
	log *logger.Logger
}

func NewLiveService(gw Gateway, log *logger.Logger) *LiveService {
	return &LiveService{gw: gw, log: log}
}

// latestValue is the single place the gateway's read errors collapse to a
// null value: the dashboard keeps rendering with gaps when the upstream is
// degraded, so a failed read is logged and becomes nil, never an error.
func (s *LiveService) latestValue(ctx context.Context, sensor string) *string {
	sample, err := s.gw.Latest(ctx, sensor)
	if err != nil {
		if s.log != nil {
			s.log.Infow("live_read_failed", "sensor", sensor, "err", err)
		}
		return nil
	}
	v := sample.Value
	return &v
}

// Snapshot reads every dashboard sensor concurrently. The reads are
// independent and side-effect-free; a failure on one sensor never affects
// the others. The capture timestamp is stamped at assembly time.
func (s *LiveService) Snapshot(ctx context.Context) models.LiveSnapshot {
	sensors := models.SnapshotSensors()
	values := make([]*string, len(sensors))

	var wg sync.WaitGroup
	for i, sensor := range sensors {
		wg.Add(1)
		go func(i int, sensor string) {
			defer wg.Done()
			values[i] = s.latestValue(ctx, sensor)
		}(i, sensor)
	}
	wg.Wait()

	byName := make(map[string]*string, len(sensors))
	for i, sensor := range sensors {
		byName[sensor] = values[i]
	}

	return models.LiveSnapshot{
		Temperature: byName[models.SensorTemperature],
		Humidity:    byName[models.SensorHumidity],
		Motion:      byName[models.SensorMotion],
		Light:       byName[models.SensorLight],
		Fan:         byName[models.SensorFan],
		Mode:        byName[models.SensorMode],
		Timestamp:   time.Now().UTC(),
	}
}
