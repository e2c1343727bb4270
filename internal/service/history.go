package service

import (
	"context"
	"errors"
	"strconv"

	"home_security/internal/feeds"
	"home_security/internal/logger"
	"home_security/internal/models"
)

// ErrInvalidSensor marks a client-supplied sensor name that is not in the
// feed registry. This is the only history failure surfaced to the client;
// upstream faults collapse to an empty series.
var ErrInvalidSensor = errors.New("invalid sensor")

// HistoryService serves chronological time series for one sensor and day.
type HistoryService struct {
	gw  Gateway
	log *logger.Logger
}

func NewHistoryService(gw Gateway, log *logger.Logger) *HistoryService {
	return &HistoryService{gw: gw, log: log}
}

// Series fetches a day's samples and reshapes them for the chart: upstream
// reverse-chronological order reversed to oldest-first, values parsed as
// floats. Any upstream fault or unparsable value yields the empty series.
func (s *HistoryService) Series(ctx context.Context, sensor, date string) (models.TimeSeries, error) {
	start, end := DayRange(defaultDate(date))

	samples, err := s.gw.Range(ctx, sensor, start, end)
	if err != nil {
		if errors.Is(err, feeds.ErrUnknownSensor) {
			return models.EmptyTimeSeries(), ErrInvalidSensor
		}
		if s.log != nil {
			s.log.Infow("history_range_failed", "sensor", sensor, "date", date, "err", err)
		}
		return models.EmptyTimeSeries(), nil
	}

	series := models.TimeSeries{
		Timestamps: make([]string, 0, len(samples)),
		Values:     make([]float64, 0, len(samples)),
	}
	for i := len(samples) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(samples[i].Value, 64)
		if err != nil {
			if s.log != nil {
				s.log.Infow("history_bad_value", "sensor", sensor, "value", samples[i].Value)
			}
			return models.EmptyTimeSeries(), nil
		}
		series.Timestamps = append(series.Timestamps, samples[i].CreatedAt)
		series.Values = append(series.Values, v)
	}
	return series, nil
}
