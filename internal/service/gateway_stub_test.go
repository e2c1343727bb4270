package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"home_security/internal/models"
)

// stubGateway satisfies Gateway with canned per-sensor responses. Safe for
// the concurrent reads the services issue.
type stubGateway struct {
	mu sync.Mutex

	latest    map[string]models.Sample
	latestErr map[string]error

	rangeResp []models.Sample
	rangeErr  error

	appendErr error

	latestCalls []string
	appendCalls []appendCall
	rangeCalls  []rangeCall
}

type appendCall struct {
	sensor string
	value  string
}

type rangeCall struct {
	sensor string
	start  string
	end    string
}

func (g *stubGateway) Latest(ctx context.Context, sensor string) (models.Sample, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latestCalls = append(g.latestCalls, sensor)
	if err, ok := g.latestErr[sensor]; ok {
		return models.Sample{}, err
	}
	if sample, ok := g.latest[sensor]; ok {
		return sample, nil
	}
	return models.Sample{}, fmt.Errorf("no fixture for sensor %q", sensor)
}

func (g *stubGateway) Append(ctx context.Context, sensor, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.appendCalls = append(g.appendCalls, appendCall{sensor: sensor, value: value})
	return g.appendErr
}

func (g *stubGateway) Range(ctx context.Context, sensor, start, end string) ([]models.Sample, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rangeCalls = append(g.rangeCalls, rangeCall{sensor: sensor, start: start, end: end})
	if g.rangeErr != nil {
		return nil, g.rangeErr
	}
	return g.rangeResp, nil
}

// stubIntrusionLog satisfies repository.IntrusionLog.
type stubIntrusionLog struct {
	events  []models.IntrusionEvent
	listErr error

	appended []models.IntrusionEvent
	appendEr error

	lastFrom time.Time
	lastTo   time.Time
}

func (s *stubIntrusionLog) Append(ctx context.Context, e models.IntrusionEvent) error {
	s.appended = append(s.appended, e)
	return s.appendEr
}

func (s *stubIntrusionLog) ListDay(ctx context.Context, from, to time.Time) ([]models.IntrusionEvent, error) {
	s.lastFrom = from
	s.lastTo = to
	return s.events, s.listErr
}
