package handlers

import (
	"context"
	"sync"

	"home_security/internal/models"
	"home_security/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockLive struct {
	snapshot models.LiveSnapshot
	calls    int
}

func (m *mockLive) Snapshot(ctx context.Context) models.LiveSnapshot {
	m.calls++
	return m.snapshot
}

type mockHistory struct {
	series models.TimeSeries
	err    error

	lastSensor string
	lastDate   string
}

func (m *mockHistory) Series(ctx context.Context, sensor, date string) (models.TimeSeries, error) {
	m.lastSensor = sensor
	m.lastDate = date
	return m.series, m.err
}

type mockSecurity struct {
	mu     sync.Mutex
	events []models.IntrusionEvent
	status models.SystemStatus

	lastDate    string
	statusCalls int
}

func (m *mockSecurity) Intrusions(ctx context.Context, date string) []models.IntrusionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastDate = date
	return m.events
}

// Status is hit concurrently by the websocket writer loop.
func (m *mockSecurity) Status(ctx context.Context) models.SystemStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCalls++
	return m.status
}

func (m *mockSecurity) statusCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusCalls
}

type mockControl struct {
	success bool
	err     error

	lastDevice string
	lastValue  string
	calls      int
}

func (m *mockControl) Set(ctx context.Context, device, value string) (bool, error) {
	m.calls++
	m.lastDevice = device
	m.lastValue = value
	return m.success, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
