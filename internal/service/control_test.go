package service

import (
	"context"
	"errors"
	"testing"

	"home_security/internal/feeds"
	"home_security/internal/models"
)

func TestSet_ForwardsOneWrite(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{}
	svc := NewControlService(gw)

	ok, err := svc.Set(context.Background(), models.SensorFan, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("want success on upstream 200")
	}
	if len(gw.appendCalls) != 1 {
		t.Fatalf("writes: want 1, got %d", len(gw.appendCalls))
	}
	if gw.appendCalls[0] != (appendCall{sensor: models.SensorFan, value: "1"}) {
		t.Fatalf("wrong write: %+v", gw.appendCalls[0])
	}
}

func TestSet_UpstreamFailureIsFalseNotError(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{appendErr: feeds.ErrUpstream}
	svc := NewControlService(gw)

	ok, err := svc.Set(context.Background(), models.SensorMode, "armed")
	if err != nil {
		t.Fatalf("upstream fault must not surface as error, got %v", err)
	}
	if ok {
		t.Fatalf("want success=false on upstream fault")
	}
	if len(gw.appendCalls) != 1 {
		t.Fatalf("writes: want exactly 1, got %d", len(gw.appendCalls))
	}
}

func TestSet_RejectsUnknownDeviceBeforeAnyCall(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{}
	svc := NewControlService(gw)

	ok, err := svc.Set(context.Background(), "bogus", "1")
	if !errors.Is(err, ErrInvalidDevice) {
		t.Fatalf("expected ErrInvalidDevice, got %v", err)
	}
	if ok {
		t.Fatalf("success must be false for rejected device")
	}
	if len(gw.appendCalls) != 0 {
		t.Fatalf("no outbound call expected, got %d", len(gw.appendCalls))
	}
}

func TestSet_SensorFeedsAreNotControllable(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{}
	svc := NewControlService(gw)

	for _, device := range []string{models.SensorTemperature, models.SensorMotion, models.SensorCamera} {
		if _, err := svc.Set(context.Background(), device, "1"); !errors.Is(err, ErrInvalidDevice) {
			t.Errorf("%s: expected ErrInvalidDevice, got %v", device, err)
		}
	}
	if len(gw.appendCalls) != 0 {
		t.Fatalf("no outbound calls expected, got %d", len(gw.appendCalls))
	}
}
