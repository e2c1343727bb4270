package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"home_security/internal/service"
)

func TestControl_Success(t *testing.T) {
	ctl := &mockControl{success: true}
	s := &service.Service{Control: ctl}

	w := doRequest(t, s, http.MethodPost, "/api/control/fan", `{"value":"1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctl.calls != 1 || ctl.lastDevice != "fan" || ctl.lastValue != "1" {
		t.Fatalf("service call: %+v", ctl)
	}

	var resp struct {
		Success bool   `json:"success"`
		Device  string `json:"device"`
		Value   any    `json:"value"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Device != "fan" || resp.Value != "1" {
		t.Fatalf("response: %+v", resp)
	}
}

func TestControl_NumericValueSerialized(t *testing.T) {
	ctl := &mockControl{success: true}
	s := &service.Service{Control: ctl}

	w := doRequest(t, s, http.MethodPost, "/api/control/mode", `{"value":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ctl.lastValue != "1" {
		t.Fatalf("value not serialized to text: %q", ctl.lastValue)
	}
}

func TestControl_UpstreamFailureIs200WithFalse(t *testing.T) {
	ctl := &mockControl{success: false}
	s := &service.Service{Control: ctl}

	w := doRequest(t, s, http.MethodPost, "/api/control/light", `{"value":"0"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var resp struct {
		Success bool `json:"success"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Success {
		t.Fatalf("want success=false, body=%s", w.Body.String())
	}
}

func TestControl_UnknownDeviceRejected(t *testing.T) {
	ctl := &mockControl{err: service.ErrInvalidDevice}
	s := &service.Service{Control: ctl}

	w := doRequest(t, s, http.MethodPost, "/api/control/bogus", `{"value":"1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success || resp.Error != "Invalid device" {
		t.Fatalf("response: %+v", resp)
	}
}

func TestControl_MalformedBody(t *testing.T) {
	ctl := &mockControl{}
	s := &service.Service{Control: ctl}

	w := doRequest(t, s, http.MethodPost, "/api/control/fan", `{`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if ctl.calls != 0 {
		t.Fatalf("no service call expected, got %d", ctl.calls)
	}
}
