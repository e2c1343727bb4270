package service

import (
	"context"
	"errors"

	"home_security/internal/models"
)

// ErrInvalidDevice rejects control requests for anything outside the fixed
// actuator/mode set before any outbound call is made.
var ErrInvalidDevice = errors.New("invalid device")

// ControlService forwards commands to the actuator feeds.
type ControlService struct {
	gw Gateway
}

func NewControlService(gw Gateway) *ControlService {
	return &ControlService{gw: gw}
}

func controllable(device string) bool {
	for _, d := range models.ControlDevices() {
		if d == device {
			return true
		}
	}
	return false
}

// Set validates the device name and forwards the value as one write, at most
// one attempt. The boolean reports upstream success; an unknown device is the
// only error and causes no outbound call.
func (s *ControlService) Set(ctx context.Context, device, value string) (bool, error) {
	if !controllable(device) {
		return false, ErrInvalidDevice
	}
	if err := s.gw.Append(ctx, device, value); err != nil {
		return false, nil
	}
	return true, nil
}
