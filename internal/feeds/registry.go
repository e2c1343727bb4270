package feeds

import (
	"fmt"

	"home_security/internal/config"
	"home_security/internal/models"
)

// Registry is the fixed mapping from logical sensor name to fully-qualified
// external feed identifier. Built once at startup, immutable afterwards.
type Registry struct {
	paths map[string]string
}

// NewRegistry resolves every logical sensor against the configuration. A
// logical name with no feed path is a startup error, never a silent miss at
// request time.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	paths := make(map[string]string, len(models.LogicalSensors()))
	for _, name := range models.LogicalSensors() {
		path, ok := cfg.FeedPath(name)
		if !ok {
			return nil, fmt.Errorf("feed registry: no path for sensor %q", name)
		}
		paths[name] = path
	}
	return &Registry{paths: paths}, nil
}

// Path returns the external feed identifier for a logical sensor name.
func (r *Registry) Path(sensor string) (string, error) {
	path, ok := r.paths[sensor]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSensor, sensor)
	}
	return path, nil
}

// Has reports whether the logical name is registered.
func (r *Registry) Has(sensor string) bool {
	_, ok := r.paths[sensor]
	return ok
}
