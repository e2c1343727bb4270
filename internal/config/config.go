package config

import (
	"errors"
	"fmt"

	"home_security/internal/models"

	"github.com/spf13/viper"
)

// Defaults matching the documented feed names on the account.
const (
	defaultBaseURL          = "https://io.adafruit.com/api/v2"
	defaultPort             = "8080"
	defaultLogLevel         = "info"
	defaultRecorderInterval = "30s"

	defaultFeedTemperature = "temperature"
	defaultFeedHumidity    = "humidity"
	defaultFeedMotion      = "motion-state"
	defaultFeedLight       = "light-level"
	defaultFeedFan         = "fan-toggle"
	defaultFeedMode        = "system-mode"
	defaultFeedCamera      = "camera-last-image-timestamp"
)

// Config is the immutable process configuration, built once at startup and
// passed by reference. No package-level state.
type Config struct {
	Port     string
	LogLevel string

	// Adafruit IO account and endpoint.
	BaseURL  string
	Username string
	APIKey   string

	// Local store for the degraded-mode intrusion log; empty disables it.
	DBPath string

	// Kept for parity with the reference deployment; not consumed by any
	// core operation.
	SessionSecret string

	RecorderInterval string

	// Feeds maps each logical sensor name to its configured external feed
	// name (not yet owner-qualified; see FeedPath).
	Feeds map[string]string
}

// envBindings pairs viper keys with the environment variables the reference
// deployment uses.
var envBindings = map[string]string{
	"server.port":       "PORT",
	"aio.username":      "AIO_USERNAME",
	"aio.key":           "AIO_KEY",
	"db.path":           "DATABASE_URL",
	"session.secret":    "SESSION_SECRET",
	"feeds.temperature": "FEED_TEMPERATURE",
	"feeds.humidity":    "FEED_HUMIDITY",
	"feeds.motion":      "FEED_MOTION",
	"feeds.light":       "FEED_LIGHT",
	"feeds.fan":         "FEED_FAN",
	"feeds.mode":        "FEED_MODE",
	"feeds.camera":      "FEED_CAMERA",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("aio.base_url", defaultBaseURL)
	v.SetDefault("recorder.interval", defaultRecorderInterval)

	v.SetDefault("feeds.temperature", defaultFeedTemperature)
	v.SetDefault("feeds.humidity", defaultFeedHumidity)
	v.SetDefault("feeds.motion", defaultFeedMotion)
	v.SetDefault("feeds.light", defaultFeedLight)
	v.SetDefault("feeds.fan", defaultFeedFan)
	v.SetDefault("feeds.mode", defaultFeedMode)
	v.SetDefault("feeds.camera", defaultFeedCamera)
}

// Load reads configs/config.yml when present and overlays environment
// variables. A missing config file is fine (production uses env only);
// a malformed one is a startup error.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")

	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:             v.GetString("server.port"),
		LogLevel:         v.GetString("log.level"),
		BaseURL:          v.GetString("aio.base_url"),
		Username:         v.GetString("aio.username"),
		APIKey:           v.GetString("aio.key"),
		DBPath:           v.GetString("db.path"),
		SessionSecret:    v.GetString("session.secret"),
		RecorderInterval: v.GetString("recorder.interval"),
		Feeds: map[string]string{
			models.SensorTemperature: v.GetString("feeds.temperature"),
			models.SensorHumidity:    v.GetString("feeds.humidity"),
			models.SensorMotion:      v.GetString("feeds.motion"),
			models.SensorLight:       v.GetString("feeds.light"),
			models.SensorFan:         v.GetString("feeds.fan"),
			models.SensorMode:        v.GetString("feeds.mode"),
			models.SensorCamera:      v.GetString("feeds.camera"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate fails fast on configuration that would otherwise surface as
// per-request nulls: every logical sensor must resolve to a feed name.
func (c *Config) validate() error {
	for _, name := range models.LogicalSensors() {
		if c.Feeds[name] == "" {
			return fmt.Errorf("no feed name configured for sensor %q", name)
		}
	}
	if c.BaseURL == "" {
		return fmt.Errorf("aio.base_url must not be empty")
	}
	return nil
}

// FeedPath returns the fully-qualified external feed identifier for a logical
// sensor name: owner-qualified when a username is configured, else the bare
// feed name. The second return is false for unknown logical names.
func (c *Config) FeedPath(sensor string) (string, bool) {
	name, ok := c.Feeds[sensor]
	if !ok || name == "" {
		return "", false
	}
	if c.Username != "" {
		return c.Username + "/feeds/" + name, true
	}
	return name, true
}
