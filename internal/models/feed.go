package models

import "time"

// Logical sensor/actuator names. Every handler addresses feeds through these,
// never through the externally configured feed identifiers.
const (
	SensorTemperature = "temperature"
	SensorHumidity    = "humidity"
	SensorMotion      = "motion"
	SensorLight       = "light"
	SensorFan         = "fan"
	SensorMode        = "mode"
	SensorCamera      = "camera"
)

// OnValue is the literal a boolean-style feed reports when it is on.
const OnValue = "1"

// LogicalSensors lists every logical name the registry must resolve.
func LogicalSensors() []string {
	return []string{
		SensorTemperature,
		SensorHumidity,
		SensorMotion,
		SensorLight,
		SensorFan,
		SensorMode,
		SensorCamera,
	}
}

// SnapshotSensors lists the feeds collected into a live snapshot.
func SnapshotSensors() []string {
	return []string{
		SensorTemperature,
		SensorHumidity,
		SensorMotion,
		SensorLight,
		SensorFan,
		SensorMode,
	}
}

// ControlDevices lists the actuator/mode feeds that accept commands.
func ControlDevices() []string {
	return []string{SensorLight, SensorFan, SensorMode}
}

// Sample is one data point from a feed: the upstream creation timestamp
// (ISO-8601, UTC) and the value in its transmitted text form.
type Sample struct {
	CreatedAt string `json:"created_at"`
	Value     string `json:"value"`
}

// LiveSnapshot is the latest value per dashboard sensor. A nil field means the
// fetch for that sensor failed; partial snapshots are valid. Timestamp is
// stamped by this service at assembly time, not by the feed service.
type LiveSnapshot struct {
	Temperature *string   `json:"temperature"`
	Humidity    *string   `json:"humidity"`
	Motion      *string   `json:"motion"`
	Light       *string   `json:"light"`
	Fan         *string   `json:"fan"`
	Mode        *string   `json:"mode"`
	Timestamp   time.Time `json:"timestamp"`
}

// TimeSeries holds parallel timestamp/value sequences for one sensor over one
// UTC calendar day, oldest first. Both slices are non-nil so an empty series
// marshals as {"timestamps": [], "values": []}.
type TimeSeries struct {
	Timestamps []string  `json:"timestamps"`
	Values     []float64 `json:"values"`
}

// EmptyTimeSeries is the neutral result for a failed or empty ranged read.
func EmptyTimeSeries() TimeSeries {
	return TimeSeries{Timestamps: []string{}, Values: []float64{}}
}

// IntrusionEvent is a view over motion samples, one per "1" reading in a day.
type IntrusionEvent struct {
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

// DeviceStates reports the boolean state of the controllable devices.
type DeviceStates struct {
	Light bool `json:"light"`
	Fan   bool `json:"fan"`
}

// SystemStatus summarizes the security system for the dashboard header.
// Mode is nil when the mode feed could not be read.
type SystemStatus struct {
	Mode           *string      `json:"mode"`
	MotionDetected bool         `json:"motion_detected"`
	Devices        DeviceStates `json:"devices"`
	LastUpdate     time.Time    `json:"last_update"`
}
