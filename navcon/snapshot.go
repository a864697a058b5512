package navcon

import (
	"sync"

	"maze-navcon/scs"
)

// Sensor indices into SensorSnapshot color arrays.
const (
	idxS1 = 0 // left
	idxS2 = 1 // center
	idxS3 = 2 // right
)

// SensorSnapshot holds the latest telemetry delivered over the SCS link.
// It is overwritten in place by ingestion; Previous keeps the color readings
// from immediately before the last color update.
type SensorSnapshot struct {
	Colors   [3]Color // S1, S2, S3
	Previous [3]Color

	Incidence uint16 // degrees, only meaningful while a line is detected

	SpeedLeft  uint8 // mm/s
	SpeedRight uint8

	Distance uint16 // mm traveled since last stop, zeroed by the motor driver

	Rotation    uint16 // degrees of the last executed rotation
	RotationDir Direction
}

// AllWhite reports whether all three sensors currently read WHITE.
func (s *SensorSnapshot) AllWhite() bool {
	return s.Colors[idxS1] == White && s.Colors[idxS2] == White && s.Colors[idxS3] == White
}

// Stopped reports whether both wheels read zero speed.
func (s *SensorSnapshot) Stopped() bool {
	return s.SpeedLeft == 0 && s.SpeedRight == 0
}

// TelemetryStore owns the sensor snapshot and serializes telemetry ingestion
// against state machine ticks. The detector's priority logic needs a
// consistent snapshot per tick, so both paths run under the same mutex.
type TelemetryStore struct {
	mu      sync.Mutex
	snap    SensorSnapshot
	seq     uint64
	lastCmd scs.Packet
}

// NewTelemetryStore returns an empty store (all sensors white, at rest).
func NewTelemetryStore() *TelemetryStore {
	return &TelemetryStore{}
}

// Ingest applies one incoming SCS packet to the snapshot and, where the
// packet carries wheel-speed feedback, to the navigator's stop-confirmation
// signal.
func (ts *TelemetryStore) Ingest(p scs.Packet, nav *Navigator) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if applyTelemetry(p, &ts.snap, &nav.status) {
		ts.seq++
	}
}

// Tick runs one state machine step against the current snapshot and returns
// the command to transmit.
func (ts *TelemetryStore) Tick(nav *Navigator) scs.Packet {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	cmd := nav.Step(&ts.snap)
	ts.lastCmd = cmd
	return cmd
}

// Observe returns consistent copies of the snapshot, the navigator status,
// the ingest sequence number and the last emitted command.
func (ts *TelemetryStore) Observe(nav *Navigator) (SensorSnapshot, NavigationStatus, uint64, scs.Packet) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.snap, nav.status, ts.seq, ts.lastCmd
}
