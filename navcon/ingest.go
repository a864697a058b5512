package navcon

import (
	"log"

	"maze-navcon/scs"
)

// Internal-state codes used by the sensor subsystem (SS) telemetry.
const (
	ssColors    = 1
	ssIncidence = 2
	ssEndOfMaze = 3
)

// Internal-state codes used by the motor driver (MDPS) telemetry.
const (
	mdpsLevel    = 1
	mdpsRotation = 2
	mdpsSpeed    = 3
	mdpsDistance = 4
)

// applyTelemetry maps one incoming SCS packet onto the sensor snapshot.
// Packets outside the MAZE phase and unknown internal states are ignored.
// When wheel-speed feedback arrives while the machine is waiting in
// STOP_BEFORE_ROTATE, a zero reading on both wheels raises the
// stop-confirmation signal on the status.
//
// Returns true if the packet mutated the snapshot.
func applyTelemetry(p scs.Packet, snap *SensorSnapshot, status *NavigationStatus) bool {
	if p.Phase() != scs.PhaseMaze {
		return false
	}

	switch p.Subsystem() {
	case scs.SubSS:
		switch p.Internal() {
		case ssColors:
			// Snapshot immediately before the update so the detector can
			// see tick-to-tick changes.
			snap.Previous = snap.Colors
			word := p.Word()
			snap.Colors[idxS1] = Color(word >> 6 & 0x07)
			snap.Colors[idxS2] = Color(word >> 3 & 0x07)
			snap.Colors[idxS3] = Color(word & 0x07)
			return true
		case ssIncidence:
			snap.Incidence = uint16(p.Dat1)
			return true
		case ssEndOfMaze:
			log.Println("navcon: end of maze reported by sensor subsystem")
			return false
		}

	case scs.SubMDPS:
		switch p.Internal() {
		case mdpsLevel:
			// Battery level, not used by navigation.
			return false
		case mdpsRotation:
			snap.Rotation = p.Word()
			snap.RotationDir = DirectionFromWire(p.Dec)
			return true
		case mdpsSpeed:
			snap.SpeedRight = p.Dat1
			snap.SpeedLeft = p.Dat0
			if status.State == StateStopBeforeRotate && status.awaitingStopSignal && snap.Stopped() {
				status.stopSignal = true
			}
			return true
		case mdpsDistance:
			snap.Distance = p.Word()
			return true
		}
	}
	return false
}
