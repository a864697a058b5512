package navcon

import (
	"log"

	"maze-navcon/scs"
)

// Reverse distances in mm, selected by the initial detection angle.
const (
	ReverseDistanceNormal = 60 // angle at or under 45°
	ReverseDistanceSteep  = 75 // angle over 45°
)

// RotationTolerance is the acceptance band, in degrees, when comparing a
// commanded rotation against the executed rotation feedback.
const RotationTolerance = 5

// RotationSanityBound is the largest rotation, in degrees, the machine will
// ever hand to the motor driver.
const RotationSanityBound = 360

// Navigator owns the maneuver state machine. One call to Step per control
// tick; every call returns exactly one command packet.
type Navigator struct {
	status NavigationStatus
}

// NewNavigator returns a navigator in the forward-scanning state.
func NewNavigator() *Navigator {
	n := &Navigator{}
	n.status.Reset()
	return n
}

// Reset tears the machine down to its initial scanning state.
func (n *Navigator) Reset() {
	n.status.Reset()
}

// Status returns a copy of the aggregate navigation state.
func (n *Navigator) Status() NavigationStatus {
	return n.status
}

// Step executes one tick of the maneuver state machine against the given
// snapshot and returns the command to transmit.
func (n *Navigator) Step(snap *SensorSnapshot) scs.Packet {
	switch n.status.State {
	case StateForwardScan:
		return n.stepForwardScan(snap)
	case StateStop:
		return n.stepStop(snap)
	case StateReverse:
		return n.stepReverse(snap)
	case StateStopBeforeRotate:
		return n.stepStopBeforeRotate()
	case StateRotate:
		return n.stepRotate(snap)
	case StateEvaluateCorrection:
		return n.stepEvaluate(snap)
	case StateCrossingLine:
		return n.stepCrossing(snap)
	default:
		n.status.Reset()
		return n.forwardCommand()
	}
}

// stepForwardScan scans for lines while driving forward and hands a fresh
// detection to the matching planner.
func (n *Navigator) stepForwardScan(snap *SensorSnapshot) scs.Packet {
	detectLine(snap, &n.status)

	if n.status.Detection.Active {
		switch n.status.Detection.Class {
		case LineNavigable:
			planNavigable(&n.status)
		case LineWall:
			planWall(&n.status)
		}
	}

	if n.status.State == StateStop {
		return stopCommand()
	}
	return n.forwardCommand()
}

// stepStop holds the stop command until the motor driver reports both
// wheels at rest, then begins the reverse leg.
func (n *Navigator) stepStop(snap *SensorSnapshot) scs.Packet {
	if snap.Stopped() {
		n.status.StopConfirmed = true
		n.status.State = StateReverse
		n.status.ReverseStartDistance = snap.Distance
		n.status.stopSignal = false
		return reverseCommand()
	}
	return stopCommand()
}

// stepReverse backs up until the cumulative distance (zeroed by the motor
// driver on stop) reaches the class-dependent target.
func (n *Navigator) stepReverse(snap *SensorSnapshot) scs.Packet {
	target := uint16(ReverseDistanceNormal)
	if n.status.Detection.InitialAngle > SteepThreshold {
		target = ReverseDistanceSteep
	}

	if snap.Distance >= target {
		n.status.ReverseConfirmed = true
		n.status.State = StateStopBeforeRotate
		n.status.stopSignal = false
		n.status.awaitingStopSignal = true
		return stopCommand()
	}
	return reverseCommand()
}

// stepStopBeforeRotate waits for the ingestion-side stop confirmation, then
// issues the planned rotation.
func (n *Navigator) stepStopBeforeRotate() scs.Packet {
	if n.status.stopSignal {
		n.status.stopSignal = false
		n.status.awaitingStopSignal = false
		n.status.State = StateRotate
		return rotateCommand(n.status.Correction.Commanded, n.status.Correction.Direction)
	}
	return stopCommand()
}

// stepRotate validates the planned rotation, then cascades into evaluation
// within the same tick. The guard is a precondition of evaluation, not a
// state of its own: no command is emitted from here directly.
func (n *Navigator) stepRotate(snap *SensorSnapshot) scs.Packet {
	c := n.status.Correction
	if snap.AllWhite() || c.Commanded == 0 || c.Commanded > RotationSanityBound {
		log.Printf("navcon: aborting invalid rotation (angle=%d, all white=%t)",
			c.Commanded, snap.AllWhite())
		n.status.resetForNewDetection()
		n.status.State = StateForwardScan
		return n.forwardCommand()
	}

	n.status.State = StateEvaluateCorrection
	return n.stepEvaluate(snap)
}

// stepEvaluate compares the commanded rotation against the executed
// rotation reported by the motor driver and decides whether the correction
// held or needs a residual re-issue.
func (n *Navigator) stepEvaluate(snap *SensorSnapshot) scs.Packet {
	c := &n.status.Correction
	c.Actual = snap.Rotation
	c.FeedbackProcessed = true
	diff := absDiff(c.Commanded, snap.Rotation)

	// Incremental steep-angle steering: verified increments go straight
	// back to scanning, shortfalls re-enter the stop/rotate cycle.
	if c.Commanded == SteeringCorrection {
		if diff <= RotationTolerance {
			n.status.resetForNewDetection()
			n.status.State = StateForwardScan
			return n.forwardCommand()
		}
		c.Commanded = diff
		c.Attempts++
		n.status.State = StateStop
		return stopCommand()
	}

	switch n.status.Detection.Class {
	case LineNavigable:
		if diff <= RotationTolerance {
			n.status.State = StateCrossingLine
			return n.forwardCommand()
		}
		c.Commanded = diff
		c.Attempts++
		n.status.State = StateStop
		return stopCommand()

	case LineWall:
		// Major wall turns are not re-verified; any residual misalignment
		// is caught by the next detection cycle.
		n.status.resetForNewDetection()
		n.status.State = StateForwardScan
		return n.forwardCommand()
	}

	// Fallback safety net.
	n.status.resetForNewDetection()
	n.status.State = StateForwardScan
	return n.forwardCommand()
}

// stepCrossing drives across a navigable line until all sensors read white
// again, then returns to scanning with a clean slate.
func (n *Navigator) stepCrossing(snap *SensorSnapshot) scs.Packet {
	if snap.AllWhite() {
		n.status.Detection.reset()
		n.status.Correction.reset()
		n.status.WallTurn.reset()
		n.status.State = StateForwardScan
	}
	return n.forwardCommand()
}

func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}
