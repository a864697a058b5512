package navcon

import "fmt"

// State is the maneuver state machine's current phase.
type State uint8

const (
	StateForwardScan State = iota
	StateStop
	StateReverse
	StateStopBeforeRotate
	StateRotate
	StateEvaluateCorrection
	StateCrossingLine
)

func (s State) String() string {
	switch s {
	case StateForwardScan:
		return "FORWARD_SCAN"
	case StateStop:
		return "STOP"
	case StateReverse:
		return "REVERSE"
	case StateStopBeforeRotate:
		return "STOP_BEFORE_ROTATE"
	case StateRotate:
		return "ROTATE"
	case StateEvaluateCorrection:
		return "EVALUATE_CORRECTION"
	case StateCrossingLine:
		return "CROSSING_LINE"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// LineDetection tracks one in-progress line-crossing episode.
//
// A detection goes through two phases: pending (a single side sensor saw
// color, Sensor is set but Active is false) and active (classified, angle
// assigned). While Active is true the detector performs no new
// classification.
type LineDetection struct {
	Episode       string // opaque id assigned at activation, logging only
	Color         Color
	Sensor        SensorID // sensor that first triggered, SensorNone = none yet
	StartDistance uint16   // distance at which single-edge tracking began, mm
	InitialAngle  uint16   // angle recorded at confirmation time, degrees
	TargetAngle   uint16   // decremented across multi-step wall corrections
	AngleMeasured bool     // true if the angle was measured, false if inferred
	Active        bool
	Class         LineClass
}

func (d *LineDetection) reset() {
	*d = LineDetection{}
}

// CorrectionPlan holds the rotation the planner asked for and the feedback
// the motor driver reported back.
type CorrectionPlan struct {
	Direction         Direction
	Attempts          uint8
	InSequence        bool
	Commanded         uint16 // degrees last asked of the motor driver
	Actual            uint16 // degrees the motor driver reported executing
	FeedbackProcessed bool
}

func (c *CorrectionPlan) reset() {
	*c = CorrectionPlan{}
}

// WallTurnContext carries state across the two sequential wall detections
// that make up a 90°+90° turn-around.
type WallTurnContext struct {
	Expecting180  bool
	FirstAngle    uint16 // angle recorded at the first wall detection, degrees
	FirstTurnDone bool
}

func (w *WallTurnContext) reset() {
	*w = WallTurnContext{}
}

// NavigationStatus is the aggregate state owned by the Navigator. All
// sub-structures are value-owned; nothing is shared.
type NavigationStatus struct {
	State      State
	Detection  LineDetection
	Correction CorrectionPlan
	WallTurn   WallTurnContext

	StopConfirmed        bool
	ReverseConfirmed     bool
	ReverseStartDistance uint16

	// stopSignal is set by telemetry ingestion when it observes zero wheel
	// speeds while the machine sits in STOP_BEFORE_ROTATE with
	// awaitingStopSignal armed. Distinct from StopConfirmed so a stale
	// confirmation from the earlier STOP phase cannot trigger the rotation
	// prematurely; the arming flag is set when the reverse leg completes
	// and cleared once the signal is consumed.
	stopSignal         bool
	awaitingStopSignal bool
}

// Reset returns the aggregate to its initial scanning state.
func (ns *NavigationStatus) Reset() {
	ns.State = StateForwardScan
	ns.Detection.reset()
	ns.Correction.reset()
	ns.WallTurn.reset()
	ns.StopConfirmed = false
	ns.ReverseConfirmed = false
	ns.ReverseStartDistance = 0
	ns.stopSignal = false
	ns.awaitingStopSignal = false
}

// resetForNewDetection clears the detection, plan and confirmation flags so
// the next line starts from a clean slate, but preserves the wall-turn
// context: a pending 180° expectation must survive into the next episode.
func (ns *NavigationStatus) resetForNewDetection() {
	ns.Detection.reset()
	ns.Correction.reset()
	ns.StopConfirmed = false
	ns.ReverseConfirmed = false
	ns.stopSignal = false
	ns.awaitingStopSignal = false
}
