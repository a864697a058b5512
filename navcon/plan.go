package navcon

// CrossingThreshold is the incidence angle, in degrees, at or below which a
// navigable line is crossed without any correction.
const CrossingThreshold = 5

// SteepThreshold is the strict angle bound, in degrees, above which a line
// counts as steep.
const SteepThreshold = 45

// SteeringCorrection is the fixed incremental rotation, in degrees, applied
// when steering away from a steep line.
const SteeringCorrection = 5

// planNavigable converts an active red/green detection into a rotation
// plan:
//
//   - at or under the crossing threshold the line is crossed as-is;
//   - up to 45° the robot rotates by the full angle toward the line;
//   - past 45° it rotates a fixed small step away from the line to bring
//     the angle into the correctable range first.
func planNavigable(status *NavigationStatus) {
	d := &status.Detection
	c := &status.Correction

	if d.TargetAngle <= CrossingThreshold {
		status.State = StateCrossingLine
		status.WallTurn.Expecting180 = false
		return
	}

	var rotation uint16
	if d.TargetAngle <= SteepThreshold {
		// Rotate toward the line, down to a crossable angle.
		rotation = d.TargetAngle
		switch d.Sensor {
		case Sensor1:
			c.Direction = Left
		case Sensor3:
			c.Direction = Right
		default:
			c.Direction = Left
		}
	} else {
		// Steer away from the line edge to shrink the angle.
		rotation = SteeringCorrection
		switch d.Sensor {
		case Sensor1:
			c.Direction = Right
		case Sensor3:
			c.Direction = Left
		default:
			c.Direction = Right
		}
	}

	c.InSequence = true
	c.Commanded = rotation
	status.State = StateStop
}

// planWall converts an active black/blue detection into a turn plan. A
// first wall detection produces a 90° right turn adjusted by the incidence
// angle and arms the expectation of a follow-up 180° completion; a second
// one while that expectation is armed produces the completing left turn.
// Steep detections are de-biased in fixed increments across multiple
// maneuvers until the angle drops into the 90°-turn range.
func planWall(status *NavigationStatus) {
	d := &status.Detection
	c := &status.Correction
	wt := &status.WallTurn

	// A correction already mid-flight through the stop/reverse cadence
	// must not be re-planned.
	if c.InSequence &&
		(status.State == StateStop ||
			status.State == StateReverse ||
			status.State == StateStopBeforeRotate) {
		return
	}

	if wt.Expecting180 && d.TargetAngle <= SteepThreshold {
		rotation := uint16(180)
		if wt.FirstAngle > 0 {
			rotation = 180 - wt.FirstAngle
		}

		c.InSequence = true
		c.Direction = Left
		c.Commanded = rotation
		c.FeedbackProcessed = false

		wt.Expecting180 = false
		wt.FirstTurnDone = true

		status.State = StateStop
		return
	}

	if d.TargetAngle <= SteepThreshold {
		rotation := uint16(90)
		switch d.Sensor {
		case Sensor1:
			rotation = 90 - d.TargetAngle
		case Sensor3:
			rotation = 90 + d.TargetAngle
		}

		c.InSequence = true
		c.Direction = Right
		c.Commanded = rotation
		c.FeedbackProcessed = false

		wt.Expecting180 = true
		wt.FirstAngle = 0

		status.State = StateStop
		return
	}

	// Steep wall: one fixed increment away from the wall per maneuver.
	switch d.Sensor {
	case Sensor1:
		c.Direction = Right
	case Sensor3:
		c.Direction = Left
	default:
		c.Direction = Right
	}

	c.InSequence = true
	c.Commanded = SteeringCorrection
	c.FeedbackProcessed = false

	// Converge toward the 90°-turn branch; the floor guarantees the next
	// pass takes it.
	d.TargetAngle -= SteeringCorrection
	if d.TargetAngle <= SteepThreshold {
		d.TargetAngle = SteepThreshold
	}

	status.State = StateStop
}
