package navcon

import "github.com/google/uuid"

// SensorSpacing is the physical offset in mm between the center sensor and
// each side sensor. Traveling this far on a side-sensor-only detection
// without the center sensor confirming proves the line missed it, so the
// incidence angle must exceed 45°.
const SensorSpacing = 61

// InferredSteepAngle is the angle assigned when steepness is proven by
// travel distance rather than measured.
const InferredSteepAngle = 46

// detectLine fuses the current and previous sensor colors plus the latest
// incidence angle into a line detection, mutating status.Detection in
// place. No-op while a detection is already active.
//
// Rules are tried in strict priority order, first match wins per tick:
//
//  1. Center priority: the center sensor sits on the direct line of travel,
//     so a fresh non-white reading there is trusted unconditionally.
//  2. Dual-adjacent fusion: center plus one side sensor — classify on the
//     center color, tag the origin with the side the line arrived from.
//  3. Single-edge tracking: one side sensor alone starts a pending episode
//     (not yet active), recording the color and the current distance.
//  4. Confirmation or inference: a pending episode activates either when
//     the center sensor confirms (measured angle) or when the robot has
//     traveled SensorSpacing mm without confirmation (inferred steep angle).
func detectLine(snap *SensorSnapshot, status *NavigationStatus) {
	d := &status.Detection
	if d.Active {
		return
	}

	// Rule 1: center sensor sees a fresh color.
	if snap.Colors[idxS2] != White && snap.Colors[idxS2] != snap.Previous[idxS2] {
		activate(d, snap.Colors[idxS2], Sensor2, snap.Incidence, true)
		return
	}

	s1 := snap.Colors[idxS1] != White
	s2 := snap.Colors[idxS2] != White
	s3 := snap.Colors[idxS3] != White

	// Rule 2: line arriving at an angle from the left or right.
	if s1 && s2 {
		activate(d, snap.Colors[idxS2], Sensor1, snap.Incidence, true)
		return
	}
	if s2 && s3 {
		activate(d, snap.Colors[idxS2], Sensor3, snap.Incidence, true)
		return
	}

	// Rule 3: a lone side sensor starts distance tracking. Pending, not a
	// detection yet.
	if s1 && !s2 && d.Sensor == SensorNone {
		d.Color = snap.Colors[idxS1]
		d.Sensor = Sensor1
		d.StartDistance = snap.Distance
	} else if s3 && !s2 && d.Sensor == SensorNone {
		d.Color = snap.Colors[idxS3]
		d.Sensor = Sensor3
		d.StartDistance = snap.Distance
	}

	// Rule 4: resolve a pending episode.
	if d.Sensor != SensorNone && !d.Active && !d.AngleMeasured {
		if snap.Colors[idxS2] != White {
			activate(d, d.Color, d.Sensor, snap.Incidence, true)
			return
		}
		if snap.Distance-d.StartDistance >= SensorSpacing {
			activate(d, d.Color, d.Sensor, InferredSteepAngle, false)
		}
	}
}

// activate fills in and arms the detection.
func activate(d *LineDetection, color Color, sensor SensorID, angle uint16, measured bool) {
	d.Episode = uuid.NewString()
	d.Color = color
	d.Sensor = sensor
	d.InitialAngle = angle
	d.TargetAngle = angle
	d.AngleMeasured = measured
	d.Active = true
	d.Class = classify(color)
}
