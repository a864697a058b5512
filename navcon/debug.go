package navcon

import (
	"fmt"
	"strings"

	"maze-navcon/scs"
)

// statusLine formats one compact per-tick diagnostic line.
func statusLine(snap *SensorSnapshot, status *NavigationStatus, cmd scs.Packet) string {
	return fmt.Sprintf(
		"state=%-19s colors=[%s %s %s] angle=%d dist=%d speeds=(%d,%d) cmd(dat1=%d dat0=%d dec=%d)",
		status.State,
		snap.Colors[idxS1], snap.Colors[idxS2], snap.Colors[idxS3],
		snap.Incidence, snap.Distance,
		snap.SpeedLeft, snap.SpeedRight,
		cmd.Dat1, cmd.Dat0, cmd.Dec,
	)
}

// Dump renders a multi-line human-readable view of the snapshot and
// navigation state for debugging.
func Dump(snap *SensorSnapshot, status *NavigationStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "state: %s\n", status.State)
	fmt.Fprintf(&b, "colors: S1=%s S2=%s S3=%s (prev S1=%s S2=%s S3=%s)\n",
		snap.Colors[idxS1], snap.Colors[idxS2], snap.Colors[idxS3],
		snap.Previous[idxS1], snap.Previous[idxS2], snap.Previous[idxS3])
	fmt.Fprintf(&b, "angle: %d°  distance: %d mm  speeds: L=%d R=%d mm/s\n",
		snap.Incidence, snap.Distance, snap.SpeedLeft, snap.SpeedRight)

	d := &status.Detection
	if d.Active || d.Sensor != SensorNone {
		fmt.Fprintf(&b, "detection: %s line %s via %s, angle initial=%d° target=%d° measured=%t active=%t",
			d.Class, d.Color, d.Sensor, d.InitialAngle, d.TargetAngle, d.AngleMeasured, d.Active)
		if d.Episode != "" {
			fmt.Fprintf(&b, " episode=%s", d.Episode)
		}
		b.WriteByte('\n')
	} else {
		b.WriteString("detection: none\n")
	}

	c := &status.Correction
	fmt.Fprintf(&b, "correction: dir=%s commanded=%d° actual=%d° in-sequence=%t attempts=%d\n",
		c.Direction, c.Commanded, c.Actual, c.InSequence, c.Attempts)
	fmt.Fprintf(&b, "wall turn: expecting180=%t first-angle=%d° first-done=%t\n",
		status.WallTurn.Expecting180, status.WallTurn.FirstAngle, status.WallTurn.FirstTurnDone)
	fmt.Fprintf(&b, "confirm: stop=%t reverse=%t reverse-start=%d mm\n",
		status.StopConfirmed, status.ReverseConfirmed, status.ReverseStartDistance)
	return b.String()
}
