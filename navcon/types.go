// Package navcon implements the maze navigation-control core: a tick-driven
// state machine that fuses three line-color sensors and an incidence angle
// into line detections, plans rotation corrections, and emits motion
// commands over the SCS link.
package navcon

import "fmt"

// Color is one reading from a line-color sensor.
type Color uint8

const (
	White Color = iota
	Red
	Green
	Blue
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case Black:
		return "BLACK"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Navigable reports whether the color marks a line the robot should cross.
func (c Color) Navigable() bool {
	return c == Red || c == Green
}

// Wall reports whether the color marks a maze boundary line.
func (c Color) Wall() bool {
	return c == Black || c == Blue
}

// Direction is a rotation direction.
type Direction uint8

const (
	NoDirection Direction = iota
	Left                  // counter-clockwise
	Right                 // clockwise
)

// Wire codes used by the motor driver for rotation direction.
const (
	wireLeft  = 2
	wireRight = 3
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// WireCode returns the on-wire direction byte (2=left, 3=right).
func (d Direction) WireCode() byte {
	switch d {
	case Left:
		return wireLeft
	case Right:
		return wireRight
	default:
		return 0
	}
}

// DirectionFromWire maps an on-wire direction byte back to a Direction.
func DirectionFromWire(b byte) Direction {
	switch b {
	case wireLeft:
		return Left
	case wireRight:
		return Right
	default:
		return NoDirection
	}
}

// SensorID identifies which of the three line sensors triggered a detection.
type SensorID uint8

const (
	SensorNone SensorID = iota
	Sensor1             // left
	Sensor2             // center
	Sensor3             // right
)

func (s SensorID) String() string {
	switch s {
	case Sensor1:
		return "S1"
	case Sensor2:
		return "S2"
	case Sensor3:
		return "S3"
	default:
		return "none"
	}
}

// LineClass splits detected lines into crossable and wall lines.
type LineClass uint8

const (
	LineNone LineClass = iota
	LineNavigable
	LineWall
)

func (l LineClass) String() string {
	switch l {
	case LineNavigable:
		return "NAVIGABLE"
	case LineWall:
		return "WALL"
	default:
		return "NONE"
	}
}

// classify maps a detected color to its line class.
func classify(c Color) LineClass {
	switch {
	case c.Navigable():
		return LineNavigable
	case c.Wall():
		return LineWall
	default:
		return LineNone
	}
}
