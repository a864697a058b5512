package navcon

import (
	"log"

	"maze-navcon/scs"
)

// ForwardSpeed is the commanded wheel speed in mm/s for forward and reverse
// motion.
const ForwardSpeed = 10

// Internal-state code stamped on every outgoing navigation command.
const navconIST = 3

func commandControl() byte {
	return scs.ControlByte(scs.PhaseMaze, scs.SubSNC, navconIST)
}

// stopCommand zeroes both wheel speeds.
func stopCommand() scs.Packet {
	return scs.Packet{Control: commandControl()}
}

// forwardCommand drives both wheels at ForwardSpeed.
//
// Guard: a wall line detected at a steep angle must complete its backup
// sequence before the robot may move forward again. Until reverse is
// confirmed the request degrades to Stop and the machine is forced back
// into the stop cadence.
func (n *Navigator) forwardCommand() scs.Packet {
	d := &n.status.Detection
	if d.Class == LineWall &&
		(d.InitialAngle > SteepThreshold || d.TargetAngle > SteepThreshold) &&
		!n.status.ReverseConfirmed {
		log.Println("navcon: forward blocked, steep wall line not yet reversed")
		n.status.State = StateStop
		return stopCommand()
	}

	return scs.Packet{
		Control: commandControl(),
		Dat1:    ForwardSpeed,
		Dat0:    ForwardSpeed,
	}
}

// reverseCommand drives both wheels at ForwardSpeed with the reverse flag
// set.
func reverseCommand() scs.Packet {
	return scs.Packet{
		Control: commandControl(),
		Dat1:    ForwardSpeed,
		Dat0:    ForwardSpeed,
		Dec:     1,
	}
}

// rotateCommand requests an in-place rotation, angle split across the two
// data bytes.
func rotateCommand(angle uint16, dir Direction) scs.Packet {
	return scs.Packet{
		Control: commandControl(),
		Dat1:    byte(angle >> 8),
		Dat0:    byte(angle),
		Dec:     dir.WireCode(),
	}
}
