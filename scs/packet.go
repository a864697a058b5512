// Package scs implements the fixed 4-byte SCS packet format used on the
// point-to-point link between the navigation controller and its peer
// subsystems (motor driver and sensor subsystem).
package scs

import (
	"errors"
	"fmt"
)

// PacketSize is the wire size of every SCS packet.
const PacketSize = 4

// ErrShortPacket is returned when fewer than PacketSize bytes are decoded.
var ErrShortPacket = errors.New("scs: short packet")

// Phase is the 2-bit system phase carried in the control byte.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseCal
	PhaseMaze
	PhaseSOS
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseCal:
		return "CAL"
	case PhaseMaze:
		return "MAZE"
	case PhaseSOS:
		return "SOS"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Subsystem is the 2-bit subsystem identifier carried in the control byte.
type Subsystem uint8

const (
	SubHub Subsystem = iota
	SubSNC
	SubMDPS
	SubSS
)

func (s Subsystem) String() string {
	switch s {
	case SubHub:
		return "HUB"
	case SubSNC:
		return "SNC"
	case SubMDPS:
		return "MDPS"
	case SubSS:
		return "SS"
	default:
		return fmt.Sprintf("Subsystem(%d)", uint8(s))
	}
}

// Packet is one SCS record: a control byte followed by three payload bytes.
//
// Control layout: SYS<7:6> | SUB<5:4> | IST<3:0>.
type Packet struct {
	Control byte
	Dat1    byte
	Dat0    byte
	Dec     byte
}

// New builds a packet with a packed control byte and the given payload.
func New(phase Phase, sub Subsystem, ist uint8, dat1, dat0, dec byte) Packet {
	return Packet{
		Control: ControlByte(phase, sub, ist),
		Dat1:    dat1,
		Dat0:    dat0,
		Dec:     dec,
	}
}

// ControlByte packs phase, subsystem and internal state into one byte.
func ControlByte(phase Phase, sub Subsystem, ist uint8) byte {
	return byte(phase&0x03)<<6 | byte(sub&0x03)<<4 | byte(ist&0x0F)
}

// Phase extracts the system phase from the control byte.
func (p Packet) Phase() Phase {
	return Phase(p.Control >> 6 & 0x03)
}

// Subsystem extracts the subsystem identifier from the control byte.
func (p Packet) Subsystem() Subsystem {
	return Subsystem(p.Control >> 4 & 0x03)
}

// Internal extracts the 4-bit internal state from the control byte.
func (p Packet) Internal() uint8 {
	return p.Control & 0x0F
}

// Word returns the 16-bit payload formed by DAT1 (high) and DAT0 (low).
func (p Packet) Word() uint16 {
	return uint16(p.Dat1)<<8 | uint16(p.Dat0)
}

// Marshal serializes the packet into its 4-byte wire form.
func (p Packet) Marshal() []byte {
	return []byte{p.Control, p.Dat1, p.Dat0, p.Dec}
}

// Unmarshal decodes a packet from the first PacketSize bytes of b.
func Unmarshal(b []byte) (Packet, error) {
	if len(b) < PacketSize {
		return Packet{}, fmt.Errorf("%w: got %d bytes", ErrShortPacket, len(b))
	}
	return Packet{Control: b[0], Dat1: b[1], Dat0: b[2], Dec: b[3]}, nil
}

func (p Packet) String() string {
	return fmt.Sprintf("[%s:%s:IST%d] control=0x%02X dat1=%d dat0=%d dec=%d",
		p.Phase(), p.Subsystem(), p.Internal(), p.Control, p.Dat1, p.Dat0, p.Dec)
}
