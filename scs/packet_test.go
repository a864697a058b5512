package scs

import (
	"bytes"
	"errors"
	"testing"
)

func TestControlByteRoundTrip(t *testing.T) {
	cases := []struct {
		phase Phase
		sub   Subsystem
		ist   uint8
	}{
		{PhaseIdle, SubHub, 0},
		{PhaseMaze, SubSNC, 3},
		{PhaseCal, SubMDPS, 2},
		{PhaseSOS, SubSS, 15},
	}
	for _, c := range cases {
		p := New(c.phase, c.sub, c.ist, 0, 0, 0)
		if p.Phase() != c.phase {
			t.Errorf("phase: got %v want %v", p.Phase(), c.phase)
		}
		if p.Subsystem() != c.sub {
			t.Errorf("subsystem: got %v want %v", p.Subsystem(), c.sub)
		}
		if p.Internal() != c.ist {
			t.Errorf("internal: got %d want %d", p.Internal(), c.ist)
		}
	}
}

func TestControlByteLayout(t *testing.T) {
	// MAZE=0b10, SNC=0b01, IST=3 -> 1001_0011
	got := ControlByte(PhaseMaze, SubSNC, 3)
	if got != 0x93 {
		t.Fatalf("control byte: got 0x%02X want 0x93", got)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	p := New(PhaseMaze, SubMDPS, 4, 0x01, 0x2C, 0)
	wire := p.Marshal()
	if len(wire) != PacketSize {
		t.Fatalf("wire size: got %d want %d", len(wire), PacketSize)
	}
	back, err := Unmarshal(wire)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != p {
		t.Fatalf("round trip mismatch: got %+v want %+v", back, p)
	}
	if back.Word() != 300 {
		t.Fatalf("word: got %d want 300", back.Word())
	}
	if !bytes.Equal(wire, []byte{0xA4, 0x01, 0x2C, 0x00}) {
		t.Fatalf("unexpected wire bytes: % X", wire)
	}
}

func TestUnmarshalShort(t *testing.T) {
	if _, err := Unmarshal([]byte{1, 2, 3}); !errors.Is(err, ErrShortPacket) {
		t.Fatalf("expected ErrShortPacket, got %v", err)
	}
}
