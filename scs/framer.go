package scs

import (
	"fmt"
	"io"
)

// ReadPacket reads exactly one packet from a byte-stream link. A clean EOF
// before any byte is returned as io.EOF; a stream truncated mid-packet is
// reported as ErrShortPacket.
func ReadPacket(r io.Reader) (Packet, error) {
	var buf [PacketSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return Packet{}, fmt.Errorf("%w: truncated stream", ErrShortPacket)
		}
		return Packet{}, err
	}
	return Packet{Control: buf[0], Dat1: buf[1], Dat0: buf[2], Dec: buf[3]}, nil
}

// WritePacket writes one packet in its 4-byte wire form.
func WritePacket(w io.Writer, p Packet) error {
	_, err := w.Write(p.Marshal())
	return err
}

// Framer frames packets over a byte-stream link such as a serial bridge.
// Datagram links carry one packet per datagram and can use
// Marshal/Unmarshal directly.
type Framer struct {
	rw io.ReadWriter
}

// NewFramer wraps a byte-stream link.
func NewFramer(rw io.ReadWriter) *Framer {
	return &Framer{rw: rw}
}

// ReadPacket reads the next packet from the link.
func (f *Framer) ReadPacket() (Packet, error) {
	return ReadPacket(f.rw)
}

// WritePacket writes one packet to the link.
func (f *Framer) WritePacket(p Packet) error {
	return WritePacket(f.rw, p)
}
