package navcon

import (
	"net"

	"maze-navcon/scs"
)

// CommandSender transmits command packets over UDP in their 4-byte wire
// form.
type CommandSender struct {
	conn *net.UDPConn
}

// NewCommandSender creates a UDP sender for the given address. An empty
// address yields a no-op sender.
func NewCommandSender(addr string) (*CommandSender, error) {
	if addr == "" {
		return &CommandSender{}, nil
	}
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, err
	}
	return &CommandSender{conn: conn}, nil
}

// Close releases the UDP socket.
func (s *CommandSender) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Send writes one command packet.
func (s *CommandSender) Send(cmd scs.Packet) {
	if s == nil || s.conn == nil {
		return
	}
	_, _ = s.conn.Write(cmd.Marshal())
}
