package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"splashsrv/packet"
)

func TestConnRoundTrip(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	server := NewConn(a)
	client := NewConn(b)

	go func() {
		server.WritePacket(packet.Ping{Seq: 7})
		server.WritePacket(packet.Pong{Seq: 8})
		server.WritePacketPID(packet.Pong{Seq: 9}, 500)
	}()

	h, body, err := client.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, packet.OpPing, h.ID)
	assert.Equal(t, int16(1), h.PID)
	assert.Equal(t, packet.Ping{Seq: 7}, body)

	h, _, err = client.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int16(2), h.PID, "pids auto-increment per connection")

	h, _, err = client.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int16(500), h.PID, "explicit pid overrides the counter")
}

func TestConnUnknownOpcodeSurvivesFraming(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	client := NewConn(b)

	go func() {
		// opcode 299 has no registered body.
		a.Write([]byte{0x06, 0x00, 0x2B, 0x01, 0x00, 0x00, 0xAA, 0xBB})
		NewConn(a).WritePacket(packet.Ping{Seq: 1})
	}()

	_, body, err := client.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	u, ok := body.(packet.Unknown)
	if !ok {
		t.Fatalf("expected Unknown, got %T", body)
	}
	assert.Equal(t, packet.Op(299), u.Opcode)

	// the stream stays aligned for the next frame
	h, _, err := client.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, packet.OpPing, h.ID)
}
