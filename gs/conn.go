package gs

import (
	"io"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"splashsrv/packet"
	"splashsrv/wire"
)

// handleConn owns the socket: it runs the credential handshake, then
// splits into a writer draining the player's outbound queue and a read
// pump feeding the actor.
func (s *Server) handleConn(stream net.Conn) {
	conn := wire.NewConn(stream)
	log := s.log.With(
		zap.String("conn", uuid.NewString()),
		zap.Stringer("remote", conn.RemoteAddr()))

	cid, out, ok := s.handshake(conn, log)
	if !ok {
		conn.Close()
		return
	}
	log = log.With(zap.Int32("cid", cid))

	// The actor closing out is an eviction. The writer shuts the socket
	// down so the read pump unblocks too.
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for pkt := range out {
			var err error
			if pkt.pid < 0 {
				err = conn.WritePacket(pkt.body)
			} else {
				err = conn.WritePacketPID(pkt.body, pkt.pid)
			}
			if err != nil {
				log.Warn("write failed", zap.Error(err))
			}
		}
		conn.Close()
	}()

	for {
		hdr, body, err := conn.ReadPacket()
		if err != nil {
			if err != io.EOF {
				log.Warn("read failed", zap.Error(err))
			}
			break
		}
		s.msgs <- playerData{cid: cid, pid: hdr.PID, body: body}
	}

	s.msgs <- logoutMsg{cid: cid}
	<-writerDone
	conn.Close()
}

// handshake reads packets until credentials arrive. Anything else is
// dropped; a rejected attempt gets an empty session snapshot carrying
// the failure code in the cid slot and the client may retry.
func (s *Server) handshake(conn *wire.Conn, log *zap.Logger) (packet.CID, chan outPacket, bool) {
	for {
		_, body, err := conn.ReadPacket()
		if err != nil {
			if err != io.EOF {
				log.Warn("handshake read failed", zap.Error(err))
			}
			return 0, nil, false
		}

		creds, ok := body.(packet.GameAuth)
		if !ok {
			log.Warn("packet before credentials", zap.Int16("op", int16(body.Op())))
			continue
		}

		resp := make(chan loginReply, 1)
		s.msgs <- loginMsg{creds: creds, resp: resp}
		reply := <-resp

		if reply.result != packet.LoginOK {
			if err := conn.WritePacket(packet.UserData{CID: packet.CID(reply.result)}); err != nil {
				log.Warn("handshake write failed", zap.Error(err))
				return 0, nil, false
			}
			continue
		}
		return reply.cid, reply.out, true
	}
}
