// Package login is the gate the client dials first. It checks
// credentials and hands out the game server table; the session itself
// lives on the game port.
package login

import (
	"context"
	"io"
	"net"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"splashsrv/db"
	"splashsrv/ops"
	"splashsrv/packet"
	"splashsrv/wire"
)

// RequiredVersion is the only client build the gate accepts.
const RequiredVersion uint16 = 956

// GameServer is one row of the server table handed to authenticated
// clients.
type GameServer struct {
	Number  int16
	Address string
	Port    uint16
	Name    string
	Comment string
	Max     int16
	Now     int16
}

// Server is the login gate.
type Server struct {
	store   *db.Store
	servers []GameServer
	log     *zap.Logger
}

func New(store *db.Store, servers []GameServer, log *zap.Logger) *Server {
	return &Server{store: store, servers: servers, log: log}
}

// Serve accepts connections until the listener closes.
func (s *Server) Serve(l net.Listener) error {
	for {
		stream, err := l.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(stream)
	}
}

func (s *Server) handleConn(stream net.Conn) {
	conn := wire.NewConn(stream)
	defer conn.Close()
	log := s.log.With(
		zap.String("conn", uuid.NewString()),
		zap.Stringer("remote", conn.RemoteAddr()))

	// the server table is withheld until a login succeeds
	authenticated := false

	for {
		_, body, err := conn.ReadPacket()
		if err != nil {
			if err != io.EOF {
				log.Warn("read failed", zap.Error(err))
			}
			return
		}

		switch m := body.(type) {
		case packet.LoginAuth:
			result := s.checkLogin(m, log)
			ops.Logins.WithLabelValues(strconv.Itoa(int(result))).Inc()
			if result == packet.LoginOK {
				authenticated = true
			}
			if err := conn.WritePacket(packet.LoginAuthResult{Result: result}); err != nil {
				log.Warn("write failed", zap.Error(err))
				return
			}

		case packet.ServerListRequest:
			if !authenticated {
				log.Warn("server list requested before login")
				return
			}
			if err := s.writeServerList(conn); err != nil {
				log.Warn("write failed", zap.Error(err))
				return
			}

		default:
			log.Warn("unhandled opcode", zap.Int16("op", int16(body.Op())))
		}
	}
}

func (s *Server) checkLogin(m packet.LoginAuth, log *zap.Logger) packet.LoginResult {
	switch {
	case m.Username == "":
		return packet.LoginIDError
	case m.Password == "":
		return packet.LoginPassError
	case m.Version != RequiredVersion:
		log.Warn("client version mismatch", zap.Uint16("version", m.Version))
		return packet.LoginBadVersion
	}

	password, found, err := s.store.AuthenticateUser(context.Background(), m.Username)
	if err != nil {
		log.Error("credential lookup failed", zap.Error(err))
		return packet.LoginNotValid
	}
	if !found {
		return packet.LoginNotValid
	}
	if password != m.Password {
		return packet.LoginPassError
	}

	log.Info("login accepted", zap.String("login_id", m.Username))
	return packet.LoginOK
}

func (s *Server) writeServerList(conn *wire.Conn) error {
	for _, gs := range s.servers {
		info := packet.ServerInfo{
			Number:  gs.Number,
			Address: gs.Address,
			Port:    gs.Port,
			Name:    gs.Name,
			Comment: gs.Comment,
			Max:     gs.Max,
			Now:     gs.Now,
		}
		if err := conn.WritePacket(info); err != nil {
			return err
		}
	}
	return conn.WritePacket(packet.ServerListEnd{})
}
