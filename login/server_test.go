package login

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"splashsrv/db"
	"splashsrv/packet"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(store.Close)

	if err := store.CreateAccount("alice", "hunter2"); err != nil {
		t.Fatal(err)
	}

	servers := []GameServer{{Number: 1, Address: "127.0.0.1", Port: 2051, Name: "main", Max: 20, Now: 1}}
	return New(store, servers, zap.NewNop())
}

func TestCheckLogin(t *testing.T) {
	s := newTestServer(t)
	log := zap.NewNop()

	tests := []struct {
		name string
		auth packet.LoginAuth
		want packet.LoginResult
	}{
		{"ok", packet.LoginAuth{Username: "alice", Password: "hunter2", Version: RequiredVersion}, packet.LoginOK},
		{"empty id", packet.LoginAuth{Password: "hunter2", Version: RequiredVersion}, packet.LoginIDError},
		{"empty password", packet.LoginAuth{Username: "alice", Version: RequiredVersion}, packet.LoginPassError},
		{"stale client", packet.LoginAuth{Username: "alice", Password: "hunter2", Version: 955}, packet.LoginBadVersion},
		{"unknown account", packet.LoginAuth{Username: "bob", Password: "hunter2", Version: RequiredVersion}, packet.LoginNotValid},
		{"wrong password", packet.LoginAuth{Username: "alice", Password: "nope", Version: RequiredVersion}, packet.LoginPassError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.checkLogin(tt.auth, log))
		})
	}
}
