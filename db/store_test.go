package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"splashsrv/data"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestAuthenticateUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount("alice", "secret"); err != nil {
		t.Fatal(err)
	}

	password, found, err := s.AuthenticateUser(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, found)
	assert.Equal(t, "secret", password)

	_, found, err = s.AuthenticateUser(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, found)
}

func TestAuthenticateGame(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount("alice", "secret"); err != nil {
		t.Fatal(err)
	}

	_, err := s.AuthenticateGame(ctx, "bob", "secret")
	assert.ErrorIs(t, err, ErrNoAccount)

	_, err = s.AuthenticateGame(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrBadPassword)

	account, err := s.AuthenticateGame(ctx, "alice", "secret")
	if err != nil {
		t.Fatal(err)
	}
	// a fresh account carries the default wallet and no characters
	assert.Equal(t, data.NewUser().GP, account.User.GP)
	assert.Empty(t, account.Characters)
	assert.Empty(t, account.Name)
}

func TestWriteUserPersists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	account, err := s.AuthenticateGame(ctx, "alice", "secret")
	if err != nil {
		t.Fatal(err)
	}

	account.User.GP = 12345
	s.WriteUser(account.UID, account.User)

	reloaded, err := s.AuthenticateGame(ctx, "alice", "secret")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int32(12345), reloaded.User.GP)
}

func TestSetPlayerName(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount("alice", "a"); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateAccount("bob", "b"); err != nil {
		t.Fatal(err)
	}
	alice, err := s.AuthenticateGame(ctx, "alice", "a")
	if err != nil {
		t.Fatal(err)
	}
	bob, err := s.AuthenticateGame(ctx, "bob", "b")
	if err != nil {
		t.Fatal(err)
	}

	assert.ErrorIs(t, s.SetPlayerName(ctx, alice.UID, ""), ErrNameEmpty)

	if err := s.SetPlayerName(ctx, alice.UID, "Birdie"); err != nil {
		t.Fatal(err)
	}
	// setting your own name again is a no-op
	assert.NoError(t, s.SetPlayerName(ctx, alice.UID, "Birdie"))
	// but another account cannot claim it
	assert.ErrorIs(t, s.SetPlayerName(ctx, bob.UID, "Birdie"), ErrNameTaken)

	reloaded, err := s.AuthenticateGame(ctx, "alice", "a")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Birdie", reloaded.Name)
}

func TestCreateCharacterOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount("alice", "a"); err != nil {
		t.Fatal(err)
	}
	alice, err := s.AuthenticateGame(ctx, "alice", "a")
	if err != nil {
		t.Fatal(err)
	}

	appearance := data.Appearance{Char: data.Rusk}
	chrUID, char, err := s.CreateCharacter(ctx, alice.UID, appearance)
	if err != nil {
		t.Fatal(err)
	}
	assert.NotZero(t, chrUID)
	assert.Equal(t, data.Rusk, char.Appearance.Char)

	_, _, err = s.CreateCharacter(ctx, alice.UID, appearance)
	assert.ErrorIs(t, err, ErrCharacterExists)

	reloaded, err := s.AuthenticateGame(ctx, "alice", "a")
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, reloaded.Characters, 1) {
		assert.Equal(t, chrUID, reloaded.Characters[0].ChrUID)
	}
}

func TestWriteCharacterPersists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount("alice", "a"); err != nil {
		t.Fatal(err)
	}
	alice, err := s.AuthenticateGame(ctx, "alice", "a")
	if err != nil {
		t.Fatal(err)
	}
	chrUID, char, err := s.CreateCharacter(ctx, alice.UID, data.Appearance{Char: data.Miel})
	if err != nil {
		t.Fatal(err)
	}

	char.Exp.Power = 77
	s.WriteCharacter(chrUID, char)

	reloaded, err := s.AuthenticateGame(ctx, "alice", "a")
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, reloaded.Characters, 1) {
		assert.Equal(t, int16(77), reloaded.Characters[0].Char.Exp.Power)
	}
}

func TestCourseRecordDefault(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CreateAccount("alice", "a"); err != nil {
		t.Fatal(err)
	}
	alice, err := s.AuthenticateGame(ctx, "alice", "a")
	if err != nil {
		t.Fatal(err)
	}

	rec, err := s.CourseRecord(ctx, alice.UID, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, data.NewCRecord(), rec)
}
