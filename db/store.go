// Package db serializes all account, character and record persistence
// behind a single command loop. Callers never touch the database
// directly; every request rides the command channel and waits on its own
// reply channel, so the backend sees one command at a time.
package db

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"splashsrv/data"
)

var (
	// ErrNoAccount reports a login id with no account row.
	ErrNoAccount = errors.New("db: no such account")
	// ErrBadPassword reports a failed credential compare.
	ErrBadPassword = errors.New("db: wrong password")
	// ErrNameTaken reports a display name already owned by another account.
	ErrNameTaken = errors.New("db: name already in use")
	// ErrNameEmpty rejects an empty display name.
	ErrNameEmpty = errors.New("db: name cannot be empty")
	// ErrCharacterExists rejects a second character creation.
	ErrCharacterExists = errors.New("db: character already exists")
)

type command interface{}

type authenticateUser struct {
	loginID string
	resp    chan<- authenticateUserReply
}

type authenticateUserReply struct {
	password string
	found    bool
	err      error
}

type authenticateGame struct {
	loginID  string
	password string
	resp     chan<- authenticateGameReply
}

type authenticateGameReply struct {
	account data.Account
	err     error
}

// writeUser carries no reply channel: balance and inventory writes are
// fire-and-forget.
type writeUser struct {
	uid  data.UID
	user data.User
}

type setPlayerName struct {
	uid  data.UID
	name string
	resp chan<- error
}

type createCharacter struct {
	uid        data.UID
	appearance data.Appearance
	resp       chan<- createCharacterReply
}

type createCharacterReply struct {
	chrUID data.ChrUID
	char   data.Character
	err    error
}

type writeCharacter struct {
	chrUID data.ChrUID
	char   data.Character
}

type courseRecord struct {
	uid    data.UID
	course int8
	season int8
	holes  int8
	resp   chan<- courseRecordReply
}

type courseRecordReply struct {
	record data.CRecord
	err    error
}

// Store is the handle connection actors and the session actor talk to.
// It is safe to share across goroutines.
type Store struct {
	cmds chan<- command
	done chan struct{}
}

// Open prepares the sqlite backend at path and starts the command loop.
func Open(path string, log *zap.Logger) (*Store, error) {
	be, err := openBackend(path)
	if err != nil {
		return nil, err
	}

	cmds := make(chan command, 100)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer be.close()

		for cmd := range cmds {
			be.handle(cmd, log)
		}
	}()

	return &Store{cmds: cmds, done: done}, nil
}

// Close drains the loop and closes the backend.
func (s *Store) Close() {
	close(s.cmds)
	<-s.done
}

// AuthenticateUser looks up the stored password for a login id. The
// second return is false when the account does not exist.
func (s *Store) AuthenticateUser(ctx context.Context, loginID string) (string, bool, error) {
	resp := make(chan authenticateUserReply, 1)
	s.cmds <- authenticateUser{loginID: loginID, resp: resp}
	select {
	case r := <-resp:
		return r.password, r.found, r.err
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

// AuthenticateGame checks credentials and loads the full account
// snapshot, characters included.
func (s *Store) AuthenticateGame(ctx context.Context, loginID, password string) (data.Account, error) {
	resp := make(chan authenticateGameReply, 1)
	s.cmds <- authenticateGame{loginID: loginID, password: password, resp: resp}
	select {
	case r := <-resp:
		return r.account, r.err
	case <-ctx.Done():
		return data.Account{}, ctx.Err()
	}
}

// WriteUser persists account-wide state. No reply; failures are logged
// by the loop.
func (s *Store) WriteUser(uid data.UID, user data.User) {
	s.cmds <- writeUser{uid: uid, user: user}
}

// SetPlayerName assigns a display name, rejecting empty names and names
// held by another account.
func (s *Store) SetPlayerName(ctx context.Context, uid data.UID, name string) error {
	resp := make(chan error, 1)
	s.cmds <- setPlayerName{uid: uid, name: name, resp: resp}
	select {
	case err := <-resp:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CreateCharacter inserts the account's first character.
func (s *Store) CreateCharacter(ctx context.Context, uid data.UID, appearance data.Appearance) (data.ChrUID, data.Character, error) {
	resp := make(chan createCharacterReply, 1)
	s.cmds <- createCharacter{uid: uid, appearance: appearance, resp: resp}
	select {
	case r := <-resp:
		return r.chrUID, r.char, r.err
	case <-ctx.Done():
		return 0, data.Character{}, ctx.Err()
	}
}

// WriteCharacter persists one character. No reply.
func (s *Store) WriteCharacter(chrUID data.ChrUID, char data.Character) {
	s.cmds <- writeCharacter{chrUID: chrUID, char: char}
}

// CourseRecord loads a per-course record, returning the default record
// when none has been written yet.
func (s *Store) CourseRecord(ctx context.Context, uid data.UID, course, season, holes int8) (data.CRecord, error) {
	resp := make(chan courseRecordReply, 1)
	s.cmds <- courseRecord{uid: uid, course: course, season: season, holes: holes, resp: resp}
	select {
	case r := <-resp:
		return r.record, r.err
	case <-ctx.Done():
		return data.CRecord{}, ctx.Err()
	}
}
