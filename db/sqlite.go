package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"splashsrv/data"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts(
		uid INTEGER PRIMARY KEY NOT NULL,
		login_id TEXT NOT NULL,
		name TEXT,
		password TEXT NOT NULL,
		data TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS characters(
		chr_uid INTEGER PRIMARY KEY NOT NULL,
		uid INTEGER NOT NULL,
		data TEXT,
		FOREIGN KEY (uid) REFERENCES accounts(uid)
	);`,
	`CREATE TABLE IF NOT EXISTS c_records(
		uid INTEGER NOT NULL,
		key INTEGER NOT NULL,
		data TEXT
	);`,
}

type backend struct {
	conn *sql.DB
}

func openBackend(path string) (*backend, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// the command loop is the only user; one connection keeps sqlite happy
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}
	for _, m := range migrations {
		if _, err := conn.Exec(m); err != nil {
			conn.Close()
			return nil, fmt.Errorf("applying migration: %w", err)
		}
	}
	return &backend{conn: conn}, nil
}

func (b *backend) close() {
	b.conn.Close()
}

func (b *backend) authenticateUser(loginID string) (string, bool, error) {
	var password string
	err := b.conn.QueryRow(
		"SELECT password FROM accounts WHERE login_id = ?", loginID,
	).Scan(&password)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return password, true, nil
}

func (b *backend) authenticateGame(loginID, password string) (data.Account, error) {
	var (
		uid      data.UID
		stored   string
		name     sql.NullString
		userJSON sql.NullString
	)
	err := b.conn.QueryRow(
		"SELECT uid, password, name, data FROM accounts WHERE login_id = ?", loginID,
	).Scan(&uid, &stored, &name, &userJSON)
	if err == sql.ErrNoRows {
		return data.Account{}, ErrNoAccount
	}
	if err != nil {
		return data.Account{}, err
	}

	// plaintext compare, kept deliberately narrow so real hashing can
	// slot in here without touching the session logic
	if password != stored {
		return data.Account{}, ErrBadPassword
	}

	// new accounts have no data blob yet
	user := data.NewUser()
	if userJSON.Valid {
		if err := json.Unmarshal([]byte(userJSON.String), &user); err != nil {
			return data.Account{}, fmt.Errorf("decoding user %d: %w", uid, err)
		}
	}

	account := data.Account{UID: uid, Name: name.String, User: user}

	rows, err := b.conn.Query("SELECT chr_uid, data FROM characters WHERE uid = ?", uid)
	if err != nil {
		return data.Account{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			chrUID   data.ChrUID
			charJSON string
		)
		if err := rows.Scan(&chrUID, &charJSON); err != nil {
			return data.Account{}, err
		}
		var char data.Character
		if err := json.Unmarshal([]byte(charJSON), &char); err != nil {
			return data.Account{}, fmt.Errorf("decoding character %d: %w", chrUID, err)
		}
		account.Characters = append(account.Characters, data.OwnedCharacter{ChrUID: chrUID, Char: char})
	}
	return account, rows.Err()
}

func (b *backend) writeUser(uid data.UID, user data.User) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return err
	}
	_, err = b.conn.Exec("UPDATE accounts SET data = ? WHERE uid = ?", string(blob), uid)
	return err
}

func (b *backend) setPlayerName(uid data.UID, name string) error {
	if name == "" {
		return ErrNameEmpty
	}

	var existing data.UID
	err := b.conn.QueryRow("SELECT uid FROM accounts WHERE name = ?", name).Scan(&existing)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return err
	case existing == uid:
		// the player already has this name
		return nil
	default:
		return ErrNameTaken
	}

	_, err = b.conn.Exec("UPDATE accounts SET name = ? WHERE uid = ?", name, uid)
	return err
}

func (b *backend) createCharacter(uid data.UID, appearance data.Appearance) (data.ChrUID, data.Character, error) {
	var count int
	if err := b.conn.QueryRow(
		"SELECT COUNT(*) FROM characters WHERE uid = ?", uid,
	).Scan(&count); err != nil {
		return 0, data.Character{}, err
	}
	if count > 0 {
		return 0, data.Character{}, ErrCharacterExists
	}

	char := data.NewCharacter(appearance)
	blob, err := json.Marshal(char)
	if err != nil {
		return 0, data.Character{}, err
	}
	res, err := b.conn.Exec(
		"INSERT INTO characters (uid, data) VALUES (?, ?)", uid, string(blob),
	)
	if err != nil {
		return 0, data.Character{}, err
	}
	chrUID, err := res.LastInsertId()
	if err != nil {
		return 0, data.Character{}, err
	}
	return data.ChrUID(chrUID), char, nil
}

func (b *backend) writeCharacter(chrUID data.ChrUID, char data.Character) error {
	blob, err := json.Marshal(char)
	if err != nil {
		return err
	}
	_, err = b.conn.Exec("UPDATE characters SET data = ? WHERE chr_uid = ?", string(blob), chrUID)
	return err
}

func (b *backend) courseRecord(uid data.UID, course, season, holes int8) (data.CRecord, error) {
	key := data.CRecordKey(uint8(course), uint8(season), uint8(holes))

	var blob string
	err := b.conn.QueryRow(
		"SELECT data FROM c_records WHERE uid = ? AND key = ?", uid, key,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return data.NewCRecord(), nil
	}
	if err != nil {
		return data.CRecord{}, err
	}
	var rec data.CRecord
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		return data.CRecord{}, fmt.Errorf("decoding record %d/%d: %w", uid, key, err)
	}
	return rec, nil
}

func (b *backend) handle(cmd command, log *zap.Logger) {
	switch c := cmd.(type) {
	case authenticateUser:
		password, found, err := b.authenticateUser(c.loginID)
		c.resp <- authenticateUserReply{password: password, found: found, err: err}
	case authenticateGame:
		account, err := b.authenticateGame(c.loginID, c.password)
		c.resp <- authenticateGameReply{account: account, err: err}
	case writeUser:
		if err := b.writeUser(c.uid, c.user); err != nil {
			log.Error("failed to save user", zap.Int32("uid", c.uid), zap.Error(err))
		}
	case setPlayerName:
		c.resp <- b.setPlayerName(c.uid, c.name)
	case createCharacter:
		chrUID, char, err := b.createCharacter(c.uid, c.appearance)
		c.resp <- createCharacterReply{chrUID: chrUID, char: char, err: err}
	case writeCharacter:
		if err := b.writeCharacter(c.chrUID, c.char); err != nil {
			log.Error("failed to save character", zap.Int32("chr_uid", c.chrUID), zap.Error(err))
		}
	case courseRecord:
		rec, err := b.courseRecord(c.uid, c.course, c.season, c.holes)
		c.resp <- courseRecordReply{record: rec, err: err}
	case createAccount:
		c.resp <- b.createAccount(c.loginID, c.password)
	default:
		log.Error("unknown storage command", zap.Any("cmd", cmd))
	}
}

// CreateAccount inserts a login row. Not part of the live protocol; the
// command line uses it to provision accounts.
func (s *Store) CreateAccount(loginID, password string) error {
	resp := make(chan error, 1)
	s.cmds <- createAccount{loginID: loginID, password: password, resp: resp}
	return <-resp
}

type createAccount struct {
	loginID  string
	password string
	resp     chan<- error
}

func (b *backend) createAccount(loginID, password string) error {
	_, err := b.conn.Exec(
		"INSERT INTO accounts (login_id, password) VALUES (?, ?)", loginID, password,
	)
	return err
}
