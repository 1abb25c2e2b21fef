package packet

import "splashsrv/data"

// Login credentials, sent to the login gate as opcode 1 and replayed to
// the game server as opcode 6.
type LoginAuth struct {
	Username string // 17 bytes
	Password string // 17 bytes
	Version  uint16
}

func (LoginAuth) Op() Op { return OpLoginAuth }

func (m LoginAuth) encode(w *writer) {
	w.astring(m.Username, 17)
	w.astring(m.Password, 17)
	w.u16(m.Version)
}

func decodeCredentials(r *reader) (string, string, uint16) {
	return r.astring(17), r.astring(17), r.u16()
}

// GameAuth is the first message on a game server connection.
type GameAuth struct {
	Username string
	Password string
	Version  uint16
}

func (GameAuth) Op() Op { return OpGameAuth }

func (m GameAuth) encode(w *writer) {
	w.astring(m.Username, 17)
	w.astring(m.Password, 17)
	w.u16(m.Version)
}

// LoginAuthResult carries the login gate's verdict.
type LoginAuthResult struct {
	Result LoginResult
}

func (LoginAuthResult) Op() Op             { return OpLoginAuthResult }
func (m LoginAuthResult) encode(w *writer) { w.i8(int8(m.Result)) }

// ServerListRequest asks the login gate for the game server table.
type ServerListRequest struct{}

func (ServerListRequest) Op() Op         { return OpServerListRequest }
func (ServerListRequest) encode(*writer) {}

// ServerInfo describes one game server; the gate sends one per server
// followed by ServerListEnd.
type ServerInfo struct {
	Number  int16
	Address string // 129 bytes
	Port    uint16
	EncKey  string // 57 bytes
	Name    string // 13 UTF-16 units
	Comment string // 13 UTF-16 units
	Max     int16
	Now     int16
}

func (ServerInfo) Op() Op { return OpServerInfo }

func (m ServerInfo) encode(w *writer) {
	w.i16(m.Number)
	w.astring(m.Address, 129)
	w.u16(m.Port)
	w.astring(m.EncKey, 57)
	w.wstring(m.Name, 13)
	w.wstring(m.Comment, 13)
	w.i16(m.Max)
	w.i16(m.Now)
}

// ServerListEnd terminates the server table.
type ServerListEnd struct{}

func (ServerListEnd) Op() Op         { return OpServerListEnd }
func (ServerListEnd) encode(*writer) {}

// UserData is the opcode 7 session snapshot. A rejected handshake reuses
// the shape with the failure code in CID and everything else zeroed.
type UserData struct {
	CID     CID
	UID     UID
	ChrUID  ChrUID
	Golfbag [8]data.Item
	Holdbox [8]data.Item
	Medals  [4][4]int16
	Awards  [20]int32

	RankScoreItemOn  int16
	RankScoreItemOff int16
	MP               int32

	Year  int16
	Month int8
	Day   int8

	Name    string // 19 UTF-16 units
	Element data.Element
	Class   data.Rank

	RankItemOn      uint8 // 5 bits each, packed into one word
	RankItemOff     uint8
	BestRankItemOn  uint8
	BestRankItemOff uint8

	Flags uint32 // bit 2 refuses home deliveries
	Debug bool
}

func (UserData) Op() Op { return OpGameAuthResult }

func (m UserData) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.UID)
	w.i32(m.ChrUID)
	for _, it := range m.Golfbag {
		w.item(it)
	}
	for _, it := range m.Holdbox {
		w.item(it)
	}
	for _, row := range m.Medals {
		for _, v := range row {
			w.i16(v)
		}
	}
	for _, v := range m.Awards {
		w.i32(v)
	}
	w.i16(m.RankScoreItemOn)
	w.i16(m.RankScoreItemOff)
	w.i32(m.MP)
	w.i16(m.Year)
	w.i8(m.Month)
	w.i8(m.Day)
	w.wstring(m.Name, 19)
	w.i8(int8(m.Element))
	w.i8(int8(m.Class))
	w.bitword(uint32(m.RankItemOn&0x1F)<<27 |
		uint32(m.RankItemOff&0x1F)<<22 |
		uint32(m.BestRankItemOn&0x1F)<<17 |
		uint32(m.BestRankItemOff&0x1F)<<12)
	w.u32(m.Flags)
	if m.Debug {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func decodeUserData(r *reader) UserData {
	var m UserData
	m.CID = r.i32()
	m.UID = r.i32()
	m.ChrUID = r.i32()
	for i := range m.Golfbag {
		m.Golfbag[i] = r.item()
	}
	for i := range m.Holdbox {
		m.Holdbox[i] = r.item()
	}
	for i := range m.Medals {
		for j := range m.Medals[i] {
			m.Medals[i][j] = r.i16()
		}
	}
	for i := range m.Awards {
		m.Awards[i] = r.i32()
	}
	m.RankScoreItemOn = r.i16()
	m.RankScoreItemOff = r.i16()
	m.MP = r.i32()
	m.Year = r.i16()
	m.Month = r.i8()
	m.Day = r.i8()
	m.Name = r.wstring(19)
	m.Element = data.Element(r.i8())
	m.Class = data.Rank(r.i8())
	v := r.bitword()
	m.RankItemOn = uint8(v >> 27 & 0x1F)
	m.RankItemOff = uint8(v >> 22 & 0x1F)
	m.BestRankItemOn = uint8(v >> 17 & 0x1F)
	m.BestRankItemOff = uint8(v >> 12 & 0x1F)
	m.Flags = r.u32()
	m.Debug = r.u8() != 0
	return m
}

func init() {
	register(OpLoginAuth, func(r *reader) Body {
		var m LoginAuth
		m.Username, m.Password, m.Version = decodeCredentials(r)
		return m
	})
	register(OpLoginAuthResult, func(r *reader) Body {
		return LoginAuthResult{Result: LoginResult(r.i8())}
	})
	register(OpServerListRequest, func(*reader) Body { return ServerListRequest{} })
	register(OpServerInfo, func(r *reader) Body {
		return ServerInfo{
			Number:  r.i16(),
			Address: r.astring(129),
			Port:    r.u16(),
			EncKey:  r.astring(57),
			Name:    r.wstring(13),
			Comment: r.wstring(13),
			Max:     r.i16(),
			Now:     r.i16(),
		}
	})
	register(OpServerListEnd, func(*reader) Body { return ServerListEnd{} })
	register(OpGameAuth, func(r *reader) Body {
		var m GameAuth
		m.Username, m.Password, m.Version = decodeCredentials(r)
		return m
	})
	register(OpGameAuthResult, func(r *reader) Body { return decodeUserData(r) })
}
