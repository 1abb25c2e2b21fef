package packet

import "splashsrv/data"

// ChangeModeRequest asks to move to a different part of the game.
type ChangeModeRequest struct {
	Mode Mode
}

func (ChangeModeRequest) Op() Op             { return OpChangeModeRequest }
func (m ChangeModeRequest) encode(w *writer) { w.i8(int8(m.Mode)) }

// ChangeModeResult confirms the mode switch.
type ChangeModeResult struct {
	Mode Mode
}

func (ChangeModeResult) Op() Op             { return OpChangeModeResult }
func (m ChangeModeResult) encode(w *writer) { w.i8(int8(m.Mode)) }

// LobbyCountRequest asks how many lobbies the current mode has.
type LobbyCountRequest struct{}

func (LobbyCountRequest) Op() Op         { return OpLobbyCountRequest }
func (LobbyCountRequest) encode(*writer) {}

// LobbyCount is the reply to LobbyCountRequest.
type LobbyCount struct {
	Count int8
}

func (LobbyCount) Op() Op             { return OpLobbyCount }
func (m LobbyCount) encode(w *writer) { w.i8(m.Count) }

// LobbyDataRequest fetches the description of one lobby. The reply is
// matched on the request pid.
type LobbyDataRequest struct {
	Index int8
	Mode  Mode
}

func (LobbyDataRequest) Op() Op { return OpLobbyDataRequest }

func (m LobbyDataRequest) encode(w *writer) {
	w.i8(m.Index)
	w.i8(int8(m.Mode))
}

// LobbyData describes one lobby.
type LobbyData struct {
	Num       LobbyNum
	MemberMax int16
	Member    int16
	Name      string // 17 UTF-16 units
	Unk       [32]byte
	Mode      Mode
}

func (LobbyData) Op() Op { return OpLobbyData }

func (m LobbyData) encode(w *writer) {
	w.i8(m.Num)
	w.i16(m.MemberMax)
	w.i16(m.Member)
	w.wstring(m.Name, 17)
	w.bytes(m.Unk[:])
	w.i8(int8(m.Mode))
}

func decodeLobbyData(r *reader) LobbyData {
	var m LobbyData
	m.Num = r.i8()
	m.MemberMax = r.i16()
	m.Member = r.i16()
	m.Name = r.wstring(17)
	copy(m.Unk[:], r.take(32))
	m.Mode = Mode(r.i8())
	return m
}

// EnterLobbyRequest joins a lobby in the current mode.
type EnterLobbyRequest struct {
	Lobby LobbyNum
}

func (EnterLobbyRequest) Op() Op             { return OpEnterLobbyRequest }
func (m EnterLobbyRequest) encode(w *writer) { w.i8(m.Lobby) }

// EnterLobbyResult echoes the joined lobby, or a negative code on failure.
type EnterLobbyResult struct {
	Lobby LobbyNum
}

func (EnterLobbyResult) Op() Op             { return OpEnterLobbyResult }
func (m EnterLobbyResult) encode(w *writer) { w.i8(m.Lobby) }

// RoomStat is the compact per-room state rider inside RoomInfo and the
// opcode 30 broadcast. The class and title restrictions pack into nibble
// and sub-byte fields.
type RoomStat struct {
	Room          RoomNum
	Flag          int8
	MemberMax     int8
	Member        int8
	Watcher       int8
	Rules         int8
	TimeLimit     int8
	Course        int8
	Season        int8
	NumHoles      int8
	CourseSetting int8
	Limits        [8]uint8 // 4 bits each
	LimitB        [5]uint8 // 1,7,4,1,7 bits
}

func (RoomStat) Op() Op { return OpRoomStatUpdate }

func (m RoomStat) encode(w *writer) {
	w.i8(m.Room)
	w.i8(m.Flag)
	w.i8(m.MemberMax)
	w.i8(m.Member)
	w.i8(m.Watcher)
	w.i8(m.Rules)
	w.i8(m.TimeLimit)
	w.i8(m.Course)
	w.i8(m.Season)
	w.i8(m.NumHoles)
	w.i8(m.CourseSetting)
	for i := 0; i < 4; i++ {
		w.u8(m.Limits[2*i]<<4 | m.Limits[2*i+1]&0xF)
	}
	w.u8(m.LimitB[0]<<7 | m.LimitB[1]&0x7F)
	w.u8(m.LimitB[2]<<4 | m.LimitB[3]&1<<3 | m.LimitB[4]>>4&0x7)
	w.u8(m.LimitB[4] << 4)
	w.u8(0)
}

func decodeRoomStat(r *reader) RoomStat {
	var m RoomStat
	m.Room = r.i8()
	m.Flag = r.i8()
	m.MemberMax = r.i8()
	m.Member = r.i8()
	m.Watcher = r.i8()
	m.Rules = r.i8()
	m.TimeLimit = r.i8()
	m.Course = r.i8()
	m.Season = r.i8()
	m.NumHoles = r.i8()
	m.CourseSetting = r.i8()
	for i := 0; i < 4; i++ {
		b := r.u8()
		m.Limits[2*i] = b >> 4
		m.Limits[2*i+1] = b & 0xF
	}
	b := r.u8()
	m.LimitB[0] = b >> 7
	m.LimitB[1] = b & 0x7F
	b = r.u8()
	m.LimitB[2] = b >> 4
	m.LimitB[3] = b >> 3 & 1
	m.LimitB[4] = b & 0x7 << 4
	m.LimitB[4] |= r.u8() >> 4
	r.u8() // trailing pad
	return m
}

// RoomInfo is the full room description. Besides the opcode 19 room list
// entry it rides in make/enter/update requests and their replies, where a
// negative room number in Stat signals the error code.
type RoomInfo struct {
	Mode     Mode
	Lobby    LobbyNum
	Stat     RoomStat
	Name     string // 33 UTF-16 units
	Password string // 17 UTF-16 units
}

func (RoomInfo) Op() Op { return OpRoomInfo }

// RoomError builds the reply shape for a failed make/enter request.
func RoomError(mode Mode, lobby LobbyNum, code int8) RoomInfo {
	return RoomInfo{Mode: mode, Lobby: lobby, Stat: RoomStat{Room: code}}
}

func (m RoomInfo) encode(w *writer) {
	w.i8(int8(m.Mode))
	w.i8(m.Lobby)
	m.Stat.encode(w)
	w.wstring(m.Name, 33)
	w.wstring(m.Password, 17)
}

func decodeRoomInfo(r *reader) RoomInfo {
	var m RoomInfo
	m.Mode = Mode(r.i8())
	m.Lobby = r.i8()
	m.Stat = decodeRoomStat(r)
	m.Name = r.wstring(33)
	m.Password = r.wstring(17)
	return m
}

// MakeRoomRequest creates a room from the given settings.
type MakeRoomRequest struct {
	Room RoomInfo
}

func (MakeRoomRequest) Op() Op             { return OpMakeRoomRequest }
func (m MakeRoomRequest) encode(w *writer) { m.Room.encode(w) }

// MakeRoomResult returns the allocated room number, negative on failure.
type MakeRoomResult struct {
	Room RoomNum
}

func (MakeRoomResult) Op() Op             { return OpMakeRoomResult }
func (m MakeRoomResult) encode(w *writer) { w.i8(m.Room) }

// RoomListRequest asks for the room list of the current lobby.
type RoomListRequest struct{}

func (RoomListRequest) Op() Op         { return OpRoomListRequest }
func (RoomListRequest) encode(*writer) {}

// EnterRoomRequest joins an existing room.
type EnterRoomRequest struct {
	Room     RoomNum
	Flag     bool
	Password string // 17 UTF-16 units
}

func (EnterRoomRequest) Op() Op { return OpEnterRoomRequest }

func (m EnterRoomRequest) encode(w *writer) {
	w.i8(m.Room)
	if m.Flag {
		w.bitword(1 << 31)
	} else {
		w.bitword(0)
	}
	w.wstring(m.Password, 17)
}

// EnterRoomResult carries the joined room, or the error code shape from
// RoomError.
type EnterRoomResult struct {
	Room RoomInfo
}

func (EnterRoomResult) Op() Op             { return OpEnterRoomResult }
func (m EnterRoomResult) encode(w *writer) { m.Room.encode(w) }

// UpdateRoomRequest changes the settings of the room the sender owns.
type UpdateRoomRequest struct {
	Room RoomInfo
}

func (UpdateRoomRequest) Op() Op             { return OpUpdateRoomRequest }
func (m UpdateRoomRequest) encode(w *writer) { m.Room.encode(w) }

// UpdateRoomResult acks a room settings change.
type UpdateRoomResult struct {
	Status Status
}

func (UpdateRoomResult) Op() Op             { return OpUpdateRoomResult }
func (m UpdateRoomResult) encode(w *writer) { w.i8(int8(m.Status)) }

// RoomUser is one room member entry; the server sends one per member,
// terminated by RoomUsersEnd.
type RoomUser struct {
	CID     CID
	UID     UID
	Stat    uint16
	Team    uint8
	Mode    Mode
	Lobby   LobbyNum
	Room    RoomNum
	Class   data.Class
	Element data.Element
	Title   uint8
	SvNo    int8
	Circle  int32
	Name    string // 19 UTF-16 units
}

func (RoomUser) Op() Op { return OpRoomUser }

func (m RoomUser) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.UID)
	w.u16(m.Stat)
	w.u8(m.Team & 1)
	w.pad(3)
	w.i8(int8(m.Mode))
	w.i8(m.Lobby)
	w.i8(m.Room)
	w.i8(int8(m.Class))
	w.i8(int8(m.Element))
	w.u8(m.Title)
	w.i8(m.SvNo)
	w.i32(m.Circle)
	w.wstring(m.Name, 19)
}

func decodeRoomUser(r *reader) RoomUser {
	var m RoomUser
	m.CID = r.i32()
	m.UID = r.i32()
	m.Stat = r.u16()
	m.Team = r.u8() & 1
	r.take(3)
	m.Mode = Mode(r.i8())
	m.Lobby = r.i8()
	m.Room = r.i8()
	m.Class = data.Class(r.i8())
	m.Element = data.Element(r.i8())
	m.Title = r.u8()
	m.SvNo = r.i8()
	m.Circle = r.i32()
	m.Name = r.wstring(19)
	return m
}

// RoomUsersRequest fetches the member list of one room.
type RoomUsersRequest struct {
	Mode  Mode
	Lobby LobbyNum
	Room  RoomNum
}

func (RoomUsersRequest) Op() Op { return OpRoomUsersRequest }

func (m RoomUsersRequest) encode(w *writer) {
	w.i8(int8(m.Mode))
	w.i8(m.Lobby)
	w.i8(m.Room)
}

// RoomUsersEnd terminates a room member listing.
type RoomUsersEnd struct {
	Status Status
}

func (RoomUsersEnd) Op() Op             { return OpRoomUsersEnd }
func (m RoomUsersEnd) encode(w *writer) { w.i8(int8(m.Status)) }

// ExitRoomRequest leaves the current room.
type ExitRoomRequest struct{}

func (ExitRoomRequest) Op() Op         { return OpExitRoomRequest }
func (ExitRoomRequest) encode(*writer) {}

// ExitRoomResult acks leaving a room.
type ExitRoomResult struct {
	Status Status
}

func (ExitRoomResult) Op() Op             { return OpExitRoomResult }
func (m ExitRoomResult) encode(w *writer) { w.i8(int8(m.Status)) }

// UserStat is the presence broadcast, flowing both directions.
type UserStat struct {
	CID  CID
	UID  UID
	Stat Stat
}

func (UserStat) Op() Op { return OpUserStat }

func (m UserStat) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.UID)
	w.u32(uint32(m.Stat))
}

// ChatMessage is lobby and room chat, flowing both directions. The name
// field is only meaningful for message types the server stamps it on.
type ChatMessage struct {
	CID      CID
	MsgType  int8
	ServerID int8
	Name     string // 19 UTF-16 units
	Message  string
}

func (ChatMessage) Op() Op { return OpChatMessage }

func (m ChatMessage) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.MsgType)
	w.i8(m.ServerID)
	w.wstring(m.Name, 19)
	w.utf16Text(m.Message)
}

func decodeChatMessage(r *reader) ChatMessage {
	var m ChatMessage
	m.CID = r.i32()
	m.MsgType = r.i8()
	m.ServerID = r.i8()
	m.Name = r.wstring(19)
	m.Message = r.utf16Text()
	return m
}

// LobbyUser is one lobby member entry, a slightly shorter RoomUser.
type LobbyUser struct {
	CID     CID
	UID     UID
	Stat    uint16
	Team    uint8
	Mode    Mode
	Lobby   LobbyNum
	Room    RoomNum
	Class   data.Class
	Element data.Element
	Title   uint8
	Circle  int32
	Name    string // 17 UTF-16 units
}

func (LobbyUser) Op() Op { return OpLobbyUser }

func (m LobbyUser) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.UID)
	w.u16(m.Stat)
	w.u8(m.Team & 1)
	w.pad(3)
	w.i8(int8(m.Mode))
	w.i8(m.Lobby)
	w.i8(m.Room)
	w.i8(int8(m.Class))
	w.i8(int8(m.Element))
	w.u8(m.Title)
	w.i32(m.Circle)
	w.wstring(m.Name, 17)
}

func decodeLobbyUser(r *reader) LobbyUser {
	var m LobbyUser
	m.CID = r.i32()
	m.UID = r.i32()
	m.Stat = r.u16()
	m.Team = r.u8() & 1
	r.take(3)
	m.Mode = Mode(r.i8())
	m.Lobby = r.i8()
	m.Room = r.i8()
	m.Class = data.Class(r.i8())
	m.Element = data.Element(r.i8())
	m.Title = r.u8()
	m.Circle = r.i32()
	m.Name = r.wstring(17)
	return m
}

// LobbyUsersRequest fetches the member list of one lobby.
type LobbyUsersRequest struct {
	Mode  Mode
	Lobby LobbyNum
}

func (LobbyUsersRequest) Op() Op { return OpLobbyUsersRequest }

func (m LobbyUsersRequest) encode(w *writer) {
	w.i8(int8(m.Mode))
	w.i8(m.Lobby)
}

// SearchUserRequest looks a player up by name across servers.
type SearchUserRequest struct {
	Name  string // 19 UTF-16 units
	Unk1  int8
	Unk2  int8
	Flags uint32
}

func (SearchUserRequest) Op() Op { return OpSearchUserRequest }

func (m SearchUserRequest) encode(w *writer) {
	w.wstring(m.Name, 19)
	w.i8(m.Unk1)
	w.i8(m.Unk2)
	w.u32(m.Flags)
}

// SearchUserResult is one hit of a player search.
type SearchUserResult struct {
	SvNo int8
	User RoomUser
}

func (SearchUserResult) Op() Op { return OpSearchUserResult }

func (m SearchUserResult) encode(w *writer) {
	w.i8(m.SvNo)
	m.User.encode(w)
}

// SearchRoomRequest looks for rooms matching a filter.
type SearchRoomRequest struct {
	SvNo     int8
	Unk1     int8
	Unk2     int8
	Unk3     int8
	Bitfield uint32
}

func (SearchRoomRequest) Op() Op { return OpSearchRoomRequest }

func (m SearchRoomRequest) encode(w *writer) {
	w.i8(m.SvNo)
	w.i8(m.Unk1)
	w.i8(m.Unk2)
	w.i8(m.Unk3)
	w.u32(m.Bitfield)
}

// SearchRoomResult is one hit of a room search.
type SearchRoomResult struct {
	SvNo int8
	Room RoomInfo
}

func (SearchRoomResult) Op() Op { return OpSearchRoomResult }

func (m SearchRoomResult) encode(w *writer) {
	w.i8(m.SvNo)
	m.Room.encode(w)
}

// RoomRefreshRequest re-fetches one room's data. The indices travel as
// full words here, unlike everywhere else.
type RoomRefreshRequest struct {
	Mode  uint32
	Lobby uint32
	Room  uint32
}

func (RoomRefreshRequest) Op() Op { return OpRoomRefreshRequest }

func (m RoomRefreshRequest) encode(w *writer) {
	w.u32(m.Mode)
	w.u32(m.Lobby)
	w.u32(m.Room)
}

// SetTeamRequest picks a team in a VS or competition lounge.
type SetTeamRequest struct {
	Team int8
}

func (SetTeamRequest) Op() Op             { return OpSetTeamRequest }
func (m SetTeamRequest) encode(w *writer) { w.i8(m.Team) }

// SetTeamRelay announces a member's team choice.
type SetTeamRelay struct {
	CID  CID
	Team int8
}

func (SetTeamRelay) Op() Op { return OpSetTeamRelay }

func (m SetTeamRelay) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.Team)
}

// OwnerChangeRequest asks to hand room ownership to another member.
type OwnerChangeRequest struct {
	CID CID
}

func (OwnerChangeRequest) Op() Op             { return OpOwnerChangeReq }
func (m OwnerChangeRequest) encode(w *writer) { w.i32(m.CID) }

// OwnerChangeAnswer accepts or declines an ownership transfer.
type OwnerChangeAnswer struct {
	Answer int8
}

func (OwnerChangeAnswer) Op() Op             { return OpOwnerChangeAnswer }
func (m OwnerChangeAnswer) encode(w *writer) { w.i8(m.Answer) }

// OwnerChange announces the new room owner.
type OwnerChange struct {
	CID CID
}

func (OwnerChange) Op() Op             { return OpOwnerChange }
func (m OwnerChange) encode(w *writer) { w.i32(m.CID) }

// KickRequest removes a member from the sender's room.
type KickRequest struct {
	CID CID
}

func (KickRequest) Op() Op             { return OpKickRequest }
func (m KickRequest) encode(w *writer) { w.i32(m.CID) }

// KickResult acks a kick to the room owner.
type KickResult struct {
	Status Status
}

func (KickResult) Op() Op             { return OpKickResult }
func (m KickResult) encode(w *writer) { w.i8(int8(m.Status)) }

// Kicked tells a member they were removed.
type Kicked struct {
	CID CID
}

func (Kicked) Op() Op             { return OpKicked }
func (m Kicked) encode(w *writer) { w.i32(m.CID) }

// InviteRequest invites a player into the sender's room.
type InviteRequest struct {
	CID CID
}

func (InviteRequest) Op() Op             { return OpInviteRequest }
func (m InviteRequest) encode(w *writer) { w.i32(m.CID) }

// Invite asks a player whether they want to join a room.
type Invite struct {
	SourceUID  UID
	MemberUIDs [50]UID
	Room       RoomInfo
}

func (Invite) Op() Op { return OpInvite }

func (m Invite) encode(w *writer) {
	w.i32(m.SourceUID)
	for _, uid := range m.MemberUIDs {
		w.i32(uid)
	}
	m.Room.encode(w)
}

// ReturnLoungeRequest asks to return to the lounge after a round.
type ReturnLoungeRequest struct{}

func (ReturnLoungeRequest) Op() Op         { return OpReturnLoungeReq }
func (ReturnLoungeRequest) encode(*writer) {}

// ReturnLoungeAll sends the whole room back to the lounge.
type ReturnLoungeAll struct{}

func (ReturnLoungeAll) Op() Op         { return OpReturnLoungeAll }
func (ReturnLoungeAll) encode(*writer) {}

func init() {
	register(OpChangeModeRequest, func(r *reader) Body { return ChangeModeRequest{Mode: Mode(r.i8())} })
	register(OpChangeModeResult, func(r *reader) Body { return ChangeModeResult{Mode: Mode(r.i8())} })
	register(OpLobbyCountRequest, func(*reader) Body { return LobbyCountRequest{} })
	register(OpLobbyCount, func(r *reader) Body { return LobbyCount{Count: r.i8()} })
	register(OpLobbyDataRequest, func(r *reader) Body {
		return LobbyDataRequest{Index: r.i8(), Mode: Mode(r.i8())}
	})
	register(OpLobbyData, func(r *reader) Body { return decodeLobbyData(r) })
	register(OpEnterLobbyRequest, func(r *reader) Body { return EnterLobbyRequest{Lobby: r.i8()} })
	register(OpEnterLobbyResult, func(r *reader) Body { return EnterLobbyResult{Lobby: r.i8()} })
	register(OpMakeRoomRequest, func(r *reader) Body { return MakeRoomRequest{Room: decodeRoomInfo(r)} })
	register(OpMakeRoomResult, func(r *reader) Body { return MakeRoomResult{Room: r.i8()} })
	register(OpRoomListRequest, func(*reader) Body { return RoomListRequest{} })
	register(OpRoomInfo, func(r *reader) Body { return decodeRoomInfo(r) })
	register(OpEnterRoomRequest, func(r *reader) Body {
		var m EnterRoomRequest
		m.Room = r.i8()
		m.Flag = r.bitword()>>31 != 0
		m.Password = r.wstring(17)
		return m
	})
	register(OpEnterRoomResult, func(r *reader) Body { return EnterRoomResult{Room: decodeRoomInfo(r)} })
	register(OpRoomUsersRequest, func(r *reader) Body {
		return RoomUsersRequest{Mode: Mode(r.i8()), Lobby: r.i8(), Room: r.i8()}
	})
	register(OpRoomUser, func(r *reader) Body { return decodeRoomUser(r) })
	register(OpRoomUsersEnd, func(r *reader) Body { return RoomUsersEnd{Status: Status(r.i8())} })
	register(OpExitRoomRequest, func(*reader) Body { return ExitRoomRequest{} })
	register(OpExitRoomResult, func(r *reader) Body { return ExitRoomResult{Status: Status(r.i8())} })
	register(OpUserStat, func(r *reader) Body {
		return UserStat{CID: r.i32(), UID: r.i32(), Stat: Stat(r.u32())}
	})
	register(OpChatMessage, func(r *reader) Body { return decodeChatMessage(r) })
	register(OpUpdateRoomRequest, func(r *reader) Body { return UpdateRoomRequest{Room: decodeRoomInfo(r)} })
	register(OpUpdateRoomResult, func(r *reader) Body { return UpdateRoomResult{Status: Status(r.i8())} })
	register(OpRoomStatUpdate, func(r *reader) Body { return decodeRoomStat(r) })
	register(OpLobbyUsersRequest, func(r *reader) Body {
		return LobbyUsersRequest{Mode: Mode(r.i8()), Lobby: r.i8()}
	})
	register(OpLobbyUser, func(r *reader) Body { return decodeLobbyUser(r) })
	register(OpSearchUserRequest, func(r *reader) Body {
		return SearchUserRequest{Name: r.wstring(19), Unk1: r.i8(), Unk2: r.i8(), Flags: r.u32()}
	})
	register(OpSearchUserResult, func(r *reader) Body {
		return SearchUserResult{SvNo: r.i8(), User: decodeRoomUser(r)}
	})
	register(OpSearchRoomRequest, func(r *reader) Body {
		return SearchRoomRequest{SvNo: r.i8(), Unk1: r.i8(), Unk2: r.i8(), Unk3: r.i8(), Bitfield: r.u32()}
	})
	register(OpSearchRoomResult, func(r *reader) Body {
		return SearchRoomResult{SvNo: r.i8(), Room: decodeRoomInfo(r)}
	})
	register(OpRoomRefreshRequest, func(r *reader) Body {
		return RoomRefreshRequest{Mode: r.u32(), Lobby: r.u32(), Room: r.u32()}
	})
	register(OpSetTeamRequest, func(r *reader) Body { return SetTeamRequest{Team: r.i8()} })
	register(OpSetTeamRelay, func(r *reader) Body { return SetTeamRelay{CID: r.i32(), Team: r.i8()} })
	register(OpOwnerChangeReq, func(r *reader) Body { return OwnerChangeRequest{CID: r.i32()} })
	register(OpOwnerChangeAnswer, func(r *reader) Body { return OwnerChangeAnswer{Answer: r.i8()} })
	register(OpOwnerChange, func(r *reader) Body { return OwnerChange{CID: r.i32()} })
	register(OpKickRequest, func(r *reader) Body { return KickRequest{CID: r.i32()} })
	register(OpKickResult, func(r *reader) Body { return KickResult{Status: Status(r.i8())} })
	register(OpKicked, func(r *reader) Body { return Kicked{CID: r.i32()} })
	register(OpInviteRequest, func(r *reader) Body { return InviteRequest{CID: r.i32()} })
	register(OpInvite, func(r *reader) Body {
		var m Invite
		m.SourceUID = r.i32()
		for i := range m.MemberUIDs {
			m.MemberUIDs[i] = r.i32()
		}
		m.Room = decodeRoomInfo(r)
		return m
	})
	register(OpReturnLoungeReq, func(*reader) Body { return ReturnLoungeRequest{} })
	register(OpReturnLoungeAll, func(*reader) Body { return ReturnLoungeAll{} })
}
