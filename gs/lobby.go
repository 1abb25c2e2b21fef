package gs

import (
	"sort"

	"go.uber.org/zap"

	"splashsrv/packet"
)

const maxRoomNum = 127

type room struct {
	num           packet.RoomNum
	name          string
	password      string
	hasPassword   bool
	spectators    bool
	memberMax     int8
	rules         int8
	timeLimit     int8
	course        int8
	season        int8
	numHoles      int8
	setting       int8
	limits        [8]uint8
	limitB        [5]uint8
	members       []packet.CID
	currentPlayer packet.CID
}

func newRoom(num packet.RoomNum, info packet.RoomInfo) *room {
	r := &room{
		num:           num,
		name:          info.Name,
		hasPassword:   info.Stat.Flag&4 != 0,
		spectators:    info.Stat.Flag&2 != 0,
		memberMax:     info.Stat.MemberMax,
		rules:         info.Stat.Rules,
		timeLimit:     info.Stat.TimeLimit,
		course:        info.Stat.Course,
		season:        info.Stat.Season,
		numHoles:      info.Stat.NumHoles,
		setting:       info.Stat.CourseSetting,
		limits:        info.Stat.Limits,
		limitB:        info.Stat.LimitB,
		currentPlayer: -1,
	}
	if r.hasPassword {
		r.password = info.Password
	}
	return r
}

func (r *room) stat() packet.RoomStat {
	var flag int8
	if r.spectators {
		flag |= 2
	}
	if r.hasPassword {
		flag |= 4
	}
	return packet.RoomStat{
		Room:          r.num,
		Flag:          flag,
		MemberMax:     r.memberMax,
		Member:        int8(len(r.members)),
		Rules:         r.rules,
		TimeLimit:     r.timeLimit,
		Course:        r.course,
		Season:        r.season,
		NumHoles:      r.numHoles,
		CourseSetting: r.setting,
		Limits:        r.limits,
		LimitB:        r.limitB,
	}
}

func (r *room) info(mode packet.Mode, lby packet.LobbyNum) packet.RoomInfo {
	return packet.RoomInfo{
		Mode:     mode,
		Lobby:    lby,
		Stat:     r.stat(),
		Name:     r.name,
		Password: r.password,
	}
}

func (r *room) remove(cid packet.CID) {
	for i, m := range r.members {
		if m == cid {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return
		}
	}
}

type lobby struct {
	num       packet.LobbyNum
	name      string
	memberMax int16
	members   []packet.CID

	// rooms stays sorted by room number so the smallest free slot is a
	// single walk.
	rooms []*room
}

func (l *lobby) data(mode packet.Mode) packet.LobbyData {
	return packet.LobbyData{
		Num:       l.num,
		MemberMax: l.memberMax,
		Member:    int16(len(l.members)),
		Name:      l.name,
		Mode:      mode,
	}
}

func (l *lobby) remove(cid packet.CID) {
	for i, m := range l.members {
		if m == cid {
			l.members = append(l.members[:i], l.members[i+1:]...)
			return
		}
	}
}

func (l *lobby) room(num packet.RoomNum) *room {
	i := sort.Search(len(l.rooms), func(i int) bool { return l.rooms[i].num >= num })
	if i < len(l.rooms) && l.rooms[i].num == num {
		return l.rooms[i]
	}
	return nil
}

// pickFreeRoomNum finds the smallest unused number, or -1 when all 128
// slots are taken.
func (l *lobby) pickFreeRoomNum() packet.RoomNum {
	var next packet.RoomNum
	for _, r := range l.rooms {
		if r.num != next {
			return next
		}
		if next == maxRoomNum {
			return -1
		}
		next++
	}
	if next > maxRoomNum {
		return -1
	}
	return next
}

func (l *lobby) addRoom(r *room) {
	l.rooms = append(l.rooms, r)
	sort.Slice(l.rooms, func(i, j int) bool { return l.rooms[i].num < l.rooms[j].num })
}

// lobbies holds the per-mode lobby lists. Only the versus and
// competition modes have lobbies.
type lobbies struct {
	vs    []*lobby
	compe []*lobby
}

func newLobbies() *lobbies {
	return &lobbies{
		vs:    []*lobby{{num: 0, name: "Foo", memberMax: 10}},
		compe: []*lobby{{num: 0, name: "Bar", memberMax: 10}},
	}
}

func (ls *lobbies) forMode(mode packet.Mode) []*lobby {
	switch mode {
	case packet.ModeVS:
		return ls.vs
	case packet.ModeCompetition:
		return ls.compe
	default:
		return nil
	}
}

func (ls *lobbies) get(mode packet.Mode, num packet.LobbyNum) *lobby {
	list := ls.forMode(mode)
	if num < 0 || int(num) >= len(list) {
		return nil
	}
	return list[num]
}

func (st *state) handleLobbyCount(p *player) {
	st.send(p, packet.LobbyCount{Count: int8(len(st.lobbies.forMode(p.mode)))})
}

func (st *state) handleLobbyData(p *player, pid int16, m packet.LobbyDataRequest) {
	l := st.lobbies.get(m.Mode, packet.LobbyNum(m.Index))
	if l == nil {
		st.log.Warn("lobby data request out of range",
			zap.Int32("cid", p.cid), zap.Int8("index", int8(m.Index)))
		return
	}
	st.sendPID(p, pid, l.data(m.Mode))
}

func (st *state) handleEnterLobby(p *player, num packet.LobbyNum) {
	if p.lobby >= 0 {
		st.log.Error("enter lobby while already in one",
			zap.Int32("cid", p.cid), zap.Int8("lobby", int8(p.lobby)))
		return
	}
	l := st.lobbies.get(p.mode, num)
	if l == nil {
		st.log.Error("enter lobby out of range",
			zap.Int32("cid", p.cid), zap.Int8("lobby", int8(num)))
		return
	}
	if int16(len(l.members)) >= l.memberMax {
		st.send(p, packet.EnterLobbyResult{Lobby: -1})
		return
	}

	l.members = append(l.members, p.cid)
	p.lobby = num
	st.send(p, packet.EnterLobbyResult{Lobby: num})
	st.broadcastLobbyUser(l, p)
}

// broadcastLobbyUser announces p's roster entry to everyone else in the
// lobby.
func (st *state) broadcastLobbyUser(l *lobby, p *player) {
	entry := p.lobbyUser()
	for _, cid := range l.members {
		if cid == p.cid {
			continue
		}
		if other, ok := st.players[cid]; ok {
			st.send(other, entry)
		}
	}
}

func (st *state) ejectFromLobby(p *player) {
	l := st.lobbies.get(p.mode, p.lobby)
	if l == nil {
		p.lobby = -1
		p.room = -1
		return
	}
	if p.room >= 0 {
		st.leaveRoom(p, l)
	}
	l.remove(p.cid)
	p.lobby = -1
	st.broadcastLobbyUser(l, p)
}

func (st *state) handleLobbyUsers(p *player, pid int16, m packet.LobbyUsersRequest) {
	l := st.lobbies.get(m.Mode, m.Lobby)
	if l == nil {
		st.log.Warn("lobby roster request out of range",
			zap.Int32("cid", p.cid), zap.Int8("lobby", int8(m.Lobby)))
		return
	}
	for _, cid := range l.members {
		if other, ok := st.players[cid]; ok {
			st.sendPID(p, pid, other.lobbyUser())
		}
	}
}

func (st *state) handleMakeRoom(p *player, pid int16, info packet.RoomInfo) {
	l := st.lobbies.get(p.mode, p.lobby)
	if l == nil || p.room >= 0 {
		st.log.Error("make room outside a lobby", zap.Int32("cid", p.cid))
		st.sendPID(p, pid, packet.MakeRoomResult{Room: -1})
		return
	}

	num := l.pickFreeRoomNum()
	if num < 0 {
		st.sendPID(p, pid, packet.MakeRoomResult{Room: -1})
		return
	}

	r := newRoom(num, info)
	r.members = append(r.members, p.cid)
	l.addRoom(r)
	p.room = num

	st.sendPID(p, pid, packet.MakeRoomResult{Room: num})
}

func (st *state) handleRoomList(p *player, pid int16) {
	l := st.lobbies.get(p.mode, p.lobby)
	if l == nil {
		st.log.Warn("room list outside a lobby", zap.Int32("cid", p.cid))
		return
	}
	for _, r := range l.rooms {
		st.sendPID(p, pid, r.info(p.mode, p.lobby))
	}
}

func (st *state) handleEnterRoom(p *player, pid int16, m packet.EnterRoomRequest) {
	r, code := st.resolveEnterRoom(p, m)
	if r == nil {
		st.sendPID(p, pid, packet.EnterRoomResult{Room: packet.RoomError(p.mode, p.lobby, code)})
		return
	}

	r.members = append(r.members, p.cid)
	p.room = m.Room
	st.sendPID(p, pid, packet.EnterRoomResult{Room: r.info(p.mode, p.lobby)})

	entry := p.roomUser()
	for _, cid := range r.members {
		if cid == p.cid {
			continue
		}
		if other, ok := st.players[cid]; ok {
			st.send(other, entry)
		}
	}
}

// resolveEnterRoom validates a join attempt. On failure the room is nil
// and code is the error for the reply, with a wrong password reported
// distinctly from every other cause.
func (st *state) resolveEnterRoom(p *player, m packet.EnterRoomRequest) (*room, int8) {
	l := st.lobbies.get(p.mode, p.lobby)
	if l == nil || p.room >= 0 {
		st.log.Error("enter room from a bad state", zap.Int32("cid", p.cid))
		return nil, -1
	}
	r := l.room(m.Room)
	switch {
	case r == nil:
		return nil, -1
	case int8(len(r.members)) >= r.memberMax:
		return nil, -1
	case r.hasPassword && r.password != m.Password:
		return nil, -3
	}
	return r, 0
}

func (st *state) handleRoomUsers(p *player, pid int16, m packet.RoomUsersRequest) {
	l := st.lobbies.get(m.Mode, m.Lobby)
	var r *room
	if l != nil {
		r = l.room(m.Room)
	}
	if r == nil {
		st.log.Warn("room roster request for missing room",
			zap.Int32("cid", p.cid), zap.Int8("room", int8(m.Room)))
		st.sendPID(p, pid, packet.RoomUsersEnd{Status: packet.StatusErr})
		return
	}
	for _, cid := range r.members {
		if other, ok := st.players[cid]; ok {
			st.sendPID(p, pid, other.roomUser())
		}
	}
	st.sendPID(p, pid, packet.RoomUsersEnd{Status: packet.StatusOK})
}

func (st *state) handleExitRoom(p *player) {
	l := st.lobbies.get(p.mode, p.lobby)
	if l == nil || p.room < 0 {
		st.log.Warn("exit room while not in one", zap.Int32("cid", p.cid))
		st.send(p, packet.ExitRoomResult{Status: packet.StatusErr})
		return
	}
	st.leaveRoom(p, l)
	st.send(p, packet.ExitRoomResult{Status: packet.StatusOK})
}

// leaveRoom takes p out of its current room. Emptied rooms stay listed
// until the process restarts.
func (st *state) leaveRoom(p *player, l *lobby) {
	r := l.room(p.room)
	p.room = -1
	if r == nil {
		return
	}
	r.remove(p.cid)

	entry := p.roomUser()
	for _, cid := range r.members {
		if other, ok := st.players[cid]; ok {
			st.send(other, entry)
		}
	}
}

// currentRoom resolves the sender's room, or nil.
func (st *state) currentRoom(p *player) *room {
	if p.room < 0 {
		return nil
	}
	l := st.lobbies.get(p.mode, p.lobby)
	if l == nil {
		return nil
	}
	return l.room(p.room)
}
