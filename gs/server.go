// Package gs is the game session server. A single actor goroutine owns
// every player, lobby and room; connection goroutines feed it decoded
// packets over a channel and receive replies through per-player outbound
// channels.
package gs

import (
	"context"
	"net"
	"strconv"

	"go.uber.org/zap"

	"splashsrv/data"
	"splashsrv/db"
	"splashsrv/ops"
	"splashsrv/packet"
	"splashsrv/shop"
)

// Session ids are allocated from this window, skipping ids still in use.
const (
	firstCID packet.CID = 600
	lastCID  packet.CID = 999
)

type message interface{}

type loginMsg struct {
	creds packet.GameAuth
	resp  chan<- loginReply
}

type loginReply struct {
	result packet.LoginResult
	cid    packet.CID
	out    chan outPacket
}

type playerData struct {
	cid  packet.CID
	pid  int16
	body packet.Body
}

type logoutMsg struct {
	cid packet.CID
}

// outPacket is one queued write. A pid below zero means the writer
// allocates the next push id.
type outPacket struct {
	pid  int16
	body packet.Body
}

type player struct {
	cid        packet.CID
	uid        packet.UID
	name       string
	user       data.User
	characters []data.OwnedCharacter

	lobby packet.LobbyNum
	room  packet.RoomNum
	stat  packet.Stat
	mode  packet.Mode

	out chan outPacket
}

func (p *player) character(chrUID packet.ChrUID) *data.OwnedCharacter {
	for i := range p.characters {
		if p.characters[i].ChrUID == chrUID {
			return &p.characters[i]
		}
	}
	return nil
}

func (p *player) userData() packet.UserData {
	return packet.UserData{
		CID:     p.cid,
		UID:     p.uid,
		ChrUID:  p.user.DefaultChrUID,
		Golfbag: p.user.Golfbag,
		Holdbox: p.user.Holdbox,
		Year:    2023,
		Month:   8,
		Day:     23,
		Name:    p.name,
		Element: p.user.Element,
		Class:   p.user.Class,
	}
}

func (p *player) roomUser() packet.RoomUser {
	return packet.RoomUser{
		CID:     p.cid,
		UID:     p.uid,
		Stat:    uint16(p.stat),
		Mode:    p.mode,
		Lobby:   p.lobby,
		Room:    p.room,
		Class:   p.user.Class.Class(),
		Element: p.user.Element,
		Name:    p.name,
	}
}

func (p *player) lobbyUser() packet.LobbyUser {
	return packet.LobbyUser{
		CID:     p.cid,
		UID:     p.uid,
		Stat:    uint16(p.stat),
		Mode:    p.mode,
		Lobby:   p.lobby,
		Room:    p.room,
		Class:   p.user.Class.Class(),
		Element: p.user.Element,
		Name:    p.name,
	}
}

// Server is the public handle. Connection goroutines are the only
// callers; everything they send is processed by one actor.
type Server struct {
	msgs chan message
	done chan struct{}
	log  *zap.Logger
}

type state struct {
	nextCID packet.CID
	players map[packet.CID]*player
	lobbies *lobbies

	shopItems  []data.SellItem
	salonItems []data.SellItem

	store *db.Store
	log   *zap.Logger
}

// New starts the session actor.
func New(store *db.Store, log *zap.Logger) *Server {
	s := &Server{
		msgs: make(chan message, 1024),
		done: make(chan struct{}),
		log:  log,
	}

	st := &state{
		nextCID:    firstCID,
		players:    make(map[packet.CID]*player),
		lobbies:    newLobbies(),
		shopItems:  shop.BuildSellList(),
		salonItems: shop.BuildSalonList(),
		store:      store,
		log:        log,
	}

	go func() {
		defer close(s.done)
		for msg := range s.msgs {
			st.handle(msg)
		}
	}()

	return s
}

// Close stops the actor. Connections evicted by the shutdown observe
// their outbound channels closing.
func (s *Server) Close() {
	close(s.msgs)
	<-s.done
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

func (st *state) handle(msg message) {
	switch m := msg.(type) {
	case loginMsg:
		m.resp <- st.handleLogin(m.creds)
	case logoutMsg:
		st.removePlayer(m.cid)
	case playerData:
		p, ok := st.players[m.cid]
		if !ok {
			st.log.Warn("packet from unknown session", zap.Int32("cid", m.cid))
			return
		}
		ops.Packets.WithLabelValues(strconv.Itoa(int(m.body.Op()))).Inc()
		st.handlePacket(p, m.pid, m.body)
	}
}

// send queues a push for the player. A stalled client loses packets
// rather than stalling the actor.
func (st *state) send(p *player, body packet.Body) {
	st.sendPID(p, -1, body)
}

func (st *state) sendPID(p *player, pid int16, body packet.Body) {
	select {
	case p.out <- outPacket{pid: pid, body: body}:
	default:
		st.log.Warn("outbound queue full, dropping packet",
			zap.Int32("cid", p.cid), zap.Int16("op", int16(body.Op())))
	}
}

func (st *state) generateCID() packet.CID {
	for {
		cid := st.nextCID
		st.nextCID++
		if st.nextCID > lastCID {
			st.nextCID = firstCID
		}
		if _, taken := st.players[cid]; !taken {
			return cid
		}
	}
}

func (st *state) handleLogin(creds packet.GameAuth) loginReply {
	account, err := st.store.AuthenticateGame(context.Background(), creds.Username, creds.Password)
	if err != nil {
		st.log.Error("game authentication failed",
			zap.String("login_id", creds.Username), zap.Error(err))
		return loginReply{result: packet.LoginIDError}
	}

	for _, p := range st.players {
		if p.uid == account.UID {
			return loginReply{result: packet.LoginMultiLogin}
		}
	}

	cid := st.generateCID()
	name := account.Name
	if name == "" {
		name = "_" + creds.Username
	}

	p := &player{
		cid:        cid,
		uid:        account.UID,
		name:       name,
		user:       account.User,
		characters: account.Characters,
		lobby:      -1,
		room:       -1,
		mode:       packet.ModeNone,
		out:        make(chan outPacket, 128),
	}
	st.players[cid] = p
	ops.Sessions.Inc()

	// the session snapshot and the element cycle state open every session
	st.send(p, p.userData())
	st.send(p, packet.ColorResult{
		Element:     data.ElementNone,
		LastElement: data.ElementNone,
	})

	st.log.Info("player logged in",
		zap.Int32("cid", cid), zap.Int32("uid", account.UID), zap.String("name", name))

	return loginReply{result: packet.LoginOK, cid: cid, out: p.out}
}

func (st *state) removePlayer(cid packet.CID) {
	p, ok := st.players[cid]
	if !ok {
		st.log.Warn("logout for unknown session", zap.Int32("cid", cid))
		return
	}

	if p.lobby >= 0 {
		st.ejectFromLobby(p)
	}
	delete(st.players, cid)
	close(p.out)
	ops.Sessions.Dec()

	st.log.Info("player logged out", zap.Int32("cid", cid), zap.String("name", p.name))
}

func (st *state) saveUser(p *player) {
	st.store.WriteUser(p.uid, p.user)
}

func (st *state) handlePacket(p *player, pid int16, body packet.Body) {
	switch m := body.(type) {
	case packet.ChangeModeRequest:
		st.handleChangeMode(p, m.Mode)
	case packet.LobbyCountRequest:
		st.handleLobbyCount(p)
	case packet.LobbyDataRequest:
		st.handleLobbyData(p, pid, m)
	case packet.EnterLobbyRequest:
		st.handleEnterLobby(p, m.Lobby)
	case packet.LobbyUsersRequest:
		st.handleLobbyUsers(p, pid, m)
	case packet.MakeRoomRequest:
		st.handleMakeRoom(p, pid, m.Room)
	case packet.RoomListRequest:
		st.handleRoomList(p, pid)
	case packet.EnterRoomRequest:
		st.handleEnterRoom(p, pid, m)
	case packet.RoomUsersRequest:
		st.handleRoomUsers(p, pid, m)
	case packet.ExitRoomRequest:
		st.handleExitRoom(p)
	case packet.UserStat:
		st.handleUserStat(p, m)

	case packet.GameStartRequest:
		st.handleGameStart(p)
	case packet.ClubChange:
		st.relayToRoom(p, packet.ClubChangeRelay{CID: p.cid, Club: m.Club})
	case packet.Direction:
		st.relayToRoom(p, packet.DirectionRelay{CID: p.cid, Dir: m.Dir})
	case packet.Shot:
		st.handleShot(p, m)
	case packet.LoadStat:
		st.relayToRoom(p, packet.LoadStatRelay{CID: p.cid, Stat: m.Stat})
	case packet.LoadStat2:
		st.relayToRoom(p, packet.LoadStat2Relay{CID: p.cid, Stat: m.Stat})
	case packet.BallPos:
		m.CID = p.cid
		st.relayToRoom(p, packet.BallPosRelay{BallPos: m})
	case packet.StopBallPos:
		st.handleStopBallPos(p, m)
	case packet.Command:
		st.handleCommand(p, m)

	case packet.CourseRecordRequest:
		st.handleCourseRecord(p, pid, m)

	case packet.AppearanceRequest:
		st.handleAppearance(p, pid, m.CID)
	case packet.FirstCharRequest:
		st.handleFirstChar(p, m.Data)
	case packet.CharDataRequest:
		st.handleCharData(p, pid, m.CID, m.ChrUID)
	case packet.AllCharDataRequest:
		st.handleAllCharData(p, m.CID)
	case packet.ChangeAppearanceRequest:
		st.handleChangeAppearance(p, m)
	case packet.CurrentCharRequest:
		st.handleCurrentChar(p, pid, m.CID)
	case packet.CharParamRequest:
		st.handleCharParam(p, m)
	case packet.SetNameRequest:
		st.handleSetName(p, m)

	case packet.SellListRequest:
		st.send(p, packet.SellList{Items: st.shopItems})
	case packet.SalonListRequest:
		st.send(p, packet.SalonList{Items: st.salonItems})
	case packet.BuyItemRequest:
		st.handleBuyItem(p, m.Item)
	case packet.BuySalonRequest:
		st.handleBuySalon(p, m.Item)
	case packet.MoneyRequest:
		st.sendPID(p, pid, packet.Money{GP: p.user.GP, SC: p.user.SC})
	case packet.InventoryRequest:
		st.send(p, packet.Inventory{Items: p.user.Inventory})
	case packet.GolfbagRequest:
		st.send(p, packet.Golfbag{CID: p.cid, Items: p.user.Golfbag})
	case packet.HoldboxRequest:
		st.handleHoldbox(p, m.Items)
	case packet.UserDataRequest:
		st.handleUserData(p, pid, m.UID)

	case packet.ModeCtrlRequest:
		var ctrl packet.ModeCtrl
		for i := range ctrl.Flags {
			ctrl.Flags[i] = true
		}
		st.send(p, ctrl)
	case packet.SingleItemsRequest:
		st.handleSingleItems(p)

	default:
		st.log.Warn("unhandled opcode",
			zap.Int32("cid", p.cid), zap.Int16("op", int16(body.Op())))
	}
}

func (st *state) handleChangeMode(p *player, mode packet.Mode) {
	st.log.Info("mode change",
		zap.Int32("cid", p.cid), zap.Int8("from", int8(p.mode)), zap.Int8("to", int8(mode)))

	if p.mode != mode {
		if p.lobby >= 0 {
			st.ejectFromLobby(p)
		}
		p.mode = mode
	}
	st.send(p, packet.ChangeModeResult{Mode: mode})
}

// handleUserStat records a presence change and fans it out to everyone
// sharing the sender's lobby.
func (st *state) handleUserStat(p *player, m packet.UserStat) {
	if m.CID != p.cid || m.UID != p.uid {
		st.log.Warn("presence update for another session", zap.Int32("cid", p.cid))
		return
	}
	p.stat = m.Stat

	if p.lobby < 0 {
		return
	}
	for _, other := range st.players {
		if other.cid != p.cid && other.mode == p.mode && other.lobby == p.lobby {
			st.send(other, m)
		}
	}
}

func (st *state) handleUserData(p *player, pid int16, uid packet.UID) {
	for _, other := range st.players {
		if other.uid == uid {
			st.sendPID(p, pid, packet.UserDataPush{UserData: other.userData()})
			return
		}
	}
	st.log.Warn("profile request for offline account", zap.Int32("uid", uid))
}

func (st *state) handleHoldbox(p *player, items [8]data.Item) {
	p.user.Holdbox = items
	st.saveUser(p)
	st.send(p, packet.HoldboxResult{Status: packet.StatusOK})
}
