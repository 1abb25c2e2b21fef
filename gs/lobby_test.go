package gs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"splashsrv/packet"
)

func roomRequest(name string) packet.RoomInfo {
	return packet.RoomInfo{
		Stat: packet.RoomStat{MemberMax: 4},
		Name: name,
	}
}

func passwordRoomRequest(name, password string) packet.RoomInfo {
	r := roomRequest(name)
	r.Stat.Flag = 4
	r.Password = password
	return r
}

func TestPickFreeRoomNum(t *testing.T) {
	l := &lobby{}
	assert.Equal(t, packet.RoomNum(0), l.pickFreeRoomNum())

	for _, num := range []packet.RoomNum{0, 1, 3} {
		l.addRoom(&room{num: num})
	}
	assert.Equal(t, packet.RoomNum(2), l.pickFreeRoomNum())
}

func TestPickFreeRoomNumExhausted(t *testing.T) {
	l := &lobby{}
	for num := 0; num <= maxRoomNum; num++ {
		l.addRoom(&room{num: packet.RoomNum(num)})
	}
	assert.Equal(t, packet.RoomNum(-1), l.pickFreeRoomNum())
}

func TestMakeRoomFillsSmallestGap(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	st.handleChangeMode(p, packet.ModeVS)
	st.handleEnterLobby(p, 0)
	drain(p)

	l := st.lobbies.get(packet.ModeVS, 0)
	for _, num := range []packet.RoomNum{0, 1, 3} {
		l.addRoom(&room{num: num})
	}

	st.handleMakeRoom(p, 1, roomRequest("gap"))
	result := recv(t, p).(packet.MakeRoomResult)
	assert.Equal(t, packet.RoomNum(2), result.Room)
	assert.Equal(t, packet.RoomNum(2), p.room)
}

func TestMakeRoomWhenExhausted(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	st.handleChangeMode(p, packet.ModeVS)
	st.handleEnterLobby(p, 0)
	drain(p)

	l := st.lobbies.get(packet.ModeVS, 0)
	for num := 0; num <= maxRoomNum; num++ {
		l.addRoom(&room{num: packet.RoomNum(num)})
	}

	st.handleMakeRoom(p, 1, roomRequest("overflow"))
	result := recv(t, p).(packet.MakeRoomResult)
	assert.Equal(t, packet.RoomNum(-1), result.Room)
	assert.Equal(t, packet.RoomNum(-1), p.room)
}

func TestEnterRoomPassword(t *testing.T) {
	st := newTestState(t)

	host := mustLogin(t, st, "host")
	st.handleChangeMode(host, packet.ModeVS)
	st.handleEnterLobby(host, 0)
	st.handleMakeRoom(host, 1, passwordRoomRequest("secret", "abc"))
	drain(host)

	guest := mustLogin(t, st, "guest")
	st.handleChangeMode(guest, packet.ModeVS)
	st.handleEnterLobby(guest, 0)
	drain(guest)

	st.handleEnterRoom(guest, 1, packet.EnterRoomRequest{Room: 0, Password: "xyz"})
	result := recv(t, guest).(packet.EnterRoomResult)
	assert.Equal(t, int8(-3), result.Room.Stat.Room)
	assert.Equal(t, packet.RoomNum(-1), guest.room)

	st.handleEnterRoom(guest, 1, packet.EnterRoomRequest{Room: 0, Password: "abc"})
	result = recv(t, guest).(packet.EnterRoomResult)
	assert.Equal(t, packet.RoomNum(0), result.Room.Stat.Room)
	assert.Equal(t, "secret", result.Room.Name)
	assert.Equal(t, packet.RoomNum(0), guest.room)

	// the host hears about the join
	entry := recv(t, host).(packet.RoomUser)
	assert.Equal(t, guest.cid, entry.CID)
}

func TestEnterRoomMissing(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	st.handleChangeMode(p, packet.ModeVS)
	st.handleEnterLobby(p, 0)
	drain(p)

	st.handleEnterRoom(p, 1, packet.EnterRoomRequest{Room: 42})
	result := recv(t, p).(packet.EnterRoomResult)
	assert.Equal(t, int8(-1), result.Room.Stat.Room)
}

func TestEnterRoomFull(t *testing.T) {
	st := newTestState(t)

	host := mustLogin(t, st, "host")
	st.handleChangeMode(host, packet.ModeVS)
	st.handleEnterLobby(host, 0)
	info := roomRequest("tiny")
	info.Stat.MemberMax = 1
	st.handleMakeRoom(host, 1, info)
	drain(host)

	guest := mustLogin(t, st, "guest")
	st.handleChangeMode(guest, packet.ModeVS)
	st.handleEnterLobby(guest, 0)
	drain(guest)

	st.handleEnterRoom(guest, 1, packet.EnterRoomRequest{Room: 0})
	result := recv(t, guest).(packet.EnterRoomResult)
	assert.Equal(t, int8(-1), result.Room.Stat.Room)
}

func TestEnterLobbyFull(t *testing.T) {
	st := newTestState(t)
	st.lobbies.vs[0].memberMax = 1

	first := mustLogin(t, st, "first")
	st.handleChangeMode(first, packet.ModeVS)
	st.handleEnterLobby(first, 0)
	drain(first)

	second := mustLogin(t, st, "second")
	st.handleChangeMode(second, packet.ModeVS)
	drain(second)
	st.handleEnterLobby(second, 0)

	result := recv(t, second).(packet.EnterLobbyResult)
	assert.Equal(t, packet.LobbyNum(-1), result.Lobby)
	assert.Equal(t, packet.LobbyNum(-1), second.lobby)
}

func TestLobbyJoinBroadcast(t *testing.T) {
	st := newTestState(t)

	first := mustLogin(t, st, "first")
	st.handleChangeMode(first, packet.ModeVS)
	st.handleEnterLobby(first, 0)
	drain(first)

	second := mustLogin(t, st, "second")
	st.handleChangeMode(second, packet.ModeVS)
	st.handleEnterLobby(second, 0)

	entry := recv(t, first).(packet.LobbyUser)
	assert.Equal(t, second.cid, entry.CID)
	assert.Equal(t, "_second", entry.Name)
}

func TestExitRoomKeepsRoomListed(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	st.handleChangeMode(p, packet.ModeVS)
	st.handleEnterLobby(p, 0)
	st.handleMakeRoom(p, 1, roomRequest("solo"))
	drain(p)

	st.handleExitRoom(p)

	result := recv(t, p).(packet.ExitRoomResult)
	assert.Equal(t, packet.StatusOK, result.Status)
	assert.Equal(t, packet.RoomNum(-1), p.room)

	l := st.lobbies.get(packet.ModeVS, 0)
	assert.Len(t, l.rooms, 1)
	assert.Empty(t, l.rooms[0].members)
}
