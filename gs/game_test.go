package gs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"splashsrv/packet"
)

func TestNewGameStartHoles(t *testing.T) {
	g := newGameStart(packet.ModeVS, []packet.CID{600, 601})

	assert.Equal(t, int8(3), g.Holes)
	assert.Equal(t, int8(1), g.Season)
	seen := map[int8]bool{}
	for i, hole := range g.HoleNo {
		if i < 3 {
			assert.GreaterOrEqual(t, hole, int8(0))
			assert.Less(t, hole, int8(18))
			assert.False(t, seen[hole], "hole repeated")
			seen[hole] = true
		} else {
			assert.Equal(t, int8(-1), hole)
		}
	}

	assert.Equal(t, packet.CID(600), g.CIDs[0])
	assert.Equal(t, packet.CID(601), g.CIDs[1])
	assert.Equal(t, packet.CID(-1), g.CIDs[2])
}

func roomPair(t *testing.T, st *state) (*player, *player) {
	t.Helper()

	host := mustLogin(t, st, "host")
	st.handleChangeMode(host, packet.ModeVS)
	st.handleEnterLobby(host, 0)
	st.handleMakeRoom(host, 1, roomRequest("match"))
	drain(host)

	guest := mustLogin(t, st, "guest")
	st.handleChangeMode(guest, packet.ModeVS)
	st.handleEnterLobby(guest, 0)
	st.handleEnterRoom(guest, 1, packet.EnterRoomRequest{Room: 0})
	drain(host)
	drain(guest)
	return host, guest
}

func TestGameStartBroadcast(t *testing.T) {
	st := newTestState(t)
	host, guest := roomPair(t, st)

	st.handleGameStart(host)

	hostStart := recv(t, host).(packet.GameStart)
	guestStart := recv(t, guest).(packet.GameStart)
	assert.Equal(t, hostStart.HoleNo, guestStart.HoleNo)

	result := recv(t, host).(packet.GameStartResult)
	assert.Equal(t, packet.StatusOK, result.Status)
}

func TestGameStartSingle(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "solo")
	st.handleChangeMode(p, packet.ModeSingle)
	drain(p)

	st.handleGameStart(p)

	start := recv(t, p).(packet.GameStart)
	assert.Equal(t, packet.ModeSingle, start.Mode)
	assert.Equal(t, p.cid, start.CIDs[0])

	result := recv(t, p).(packet.GameStartResult)
	assert.Equal(t, packet.StatusOK, result.Status)
}

func TestShotMarksCurrentPlayer(t *testing.T) {
	st := newTestState(t)
	host, guest := roomPair(t, st)

	st.handleShot(host, packet.Shot{Power: 100})

	relay := recv(t, guest).(packet.ShotRelay)
	assert.Equal(t, host.cid, relay.CID)

	r := st.currentRoom(host)
	assert.Equal(t, host.cid, r.currentPlayer)
}

func TestStopBallPosNeedsAuthority(t *testing.T) {
	st := newTestState(t)
	host, guest := roomPair(t, st)

	st.handleShot(host, packet.Shot{})
	drain(guest)

	// reports from anyone but the shooter are dropped
	st.handleStopBallPos(guest, packet.StopBallPos{})
	select {
	case pkt := <-host.out:
		t.Fatalf("unexpected packet %T", pkt.body)
	default:
	}

	st.handleStopBallPos(host, packet.StopBallPos{})

	echo := recv(t, host).(packet.StopBallPosRelay)
	assert.Equal(t, host.cid, echo.CID)
	relay := recv(t, guest).(packet.StopBallPosRelay)
	assert.Equal(t, host.cid, relay.CID)
}

func TestCommandEcho(t *testing.T) {
	st := newTestState(t)
	host, guest := roomPair(t, st)

	st.handleCommand(host, packet.Command{Cmd: 0x0001})
	echo := recv(t, host).(packet.CommandRelay)
	assert.Equal(t, uint16(0x0001), echo.Cmd)
	drain(guest)

	// the high bit suppresses the echo to the sender
	st.handleCommand(host, packet.Command{Cmd: 0x8001})
	select {
	case pkt := <-host.out:
		t.Fatalf("unexpected packet %T", pkt.body)
	default:
	}
	relay := recv(t, guest).(packet.CommandRelay)
	assert.Equal(t, uint16(0x8001), relay.Cmd)
}
