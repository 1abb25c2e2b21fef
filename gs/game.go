package gs

import (
	"math/rand"

	"go.uber.org/zap"

	"splashsrv/data"
	"splashsrv/packet"
)

// newGameStart rolls a fresh round: a random three-hole selection with
// calm conditions, the remaining slots blanked out.
func newGameStart(mode packet.Mode, members []packet.CID) packet.GameStart {
	g := packet.GameStart{
		Mode:      mode,
		Member:    int8(len(members)),
		MemberMax: int8(len(members)),
		Season:    1,
		Holes:     3,
	}

	order := rand.Perm(18)
	for i := range g.HoleNo {
		if i < int(g.Holes) {
			g.HoleNo[i] = int8(order[i])
		} else {
			g.HoleNo[i] = -1
		}
	}
	for i := range g.CIDs {
		g.CIDs[i] = -1
	}
	copy(g.CIDs[:], members)
	return g
}

func (st *state) handleGameStart(p *player) {
	if p.mode == packet.ModeSingle {
		st.send(p, newGameStart(p.mode, []packet.CID{p.cid}))
		st.send(p, packet.GameStartResult{Status: packet.StatusOK})
		return
	}

	r := st.currentRoom(p)
	if r == nil {
		st.log.Error("game start outside a room", zap.Int32("cid", p.cid))
		st.send(p, packet.GameStartResult{Status: packet.StatusErr})
		return
	}

	g := newGameStart(p.mode, r.members)
	for _, cid := range r.members {
		if other, ok := st.players[cid]; ok {
			st.send(other, g)
		}
	}
	st.send(p, packet.GameStartResult{Status: packet.StatusOK})
}

// relayToRoom fans a stamped packet out to everyone in the sender's
// room but the sender.
func (st *state) relayToRoom(p *player, body packet.Body) {
	r := st.currentRoom(p)
	if r == nil {
		st.log.Warn("relay outside a room",
			zap.Int32("cid", p.cid), zap.Int16("op", int16(body.Op())))
		return
	}
	for _, cid := range r.members {
		if cid == p.cid {
			continue
		}
		if other, ok := st.players[cid]; ok {
			st.send(other, body)
		}
	}
}

// handleShot records who is swinging before relaying, so later ball
// reports can be checked against the player at the tee.
func (st *state) handleShot(p *player, m packet.Shot) {
	if r := st.currentRoom(p); r != nil {
		r.currentPlayer = p.cid
	}
	m.CID = p.cid
	st.relayToRoom(p, packet.ShotRelay{Shot: m})
}

// handleStopBallPos accepts a final ball position only from the player
// whose shot is in flight, and echoes it back to the shooter as well.
func (st *state) handleStopBallPos(p *player, m packet.StopBallPos) {
	r := st.currentRoom(p)
	if r == nil {
		st.log.Warn("ball stop outside a room", zap.Int32("cid", p.cid))
		return
	}
	if r.currentPlayer != p.cid {
		st.log.Error("ball stop from a spectating player",
			zap.Int32("cid", p.cid), zap.Int32("current", r.currentPlayer))
		return
	}
	m.CID = p.cid
	st.send(p, packet.StopBallPosRelay{BallPos: m.BallPos})
	st.relayToRoom(p, packet.StopBallPosRelay{BallPos: m.BallPos})
}

// handleCommand relays an in-round control word. Commands without the
// high bit set are acknowledged to the sender first.
func (st *state) handleCommand(p *player, m packet.Command) {
	m.CID = p.cid
	relay := packet.CommandRelay{Command: m}
	if m.Cmd&0x8000 == 0 {
		st.send(p, relay)
	}
	st.relayToRoom(p, relay)
}

// handleSingleItems hands out the consumable loadout for a practice
// round.
func (st *state) handleSingleItems(p *player) {
	reply := packet.SingleItems{Count: 8}
	slot := 0
	for _, num := range []uint32{1, 3, 5, 7} {
		item := data.MustItem(data.Category{Kind: data.KindCarryItemEnvironment}, num)
		reply.Items[slot] = data.MustCountedItem(item, 100)
		slot++
	}
	for num := uint32(1); num <= 4; num++ {
		item := data.MustItem(data.Category{Kind: data.KindCarryItemPowerGauge}, num)
		reply.Items[slot] = data.MustCountedItem(item, 100)
		slot++
	}
	st.send(p, reply)
}
