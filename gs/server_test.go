package gs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"splashsrv/db"
	"splashsrv/packet"
	"splashsrv/shop"
)

func newTestState(t *testing.T) *state {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(store.Close)

	return &state{
		nextCID:    firstCID,
		players:    make(map[packet.CID]*player),
		lobbies:    newLobbies(),
		shopItems:  shop.BuildSellList(),
		salonItems: shop.BuildSalonList(),
		store:      store,
		log:        zap.NewNop(),
	}
}

func mustLogin(t *testing.T, st *state, username string) *player {
	t.Helper()

	if err := st.store.CreateAccount(username, "pw"); err != nil {
		t.Fatal(err)
	}
	reply := st.handleLogin(packet.GameAuth{Username: username, Password: "pw", Version: 956})
	if reply.result != packet.LoginOK {
		t.Fatalf("login failed with %d", reply.result)
	}
	return st.players[reply.cid]
}

// recv pops the next queued packet for p.
func recv(t *testing.T, p *player) packet.Body {
	t.Helper()
	select {
	case pkt := <-p.out:
		return pkt.body
	default:
		t.Fatal("no packet queued")
		return nil
	}
}

func drain(p *player) {
	for {
		select {
		case <-p.out:
		default:
			return
		}
	}
}

func TestLoginPushesSessionSnapshot(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")

	snapshot, ok := recv(t, p).(packet.UserData)
	if !ok {
		t.Fatal("expected the session snapshot first")
	}
	assert.Equal(t, p.cid, snapshot.CID)
	assert.Equal(t, "_alice", snapshot.Name)

	color, ok := recv(t, p).(packet.ColorResult)
	if !ok {
		t.Fatal("expected the element cycle state second")
	}
	assert.Equal(t, int8(-1), int8(color.Element))
}

func TestLoginRejectsSecondSession(t *testing.T) {
	st := newTestState(t)
	mustLogin(t, st, "alice")

	reply := st.handleLogin(packet.GameAuth{Username: "alice", Password: "pw", Version: 956})
	assert.Equal(t, packet.LoginMultiLogin, reply.result)
	assert.Len(t, st.players, 1)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	st := newTestState(t)

	reply := st.handleLogin(packet.GameAuth{Username: "nobody", Password: "pw", Version: 956})
	assert.Equal(t, packet.LoginIDError, reply.result)
}

func TestGenerateCIDSkipsInUse(t *testing.T) {
	st := newTestState(t)
	st.players[600] = &player{cid: 600}
	st.players[601] = &player{cid: 601}

	assert.Equal(t, packet.CID(602), st.generateCID())
}

func TestGenerateCIDWraps(t *testing.T) {
	st := newTestState(t)
	st.nextCID = lastCID

	assert.Equal(t, lastCID, st.generateCID())
	assert.Equal(t, firstCID, st.generateCID())
}

func TestLogoutLeavesLobby(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	st.handleChangeMode(p, packet.ModeVS)
	st.handleEnterLobby(p, 0)

	l := st.lobbies.get(packet.ModeVS, 0)
	assert.Len(t, l.members, 1)

	st.removePlayer(p.cid)
	assert.Empty(t, l.members)
	assert.Empty(t, st.players)
}

func TestChangeModeEjectsFromLobby(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	st.handleChangeMode(p, packet.ModeVS)
	st.handleEnterLobby(p, 0)
	drain(p)

	st.handleChangeMode(p, packet.ModeCompetition)

	assert.Equal(t, packet.ModeCompetition, p.mode)
	assert.Equal(t, packet.LobbyNum(-1), p.lobby)
	assert.Empty(t, st.lobbies.get(packet.ModeVS, 0).members)

	result, ok := recv(t, p).(packet.ChangeModeResult)
	if !ok {
		t.Fatal("expected a mode change ack")
	}
	assert.Equal(t, packet.ModeCompetition, result.Mode)
}

func TestBuyItemAdjustsWallet(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	drain(p)

	item := st.shopItems[0]
	before := p.user.GP
	st.handleBuyItem(p, item.Item.One())

	result, ok := recv(t, p).(packet.BuyItemResult)
	if !ok {
		t.Fatal("expected the purchase verdict")
	}
	assert.Equal(t, packet.BuyOK, result.Result)
	assert.Equal(t, before-int32(item.Price), p.user.GP)
	assert.Equal(t, uint32(1), p.user.ItemAmount(item.Item))

	money, ok := recv(t, p).(packet.Money)
	if !ok {
		t.Fatal("expected a wallet refresh")
	}
	assert.Equal(t, p.user.GP, money.GP)
}

func TestBuyItemRejectsOverdraft(t *testing.T) {
	st := newTestState(t)
	p := mustLogin(t, st, "alice")
	drain(p)

	p.user.GP = 0
	st.handleBuyItem(p, st.shopItems[0].Item.One())

	result := recv(t, p).(packet.BuyItemResult)
	assert.Equal(t, packet.BuyBalance, result.Result)
	assert.Equal(t, int32(0), p.user.GP)
}
