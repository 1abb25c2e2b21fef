package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"splashsrv/data"
)

func roundTrip(t *testing.T, body Body, pid int16) Body {
	t.Helper()
	buf, err := Marshal(body, pid)
	if err != nil {
		t.Fatal(err)
	}
	h, got, err := Unmarshal(buf)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, body.Op(), h.ID)
	assert.Equal(t, pid, h.PID)
	return got
}

func TestRoundTripShot(t *testing.T) {
	shot := Shot{
		Clock:  123456789,
		CID:    613,
		Dir:    1.25,
		Power:  950,
		Impact: -30,
		HitX:   4,
		HitY:   -2,
		Club:   5,
	}
	got := roundTrip(t, shot, 17)
	assert.Equal(t, shot, got)

	relay := ShotRelay{shot}
	assert.Equal(t, relay, roundTrip(t, relay, 18))
}

func TestRoundTripUserData(t *testing.T) {
	u := UserData{
		CID:              600,
		UID:              41,
		ChrUID:           1001,
		RankScoreItemOn:  120,
		RankScoreItemOff: -5,
		MP:               300,
		Year:             2010,
		Month:            6,
		Day:              15,
		Name:             "Birdie",
		Element:          data.ElementGreen,
		RankItemOn:       12,
		RankItemOff:      31,
		BestRankItemOn:   1,
		BestRankItemOff:  30,
		Flags:            4,
		Debug:            true,
	}
	u.Golfbag[0] = data.MustItem(data.Category{Kind: data.KindClubSet}, 3)
	u.Medals[1][2] = 7
	u.Awards[19] = 99

	assert.Equal(t, u, roundTrip(t, u, 1))
}

func TestRoundTripGameStart(t *testing.T) {
	var g GameStart
	g.Mode = ModeVS
	g.Rule = 1
	g.Time = 2
	g.Member = 4
	g.MemberMax = 50
	g.Course = 3
	g.Season = 1
	g.Holes = 18
	for i := range g.HoleNo {
		g.HoleNo[i] = int8(i)
		g.WindDir[i] = int8(i % 8)
		g.WindPow[i] = int8(i % 5)
		g.Weather[i] = int8(i % 2)
		g.CupPos[i] = int8(i % 3)
	}
	g.CIDs[0] = 600
	g.CIDs[3] = 777
	g.Caddies[0] = 2
	g.CaddieReliance[0] = 55
	g.Balls[1] = 9
	held, err := data.NewCountedItem(data.MustItem(data.Category{Kind: data.KindBall}, 1), 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Holdbox[0][0] = held

	assert.Equal(t, g, roundTrip(t, g, 9))
}

func TestRoundTripQuickMatchEntry(t *testing.T) {
	e := QuickMatchEntry{
		UID:         41,
		Score:       1500,
		X6:          3,
		WinCombo:    4,
		ServerID:    2,
		Rank:        17,
		BestRank:    21,
		ItemOn:      true,
		RuleSetting: 2,
		HoleSetting: 4,
		TimeSetting: 1,
		Unk:         3,
	}
	req := RankEnterRequest{Entry: e}
	assert.Equal(t, req, roundTrip(t, req, 5))
}

func TestQuickMatchEntryBitLayout(t *testing.T) {
	req := RankEnterRequest{Entry: QuickMatchEntry{ServerID: 1}}
	buf, err := Marshal(req, 0)
	if err != nil {
		t.Fatal(err)
	}
	// header 4 + uid 4 + score 2 + x6 1 + combo 1, then the packed word
	// big-endian with server id in the top five bits.
	word := buf[12:16]
	assert.Equal(t, byte(1<<3), word[0])
}

func TestRankDataBitLayout(t *testing.T) {
	d := RankData{UID: 41, Score: 100, WinCombo: 2, Rank: 9, RankUp: true}
	buf, err := Marshal(d, 0)
	if err != nil {
		t.Fatal(err)
	}
	last := buf[len(buf)-1]
	assert.Equal(t, byte(9<<3|1<<2), last)

	assert.Equal(t, d, roundTrip(t, d, 3))
}

func TestRoundTripRoomInfo(t *testing.T) {
	m := RoomInfo{
		Mode:  ModeVS,
		Lobby: 2,
		Stat: RoomStat{
			Room:          7,
			Flag:          1,
			MemberMax:     4,
			Member:        2,
			Rules:         1,
			TimeLimit:     2,
			Course:        3,
			Season:        1,
			NumHoles:      9,
			CourseSetting: 1,
			Limits:        [8]uint8{1, 2, 3, 4, 5, 6, 7, 8},
			LimitB:        [5]uint8{1, 100, 9, 0, 77},
		},
		Name:     "casual 9h",
		Password: "pw",
	}
	assert.Equal(t, m, roundTrip(t, m, 2))
}

func TestEnterRoomFlagBit(t *testing.T) {
	m := EnterRoomRequest{Room: 3, Flag: true}
	buf, err := Marshal(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	// flag rides as the top bit of the big-endian word after the room
	// number.
	assert.Equal(t, byte(0x80), buf[5])

	assert.Equal(t, m, roundTrip(t, m, 4))
}

func TestRoundTripChatMessage(t *testing.T) {
	m := ChatMessage{
		CID:      601,
		MsgType:  0,
		ServerID: 1,
		Name:     "Birdie",
		Message:  "nice shot!",
	}
	assert.Equal(t, m, roundTrip(t, m, 12))
}

func TestRoundTripMail(t *testing.T) {
	m := Mail{
		MailUID: 9,
		FromUID: 41,
		ToUID:   42,
		Date:    DateTime{Year: 2010, Month: 6, Day: 15, Hour: 12, Minute: 30, Second: 5},
		Text:    "see you on the green",
	}
	assert.Equal(t, m, roundTrip(t, m, 7))
}

func TestRoundTripModeCtrl(t *testing.T) {
	var m ModeCtrl
	m.Flags[0] = true
	m.Flags[8] = true
	m.Flags[91] = true

	buf, err := Marshal(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, buf, 4+12)
	assert.Equal(t, byte(0x80), buf[4])
	assert.Equal(t, byte(0x80), buf[5])
	// bit 91 sits in byte 11, four bits down from the top.
	assert.Equal(t, byte(0x10), buf[15])

	assert.Equal(t, m, roundTrip(t, m, 0))
}

func TestRoundTripRecycleRequest(t *testing.T) {
	m := RecycleRequest{Index: 4, GoldTicket: true}
	buf, err := Marshal(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, buf, 4+4)
	assert.Equal(t, m, roundTrip(t, m, 0))
}

func TestRoundTripSellList(t *testing.T) {
	m := SellList{Items: []data.SellItem{
		{
			Item:      data.MustItem(data.Category{Kind: data.KindBall}, 1),
			Currency:  data.CurrencyGP,
			Marketing: data.MarketingNew,
			Price:     300,
		},
		{
			Item:     data.MustItem(data.Category{Kind: data.KindClubSet}, 2),
			Currency: data.CurrencySC,
			SPPrice:  120,
		},
	}}
	assert.Equal(t, m, roundTrip(t, m, 3))
}

func TestRoundTripScoreReport(t *testing.T) {
	m := ScoreReport{
		Report: data.GameReport{
			Outcome:      data.OutcomeWin,
			NumStrokes:   38,
			NumPutts:     14,
			NumBirdies:   3,
			PlayTime:     1800,
			HalfwayScore: 1,
			Score:        -3,
		},
	}
	assert.Equal(t, m, roundTrip(t, m, 21))
}

func TestUnknownOpcodePassthrough(t *testing.T) {
	raw := []byte{0x2B, 0x01, 0x00, 0x00, 0xDE, 0xAD, 0xBE, 0xEF}
	h, body, err := Unmarshal(raw)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, Op(299), h.ID)
	u, ok := body.(Unknown)
	if !ok {
		t.Fatalf("expected Unknown, got %T", body)
	}
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, u.Raw)

	out, err := Marshal(u, h.PID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, raw, out)
}

func TestTruncatedPayload(t *testing.T) {
	buf, err := Marshal(Shot{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = Unmarshal(buf[:len(buf)-2])
	assert.Error(t, err)

	_, _, err = Unmarshal([]byte{0x01})
	assert.Error(t, err)
}

func TestOversizedStringFailsMarshal(t *testing.T) {
	name := make([]rune, 40)
	for i := range name {
		name[i] = 'x'
	}
	_, err := Marshal(ChatMessage{Name: string(name)}, 0)
	assert.Error(t, err)
}
