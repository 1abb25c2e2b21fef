package packet

import "splashsrv/data"

// GameStartRequest is the room owner's signal to begin the round.
type GameStartRequest struct{}

func (GameStartRequest) Op() Op         { return OpGameStartRequest }
func (GameStartRequest) encode(*writer) {}

// GameStart launches the round on every client, carrying the course plan
// and the per-player slot tables.
type GameStart struct {
	Mode      Mode
	Rule      int8
	Time      uint8
	Member    int8
	MemberMax int8
	Course    int8
	Season    int8
	Holes     int8

	HoleNo  [18]int8
	WindDir [18]int8
	WindPow [18]int8
	Weather [18]int8
	CupPos  [18]int8

	CIDs           [50]CID
	Caddies        [50]int16
	CaddieReliance [50]int32
	Balls          [50]int32
	Holdbox        [50][8]data.CountedItem
}

func (GameStart) Op() Op { return OpGameStart }

func (m GameStart) encode(w *writer) {
	w.i8(int8(m.Mode))
	w.i8(m.Rule)
	w.u8(m.Time)
	w.i8(m.Member)
	w.i8(m.MemberMax)
	w.i8(m.Course)
	w.i8(m.Season)
	w.i8(m.Holes)
	for _, t := range [][18]int8{m.HoleNo, m.WindDir, m.WindPow, m.Weather, m.CupPos} {
		for _, v := range t {
			w.i8(v)
		}
	}
	for _, v := range m.CIDs {
		w.i32(v)
	}
	for _, v := range m.Caddies {
		w.i16(v)
	}
	for _, v := range m.CaddieReliance {
		w.i32(v)
	}
	for _, v := range m.Balls {
		w.i32(v)
	}
	for _, box := range m.Holdbox {
		for _, ci := range box {
			w.counted(ci)
		}
	}
}

func decodeGameStart(r *reader) GameStart {
	var m GameStart
	m.Mode = Mode(r.i8())
	m.Rule = r.i8()
	m.Time = r.u8()
	m.Member = r.i8()
	m.MemberMax = r.i8()
	m.Course = r.i8()
	m.Season = r.i8()
	m.Holes = r.i8()
	for _, t := range []*[18]int8{&m.HoleNo, &m.WindDir, &m.WindPow, &m.Weather, &m.CupPos} {
		for i := range t {
			t[i] = r.i8()
		}
	}
	for i := range m.CIDs {
		m.CIDs[i] = r.i32()
	}
	for i := range m.Caddies {
		m.Caddies[i] = r.i16()
	}
	for i := range m.CaddieReliance {
		m.CaddieReliance[i] = r.i32()
	}
	for i := range m.Balls {
		m.Balls[i] = r.i32()
	}
	for i := range m.Holdbox {
		for j := range m.Holdbox[i] {
			m.Holdbox[i][j] = r.counted()
		}
	}
	return m
}

// GameStartResult acks a game start request.
type GameStartResult struct {
	Status Status
}

func (GameStartResult) Op() Op             { return OpGameStartResult }
func (m GameStartResult) encode(w *writer) { w.i8(int8(m.Status)) }

// ClubChange announces the sender's club selection.
type ClubChange struct {
	Club int8
}

func (ClubChange) Op() Op             { return OpClubChange }
func (m ClubChange) encode(w *writer) { w.i8(m.Club) }

// ClubChangeRelay fans a club selection out to the room.
type ClubChangeRelay struct {
	CID  CID
	Club int8
}

func (ClubChangeRelay) Op() Op { return OpClubChangeRelay }

func (m ClubChangeRelay) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.Club)
}

// Direction announces the sender's aim direction.
type Direction struct {
	Dir float32
}

func (Direction) Op() Op             { return OpDirection }
func (m Direction) encode(w *writer) { w.f32(m.Dir) }

// DirectionRelay fans an aim direction out to the room.
type DirectionRelay struct {
	CID CID
	Dir float32
}

func (DirectionRelay) Op() Op { return OpDirectionRelay }

func (m DirectionRelay) encode(w *writer) {
	w.i32(m.CID)
	w.f32(m.Dir)
}

// Shot is one stroke. The CID slot is blank coming from the client; the
// relay stamps the sender in. A club of -1 is a timeout, -2 a whiff.
type Shot struct {
	Clock  uint64
	CID    CID
	Dir    float32
	Power  int16
	Impact int16
	HitX   int8
	HitY   int8
	Club   int8
}

func (Shot) Op() Op { return OpShot }

func (m Shot) encode(w *writer) {
	w.u64(m.Clock)
	w.i32(m.CID)
	w.f32(m.Dir)
	w.i16(m.Power)
	w.i16(m.Impact)
	w.i8(m.HitX)
	w.i8(m.HitY)
	w.i8(m.Club)
}

func decodeShot(r *reader) Shot {
	return Shot{
		Clock:  r.u64(),
		CID:    r.i32(),
		Dir:    r.f32(),
		Power:  r.i16(),
		Impact: r.i16(),
		HitX:   r.i8(),
		HitY:   r.i8(),
		Club:   r.i8(),
	}
}

// ShotRelay fans a stroke out to the room.
type ShotRelay struct {
	Shot
}

func (ShotRelay) Op() Op { return OpShotRelay }

// ScoreReport submits the round statistics at the end of a game.
type ScoreReport struct {
	Report data.GameReport
}

func (ScoreReport) Op() Op             { return OpScoreReport }
func (m ScoreReport) encode(w *writer) { w.gameReport(m.Report) }

// LoadStat reports course load progress.
type LoadStat struct {
	Stat int8
}

func (LoadStat) Op() Op             { return OpLoadStat }
func (m LoadStat) encode(w *writer) { w.i8(m.Stat) }

// LoadStatRelay fans load progress out to the room.
type LoadStatRelay struct {
	CID  CID
	Stat int8
}

func (LoadStatRelay) Op() Op { return OpLoadStatRelay }

func (m LoadStatRelay) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.Stat)
}

// LoadStat2 is the second load progress channel.
type LoadStat2 struct {
	Stat int8
}

func (LoadStat2) Op() Op             { return OpLoadStat2 }
func (m LoadStat2) encode(w *writer) { w.i8(m.Stat) }

// LoadStat2Relay fans the second load progress channel out to the room.
type LoadStat2Relay struct {
	CID  CID
	Stat int8
}

func (LoadStat2Relay) Op() Op { return OpLoadStat2Relay }

func (m LoadStat2Relay) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.Stat)
}

// BallPos is a mid-flight ball position sample.
type BallPos struct {
	CID  CID
	Hole int8
	Stat int8
	X    float32
	Y    float32
	Z    float32
}

func (BallPos) Op() Op { return OpBallPos }

func (m BallPos) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.Hole)
	w.i8(m.Stat)
	w.f32(m.X)
	w.f32(m.Y)
	w.f32(m.Z)
}

func decodeBallPos(r *reader) BallPos {
	return BallPos{
		CID:  r.i32(),
		Hole: r.i8(),
		Stat: r.i8(),
		X:    r.f32(),
		Y:    r.f32(),
		Z:    r.f32(),
	}
}

// BallPosRelay fans a ball position out to the room.
type BallPosRelay struct {
	BallPos
}

func (BallPosRelay) Op() Op { return OpBallPosRelay }

// StopBallPos is the final resting position of the shot, sent only by the
// player currently holding shot authority.
type StopBallPos struct {
	BallPos
}

func (StopBallPos) Op() Op { return OpStopBallPos }

// StopBallPosRelay fans a resting position out to the room.
type StopBallPosRelay struct {
	BallPos
}

func (StopBallPosRelay) Op() Op { return OpStopBallPosRelay }

// HoleOut reports finishing a hole.
type HoleOut struct {
	CID   CID
	Hole  int8
	Score int8
	GP    int16
}

func (HoleOut) Op() Op { return OpHoleOut }

func (m HoleOut) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.Hole)
	w.i8(m.Score)
	w.i16(m.GP)
}

func decodeHoleOut(r *reader) HoleOut {
	return HoleOut{CID: r.i32(), Hole: r.i8(), Score: r.i8(), GP: r.i16()}
}

// HoleOutRelay fans a hole-out out to the room.
type HoleOutRelay struct {
	HoleOut
}

func (HoleOutRelay) Op() Op { return OpHoleOutRelay }

// CupIn reports sinking the ball.
type CupIn struct {
	Hole  int8
	Score int8
}

func (CupIn) Op() Op { return OpCupIn }

func (m CupIn) encode(w *writer) {
	w.i8(m.Hole)
	w.i8(m.Score)
}

// ItemDrop announces a mid-round item drop to the room.
type ItemDrop struct {
	CID CID
	Val int8
}

func (ItemDrop) Op() Op { return OpItemDrop }

func (m ItemDrop) encode(w *writer) {
	w.i32(m.CID)
	w.i8(m.Val)
}

// Clock is the shared game timer, flowing both directions.
type Clock struct {
	Timer int64
	Unk   int32
}

func (Clock) Op() Op { return OpClock }

func (m Clock) encode(w *writer) {
	w.i64(m.Timer)
	w.i32(m.Unk)
}

// Command is the in-round player command channel. Commands with the
// 0x8000 flag echo back to the sender as well.
type Command struct {
	CID CID
	P0  uint32
	P1  uint32
	Cmd uint16
}

func (Command) Op() Op { return OpCommand }

func (m Command) encode(w *writer) {
	w.i32(m.CID)
	w.u32(m.P0)
	w.u32(m.P1)
	w.u16(m.Cmd)
	w.pad(2)
}

func decodeCommand(r *reader) Command {
	m := Command{CID: r.i32(), P0: r.u32(), P1: r.u32(), Cmd: r.u16()}
	r.take(2)
	return m
}

// CommandRelay fans a command out to the room.
type CommandRelay struct {
	Command
}

func (CommandRelay) Op() Op { return OpCommandRelay }

// Command2 is the extended command channel with two float arguments.
type Command2 struct {
	CID CID
	P0  uint32
	P1  uint32
	Cmd uint16
	P2  float32
	P3  float32
}

func (Command2) Op() Op { return OpCommand2 }

func (m Command2) encode(w *writer) {
	w.i32(m.CID)
	w.u32(m.P0)
	w.u32(m.P1)
	w.u16(m.Cmd)
	w.pad(2)
	w.f32(m.P2)
	w.f32(m.P3)
}

func decodeCommand2(r *reader) Command2 {
	m := Command2{CID: r.i32(), P0: r.u32(), P1: r.u32(), Cmd: r.u16()}
	r.take(2)
	m.P2 = r.f32()
	m.P3 = r.f32()
	return m
}

// Command2Relay fans an extended command out to the room.
type Command2Relay struct {
	Command2
}

func (Command2Relay) Op() Op { return OpCommand2Relay }

// CharPos is an avatar position sample in lounge areas.
type CharPos struct {
	CID CID
	Unk float32
	X   float32
	Y   float32
	Z   float32
}

func (CharPos) Op() Op { return OpCharPos }

func (m CharPos) encode(w *writer) {
	w.i32(m.CID)
	w.f32(m.Unk)
	w.f32(m.X)
	w.f32(m.Y)
	w.f32(m.Z)
}

func decodeCharPos(r *reader) CharPos {
	return CharPos{CID: r.i32(), Unk: r.f32(), X: r.f32(), Y: r.f32(), Z: r.f32()}
}

// CharPosRelay fans an avatar position out to the lounge.
type CharPosRelay struct {
	CharPos
}

func (CharPosRelay) Op() Op { return OpCharPosRelay }

// StatBroadcast is the client pushing its own presence word.
type StatBroadcast struct {
	UID  UID
	Stat uint32
}

func (StatBroadcast) Op() Op { return OpStatBroadcast }

func (m StatBroadcast) encode(w *writer) {
	w.i32(m.UID)
	w.u32(m.Stat)
}

// Retire is a gallery player's exit from the round.
type Retire struct{}

func (Retire) Op() Op         { return OpRetire }
func (Retire) encode(*writer) {}

// QuickMatchEntry is the self-description sent when entering quick match
// rating. Most of it packs into one bit-sliced word.
type QuickMatchEntry struct {
	UID      UID
	Score    int16
	X6       uint8
	WinCombo int8

	ServerID int8 // 5 bits
	Rank     int8 // 5 bits
	BestRank int8 // 5 bits
	ItemOn   bool

	RuleSetting int8 // 0 stroke, 1 match, 2 random
	HoleSetting int8 // 0..3 fixed counts, 4 random
	TimeSetting int8 // 0..3 fixed limits, 4 random

	Unk int8 // 2 bits
}

func (m QuickMatchEntry) encodeFields(w *writer) {
	w.i32(m.UID)
	w.i16(m.Score)
	w.u8(m.X6)
	w.i8(m.WinCombo)
	v := uint32(m.ServerID&0x1F)<<27 |
		uint32(m.Rank&0x1F)<<22 |
		uint32(m.BestRank&0x1F)<<17
	if m.ItemOn {
		v |= 1 << 16
	}
	v |= uint32(m.RuleSetting&3)<<14 |
		uint32(m.HoleSetting&7)<<11 |
		uint32(m.TimeSetting&7)<<8
	w.bitword(v)
	w.bitword(uint32(m.Unk&3) << 30)
}

func decodeQuickMatchEntry(r *reader) QuickMatchEntry {
	var m QuickMatchEntry
	m.UID = r.i32()
	m.Score = r.i16()
	m.X6 = r.u8()
	m.WinCombo = r.i8()
	v := r.bitword()
	m.ServerID = int8(v >> 27 & 0x1F)
	m.Rank = int8(v >> 22 & 0x1F)
	m.BestRank = int8(v >> 17 & 0x1F)
	m.ItemOn = v>>16&1 != 0
	m.RuleSetting = int8(v >> 14 & 3)
	m.HoleSetting = int8(v >> 11 & 7)
	m.TimeSetting = int8(v >> 8 & 7)
	m.Unk = int8(r.bitword() >> 30 & 3)
	return m
}

// RankEnterRequest marks the player ready for quick matching.
type RankEnterRequest struct {
	Entry QuickMatchEntry
}

func (RankEnterRequest) Op() Op             { return OpRankEnterRequest }
func (m RankEnterRequest) encode(w *writer) { m.Entry.encodeFields(w) }

// RankEnterResult acks quick match readiness.
type RankEnterResult struct {
	Status Status
}

func (RankEnterResult) Op() Op             { return OpRankEnterResult }
func (m RankEnterResult) encode(w *writer) { w.i8(int8(m.Status)) }

// RankLeaveRequest cancels quick match readiness.
type RankLeaveRequest struct{}

func (RankLeaveRequest) Op() Op         { return OpRankLeaveRequest }
func (RankLeaveRequest) encode(*writer) {}

// RankLeaveResult acks cancelling quick match readiness.
type RankLeaveResult struct {
	Status Status
}

func (RankLeaveResult) Op() Op             { return OpRankLeaveResult }
func (m RankLeaveResult) encode(w *writer) { w.i8(int8(m.Status)) }

// RankJump moves a matched player to another server.
type RankJump struct {
	SvNo        int8
	VSPlayerUID UID
}

func (RankJump) Op() Op { return OpRankJump }

func (m RankJump) encode(w *writer) {
	w.i8(m.SvNo)
	w.i32(m.VSPlayerUID)
}

// RankJumpDone reports the server move finished.
type RankJumpDone struct{}

func (RankJumpDone) Op() Op         { return OpRankJumpDone }
func (RankJumpDone) encode(*writer) {}

// RankStartRequest starts the matched quick game.
type RankStartRequest struct {
	Entry QuickMatchEntry
}

func (RankStartRequest) Op() Op             { return OpRankStartRequest }
func (m RankStartRequest) encode(w *writer) { m.Entry.encodeFields(w) }

// RankData is the player's rating after a quick match.
type RankData struct {
	UID      UID
	Score    int16
	WinCombo uint8
	Rank     uint8 // 5 bits
	RankUp   bool
	RankDown bool
}

func (RankData) Op() Op { return OpRankData }

func (m RankData) encode(w *writer) {
	w.i32(m.UID)
	w.i16(m.Score)
	w.u8(m.WinCombo)
	b := m.Rank & 0x1F << 3
	if m.RankUp {
		b |= 1 << 2
	}
	if m.RankDown {
		b |= 1 << 1
	}
	w.u8(b)
}

// RankOpponent announces the matched opponent.
type RankOpponent struct {
	CharType int8
	Rank     int8
}

func (RankOpponent) Op() Op { return OpRankOpponent }

func (m RankOpponent) encode(w *writer) {
	w.i8(m.CharType)
	w.i8(m.Rank)
}

// QuickItemOn sets the item-on preference for quick matches.
type QuickItemOn struct {
	On int8
}

func (QuickItemOn) Op() Op             { return OpQuickItemOn }
func (m QuickItemOn) encode(w *writer) { w.i8(m.On) }

// ClockPing is the in-round keepalive.
type ClockPing struct{}

func (ClockPing) Op() Op         { return OpClockPing }
func (ClockPing) encode(*writer) {}

// ClockPong answers ClockPing with the server clock.
type ClockPong struct {
	Timer int64
	Unk   int16
}

func (ClockPong) Op() Op { return OpClockPong }

func (m ClockPong) encode(w *writer) {
	w.i64(m.Timer)
	w.i16(m.Unk)
}

// Ping is the idle connection keepalive, flowing both directions.
type Ping struct {
	Seq int32
}

func (Ping) Op() Op             { return OpPing }
func (m Ping) encode(w *writer) { w.i32(m.Seq) }

// Pong answers Ping, echoing the request pid.
type Pong struct {
	Seq int32
}

func (Pong) Op() Op             { return OpPong }
func (m Pong) encode(w *writer) { w.i32(m.Seq) }

// AddGPRequest reports GP earned by a round result screen.
type AddGPRequest struct {
	Unk      int32
	ResultGP int32
}

func (AddGPRequest) Op() Op { return OpAddGPRequest }

func (m AddGPRequest) encode(w *writer) {
	w.i32(m.Unk)
	w.i32(m.ResultGP)
}

// AddGPResult acks an AddGPRequest.
type AddGPResult struct {
	Num0 int32
	Num1 int32
}

func (AddGPResult) Op() Op { return OpAddGPResult }

func (m AddGPResult) encode(w *writer) {
	w.i32(m.Num0)
	w.i32(m.Num1)
}

// ColorResult is the element cycle outcome pushed after login and at
// cycle boundaries. Element is None unless one was just assigned.
type ColorResult struct {
	Element     data.Element
	LastElement data.Element
	Result      int8
	RankInColor int32
	GP          int32
	Item        data.CountedItem
}

func (ColorResult) Op() Op { return OpColorResult }

func (m ColorResult) encode(w *writer) {
	w.i8(int8(m.Element))
	w.i8(int8(m.LastElement))
	w.i8(m.Result)
	w.i32(m.RankInColor)
	w.i32(m.GP)
	w.counted(m.Item)
}

// CompeResults is the per-player competition score table.
type CompeResults struct {
	CIDs   [20]CID
	Counts [20]int32
}

func (CompeResults) Op() Op { return OpCompeResults }

func (m CompeResults) encode(w *writer) {
	for _, v := range m.CIDs {
		w.i32(v)
	}
	for _, v := range m.Counts {
		w.i32(v)
	}
}

// CompeResultsRequest asks for the competition score table.
type CompeResultsRequest struct{}

func (CompeResultsRequest) Op() Op         { return OpCompeResultsReq }
func (CompeResultsRequest) encode(*writer) {}

// Telop triggers a broadcast ticker message by id.
type Telop struct {
	ID   int32
	Arg1 int32
	Arg2 int32
	Arg3 int32
}

func (Telop) Op() Op { return OpTelop }

func (m Telop) encode(w *writer) {
	w.i32(m.ID)
	w.i32(m.Arg1)
	w.i32(m.Arg2)
	w.i32(m.Arg3)
}

// TelopRelay fans a ticker message out to everyone.
type TelopRelay struct {
	Telop
}

func (TelopRelay) Op() Op { return OpTelopRelay }

// TelopText is a ticker message with arbitrary text.
type TelopText struct {
	Unk  [26]byte
	Text string
}

func (TelopText) Op() Op { return OpTelopText }

func (m TelopText) encode(w *writer) {
	w.bytes(m.Unk[:])
	w.utf16Text(m.Text)
}

// DebugMessage is the client's free-form debug channel.
type DebugMessage struct {
	Message string
}

func (DebugMessage) Op() Op             { return OpDebugMessage }
func (m DebugMessage) encode(w *writer) { w.utf16Text(m.Message) }

func init() {
	register(OpGameStartRequest, func(*reader) Body { return GameStartRequest{} })
	register(OpGameStart, func(r *reader) Body { return decodeGameStart(r) })
	register(OpGameStartResult, func(r *reader) Body { return GameStartResult{Status: Status(r.i8())} })
	register(OpClubChange, func(r *reader) Body { return ClubChange{Club: r.i8()} })
	register(OpClubChangeRelay, func(r *reader) Body {
		return ClubChangeRelay{CID: r.i32(), Club: r.i8()}
	})
	register(OpDirection, func(r *reader) Body { return Direction{Dir: r.f32()} })
	register(OpDirectionRelay, func(r *reader) Body {
		return DirectionRelay{CID: r.i32(), Dir: r.f32()}
	})
	register(OpShot, func(r *reader) Body { return decodeShot(r) })
	register(OpShotRelay, func(r *reader) Body { return ShotRelay{decodeShot(r)} })
	register(OpScoreReport, func(r *reader) Body { return ScoreReport{Report: r.gameReport()} })
	register(OpLoadStat, func(r *reader) Body { return LoadStat{Stat: r.i8()} })
	register(OpLoadStatRelay, func(r *reader) Body {
		return LoadStatRelay{CID: r.i32(), Stat: r.i8()}
	})
	register(OpLoadStat2, func(r *reader) Body { return LoadStat2{Stat: r.i8()} })
	register(OpLoadStat2Relay, func(r *reader) Body {
		return LoadStat2Relay{CID: r.i32(), Stat: r.i8()}
	})
	register(OpBallPos, func(r *reader) Body { return decodeBallPos(r) })
	register(OpBallPosRelay, func(r *reader) Body { return BallPosRelay{decodeBallPos(r)} })
	register(OpStopBallPos, func(r *reader) Body { return StopBallPos{decodeBallPos(r)} })
	register(OpStopBallPosRelay, func(r *reader) Body { return StopBallPosRelay{decodeBallPos(r)} })
	register(OpHoleOut, func(r *reader) Body { return decodeHoleOut(r) })
	register(OpHoleOutRelay, func(r *reader) Body { return HoleOutRelay{decodeHoleOut(r)} })
	register(OpCupIn, func(r *reader) Body { return CupIn{Hole: r.i8(), Score: r.i8()} })
	register(OpItemDrop, func(r *reader) Body { return ItemDrop{CID: r.i32(), Val: r.i8()} })
	register(OpClock, func(r *reader) Body { return Clock{Timer: r.i64(), Unk: r.i32()} })
	register(OpCommand, func(r *reader) Body { return decodeCommand(r) })
	register(OpCommandRelay, func(r *reader) Body { return CommandRelay{decodeCommand(r)} })
	register(OpCommand2, func(r *reader) Body { return decodeCommand2(r) })
	register(OpCommand2Relay, func(r *reader) Body { return Command2Relay{decodeCommand2(r)} })
	register(OpCharPos, func(r *reader) Body { return decodeCharPos(r) })
	register(OpCharPosRelay, func(r *reader) Body { return CharPosRelay{decodeCharPos(r)} })
	register(OpStatBroadcast, func(r *reader) Body {
		return StatBroadcast{UID: r.i32(), Stat: r.u32()}
	})
	register(OpRetire, func(*reader) Body { return Retire{} })
	register(OpRankEnterRequest, func(r *reader) Body {
		return RankEnterRequest{Entry: decodeQuickMatchEntry(r)}
	})
	register(OpRankEnterResult, func(r *reader) Body { return RankEnterResult{Status: Status(r.i8())} })
	register(OpRankLeaveRequest, func(*reader) Body { return RankLeaveRequest{} })
	register(OpRankLeaveResult, func(r *reader) Body { return RankLeaveResult{Status: Status(r.i8())} })
	register(OpRankJump, func(r *reader) Body {
		return RankJump{SvNo: r.i8(), VSPlayerUID: r.i32()}
	})
	register(OpRankJumpDone, func(*reader) Body { return RankJumpDone{} })
	register(OpRankStartRequest, func(r *reader) Body {
		return RankStartRequest{Entry: decodeQuickMatchEntry(r)}
	})
	register(OpRankData, func(r *reader) Body {
		var m RankData
		m.UID = r.i32()
		m.Score = r.i16()
		m.WinCombo = r.u8()
		b := r.u8()
		m.Rank = b >> 3
		m.RankUp = b>>2&1 != 0
		m.RankDown = b>>1&1 != 0
		return m
	})
	register(OpRankOpponent, func(r *reader) Body {
		return RankOpponent{CharType: r.i8(), Rank: r.i8()}
	})
	register(OpQuickItemOn, func(r *reader) Body { return QuickItemOn{On: r.i8()} })
	register(OpClockPing, func(*reader) Body { return ClockPing{} })
	register(OpClockPong, func(r *reader) Body { return ClockPong{Timer: r.i64(), Unk: r.i16()} })
	register(OpPing, func(r *reader) Body { return Ping{Seq: r.i32()} })
	register(OpPong, func(r *reader) Body { return Pong{Seq: r.i32()} })
	register(OpAddGPRequest, func(r *reader) Body {
		return AddGPRequest{Unk: r.i32(), ResultGP: r.i32()}
	})
	register(OpAddGPResult, func(r *reader) Body {
		return AddGPResult{Num0: r.i32(), Num1: r.i32()}
	})
	register(OpColorResult, func(r *reader) Body {
		return ColorResult{
			Element:     data.Element(r.i8()),
			LastElement: data.Element(r.i8()),
			Result:      r.i8(),
			RankInColor: r.i32(),
			GP:          r.i32(),
			Item:        r.counted(),
		}
	})
	register(OpCompeResults, func(r *reader) Body {
		var m CompeResults
		for i := range m.CIDs {
			m.CIDs[i] = r.i32()
		}
		for i := range m.Counts {
			m.Counts[i] = r.i32()
		}
		return m
	})
	register(OpCompeResultsReq, func(*reader) Body { return CompeResultsRequest{} })
	register(OpTelop, func(r *reader) Body {
		return Telop{ID: r.i32(), Arg1: r.i32(), Arg2: r.i32(), Arg3: r.i32()}
	})
	register(OpTelopRelay, func(r *reader) Body {
		return TelopRelay{Telop{ID: r.i32(), Arg1: r.i32(), Arg2: r.i32(), Arg3: r.i32()}}
	})
	register(OpTelopText, func(r *reader) Body {
		var m TelopText
		copy(m.Unk[:], r.take(26))
		m.Text = r.utf16Text()
		return m
	})
	register(OpDebugMessage, func(r *reader) Body { return DebugMessage{Message: r.utf16Text()} })
}
