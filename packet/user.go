package packet

import "splashsrv/data"

// UserRecordRequest asks for a player's lifetime record. A UID of -1
// means the requester's own record.
type UserRecordRequest struct {
	UID UID
}

func (UserRecordRequest) Op() Op             { return OpUserRecordRequest }
func (m UserRecordRequest) encode(w *writer) { w.i32(m.UID) }

// UserRecord carries a player's lifetime record.
type UserRecord struct {
	UID    UID
	Data   data.URecord
	Status Status
}

func (UserRecord) Op() Op { return OpUserRecord }

func (m UserRecord) encode(w *writer) {
	w.i32(m.UID)
	w.binwrite(&m.Data)
	w.i8(int8(m.Status))
}

// CourseRecordRequest asks for a per-course record. HoleIdx selects the
// round length: 0 is 3 holes, 1 is 6, 2 is 9, 3 is 18.
type CourseRecordRequest struct {
	UID     UID
	Course  int8
	Season  int8
	HoleIdx int8
}

func (CourseRecordRequest) Op() Op { return OpCourseRecordReq }

func (m CourseRecordRequest) encode(w *writer) {
	w.i32(m.UID)
	w.i8(m.Course)
	w.i8(m.Season)
	w.i8(m.HoleIdx)
}

// CourseRecord carries a per-course record.
type CourseRecord struct {
	UID     UID
	Course  int8
	Season  int8
	HoleIdx int8
	Data    data.CRecord
	Status  Status
}

func (CourseRecord) Op() Op { return OpCourseRecord }

func (m CourseRecord) encode(w *writer) {
	w.i32(m.UID)
	w.i8(m.Course)
	w.i8(m.Season)
	w.i8(m.HoleIdx)
	w.cRecord(m.Data)
	w.i8(int8(m.Status))
}

// AppearanceRequest asks for another player's avatar appearance.
type AppearanceRequest struct {
	CID CID
}

func (AppearanceRequest) Op() Op             { return OpAppearanceRequest }
func (m AppearanceRequest) encode(w *writer) { w.i32(m.CID) }

// Appearance carries a player's avatar appearance.
type Appearance struct {
	CID  CID
	Unk  int32
	Data data.Appearance
}

func (Appearance) Op() Op { return OpAppearance }

func (m Appearance) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.Unk)
	w.appearance(m.Data)
}

// MoneyRequest asks for the current wallet balances.
type MoneyRequest struct{}

func (MoneyRequest) Op() Op         { return OpMoneyRequest }
func (MoneyRequest) encode(*writer) {}

// Money carries the wallet balances.
type Money struct {
	GP int32
	SC int32
}

func (Money) Op() Op { return OpMoney }

func (m Money) encode(w *writer) {
	w.i32(m.GP)
	w.i32(m.SC)
}

// FirstCharRequest submits the appearance chosen during first-time
// character creation.
type FirstCharRequest struct {
	Data data.Appearance
}

func (FirstCharRequest) Op() Op             { return OpFirstCharRequest }
func (m FirstCharRequest) encode(w *writer) { w.appearance(m.Data) }

// FirstCharResult acks first-time character creation.
type FirstCharResult struct {
	Status Status
}

func (FirstCharResult) Op() Op             { return OpFirstCharResult }
func (m FirstCharResult) encode(w *writer) { w.i8(int8(m.Status)) }

// CharUIDsByUID asks for a player's character roster by account id.
type CharUIDsByUID struct {
	UID UID
}

func (CharUIDsByUID) Op() Op             { return OpCharUIDsByUID }
func (m CharUIDsByUID) encode(w *writer) { w.i32(m.UID) }

// CharUIDsRequest asks for a player's character roster by session id.
type CharUIDsRequest struct {
	CID CID
}

func (CharUIDsRequest) Op() Op             { return OpCharUIDsRequest }
func (m CharUIDsRequest) encode(w *writer) { w.i32(m.CID) }

// CharUIDs lists the character ids a player owns. The count on the wire
// includes the leading CID slot, so it is len(ChrUIDs)+1.
type CharUIDs struct {
	CID     CID
	ChrUIDs []ChrUID
}

func (CharUIDs) Op() Op { return OpCharUIDs }

func (m CharUIDs) encode(w *writer) {
	w.i32(int32(len(m.ChrUIDs) + 1))
	w.i32(m.CID)
	for _, u := range m.ChrUIDs {
		w.i32(u)
	}
}

// ChrData is the full state of one owned character.
type ChrData struct {
	ChrUID       ChrUID
	Type         int16
	Class        data.Class
	X7           int8
	ParamPower   int16
	ParamControl int16
	ParamImpact  int16
	ParamSpin    int16
	X10          [16]byte
	Params       [8]data.ParamTuple
	Appearance   data.Appearance
	Club         data.Item
	Ball         data.Item
	Caddie       data.Item
}

func (c ChrData) encodeFields(w *writer) {
	w.i32(c.ChrUID)
	w.i16(c.Type)
	w.i8(int8(c.Class))
	w.i8(c.X7)
	w.i16(c.ParamPower)
	w.i16(c.ParamControl)
	w.i16(c.ParamImpact)
	w.i16(c.ParamSpin)
	w.bytes(c.X10[:])
	for _, p := range c.Params {
		w.paramTuple(p)
	}
	w.appearance(c.Appearance)
	w.item(c.Club)
	w.item(c.Ball)
	w.item(c.Caddie)
}

func decodeChrData(r *reader) ChrData {
	var c ChrData
	c.ChrUID = r.i32()
	c.Type = r.i16()
	c.Class = data.Class(r.i8())
	c.X7 = r.i8()
	c.ParamPower = r.i16()
	c.ParamControl = r.i16()
	c.ParamImpact = r.i16()
	c.ParamSpin = r.i16()
	copy(c.X10[:], r.take(16))
	for i := range c.Params {
		c.Params[i] = r.paramTuple()
	}
	c.Appearance = r.appearance()
	c.Club = r.item()
	c.Ball = r.item()
	c.Caddie = r.item()
	return c
}

// CharDataRequest asks for one character's full state.
type CharDataRequest struct {
	CID    CID
	ChrUID ChrUID
}

func (CharDataRequest) Op() Op { return OpCharDataRequest }

func (m CharDataRequest) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.ChrUID)
}

// CharData carries one character's full state.
type CharData struct {
	CID  CID
	UID  UID
	Data ChrData
}

func (CharData) Op() Op { return OpCharData }

func (m CharData) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.UID)
	m.Data.encodeFields(w)
}

// AllCharDataRequest asks for the full state of every owned character.
type AllCharDataRequest struct {
	CID CID
}

func (AllCharDataRequest) Op() Op             { return OpAllCharDataRequest }
func (m AllCharDataRequest) encode(w *writer) { w.i32(m.CID) }

// ChangeAppearanceRequest updates one character's avatar appearance.
type ChangeAppearanceRequest struct {
	CID    CID
	ChrUID ChrUID
	Data   data.Appearance
}

func (ChangeAppearanceRequest) Op() Op { return OpChangeAppearanceRq }

func (m ChangeAppearanceRequest) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.ChrUID)
	w.appearance(m.Data)
}

// ChangeAppearanceResult acks an appearance change.
type ChangeAppearanceResult struct {
	Status Status
}

func (ChangeAppearanceResult) Op() Op             { return OpChangeAppearance }
func (m ChangeAppearanceResult) encode(w *writer) { w.i8(int8(m.Status)) }

// SetNameRequest sets the player name.
type SetNameRequest struct {
	Unk1 int32
	Unk2 int32
	Name string
	Unk3 int32
}

func (SetNameRequest) Op() Op { return OpSetNameRequest }

func (m SetNameRequest) encode(w *writer) {
	w.i32(m.Unk1)
	w.i32(m.Unk2)
	w.wstring(m.Name, 17)
	w.i32(m.Unk3)
}

// SetNameResult acks a name change.
type SetNameResult struct {
	Status Status
}

func (SetNameResult) Op() Op             { return OpSetNameResult }
func (m SetNameResult) encode(w *writer) { w.i8(int8(m.Status)) }

// CourseBestsRequest asks for the global course and hole bests.
type CourseBestsRequest struct {
	Course int8
	Season int8
	Unk    int8
}

func (CourseBestsRequest) Op() Op { return OpCourseBestsRequest }

func (m CourseBestsRequest) encode(w *writer) {
	w.i8(m.Course)
	w.i8(m.Season)
	w.i8(m.Unk)
}

// CourseBests carries the global course record and the 18 hole records.
type CourseBests struct {
	Course data.GCRecord
	Holes  [18]data.GHRecord
}

func (CourseBests) Op() Op { return OpCourseBests }

func (m CourseBests) encode(w *writer) {
	w.binwrite(&m.Course)
	for i := range m.Holes {
		w.binwrite(&m.Holes[i])
	}
}

// InventoryRequest asks for the carry item list. The argument is always
// -1 in the retail client.
type InventoryRequest struct {
	Arg int32
}

func (InventoryRequest) Op() Op             { return OpInventoryRequest }
func (m InventoryRequest) encode(w *writer) { w.i32(m.Arg) }

// Inventory lists the carry items.
type Inventory struct {
	Items []data.CountedItem
}

func (Inventory) Op() Op { return OpInventory }

func (m Inventory) encode(w *writer) {
	w.i32(int32(len(m.Items)))
	for _, it := range m.Items {
		w.counted(it)
	}
}

// GolfbagRequest asks for the golf bag contents. The argument is always
// -1 in the retail client.
type GolfbagRequest struct {
	Arg int32
}

func (GolfbagRequest) Op() Op             { return OpGolfbagRequest }
func (m GolfbagRequest) encode(w *writer) { w.i32(m.Arg) }

// Golfbag carries the club slots plus an opaque trailer the client
// round-trips untouched.
type Golfbag struct {
	X4      int32
	CID     CID
	Items   [8]data.Item
	Trailer [4060]byte
}

func (Golfbag) Op() Op { return OpGolfbag }

func (m Golfbag) encode(w *writer) {
	w.i32(m.X4)
	w.i32(m.CID)
	for _, it := range m.Items {
		w.item(it)
	}
	w.bytes(m.Trailer[:])
}

func decodeGolfbag(r *reader) Golfbag {
	var m Golfbag
	m.X4 = r.i32()
	m.CID = r.i32()
	for i := range m.Items {
		m.Items[i] = r.item()
	}
	copy(m.Trailer[:], r.take(len(m.Trailer)))
	return m
}

// CurrentCharRequest asks which character a player has active.
type CurrentCharRequest struct {
	CID CID
}

func (CurrentCharRequest) Op() Op             { return OpCurrentCharRequest }
func (m CurrentCharRequest) encode(w *writer) { w.i32(m.CID) }

// ChangeCharRequest switches the active character.
type ChangeCharRequest struct {
	ChrUID ChrUID
}

func (ChangeCharRequest) Op() Op             { return OpChangeCharRequest }
func (m ChangeCharRequest) encode(w *writer) { w.i32(m.ChrUID) }

// CurrentChar announces a player's active character.
type CurrentChar struct {
	CID    CID
	ChrUID ChrUID
}

func (CurrentChar) Op() Op { return OpCurrentChar }

func (m CurrentChar) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.ChrUID)
}

// GrowParam carries the character growth summary screen.
type GrowParam struct {
	A           int16
	MasterPoint int32
	PA          [4]int16
	PB          [4]int16
	CaddiePoint int16
	ExtraBonus  int32
}

func (GrowParam) Op() Op { return OpGrowParam }

func (m GrowParam) encode(w *writer) {
	w.i16(m.A)
	w.i32(m.MasterPoint)
	for _, v := range m.PA {
		w.i16(v)
	}
	for _, v := range m.PB {
		w.i16(v)
	}
	w.i16(m.CaddiePoint)
	w.i32(m.ExtraBonus)
}

// GrowParamRequest asks for the growth summary.
type GrowParamRequest struct{}

func (GrowParamRequest) Op() Op         { return OpGrowParamRequest }
func (GrowParamRequest) encode(*writer) {}

// CharParamRequest updates a character's loadout: class, stat point
// allocation and equipped club, ball and caddie.
type CharParamRequest struct {
	ChrUID ChrUID
	Class  data.Class
	Power  int32
	Impact int32
	Params [8]data.ParamTuple
	Club   data.Item
	Ball   data.Item
	Caddie data.Item
}

func (CharParamRequest) Op() Op { return OpCharParamRequest }

func (m CharParamRequest) encode(w *writer) {
	w.i32(m.ChrUID)
	w.i8(int8(m.Class))
	w.i32(m.Power)
	w.i32(m.Impact)
	for _, p := range m.Params {
		w.paramTuple(p)
	}
	w.item(m.Club)
	w.item(m.Ball)
	w.item(m.Caddie)
}

func decodeCharParamRequest(r *reader) CharParamRequest {
	var m CharParamRequest
	m.ChrUID = r.i32()
	m.Class = data.Class(r.i8())
	m.Power = r.i32()
	m.Impact = r.i32()
	for i := range m.Params {
		m.Params[i] = r.paramTuple()
	}
	m.Club = r.item()
	m.Ball = r.item()
	m.Caddie = r.item()
	return m
}

// CharParamResult acks a loadout update.
type CharParamResult struct {
	Status Status
}

func (CharParamResult) Op() Op             { return OpCharParamResult }
func (m CharParamResult) encode(w *writer) { w.i8(int8(m.Status)) }

// TitlesRequest asks for the unlocked title set.
type TitlesRequest struct{}

func (TitlesRequest) Op() Op         { return OpTitlesRequest }
func (TitlesRequest) encode(*writer) {}

// Titles is the unlocked title bitset, 128 bits wide on the wire with
// the low word first.
type Titles struct {
	UID UID
	Lo  uint64
	Hi  uint64
}

func (Titles) Op() Op { return OpTitles }

func (m Titles) encode(w *writer) {
	w.i32(m.UID)
	w.u64(m.Lo)
	w.u64(m.Hi)
}

// GetTitleRequest marks a title as obtained.
type GetTitleRequest struct {
	Title int16
}

func (GetTitleRequest) Op() Op             { return OpGetTitleRequest }
func (m GetTitleRequest) encode(w *writer) { w.i16(m.Title) }

// GetTitleResult acks obtaining a title.
type GetTitleResult struct {
	Status Status
}

func (GetTitleResult) Op() Op             { return OpGetTitleResult }
func (m GetTitleResult) encode(w *writer) { w.i8(int8(m.Status)) }

// ChangeTitleRequest switches the displayed title.
type ChangeTitleRequest struct {
	Title int16
}

func (ChangeTitleRequest) Op() Op             { return OpChangeTitleReq }
func (m ChangeTitleRequest) encode(w *writer) { w.i16(m.Title) }

// ChangeTitleResult acks a title switch.
type ChangeTitleResult struct {
	Status Status
}

func (ChangeTitleResult) Op() Op             { return OpChangeTitleResult }
func (m ChangeTitleResult) encode(w *writer) { w.i8(int8(m.Status)) }

// TitleChangeRelay announces another player's title switch.
type TitleChangeRelay struct {
	UID   UID
	Title int32
}

func (TitleChangeRelay) Op() Op { return OpTitleChangeRelay }

func (m TitleChangeRelay) encode(w *writer) {
	w.i32(m.UID)
	w.i32(m.Title)
}

// UserDataRequest asks for a player's full profile.
type UserDataRequest struct {
	UID UID
}

func (UserDataRequest) Op() Op             { return OpUserDataRequest }
func (m UserDataRequest) encode(w *writer) { w.i32(m.UID) }

// UserDataPush carries a full profile outside the login handshake.
type UserDataPush struct {
	UserData
}

func (UserDataPush) Op() Op { return OpUserData }

// RankingRequest asks for a page of a ranking board.
type RankingRequest struct {
	Start    int32
	Mode     int8
	Submode  int8
	Submode2 int8
}

func (RankingRequest) Op() Op { return OpRankingRequest }

func (m RankingRequest) encode(w *writer) {
	w.i32(m.Start)
	w.i8(m.Mode)
	w.i8(m.Submode)
	w.i8(m.Submode2)
}

// RankingEntry is one row of a ranking board.
type RankingEntry struct {
	UID        UID
	Value      int32
	Unk        int32
	StatusIcon int8
}

// Ranking is one page of a ranking board.
type Ranking struct {
	Entries []RankingEntry
}

func (Ranking) Op() Op { return OpRanking }

func (m Ranking) encode(w *writer) {
	w.i8(int8(len(m.Entries)))
	for _, e := range m.Entries {
		w.i32(e.UID)
		w.i32(e.Value)
		w.i32(e.Unk)
		w.i8(e.StatusIcon)
	}
}

// RankingCount is the total row count of a ranking board.
type RankingCount struct {
	Count int32
}

func (RankingCount) Op() Op             { return OpRankingCount }
func (m RankingCount) encode(w *writer) { w.i32(m.Count) }

// HoldboxRequest updates the in-round item slots.
type HoldboxRequest struct {
	Items [8]data.Item
}

func (HoldboxRequest) Op() Op { return OpHoldboxRequest }

func (m HoldboxRequest) encode(w *writer) {
	for _, it := range m.Items {
		w.item(it)
	}
}

// HoldboxResult acks a holdbox update.
type HoldboxResult struct {
	Status Status
}

func (HoldboxResult) Op() Op             { return OpHoldboxResult }
func (m HoldboxResult) encode(w *writer) { w.i8(int8(m.Status)) }

// DropItems grants up to ten items at round end.
type DropItems struct {
	Items [10]data.CountedItem
}

func (DropItems) Op() Op { return OpDropItems }

func (m DropItems) encode(w *writer) {
	for _, it := range m.Items {
		w.counted(it)
	}
}

// NPRequest asks for the premium point balance.
type NPRequest struct {
	Arg int32
}

func (NPRequest) Op() Op             { return OpNPRequest }
func (m NPRequest) encode(w *writer) { w.i32(m.Arg) }

// NP carries the premium point balance.
type NP struct {
	UID UID
	SP  int32
}

func (NP) Op() Op { return OpNP }

func (m NP) encode(w *writer) {
	w.i32(m.UID)
	w.i32(m.SP)
}

// AddNPResult acks a premium point grant.
type AddNPResult struct{}

func (AddNPResult) Op() Op         { return OpAddNPResult }
func (AddNPResult) encode(*writer) {}

// UserDataChange notifies a social-graph change on another account.
type UserDataChange struct {
	UID    UID
	Change UDataChange
	P0     UID
	P1     int32
}

func (UserDataChange) Op() Op { return OpUserDataChange }

func (m UserDataChange) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Change))
	w.i32(m.P0)
	w.i32(m.P1)
}

// GameOptions updates the client-side option bitfield.
type GameOptions struct {
	Unk      int32
	Bitfield uint8
}

func (GameOptions) Op() Op { return OpGameOptions }

func (m GameOptions) encode(w *writer) {
	w.i32(m.Unk)
	w.u8(m.Bitfield)
}

// UDataFlagResult acks a profile flag update.
type UDataFlagResult struct {
	Unk    int32
	Status Status
}

func (UDataFlagResult) Op() Op { return OpUDataFlagResult }

func (m UDataFlagResult) encode(w *writer) {
	w.i32(m.Unk)
	w.i8(int8(m.Status))
}

// MPTable is the mileage point reward table.
type MPTable struct {
	Table []int32
}

func (MPTable) Op() Op { return OpMPTable }

func (m MPTable) encode(w *writer) {
	w.i32(int32(len(m.Table)))
	for _, v := range m.Table {
		w.i32(v)
	}
}

func init() {
	register(OpUserRecordRequest, func(r *reader) Body { return UserRecordRequest{UID: r.i32()} })
	register(OpUserRecord, func(r *reader) Body {
		var m UserRecord
		m.UID = r.i32()
		r.binread(&m.Data)
		m.Status = Status(r.i8())
		return m
	})
	register(OpCourseRecordReq, func(r *reader) Body {
		return CourseRecordRequest{UID: r.i32(), Course: r.i8(), Season: r.i8(), HoleIdx: r.i8()}
	})
	register(OpCourseRecord, func(r *reader) Body {
		var m CourseRecord
		m.UID = r.i32()
		m.Course = r.i8()
		m.Season = r.i8()
		m.HoleIdx = r.i8()
		m.Data = r.cRecord()
		m.Status = Status(r.i8())
		return m
	})
	register(OpAppearanceRequest, func(r *reader) Body { return AppearanceRequest{CID: r.i32()} })
	register(OpAppearance, func(r *reader) Body {
		return Appearance{CID: r.i32(), Unk: r.i32(), Data: r.appearance()}
	})
	register(OpMoneyRequest, func(*reader) Body { return MoneyRequest{} })
	register(OpMoney, func(r *reader) Body { return Money{GP: r.i32(), SC: r.i32()} })
	register(OpFirstCharRequest, func(r *reader) Body { return FirstCharRequest{Data: r.appearance()} })
	register(OpFirstCharResult, func(r *reader) Body { return FirstCharResult{Status: Status(r.i8())} })
	register(OpCharUIDsByUID, func(r *reader) Body { return CharUIDsByUID{UID: r.i32()} })
	register(OpCharUIDsRequest, func(r *reader) Body { return CharUIDsRequest{CID: r.i32()} })
	register(OpCharUIDs, func(r *reader) Body {
		var m CharUIDs
		n := r.i32()
		m.CID = r.i32()
		if n > 1 {
			m.ChrUIDs = make([]ChrUID, n-1)
			for i := range m.ChrUIDs {
				m.ChrUIDs[i] = r.i32()
			}
		}
		return m
	})
	register(OpCharDataRequest, func(r *reader) Body {
		return CharDataRequest{CID: r.i32(), ChrUID: r.i32()}
	})
	register(OpCharData, func(r *reader) Body {
		return CharData{CID: r.i32(), UID: r.i32(), Data: decodeChrData(r)}
	})
	register(OpAllCharDataRequest, func(r *reader) Body { return AllCharDataRequest{CID: r.i32()} })
	register(OpChangeAppearanceRq, func(r *reader) Body {
		return ChangeAppearanceRequest{CID: r.i32(), ChrUID: r.i32(), Data: r.appearance()}
	})
	register(OpChangeAppearance, func(r *reader) Body {
		return ChangeAppearanceResult{Status: Status(r.i8())}
	})
	register(OpSetNameRequest, func(r *reader) Body {
		return SetNameRequest{Unk1: r.i32(), Unk2: r.i32(), Name: r.wstring(17), Unk3: r.i32()}
	})
	register(OpSetNameResult, func(r *reader) Body { return SetNameResult{Status: Status(r.i8())} })
	register(OpCourseBestsRequest, func(r *reader) Body {
		return CourseBestsRequest{Course: r.i8(), Season: r.i8(), Unk: r.i8()}
	})
	register(OpCourseBests, func(r *reader) Body {
		var m CourseBests
		r.binread(&m.Course)
		for i := range m.Holes {
			r.binread(&m.Holes[i])
		}
		return m
	})
	register(OpInventoryRequest, func(r *reader) Body { return InventoryRequest{Arg: r.i32()} })
	register(OpInventory, func(r *reader) Body {
		var m Inventory
		n := r.i32()
		if n > 0 {
			m.Items = make([]data.CountedItem, n)
			for i := range m.Items {
				m.Items[i] = r.counted()
			}
		}
		return m
	})
	register(OpGolfbagRequest, func(r *reader) Body { return GolfbagRequest{Arg: r.i32()} })
	register(OpGolfbag, func(r *reader) Body { return decodeGolfbag(r) })
	register(OpCurrentCharRequest, func(r *reader) Body { return CurrentCharRequest{CID: r.i32()} })
	register(OpChangeCharRequest, func(r *reader) Body { return ChangeCharRequest{ChrUID: r.i32()} })
	register(OpCurrentChar, func(r *reader) Body {
		return CurrentChar{CID: r.i32(), ChrUID: r.i32()}
	})
	register(OpGrowParam, func(r *reader) Body {
		var m GrowParam
		m.A = r.i16()
		m.MasterPoint = r.i32()
		for i := range m.PA {
			m.PA[i] = r.i16()
		}
		for i := range m.PB {
			m.PB[i] = r.i16()
		}
		m.CaddiePoint = r.i16()
		m.ExtraBonus = r.i32()
		return m
	})
	register(OpGrowParamRequest, func(*reader) Body { return GrowParamRequest{} })
	register(OpCharParamRequest, func(r *reader) Body { return decodeCharParamRequest(r) })
	register(OpCharParamResult, func(r *reader) Body { return CharParamResult{Status: Status(r.i8())} })
	register(OpTitlesRequest, func(*reader) Body { return TitlesRequest{} })
	register(OpTitles, func(r *reader) Body {
		return Titles{UID: r.i32(), Lo: r.u64(), Hi: r.u64()}
	})
	register(OpGetTitleRequest, func(r *reader) Body { return GetTitleRequest{Title: r.i16()} })
	register(OpGetTitleResult, func(r *reader) Body { return GetTitleResult{Status: Status(r.i8())} })
	register(OpChangeTitleReq, func(r *reader) Body { return ChangeTitleRequest{Title: r.i16()} })
	register(OpChangeTitleResult, func(r *reader) Body {
		return ChangeTitleResult{Status: Status(r.i8())}
	})
	register(OpTitleChangeRelay, func(r *reader) Body {
		return TitleChangeRelay{UID: r.i32(), Title: r.i32()}
	})
	register(OpUserDataRequest, func(r *reader) Body { return UserDataRequest{UID: r.i32()} })
	register(OpUserData, func(r *reader) Body { return UserDataPush{decodeUserData(r)} })
	register(OpRankingRequest, func(r *reader) Body {
		return RankingRequest{Start: r.i32(), Mode: r.i8(), Submode: r.i8(), Submode2: r.i8()}
	})
	register(OpRanking, func(r *reader) Body {
		var m Ranking
		n := r.i8()
		if n > 0 {
			m.Entries = make([]RankingEntry, n)
			for i := range m.Entries {
				m.Entries[i] = RankingEntry{
					UID:        r.i32(),
					Value:      r.i32(),
					Unk:        r.i32(),
					StatusIcon: r.i8(),
				}
			}
		}
		return m
	})
	register(OpRankingCount, func(r *reader) Body { return RankingCount{Count: r.i32()} })
	register(OpHoldboxRequest, func(r *reader) Body {
		var m HoldboxRequest
		for i := range m.Items {
			m.Items[i] = r.item()
		}
		return m
	})
	register(OpHoldboxResult, func(r *reader) Body { return HoldboxResult{Status: Status(r.i8())} })
	register(OpDropItems, func(r *reader) Body {
		var m DropItems
		for i := range m.Items {
			m.Items[i] = r.counted()
		}
		return m
	})
	register(OpNPRequest, func(r *reader) Body { return NPRequest{Arg: r.i32()} })
	register(OpNP, func(r *reader) Body { return NP{UID: r.i32(), SP: r.i32()} })
	register(OpAddNPResult, func(*reader) Body { return AddNPResult{} })
	register(OpUserDataChange, func(r *reader) Body {
		return UserDataChange{UID: r.i32(), Change: UDataChange(r.i8()), P0: r.i32(), P1: r.i32()}
	})
	register(OpGameOptions, func(r *reader) Body {
		return GameOptions{Unk: r.i32(), Bitfield: r.u8()}
	})
	register(OpUDataFlagResult, func(r *reader) Body {
		return UDataFlagResult{Unk: r.i32(), Status: Status(r.i8())}
	})
	register(OpMPTable, func(r *reader) Body {
		var m MPTable
		n := r.i32()
		if n > 0 {
			m.Table = make([]int32, n)
			for i := range m.Table {
				m.Table[i] = r.i32()
			}
		}
		return m
	})
}
