package packet

import "splashsrv/data"

// SellListRequest asks for the shop catalog.
type SellListRequest struct{}

func (SellListRequest) Op() Op         { return OpSellListRequest }
func (SellListRequest) encode(*writer) {}

// SellList is the shop catalog.
type SellList struct {
	Items []data.SellItem
}

func (SellList) Op() Op { return OpSellList }

func (m SellList) encode(w *writer) {
	w.i16(int16(len(m.Items)))
	for _, it := range m.Items {
		w.sellItem(it)
	}
}

// BuyItemRequest buys one catalog entry for GP or SC.
type BuyItemRequest struct {
	Item data.CountedItem
}

func (BuyItemRequest) Op() Op             { return OpBuyItemRequest }
func (m BuyItemRequest) encode(w *writer) { w.counted(m.Item) }

// BuyItemResult is the purchase verdict.
type BuyItemResult struct {
	Result BuyResult
}

func (BuyItemResult) Op() Op             { return OpBuyItemResult }
func (m BuyItemResult) encode(w *writer) { w.i8(int8(m.Result)) }

// CaddieListRequest asks for the caddie rental catalog.
type CaddieListRequest struct{}

func (CaddieListRequest) Op() Op         { return OpCaddieListRequest }
func (CaddieListRequest) encode(*writer) {}

// CaddieList is the caddie rental catalog.
type CaddieList struct {
	Items []data.SellCaddy
}

func (CaddieList) Op() Op { return OpCaddieList }

func (m CaddieList) encode(w *writer) {
	w.i16(int16(len(m.Items)))
	for _, it := range m.Items {
		w.sellCaddy(it)
	}
}

// EmployCaddieRequest rents a caddie. The count slot selects the term:
// 0 is 3 hours, 1 is 3 days, 2 is 30 days, 3 infinite.
type EmployCaddieRequest struct {
	Item data.CountedItem
}

func (EmployCaddieRequest) Op() Op             { return OpEmployCaddieReq }
func (m EmployCaddieRequest) encode(w *writer) { w.counted(m.Item) }

// EmployCaddieResult is the rental verdict.
type EmployCaddieResult struct {
	Result BuyResult
}

func (EmployCaddieResult) Op() Op             { return OpEmployCaddieResult }
func (m EmployCaddieResult) encode(w *writer) { w.i8(int8(m.Result)) }

// CaddieDataRequest asks for the active caddie rental.
type CaddieDataRequest struct {
	Arg int32
}

func (CaddieDataRequest) Op() Op             { return OpCaddieDataRequest }
func (m CaddieDataRequest) encode(w *writer) { w.i32(m.Arg) }

// CaddieData describes the active caddie rental and its expiry.
type CaddieData struct {
	Unk1    int32
	ID      int32
	Expires DateTime
	Unk2    int32
}

func (CaddieData) Op() Op { return OpCaddieData }

func (m CaddieData) encode(w *writer) {
	w.i32(m.Unk1)
	w.i32(m.ID)
	w.datetime(m.Expires)
	w.i32(m.Unk2)
}

// UseItemRequest consumes an inventory item.
type UseItemRequest struct {
	Item data.Item
	Arg  int8
}

func (UseItemRequest) Op() Op { return OpUseItemRequest }

func (m UseItemRequest) encode(w *writer) {
	w.item(m.Item)
	w.i8(m.Arg)
}

// UseItemResult acks consuming an item with the remaining count.
type UseItemResult struct {
	Item  data.Item
	Count int32
}

func (UseItemResult) Op() Op { return OpUseItemResult }

func (m UseItemResult) encode(w *writer) {
	w.item(m.Item)
	w.i32(m.Count)
}

// UseItemRelay announces an item use to the room.
type UseItemRelay struct {
	CID   CID
	Item  data.Item
	Count int32
}

func (UseItemRelay) Op() Op { return OpUseItemRelay }

func (m UseItemRelay) encode(w *writer) {
	w.i32(m.CID)
	w.item(m.Item)
	w.i32(m.Count)
}

// SalonListRequest asks for the salon catalog.
type SalonListRequest struct{}

func (SalonListRequest) Op() Op         { return OpSalonListRequest }
func (SalonListRequest) encode(*writer) {}

// SalonList is the salon catalog.
type SalonList struct {
	Items []data.SellItem
}

func (SalonList) Op() Op { return OpSalonList }

func (m SalonList) encode(w *writer) {
	w.i16(int16(len(m.Items)))
	for _, it := range m.Items {
		w.sellItem(it)
	}
}

// BuySalonRequest buys one salon entry.
type BuySalonRequest struct {
	Item data.CountedItem
}

func (BuySalonRequest) Op() Op             { return OpBuySalonRequest }
func (m BuySalonRequest) encode(w *writer) { w.counted(m.Item) }

// BuySalonResult is the salon purchase verdict.
type BuySalonResult struct {
	Result BuyResult
}

func (BuySalonResult) Op() Op             { return OpBuySalonResult }
func (m BuySalonResult) encode(w *writer) { w.i8(int8(m.Result)) }

// BuyByTicketRequest buys a catalog entry with a ticket instead of
// currency.
type BuyByTicketRequest struct {
	Ticket data.CountedItem
	Item   data.CountedItem
}

func (BuyByTicketRequest) Op() Op { return OpBuyByTicketReq }

func (m BuyByTicketRequest) encode(w *writer) {
	w.counted(m.Ticket)
	w.counted(m.Item)
}

// BuyByTicketResult is the ticket purchase verdict.
type BuyByTicketResult struct {
	Result BuyResult
}

func (BuyByTicketResult) Op() Op             { return OpBuyByTicketResult }
func (m BuyByTicketResult) encode(w *writer) { w.i8(int8(m.Result)) }

// CaddieByTicketRequest rents a caddie with a ticket.
type CaddieByTicketRequest struct {
	Ticket data.CountedItem
	Item   data.CountedItem
}

func (CaddieByTicketRequest) Op() Op { return OpCaddieByTicketReq }

func (m CaddieByTicketRequest) encode(w *writer) {
	w.counted(m.Ticket)
	w.counted(m.Item)
}

// CaddieByTicketResult is the ticket rental verdict.
type CaddieByTicketResult struct {
	Result BuyResult
}

func (CaddieByTicketResult) Op() Op             { return OpCaddieByTicketRes }
func (m CaddieByTicketResult) encode(w *writer) { w.i8(int8(m.Result)) }

// SalonByTicketRequest buys a salon entry with a ticket.
type SalonByTicketRequest struct {
	Ticket data.CountedItem
	Item   data.CountedItem
}

func (SalonByTicketRequest) Op() Op { return OpSalonByTicketReq }

func (m SalonByTicketRequest) encode(w *writer) {
	w.counted(m.Ticket)
	w.counted(m.Item)
}

// SalonByTicketResult is the ticket salon verdict.
type SalonByTicketResult struct {
	Result BuyResult
}

func (SalonByTicketResult) Op() Op             { return OpSalonByTicketRes }
func (m SalonByTicketResult) encode(w *writer) { w.i8(int8(m.Result)) }

// BuyByNPRequest buys a catalog entry with premium points.
type BuyByNPRequest struct {
	Item data.CountedItem
}

func (BuyByNPRequest) Op() Op             { return OpBuyByNPRequest }
func (m BuyByNPRequest) encode(w *writer) { w.counted(m.Item) }

// BuyByNPResult is the premium purchase verdict.
type BuyByNPResult struct {
	Result BuyResult
}

func (BuyByNPResult) Op() Op             { return OpBuyByNPResult }
func (m BuyByNPResult) encode(w *writer) { w.i8(int8(m.Result)) }

// CaddieByItemRequest swaps the caddie model using an item.
type CaddieByItemRequest struct {
	Item   data.Item
	Caddie uint32
}

func (CaddieByItemRequest) Op() Op { return OpCaddieByItemReq }

func (m CaddieByItemRequest) encode(w *writer) {
	w.item(m.Item)
	w.u32(m.Caddie)
}

// CaddieByItemResult acks a caddie model swap.
type CaddieByItemResult struct {
	Status Status
}

func (CaddieByItemResult) Op() Op             { return OpCaddieByItemRes }
func (m CaddieByItemResult) encode(w *writer) { w.i8(int8(m.Status)) }

// CaddieChangeRelay announces a caddie model swap to the room.
type CaddieChangeRelay struct {
	CID    CID
	Caddie int32
	Unk    int32
}

func (CaddieChangeRelay) Op() Op { return OpCaddieChangeRelay }

func (m CaddieChangeRelay) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.Caddie)
	w.i32(m.Unk)
}

// EnabledCaddies lists the caddie ids currently rentable.
type EnabledCaddies struct {
	IDs []int32
}

func (EnabledCaddies) Op() Op { return OpEnabledCaddies }

func (m EnabledCaddies) encode(w *writer) {
	w.i32(int32(len(m.IDs)))
	for _, id := range m.IDs {
		w.i32(id)
	}
}

// UseCarryItem consumes a carried hold item mid-round.
type UseCarryItem struct {
	Item data.Item
}

func (UseCarryItem) Op() Op             { return OpUseCarryItem }
func (m UseCarryItem) encode(w *writer) { w.item(m.Item) }

// UseHoldItemResult acks a hold item use. Count is -1 on failure.
type UseHoldItemResult struct {
	Item  data.Item
	Count int32
}

func (UseHoldItemResult) Op() Op { return OpUseHoldItemResult }

func (m UseHoldItemResult) encode(w *writer) {
	w.item(m.Item)
	w.i32(m.Count)
}

// CompeItems lists the items usable in competition rounds.
type CompeItems struct {
	Items []data.CountedItem
}

func (CompeItems) Op() Op { return OpCompeItems }

func (m CompeItems) encode(w *writer) {
	w.i32(int32(len(m.Items)))
	for _, it := range m.Items {
		w.counted(it)
	}
}

// ModeCtrlRequest asks which game features are switched on.
type ModeCtrlRequest struct{}

func (ModeCtrlRequest) Op() Op         { return OpModeCtrlRequest }
func (ModeCtrlRequest) encode(*writer) {}

// ModeCtrl is the feature switch table, 92 single-bit flags packed
// most significant bit first.
type ModeCtrl struct {
	Flags [92]bool
}

func (ModeCtrl) Op() Op { return OpModeCtrl }

func (m ModeCtrl) encode(w *writer) {
	var buf [12]byte
	for i, on := range m.Flags {
		if on {
			buf[i/8] |= 1 << (7 - i%8)
		}
	}
	w.bytes(buf[:])
}

func decodeModeCtrl(r *reader) ModeCtrl {
	var m ModeCtrl
	buf := r.take(12)
	if buf == nil {
		return m
	}
	for i := range m.Flags {
		m.Flags[i] = buf[i/8]>>(7-i%8)&1 != 0
	}
	return m
}

// SingleItemsRequest asks which items are usable in single mode.
type SingleItemsRequest struct{}

func (SingleItemsRequest) Op() Op         { return OpSingleItemsRequest }
func (SingleItemsRequest) encode(*writer) {}

// SingleItems is the single mode item set.
type SingleItems struct {
	Count int32
	Items [8]data.CountedItem
}

func (SingleItems) Op() Op { return OpSingleItems }

func (m SingleItems) encode(w *writer) {
	w.i32(m.Count)
	for _, it := range m.Items {
		w.counted(it)
	}
}

// TrashItemsRequest discards inventory items. The slot table is fixed
// width with the live prefix given by Count.
type TrashItemsRequest struct {
	Count int32
	Items [1024]data.CountedItem
}

func (TrashItemsRequest) Op() Op { return OpTrashItemsRequest }

func (m TrashItemsRequest) encode(w *writer) {
	w.i32(m.Count)
	for _, it := range m.Items {
		w.counted(it)
	}
}

// TrashItemsResult acks discarding items.
type TrashItemsResult struct {
	Status Status
}

func (TrashItemsResult) Op() Op             { return OpTrashItemsResult }
func (m TrashItemsResult) encode(w *writer) { w.i8(int8(m.Status)) }

// SVItemDataRequest asks for the server-side item stat table.
type SVItemDataRequest struct{}

func (SVItemDataRequest) Op() Op         { return OpSVItemDataRequest }
func (SVItemDataRequest) encode(*writer) {}

// SVItem is one server-side item stat row.
type SVItem struct {
	Code       uint32
	Unk0       [11]byte
	BrandIndex int8
	Power      uint8
	Control    uint8
	Impact     uint8
	Spin       uint8
	Luck       uint8
	Mood       uint8
	OtherVars  [14]byte
	Flags      uint32
}

// SVItemData is one page of 32 item stat rows.
type SVItemData struct {
	Items [32]SVItem
}

func (SVItemData) Op() Op { return OpSVItemData }

func (m SVItemData) encode(w *writer) {
	for i := range m.Items {
		w.binwrite(&m.Items[i])
	}
}

// SVItemDataEnd closes the item stat transfer with the row count.
type SVItemDataEnd struct {
	Count int16
}

func (SVItemDataEnd) Op() Op             { return OpSVItemDataEnd }
func (m SVItemDataEnd) encode(w *writer) { w.i16(m.Count) }

// ClubDataRequest asks for the club stat table.
type ClubDataRequest struct{}

func (ClubDataRequest) Op() Op         { return OpClubDataRequest }
func (ClubDataRequest) encode(*writer) {}

// ClubStat is one club stat row.
type ClubStat struct {
	ID       int16
	Power    float32
	Control  float32
	Impact   float32
	Spin     float32
	Luck     float32
	X16      uint8
	Distance float32
}

// ClubData is one page of club stat rows.
type ClubData struct {
	Clubs []ClubStat
}

func (ClubData) Op() Op { return OpClubData }

func (m ClubData) encode(w *writer) {
	w.i32(int32(len(m.Clubs)))
	for _, c := range m.Clubs {
		w.i16(c.ID)
		w.f32(c.Power)
		w.f32(c.Control)
		w.f32(c.Impact)
		w.f32(c.Spin)
		w.f32(c.Luck)
		w.u8(c.X16)
		w.pad(1)
		w.f32(c.Distance)
	}
}

// ClubDataEnd closes the club stat transfer with the row count.
type ClubDataEnd struct {
	Count int32
}

func (ClubDataEnd) Op() Op             { return OpClubDataEnd }
func (m ClubDataEnd) encode(w *writer) { w.i32(m.Count) }

func init() {
	register(OpSellListRequest, func(*reader) Body { return SellListRequest{} })
	register(OpSellList, func(r *reader) Body {
		var m SellList
		n := r.i16()
		if n > 0 {
			m.Items = make([]data.SellItem, n)
			for i := range m.Items {
				m.Items[i] = r.sellItem()
			}
		}
		return m
	})
	register(OpBuyItemRequest, func(r *reader) Body { return BuyItemRequest{Item: r.counted()} })
	register(OpBuyItemResult, func(r *reader) Body {
		return BuyItemResult{Result: BuyResult(r.i8())}
	})
	register(OpCaddieListRequest, func(*reader) Body { return CaddieListRequest{} })
	register(OpCaddieList, func(r *reader) Body {
		var m CaddieList
		n := r.i16()
		if n > 0 {
			m.Items = make([]data.SellCaddy, n)
			for i := range m.Items {
				m.Items[i] = r.sellCaddy()
			}
		}
		return m
	})
	register(OpEmployCaddieReq, func(r *reader) Body {
		return EmployCaddieRequest{Item: r.counted()}
	})
	register(OpEmployCaddieResult, func(r *reader) Body {
		return EmployCaddieResult{Result: BuyResult(r.i8())}
	})
	register(OpCaddieDataRequest, func(r *reader) Body { return CaddieDataRequest{Arg: r.i32()} })
	register(OpCaddieData, func(r *reader) Body {
		return CaddieData{Unk1: r.i32(), ID: r.i32(), Expires: r.datetime(), Unk2: r.i32()}
	})
	register(OpUseItemRequest, func(r *reader) Body {
		return UseItemRequest{Item: r.item(), Arg: r.i8()}
	})
	register(OpUseItemResult, func(r *reader) Body {
		return UseItemResult{Item: r.item(), Count: r.i32()}
	})
	register(OpUseItemRelay, func(r *reader) Body {
		return UseItemRelay{CID: r.i32(), Item: r.item(), Count: r.i32()}
	})
	register(OpSalonListRequest, func(*reader) Body { return SalonListRequest{} })
	register(OpSalonList, func(r *reader) Body {
		var m SalonList
		n := r.i16()
		if n > 0 {
			m.Items = make([]data.SellItem, n)
			for i := range m.Items {
				m.Items[i] = r.sellItem()
			}
		}
		return m
	})
	register(OpBuySalonRequest, func(r *reader) Body { return BuySalonRequest{Item: r.counted()} })
	register(OpBuySalonResult, func(r *reader) Body {
		return BuySalonResult{Result: BuyResult(r.i8())}
	})
	register(OpBuyByTicketReq, func(r *reader) Body {
		return BuyByTicketRequest{Ticket: r.counted(), Item: r.counted()}
	})
	register(OpBuyByTicketResult, func(r *reader) Body {
		return BuyByTicketResult{Result: BuyResult(r.i8())}
	})
	register(OpCaddieByTicketReq, func(r *reader) Body {
		return CaddieByTicketRequest{Ticket: r.counted(), Item: r.counted()}
	})
	register(OpCaddieByTicketRes, func(r *reader) Body {
		return CaddieByTicketResult{Result: BuyResult(r.i8())}
	})
	register(OpSalonByTicketReq, func(r *reader) Body {
		return SalonByTicketRequest{Ticket: r.counted(), Item: r.counted()}
	})
	register(OpSalonByTicketRes, func(r *reader) Body {
		return SalonByTicketResult{Result: BuyResult(r.i8())}
	})
	register(OpBuyByNPRequest, func(r *reader) Body { return BuyByNPRequest{Item: r.counted()} })
	register(OpBuyByNPResult, func(r *reader) Body {
		return BuyByNPResult{Result: BuyResult(r.i8())}
	})
	register(OpCaddieByItemReq, func(r *reader) Body {
		return CaddieByItemRequest{Item: r.item(), Caddie: r.u32()}
	})
	register(OpCaddieByItemRes, func(r *reader) Body {
		return CaddieByItemResult{Status: Status(r.i8())}
	})
	register(OpCaddieChangeRelay, func(r *reader) Body {
		return CaddieChangeRelay{CID: r.i32(), Caddie: r.i32(), Unk: r.i32()}
	})
	register(OpEnabledCaddies, func(r *reader) Body {
		var m EnabledCaddies
		n := r.i32()
		if n > 0 {
			m.IDs = make([]int32, n)
			for i := range m.IDs {
				m.IDs[i] = r.i32()
			}
		}
		return m
	})
	register(OpUseCarryItem, func(r *reader) Body { return UseCarryItem{Item: r.item()} })
	register(OpUseHoldItemResult, func(r *reader) Body {
		return UseHoldItemResult{Item: r.item(), Count: r.i32()}
	})
	register(OpCompeItems, func(r *reader) Body {
		var m CompeItems
		n := r.i32()
		if n > 0 {
			m.Items = make([]data.CountedItem, n)
			for i := range m.Items {
				m.Items[i] = r.counted()
			}
		}
		return m
	})
	register(OpModeCtrlRequest, func(*reader) Body { return ModeCtrlRequest{} })
	register(OpModeCtrl, func(r *reader) Body { return decodeModeCtrl(r) })
	register(OpSingleItemsRequest, func(*reader) Body { return SingleItemsRequest{} })
	register(OpSingleItems, func(r *reader) Body {
		var m SingleItems
		m.Count = r.i32()
		for i := range m.Items {
			m.Items[i] = r.counted()
		}
		return m
	})
	register(OpTrashItemsRequest, func(r *reader) Body {
		var m TrashItemsRequest
		m.Count = r.i32()
		for i := range m.Items {
			m.Items[i] = r.counted()
		}
		return m
	})
	register(OpTrashItemsResult, func(r *reader) Body {
		return TrashItemsResult{Status: Status(r.i8())}
	})
	register(OpSVItemDataRequest, func(*reader) Body { return SVItemDataRequest{} })
	register(OpSVItemData, func(r *reader) Body {
		var m SVItemData
		for i := range m.Items {
			r.binread(&m.Items[i])
		}
		return m
	})
	register(OpSVItemDataEnd, func(r *reader) Body { return SVItemDataEnd{Count: r.i16()} })
	register(OpClubDataRequest, func(*reader) Body { return ClubDataRequest{} })
	register(OpClubData, func(r *reader) Body {
		var m ClubData
		n := r.i32()
		if n > 0 {
			m.Clubs = make([]ClubStat, n)
			for i := range m.Clubs {
				m.Clubs[i].ID = r.i16()
				m.Clubs[i].Power = r.f32()
				m.Clubs[i].Control = r.f32()
				m.Clubs[i].Impact = r.f32()
				m.Clubs[i].Spin = r.f32()
				m.Clubs[i].Luck = r.f32()
				m.Clubs[i].X16 = r.u8()
				r.take(1)
				m.Clubs[i].Distance = r.f32()
			}
		}
		return m
	})
	register(OpClubDataEnd, func(r *reader) Body { return ClubDataEnd{Count: r.i32()} })
}
