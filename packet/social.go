package packet

import "splashsrv/data"

// UserInfoRequest asks for a short profile line by account id.
type UserInfoRequest struct {
	UID UID
}

func (UserInfoRequest) Op() Op             { return OpUserInfoRequest }
func (m UserInfoRequest) encode(w *writer) { w.i32(m.UID) }

// UserInfo is the short profile line shown in friend lists.
type UserInfo struct {
	CID  CID
	UID  UID
	Stat int16
	Unk  [15]byte
	Name string
}

func (UserInfo) Op() Op { return OpUserInfo }

func (m UserInfo) encode(w *writer) {
	w.i32(m.CID)
	w.i32(m.UID)
	w.i16(m.Stat)
	w.bytes(m.Unk[:])
	w.wstring(m.Name, 17)
}

// FindUserRequest looks a player up by name.
type FindUserRequest struct {
	Unk1 int32
	Unk2 int32
	Name string
}

func (FindUserRequest) Op() Op { return OpFindUserRequest }

func (m FindUserRequest) encode(w *writer) {
	w.i32(m.Unk1)
	w.i32(m.Unk2)
	w.wstring(m.Name, 19)
}

// FindUserResult answers a name lookup. UID is negative when no player
// matched.
type FindUserResult struct {
	Unk1 int32
	UID  UID
	Name string
}

func (FindUserResult) Op() Op { return OpFindUserResult }

func (m FindUserResult) encode(w *writer) {
	w.i32(m.Unk1)
	w.i32(m.UID)
	w.wstring(m.Name, 19)
}

// FriendAddRequest sends a friend request.
type FriendAddRequest struct {
	UID UID
}

func (FriendAddRequest) Op() Op             { return OpFriendAddRequest }
func (m FriendAddRequest) encode(w *writer) { w.i32(m.UID) }

// FriendAddResult acks sending a friend request.
type FriendAddResult struct {
	UID    UID
	Status Status
}

func (FriendAddResult) Op() Op { return OpFriendAddResult }

func (m FriendAddResult) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Status))
}

// FriendsRequest asks for the confirmed friend list.
type FriendsRequest struct{}

func (FriendsRequest) Op() Op         { return OpFriendsRequest }
func (FriendsRequest) encode(*writer) {}

// Friends is the confirmed friend list.
type Friends struct {
	Users []UID
}

func (Friends) Op() Op { return OpFriends }

func (m Friends) encode(w *writer) { w.uidList(m.Users) }

// FriendsInRequest asks for pending inbound friend requests.
type FriendsInRequest struct{}

func (FriendsInRequest) Op() Op         { return OpFriendsInRequest }
func (FriendsInRequest) encode(*writer) {}

// FriendsIn lists pending inbound friend requests.
type FriendsIn struct {
	Users []UID
}

func (FriendsIn) Op() Op { return OpFriendsIn }

func (m FriendsIn) encode(w *writer) { w.uidList(m.Users) }

// FriendsOutRequest asks for pending outbound friend requests.
type FriendsOutRequest struct{}

func (FriendsOutRequest) Op() Op         { return OpFriendsOutRequest }
func (FriendsOutRequest) encode(*writer) {}

// FriendsOut lists pending outbound friend requests.
type FriendsOut struct {
	Users []UID
}

func (FriendsOut) Op() Op { return OpFriendsOut }

func (m FriendsOut) encode(w *writer) { w.uidList(m.Users) }

// FriendAnswerRequest accepts or denies an inbound friend request.
type FriendAnswerRequest struct {
	UID    UID
	Answer FriendAnswer
}

func (FriendAnswerRequest) Op() Op { return OpFriendAnswer }

func (m FriendAnswerRequest) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Answer))
}

// FriendAnswerResult acks answering a friend request.
type FriendAnswerResult struct {
	UID    UID
	Status Status
	Answer FriendAnswer
}

func (FriendAnswerResult) Op() Op { return OpFriendAnswerResult }

func (m FriendAnswerResult) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Status))
	w.i8(int8(m.Answer))
}

// FriendRemove drops a confirmed friend.
type FriendRemove struct {
	UID UID
}

func (FriendRemove) Op() Op             { return OpFriendRemove }
func (m FriendRemove) encode(w *writer) { w.i32(m.UID) }

// FriendRemoveResult acks dropping a friend.
type FriendRemoveResult struct {
	UID    UID
	Status Status
}

func (FriendRemoveResult) Op() Op { return OpFriendRemoveResult }

func (m FriendRemoveResult) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Status))
}

// FriendCancel revokes an outbound friend request.
type FriendCancel struct {
	UID UID
}

func (FriendCancel) Op() Op             { return OpFriendCancel }
func (m FriendCancel) encode(w *writer) { w.i32(m.UID) }

// FriendCancelResult acks revoking a friend request.
type FriendCancelResult struct {
	UID    UID
	Status Status
}

func (FriendCancelResult) Op() Op { return OpFriendCancelResult }

func (m FriendCancelResult) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Status))
}

// MailCountRequest asks how many unread mails an account has.
type MailCountRequest struct {
	UID UID
}

func (MailCountRequest) Op() Op             { return OpMailCountRequest }
func (m MailCountRequest) encode(w *writer) { w.i32(m.UID) }

// MailCount is the unread mail count.
type MailCount struct {
	UID   UID
	Count int8
}

func (MailCount) Op() Op { return OpMailCount }

func (m MailCount) encode(w *writer) {
	w.i32(m.UID)
	w.i8(m.Count)
}

// MailListRequest asks for the unread mail id list.
type MailListRequest struct {
	UID UID
}

func (MailListRequest) Op() Op             { return OpMailListRequest }
func (m MailListRequest) encode(w *writer) { w.i32(m.UID) }

// MailList is the unread mail id list.
type MailList struct {
	Unk1 int32
	Unk2 int32
	IDs  []int32
}

func (MailList) Op() Op { return OpMailList }

func (m MailList) encode(w *writer) {
	w.i32(m.Unk1)
	w.i32(m.Unk2)
	w.i32(int32(len(m.IDs)))
	for _, id := range m.IDs {
		w.i32(id)
	}
}

// MailRequest fetches one mail by the id from the mail list.
type MailRequest struct {
	UID UID
	ID  int32
}

func (MailRequest) Op() Op { return OpMailRequest }

func (m MailRequest) encode(w *writer) {
	w.i32(m.UID)
	w.i32(m.ID)
}

// Mail is one received mail. Text is UTF-8 on the wire.
type Mail struct {
	MailUID UID
	FromUID int32
	ToUID   int32
	Date    DateTime
	Text    string
}

func (Mail) Op() Op { return OpMail }

func (m Mail) encode(w *writer) {
	w.i32(m.MailUID)
	w.i32(m.FromUID)
	w.i32(m.ToUID)
	w.datetime(m.Date)
	w.utf8Text(m.Text)
}

func decodeMail(r *reader) Mail {
	return Mail{
		MailUID: r.i32(),
		FromUID: r.i32(),
		ToUID:   r.i32(),
		Date:    r.datetime(),
		Text:    r.utf8Text(),
	}
}

// MailSend is an outgoing mail. Only ToUID and Text are filled by the
// client; the other slots are stamped server side.
type MailSend struct {
	Mail
}

func (MailSend) Op() Op { return OpMailSend }

// MailSendResult acks sending a mail.
type MailSendResult struct {
	Result MailResult
}

func (MailSendResult) Op() Op             { return OpMailSendResult }
func (m MailSendResult) encode(w *writer) { w.i8(int8(m.Result)) }

// BlockListRequest asks for the block list.
type BlockListRequest struct {
	Arg int32
}

func (BlockListRequest) Op() Op             { return OpBlockListRequest }
func (m BlockListRequest) encode(w *writer) { w.i32(m.Arg) }

// BlockList is the blocked account list.
type BlockList struct {
	Unk1  int32
	Unk2  int32
	Users []UID
}

func (BlockList) Op() Op { return OpBlockList }

func (m BlockList) encode(w *writer) {
	w.i32(m.Unk1)
	w.i32(m.Unk2)
	w.uidList(m.Users)
}

// BlockAdd blocks an account.
type BlockAdd struct {
	UID UID
}

func (BlockAdd) Op() Op             { return OpBlockAdd }
func (m BlockAdd) encode(w *writer) { w.i32(m.UID) }

// BlockAddResult acks blocking an account.
type BlockAddResult struct {
	UID    UID
	Status Status
}

func (BlockAddResult) Op() Op { return OpBlockAddResult }

func (m BlockAddResult) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Status))
}

// BlockRemove unblocks an account.
type BlockRemove struct {
	UID UID
}

func (BlockRemove) Op() Op             { return OpBlockRemove }
func (m BlockRemove) encode(w *writer) { w.i32(m.UID) }

// BlockRemoveResult acks unblocking an account.
type BlockRemoveResult struct {
	UID    UID
	Status Status
}

func (BlockRemoveResult) Op() Op { return OpBlockRemoveResult }

func (m BlockRemoveResult) encode(w *writer) {
	w.i32(m.UID)
	w.i8(int8(m.Status))
}

// Delivery is one item delivery between players, either direction.
type Delivery struct {
	Unk1    int32
	DestUID UID
	Item    data.Item
	Unk2    int32
	Index   int8
	Unk3    [3]int8
	Message string
}

func (d Delivery) encodeFields(w *writer) {
	w.i32(d.Unk1)
	w.i32(d.DestUID)
	w.item(d.Item)
	w.i32(d.Unk2)
	w.i8(d.Index)
	for _, v := range d.Unk3 {
		w.i8(v)
	}
	w.astring(d.Message, 361)
}

func decodeDelivery(r *reader) Delivery {
	var d Delivery
	d.Unk1 = r.i32()
	d.DestUID = r.i32()
	d.Item = r.item()
	d.Unk2 = r.i32()
	d.Index = r.i8()
	for i := range d.Unk3 {
		d.Unk3[i] = r.i8()
	}
	d.Message = r.astring(361)
	return d
}

// DeliveriesRequest asks for the pending delivery box contents.
type DeliveriesRequest struct {
	Arg int32
}

func (DeliveriesRequest) Op() Op             { return OpDeliveriesRequest }
func (m DeliveriesRequest) encode(w *writer) { w.i32(m.Arg) }

// DeliveryPush carries one pending delivery box entry.
type DeliveryPush struct {
	Delivery
}

func (DeliveryPush) Op() Op             { return OpDelivery }
func (m DeliveryPush) encode(w *writer) { m.Delivery.encodeFields(w) }

// DeliverySend sends an item to another player.
type DeliverySend struct {
	Delivery
}

func (DeliverySend) Op() Op             { return OpDeliverySend }
func (m DeliverySend) encode(w *writer) { m.Delivery.encodeFields(w) }

// DeliverySendResult acks sending a delivery.
type DeliverySendResult struct {
	Index  int8
	Result DeliverResult
}

func (DeliverySendResult) Op() Op { return OpDeliverySendResult }

func (m DeliverySendResult) encode(w *writer) {
	w.i8(m.Index)
	w.i8(int8(m.Result))
}

// DeliveryAnswer accepts or declines a pending delivery.
type DeliveryAnswer struct {
	Delivery Delivery
	Action   int8
}

func (DeliveryAnswer) Op() Op { return OpDeliveryAnswer }

func (m DeliveryAnswer) encode(w *writer) {
	m.Delivery.encodeFields(w)
	w.i8(m.Action)
}

// DeliveryAnswerResult acks answering a delivery.
type DeliveryAnswerResult struct {
	Index  int8
	Action int8
	Result DeliverResult
}

func (DeliveryAnswerResult) Op() Op { return OpDeliveryAnswerRes }

func (m DeliveryAnswerResult) encode(w *writer) {
	w.i8(m.Index)
	w.i8(m.Action)
	w.i8(int8(m.Result))
}

// DeliveryNotice tells the client new deliveries arrived.
type DeliveryNotice struct{}

func (DeliveryNotice) Op() Op         { return OpDeliveryNotice }
func (DeliveryNotice) encode(*writer) {}

// DeliveryBoxCount is the delivery box entry count. Unk of -3 flags an
// error, 0 ok.
type DeliveryBoxCount struct {
	Unk   int32
	Count int32
}

func (DeliveryBoxCount) Op() Op { return OpDeliveryBoxCount }

func (m DeliveryBoxCount) encode(w *writer) {
	w.i32(m.Unk)
	w.i32(m.Count)
}

// MacrosRequest asks for the chat macro set.
type MacrosRequest struct {
	Arg int32
}

func (MacrosRequest) Op() Op             { return OpMacrosRequest }
func (m MacrosRequest) encode(w *writer) { w.i32(m.Arg) }

// Macro is one chat macro slot.
type Macro struct {
	Which int8
	Text  string
}

func (Macro) Op() Op { return OpMacro }

func (m Macro) encode(w *writer) {
	w.i8(m.Which)
	w.astring(m.Text, 65)
}

// MacroSet stores a chat macro slot.
type MacroSet struct {
	Which int8
	Text  string
}

func (MacroSet) Op() Op { return OpMacroSet }

func (m MacroSet) encode(w *writer) {
	w.i8(m.Which)
	w.astring(m.Text, 65)
}

// MacroSetResult acks storing a macro.
type MacroSetResult struct {
	Which  int8
	Status Status
}

func (MacroSetResult) Op() Op { return OpMacroSetResult }

func (m MacroSetResult) encode(w *writer) {
	w.i8(m.Which)
	w.i8(int8(m.Status))
}

// GameCenterRequest opens the game center or code center. The retail
// client sends -1 for the game center and 0 for the code center.
type GameCenterRequest struct {
	Arg int32
}

func (GameCenterRequest) Op() Op             { return OpGameCenterRequest }
func (m GameCenterRequest) encode(w *writer) { w.i32(m.Arg) }

// UFOPlayRequest plays the UFO catcher. 1 spends a coin, 2 a tenth coin.
type UFOPlayRequest struct {
	Coin int8
}

func (UFOPlayRequest) Op() Op             { return OpUFOPlayRequest }
func (m UFOPlayRequest) encode(w *writer) { w.i8(m.Coin) }

// UFOPlayResult is the UFO catcher outcome. Result -1 means not enough
// coins, -2 a full delivery box, -3 a server error.
type UFOPlayResult struct {
	Item    data.CountedItem
	Result  int8
	Outcome int8
}

func (UFOPlayResult) Op() Op { return OpUFOPlayResult }

func (m UFOPlayResult) encode(w *writer) {
	w.counted(m.Item)
	w.i8(m.Result)
	w.i8(m.Outcome)
}

// SlotsPlayRequest plays the slot machine. 3 spends a medal, 12 one of
// the daily free plays.
type SlotsPlayRequest struct {
	Coin int8
}

func (SlotsPlayRequest) Op() Op             { return OpSlotsPlayRequest }
func (m SlotsPlayRequest) encode(w *writer) { w.i8(m.Coin) }

// SlotsPlayResult is the slot machine outcome.
type SlotsPlayResult struct {
	Item    data.CountedItem
	Result  int8
	Outcome int8
}

func (SlotsPlayResult) Op() Op { return OpSlotsPlayResult }

func (m SlotsPlayResult) encode(w *writer) {
	w.counted(m.Item)
	w.i8(m.Result)
	w.i8(m.Outcome)
}

// GCPlaysRequest asks how many free game center plays remain today.
type GCPlaysRequest struct{}

func (GCPlaysRequest) Op() Op         { return OpGCPlaysRequest }
func (GCPlaysRequest) encode(*writer) {}

// GCPlays is the remaining free play count.
type GCPlays struct {
	Remaining int8
}

func (GCPlays) Op() Op             { return OpGCPlays }
func (m GCPlays) encode(w *writer) { w.i8(m.Remaining) }

// RecycleInfoRequest opens the recycle shop.
type RecycleInfoRequest struct{}

func (RecycleInfoRequest) Op() Op         { return OpRecycleInfoRequest }
func (RecycleInfoRequest) encode(*writer) {}

// RecycleInfo lists the recyclable entries as opaque 28 byte rows the
// client renders directly.
type RecycleInfo struct {
	Entries [][28]byte
}

func (RecycleInfo) Op() Op { return OpRecycleInfo }

func (m RecycleInfo) encode(w *writer) {
	w.i16(int16(len(m.Entries)))
	for i := range m.Entries {
		w.bytes(m.Entries[i][:])
	}
}

// RecycleOpen finishes recycle shop setup.
type RecycleOpen struct{}

func (RecycleOpen) Op() Op         { return OpRecycleOpen }
func (RecycleOpen) encode(*writer) {}

// RecycleRequest starts a recycle using an eco ticket. The gold flag
// rides as a single bit in a two byte trailer.
type RecycleRequest struct {
	Index      int16
	GoldTicket bool
}

func (RecycleRequest) Op() Op { return OpRecycleRequest }

func (m RecycleRequest) encode(w *writer) {
	w.i16(m.Index)
	var b uint8
	if m.GoldTicket {
		b = 1
	}
	w.u8(b)
	w.pad(1)
}

// RecycleResult is the recycle verdict, 0 ok and -1 failed. On success
// the client drops a ticket and one of each material.
type RecycleResult struct {
	Result int8
}

func (RecycleResult) Op() Op             { return OpRecycleResult }
func (m RecycleResult) encode(w *writer) { w.i8(m.Result) }

// RedeemCodeRequest redeems a promotion code.
type RedeemCodeRequest struct {
	Code string
}

func (RedeemCodeRequest) Op() Op             { return OpRedeemCodeRequest }
func (m RedeemCodeRequest) encode(w *writer) { w.astring(m.Code, 21) }

// RedeemCodeResult is the redeem outcome with up to five granted items.
type RedeemCodeResult struct {
	Items  [5]data.CountedItem
	Status Status
	Count  int8
	Text   string
}

func (RedeemCodeResult) Op() Op { return OpRedeemCodeResult }

func (m RedeemCodeResult) encode(w *writer) {
	for _, it := range m.Items {
		w.counted(it)
	}
	w.i8(int8(m.Status))
	w.i8(m.Count)
	w.wstring(m.Text, 32)
}

// CheckCodeRequest validates a promotion code without redeeming it.
type CheckCodeRequest struct {
	Code string
}

func (CheckCodeRequest) Op() Op             { return OpCheckCodeRequest }
func (m CheckCodeRequest) encode(w *writer) { w.astring(m.Code, 21) }

// CheckCodeResult acks a code validation.
type CheckCodeResult struct {
	Status Status
}

func (CheckCodeResult) Op() Op             { return OpCheckCodeResult }
func (m CheckCodeResult) encode(w *writer) { w.i8(int8(m.Status)) }

// AuthChallenge is the anti-cheat challenge pushed after the handshake.
type AuthChallenge struct {
	Index uint32
	Val1  uint32
	Val2  uint32
	Val3  uint32
}

func (AuthChallenge) Op() Op { return OpAuthChallenge }

func (m AuthChallenge) encode(w *writer) {
	w.u32(m.Index)
	w.u32(m.Val1)
	w.u32(m.Val2)
	w.u32(m.Val3)
}

// AuthResponse answers the anti-cheat challenge.
type AuthResponse struct {
	Index uint32
	Val1  uint32
	Val2  uint32
	Val3  uint32
}

func (AuthResponse) Op() Op { return OpAuthResponse }

func (m AuthResponse) encode(w *writer) {
	w.u32(m.Index)
	w.u32(m.Val1)
	w.u32(m.Val2)
	w.u32(m.Val3)
}

func (w *writer) uidList(users []UID) {
	w.i32(int32(len(users)))
	for _, u := range users {
		w.i32(u)
	}
}

func (r *reader) uidList() []UID {
	n := r.i32()
	if n <= 0 {
		return nil
	}
	users := make([]UID, n)
	for i := range users {
		users[i] = r.i32()
	}
	return users
}

func init() {
	register(OpUserInfoRequest, func(r *reader) Body { return UserInfoRequest{UID: r.i32()} })
	register(OpUserInfo, func(r *reader) Body {
		var m UserInfo
		m.CID = r.i32()
		m.UID = r.i32()
		m.Stat = r.i16()
		copy(m.Unk[:], r.take(15))
		m.Name = r.wstring(17)
		return m
	})
	register(OpFindUserRequest, func(r *reader) Body {
		return FindUserRequest{Unk1: r.i32(), Unk2: r.i32(), Name: r.wstring(19)}
	})
	register(OpFindUserResult, func(r *reader) Body {
		return FindUserResult{Unk1: r.i32(), UID: r.i32(), Name: r.wstring(19)}
	})
	register(OpFriendAddRequest, func(r *reader) Body { return FriendAddRequest{UID: r.i32()} })
	register(OpFriendAddResult, func(r *reader) Body {
		return FriendAddResult{UID: r.i32(), Status: Status(r.i8())}
	})
	register(OpFriendsRequest, func(*reader) Body { return FriendsRequest{} })
	register(OpFriends, func(r *reader) Body { return Friends{Users: r.uidList()} })
	register(OpFriendsInRequest, func(*reader) Body { return FriendsInRequest{} })
	register(OpFriendsIn, func(r *reader) Body { return FriendsIn{Users: r.uidList()} })
	register(OpFriendsOutRequest, func(*reader) Body { return FriendsOutRequest{} })
	register(OpFriendsOut, func(r *reader) Body { return FriendsOut{Users: r.uidList()} })
	register(OpFriendAnswer, func(r *reader) Body {
		return FriendAnswerRequest{UID: r.i32(), Answer: FriendAnswer(r.i8())}
	})
	register(OpFriendAnswerResult, func(r *reader) Body {
		return FriendAnswerResult{UID: r.i32(), Status: Status(r.i8()), Answer: FriendAnswer(r.i8())}
	})
	register(OpFriendRemove, func(r *reader) Body { return FriendRemove{UID: r.i32()} })
	register(OpFriendRemoveResult, func(r *reader) Body {
		return FriendRemoveResult{UID: r.i32(), Status: Status(r.i8())}
	})
	register(OpFriendCancel, func(r *reader) Body { return FriendCancel{UID: r.i32()} })
	register(OpFriendCancelResult, func(r *reader) Body {
		return FriendCancelResult{UID: r.i32(), Status: Status(r.i8())}
	})
	register(OpMailCountRequest, func(r *reader) Body { return MailCountRequest{UID: r.i32()} })
	register(OpMailCount, func(r *reader) Body {
		return MailCount{UID: r.i32(), Count: r.i8()}
	})
	register(OpMailListRequest, func(r *reader) Body { return MailListRequest{UID: r.i32()} })
	register(OpMailList, func(r *reader) Body {
		var m MailList
		m.Unk1 = r.i32()
		m.Unk2 = r.i32()
		n := r.i32()
		if n > 0 {
			m.IDs = make([]int32, n)
			for i := range m.IDs {
				m.IDs[i] = r.i32()
			}
		}
		return m
	})
	register(OpMailRequest, func(r *reader) Body {
		return MailRequest{UID: r.i32(), ID: r.i32()}
	})
	register(OpMail, func(r *reader) Body { return decodeMail(r) })
	register(OpMailSend, func(r *reader) Body { return MailSend{decodeMail(r)} })
	register(OpMailSendResult, func(r *reader) Body {
		return MailSendResult{Result: MailResult(r.i8())}
	})
	register(OpBlockListRequest, func(r *reader) Body { return BlockListRequest{Arg: r.i32()} })
	register(OpBlockList, func(r *reader) Body {
		return BlockList{Unk1: r.i32(), Unk2: r.i32(), Users: r.uidList()}
	})
	register(OpBlockAdd, func(r *reader) Body { return BlockAdd{UID: r.i32()} })
	register(OpBlockAddResult, func(r *reader) Body {
		return BlockAddResult{UID: r.i32(), Status: Status(r.i8())}
	})
	register(OpBlockRemove, func(r *reader) Body { return BlockRemove{UID: r.i32()} })
	register(OpBlockRemoveResult, func(r *reader) Body {
		return BlockRemoveResult{UID: r.i32(), Status: Status(r.i8())}
	})
	register(OpDeliveriesRequest, func(r *reader) Body { return DeliveriesRequest{Arg: r.i32()} })
	register(OpDelivery, func(r *reader) Body { return DeliveryPush{decodeDelivery(r)} })
	register(OpDeliverySend, func(r *reader) Body { return DeliverySend{decodeDelivery(r)} })
	register(OpDeliverySendResult, func(r *reader) Body {
		return DeliverySendResult{Index: r.i8(), Result: DeliverResult(r.i8())}
	})
	register(OpDeliveryAnswer, func(r *reader) Body {
		return DeliveryAnswer{Delivery: decodeDelivery(r), Action: r.i8()}
	})
	register(OpDeliveryAnswerRes, func(r *reader) Body {
		return DeliveryAnswerResult{Index: r.i8(), Action: r.i8(), Result: DeliverResult(r.i8())}
	})
	register(OpDeliveryNotice, func(*reader) Body { return DeliveryNotice{} })
	register(OpDeliveryBoxCount, func(r *reader) Body {
		return DeliveryBoxCount{Unk: r.i32(), Count: r.i32()}
	})
	register(OpMacrosRequest, func(r *reader) Body { return MacrosRequest{Arg: r.i32()} })
	register(OpMacro, func(r *reader) Body {
		return Macro{Which: r.i8(), Text: r.astring(65)}
	})
	register(OpMacroSet, func(r *reader) Body {
		return MacroSet{Which: r.i8(), Text: r.astring(65)}
	})
	register(OpMacroSetResult, func(r *reader) Body {
		return MacroSetResult{Which: r.i8(), Status: Status(r.i8())}
	})
	register(OpGameCenterRequest, func(r *reader) Body { return GameCenterRequest{Arg: r.i32()} })
	register(OpUFOPlayRequest, func(r *reader) Body { return UFOPlayRequest{Coin: r.i8()} })
	register(OpUFOPlayResult, func(r *reader) Body {
		return UFOPlayResult{Item: r.counted(), Result: r.i8(), Outcome: r.i8()}
	})
	register(OpSlotsPlayRequest, func(r *reader) Body { return SlotsPlayRequest{Coin: r.i8()} })
	register(OpSlotsPlayResult, func(r *reader) Body {
		return SlotsPlayResult{Item: r.counted(), Result: r.i8(), Outcome: r.i8()}
	})
	register(OpGCPlaysRequest, func(*reader) Body { return GCPlaysRequest{} })
	register(OpGCPlays, func(r *reader) Body { return GCPlays{Remaining: r.i8()} })
	register(OpRecycleInfoRequest, func(*reader) Body { return RecycleInfoRequest{} })
	register(OpRecycleInfo, func(r *reader) Body {
		var m RecycleInfo
		n := r.i16()
		if n > 0 {
			m.Entries = make([][28]byte, n)
			for i := range m.Entries {
				copy(m.Entries[i][:], r.take(28))
			}
		}
		return m
	})
	register(OpRecycleOpen, func(*reader) Body { return RecycleOpen{} })
	register(OpRecycleRequest, func(r *reader) Body {
		var m RecycleRequest
		m.Index = r.i16()
		m.GoldTicket = r.u8()&1 != 0
		r.take(1)
		return m
	})
	register(OpRecycleResult, func(r *reader) Body { return RecycleResult{Result: r.i8()} })
	register(OpRedeemCodeRequest, func(r *reader) Body {
		return RedeemCodeRequest{Code: r.astring(21)}
	})
	register(OpRedeemCodeResult, func(r *reader) Body {
		var m RedeemCodeResult
		for i := range m.Items {
			m.Items[i] = r.counted()
		}
		m.Status = Status(r.i8())
		m.Count = r.i8()
		m.Text = r.wstring(32)
		return m
	})
	register(OpCheckCodeRequest, func(r *reader) Body {
		return CheckCodeRequest{Code: r.astring(21)}
	})
	register(OpCheckCodeResult, func(r *reader) Body {
		return CheckCodeResult{Status: Status(r.i8())}
	})
	register(OpAuthChallenge, func(r *reader) Body {
		return AuthChallenge{Index: r.u32(), Val1: r.u32(), Val2: r.u32(), Val3: r.u32()}
	})
	register(OpAuthResponse, func(r *reader) Body {
		return AuthResponse{Index: r.u32(), Val1: r.u32(), Val2: r.u32(), Val3: r.u32()}
	})
}
