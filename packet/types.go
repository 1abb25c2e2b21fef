package packet

// CID is a session-scoped connection id, UID and ChrUID the permanent
// account and character ids. They travel as 32-bit values even though the
// live ranges are small.
type (
	CID    = int32
	UID    = int32
	ChrUID = int32
)

// LobbyNum and RoomNum are small signed indices; negative values carry
// error codes in replies.
type (
	LobbyNum = int8
	RoomNum  = int8
)

// Mode selects which part of the game a session is in.
type Mode int8

const (
	ModeNone        Mode = -1
	ModeMain        Mode = 0
	ModeVS          Mode = 1
	ModeCompetition Mode = 2
	ModeQuick       Mode = 3
	ModeEvent       Mode = 4
	ModeSingle      Mode = 5
)

// Status is the generic ok / error result byte.
type Status int8

const (
	StatusErr Status = -1
	StatusOK  Status = 0
)

// FriendAnswer is the accept / deny byte on friend request replies.
type FriendAnswer int8

const (
	FriendDeny   FriendAnswer = 0
	FriendAccept FriendAnswer = 1
)

// Stat is the user presence bitfield broadcast with opcode 26.
type Stat uint32

const (
	StatReady   Stat = 1 << iota // marked ready in a room
	StatExit                     // leaving
	StatGallery                  // spectating
	StatRound                    // in a round
	StatAFK
	StatBusy
	StatStealth1
	StatStealth2
)

// LoginResult is the opcode 2 verdict. The same codes ride in the cid
// field of a rejected opcode 7 reply.
type LoginResult int8

const (
	LoginOK         LoginResult = 0
	LoginIDError    LoginResult = -1
	LoginPassError  LoginResult = -2
	LoginBanned     LoginResult = -3
	LoginNotValid   LoginResult = -4
	LoginMultiLogin LoginResult = -5
	LoginBadVersion LoginResult = -6
)

// BuyResult is the verdict on every purchase-shaped request.
type BuyResult int8

const (
	BuyOK           BuyResult = 0
	BuyBalance      BuyResult = -1
	BuyNoItem       BuyResult = -2
	BuyInvalidCount BuyResult = -3
	BuyInvalidType  BuyResult = -4
	BuyErr          BuyResult = -5
	BuyNoTicket     BuyResult = -6
)

// MailResult is the verdict on sending in-game mail.
type MailResult int8

const (
	MailOK           MailResult = 0
	MailUnknownError MailResult = -1
	MailDisabled     MailResult = -2
	MailLimitReached MailResult = -3
	MailErr          MailResult = -4
)

// DeliverResult is the verdict on item deliveries between players.
type DeliverResult int8

const (
	DeliverOK              DeliverResult = 0
	DeliverError1          DeliverResult = -1
	DeliverError2          DeliverResult = -2
	DeliverSlotUnavailable DeliverResult = -3
	DeliverError4          DeliverResult = -4
	DeliverBoxFull         DeliverResult = -5
	DeliverBadItemInfo     DeliverResult = -6
	DeliverError7          DeliverResult = -7
	DeliverError8          DeliverResult = -8
	DeliverUserBlocked     DeliverResult = -9
	DeliverRefused         DeliverResult = -10
	DeliverNoTickets       DeliverResult = -11
	DeliverSenderCancelled DeliverResult = -12
	DeliverTradeCancelled  DeliverResult = -13
)

// UDataChange tags the friend-graph notifications pushed with opcode 226.
type UDataChange int8

const (
	ChangeFriendAccepted UDataChange = 0
	ChangeFriendRemoved  UDataChange = 1
	ChangeFriendReceived UDataChange = 2
	ChangeFriendRevoked  UDataChange = 3
	ChangeFriendRejected UDataChange = 4
)

// DateTime is the six field timestamp used by mail and caddie rentals.
type DateTime struct {
	Year   int16
	Month  int8
	Day    int8
	Hour   int8
	Minute int8
	Second int8
}

func (r *reader) datetime() DateTime {
	return DateTime{
		Year:   r.i16(),
		Month:  r.i8(),
		Day:    r.i8(),
		Hour:   r.i8(),
		Minute: r.i8(),
		Second: r.i8(),
	}
}

func (w *writer) datetime(d DateTime) {
	w.i16(d.Year)
	w.i8(d.Month)
	w.i8(d.Day)
	w.i8(d.Hour)
	w.i8(d.Minute)
	w.i8(d.Second)
}
