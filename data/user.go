package data

// UID is the permanent per-account identifier.
type UID = int32

// ChrUID is the permanent per-character identifier.
type ChrUID = int32

// User is the account-wide mutable state: balances, bag contents, element
// and rank. Stored as a JSON blob keyed on UID.
type User struct {
	DefaultChrUID ChrUID        `json:"default_chr_uid"`
	Element       Element       `json:"element"`
	Class         Rank          `json:"class"`
	GP            int32         `json:"gp"`
	SC            int32         `json:"sc"`
	Golfbag       [8]Item       `json:"golfbag"`
	Holdbox       [8]Item       `json:"holdbox"`
	Inventory     []CountedItem `json:"inventory"`
}

// NewUser is the state of a brand-new account.
func NewUser() User {
	return User{
		DefaultChrUID: -1,
		Element:       ElementNone,
		Class:         RankG4,
		GP:            5000,
		SC:            100,
	}
}

// ItemAmount reports how many of a particular item the user owns.
func (u *User) ItemAmount(item Item) uint32 {
	for _, ci := range u.Inventory {
		if ci.Item() == item {
			return ci.Count()
		}
	}
	return 0
}

// AddItem merges a counted item into the inventory, stacking onto an
// existing entry when present.
func (u *User) AddItem(ci CountedItem) error {
	item := ci.Item()
	for n, have := range u.Inventory {
		if have.Item() == item {
			merged, err := have.WithCount(have.Count() + ci.Count())
			if err != nil {
				return err
			}
			u.Inventory[n] = merged
			return nil
		}
	}
	u.Inventory = append(u.Inventory, ci)
	return nil
}

// CheckBalance reports whether the user can pay a cost in the given currency.
func (u *User) CheckBalance(currency Currency, cost int32) bool {
	switch currency {
	case CurrencyGP:
		return cost <= u.GP
	case CurrencySC:
		return cost <= u.SC
	default:
		return false
	}
}

// AdjustBalance adds a signed delta to the balance of the given currency.
func (u *User) AdjustBalance(currency Currency, delta int32) {
	switch currency {
	case CurrencyGP:
		u.GP += delta
	case CurrencySC:
		u.SC += delta
	default:
		panic("data: adjusting a non-monetary balance")
	}
}

// Account bundles everything the storage layer knows about one login.
type Account struct {
	UID        UID
	Name       string // empty until the player picks one
	User       User
	Characters []OwnedCharacter
}

// OwnedCharacter pairs a character with its permanent id.
type OwnedCharacter struct {
	ChrUID ChrUID
	Char   Character
}
