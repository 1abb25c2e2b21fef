package data

// Currency selects which balance pays for a shop purchase.
type Currency uint8

const (
	CurrencyGP Currency = iota
	CurrencySC
	CurrencyTicketsOnly
)

func currencyFromFlags(flags uint32) Currency {
	switch {
	case flags&0x20 != 0:
		return CurrencyTicketsOnly
	case flags&2 != 0:
		return CurrencySC
	default:
		return CurrencyGP
	}
}

func (c Currency) flags() uint32 {
	switch c {
	case CurrencySC:
		return 2
	case CurrencyTicketsOnly:
		return 0x20
	default:
		return 0
	}
}

// Marketing is the badge shown next to a shop entry.
type Marketing uint8

const (
	MarketingNone Marketing = iota
	MarketingNew
	MarketingHot
	MarketingSale
)

func marketingFromFlags(flags uint32) Marketing {
	switch {
	case flags&0x40 != 0:
		return MarketingSale
	case flags&0x10 != 0:
		return MarketingHot
	case flags&8 != 0:
		return MarketingNew
	default:
		return MarketingNone
	}
}

func (m Marketing) flags() uint32 {
	switch m {
	case MarketingNew:
		return 8
	case MarketingHot:
		return 0x10
	case MarketingSale:
		return 0x40
	default:
		return 0
	}
}

var (
	sellPrice = field{0, 20}
	sellFlags = field{20, 12}
)

// SellItem is one purchasable entry in a shop table. On the wire it packs
// into three 32-bit words: the item, price+flags, and the SP price.
type SellItem struct {
	Item      Item
	Currency  Currency
	Marketing Marketing
	Price     uint32
	SPPrice   uint32
}

// SellItemWords is the wire size of a shop entry in 32-bit words.
const SellItemWords = 3

// Pack encodes the entry into its wire words.
func (s SellItem) Pack() ([SellItemWords]uint32, error) {
	var w [SellItemWords]uint32
	price, err := sellPrice.putChecked("sell price", s.Price)
	if err != nil {
		return w, err
	}
	sp, err := sellPrice.putChecked("sell sp price", s.SPPrice)
	if err != nil {
		return w, err
	}
	w[0] = uint32(s.Item)
	w[1] = price | sellFlags.put(s.Currency.flags()|s.Marketing.flags())
	w[2] = sp
	return w, nil
}

// UnpackSellItem decodes a shop entry from its wire words.
func UnpackSellItem(w [SellItemWords]uint32) SellItem {
	flags := sellFlags.get(w[1])
	return SellItem{
		Item:      Item(w[0]),
		Currency:  currencyFromFlags(flags),
		Marketing: marketingFromFlags(flags),
		Price:     sellPrice.get(w[1]),
		SPPrice:   sellPrice.get(w[2]),
	}
}

var (
	caddyItem  = field{0, 22}
	caddyFlags = field{22, 10}
)

// SellCaddy is one hireable caddie entry. Unlike SellItem the flags share
// word zero with the item, followed by a price per rental duration.
type SellCaddy struct {
	Item           Item
	Currency       Currency
	Marketing      Marketing
	Price3Hours    uint32
	Price3Days     uint32
	Price30Days    uint32
	InfiniteRental int32
}

// SellCaddyWords is the wire size of a caddie entry in 32-bit words.
const SellCaddyWords = 5

// Pack encodes the caddie entry into its wire words.
func (s SellCaddy) Pack() [SellCaddyWords]uint32 {
	var w [SellCaddyWords]uint32
	w[0] = caddyItem.put(uint32(s.Item)) | caddyFlags.put(s.Currency.flags()|s.Marketing.flags())
	w[1] = s.Price3Hours
	w[2] = s.Price3Days
	w[3] = s.Price30Days
	w[4] = uint32(s.InfiniteRental)
	return w
}

// UnpackSellCaddy decodes a caddie entry from its wire words.
func UnpackSellCaddy(w [SellCaddyWords]uint32) SellCaddy {
	flags := caddyFlags.get(w[0])
	return SellCaddy{
		Item:           Item(caddyItem.get(w[0])),
		Currency:       currencyFromFlags(flags),
		Marketing:      marketingFromFlags(flags),
		Price3Hours:    w[1],
		Price3Days:     w[2],
		Price30Days:    w[3],
		InfiniteRental: int32(w[4]),
	}
}
