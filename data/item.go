package data

import "fmt"

// Kind is the broad item category selected by the code bits of an item
// identifier. Character-scoped kinds carry a CharID alongside; see Category.
type Kind uint8

const (
	KindInvalid Kind = iota

	// global kinds
	KindClubSet
	KindBall
	KindCarryItemParameter
	KindCarryItemEnvironment
	KindCarryItemGroundRes
	KindCarryItemPowerGauge
	KindCarryItemCaddy
	KindHoldItemPoint
	KindHoldItemEvent
	KindHoldItemTicket
	KindHoldItemHumor
	KindHoldItemSupport
	KindCaddy

	// character-scoped kinds
	KindHead
	KindGlasses
	KindTops
	KindBottoms
	KindShoes
	KindGloves
	KindWing
	KindHairStyle
	KindHairColor
	KindSkinColor
	KindFacePaint
	KindEyeColor
	KindHairStyleTicket
	KindHairColorTicket
	KindSkinColorTicket
	KindFacePaintTicket
	KindEyeColorTicket
	KindChara
)

// Category is a fully qualified item category: a kind plus, for
// character-scoped kinds, the owning character. Global kinds leave Char zero.
type Category struct {
	Kind Kind
	Char CharID
}

// itemCode holds the fixed code bits of each kind (everything except the
// numeric index and the character bits).
var itemCodes = map[Kind]uint32{
	KindClubSet:              0x800,
	KindBall:                 0x3000,
	KindCarryItemParameter:   0x4000,
	KindCarryItemEnvironment: 0x5000,
	KindCarryItemGroundRes:   0x6000,
	KindCarryItemPowerGauge:  0x7000,
	KindCarryItemCaddy:       0x8000,
	KindHoldItemPoint:        0x9000,
	KindHoldItemEvent:        0xC000,
	KindHoldItemTicket:       0xD000,
	KindHoldItemHumor:        0xE000,
	KindHoldItemSupport:      0x10000,
	KindCaddy:                0x1F800,
	KindHead:                 0x1800,
	KindGlasses:              0x2800,
	KindTops:                 0x3800,
	KindBottoms:              0x4800,
	KindShoes:                0x5800,
	KindGloves:               0x6800,
	KindWing:                 0x7800,
	KindHairStyle:            0xF800,
	KindHairColor:            0x10800,
	KindSkinColor:            0x11800,
	KindFacePaint:            0x12800,
	KindEyeColor:             0x13800,
	KindHairStyleTicket:      0x14000,
	KindHairColorTicket:      0x15000,
	KindSkinColorTicket:      0x16000,
	KindFacePaintTicket:      0x17000,
	KindEyeColorTicket:       0x18000,
	KindChara:                0x1F800,
}

// selected by bits [12:17) when the character bits name a valid character
var charScopedKinds = map[uint32]Kind{
	1:    KindHead,
	2:    KindGlasses,
	3:    KindTops,
	4:    KindBottoms,
	5:    KindShoes,
	6:    KindGloves,
	7:    KindWing,
	0xF:  KindHairStyle,
	0x10: KindHairColor,
	0x11: KindSkinColor,
	0x12: KindFacePaint,
	0x13: KindEyeColor,
	0x14: KindHairStyleTicket,
	0x15: KindHairColorTicket,
	0x16: KindSkinColorTicket,
	0x17: KindFacePaintTicket,
	0x18: KindEyeColorTicket,
	0x1F: KindChara,
}

// selected by bits [12:17) when the character bits are not a valid character
var globalKinds = map[uint32]Kind{
	0:    KindClubSet,
	3:    KindBall,
	4:    KindCarryItemParameter,
	5:    KindCarryItemEnvironment,
	6:    KindCarryItemGroundRes,
	7:    KindCarryItemPowerGauge,
	8:    KindCarryItemCaddy,
	9:    KindHoldItemPoint,
	0xC:  KindHoldItemEvent,
	0xD:  KindHoldItemTicket,
	0xE:  KindHoldItemHumor,
	0x10: KindHoldItemSupport,
	0x1F: KindCaddy,
}

var (
	itemNum      = field{0, 11}
	itemKindBits = field{12, 5}
	itemCharBits = field{17, 5}
)

// Item is a wire-exact 32-bit item identifier. The zero value is the empty
// item, which decodes to an Invalid category.
type Item uint32

// MaxItemNum is the largest numeric index an item identifier can hold.
const MaxItemNum = 0x7FF

// NewItem builds an item identifier from a category and a numeric index.
// It panics if the category is Invalid: that category exists only as a decode
// result and must never be constructed. An out-of-range index is a range
// error.
func NewItem(cat Category, num uint32) (Item, error) {
	if cat.Kind == KindInvalid {
		panic("data: cannot construct an item with an invalid category")
	}
	if num > MaxItemNum {
		return 0, &RangeError{Field: "item num", Value: num, Max: MaxItemNum}
	}
	code := itemCodes[cat.Kind]
	if cat.Char != 0 {
		code |= itemCharBits.put(cat.Char.Index())
	}
	return Item(code | num), nil
}

// MustItem is NewItem for statically known inputs, such as catalog tables.
func MustItem(cat Category, num uint32) Item {
	item, err := NewItem(cat, num)
	if err != nil {
		panic(err)
	}
	return item
}

// Num returns the numeric index held in the low bits.
func (i Item) Num() uint32 {
	return itemNum.get(uint32(i))
}

// Category decodes the code bits. The empty item and unrecognized code bits
// yield the Invalid category.
func (i Item) Category() Category {
	if i == 0 {
		return Category{Kind: KindInvalid}
	}
	v := uint32(i)
	if char, ok := CharFromIndex(itemCharBits.get(v)); ok {
		if kind, ok := charScopedKinds[itemKindBits.get(v)]; ok {
			return Category{Kind: kind, Char: char}
		}
		return Category{Kind: KindInvalid}
	}
	if kind, ok := globalKinds[itemKindBits.get(v)]; ok {
		return Category{Kind: kind}
	}
	return Category{Kind: KindInvalid}
}

// One wraps the item with a count of one.
func (i Item) One() CountedItem {
	return MustCountedItem(i, 1)
}

func (i Item) String() string {
	if i == 0 {
		return "<empty>"
	}
	cat := i.Category()
	if cat.Char != 0 {
		return fmt.Sprintf("<%v/%v:%d>", kindName(cat.Kind), cat.Char, i.Num())
	}
	return fmt.Sprintf("<%v:%d>", kindName(cat.Kind), i.Num())
}

// MaxStack is how many of this category one player may own at once.
func (c Category) MaxStack() uint32 {
	switch c.Kind {
	case KindInvalid:
		return 0
	case KindClubSet, KindCaddy, KindHead, KindGlasses, KindTops, KindBottoms,
		KindShoes, KindGloves, KindWing, KindHairStyle, KindHairColor,
		KindSkinColor, KindFacePaint, KindEyeColor, KindChara:
		return 5
	default:
		return 50
	}
}

func kindName(k Kind) string {
	switch k {
	case KindClubSet:
		return "ClubSet"
	case KindBall:
		return "Ball"
	case KindCaddy:
		return "Caddy"
	case KindChara:
		return "Chara"
	case KindInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

var (
	countedItemBits = field{10, 22}
	countedNum      = field{0, 10}
)

// MaxItemCount is the largest count a counted item can carry.
const MaxItemCount = 0x3FF

// CountedItem packs an item identifier and a quantity into one 32-bit word:
// the item in the high 22 bits, the count in the low 10.
type CountedItem uint32

// NewCountedItem packs an item with a count. An out-of-range count is a
// range error.
func NewCountedItem(item Item, count uint32) (CountedItem, error) {
	if count > MaxItemCount {
		return 0, &RangeError{Field: "item count", Value: count, Max: MaxItemCount}
	}
	return CountedItem(countedItemBits.put(uint32(item)) | count), nil
}

// MustCountedItem is NewCountedItem for statically known inputs.
func MustCountedItem(item Item, count uint32) CountedItem {
	ci, err := NewCountedItem(item, count)
	if err != nil {
		panic(err)
	}
	return ci
}

func (c CountedItem) Item() Item {
	return Item(countedItemBits.get(uint32(c)))
}

func (c CountedItem) Count() uint32 {
	return countedNum.get(uint32(c))
}

// WithCount returns a copy holding the same item with a new count.
func (c CountedItem) WithCount(count uint32) (CountedItem, error) {
	return NewCountedItem(c.Item(), count)
}

func (c CountedItem) String() string {
	return fmt.Sprintf("%v x%d", c.Item(), c.Count())
}
