// Package shop builds the static sell catalogs. The retail service drove
// these from an operations database; here the tables are generated so
// every known wearable, carry item and salon option is purchasable.
package shop

import "splashsrv/data"

type numRange struct {
	lo, hi uint32
}

func push(list []data.SellItem, cat data.Category, num, price uint32) []data.SellItem {
	return append(list, data.SellItem{
		Item:     data.MustItem(cat, num),
		Currency: data.CurrencyGP,
		Price:    price,
	})
}

func pushRanges(list []data.SellItem, cat data.Category, ranges []numRange) []data.SellItem {
	for _, r := range ranges {
		for num := r.lo; num <= r.hi; num++ {
			list = push(list, cat, num, 10*num)
		}
	}
	return list
}

// BuildSellList returns the regular shop catalog: clubs, balls, carry and
// hold items, plus the wearables for the characters with known ranges.
func BuildSellList() []data.SellItem {
	var list []data.SellItem

	types := []struct {
		kind data.Kind
		max  uint32
	}{
		{data.KindClubSet, 55},
		{data.KindBall, 15},
		{data.KindCarryItemEnvironment, 12},
		{data.KindCarryItemGroundRes, 18},
		{data.KindCarryItemPowerGauge, 6},
		{data.KindCarryItemCaddy, 10},
		{data.KindHoldItemPoint, 6},
		{data.KindHoldItemEvent, 3},
		// character-specific tickets are not sold here
		{data.KindHoldItemTicket, 41},
		{data.KindHoldItemHumor, 3},
		{data.KindHoldItemSupport, 7},
	}
	for _, t := range types {
		for num := uint32(1); num <= t.max; num++ {
			list = push(list, data.Category{Kind: t.kind}, num, num*5)
		}
	}

	// parameter items come in five groups of four plus five pairs
	param := data.Category{Kind: data.KindCarryItemParameter}
	for group := uint32(0); group < 5; group++ {
		for i, index := range [4]uint32{1, 3, 4, 6} {
			list = push(list, param, group*6+index, 5+uint32(i)*10)
		}
	}
	for group := uint32(0); group < 5; group++ {
		for i := uint32(0); i < 2; i++ {
			list = push(list, param, 31+group*2+i, 20+10*i)
		}
	}

	list = buildRuskWear(list)
	list = buildMielWear(list)
	list = buildGoudaWear(list)

	return list
}

func buildRuskWear(list []data.SellItem) []data.SellItem {
	c := data.Rusk
	list = pushRanges(list, data.Category{Kind: data.KindTops, Char: c},
		[]numRange{{1, 54}, {996, 999}})
	list = pushRanges(list, data.Category{Kind: data.KindBottoms, Char: c},
		[]numRange{{1, 25}, {28, 72}, {996, 999}})
	list = pushRanges(list, data.Category{Kind: data.KindShoes, Char: c},
		[]numRange{{1, 43}, {996, 999}})
	list = pushRanges(list, data.Category{Kind: data.KindHead, Char: c},
		[]numRange{{1, 22}})
	for num := uint32(1); num <= 11; num++ {
		if num != 3 {
			list = push(list, data.Category{Kind: data.KindGlasses, Char: c}, num, 10*num)
		}
	}
	list = pushRanges(list, data.Category{Kind: data.KindGloves, Char: c},
		[]numRange{{1, 9}})
	list = pushRanges(list, data.Category{Kind: data.KindWing, Char: c},
		[]numRange{{1, 7}})
	return list
}

func buildMielWear(list []data.SellItem) []data.SellItem {
	c := data.Miel
	list = pushRanges(list, data.Category{Kind: data.KindTops, Char: c},
		[]numRange{{1, 5}, {7, 62}, {996, 999}})
	list = pushRanges(list, data.Category{Kind: data.KindBottoms, Char: c},
		[]numRange{{2, 11}, {13, 13}, {15, 34}, {36, 45}, {47, 60}, {996, 999}})
	list = pushRanges(list, data.Category{Kind: data.KindShoes, Char: c},
		[]numRange{{1, 47}, {996, 999}})
	list = pushRanges(list, data.Category{Kind: data.KindHead, Char: c},
		[]numRange{{1, 22}})
	for num := uint32(1); num <= 12; num++ {
		if num != 3 {
			list = push(list, data.Category{Kind: data.KindGlasses, Char: c}, num, 10*num)
		}
	}
	list = pushRanges(list, data.Category{Kind: data.KindGloves, Char: c},
		[]numRange{{1, 10}})
	list = pushRanges(list, data.Category{Kind: data.KindWing, Char: c},
		[]numRange{{1, 4}})
	return list
}

func buildGoudaWear(list []data.SellItem) []data.SellItem {
	c := data.Gouda
	list = pushRanges(list, data.Category{Kind: data.KindTops, Char: c},
		[]numRange{{1, 60}})
	list = pushRanges(list, data.Category{Kind: data.KindBottoms, Char: c},
		[]numRange{{1, 69}})
	list = pushRanges(list, data.Category{Kind: data.KindShoes, Char: c},
		[]numRange{{1, 51}})
	list = pushRanges(list, data.Category{Kind: data.KindHead, Char: c},
		[]numRange{{1, 18}})
	for num := uint32(1); num <= 13; num++ {
		switch num {
		case 3, 5, 7, 10, 11:
		default:
			list = push(list, data.Category{Kind: data.KindGlasses, Char: c}, num, 10*num)
		}
	}
	list = pushRanges(list, data.Category{Kind: data.KindGloves, Char: c},
		[]numRange{{1, 11}})
	list = pushRanges(list, data.Category{Kind: data.KindWing, Char: c},
		[]numRange{{1, 6}})
	return list
}

// facePaints is how many face paint options each character has.
var facePaints = []struct {
	char  data.CharID
	count uint32
}{
	{data.Rusk, 15},
	{data.Miel, 18},
	{data.Rose, 19},
	{data.Chocola, 18},
	{data.Shelly, 18},
	{data.Gouda, 20},
	{data.Sect, 16},
}

// BuildSalonList returns the salon catalog: hair, skin, eye and face
// paint options for every character.
func BuildSalonList() []data.SellItem {
	var list []data.SellItem

	for _, fp := range facePaints {
		c := fp.char

		// four hair styles, hair colors and skin colors each
		for num := uint32(1); num <= 4; num++ {
			list = push(list, data.Category{Kind: data.KindHairStyle, Char: c}, num, 15*num)
			list = push(list, data.Category{Kind: data.KindHairColor, Char: c}, num, 5*num)
			list = push(list, data.Category{Kind: data.KindSkinColor, Char: c}, num, 25*num)
		}

		for num := uint32(1); num <= 10; num++ {
			list = push(list, data.Category{Kind: data.KindEyeColor, Char: c}, num, 20*num)
		}

		for num := uint32(1); num <= fp.count; num++ {
			list = push(list, data.Category{Kind: data.KindFacePaint, Char: c}, num, 3*num)
		}
	}

	return list
}

// Find returns the catalog entry selling the given item.
func Find(list []data.SellItem, item data.Item) (data.SellItem, bool) {
	for _, s := range list {
		if s.Item == item {
			return s, true
		}
	}
	return data.SellItem{}, false
}
