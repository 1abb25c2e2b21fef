package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSellItem_RoundTrip(t *testing.T) {
	in := SellItem{
		Item:      MustItem(Category{Kind: KindBall}, 7),
		Currency:  CurrencySC,
		Marketing: MarketingSale,
		Price:     120,
		SPPrice:   40,
	}

	w, err := in.Pack()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, in, UnpackSellItem(w))
}

func TestSellItem_PriceRange(t *testing.T) {
	s := SellItem{
		Item:  MustItem(Category{Kind: KindBall}, 1),
		Price: 1 << 20,
	}
	_, err := s.Pack()
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestSellCaddy_RoundTrip(t *testing.T) {
	in := SellCaddy{
		Item:           MustItem(Category{Kind: KindCaddy}, 3),
		Currency:       CurrencyGP,
		Marketing:      MarketingHot,
		Price3Hours:    10,
		Price3Days:     100,
		Price30Days:    500,
		InfiniteRental: -1,
	}
	assert.Equal(t, in, UnpackSellCaddy(in.Pack()))
}

func TestCurrencyFlags(t *testing.T) {
	for _, c := range []Currency{CurrencyGP, CurrencySC, CurrencyTicketsOnly} {
		assert.Equal(t, c, currencyFromFlags(c.flags()))
	}
}
