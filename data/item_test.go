package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_RoundTrip(t *testing.T) {
	cases := []struct {
		cat Category
		num uint32
	}{
		{Category{Kind: KindClubSet}, 1},
		{Category{Kind: KindBall}, 15},
		{Category{Kind: KindCarryItemCaddy}, 10},
		{Category{Kind: KindHoldItemTicket}, 41},
		{Category{Kind: KindCaddy}, 3},
		{Category{Kind: KindTops, Char: Rusk}, 999},
		{Category{Kind: KindHairColor, Char: Sect}, 4},
		{Category{Kind: KindFacePaint, Char: Miel}, 18},
	}

	for _, c := range cases {
		item, err := NewItem(c.cat, c.num)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, c.cat, item.Category(), "%v", item)
		assert.Equal(t, c.num, item.Num(), "%v", item)
	}
}

func TestItem_ZeroIsInvalid(t *testing.T) {
	assert.Equal(t, Category{Kind: KindInvalid}, Item(0).Category())
}

func TestItem_NumOutOfRange(t *testing.T) {
	_, err := NewItem(Category{Kind: KindBall}, MaxItemNum+1)
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestItem_CharScopedNeedsChar(t *testing.T) {
	// code 3 with invalid character bits selects the global Ball kind,
	// with valid character bits it selects Tops
	ball := MustItem(Category{Kind: KindBall}, 1)
	tops := MustItem(Category{Kind: KindTops, Char: Rose}, 1)
	assert.Equal(t, KindBall, ball.Category().Kind)
	assert.Equal(t, KindTops, tops.Category().Kind)
	assert.NotEqual(t, uint32(ball), uint32(tops))
}

func TestCountedItem(t *testing.T) {
	item := MustItem(Category{Kind: KindHoldItemPoint}, 6)

	ci, err := NewCountedItem(item, 50)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, item, ci.Item())
	assert.Equal(t, uint32(50), ci.Count())

	ci, err = ci.WithCount(MaxItemCount)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint32(MaxItemCount), ci.Count())

	_, err = ci.WithCount(MaxItemCount + 1)
	assert.Error(t, err)
}

func TestCategory_MaxStack(t *testing.T) {
	assert.Equal(t, uint32(50), Category{Kind: KindCarryItemParameter}.MaxStack())
	assert.Equal(t, uint32(50), Category{Kind: KindHoldItemTicket}.MaxStack())
	assert.Equal(t, uint32(5), Category{Kind: KindClubSet}.MaxStack())
	assert.Equal(t, uint32(5), Category{Kind: KindTops, Char: Gouda}.MaxStack())
}

func TestUser_Inventory(t *testing.T) {
	u := NewUser()
	item := MustItem(Category{Kind: KindCarryItemEnvironment}, 2)

	assert.Equal(t, uint32(0), u.ItemAmount(item))

	if err := u.AddItem(item.One()); err != nil {
		t.Fatal(err)
	}
	if err := u.AddItem(MustCountedItem(item, 3)); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint32(4), u.ItemAmount(item))
	assert.Len(t, u.Inventory, 1)
}

func TestUser_Balance(t *testing.T) {
	u := NewUser()

	assert.True(t, u.CheckBalance(CurrencyGP, 5000))
	assert.False(t, u.CheckBalance(CurrencyGP, 5001))
	assert.False(t, u.CheckBalance(CurrencyTicketsOnly, 0))

	u.AdjustBalance(CurrencySC, -30)
	assert.Equal(t, int32(70), u.SC)
}
