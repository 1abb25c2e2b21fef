package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"splashsrv/data"
)

func TestSellListContents(t *testing.T) {
	list := BuildSellList()
	assert.NotEmpty(t, list)

	// every entry is GP priced with a positive price
	for _, s := range list {
		assert.Equal(t, data.CurrencyGP, s.Currency)
		assert.NotZero(t, s.Price)
		assert.NotEqual(t, data.KindInvalid, s.Item.Category().Kind)
	}

	// club sets run 1..55 at five gold per index
	club, ok := Find(list, data.MustItem(data.Category{Kind: data.KindClubSet}, 55))
	assert.True(t, ok)
	assert.Equal(t, uint32(275), club.Price)

	// excluded glasses stay out of the catalog
	_, ok = Find(list, data.MustItem(data.Category{Kind: data.KindGlasses, Char: data.Rusk}, 3))
	assert.False(t, ok)
}

func TestSellListNoDuplicates(t *testing.T) {
	seen := make(map[data.Item]bool)
	for _, s := range BuildSellList() {
		if seen[s.Item] {
			t.Fatalf("duplicate catalog entry %v", s.Item)
		}
		seen[s.Item] = true
	}
}

func TestSalonListContents(t *testing.T) {
	list := BuildSalonList()

	// 4 styles + 4 hair colors + 4 skins + 10 eyes per character, plus
	// the per-character face paint counts
	want := 0
	for _, fp := range facePaints {
		want += 12 + 10 + int(fp.count)
	}
	assert.Len(t, list, want)

	paint, ok := Find(list, data.MustItem(data.Category{Kind: data.KindFacePaint, Char: data.Gouda}, 20))
	assert.True(t, ok)
	assert.Equal(t, uint32(60), paint.Price)

	// Sect has only 16 paints
	_, ok = Find(list, data.MustItem(data.Category{Kind: data.KindFacePaint, Char: data.Sect}, 17))
	assert.False(t, ok)
}
