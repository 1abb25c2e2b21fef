package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAppearance() Appearance {
	return Appearance{
		Char:      Miel,
		Head:      NoPart,
		Face:      2,
		Glasses:   NoPart,
		Tops:      17,
		Bottoms:   4,
		Shoes:     1,
		Gloves:    NoPart,
		Wing:      NoPart,
		Club:      0,
		Skirt:     NoPart,
		HairStyle: 3,
		HairColor: 2,
		EyeColor:  9,
		SkinColor: 1,
		FacePaint: 0,

		DefaultTops:      1,
		DefaultBottoms:   1,
		DefaultShoes:     1,
		DefaultHairColor: 2,
		DefaultEyeColor:  9,
		DefaultSkinColor: 1,
	}
}

func TestAppearance_RoundTrip(t *testing.T) {
	in := testAppearance()

	words, err := in.Pack()
	if err != nil {
		t.Fatal(err)
	}
	out, err := UnpackAppearance(words)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, in, out)
}

func TestAppearance_BadCharacter(t *testing.T) {
	words, err := testAppearance().Pack()
	if err != nil {
		t.Fatal(err)
	}
	words[0] &^= 0xFF // clears the character sub-field

	_, err = UnpackAppearance(words)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestAppearance_PartRange(t *testing.T) {
	a := testAppearance()
	a.Tops = 0x3FE
	if _, err := a.Pack(); err != nil {
		t.Fatal(err)
	}

	a.Tops = 0x3FF
	_, err := a.Pack()
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestOptPart_Sentinel(t *testing.T) {
	assert.Equal(t, NoPart, unpackOpt(0))
	assert.Equal(t, OptPart(0), unpackOpt(1))
	assert.Equal(t, OptPart(0x3FE), unpackOpt(0x3FF))

	v, err := packOpt("part", NoPart)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint32(0), v)

	v, err = packOpt("part", 0x3FE)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint32(0x3FF), v)
}
