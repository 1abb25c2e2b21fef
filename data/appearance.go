package data

// Appearance is a character's visual configuration. On the wire it spans
// nine 32-bit words with several 10-bit sub-fields per word; optional parts
// use the OptPart sentinel convention.
type Appearance struct {
	Char CharID

	Head    OptPart
	Face    OptPart
	Glasses OptPart
	Tops    OptPart
	Bottoms OptPart
	Shoes   OptPart
	Gloves  OptPart
	Wing    OptPart
	Club    OptPart
	Skirt   OptPart

	HairStyle uint16
	HairColor uint16
	EyeColor  uint16
	SkinColor uint16
	FacePaint uint16

	DefaultTops      OptPart
	DefaultBottoms   OptPart
	DefaultShoes     OptPart
	DefaultHairColor uint16
	DefaultEyeColor  uint16
	DefaultSkinColor uint16
}

// AppearanceWords is the wire size of an appearance record in 32-bit words.
const AppearanceWords = 9

// word 0
var (
	appChar      = field{2, 6}
	appFacePaint = field{8, 10}
	appHead      = field{18, 10}
)

// words 1-3, three 10-bit optionals each
var (
	appSlotA = field{0, 10}
	appSlotB = field{10, 10}
	appSlotC = field{20, 10}
)

// word 5
var (
	appHairStyle = field{10, 10}
	appHairColor = field{20, 10}
)

// words 6-8
var (
	appEyeColor    = field{0, 8}
	appSkinColor   = field{8, 8}
	appDefaultTops = field{16, 10}
	appDefHairCol  = field{20, 10}
)

// UnpackAppearance decodes the nine wire words. A character sub-field that
// does not name a known character aborts the decode with a parse error.
func UnpackAppearance(w [AppearanceWords]uint32) (Appearance, error) {
	char, ok := CharFromIndex(appChar.get(w[0]))
	if !ok {
		return Appearance{}, &ParseError{Field: "appearance character", Value: appChar.get(w[0])}
	}

	return Appearance{
		Char:      char,
		FacePaint: uint16(appFacePaint.get(w[0])),
		Head:      unpackOpt(appHead.get(w[0])),

		Glasses: unpackOpt(appSlotA.get(w[1])),
		Tops:    unpackOpt(appSlotB.get(w[1])),
		Bottoms: unpackOpt(appSlotC.get(w[1])),

		Shoes:  unpackOpt(appSlotA.get(w[2])),
		Gloves: unpackOpt(appSlotB.get(w[2])),
		Wing:   unpackOpt(appSlotC.get(w[2])),

		Club:  unpackOpt(appSlotA.get(w[3])),
		Face:  unpackOpt(appSlotB.get(w[3])),
		Skirt: unpackOpt(appSlotC.get(w[3])),

		// word 4 unused

		HairStyle: uint16(appHairStyle.get(w[5])),
		HairColor: uint16(appHairColor.get(w[5])),

		EyeColor:    uint16(appEyeColor.get(w[6])),
		SkinColor:   uint16(appSkinColor.get(w[6])),
		DefaultTops: unpackOpt(appDefaultTops.get(w[6])),

		DefaultBottoms:   unpackOpt(appSlotA.get(w[7])),
		DefaultShoes:     unpackOpt(appSlotB.get(w[7])),
		DefaultHairColor: uint16(appDefHairCol.get(w[7])),

		DefaultEyeColor:  uint16(appEyeColor.get(w[8])),
		DefaultSkinColor: uint16(appSkinColor.get(w[8])),
	}, nil
}

// Pack encodes the appearance into its nine wire words. An optional part
// beyond the representable range is a range error.
func (a Appearance) Pack() ([AppearanceWords]uint32, error) {
	var w [AppearanceWords]uint32

	opt := func(name string, p OptPart) uint32 {
		v, err := packOpt(name, p)
		if err != nil {
			panic(err)
		}
		return v
	}

	// validate all optionals up front so Pack returns errors, not panics
	for _, p := range []struct {
		name string
		val  OptPart
	}{
		{"head", a.Head}, {"face", a.Face}, {"glasses", a.Glasses},
		{"tops", a.Tops}, {"bottoms", a.Bottoms}, {"shoes", a.Shoes},
		{"gloves", a.Gloves}, {"wing", a.Wing}, {"club", a.Club},
		{"skirt", a.Skirt}, {"default tops", a.DefaultTops},
		{"default bottoms", a.DefaultBottoms}, {"default shoes", a.DefaultShoes},
	} {
		if _, err := packOpt(p.name, p.val); err != nil {
			return w, err
		}
	}

	w[0] = appChar.put(a.Char.Index()) |
		appFacePaint.put(uint32(a.FacePaint)) |
		appHead.put(opt("head", a.Head))

	w[1] = appSlotA.put(opt("glasses", a.Glasses)) |
		appSlotB.put(opt("tops", a.Tops)) |
		appSlotC.put(opt("bottoms", a.Bottoms))

	w[2] = appSlotA.put(opt("shoes", a.Shoes)) |
		appSlotB.put(opt("gloves", a.Gloves)) |
		appSlotC.put(opt("wing", a.Wing))

	w[3] = appSlotA.put(opt("club", a.Club)) |
		appSlotB.put(opt("face", a.Face)) |
		appSlotC.put(opt("skirt", a.Skirt))

	// w[4] stays zero

	w[5] = appHairStyle.put(uint32(a.HairStyle)) |
		appHairColor.put(uint32(a.HairColor))

	w[6] = appEyeColor.put(uint32(a.EyeColor)) |
		appSkinColor.put(uint32(a.SkinColor)) |
		appDefaultTops.put(opt("default tops", a.DefaultTops))

	w[7] = appSlotA.put(opt("default bottoms", a.DefaultBottoms)) |
		appSlotB.put(opt("default shoes", a.DefaultShoes)) |
		appDefHairCol.put(uint32(a.DefaultHairColor))

	w[8] = appEyeColor.put(uint32(a.DefaultEyeColor)) |
		appSkinColor.put(uint32(a.DefaultSkinColor))

	return w, nil
}
