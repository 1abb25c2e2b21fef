package data

// Outcome is how a game or hole ended for one player.
type Outcome uint8

const (
	OutcomeInvalid Outcome = iota
	OutcomeAborted
	OutcomeLose
	OutcomeDraw
	OutcomeWin
	OutcomeUnearnedWin
	OutcomeConv
)

// OutcomeFromWire maps any wire value onto a known outcome. Values outside
// the defined range decode as Invalid.
func OutcomeFromWire(v uint32) Outcome {
	if v >= 1 && v <= 6 {
		return Outcome(v)
	}
	return OutcomeInvalid
}

// GameReport is the end-of-round statistics a client submits. The counters
// pack into twelve 32-bit words followed by the scores and the per-hole
// reports.
type GameReport struct {
	Outcome            Outcome
	NumStrokes         uint32
	NumCupIns          uint32
	MaxDistance        uint32
	LongestPutt        uint32
	MaxTipInDistance   uint32
	NumPutts           uint32
	NumNiceShots       uint32
	NumTipIns          uint32
	NumFairwayKeep     uint32
	NumOB              uint32
	NumWaterHazard     uint32
	Num4OrMore         uint32
	NumTripleBogeys    uint32
	NumDoubleBogeys    uint32
	NumBogeys          uint32
	NumPars            uint32
	NumBirdies         uint32
	NumEagles          uint32
	NumAlbatross       uint32
	NumHoleInOnes      uint32
	TotalDistance      uint32
	PlayTime           uint32
	ObtainedGPRound    uint32
	ObtainedGPAll      uint32
	AcquiredExperience uint32
	NumDirectTipIns    uint32
	NumRough           uint32
	NumBunkers         uint32
	NumObstacleHits    uint32
	NumPinshots        uint32
	NumFlagWraps       uint32
	NumConsumablesUsed uint32
	LongestTeeShot     uint32
	TotalPuttAtCupIn   uint32
	NumSpinSuccesses   uint32
	NumFadeDrawUsage   uint32
	NumClubsUsed       uint32
	NumCaddyCoop       uint32
	NumSpecialShots    uint32
	VSRank             uint32
	HalfwayScore       int8
	Score              int8
	Holes              [18]HoleReport
}

// GameReportWords is the number of packed counter words before the scores.
const GameReportWords = 12

// PackWords encodes the counters into their packed words. Fields wider
// than their slot are truncated the way the client truncates them.
func (g GameReport) PackWords() [GameReportWords]uint32 {
	var w [GameReportWords]uint32
	w[0] = uint32(g.Outcome) | g.NumStrokes&0xFF<<3 | g.NumCupIns&0x1F<<11
	w[1] = g.MaxDistance&0x3FFFF | g.LongestPutt<<18
	w[2] = g.MaxTipInDistance&0x3FFFF | g.NumPutts&0x7F<<18 | g.NumNiceShots<<25
	w[3] = g.NumTipIns&0x1F | g.NumFairwayKeep&0xFF<<5 | g.NumOB&0x3F<<13 |
		g.NumWaterHazard&0x3F<<19 | g.Num4OrMore&0x1F<<25
	w[4] = g.NumTripleBogeys&0x1F | g.NumDoubleBogeys&0x1F<<5 | g.NumBogeys&0x1F<<10 |
		g.NumPars&0x1F<<15 | g.NumBirdies&0x1F<<20 | g.NumEagles&0xF<<25 | g.NumAlbatross<<29
	w[5] = g.NumHoleInOnes&7 | g.TotalDistance&0x3FFFF<<3
	w[6] = g.PlayTime&0x3FFF | g.ObtainedGPRound&0x7FFF<<14
	w[7] = g.ObtainedGPAll&0x7FFF | g.AcquiredExperience&0xFF<<15 | g.NumDirectTipIns&0x1F<<23
	w[8] = g.NumRough&0xFF | g.NumBunkers&0x7F<<8 | g.NumObstacleHits&0x7F<<15 |
		g.NumPinshots&0x7F<<22 | g.NumFlagWraps<<27
	w[9] = g.NumConsumablesUsed&0xFF | g.LongestTeeShot&0x3FFFF<<8
	w[10] = g.TotalPuttAtCupIn&0xFFFF | g.NumSpinSuccesses&0x7F<<16 | g.NumFadeDrawUsage&0x7F<<23
	w[11] = g.NumClubsUsed&0xF | g.NumCaddyCoop&0x7F<<4 | g.NumSpecialShots&0x1F<<11 | g.VSRank&7<<16
	return w
}

// UnpackWords decodes the packed counter words in place, leaving the
// scores and hole reports untouched.
func (g *GameReport) UnpackWords(w [GameReportWords]uint32) {
	g.Outcome = OutcomeFromWire(w[0] & 7)
	g.NumStrokes = w[0] >> 3 & 0xFF
	g.NumCupIns = w[0] >> 11 & 0x1F
	g.MaxDistance = w[1] & 0x3FFFF
	g.LongestPutt = w[1] >> 18
	g.MaxTipInDistance = w[2] & 0x3FFFF
	g.NumPutts = w[2] >> 18 & 0x7F
	g.NumNiceShots = w[2] >> 25
	g.NumTipIns = w[3] & 0x1F
	g.NumFairwayKeep = w[3] >> 5 & 0xFF
	g.NumOB = w[3] >> 13 & 0x3F
	g.NumWaterHazard = w[3] >> 19 & 0x3F
	g.Num4OrMore = w[3] >> 25 & 0x1F
	g.NumTripleBogeys = w[4] & 0x1F
	g.NumDoubleBogeys = w[4] >> 5 & 0x1F
	g.NumBogeys = w[4] >> 10 & 0x1F
	g.NumPars = w[4] >> 15 & 0x1F
	g.NumBirdies = w[4] >> 20 & 0x1F
	g.NumEagles = w[4] >> 25 & 0xF
	g.NumAlbatross = w[4] >> 29
	g.NumHoleInOnes = w[5] & 7
	g.TotalDistance = w[5] >> 3 & 0x3FFFF
	g.PlayTime = w[6] & 0x3FFF
	g.ObtainedGPRound = w[6] >> 14 & 0x7FFF
	g.ObtainedGPAll = w[7] & 0x7FFF
	g.AcquiredExperience = w[7] >> 15 & 0xFF
	g.NumDirectTipIns = w[7] >> 23 & 0x1F
	g.NumRough = w[8] & 0xFF
	g.NumBunkers = w[8] >> 8 & 0x7F
	g.NumObstacleHits = w[8] >> 15 & 0x7F
	g.NumPinshots = w[8] >> 22 & 0x7F
	g.NumFlagWraps = w[8] >> 27
	g.NumConsumablesUsed = w[9] & 0xFF
	g.LongestTeeShot = w[9] >> 8 & 0x3FFFF
	g.TotalPuttAtCupIn = w[10] & 0xFFFF
	g.NumSpinSuccesses = w[10] >> 16 & 0x7F
	g.NumFadeDrawUsage = w[10] >> 23 & 0x7F
	g.NumClubsUsed = w[11] & 0xF
	g.NumCaddyCoop = w[11] >> 4 & 0x7F
	g.NumSpecialShots = w[11] >> 11 & 0x1F
	g.VSRank = w[11] >> 16 & 7
}

// HoleReport is the result of one hole, packed as a score byte and three
// 32-bit words.
type HoleReport struct {
	Score       int8
	GP          uint32
	IsHoleInOne bool
	MaxFlight   uint32
	LongestChip uint32
	LongestPutt uint32
	Outcome     Outcome
	VSPoint     uint32
}

// HoleReportWords is the number of packed words after the score byte.
const HoleReportWords = 3

// PackWords encodes the hole counters into their packed words.
func (h HoleReport) PackWords() [HoleReportWords]uint32 {
	var w [HoleReportWords]uint32
	w[0] = h.GP & 0xFFF
	if h.IsHoleInOne {
		w[0] |= 0x1000
	}
	w[0] |= h.MaxFlight & 0x3FFFF << 13
	w[1] = h.LongestChip&0x3FFFF | h.LongestPutt<<18
	w[2] = uint32(h.Outcome) | h.VSPoint&7<<3
	return w
}

// UnpackWords decodes the packed words, leaving the score untouched.
func (h *HoleReport) UnpackWords(w [HoleReportWords]uint32) {
	h.GP = w[0] & 0xFFF
	h.IsHoleInOne = w[0]&0x1000 != 0
	h.MaxFlight = w[0] >> 13 & 0x3FFFF
	h.LongestChip = w[1] & 0x3FFFF
	h.LongestPutt = w[1] >> 18
	h.Outcome = OutcomeFromWire(w[2] & 7)
	h.VSPoint = w[2] >> 3 & 7
}
