package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRecord_RoundTrip(t *testing.T) {
	in := CRecord{
		MaxScore:    -12,
		LowestScore: -14,
		TotalScore:  7,
		NumRounds:   41,
		MaxGP:       900,
		TotalGP:     30000,
		MaxExp:      0xFF,
		TotalExp:    123456,
		MaxDrive:    0x3FFFF,
		MaxChipin:   2101,
		MaxPutt:     950,
		Unk:         0xFFFF,
	}
	in.Array[0] = -2
	in.Array[17] = 3

	b, err := in.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, b, 49)

	var out CRecord
	if err := out.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, in, out)
}

func TestCRecord_Defaults(t *testing.T) {
	r := NewCRecord()
	assert.Equal(t, int8(0), r.MaxScore)
	assert.Equal(t, int8(-99), r.LowestScore)
	assert.Equal(t, int8(99), r.TotalScore)
}

func TestCRecordKey(t *testing.T) {
	assert.Equal(t, uint32(0), CRecordKey(0, 0, 0))
	assert.Equal(t, uint32(32*3+4*2+1), CRecordKey(3, 2, 1))
}

func TestCRecord_TruncatesShortBuffer(t *testing.T) {
	var r CRecord
	assert.Error(t, r.UnmarshalBinary(make([]byte, 10)))
}

func TestGameReport_WordsRoundTrip(t *testing.T) {
	in := GameReport{
		Outcome:            OutcomeWin,
		NumStrokes:         72,
		NumCupIns:          18,
		MaxDistance:        28000,
		LongestPutt:        1200,
		MaxTipInDistance:   4500,
		NumPutts:           30,
		NumNiceShots:       12,
		NumTipIns:          2,
		NumFairwayKeep:     40,
		NumOB:              1,
		NumWaterHazard:     2,
		Num4OrMore:         3,
		NumTripleBogeys:    1,
		NumDoubleBogeys:    2,
		NumBogeys:          4,
		NumPars:            8,
		NumBirdies:         3,
		NumEagles:          1,
		NumAlbatross:       0,
		NumHoleInOnes:      1,
		TotalDistance:      120000,
		PlayTime:           3600,
		ObtainedGPRound:    800,
		ObtainedGPAll:      900,
		AcquiredExperience: 55,
		NumDirectTipIns:    1,
		NumRough:           9,
		NumBunkers:         3,
		NumObstacleHits:    2,
		NumPinshots:        1,
		NumFlagWraps:       1,
		NumConsumablesUsed: 2,
		LongestTeeShot:     26000,
		TotalPuttAtCupIn:   5000,
		NumSpinSuccesses:   6,
		NumFadeDrawUsage:   4,
		NumClubsUsed:       9,
		NumCaddyCoop:       3,
		NumSpecialShots:    1,
		VSRank:             2,
	}

	var out GameReport
	out.UnpackWords(in.PackWords())

	// the packed words do not carry the scores or the hole table
	in.HalfwayScore, in.Score, in.Holes = 0, 0, [18]HoleReport{}
	assert.Equal(t, in, out)
}

func TestHoleReport_WordsRoundTrip(t *testing.T) {
	in := HoleReport{
		GP:          600,
		IsHoleInOne: true,
		MaxFlight:   26550,
		LongestChip: 1200,
		LongestPutt: 430,
		Outcome:     OutcomeDraw,
		VSPoint:     3,
	}

	var out HoleReport
	out.UnpackWords(in.PackWords())
	assert.Equal(t, in, out)
}

func TestOutcomeFromWire(t *testing.T) {
	assert.Equal(t, OutcomeConv, OutcomeFromWire(6))
	assert.Equal(t, OutcomeInvalid, OutcomeFromWire(7))
	assert.Equal(t, OutcomeInvalid, OutcomeFromWire(0))
}
