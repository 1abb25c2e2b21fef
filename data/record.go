package data

import (
	"bytes"
	"encoding/binary"
)

// CRecord holds one player's records for a single course, season and hole
// count. Keyed per player on course*32 + season*4 + holes.
type CRecord struct {
	MaxScore    int8    `json:"mx_score"`
	LowestScore int8    `json:"lowest_score"`
	TotalScore  int8    `json:"total_score"`
	Array       [18]int8 `json:"array"`
	NumRounds   uint16  `json:"num_rounds"`
	MaxGP       uint16  `json:"max_gp"`
	TotalGP     uint32  `json:"total_gp"`
	MaxExp      uint32  `json:"max_exp"`
	TotalExp    uint32  `json:"total_exp"`
	MaxDrive    uint32  `json:"max_drive"`
	MaxChipin   uint32  `json:"max_chipin"`
	MaxPutt     uint32  `json:"max_putt"`
	Unk         uint32  `json:"unk"`
}

// NewCRecord returns the record state of a course never played.
func NewCRecord() CRecord {
	return CRecord{
		LowestScore: -99,
		TotalScore:  99,
	}
}

// CRecordKey derives the storage key for a course record.
func CRecordKey(course, season, holes uint8) uint32 {
	return uint32(course)*32 + uint32(season)*4 + uint32(holes)
}

// cRecordWire is the fixed 49 byte layout of a CRecord. MaxChipin and
// MaxPutt share one word, split at bit 18.
type cRecordWire struct {
	MaxScore    int8
	LowestScore int8
	TotalScore  int8
	Array       [18]int8
	NumRounds   uint16
	MaxGP       uint16
	TotalGP     uint32
	MaxExp      uint32
	TotalExp    uint32
	MaxDrive    uint32
	ChipinPutt  uint32
	Unk         uint32
}

// MarshalBinary encodes the record into its wire form.
func (c CRecord) MarshalBinary() ([]byte, error) {
	w := cRecordWire{
		MaxScore:    c.MaxScore,
		LowestScore: c.LowestScore,
		TotalScore:  c.TotalScore,
		Array:       c.Array,
		NumRounds:   c.NumRounds,
		MaxGP:       c.MaxGP,
		TotalGP:     c.TotalGP,
		MaxExp:      c.MaxExp,
		TotalExp:    c.TotalExp,
		MaxDrive:    c.MaxDrive,
		ChipinPutt:  c.MaxChipin&0x3FFFF | c.MaxPutt<<18,
		Unk:         c.Unk & 0xFFFF,
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the record from its wire form.
func (c *CRecord) UnmarshalBinary(b []byte) error {
	var w cRecordWire
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &w); err != nil {
		return err
	}
	*c = CRecord{
		MaxScore:    w.MaxScore,
		LowestScore: w.LowestScore,
		TotalScore:  w.TotalScore,
		Array:       w.Array,
		NumRounds:   w.NumRounds,
		MaxGP:       w.MaxGP,
		TotalGP:     w.TotalGP,
		MaxExp:      w.MaxExp & 0xFF,
		TotalExp:    w.TotalExp,
		MaxDrive:    w.MaxDrive & 0x3FFFF,
		MaxChipin:   w.ChipinPutt & 0x3FFFF,
		MaxPutt:     w.ChipinPutt >> 18,
		Unk:         w.Unk & 0xFFFF,
	}
	return nil
}

// URecord holds a player's lifetime statistics. Every field is fixed width
// so the struct doubles as its own wire layout.
type URecord struct {
	NumRounds          int16    `json:"num_rounds"`
	TotalStrokes       int32    `json:"total_strokes"`
	TotalCupIns        int32    `json:"total_cup_ins"`
	MaxDrive           int32    `json:"max_drive"`
	MaxPutt            int16    `json:"max_putt"`
	MaxChipIn          int32    `json:"max_chip_in"`
	TotalPutts         int32    `json:"total_putts"`
	NumNiceShots       int32    `json:"num_nice_shots"`
	NumChipIn          int16    `json:"num_chip_in"`
	NumFairwayKeep     int32    `json:"num_fairway_keep"`
	NumOB              int16    `json:"num_ob"`
	NumWaterHazard     int16    `json:"num_water_hazard"`
	Num4OrMore         uint32   `json:"num_4_or_more"`
	NumTripleBogies    int16    `json:"num_triple_bogies"`
	NumDoubleBogies    int16    `json:"num_double_bogies"`
	NumBogies          int16    `json:"num_bogies"`
	NumPars            int32    `json:"num_pars"`
	NumBirdies         int32    `json:"num_birdies"`
	NumEagles          int16    `json:"num_eagles"`
	NumAlbatross       int16    `json:"num_albatross"`
	NumHoleInOnes      int16    `json:"num_hoi"`
	TotalDistance      int32    `json:"total_distance"`
	TotalPlaytime      int32    `json:"total_playtime"`
	TotalHoles         int32    `json:"total_holes"`
	HighestScore       int8     `json:"highest_score"`
	LowestScore        int8     `json:"lowest_score"`
	TotalScore         int16    `json:"total_score"`
	NumRetirements     int16    `json:"num_retirements"`
	NumDirectChipIns   int16    `json:"num_direct_chip_ins"`
	NumRough           int32    `json:"num_rough"`
	NumBunker          int32    `json:"num_bunker"`
	NumObstacleHits    int32    `json:"num_obstacle_hits"`
	NumPinshots        int16    `json:"num_pinshots"`
	NumFlagshots       int16    `json:"num_flagshots"`
	TotalVS            int32    `json:"total_vs_participation"`
	TotalTournament    int32    `json:"total_tournament_participation"`
	TotalQuick         int32    `json:"total_quick_participation"`
	NumConsumablesUsed int32    `json:"num_consumable_item_usage"`
	X74                int32    `json:"x_74"`
	X78                int32    `json:"x_78"`
	NumLogins          int16    `json:"num_logins"`
	X7E                int32    `json:"x_7e"`
	Num1st             int16    `json:"num_1st"`
	Num2nd             int16    `json:"num_2nd"`
	Num3rd             int16    `json:"num_3rd"`
	Num1stCafe         int16    `json:"num_1st_cafe"`
	Num2ndCafe         int16    `json:"num_2nd_cafe"`
	Num3rdCafe         int16    `json:"num_3rd_cafe"`
	TotalRoundGP       int32    `json:"total_round_gp"`
	X92                [14]byte `json:"x_92"`
}

// GCRecord is a per-course record table shared across all players.
type GCRecord struct {
	Course        int8
	Season        int8
	Unk           int8
	MaxScore      int32
	MaxScoreUID   UID
	MaxScoreTitle int16
	MaxGP         int32
	MaxGPUID      UID
	MaxGPTitle    int16
}

// GHRecord is a per-hole record table shared across all players.
type GHRecord struct {
	Score       int8
	ScoreUID    UID
	ScoreTitle  int16
	GP          int32
	GPUID       UID
	GPTitle     int16
	HIOUID      UID
	HIOTitle    int16
	Drive       int16
	DriveUID    UID
	DriveTitle  int16
	Chipin      int16
	ChipinUID   UID
	ChipinTitle int16
	Putt        int16
	PuttUID     UID
	PuttTitle   int16
}
