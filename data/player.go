package data

// Class is the coarse skill class letter.
type Class int8

const (
	ClassG Class = iota
	ClassF
	ClassE
	ClassD
	ClassC
	ClassB
	ClassA
	ClassS
)

// Rank is the fine-grained skill rank, four steps per class.
type Rank int8

const (
	RankG4 Rank = iota
	RankG3
	RankG2
	RankG1
	RankF4
	RankF3
	RankF2
	RankF1
	RankE4
	RankE3
	RankE2
	RankE1
	RankD4
	RankD3
	RankD2
	RankD1
	RankC4
	RankC3
	RankC2
	RankC1
	RankB4
	RankB3
	RankB2
	RankB1
	RankA4
	RankA3
	RankA2
	RankA1
	RankS4
	RankS3
	RankS2
	RankS1
)

// Class collapses a rank to its class letter.
func (r Rank) Class() Class {
	return Class(r / 4)
}

// Element is the color element assigned to a player in the daily cycle.
type Element int8

const (
	ElementNone   Element = -1
	ElementBlue   Element = 0
	ElementRed    Element = 1
	ElementGreen  Element = 2
	ElementYellow Element = 3
	ElementPink   Element = 4
)

// ParamTuple is one allocation of the four shot parameters.
type ParamTuple struct {
	Power   int16
	Control int16
	Impact  int16
	Spin    int16
}
