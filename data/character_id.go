package data

// CharID identifies one of the seven playable characters. The zero value is
// not a valid character; wire indices run 1 through 7.
type CharID uint8

const (
	Rusk    CharID = 1
	Miel    CharID = 2
	Rose    CharID = 3
	Chocola CharID = 4
	Shelly  CharID = 5
	Gouda   CharID = 6
	Sect    CharID = 7
)

// CharFromIndex maps a wire index to a character.
func CharFromIndex(index uint32) (CharID, bool) {
	if index >= 1 && index <= 7 {
		return CharID(index), true
	}
	return 0, false
}

func (c CharID) Index() uint32 {
	return uint32(c)
}

func (c CharID) String() string {
	switch c {
	case Rusk:
		return "Rusk"
	case Miel:
		return "Miel"
	case Rose:
		return "Rose"
	case Chocola:
		return "Chocola"
	case Shelly:
		return "Shelly"
	case Gouda:
		return "Gouda"
	case Sect:
		return "Sect"
	}
	return "?"
}
