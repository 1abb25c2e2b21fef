package data

// Character is the persistent state of one owned character. Stored as a JSON
// blob by the storage backend; the wire forms are built by the packet layer.
type Character struct {
	// ClassCap names which entry in Settings the character currently uses.
	ClassCap Class `json:"class_cap"`
	// Exp is the experience accumulated per parameter.
	Exp ParamTuple `json:"exp"`
	// Settings holds the point allocation chosen for each class.
	Settings [8]ParamTuple `json:"settings"`

	Appearance Appearance `json:"appearance"`
	Club       Item       `json:"club"`
	Ball       Item       `json:"ball"`
	Caddie     Item       `json:"caddie"`
}

// NewCharacter builds the initial state for a freshly created character.
func NewCharacter(appearance Appearance) Character {
	return Character{
		ClassCap:   ClassG,
		Appearance: appearance,
		Club:       MustItem(Category{Kind: KindClubSet}, 2),
		Ball:       MustItem(Category{Kind: KindBall}, 1),
	}
}
