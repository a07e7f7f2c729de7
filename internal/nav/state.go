package nav

// Screen identifies the active surface.
type Screen int

const (
	ScreenSetList Screen = iota
	ScreenSetDetail
	ScreenAddSet
	ScreenAddCard
)

func (s Screen) String() string {
	switch s {
	case ScreenSetList:
		return "SetList"
	case ScreenSetDetail:
		return "SetDetail"
	case ScreenAddSet:
		return "AddSetForm"
	case ScreenAddCard:
		return "AddCardForm"
	default:
		return "Unknown"
	}
}

// IsForm reports whether the screen is a form presented over another one.
func (s Screen) IsForm() bool {
	return s == ScreenAddSet || s == ScreenAddCard
}

// State is a snapshot of the machine. SetID, CardIndex and Flipped describe
// the set detail surface and are kept while the add-card form is open over
// it. The input fields only hold data while their form is open.
type State struct {
	Screen    Screen
	SetID     string
	CardIndex int
	Flipped   bool

	NameInput       string
	TermInput       string
	DefinitionInput string
}

// Face names the side of a card that is shown.
type Face int

const (
	FaceTerm Face = iota
	FaceDefinition
)

func (f Face) String() string {
	if f == FaceDefinition {
		return "definition"
	}
	return "term"
}
