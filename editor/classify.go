package editor

// Category is the display class assigned to a character.
type Category int

const (
	CategoryNormal Category = iota
	CategoryComment
	CategorySeparator
	CategoryLeading
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "normal"
	case CategoryComment:
		return "comment"
	case CategorySeparator:
		return "separator"
	case CategoryLeading:
		return "leading"
	case CategoryStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Classify assigns a category to every rune of text, a line without its
// terminator.
//
// A line starting with '#' is a comment as a whole. Otherwise the first rune
// is the leading character, whatever it is, and later runes equal to sep are
// separators.
func Classify(text string, sep rune) []Category {
	runes := []rune(text)
	cats := make([]Category, len(runes))
	if len(runes) == 0 {
		return cats
	}

	if runes[0] == '#' {
		for i := range cats {
			cats[i] = CategoryComment
		}
		return cats
	}

	cats[0] = CategoryLeading
	for i := 1; i < len(runes); i++ {
		if runes[i] == sep {
			cats[i] = CategorySeparator
		}
	}
	return cats
}
