package term

import "strconv"

// String renders a SortKind as its mathematical glyph rather than its Go
// identifier, since "*" and "□" are what Dump and error messages should
// show a reader, not "TypeSort" and "KindSort".
func (i SortKind) String() string {
	switch i {
	case TypeSort:
		return "*"
	case KindSort:
		return "□"
	default:
		return "SortKind(" + strconv.Itoa(int(i)) + ")"
	}
}
