package adash

// Position selects the alignment class applied to text blocks and chart
// titles. The zero value is Center.
type Position int

const (
	Center Position = iota
	Left
	Right
	Justify
	Start
	End
)

// textAlignClass resolves the alignment class for text block elements.
// Unrecognized values fall back to center.
func (p Position) textAlignClass() string {
	switch p {
	case Left:
		return "text-left"
	case Right:
		return "text-right"
	case Justify:
		return "text-justify"
	case Start:
		return "text-start"
	case End:
		return "text-end"
	}
	return "text-center"
}

// titleAlignClass resolves the alignment class for chart titles, which
// recognize only left and right.
func (p Position) titleAlignClass() string {
	switch p {
	case Left:
		return "text-left"
	case Right:
		return "text-right"
	}
	return "text-center"
}
