package geom

// Side labels a splitter/merger port, or "None" for a plain belt edge.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// IsNone reports whether s carries no side information.
func (s Side) IsNone() bool {
	return s == SideNone
}

// Neg swaps Left and Right, leaving None fixed.
func (s Side) Neg() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// String renders a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}
