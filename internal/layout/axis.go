package layout

// Axis identifies a layout direction.
type Axis uint8

const (
	// Horizontal lays content out left to right.
	Horizontal Axis = iota
	// Vertical lays content out top to bottom.
	Vertical
)

// Perpendicular returns the other axis.
func (a Axis) Perpendicular() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
