package obj

// Input holds the continuous key state for one frame. The host fills it from
// whatever devices it polls; edge detection happens in the core.
type Input struct {
	// Left is true while a move-left key is held.
	Left bool
	// Right is true while a move-right key is held.
	Right bool
	// Jump is true while any jump key is held.
	Jump bool
}

// MoveX returns -1, 0 or +1. Left wins when both directions are held.
func (i Input) MoveX() float64 {
	switch {
	case i.Left:
		return -1
	case i.Right:
		return 1
	}
	return 0
}

// JumpRisingEdge reports whether jump went from released to held between two
// consecutive snapshots.
func JumpRisingEdge(prev, cur Input) bool {
	return cur.Jump && !prev.Jump
}
