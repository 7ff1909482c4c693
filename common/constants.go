package common

// World dimensions in pixels. The camera never scrolls, so the world is the screen.
const (
	WorldWidth  = 1000
	WorldHeight = 700
)
