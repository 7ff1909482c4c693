package component

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// Face names the side of the target a mover was pushed out of.
type Face int

const (
	FaceNone Face = iota
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
)

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "none"
	}
}

// ResolveCollision pushes b out of target along the axis of least overlap.
// The caller must already know the two boxes intersect.
//
// The velocity sign decides which face was struck. When the sign disagrees
// with the minimum axis nothing is corrected and FaceNone is returned; a fast
// mover can therefore stay embedded for a frame.
func ResolveCollision(b Body, target common.Rect) Face {
	k := b.Kinematic()
	hb := b.Hitbox()
	box := hb.Translate(k.Position)

	overlapLeft := box.Right() - target.X
	overlapRight := target.Right() - box.X
	overlapTop := box.Bottom() - target.Y
	overlapBottom := target.Bottom() - box.Y

	minOverlap := math.Min(math.Min(overlapLeft, overlapRight), math.Min(overlapTop, overlapBottom))

	switch {
	case minOverlap == overlapTop && k.Velocity.Y >= 0:
		k.Position.Y = target.Y - hb.Bottom()
		k.Velocity.Y = 0
		k.OnGround = true
		return FaceTop
	case minOverlap == overlapBottom && k.Velocity.Y < 0:
		k.Position.Y = target.Bottom() - hb.Y
		k.Velocity.Y = 0
		return FaceBottom
	case minOverlap == overlapLeft && k.Velocity.X > 0:
		k.Position.X = target.X - hb.Right()
		k.Velocity.X = 0
		return FaceLeft
	case minOverlap == overlapRight && k.Velocity.X < 0:
		k.Position.X = target.Right() - hb.X
		k.Velocity.X = 0
		return FaceRight
	}
	return FaceNone
}
