package component

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// Kinematic is the motion state shared by every body that resolves its own
// collisions. Position is the top-left of the base (unscaled) box.
type Kinematic struct {
	Position common.Vector2
	Velocity common.Vector2
	// OnGround is cleared by the orchestrator at the start of each collision
	// pass and only set again by a top-face resolution.
	OnGround bool
}

// Body is the minimal view of a mover the collision resolver works with.
type Body interface {
	Kinematic() *Kinematic
	// Hitbox returns the collision box relative to Kinematic().Position.
	Hitbox() common.Rect
}

// BoundsOf returns the body's collision box in world space.
func BoundsOf(b Body) common.Rect {
	return b.Hitbox().Translate(b.Kinematic().Position)
}

// Integrate advances position by velocity over dt.
func (k *Kinematic) Integrate(dt float64) {
	if k == nil || dt <= 0 {
		return
	}
	k.Position = k.Position.Add(k.Velocity.Mult(dt))
}

// Physics holds the gravity constants shared by the player and enemies.
type Physics struct {
	Gravity      float64
	MaxFallSpeed float64
}

const (
	DefaultGravity      = 800.0
	DefaultMaxFallSpeed = 500.0
)

func DefaultPhysics() Physics {
	return Physics{Gravity: DefaultGravity, MaxFallSpeed: DefaultMaxFallSpeed}
}

// Fall integrates gravity into vertical velocity while airborne.
func (p Physics) Fall(k *Kinematic, dt float64) {
	if k == nil || k.OnGround || dt <= 0 {
		return
	}
	k.Velocity.Y = math.Min(k.Velocity.Y+p.Gravity*dt, p.MaxFallSpeed)
}
