package obj

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
)

const (
	enemyWidth          = 25
	enemyHeight         = 25
	enemyPatrolSpeed    = 50.0
	enemyLookahead      = 2   // integration steps projected ahead for the edge probe
	enemyProbeDepth     = 5.0 // pixels below the feet
	enemyAnimationSpeed = 4.0
)

// EnemyConfig holds the tunable patrol constants shared by all enemies.
type EnemyConfig struct {
	Width          float64
	Height         float64
	PatrolSpeed    float64
	LookaheadSteps float64
	ProbeDepth     float64
	WorldWidth     float64
	Physics        component.Physics
}

func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Width:          enemyWidth,
		Height:         enemyHeight,
		PatrolSpeed:    enemyPatrolSpeed,
		LookaheadSteps: enemyLookahead,
		ProbeDepth:     enemyProbeDepth,
		WorldWidth:     common.WorldWidth,
		Physics:        component.DefaultPhysics(),
	}
}

// Enemy walks back and forth at a constant speed and turns around at ledges,
// walls and the world edges.
type Enemy struct {
	cfg EnemyConfig
	k   component.Kinematic

	alive       bool
	movingRight bool
	animTimer   float64
}

// NewEnemy creates an enemy that starts patrolling left.
func NewEnemy(x, y float64, cfg EnemyConfig) *Enemy {
	return &Enemy{
		cfg: cfg,
		k: component.Kinematic{
			Position: common.Vec(x, y),
			Velocity: common.Vec(-cfg.PatrolSpeed, 0),
		},
		alive: true,
	}
}

// Update applies gravity, runs the ledge probe against ground and integrates.
func (e *Enemy) Update(dt float64, ground []common.Rect) {
	if e == nil || !e.alive || dt <= 0 {
		return
	}

	e.animTimer += dt * enemyAnimationSpeed
	e.cfg.Physics.Fall(&e.k, dt)

	if !e.groundAhead(dt, ground) || e.headingIntoWall() {
		e.reverse()
	}

	e.k.Integrate(dt)
	e.k.Position.X = common.Clamp(e.k.Position.X, 0, e.maxX())
}

// groundAhead samples a point just under the centre of the box projected
// LookaheadSteps integration steps forward. Edges count as ground.
func (e *Enemy) groundAhead(dt float64, ground []common.Rect) bool {
	probe := e.k.Position.Add(common.Vec(
		e.k.Velocity.X*dt*e.cfg.LookaheadSteps+e.cfg.Width/2,
		e.cfg.Height+e.cfg.ProbeDepth,
	))
	for _, r := range ground {
		if r.Contains(probe) {
			return true
		}
	}
	return false
}

// headingIntoWall is true at a world edge only while still moving toward it,
// so an enemy that already turned around is not flipped back.
func (e *Enemy) headingIntoWall() bool {
	x := e.k.Position.X
	return (x <= 0 && e.k.Velocity.X < 0) || (x >= e.maxX() && e.k.Velocity.X > 0)
}

func (e *Enemy) maxX() float64 {
	return e.cfg.WorldWidth - e.cfg.Width
}

func (e *Enemy) reverse() {
	e.k.Velocity.X = -e.k.Velocity.X
	e.movingRight = !e.movingRight
}

// ResolveCollision pushes the enemy out of target. Side hits turn it around
// at full patrol speed instead of stopping it.
func (e *Enemy) ResolveCollision(target common.Rect) component.Face {
	face := component.ResolveCollision(e, target)
	switch face {
	case component.FaceLeft:
		e.k.Velocity.X = -e.cfg.PatrolSpeed
		e.movingRight = false
	case component.FaceRight:
		e.k.Velocity.X = e.cfg.PatrolSpeed
		e.movingRight = true
	}
	return face
}

// SetConfig swaps tuning in place and rescales the patrol velocity.
func (e *Enemy) SetConfig(cfg EnemyConfig) {
	e.cfg = cfg
	if e.movingRight {
		e.k.Velocity.X = cfg.PatrolSpeed
	} else {
		e.k.Velocity.X = -cfg.PatrolSpeed
	}
}

// Kinematic implements component.Body.
func (e *Enemy) Kinematic() *component.Kinematic { return &e.k }

func (e *Enemy) Hitbox() common.Rect {
	return common.Rect{Width: e.cfg.Width, Height: e.cfg.Height}
}

// Bounds is empty once the enemy is dead.
func (e *Enemy) Bounds() common.Rect {
	if !e.alive {
		return common.Rect{}
	}
	return component.BoundsOf(e)
}

func (e *Enemy) Kill()                    { e.alive = false }
func (e *Enemy) IsAlive() bool            { return e.alive }
func (e *Enemy) MovingRight() bool        { return e.movingRight }
func (e *Enemy) SetOnGround(v bool)       { e.k.OnGround = v }
func (e *Enemy) Position() common.Vector2 { return e.k.Position }
func (e *Enemy) Velocity() common.Vector2 { return e.k.Velocity }
func (e *Enemy) AnimTime() float64        { return e.animTimer }
