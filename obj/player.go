package obj

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
)

const (
	playerWidth        = 30
	playerHeight       = 30
	moveSpeed          = 200.0
	jumpForce          = -400.0
	poweredUpScale     = 1.5
	poweredSpeedMult   = 1.3
	poweredJumpMult    = 1.2
	speedBoostMult     = 1.3
	powerUpDuration    = 10.0 // seconds
	speedBoostDuration = 10.0 // seconds
	coyoteTimeWindow   = 0.1  // allow jump this long after leaving ground
	jumpBufferWindow   = 0.15 // remember a jump press this long before landing
	jumpAnimDuration   = 0.3
)

// PlayerConfig holds the tunable movement constants of the player.
type PlayerConfig struct {
	Width              float64
	Height             float64
	MoveSpeed          float64
	JumpForce          float64
	Physics            component.Physics
	PoweredUpScale     float64
	PoweredSpeedMult   float64
	PoweredJumpMult    float64
	SpeedBoostMult     float64
	PowerUpDuration    float64
	SpeedBoostDuration float64
	CoyoteTime         float64
	JumpBuffer         float64
	JumpAnimDuration   float64
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Width:              playerWidth,
		Height:             playerHeight,
		MoveSpeed:          moveSpeed,
		JumpForce:          jumpForce,
		Physics:            component.DefaultPhysics(),
		PoweredUpScale:     poweredUpScale,
		PoweredSpeedMult:   poweredSpeedMult,
		PoweredJumpMult:    poweredJumpMult,
		SpeedBoostMult:     speedBoostMult,
		PowerUpDuration:    powerUpDuration,
		SpeedBoostDuration: speedBoostDuration,
		CoyoteTime:         coyoteTimeWindow,
		JumpBuffer:         jumpBufferWindow,
		JumpAnimDuration:   jumpAnimDuration,
	}
}

// Player is the input-driven body. Grounded, powered-up and invulnerable are
// independent flags rather than one state enum.
type Player struct {
	cfg PlayerConfig
	k   component.Kinematic

	facingRight bool
	moving      bool
	jumped      bool
	prevJump    bool

	poweredUp       bool
	powerUpTimer    float64
	speedBoostTimer float64
	invulnTimer     float64
	jumpBuffer      float64
	coyoteTime      float64

	walkAnimTimer float64
	jumpAnimTimer float64
}

func NewPlayer(x, y float64, cfg PlayerConfig) *Player {
	return &Player{
		cfg:         cfg,
		k:           component.Kinematic{Position: common.Vec(x, y)},
		facingRight: true,
	}
}

// Update runs input handling and then the per-frame physics contract.
// A non-positive dt leaves the player untouched.
func (p *Player) Update(dt float64, in Input) {
	if p == nil || dt <= 0 {
		return
	}
	p.handleInput(in)
	p.updateTimers(dt)

	p.cfg.Physics.Fall(&p.k, dt)
	p.k.Integrate(dt)
}

func (p *Player) handleInput(in Input) {
	p.jumped = false
	p.moving = false

	speed := p.moveSpeed()
	switch in.MoveX() {
	case -1:
		p.k.Velocity.X = -speed
		p.facingRight = false
		p.moving = true
	case 1:
		p.k.Velocity.X = speed
		p.facingRight = true
		p.moving = true
	default:
		p.k.Velocity.X = 0
	}

	if JumpRisingEdge(Input{Jump: p.prevJump}, in) {
		p.jumpBuffer = p.cfg.JumpBuffer
	}

	if p.jumpBuffer > 0 && (p.k.OnGround || p.coyoteTime > 0) {
		force := p.cfg.JumpForce
		if p.poweredUp {
			force *= p.cfg.PoweredJumpMult
		}
		p.k.Velocity.Y = force
		p.k.OnGround = false
		p.jumpBuffer = 0
		p.coyoteTime = 0
		p.jumpAnimTimer = p.cfg.JumpAnimDuration
		p.jumped = true
	}

	p.prevJump = in.Jump
}

func (p *Player) updateTimers(dt float64) {
	if p.moving {
		p.walkAnimTimer += dt
	} else {
		p.walkAnimTimer = 0
	}
	common.Countdown(&p.jumpAnimTimer, dt)

	if common.Countdown(&p.powerUpTimer, dt) {
		p.poweredUp = false
	}
	common.Countdown(&p.speedBoostTimer, dt)
	common.Countdown(&p.invulnTimer, dt)
	common.Countdown(&p.jumpBuffer, dt)

	if p.k.OnGround {
		p.coyoteTime = p.cfg.CoyoteTime
	} else {
		common.Countdown(&p.coyoteTime, dt)
	}
}

func (p *Player) moveSpeed() float64 {
	mult := 1.0
	if p.poweredUp {
		mult = p.cfg.PoweredSpeedMult
	}
	if p.speedBoostTimer > 0 {
		mult = math.Max(mult, p.cfg.SpeedBoostMult)
	}
	return p.cfg.MoveSpeed * mult
}

// SetConfig swaps tuning in place; timers already running keep their
// remaining time.
func (p *Player) SetConfig(cfg PlayerConfig) {
	p.cfg = cfg
}

func (p *Player) Config() PlayerConfig { return p.cfg }

// Kinematic implements component.Body.
func (p *Player) Kinematic() *component.Kinematic { return &p.k }

// Hitbox returns the collision box relative to the position. The powered-up
// box grows upward and stays horizontally centred on the base box.
func (p *Player) Hitbox() common.Rect {
	w, h := p.cfg.Width, p.cfg.Height
	if !p.poweredUp {
		return common.Rect{Width: w, Height: h}
	}
	sw, sh := w*p.cfg.PoweredUpScale, h*p.cfg.PoweredUpScale
	return common.Rect{
		X:      -(sw - w) * 0.5,
		Y:      -(sh - h),
		Width:  sw,
		Height: sh,
	}
}

func (p *Player) Bounds() common.Rect {
	return component.BoundsOf(p)
}

// ResolveCollision pushes the player out of target. See component.ResolveCollision.
func (p *Player) ResolveCollision(target common.Rect) component.Face {
	return component.ResolveCollision(p, target)
}

func (p *Player) Position() common.Vector2 { return p.k.Position }
func (p *Player) Velocity() common.Vector2 { return p.k.Velocity }
func (p *Player) OnGround() bool           { return p.k.OnGround }
func (p *Player) Width() float64           { return p.cfg.Width }
func (p *Player) Height() float64          { return p.cfg.Height }
func (p *Player) FacingRight() bool        { return p.facingRight }
func (p *Player) Moving() bool             { return p.moving }

// Jumped reports whether the last Update started a jump.
func (p *Player) Jumped() bool { return p.jumped }

func (p *Player) SetOnGround(v bool)             { p.k.OnGround = v }
func (p *Player) SetPosition(pos common.Vector2) { p.k.Position = pos }
func (p *Player) SetVelocity(v common.Vector2)   { p.k.Velocity = v }

// SetPoweredUp toggles the super form. Turning it on restarts the timer.
func (p *Player) SetPoweredUp(v bool) {
	p.poweredUp = v
	if v {
		p.powerUpTimer = p.cfg.PowerUpDuration
	} else {
		p.powerUpTimer = 0
	}
}

func (p *Player) IsPoweredUp() bool { return p.poweredUp }

func (p *Player) SetInvulnerable(seconds float64) {
	p.invulnTimer = math.Max(seconds, 0)
}

func (p *Player) IsInvulnerable() bool { return p.invulnTimer > 0 }

func (p *Player) GrantSpeedBoost() {
	p.speedBoostTimer = p.cfg.SpeedBoostDuration
}

func (p *Player) IsSpeedBoosted() bool { return p.speedBoostTimer > 0 }

// Respawn places the player at pos at rest. Power-up state is kept so the
// caller decides what a respawn costs.
func (p *Player) Respawn(pos common.Vector2) {
	p.k.Position = pos
	p.k.Velocity = common.Vector2{}
	p.k.OnGround = false
	p.jumpBuffer = 0
	p.coyoteTime = 0
}

// Bounce lifts the player by a fixed distance after a stomp.
func (p *Player) Bounce(lift float64) {
	p.k.Position.Y -= lift
}

// Timers exposed for rendering.
func (p *Player) InvulnerableTime() float64 { return p.invulnTimer }
func (p *Player) PowerUpTime() float64      { return p.powerUpTimer }
func (p *Player) WalkAnimTime() float64     { return p.walkAnimTimer }
func (p *Player) JumpAnimTime() float64     { return p.jumpAnimTimer }

// State names the movement phase for the HUD.
func (p *Player) State() string {
	switch {
	case p.k.OnGround && p.moving:
		return "running"
	case p.k.OnGround:
		return "idle"
	case p.k.Velocity.Y < 0:
		return "jumping"
	default:
		return "falling"
	}
}
