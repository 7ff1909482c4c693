package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

// Rules holds the bookkeeping constants applied by the orchestrator.
type Rules struct {
	Lives              int
	HitInvulnerability float64 // seconds
	StompMargin        float64 // player must be this far above the enemy to stomp
	StompLift          float64
	MaxFrameDelta      float64

	CoinScore       int
	SuperScore      int
	SpeedBoostScore int
	ExtraLifeScore  int
	StompScore      int
	LevelBonus      int // multiplied by the new level number
}

func DefaultRules() Rules {
	return Rules{
		Lives:              3,
		HitInvulnerability: 2,
		StompMargin:        10,
		StompLift:          5,
		MaxFrameDelta:      0.016,
		CoinScore:          100,
		SuperScore:         200,
		SpeedBoostScore:    150,
		ExtraLifeScore:     500,
		StompScore:         150,
		LevelBonus:         1000,
	}
}

// Config bundles everything needed to build and step a World.
type Config struct {
	Player      obj.PlayerConfig
	Enemy       obj.EnemyConfig
	Rules       Rules
	WorldWidth  float64
	WorldHeight float64
}

func DefaultConfig() Config {
	return Config{
		Player:      obj.DefaultPlayerConfig(),
		Enemy:       obj.DefaultEnemyConfig(),
		Rules:       DefaultRules(),
		WorldWidth:  common.WorldWidth,
		WorldHeight: common.WorldHeight,
	}
}

// ConfigFromTuning overlays the non-zero fields of spec on DefaultConfig.
func ConfigFromTuning(spec prefabs.TuningSpec) Config {
	cfg := DefaultConfig()

	phys := component.DefaultPhysics()
	setFloat(&phys.Gravity, spec.Physics.Gravity)
	setFloat(&phys.MaxFallSpeed, spec.Physics.MaxFallSpeed)

	p := &cfg.Player
	p.Physics = phys
	setFloat(&p.Width, spec.Player.Width)
	setFloat(&p.Height, spec.Player.Height)
	setFloat(&p.MoveSpeed, spec.Player.MoveSpeed)
	setFloat(&p.JumpForce, spec.Player.JumpForce)
	setFloat(&p.PoweredUpScale, spec.Player.PoweredUpScale)
	setFloat(&p.PoweredSpeedMult, spec.Player.PoweredSpeedMult)
	setFloat(&p.PoweredJumpMult, spec.Player.PoweredJumpMult)
	setFloat(&p.SpeedBoostMult, spec.Player.SpeedBoostMult)
	setFloat(&p.PowerUpDuration, spec.Player.PowerUpDuration)
	setFloat(&p.SpeedBoostDuration, spec.Player.SpeedBoostDuration)
	setFloat(&p.CoyoteTime, spec.Player.CoyoteTime)
	setFloat(&p.JumpBuffer, spec.Player.JumpBuffer)
	setFloat(&p.JumpAnimDuration, spec.Player.JumpAnimDuration)

	setFloat(&cfg.WorldWidth, spec.World.Width)
	setFloat(&cfg.WorldHeight, spec.World.Height)

	e := &cfg.Enemy
	e.Physics = phys
	e.WorldWidth = cfg.WorldWidth
	setFloat(&e.Width, spec.Enemy.Width)
	setFloat(&e.Height, spec.Enemy.Height)
	setFloat(&e.PatrolSpeed, spec.Enemy.PatrolSpeed)
	setFloat(&e.LookaheadSteps, spec.Enemy.LookaheadSteps)
	setFloat(&e.ProbeDepth, spec.Enemy.ProbeDepth)

	r := &cfg.Rules
	setInt(&r.Lives, spec.Rules.Lives)
	setFloat(&r.HitInvulnerability, spec.Rules.HitInvulnerability)
	setFloat(&r.StompMargin, spec.Rules.StompMargin)
	setFloat(&r.StompLift, spec.Rules.StompLift)
	setFloat(&r.MaxFrameDelta, spec.Rules.MaxFrameDelta)
	setInt(&r.CoinScore, spec.Rules.Scores.Coin)
	setInt(&r.SuperScore, spec.Rules.Scores.Super)
	setInt(&r.SpeedBoostScore, spec.Rules.Scores.SpeedBoost)
	setInt(&r.ExtraLifeScore, spec.Rules.Scores.ExtraLife)
	setInt(&r.StompScore, spec.Rules.Scores.Stomp)
	setInt(&r.LevelBonus, spec.Rules.Scores.LevelBonus)

	return cfg
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
