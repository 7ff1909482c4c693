package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TuningFile holds every gameplay constant.
const TuningFile = "tuning.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec mirrors tuning.yaml. Zero fields mean "use the built-in default".
type TuningSpec struct {
	Name    string      `yaml:"name"`
	Physics PhysicsSpec `yaml:"physics"`
	Player  PlayerSpec  `yaml:"player"`
	Enemy   EnemySpec   `yaml:"enemy"`
	Rules   RulesSpec   `yaml:"rules"`
	World   WorldSpec   `yaml:"world"`
}

type PhysicsSpec struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

type PlayerSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpForce          float64 `yaml:"jump_force"`
	PoweredUpScale     float64 `yaml:"powered_up_scale"`
	PoweredSpeedMult   float64 `yaml:"powered_speed_mult"`
	PoweredJumpMult    float64 `yaml:"powered_jump_mult"`
	SpeedBoostMult     float64 `yaml:"speed_boost_mult"`
	PowerUpDuration    float64 `yaml:"power_up_duration"`
	SpeedBoostDuration float64 `yaml:"speed_boost_duration"`
	CoyoteTime         float64 `yaml:"coyote_time"`
	JumpBuffer         float64 `yaml:"jump_buffer"`
	JumpAnimDuration   float64 `yaml:"jump_anim_duration"`
}

type EnemySpec struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	LookaheadSteps float64 `yaml:"lookahead_steps"`
	ProbeDepth     float64 `yaml:"probe_depth"`
}

type RulesSpec struct {
	Lives              int        `yaml:"lives"`
	HitInvulnerability float64    `yaml:"hit_invulnerability"`
	StompMargin        float64    `yaml:"stomp_margin"`
	StompLift          float64    `yaml:"stomp_lift"`
	MaxFrameDelta      float64    `yaml:"max_frame_delta"`
	Scores             ScoresSpec `yaml:"scores"`
}

type ScoresSpec struct {
	Coin       int `yaml:"coin"`
	Super      int `yaml:"super"`
	SpeedBoost int `yaml:"speed_boost"`
	ExtraLife  int `yaml:"extra_life"`
	Stomp      int `yaml:"stomp"`
	LevelBonus int `yaml:"level_bonus"`
}

type WorldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadTuning() (TuningSpec, error) {
	return LoadSpec[TuningSpec](TuningFile)
}
