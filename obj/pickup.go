package obj

import (
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/platformer/common"
)

const (
	coinSize       = 20
	coinValue      = 100
	powerUpSize    = 25
	bobSpeed       = 3.0
	bobAmplitude   = 5.0
	powerUpBobRate = 2.0
)

// pickup is the shared collectible state. Once collected it reports an empty
// rectangle and ignores further updates.
type pickup struct {
	pos       common.Vector2
	size      float64
	collected bool
	animTimer float64
	rate      float64
}

func (p *pickup) Update(dt float64) {
	if p == nil || p.collected || dt <= 0 {
		return
	}
	p.animTimer += dt * p.rate
}

// Bounds ignores the bob; it only moves the sprite.
func (p *pickup) Bounds() common.Rect {
	if p.collected {
		return common.Rect{}
	}
	return common.Rect{X: p.pos.X, Y: p.pos.Y, Width: p.size, Height: p.size}
}

func (p *pickup) Collect()                 { p.collected = true }
func (p *pickup) IsCollected() bool        { return p.collected }
func (p *pickup) Position() common.Vector2 { return p.pos }

// BobOffset is the vertical draw offset of the floating animation.
func (p *pickup) BobOffset() float64 {
	return math.Sin(p.animTimer) * bobAmplitude
}

// Coin is worth Value points and counts toward level completion.
type Coin struct {
	pickup
	Value int
}

func NewCoin(x, y float64) *Coin {
	return &Coin{
		pickup: pickup{pos: common.Vec(x, y), size: coinSize, rate: bobSpeed},
		Value:  coinValue,
	}
}

// PowerUpKind is the effect granted on pickup.
type PowerUpKind int

const (
	PowerUpSuper PowerUpKind = iota
	PowerUpSpeedBoost
	PowerUpExtraLife
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSuper:
		return "super"
	case PowerUpSpeedBoost:
		return "speed_boost"
	case PowerUpExtraLife:
		return "extra_life"
	default:
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
}

// ParsePowerUpKind maps a layout string to a PowerUpKind.
func ParsePowerUpKind(s string) (PowerUpKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "super", "super_mario":
		return PowerUpSuper, nil
	case "speed_boost", "speed":
		return PowerUpSpeedBoost, nil
	case "extra_life", "life":
		return PowerUpExtraLife, nil
	}
	return PowerUpSuper, fmt.Errorf("obj: unknown power-up kind %q", s)
}

type PowerUp struct {
	pickup
	Kind PowerUpKind
}

func NewPowerUp(x, y float64, kind PowerUpKind) *PowerUp {
	return &PowerUp{
		pickup: pickup{pos: common.Vec(x, y), size: powerUpSize, rate: powerUpBobRate},
		Kind:   kind,
	}
}
