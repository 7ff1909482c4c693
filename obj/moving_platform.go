package obj

import (
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/platformer/common"
)

// MovementKind selects the path a MovingPlatform follows.
type MovementKind int

const (
	Horizontal MovementKind = iota
	Vertical
	Circular
)

// circularRate converts speed into angular speed for circular platforms.
const circularRate = 0.02

func (k MovementKind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("MovementKind(%d)", int(k))
	}
}

// ParseMovementKind maps a layout string to a MovementKind.
func ParseMovementKind(s string) (MovementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	case "circular", "c":
		return Circular, nil
	}
	return Horizontal, fmt.Errorf("obj: unknown movement kind %q", s)
}

// MovingPlatform is a kinematic surface. It follows a fixed path and is never
// displaced by collisions; riders pick up its velocity instead.
type MovingPlatform struct {
	pos     common.Vector2
	start   common.Vector2
	vel     common.Vector2
	width   float64
	height  float64
	kind    MovementKind
	speed   float64
	rng     float64
	timer   float64
	forward bool
}

func NewMovingPlatform(x, y, w, h float64, kind MovementKind, speed, rng float64) *MovingPlatform {
	return &MovingPlatform{
		pos:     common.Vec(x, y),
		start:   common.Vec(x, y),
		width:   w,
		height:  h,
		kind:    kind,
		speed:   speed,
		rng:     rng,
		forward: true,
	}
}

// Update advances the platform along its path.
func (m *MovingPlatform) Update(dt float64) {
	if m == nil || dt <= 0 {
		return
	}
	m.timer += dt

	switch m.kind {
	case Horizontal:
		m.updateHorizontal(dt)
	case Vertical:
		m.updateVertical(dt)
	case Circular:
		m.updateCircular(dt)
	}
}

// Ping-pong between start.x and start.x+range. Arrival clamps to the bound
// and flips direction so the path never drifts.
func (m *MovingPlatform) updateHorizontal(dt float64) {
	m.vel = common.Vec(m.speed, 0)
	if !m.forward {
		m.vel.X = -m.speed
	}
	m.pos.X += m.vel.X * dt

	end := m.start.X + m.rng
	switch {
	case m.forward && m.pos.X >= end:
		m.pos.X = end
		m.forward = false
	case !m.forward && m.pos.X <= m.start.X:
		m.pos.X = m.start.X
		m.forward = true
	}
}

// Forward is upward, toward start.y-range.
func (m *MovingPlatform) updateVertical(dt float64) {
	m.vel = common.Vec(0, -m.speed)
	if !m.forward {
		m.vel.Y = m.speed
	}
	m.pos.Y += m.vel.Y * dt

	top := m.start.Y - m.rng
	switch {
	case m.forward && m.pos.Y <= top:
		m.pos.Y = top
		m.forward = false
	case !m.forward && m.pos.Y >= m.start.Y:
		m.pos.Y = m.start.Y
		m.forward = true
	}
}

func (m *MovingPlatform) updateCircular(dt float64) {
	angle := m.timer * m.speed * circularRate
	m.pos = m.orbit(angle)
	next := m.orbit(angle + dt*m.speed*circularRate)
	m.vel = next.Sub(m.pos).Mult(1 / dt)
}

func (m *MovingPlatform) orbit(angle float64) common.Vector2 {
	return m.start.Add(common.Vec(math.Cos(angle)*m.rng, math.Sin(angle)*m.rng*0.5))
}

func (m *MovingPlatform) Bounds() common.Rect {
	return common.Rect{X: m.pos.X, Y: m.pos.Y, Width: m.width, Height: m.height}
}

func (m *MovingPlatform) Position() common.Vector2 { return m.pos }
func (m *MovingPlatform) Velocity() common.Vector2 { return m.vel }
func (m *MovingPlatform) Kind() MovementKind       { return m.kind }
func (m *MovingPlatform) MovingForward() bool      { return m.forward }
