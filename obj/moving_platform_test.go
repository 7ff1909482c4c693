package obj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalPlatformCycle(t *testing.T) {
	// 40 px/s over 25 ms steps moves exactly one pixel per step.
	const dt = 0.025
	m := NewMovingPlatform(100, 300, 60, 12, Horizontal, 40, 50)

	for i := 0; i < 50; i++ {
		m.Update(dt)
		require.Equal(t, 40.0, m.Velocity().X, "advancing step %d", i)
	}
	assert.InDelta(t, 150, m.Position().X, 1e-9)
	assert.False(t, m.MovingForward())

	for i := 0; i < 50; i++ {
		m.Update(dt)
		require.Equal(t, -40.0, m.Velocity().X, "retreating step %d", i)
	}
	assert.InDelta(t, 100, m.Position().X, 1e-9)
	assert.True(t, m.MovingForward())
	assert.Equal(t, 300.0, m.Position().Y)
}

func TestHorizontalPlatformClampsOvershoot(t *testing.T) {
	m := NewMovingPlatform(100, 300, 60, 12, Horizontal, 40, 50)

	// The second one-second step would carry it to 180; it stops at the bound.
	m.Update(1)
	m.Update(1)

	assert.Equal(t, 150.0, m.Position().X)
	assert.False(t, m.MovingForward())
}

func TestVerticalPlatformMovesUpFirst(t *testing.T) {
	const dt = 0.025
	m := NewMovingPlatform(550, 500, 60, 12, Vertical, 40, 40)

	m.Update(dt)
	assert.Equal(t, -40.0, m.Velocity().Y)
	assert.InDelta(t, 499, m.Position().Y, 1e-9)

	for i := 0; i < 39; i++ {
		m.Update(dt)
	}
	assert.InDelta(t, 460, m.Position().Y, 1e-9)
	assert.False(t, m.MovingForward())

	m.Update(dt)
	assert.Equal(t, 40.0, m.Velocity().Y)
	assert.Equal(t, 550.0, m.Position().X)
}

func TestCircularPlatformVelocityPredictsNextPosition(t *testing.T) {
	const dt = 0.016
	m := NewMovingPlatform(600, 400, 60, 12, Circular, 90, 80)

	for i := 0; i < 20; i++ {
		m.Update(dt)
		pos, vel := m.Position(), m.Velocity()

		// On the ellipse with radii (range, range/2) around the start.
		dx, dy := (pos.X-600)/80, (pos.Y-400)/40
		require.InDelta(t, 1, dx*dx+dy*dy, 1e-9)

		m.Update(dt)
		next := m.Position()
		assert.InDelta(t, pos.X+vel.X*dt, next.X, 1e-9)
		assert.InDelta(t, pos.Y+vel.Y*dt, next.Y, 1e-9)
	}
}

func TestCircularPlatformPhase(t *testing.T) {
	m := NewMovingPlatform(600, 400, 60, 12, Circular, 50, 80)
	m.Update(1)

	angle := 1 * 50 * 0.02
	assert.InDelta(t, 600+math.Cos(angle)*80, m.Position().X, 1e-9)
	assert.InDelta(t, 400+math.Sin(angle)*40, m.Position().Y, 1e-9)
}

func TestMovingPlatformIgnoresNonPositiveDelta(t *testing.T) {
	for _, kind := range []MovementKind{Horizontal, Vertical, Circular} {
		m := NewMovingPlatform(100, 300, 60, 12, kind, 40, 50)
		m.Update(0)
		m.Update(-1)
		assert.Equal(t, 100.0, m.Position().X, kind.String())
		assert.Equal(t, 300.0, m.Position().Y, kind.String())
		assert.Zero(t, m.Velocity(), kind.String())
	}
}

func TestParseMovementKind(t *testing.T) {
	cases := []struct {
		in      string
		want    MovementKind
		wantErr bool
	}{
		{"horizontal", Horizontal, false},
		{"Vertical", Vertical, false},
		{" circular ", Circular, false},
		{"c", Circular, false},
		{"diagonal", Horizontal, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseMovementKind(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
