package obj

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var floor = []common.Rect{{X: 0, Y: 625, Width: 1000, Height: 75}}

func TestEnemyStartsPatrollingLeft(t *testing.T) {
	e := NewEnemy(200, 600, DefaultEnemyConfig())
	require.True(t, e.IsAlive())
	assert.False(t, e.MovingRight())

	e.Update(frame, floor)

	assert.Equal(t, -50.0, e.Velocity().X)
	assert.InDelta(t, 200-50*frame, e.Position().X, 1e-9)
}

func TestEnemyReversesAtLeftWorldEdge(t *testing.T) {
	e := NewEnemy(0, 600, DefaultEnemyConfig())

	e.Update(frame, floor)

	assert.True(t, e.MovingRight())
	assert.Equal(t, 50.0, e.Velocity().X)
	assert.Greater(t, e.Position().X, 0.0)
}

func TestEnemyReversesAtRightWorldEdge(t *testing.T) {
	e := NewEnemy(975, 600, DefaultEnemyConfig())
	e.k.Velocity.X = 50
	e.movingRight = true

	e.Update(frame, floor)

	assert.False(t, e.MovingRight())
	assert.Equal(t, -50.0, e.Velocity().X)
	assert.LessOrEqual(t, e.Position().X, 975.0)
}

func TestEnemyLeavingEdgeKeepsDirection(t *testing.T) {
	e := NewEnemy(975, 600, DefaultEnemyConfig())

	for i := 0; i < 5; i++ {
		e.Update(frame, floor)
		e.SetOnGround(false)
	}

	assert.False(t, e.MovingRight())
	assert.Less(t, e.Position().X, 975.0)
}

func TestEnemyTurnsAtLedge(t *testing.T) {
	ledge := []common.Rect{{X: 50, Y: 625, Width: 60, Height: 20}}

	cases := []struct {
		name      string
		x         float64
		wantRight bool
	}{
		// Probe lands at 100 - 1.6 + 12.5 = 110.9, past the ledge's right edge at 110.
		{"probe_past_edge", 100, true},
		// Probe at 97.5 - 1.6 + 12.5 = 108.4 is still on the ledge.
		{"probe_on_ledge", 97.5, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := NewEnemy(c.x, 600, DefaultEnemyConfig())
			e.Update(frame, ledge)
			assert.Equal(t, c.wantRight, e.MovingRight())
		})
	}
}

func TestEnemyProbeIncludesPlatformEdge(t *testing.T) {
	// Probe y = 600 + 25 + 5 = 630, exactly on the top edge.
	edge := []common.Rect{{X: 0, Y: 630, Width: 1000, Height: 20}}
	e := NewEnemy(200, 600, DefaultEnemyConfig())

	e.Update(frame, edge)

	assert.False(t, e.MovingRight(), "a probe on the rect edge counts as ground")
}

func TestEnemySideCollisionReverses(t *testing.T) {
	cases := []struct {
		name      string
		x, vx     float64
		wall      common.Rect
		wantFace  component.Face
		wantX     float64
		wantVX    float64
		wantRight bool
	}{
		{
			name:      "walking_left_into_wall",
			x:         100,
			vx:        -50,
			wall:      common.Rect{X: 80, Y: 500, Width: 25, Height: 200},
			wantFace:  component.FaceRight,
			wantX:     105,
			wantVX:    50,
			wantRight: true,
		},
		{
			name:      "walking_right_into_wall",
			x:         100,
			vx:        50,
			wall:      common.Rect{X: 120, Y: 500, Width: 25, Height: 200},
			wantFace:  component.FaceLeft,
			wantX:     95,
			wantVX:    -50,
			wantRight: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := NewEnemy(c.x, 600, DefaultEnemyConfig())
			e.k.Velocity.X = c.vx
			e.movingRight = c.vx > 0

			face := e.ResolveCollision(c.wall)

			assert.Equal(t, c.wantFace, face)
			assert.Equal(t, c.wantX, e.Position().X)
			assert.Equal(t, c.wantVX, e.Velocity().X)
			assert.Equal(t, c.wantRight, e.MovingRight())
		})
	}
}

func TestEnemyLandsOnFloor(t *testing.T) {
	e := NewEnemy(200, 610, DefaultEnemyConfig())
	e.k.Velocity.Y = 100

	face := e.ResolveCollision(floor[0])

	assert.Equal(t, component.FaceTop, face)
	assert.Equal(t, 600.0, e.Position().Y)
	assert.Equal(t, -50.0, e.Velocity().X, "landing keeps patrol speed")
	assert.True(t, e.k.OnGround)
}

func TestDeadEnemyIsInert(t *testing.T) {
	e := NewEnemy(200, 600, DefaultEnemyConfig())
	e.Kill()

	e.Update(frame, floor)

	assert.False(t, e.IsAlive())
	assert.Equal(t, common.Rect{}, e.Bounds())
	assert.Equal(t, common.Vec(200, 600), e.Position())
	assert.False(t, e.Bounds().Intersects(common.Rect{X: 0, Y: 0, Width: 1000, Height: 700}))
}
