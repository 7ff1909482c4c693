package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touch_right_edge", Rect{X: 10, Y: 0, Width: 5, Height: 10}, false},
		{"touch_bottom_edge", Rect{X: 0, Y: 10, Width: 10, Height: 5}, false},
		{"touch_corner", Rect{X: 10, Y: 10, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
		{"zero_area_inside", Rect{X: 5, Y: 5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestRectCenterAndEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, Vec(25, 40), r.Center())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Rect{X: 11, Y: 18, Width: 30, Height: 40}, r.Translate(Vec(1, -2)))
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 0, Y: 650, Width: 1000, Height: 50}
	assert.True(t, r.Contains(Vec(0, 650)))
	assert.True(t, r.Contains(Vec(1000, 700)))
	assert.True(t, r.Contains(Vec(500, 660)))
	assert.False(t, r.Contains(Vec(500, 649.9)))
	assert.False(t, r.Contains(Vec(-0.1, 660)))
}

func TestCountdown(t *testing.T) {
	timer := 0.1
	assert.False(t, Countdown(&timer, 0.05))
	assert.InDelta(t, 0.05, timer, 1e-12)
	assert.True(t, Countdown(&timer, 0.06))
	assert.Equal(t, 0.0, timer)
	assert.False(t, Countdown(&timer, 0.06), "an expired timer does not fire again")

	timer = 1
	assert.False(t, Countdown(&timer, 0))
	assert.False(t, Countdown(&timer, -1))
	assert.Equal(t, 1.0, timer)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 970))
	assert.Equal(t, 970.0, Clamp(1200, 0, 970))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 970))
}
