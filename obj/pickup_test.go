package obj

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinCollect(t *testing.T) {
	c := NewCoin(300, 600)
	require.Equal(t, common.Rect{X: 300, Y: 600, Width: 20, Height: 20}, c.Bounds())
	assert.Equal(t, 100, c.Value)

	c.Update(0.5)
	assert.NotZero(t, c.BobOffset())
	assert.Equal(t, 600.0, c.Bounds().Y, "bob is cosmetic")

	c.Collect()
	assert.True(t, c.IsCollected())
	assert.True(t, c.Bounds().Empty())

	before := c.BobOffset()
	c.Update(0.5)
	assert.Equal(t, before, c.BobOffset(), "collected coins stop animating")
}

func TestPowerUpBounds(t *testing.T) {
	p := NewPowerUp(370, 480, PowerUpSpeedBoost)
	assert.Equal(t, common.Rect{X: 370, Y: 480, Width: 25, Height: 25}, p.Bounds())
	assert.Equal(t, "speed_boost", p.Kind.String())

	p.Collect()
	assert.False(t, p.Bounds().Intersects(common.Rect{X: 370, Y: 480, Width: 25, Height: 25}))
}

func TestParsePowerUpKind(t *testing.T) {
	cases := []struct {
		in      string
		want    PowerUpKind
		wantErr bool
	}{
		{"super", PowerUpSuper, false},
		{"SUPER_MARIO", PowerUpSuper, false},
		{"speed_boost", PowerUpSpeedBoost, false},
		{"extra_life", PowerUpExtraLife, false},
		{"invisibility", PowerUpSuper, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParsePowerUpKind(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
