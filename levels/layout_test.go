package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevelOne(t *testing.T) {
	l, err := LoadLayout("level1.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Level 1", l.Name)
	assert.Equal(t, Point{X: 50, Y: 600}, l.Spawn)
	assert.Len(t, l.Platforms, 9)
	assert.Equal(t, RectSpec{X: 0, Y: 650, W: 1000, H: 50}, l.Platforms[0])
	require.Len(t, l.MovingPlatforms, 3)
	assert.Equal(t, "vertical", l.MovingPlatforms[1].Kind)
	assert.Equal(t, 40.0, l.MovingPlatforms[1].Range)
	assert.Len(t, l.Enemies, 4)
	assert.Len(t, l.Coins, 10)
	require.Len(t, l.PowerUps, 3)
	assert.Equal(t, PowerUpSpec{Point: Point{X: 900, Y: 520}, Kind: "extra_life"}, l.PowerUps[2])
}

func TestParseLayoutRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name:    "zero_width_platform",
			src:     "platforms:\n  - {x: 0, y: 0, w: 0, h: 10}\n",
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "unknown_movement",
			src:     "moving_platforms:\n  - {x: 0, y: 0, w: 10, h: 10, kind: zigzag, speed: 1, range: 1}\n",
			wantErr: ErrUnknownKind,
		},
		{
			name:    "unknown_power_up",
			src:     "power_ups:\n  - {x: 0, y: 0, kind: star}\n",
			wantErr: ErrUnknownKind,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(c.src))
			assert.ErrorIs(t, err, c.wantErr)
		})
	}

	_, err := ParseLayout([]byte("platforms: [oops"))
	assert.Error(t, err)
}

func TestGenerateLevel(t *testing.T) {
	l, err := Generate(GeneratorScript, 2, 1000, 700)
	require.NoError(t, err)

	assert.Equal(t, "Level 2", l.Name)
	assert.Equal(t, Point{X: 50, Y: 600}, l.Spawn)
	require.Len(t, l.Platforms, 9)
	assert.Equal(t, RectSpec{X: 0, Y: 650, W: 1000, H: 50}, l.Platforms[0])
	assert.Equal(t, RectSpec{X: 340, Y: 350, W: 80, H: 15}, l.Platforms[3])

	require.Len(t, l.MovingPlatforms, 4)
	kinds := make([]string, 0, len(l.MovingPlatforms))
	for _, m := range l.MovingPlatforms {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []string{"horizontal", "vertical", "circular", "horizontal"}, kinds)
	assert.Equal(t, 110.0, l.MovingPlatforms[3].Speed)

	assert.Len(t, l.Enemies, 5)
	assert.Len(t, l.Coins, 12)
	assert.Equal(t, Point{X: 320, Y: 340}, l.Coins[3])
	assert.Len(t, l.PowerUps, 3)
}

func TestGenerateCapsEnemiesToWorld(t *testing.T) {
	l, err := Generate(GeneratorScript, 20, 1000, 700)
	require.NoError(t, err)

	assert.Len(t, l.Enemies, 7)
	for _, e := range l.Enemies {
		assert.LessOrEqual(t, e.X, 975.0)
	}
}

func TestCatalogPrefersAuthoredFile(t *testing.T) {
	c := NewCatalog(1000, 700)

	l1, err := c.Layout(1)
	require.NoError(t, err)
	assert.Len(t, l1.Coins, 10)

	l3, err := c.Layout(3)
	require.NoError(t, err)
	assert.Equal(t, "Level 3", l3.Name)
	assert.Len(t, l3.Enemies, 6)

	_, err = c.Layout(0)
	assert.ErrorIs(t, err, ErrInvalidLayout)

	c.Script = "missing.tengo"
	_, err = c.Layout(4)
	assert.Error(t, err)
}
