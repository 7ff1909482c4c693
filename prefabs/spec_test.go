package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningDefaults(t *testing.T) {
	spec, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 800.0, spec.Physics.Gravity)
	assert.Equal(t, 500.0, spec.Physics.MaxFallSpeed)
	assert.Equal(t, -400.0, spec.Player.JumpForce)
	assert.Equal(t, 0.1, spec.Player.CoyoteTime)
	assert.Equal(t, 0.15, spec.Player.JumpBuffer)
	assert.Equal(t, 1.5, spec.Player.PoweredUpScale)
	assert.Equal(t, 50.0, spec.Enemy.PatrolSpeed)
	assert.Equal(t, 3, spec.Rules.Lives)
	assert.Equal(t, 0.016, spec.Rules.MaxFrameDelta)
	assert.Equal(t, 1000, spec.Rules.Scores.LevelBonus)
	assert.Equal(t, 1000.0, spec.World.Width)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[TuningSpec]("nope.yaml")
	assert.ErrorContains(t, err, "prefabs: load nope.yaml")
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "tuning.yaml", cleanPrefabPath("prefabs/tuning.yaml"))
	assert.Equal(t, "tuning.yaml", cleanPrefabPath("tuning.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile(filepath.Join("levels", "level1.yaml")))
	assert.True(t, IsLevelFile(filepath.Join("levels", "generated.tengo")))
	assert.False(t, IsLevelFile(filepath.Join("prefabs", "tuning.yaml")))
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: t\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for tuning.yaml")
	}
}
