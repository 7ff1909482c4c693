package levels

import (
	"errors"
	"fmt"
	"io/fs"
)

// Catalog resolves a level number to a layout. A hand-authored level<N>.yaml
// wins; anything else comes from the generator script.
type Catalog struct {
	WorldWidth  float64
	WorldHeight float64
	// Script overrides GeneratorScript when set.
	Script string
}

func NewCatalog(worldWidth, worldHeight float64) *Catalog {
	return &Catalog{WorldWidth: worldWidth, WorldHeight: worldHeight}
}

func (c *Catalog) Layout(level int) (Layout, error) {
	if level < 1 {
		return Layout{}, fmt.Errorf("%w: level %d", ErrInvalidLayout, level)
	}

	name := FileName(level)
	l, err := LoadLayout(name)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Layout{}, err
	}

	script := c.Script
	if script == "" {
		script = GeneratorScript
	}
	return Generate(script, level, c.WorldWidth, c.WorldHeight)
}

// FileName is the hand-authored file checked for a level.
func FileName(level int) string {
	return fmt.Sprintf("level%d.yaml", level)
}
