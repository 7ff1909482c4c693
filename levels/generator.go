package levels

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"gopkg.in/yaml.v3"
)

// GeneratorScript builds layouts for levels that have no YAML file.
const GeneratorScript = "generated.tengo"

// Generate runs a layout script with the level number and world size as
// globals and decodes its `layout` map.
func Generate(script string, level int, worldWidth, worldHeight float64) (Layout, error) {
	src, err := Load(script)
	if err != nil {
		return Layout{}, fmt.Errorf("levels: load %s: %w", script, err)
	}

	s := tengo.NewScript(src)
	_ = s.Add("level", level)
	_ = s.Add("world_width", int(worldWidth))
	_ = s.Add("world_height", int(worldHeight))
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return Layout{}, fmt.Errorf("levels: compile %s: %w", script, err)
	}
	if err := compiled.Run(); err != nil {
		return Layout{}, fmt.Errorf("levels: run %s: %w", script, err)
	}
	if !compiled.IsDefined("layout") {
		return Layout{}, fmt.Errorf("%w: %s does not define layout", ErrInvalidLayout, script)
	}

	raw := compiled.Get("layout").Map()
	if raw == nil {
		return Layout{}, fmt.Errorf("%w: %s: layout is not a map", ErrInvalidLayout, script)
	}

	// Round-trip through YAML so scripts and files share one set of field names.
	data, err := yaml.Marshal(raw)
	if err != nil {
		return Layout{}, fmt.Errorf("levels: encode %s output: %w", script, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("levels: %s: %w", script, err)
	}
	return l, nil
}
