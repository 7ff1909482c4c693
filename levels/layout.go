package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/obj"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind   = errors.New("levels: unknown kind")
	ErrInvalidLayout = errors.New("levels: invalid layout")
)

// Layout is the plain parameter list a level is built from.
type Layout struct {
	Name            string               `yaml:"name"`
	Spawn           Point                `yaml:"spawn"`
	Platforms       []RectSpec           `yaml:"platforms"`
	MovingPlatforms []MovingPlatformSpec `yaml:"moving_platforms"`
	Enemies         []Point              `yaml:"enemies"`
	Coins           []Point              `yaml:"coins"`
	PowerUps        []PowerUpSpec        `yaml:"power_ups"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type MovingPlatformSpec struct {
	RectSpec `yaml:",inline"`
	Kind     string  `yaml:"kind"`
	Speed    float64 `yaml:"speed"`
	Range    float64 `yaml:"range"`
}

type PowerUpSpec struct {
	Point `yaml:",inline"`
	Kind  string `yaml:"kind"`
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("levels: unmarshal layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads a layout file through Load.
func LoadLayout(name string) (Layout, error) {
	data, err := Load(name)
	if err != nil {
		return Layout{}, fmt.Errorf("levels: load %s: %w", name, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("levels: %s: %w", name, err)
	}
	return l, nil
}

// Validate checks sizes and kinds so a bad file fails at load time rather
// than producing a broken level.
func (l Layout) Validate() error {
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: platforms[%d] has size %gx%g", ErrInvalidLayout, i, p.W, p.H)
		}
	}
	for i, m := range l.MovingPlatforms {
		if m.W <= 0 || m.H <= 0 {
			return fmt.Errorf("%w: moving_platforms[%d] has size %gx%g", ErrInvalidLayout, i, m.W, m.H)
		}
		if m.Speed < 0 || m.Range < 0 {
			return fmt.Errorf("%w: moving_platforms[%d] has negative speed or range", ErrInvalidLayout, i)
		}
		if _, err := obj.ParseMovementKind(m.Kind); err != nil {
			return fmt.Errorf("%w: moving_platforms[%d]: %v", ErrUnknownKind, i, err)
		}
	}
	for i, p := range l.PowerUps {
		if _, err := obj.ParsePowerUpKind(p.Kind); err != nil {
			return fmt.Errorf("%w: power_ups[%d]: %v", ErrUnknownKind, i, err)
		}
	}
	return nil
}
