package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

// ErrNoLayout is returned when a World is built without a layout source.
var ErrNoLayout = errors.New("system: no layout source")

// LayoutSource supplies the parameter list for a level number.
type LayoutSource interface {
	Layout(level int) (levels.Layout, error)
}

type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "playing"
}

// World owns the player and every per-level collection and steps them in a
// fixed order. Collections are replaced wholesale on level change; enemies
// and pickups are only ever flagged dead or collected.
type World struct {
	Player          *obj.Player
	Platforms       []*obj.Platform
	MovingPlatforms []*obj.MovingPlatform
	Enemies         []*obj.Enemy
	Coins           []*obj.Coin
	PowerUps        []*obj.PowerUp

	// Events receives gameplay events emitted during Step.
	Events component.EventEmitter

	cfg     Config
	layouts LayoutSource

	ground     []common.Rect
	spawn      common.Vector2
	layoutName string

	state     State
	score     int
	lives     int
	level     int
	levelTime float64

	// advanceErr is set when the next level failed to load; the win check
	// stays off until a reload succeeds.
	advanceErr error
}

// NewWorld starts a new game on level 1.
func NewWorld(cfg Config, layouts LayoutSource) (*World, error) {
	if layouts == nil {
		return nil, ErrNoLayout
	}
	w := &World{cfg: cfg, layouts: layouts}
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset starts a new game: fresh player, full lives, zero score, level 1.
func (w *World) Reset() error {
	return w.startAt(1)
}

// StartAt starts a new game on the given level.
func (w *World) StartAt(level int) error {
	return w.startAt(level)
}

func (w *World) startAt(level int) error {
	if w == nil {
		return fmt.Errorf("system: world is nil")
	}
	if err := w.load(level); err != nil {
		return err
	}
	w.level = level
	w.score = 0
	w.lives = w.cfg.Rules.Lives
	w.state = Playing
	w.Player = obj.NewPlayer(w.spawn.X, w.spawn.Y, w.cfg.Player)
	return nil
}

// NextLevel advances to the following level, places the player at its spawn
// and awards the level bonus.
func (w *World) NextLevel() error {
	next := w.level + 1
	if err := w.load(next); err != nil {
		return err
	}
	w.level = next
	w.Player.Respawn(w.spawn)
	w.score += w.cfg.Rules.LevelBonus * w.level
	w.Events.Emit(component.Event{Type: component.EventLevelComplete, Pos: w.spawn, Value: w.level, Detail: w.layoutName})
	return nil
}

// ReloadLevel rebuilds the current level from its layout source and respawns
// the player. Score and lives are kept.
func (w *World) ReloadLevel() error {
	if err := w.load(w.level); err != nil {
		return err
	}
	w.Player.Respawn(w.spawn)
	return nil
}

// ApplyConfig swaps tuning without rebuilding the level. Coins still in
// play are repriced.
func (w *World) ApplyConfig(cfg Config) {
	w.cfg = cfg
	if w.Player != nil {
		w.Player.SetConfig(cfg.Player)
	}
	for _, e := range w.Enemies {
		e.SetConfig(cfg.Enemy)
	}
	for _, c := range w.Coins {
		if !c.IsCollected() {
			c.Value = cfg.Rules.CoinScore
		}
	}
}

// load builds every collection for level and swaps them in only on success.
func (w *World) load(level int) error {
	layout, err := w.layouts.Layout(level)
	if err != nil {
		return fmt.Errorf("system: layout for level %d: %w", level, err)
	}
	ents, err := spawnLevel(layout, w.cfg)
	if err != nil {
		return fmt.Errorf("system: build level %d: %w", level, err)
	}

	w.Platforms = ents.platforms
	w.MovingPlatforms = ents.moving
	w.Enemies = ents.enemies
	w.Coins = ents.coins
	w.PowerUps = ents.powerUps
	w.ground = ents.ground
	w.spawn = ents.spawn
	w.layoutName = layout.Name
	w.levelTime = 0
	w.advanceErr = nil
	return nil
}

// Step advances the simulation by dt seconds. dt is clamped to the
// configured maximum; a non-positive dt or a finished game is a no-op.
func (w *World) Step(dt float64, in obj.Input) {
	if w == nil || w.state != Playing || dt <= 0 {
		return
	}
	if limit := w.cfg.Rules.MaxFrameDelta; limit > 0 {
		dt = math.Min(dt, limit)
	}
	w.levelTime += dt

	w.updateBodies(dt, in)
	w.resolvePlayer(dt)
	w.resolveEnemies()
	w.collectPickups()
	w.resolveEnemyContacts()
	if w.state != Playing {
		return
	}

	if w.advanceErr == nil && w.AllCoinsCollected() {
		if err := w.NextLevel(); err != nil {
			log.Printf("system: next level: %v", err)
			w.advanceErr = err
		}
	}

	w.keepPlayerInWorld()
}

func (w *World) updateBodies(dt float64, in obj.Input) {
	w.Player.Update(dt, in)
	if w.Player.Jumped() {
		w.Events.Emit(component.Event{Type: component.EventJump, Pos: w.Player.Position()})
	}

	for _, m := range w.MovingPlatforms {
		m.Update(dt)
	}

	for _, e := range w.Enemies {
		if !e.IsAlive() {
			continue
		}
		e.Update(dt, w.ground)
		e.SetOnGround(false)
	}

	for _, c := range w.Coins {
		c.Update(dt)
	}
	for _, p := range w.PowerUps {
		p.Update(dt)
	}
}

// resolvePlayer runs the static then moving platform passes. Landing on a
// moving platform carries the player along horizontally.
func (w *World) resolvePlayer(dt float64) {
	p := w.Player
	p.SetOnGround(false)

	for _, pl := range w.Platforms {
		b := pl.Bounds()
		if p.Bounds().Intersects(b) {
			p.ResolveCollision(b)
		}
	}

	for _, m := range w.MovingPlatforms {
		b := m.Bounds()
		var riding bool
		if p.Bounds().Intersects(b) {
			riding = p.ResolveCollision(b) == component.FaceTop
		} else {
			// Exact contact does not intersect, so a resting rider is only
			// resolved every other frame. It still moves with the platform.
			riding = p.Velocity().Y >= 0 && restingOn(p.Bounds(), b)
		}
		if riding {
			p.SetPosition(p.Position().Add(common.Vec(m.Velocity().X*dt, 0)))
		}
	}
}

const restEpsilon = 1e-6

// restingOn reports whether box sits on top of surface with horizontal overlap.
func restingOn(box, surface common.Rect) bool {
	return math.Abs(box.Bottom()-surface.Y) <= restEpsilon &&
		box.X < surface.Right() && box.Right() > surface.X
}

func (w *World) resolveEnemies() {
	for _, e := range w.Enemies {
		if !e.IsAlive() {
			continue
		}
		for _, pl := range w.Platforms {
			b := pl.Bounds()
			if e.Bounds().Intersects(b) {
				e.ResolveCollision(b)
			}
		}
		for _, m := range w.MovingPlatforms {
			b := m.Bounds()
			if e.Bounds().Intersects(b) {
				e.ResolveCollision(b)
			}
		}
	}
}

func (w *World) collectPickups() {
	pb := w.Player.Bounds()
	r := w.cfg.Rules

	for _, c := range w.Coins {
		if c.IsCollected() || !pb.Intersects(c.Bounds()) {
			continue
		}
		center := c.Bounds().Center()
		c.Collect()
		w.score += c.Value
		w.Events.Emit(component.Event{Type: component.EventCoinCollected, Pos: center, Value: c.Value})
	}

	for _, pu := range w.PowerUps {
		if pu.IsCollected() || !pb.Intersects(pu.Bounds()) {
			continue
		}
		center := pu.Bounds().Center()
		pu.Collect()

		var value int
		switch pu.Kind {
		case obj.PowerUpSuper:
			w.Player.SetPoweredUp(true)
			value = r.SuperScore
		case obj.PowerUpSpeedBoost:
			w.Player.GrantSpeedBoost()
			value = r.SpeedBoostScore
		case obj.PowerUpExtraLife:
			w.lives++
			value = r.ExtraLifeScore
		}
		w.score += value
		w.Events.Emit(component.Event{Type: component.EventPowerUpCollected, Pos: center, Value: value, Detail: pu.Kind.String()})
	}
}

// keepPlayerInWorld clamps x to the world and treats falling out of the
// bottom like a hit from an enemy.
func (w *World) keepPlayerInWorld() {
	pos := w.Player.Position()
	clamped := common.Clamp(pos.X, 0, w.cfg.WorldWidth-w.Player.Width())
	if clamped != pos.X {
		w.Player.SetPosition(common.Vec(clamped, pos.Y))
	}
	if pos.Y > w.cfg.WorldHeight {
		w.loseLife()
	}
}

// AllCoinsCollected is false for a level without coins so such a level
// does not complete on its first frame.
func (w *World) AllCoinsCollected() bool {
	if len(w.Coins) == 0 {
		return false
	}
	for _, c := range w.Coins {
		if !c.IsCollected() {
			return false
		}
	}
	return true
}

func (w *World) State() State             { return w.state }
func (w *World) Score() int               { return w.score }
func (w *World) Lives() int               { return w.lives }
func (w *World) Level() int               { return w.level }
func (w *World) LevelTime() float64       { return w.levelTime }
func (w *World) LevelName() string        { return w.layoutName }
func (w *World) Spawn() common.Vector2    { return w.spawn }
func (w *World) Config() Config           { return w.cfg }
func (w *World) Size() (float64, float64) { return w.cfg.WorldWidth, w.cfg.WorldHeight }

// Err reports a pending level-advance failure.
func (w *World) Err() error { return w.advanceErr }
