package main

import (
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
)

const fadeSeconds = 0.4

type Game struct {
	world *system.World
	input *Input
	fade  *Fade

	debug      bool
	paused     bool
	startLevel int
	last       time.Time

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(level int, debug bool) (*Game, error) {
	cfg := system.DefaultConfig()
	if spec, err := prefabs.LoadTuning(); err != nil {
		log.Printf("tuning: %v; using built-in defaults", err)
	} else {
		cfg = system.ConfigFromTuning(spec)
	}

	world, err := system.NewWorld(cfg, levels.NewCatalog(cfg.WorldWidth, cfg.WorldHeight))
	if err != nil {
		return nil, err
	}
	if level > 1 {
		if err := world.StartAt(level); err != nil {
			return nil, err
		}
	}

	g := &Game{
		world:      world,
		input:      NewInput(),
		fade:       NewFade(fadeSeconds),
		debug:      debug,
		startLevel: level,
		last:       time.Now(),
	}
	g.pauseUI = NewPauseUI(g)
	world.Events.Subscribe(g.onEvent)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	g.input.Update()
	g.reloadChanged()
	g.fade.Update(dt)

	if g.input.RestartPressed() {
		g.restart()
		return nil
	}

	if g.world.State() == system.GameOver {
		if g.input.ConfirmPressed() {
			g.restart()
		}
		return nil
	}

	if g.input.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Step(dt, g.input.State())
	return nil
}

func (g *Game) restart() {
	g.paused = false
	if err := g.world.StartAt(g.startLevel); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	g.fade.Start()
}

// reloadChanged applies edits picked up by the debug watcher. Tuning is
// swapped in place; a level edit rebuilds the current level.
func (g *Game) reloadChanged() {
	changed, err := g.watcher.Drain()
	if err != nil {
		log.Printf("watch: %v", err)
	}

	reloadLevel, reloadTuning := false, false
	for _, name := range changed {
		if prefabs.IsLevelFile(name) {
			reloadLevel = true
		} else {
			reloadTuning = true
		}
	}

	if reloadTuning {
		spec, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("reload tuning: %v", err)
		} else {
			g.world.ApplyConfig(system.ConfigFromTuning(spec))
			log.Printf("reloaded %s", prefabs.TuningFile)
		}
	}
	if reloadLevel {
		if err := g.world.ReloadLevel(); err != nil {
			log.Printf("reload level %d: %v", g.world.Level(), err)
		} else {
			log.Printf("reloaded level %d (%s)", g.world.Level(), g.world.LevelName())
		}
	}
}

func (g *Game) onEvent(evt component.Event) {
	switch evt.Type {
	case component.EventLevelComplete:
		log.Printf("level %d: %s", evt.Value, evt.Detail)
		g.fade.Start()
	case component.EventLifeLost:
		log.Printf("life lost, %d left", evt.Value)
	case component.EventGameOver:
		log.Printf("game over, score %d", evt.Value)
	default:
		if g.debug {
			log.Printf("event %s value=%d %s", evt.Type, evt.Value, evt.Detail)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.world.Size()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.world.Size()
	return int(w), int(h)
}
