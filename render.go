package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/system"
	"golang.org/x/image/colornames"
)

var (
	skyColor      = colornames.Lightskyblue
	platformColor = colornames.Saddlebrown
	movingColor   = colornames.Peru
	enemyColor    = colornames.Crimson
	coinColor     = colornames.Gold
	playerColor   = colornames.Royalblue
	poweredColor  = colornames.Darkorange
	hitboxColor   = color.RGBA{R: 255, G: 0, B: 0, A: 200}
)

func powerUpColor(k obj.PowerUpKind) color.Color {
	switch k {
	case obj.PowerUpSuper:
		return colornames.Mediumorchid
	case obj.PowerUpSpeedBoost:
		return colornames.Deepskyblue
	default:
		return colornames.Limegreen
	}
}

func fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1.0, clr, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	w := g.world

	for _, p := range w.Platforms {
		fillRect(screen, p.Bounds(), platformColor)
	}
	for _, m := range w.MovingPlatforms {
		fillRect(screen, m.Bounds(), movingColor)
	}
	for _, c := range w.Coins {
		if c.IsCollected() {
			continue
		}
		r := c.Bounds()
		r.Y += c.BobOffset()
		fillRect(screen, r, coinColor)
	}
	for _, pu := range w.PowerUps {
		if pu.IsCollected() {
			continue
		}
		r := pu.Bounds()
		r.Y += pu.BobOffset()
		fillRect(screen, r, powerUpColor(pu.Kind))
	}
	for _, e := range w.Enemies {
		if e.IsAlive() {
			fillRect(screen, e.Bounds(), enemyColor)
		}
	}
	g.drawPlayer(screen)

	if g.debug {
		g.drawHitboxes(screen)
	}

	g.fade.Draw(screen)
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// drawPlayer blinks while invulnerable.
func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.world.Player
	if p.IsInvulnerable() && int(p.InvulnerableTime()*10)%2 == 0 {
		return
	}
	clr := color.Color(playerColor)
	if p.IsPoweredUp() {
		clr = poweredColor
	}
	fillRect(screen, p.Bounds(), clr)
}

func (g *Game) drawHitboxes(screen *ebiten.Image) {
	w := g.world
	strokeRect(screen, w.Player.Bounds(), hitboxColor)
	for _, e := range w.Enemies {
		if e.IsAlive() {
			strokeRect(screen, e.Bounds(), hitboxColor)
		}
	}
	for _, m := range w.MovingPlatforms {
		strokeRect(screen, m.Bounds(), hitboxColor)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	p := w.Player

	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d   Lives: %d   Level: %d (%s)   Time: %.1fs", w.Score(), w.Lives(), w.Level(), w.LevelName(), w.LevelTime())
	if p.IsPoweredUp() {
		fmt.Fprintf(&b, "\nSuper: %.1fs", p.PowerUpTime())
	}
	if p.IsSpeedBoosted() {
		b.WriteString("\nSpeed boost")
	}
	if g.debug {
		pos, vel := p.Position(), p.Velocity()
		fmt.Fprintf(&b, "\nFPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS())
		fmt.Fprintf(&b, "\npos=(%.1f, %.1f) vel=(%.1f, %.1f) %s", pos.X, pos.Y, vel.X, vel.Y, p.State())
	}
	if err := w.Err(); err != nil {
		fmt.Fprintf(&b, "\n%v", err)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 10, 10)

	if w.State() == system.GameOver {
		width, height := w.Size()
		msg := fmt.Sprintf("GAME OVER\nFinal score: %d\nPress Space or Enter to play again", w.Score())
		ebitenutil.DebugPrintAt(screen, msg, int(width)/2-100, int(height)/2-20)
	}
}
