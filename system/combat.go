package system

import "github.com/milk9111/platformer/component"

// resolveEnemyContacts handles player/enemy overlaps: a stomp from above
// kills the enemy, anything else hurts the player unless invulnerable.
func (w *World) resolveEnemyContacts() {
	p := w.Player
	r := w.cfg.Rules

	for _, e := range w.Enemies {
		if !e.IsAlive() || !p.Bounds().Intersects(e.Bounds()) {
			continue
		}
		if p.IsInvulnerable() {
			continue
		}

		if p.Position().Y < e.Position().Y-r.StompMargin {
			center := e.Bounds().Center()
			e.Kill()
			w.score += r.StompScore
			p.Bounce(r.StompLift)
			w.Events.Emit(component.Event{Type: component.EventEnemyStomped, Pos: center, Value: r.StompScore})
			continue
		}

		w.hurtPlayer()
		if w.state != Playing {
			return
		}
	}
}

// hurtPlayer costs the power-up if there is one, otherwise a life.
func (w *World) hurtPlayer() {
	p := w.Player
	if p.IsPoweredUp() {
		p.SetPoweredUp(false)
		p.SetInvulnerable(w.cfg.Rules.HitInvulnerability)
		w.Events.Emit(component.Event{Type: component.EventPlayerHit, Pos: p.Position()})
		return
	}
	w.loseLife()
}

// loseLife is shared by enemy hits and falling out of the world.
func (w *World) loseLife() {
	p := w.Player
	w.lives--
	p.SetInvulnerable(w.cfg.Rules.HitInvulnerability)
	w.Events.Emit(component.Event{Type: component.EventLifeLost, Pos: p.Position(), Value: w.lives})

	if w.lives <= 0 {
		w.state = GameOver
		w.Events.Emit(component.Event{Type: component.EventGameOver, Value: w.score})
		return
	}
	p.Respawn(w.spawn)
}
