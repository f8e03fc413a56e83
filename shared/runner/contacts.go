package runner

import (
	"image"

	"github.com/automoto/ringrush/shared/props"
)

// Events reports what happened during a tick, for sound, effects and the HUD.
type Events struct {
	Rings      int  // rings collected
	ExtraLives int  // lives awarded for rings
	Sprung     bool // a spring launched the player
	Defeated   int  // enemies destroyed
	Hurt       bool // the player lost its rings
	Scattered  int  // rings thrown out by the hurt
	Died       bool // the player lost a life
	Shots      int  // enemy shots fired
	Goal       bool // the goal post was touched this tick
	DeathOver  bool // the death sequence finished
}

// Merge folds o into e.
func (e *Events) Merge(o Events) {
	e.Rings += o.Rings
	e.ExtraLives += o.ExtraLives
	e.Sprung = e.Sprung || o.Sprung
	e.Defeated += o.Defeated
	e.Hurt = e.Hurt || o.Hurt
	e.Scattered += o.Scattered
	e.Died = e.Died || o.Died
	e.Shots += o.Shots
	e.Goal = e.Goal || o.Goal
	e.DeathOver = e.DeathOver || o.DeathOver
}

// UpdateEnemies runs every enemy's patrol and moves enemy shots. Shots that
// reach the player hurt it.
func (w *World) UpdateEnemies(p *Player) Events {
	var ev Events
	cx, cy := p.Center()
	center := image.Pt(int(cx), int(cy))

	for _, e := range w.Field.Of(props.KindEnemy) {
		if shot := props.Think(w.Index, e, w.Rand, center); shot != nil {
			w.Shots = append(w.Shots, shot)
			ev.Shots++
		}
		w.Field.Moved(e)
	}

	r := p.Body.Rect()
	live := w.Shots[:0]
	for _, s := range w.Shots {
		if s.Step() {
			continue
		}
		if !p.Dead && !p.Invulnerable() && s.Hits(r) {
			ev.Merge(w.hit(p, false))
			continue
		}
		live = append(live, s)
	}
	clear(w.Shots[len(live):])
	w.Shots = live
	return ev
}

// Interact resolves the player's contacts with props: rings are collected,
// springs launch, enemies are defeated or hurt the player and the goal post
// starts spinning.
func (w *World) Interact(p *Player) Events {
	var ev Events
	if p.Dead {
		return ev
	}
	b := p.Body
	for _, pr := range w.Field.Touching(b.Rect(), b.Mask()) {
		switch caps := pr.Kind.Capabilities(); {
		case caps.Collects:
			if !pr.Collectable() {
				continue
			}
			if pr.Walker != nil {
				pr.Walker.Remove()
				pr.Walker = nil
			}
			pr.Play(props.CollectEffect())
			ev.Rings++
			if p.Tally.CollectRing() {
				ev.ExtraLives++
			}
		case caps.Bounces:
			if b.SpeedY < 0 && b.Airborne {
				continue
			}
			p.spring(w.Tuning)
			pr.Triggered = true
			ev.Sprung = true
		case caps.Hostile:
			h := w.hit(p, true)
			if h.Defeated > 0 {
				w.Field.Remove(pr)
			}
			ev.Merge(h)
			if p.Dead {
				return ev
			}
		case caps.Finishes:
			if pr.Triggered {
				continue
			}
			pr.Triggered = true
			pr.Play(props.SpinEffect())
			w.goal = pr
			ev.Goal = true
		}
	}
	return ev
}

// hit applies one hostile contact. Only enemies (not shots) can be defeated;
// an attacking airborne player rebounds off them.
func (w *World) hit(p *Player, enemy bool) Events {
	var ev Events
	attacking := enemy && p.Attacking()
	switch props.ResolveHit(attacking, p.Invulnerable(), p.Tally.Rings) {
	case props.HitDefeat:
		p.Tally.DefeatEnemy()
		p.rebound(w.Tuning)
		ev.Defeated++
	case props.HitHurt:
		cx, cy := p.Center()
		n := p.Tally.LoseRings()
		w.Field.Scatter(w.Space, w.Rand, cx, cy, n)
		p.hurt(w.Tuning)
		ev.Hurt = true
		ev.Scattered = n
	case props.HitDie:
		p.die(w.Tuning, true)
		ev.Died = true
	}
	return ev
}
