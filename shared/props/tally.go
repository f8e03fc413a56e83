package props

import "time"

// Scoring.
const (
	RingScore  = 100
	EnemyScore = 1000
	// LifeEvery rings collected award an extra life.
	LifeEvery = 100
)

// Time bonus thresholds and awards.
const (
	FastTime   = 30 * time.Second
	MediumTime = 60 * time.Second

	FastBonus   = 50000
	MediumBonus = 25000
	SlowBonus   = 5000
)

// Tally is the player's running count of rings, score and lives.
type Tally struct {
	Rings int
	Score int
	Lives int
}

// CollectRing adds a ring and its score. It reports whether the ring count
// reached a multiple of LifeEvery, which awards an extra life.
func (t *Tally) CollectRing() bool {
	t.Rings++
	t.Score += RingScore
	if t.Rings%LifeEvery == 0 {
		t.Lives++
		return true
	}
	return false
}

// DefeatEnemy adds the enemy score.
func (t *Tally) DefeatEnemy() {
	t.Score += EnemyScore
}

// LoseRings empties the ring count and returns how many rings scatter.
func (t *Tally) LoseRings() int {
	n := min(t.Rings, ScatterMax)
	t.Rings = 0
	return n
}

// LoseLife takes a life and reports whether any remain.
func (t *Tally) LoseLife() bool {
	t.Lives = max(t.Lives-1, 0)
	return t.Lives > 0
}

// TimeBonus is the level-complete award for finishing within elapsed.
func TimeBonus(elapsed time.Duration) int {
	switch {
	case elapsed < FastTime:
		return FastBonus
	case elapsed < MediumTime:
		return MediumBonus
	}
	return SlowBonus
}

// FinalScore is the level-complete total: ring bonus, time bonus and score.
func (t Tally) FinalScore(elapsed time.Duration) int {
	return t.Rings*RingScore + TimeBonus(elapsed) + t.Score
}

// Hit is the outcome of the player touching something hostile.
type Hit int

const (
	HitNone Hit = iota
	// HitDefeat destroys the enemy; the player was attacking.
	HitDefeat
	// HitHurt costs the player its rings.
	HitHurt
	// HitDie costs the player a life.
	HitDie
)

// ResolveHit decides a contact between the player and a hostile. Jumping,
// rolling and homing players defeat enemies; otherwise a player holding rings
// is hurt and one without dies. Hurt or dead players are untouchable.
func ResolveHit(attacking, invulnerable bool, rings int) Hit {
	switch {
	case invulnerable:
		return HitNone
	case attacking:
		return HitDefeat
	case rings > 0:
		return HitHurt
	}
	return HitDie
}
