// Package props holds the level's non-terrain objects: rings, springs, the
// goal post, enemies and the rings scattered when the player is hurt. A prop
// is a tagged variant; what it does on contact comes from its Kind's
// capability table rather than from a type hierarchy.
package props

import "github.com/automoto/ringrush/shared/leveldata"

// Kind tags a prop variant.
type Kind int

const (
	KindRing Kind = iota
	KindSpring
	KindGoal
	KindEnemy
	KindScatteredRing
)

var kindNames = [...]string{
	KindRing:          "ring",
	KindSpring:        "spring",
	KindGoal:          "goal",
	KindEnemy:         "enemy",
	KindScatteredRing: "scattered-ring",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Capabilities describe how a prop kind reacts to the player.
type Capabilities struct {
	Animates bool // cycles idle frames
	Collects bool // removed on touch for a ring
	Bounces  bool // launches the player with a spring jump
	Finishes bool // ends the level
	Hostile  bool // hurts the player unless attacked
	Walks    bool // moves as a walker against terrain
	Expires  bool // removed after a lifetime
}

var capabilities = map[Kind]Capabilities{
	KindRing:          {Animates: true, Collects: true},
	KindSpring:        {Bounces: true},
	KindGoal:          {Finishes: true},
	KindEnemy:         {Animates: true, Hostile: true, Walks: true},
	KindScatteredRing: {Animates: true, Collects: true, Walks: true, Expires: true},
}

// Capabilities returns the kind's capability set. Unknown kinds have none.
func (k Kind) Capabilities() Capabilities {
	return capabilities[k]
}

// KindOf maps a level object kind to a prop kind. The start marker is not a
// prop.
func KindOf(levelKind string) (Kind, bool) {
	switch levelKind {
	case leveldata.KindRing:
		return KindRing, true
	case leveldata.KindSpring:
		return KindSpring, true
	case leveldata.KindGoal:
		return KindGoal, true
	case leveldata.KindEnemy:
		return KindEnemy, true
	}
	return 0, false
}
