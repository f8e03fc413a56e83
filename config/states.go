package config

// StateID identifies a player animation state.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Walk
	Jog
	FastJog
	Run
	TopSpeed
	Jump
	SpringJump
	Rolling
	Crouch
	LookUp
	SpinDash
	Hurt
	Die
)

// StateToFileName names each state; the procedural sprite sheets are keyed by it.
var StateToFileName = map[StateID]string{
	Idle:       "idle",
	Walk:       "walk",
	Jog:        "jog",
	FastJog:    "fastjog",
	Run:        "run",
	TopSpeed:   "topspeed",
	Jump:       "jump",
	SpringJump: "springjump",
	Rolling:    "rolling",
	Crouch:     "crouch",
	LookUp:     "lookup",
	SpinDash:   "spindash",
	Hurt:       "hurt",
	Die:        "die",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}
