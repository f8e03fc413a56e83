package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:       {First: 0, Last: 0, Step: 1, Speed: 10},
		Walk:       {First: 0, Last: 3, Step: 1, Speed: 8},
		Jog:        {First: 0, Last: 3, Step: 1, Speed: 6},
		FastJog:    {First: 0, Last: 3, Step: 1, Speed: 5},
		Run:        {First: 0, Last: 3, Step: 1, Speed: 4},
		TopSpeed:   {First: 0, Last: 3, Step: 1, Speed: 2},
		Jump:       {First: 0, Last: 3, Step: 1, Speed: 2},
		SpringJump: {First: 0, Last: 1, Step: 1, Speed: 6},
		Rolling:    {First: 0, Last: 3, Step: 1, Speed: 2},
		Crouch:     {First: 0, Last: 0, Step: 1, Speed: 10},
		LookUp:     {First: 0, Last: 0, Step: 1, Speed: 10},
		SpinDash:   {First: 0, Last: 3, Step: 1, Speed: 1},
		Hurt:       {First: 0, Last: 1, Step: 1, Speed: 8},
		Die:        {First: 0, Last: 0, Step: 1, Speed: 10},
	},
}
