package config

// SoundID identifies a sound effect
type SoundID int

const (
	SoundRing SoundID = iota
	SoundJump
	SoundSpring
	SoundSpinDash
	SoundHurt
	SoundDefeat
	SoundDeath
	SoundExtraLife
	SoundGoal
	SoundShot
)

// Waveform shapes a synthesized tone
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveNoise
)

// ToneDef describes a synthesized sound effect. The pitch slides from
// Freq to EndFreq over Duration seconds; Notes > 1 splits it into repeated
// blips.
type ToneDef struct {
	Wave     Waveform
	Freq     float64
	EndFreq  float64
	Duration float64
	Notes    int
	Volume   float64
}

// AudioConfig contains audio settings
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]ToneDef
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
		Tones: map[SoundID]ToneDef{
			SoundRing:      {Wave: WaveSquare, Freq: 1320, EndFreq: 1760, Duration: 0.12, Notes: 2, Volume: 0.5},
			SoundJump:      {Wave: WaveSquare, Freq: 300, EndFreq: 700, Duration: 0.15, Volume: 0.4},
			SoundSpring:    {Wave: WaveTriangle, Freq: 200, EndFreq: 1200, Duration: 0.25, Volume: 0.7},
			SoundSpinDash:  {Wave: WaveSquare, Freq: 500, EndFreq: 900, Duration: 0.1, Volume: 0.35},
			SoundHurt:      {Wave: WaveNoise, Freq: 800, EndFreq: 200, Duration: 0.35, Volume: 0.6},
			SoundDefeat:    {Wave: WaveNoise, Freq: 1200, EndFreq: 100, Duration: 0.3, Volume: 0.6},
			SoundDeath:     {Wave: WaveTriangle, Freq: 600, EndFreq: 80, Duration: 0.8, Volume: 0.7},
			SoundExtraLife: {Wave: WaveSquare, Freq: 660, EndFreq: 1320, Duration: 0.6, Notes: 4, Volume: 0.5},
			SoundGoal:      {Wave: WaveTriangle, Freq: 440, EndFreq: 880, Duration: 0.5, Notes: 3, Volume: 0.6},
			SoundShot:      {Wave: WaveSquare, Freq: 900, EndFreq: 400, Duration: 0.08, Volume: 0.25},
		},
	}
}
