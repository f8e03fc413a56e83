package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/automoto/ringrush/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // 16-bit stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a
// player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) bool {
	if _, ok := l.sfxCache[id]; ok {
		return true
	}
	def, ok := config.Audio.Tones[id]
	if !ok {
		return false
	}
	l.sfxCache[id] = SynthesizeTone(def, l.context.SampleRate())
	return true
}

// LoadSFX returns a new player for a sound effect, or nil for unknown sounds.
func (l *AudioLoader) LoadSFX(id config.SoundID) *audio.Player {
	if !l.PreloadSFX(id) {
		return nil
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id])
}

// SynthesizeTone renders def as 16-bit little-endian stereo PCM.
func SynthesizeTone(def config.ToneDef, sampleRate int) []byte {
	n := int(def.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	notes := max(def.Notes, 1)
	noteLen := max(n/notes, 1)
	noise := rand.New(rand.NewPCG(uint64(def.Freq), uint64(def.EndFreq)))

	out := make([]byte, n*4)
	var phase, held float64
	for i := range n {
		t := float64(i) / float64(n)
		freq := def.Freq + (def.EndFreq-def.Freq)*t
		if notes > 1 {
			// stepped pitch, one step per note
			step := float64(min(i/noteLen, notes-1)) / float64(notes-1)
			freq = def.Freq + (def.EndFreq-def.Freq)*step
		}
		prev := phase
		phase = math.Mod(phase+freq/float64(sampleRate), 1)

		var v float64
		switch def.Wave {
		case config.WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case config.WaveTriangle:
			v = 4*math.Abs(phase-0.5) - 1
		case config.WaveNoise:
			if phase < prev {
				held = noise.Float64()*2 - 1
			}
			v = held
		}

		// Each note fades out; the last few samples ramp to silence.
		env := 1 - float64(i%noteLen)/float64(noteLen)
		env = min(env, float64(n-1-i)/64)
		s := int16(v * env * def.Volume * math.MaxInt16 * 0.5)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
