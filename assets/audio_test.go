package assets

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/ringrush/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeTone(t *testing.T) {
	for id, def := range config.Audio.Tones {
		pcm := SynthesizeTone(def, 44100)
		require.Len(t, pcm, int(def.Duration*44100)*4, "sound %d", id)

		var loud bool
		for i := 0; i < len(pcm); i += 4 {
			l := int16(binary.LittleEndian.Uint16(pcm[i:]))
			r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
			assert.Equal(t, l, r, "sound %d is mono", id)
			loud = loud || l != 0
		}
		assert.True(t, loud, "sound %d is silent", id)
	}
}

func TestSynthesizeTone_Empty(t *testing.T) {
	assert.Nil(t, SynthesizeTone(config.ToneDef{Freq: 440}, 44100))
}

func TestSynthesizeTone_FadesOut(t *testing.T) {
	pcm := SynthesizeTone(config.ToneDef{Wave: config.WaveSquare, Freq: 440, EndFreq: 440, Duration: 0.1, Volume: 1}, 44100)
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.Zero(t, last)
}
