package audio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSilence(t *testing.T, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "silence.wav")
	f, err := os.Create(p)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(rate.N(d)), format))
	return p
}

func TestLoadWav(t *testing.T) {
	for _, rate := range []beep.SampleRate{8000, sampleRate} {
		p := NewPlayer()
		f, err := os.Open(writeSilence(t, rate, 200*time.Millisecond))
		require.NoError(t, err)

		require.NoError(t, p.Load("silence.wav", f))
		assert.InDelta(t, float64(200*time.Millisecond), float64(p.Duration("silence.wav")), float64(10*time.Millisecond), "rate %d", rate)
	}
}

func TestLoadBundledAlarm(t *testing.T) {
	f, err := os.Open("../assets/alarm.wav")
	require.NoError(t, err)

	p := NewPlayer()
	require.NoError(t, p.Load("alarm.wav", f))
	assert.Greater(t, p.Duration("alarm.wav"), 500*time.Millisecond)
}

func TestLoadErrors(t *testing.T) {
	p := NewPlayer()
	assert.Error(t, p.Load("alarm.mp3", io.NopCloser(strings.NewReader(""))))
	assert.Error(t, p.Load("alarm.wav", io.NopCloser(strings.NewReader("not a wave file"))))
	assert.Zero(t, p.Duration("alarm.wav"))
}

// Play must never panic or block when the speaker was not opened.
func TestPlayWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	assert.ErrorIs(t, p.Play("alarm.wav"), ErrNotLoaded)

	f, err := os.Open(writeSilence(t, sampleRate, 50*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, p.Load("alarm.wav", f))

	assert.ErrorIs(t, p.Play("alarm.wav"), ErrAudioDisabled)
	p.Close()
}
