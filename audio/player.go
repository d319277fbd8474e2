// Package audio decodes the bundled sound files into memory and plays them
// through the system speaker. A machine without an audio device still runs
// the timer; Play then reports ErrAudioDisabled.
package audio

import (
	"io"
	"log"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

var (
	// ErrAudioDisabled is returned by Play when the speaker is not available.
	ErrAudioDisabled = errors.New("audio disabled")
	// ErrNotLoaded is returned by Play for a sound that was never loaded.
	ErrNotLoaded = errors.New("sound not loaded")
)

// Player holds decoded sounds keyed by file name.
type Player struct {
	mu          sync.Mutex
	buffers     map[string]*beep.Buffer
	initialized bool
}

// NewPlayer creates a player with no sounds and no speaker.
func NewPlayer() *Player {
	return &Player{buffers: make(map[string]*beep.Buffer)}
}

// Init opens the speaker. Calling it again after a success does nothing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "initialize speaker")
	}
	p.initialized = true
	return nil
}

// Load decodes a .wav or .ogg stream into memory under name. rc is closed.
func (p *Player) Load(name string, rc io.ReadCloser) error {
	defer rc.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(rc)
	case ".ogg":
		streamer, format, err = vorbis.Decode(rc)
	default:
		return errors.Errorf("unsupported sound format %q", ext)
	}
	if err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	buffer.Append(src)

	p.mu.Lock()
	p.buffers[name] = buffer
	p.mu.Unlock()

	log.Printf("Loaded sound %s (%v)", name, sampleRate.D(buffer.Len()).Round(time.Millisecond))
	return nil
}

// Duration returns the playing time of a loaded sound, or zero.
func (p *Player) Duration(name string) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.buffers[name]
	if !ok {
		return 0
	}
	return sampleRate.D(b.Len())
}

// Play starts a loaded sound and returns without waiting for it to finish.
func (p *Player) Play(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.buffers[name]
	if !ok {
		return errors.Wrap(ErrNotLoaded, name)
	}
	if !p.initialized {
		return ErrAudioDisabled
	}

	speaker.Play(b.Streamer(0, b.Len()))
	return nil
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Clear()
	}
}
