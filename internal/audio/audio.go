// Package audio plays the game's sound effects and background loop through
// the system speaker.
package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/tomz197/asteroid-avoidance/internal/asset"
)

const sampleRate = beep.SampleRate(44100)

// Sound names. The first three match the effect names requested by the game.
const (
	Explosion        = "explosion"
	PointCollected   = "point_collected"
	PowerUpCollected = "powerup_collected"
	Music            = "background_music"
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

type synth func(beep.SampleRate, *rand.Rand) (beep.Streamer, error)

var synths = map[string]synth{
	Explosion:        explosionSound,
	PointCollected:   pointSound,
	PowerUpCollected: powerUpSound,
	Music:            musicSound,
}

// Bank holds every sound pre-rendered in memory and mixes them onto the
// speaker. Play and the music controls are safe to call from the game loop
// while the speaker goroutine is running.
type Bank struct {
	mu      sync.Mutex
	sounds  map[string]*beep.Buffer
	mixer   *beep.Mixer
	music   *beep.Ctrl
	started bool
	logger  *log.Logger
}

// Synthesize renders the built-in sounds. A nil rng is seeded from the clock.
func Synthesize(rng *rand.Rand, logger *log.Logger) (*Bank, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := newBank(logger)
	for name, fn := range synths {
		s, err := fn(sampleRate, rng)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", name, err)
		}
		b.sounds[name] = render(s)
	}
	return b, nil
}

// Load decodes <name>.wav or <name>.mp3 for every sound from dir. A sound
// with neither file fails with asset.ErrResourceMissing.
func Load(dir string, logger *log.Logger) (*Bank, error) {
	b := newBank(logger)
	for name := range synths {
		buf, err := loadFile(dir, name)
		if err != nil {
			return nil, err
		}
		b.sounds[name] = buf
	}
	return b, nil
}

func newBank(logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bank{
		sounds: make(map[string]*beep.Buffer),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

func render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

func loadFile(dir, name string) (*beep.Buffer, error) {
	for _, ext := range []string{".wav", ".mp3"} {
		path := filepath.Join(dir, name+ext)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open sound %s: %w", path, err)
		}

		var (
			stream beep.StreamSeekCloser
			fmtIn  beep.Format
		)
		if ext == ".wav" {
			stream, fmtIn, err = wav.Decode(f)
		} else {
			stream, fmtIn, err = mp3.Decode(f)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("decode sound %s: %w", path, err)
		}

		var s beep.Streamer = stream
		if fmtIn.SampleRate != sampleRate {
			s = beep.Resample(4, fmtIn.SampleRate, sampleRate, stream)
		}
		buf := render(s)
		stream.Close()
		return buf, nil
	}
	return nil, fmt.Errorf("%w: sound %s in %s", asset.ErrResourceMissing, name, dir)
}

// Start opens the speaker and begins mixing.
func (b *Bank) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.started = true
	return nil
}

// Close silences everything and releases the speaker.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.started = false
}

// Play mixes in one copy of the named sound. Unknown names are logged and
// ignored.
func (b *Bank) Play(name string) {
	buf, ok := b.sounds[name]
	if !ok {
		b.logger.Warn("unknown sound", "name", name)
		return
	}
	b.add(buf.Streamer(0, buf.Len()))
}

// StartMusic starts the background loop, or resumes it if paused.
func (b *Bank) StartMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.music != nil {
		b.setPaused(false)
		return
	}
	buf := b.sounds[Music]
	b.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	b.addLocked(b.music)
}

// StopMusic pauses the background loop.
func (b *Bank) StopMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.music != nil {
		b.setPaused(true)
	}
}

func (b *Bank) add(s beep.Streamer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.addLocked(s)
}

// addLocked hands s to the mixer, holding the speaker lock while the
// speaker goroutine may be reading it.
func (b *Bank) addLocked(s beep.Streamer) {
	if b.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	b.mixer.Add(s)
}

func (b *Bank) setPaused(paused bool) {
	if b.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	b.music.Paused = paused
}
