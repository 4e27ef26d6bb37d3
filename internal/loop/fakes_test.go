package loop

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/tomz197/asteroid-avoidance/internal/draw"
	"github.com/tomz197/asteroid-avoidance/internal/input"
	"github.com/tomz197/asteroid-avoidance/internal/object"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

var errSaveFailed = errors.New("disk full")

// memoryStore is an in-memory HighScoreStore that can be told to fail.
type memoryStore struct {
	mu      sync.Mutex
	score   int
	saves   int
	loads   int
	failErr error
}

func (m *memoryStore) Load(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	return m.score, nil
}

func (m *memoryStore) Save(_ context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.failErr != nil {
		return m.failErr
	}
	m.score = max(m.score, score)
	return nil
}

// recordingAudio remembers every sound request.
type recordingAudio struct {
	played  []string
	music   bool
	started int
}

func (a *recordingAudio) Play(name string) { a.played = append(a.played, name) }
func (a *recordingAudio) StopMusic() { a.music = false }

func (a *recordingAudio) StartMusic() {
	a.music = true
	a.started++
}

func (a *recordingAudio) count(name string) int {
	n := 0
	for _, p := range a.played {
		if p == name {
			n++
		}
	}
	return n
}

type circleCall struct {
	cx, cy, radius float64
	color          draw.Color
	width          int
}

// recordingRenderer captures the draw calls of the last frame.
type recordingRenderer struct {
	frames  int
	sprites []string
	rects   []physics.Rect
	circles []circleCall
	texts   []string

	panicOnBegin bool
	endErr       error
}

func (r *recordingRenderer) Begin() error {
	if r.panicOnBegin {
		panic("renderer exploded")
	}
	r.sprites = r.sprites[:0]
	r.rects = r.rects[:0]
	r.circles = r.circles[:0]
	r.texts = r.texts[:0]
	return nil
}

func (r *recordingRenderer) Sprite(name string, rect physics.Rect) {
	r.sprites = append(r.sprites, name)
	r.rects = append(r.rects, rect)
}

func (r *recordingRenderer) Circle(cx, cy, radius float64, c draw.Color, width int) {
	r.circles = append(r.circles, circleCall{cx, cy, radius, c, width})
}

func (r *recordingRenderer) Text(s string, x, y float64, style draw.TextStyle) {
	r.texts = append(r.texts, s)
}

func (r *recordingRenderer) End() error {
	r.frames++
	return r.endErr
}

func (r *recordingRenderer) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

func (r *recordingRenderer) spriteCount(name string) int {
	n := 0
	for _, s := range r.sprites {
		if s == name {
			n++
		}
	}
	return n
}

// scriptedInput replays a fixed list of inputs, then repeats the fallback.
type scriptedInput struct {
	script   []input.Input
	fallback input.Input
}

func (s *scriptedInput) Poll() input.Input {
	if len(s.script) == 0 {
		return s.fallback
	}
	in := s.script[0]
	s.script = s.script[1:]
	return in
}

type fixture struct {
	state *State
	store *memoryStore
	audio *recordingAudio
}

// newFixture returns a state already in play with spawning suppressed.
func newFixture(t *testing.T, opts ...func(*Config)) *fixture {
	t.Helper()
	f := &fixture{store: &memoryStore{}, audio: &recordingAudio{}}
	cfg := Config{
		Rand:         rand.New(rand.NewSource(42)),
		Audio:        f.audio,
		Store:        f.store,
		MaxParticles: 1000,
	}
	for _, o := range opts {
		o(&cfg)
	}
	f.state = NewState(cfg)
	f.state.HandleInput(context.Background(), input.Input{Confirm: true})
	if f.state.Phase != PhasePlaying {
		t.Fatalf("phase after confirm = %v, want playing", f.state.Phase)
	}
	f.quiet()
	return f
}

// quiet pushes both spawn timers far enough back that nothing spawns.
func (f *fixture) quiet() {
	f.state.SpawnTimer = -1 << 30
	f.state.BossTimer = -1 << 30
}

func (f *fixture) tick(n int, in input.Input) {
	for i := 0; i < n; i++ {
		f.state.Tick(context.Background(), in)
	}
}

// countKind returns the number of alive entities of kind k in store.
func countKind(store *object.Store, k object.Kind) int {
	return len(store.Select(nil, func(got object.Kind) bool { return got == k }))
}
