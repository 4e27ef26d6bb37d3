// Package input turns raw key presses into per-frame input snapshots.
package input

import (
	"io"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses, so holding relies on key repeat.
const keyHoldDuration = 60 * time.Millisecond

// Key is a logical game key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyShoot
	KeyPause
	KeyRestart
	KeyConfirm
	KeyEasy
	KeyNormal
	KeyHard
	KeyControls
	KeyQuit
	numKeys
)

var keyNames = [...]string{
	KeyNone:     "none",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyShoot:    "shoot",
	KeyPause:    "pause",
	KeyRestart:  "restart",
	KeyConfirm:  "confirm",
	KeyEasy:     "easy",
	KeyNormal:   "normal",
	KeyHard:     "hard",
	KeyControls: "controls",
	KeyQuit:     "quit",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Input represents the current frame's input state.
// Movement and Shoot are level-triggered; the rest fire once per press.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Shoot bool

	Pause          bool
	Restart        bool
	Confirm        bool
	ToggleControls bool
	Quit           bool
	Difficulty     int // 1 easy, 2 normal, 3 hard, 0 if none pressed

	Pressed []Key // Keys pressed since the previous poll, in order
}

// DX returns the horizontal direction: -1, 0 or 1.
func (in Input) DX() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}

// DY returns the vertical direction: -1, 0 or 1.
func (in Input) DY() int {
	switch {
	case in.Up && !in.Down:
		return -1
	case in.Down && !in.Up:
		return 1
	}
	return 0
}

// Tracker records key presses and builds snapshots from them.
// It is safe for concurrent use, so event pumps can feed it directly.
type Tracker struct {
	mu      sync.Mutex
	last    [numKeys]time.Time
	pending []Key
	hold    time.Duration
}

// NewTracker creates a tracker with the default hold window.
func NewTracker() *Tracker {
	return &Tracker{hold: keyHoldDuration}
}

// Press records a key press at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k <= KeyNone || k >= numKeys {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last[k] = now
	t.pending = append(t.pending, k)
}

// Snapshot builds the input for the frame at now and consumes pending presses.
func (t *Tracker) Snapshot(now time.Time) Input {
	t.mu.Lock()
	defer t.mu.Unlock()

	held := func(k Key) bool {
		return !t.last[k].IsZero() && now.Sub(t.last[k]) < t.hold
	}
	in := Input{
		Left:  held(KeyLeft),
		Right: held(KeyRight),
		Up:    held(KeyUp),
		Down:  held(KeyDown),
		Shoot: held(KeyShoot),
	}

	if len(t.pending) > 0 {
		in.Pressed = make([]Key, len(t.pending))
		copy(in.Pressed, t.pending)
		t.pending = t.pending[:0]
	}
	for _, k := range in.Pressed {
		switch k {
		case KeyPause:
			in.Pause = true
		case KeyRestart:
			in.Restart = true
		case KeyConfirm:
			in.Confirm = true
		case KeyControls:
			in.ToggleControls = true
		case KeyQuit:
			in.Quit = true
		case KeyEasy:
			in.Difficulty = 1
		case KeyNormal:
			in.Difficulty = 2
		case KeyHard:
			in.Difficulty = 3
		}
	}
	return in
}

// Reset forgets all held and pending keys.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = [numKeys]time.Time{}
	t.pending = t.pending[:0]
}

// Stream delivers input bytes from a reader via a channel and tracks key state.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	stop    sync.Once
	tracker *Tracker
	closed  bool
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// A read error (e.g. the SSH session closing) is reported as a quit press.
// Call Close once the stream is no longer polled.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		done:    make(chan struct{}),
		tracker: NewTracker(),
		now:     time.Now,
	}
	go func() {
		defer close(s.ch)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				select {
				case s.ch <- b:
				case <-s.done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// Close stops delivery. The reader goroutine exits on its next byte or
// read error instead of blocking on a full buffer.
func (s *Stream) Close() {
	s.stop.Do(func() { close(s.done) })
}

// Poll drains all available bytes (non-blocking) and returns the frame's input.
func (s *Stream) Poll() Input {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for _, k := range ParseKeys(buf) {
		s.tracker.Press(k, now)
	}
	if s.closed {
		s.tracker.Press(KeyQuit, now)
	}
	return s.tracker.Snapshot(now)
}

// ParseKeys maps raw terminal bytes to keys, decoding CSI arrow sequences.
// Unknown bytes are dropped.
func ParseKeys(buf []byte) []Key {
	var keys []Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			var k Key
			switch buf[i+2] {
			case 'A':
				k = KeyUp
			case 'B':
				k = KeyDown
			case 'C':
				k = KeyRight
			case 'D':
				k = KeyLeft
			}
			if k != KeyNone {
				keys = append(keys, k)
				i += 2
				continue
			}
		}

		if k := keyForByte(b); k != KeyNone {
			keys = append(keys, k)
		}
	}
	return keys
}

func keyForByte(b byte) Key {
	switch b {
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case ' ':
		return KeyShoot
	case 'p', 'P':
		return KeyPause
	case 'r', 'R':
		return KeyRestart
	case '\n', '\r':
		return KeyConfirm
	case '1':
		return KeyEasy
	case '2':
		return KeyNormal
	case '3':
		return KeyHard
	case '4':
		return KeyControls
	case 'q', 'Q', '\x03':
		return KeyQuit
	}
	return KeyNone
}
