package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/asteroid-avoidance/internal/input"
)

// Input pumps tcell events into a key tracker.
type Input struct {
	keys    chan input.Key
	tracker *input.Tracker
	closed  bool
	now     func() time.Time
}

// StartInput starts a goroutine polling s for events. It ends when the
// screen is finalized, which reads as a quit.
func StartInput(s tcell.Screen) *Input {
	in := &Input{
		keys:    make(chan input.Key, 128),
		tracker: input.NewTracker(),
		now:     time.Now,
	}
	go func() {
		defer close(in.keys)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				for _, k := range keysFor(key) {
					in.keys <- k
				}
			}
		}
	}()
	return in
}

// Poll drains pending key events without blocking.
func (in *Input) Poll() input.Input {
	now := in.now()

drain:
	for {
		select {
		case k, ok := <-in.keys:
			if !ok {
				in.closed = true
				break drain
			}
			in.tracker.Press(k, now)
		default:
			break drain
		}
	}

	if in.closed {
		in.tracker.Press(input.KeyQuit, now)
	}
	return in.tracker.Snapshot(now)
}

// keysFor maps a tcell key event to game keys. Runes use the same bindings
// as the raw byte stream.
func keysFor(ev *tcell.EventKey) []input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return []input.Key{input.KeyLeft}
	case tcell.KeyRight:
		return []input.Key{input.KeyRight}
	case tcell.KeyUp:
		return []input.Key{input.KeyUp}
	case tcell.KeyDown:
		return []input.Key{input.KeyDown}
	case tcell.KeyEnter:
		return []input.Key{input.KeyConfirm}
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return []input.Key{input.KeyQuit}
	case tcell.KeyRune:
		return input.ParseKeys([]byte(string(ev.Rune())))
	}
	return nil
}
