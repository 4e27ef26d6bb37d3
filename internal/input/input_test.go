package input

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{"application mode arrows", "\x1bOD", []Key{KeyLeft}},
		{"game keys", " pr\r", []Key{KeyShoot, KeyPause, KeyRestart, KeyConfirm}},
		{"menu keys", "1234", []Key{KeyEasy, KeyNormal, KeyHard, KeyControls}},
		{"quit", "q\x03", []Key{KeyQuit, KeyQuit}},
		{"unknown bytes dropped", "zx\x1b", nil},
		{"lone escape before key", "\x1bp", []Key{KeyPause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseKeys([]byte(tt.in)); !slices.Equal(got, tt.want) {
				t.Errorf("ParseKeys(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrackerHoldWindow(t *testing.T) {
	tr := NewTracker()
	start := time.Unix(100, 0)

	tr.Press(KeyLeft, start)
	tr.Press(KeyShoot, start)

	in := tr.Snapshot(start.Add(10 * time.Millisecond))
	if !in.Left || !in.Shoot || in.Right {
		t.Fatalf("snapshot within hold window = %+v", in)
	}
	if in.DX() != -1 || in.DY() != 0 {
		t.Errorf("direction = (%d,%d), want (-1,0)", in.DX(), in.DY())
	}

	in = tr.Snapshot(start.Add(keyHoldDuration))
	if in.Left || in.Shoot {
		t.Errorf("keys still held after hold window: %+v", in)
	}
}

func TestTrackerEdgesFireOnce(t *testing.T) {
	tr := NewTracker()
	now := time.Unix(100, 0)

	tr.Press(KeyPause, now)
	tr.Press(KeyHard, now)
	tr.Press(KeyControls, now)

	in := tr.Snapshot(now)
	if !in.Pause || in.Difficulty != 3 || !in.ToggleControls {
		t.Fatalf("edge events missing: %+v", in)
	}
	if len(in.Pressed) != 3 {
		t.Errorf("Pressed = %v, want 3 keys", in.Pressed)
	}

	in = tr.Snapshot(now)
	if in.Pause || in.Difficulty != 0 || in.ToggleControls || len(in.Pressed) != 0 {
		t.Errorf("edge events repeated: %+v", in)
	}
}

func TestOpposingDirectionsCancel(t *testing.T) {
	in := Input{Left: true, Right: true, Up: true}
	if in.DX() != 0 || in.DY() != -1 {
		t.Errorf("direction = (%d,%d), want (0,-1)", in.DX(), in.DY())
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	now := time.Unix(100, 0)
	tr.Press(KeyRight, now)
	tr.Press(KeyQuit, now)
	tr.Reset()

	if in := tr.Snapshot(now); in.Right || in.Quit {
		t.Errorf("input survived Reset: %+v", in)
	}
}

func TestStreamReportsQuitOnEOF(t *testing.T) {
	s := StartStream(strings.NewReader("p"))

	deadline := time.Now().Add(time.Second)
	var pressed []Key
	for time.Now().Before(deadline) {
		in := s.Poll()
		pressed = append(pressed, in.Pressed...)
		if in.Quit {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if !slices.Contains(pressed, KeyPause) || !slices.Contains(pressed, KeyQuit) {
		t.Errorf("pressed = %v, want pause then quit", pressed)
	}
}

func TestStreamCloseReleasesReader(t *testing.T) {
	s := StartStream(endlessReader{})
	s.Close()

	timeout := time.After(time.Second)
	for open := true; open; {
		select {
		case _, open = <-s.ch:
		case <-timeout:
			t.Fatal("reader still sending after Close")
		}
	}
	if !s.Poll().Quit {
		t.Error("closed stream should report quit")
	}
}

// endlessReader never runs out of key presses.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'p'
	}
	return len(p), nil
}
