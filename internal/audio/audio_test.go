package audio

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/tomz197/asteroid-avoidance/internal/asset"
)

func TestSynthesizeRendersEverySound(t *testing.T) {
	b, err := Synthesize(rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	for _, name := range []string{Explosion, PointCollected, PowerUpCollected, Music} {
		buf, ok := b.sounds[name]
		if !ok {
			t.Errorf("%s: missing", name)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("%s: empty buffer", name)
		}
	}

	want := len(bassLine) * sampleRate.N(beat)
	if got := b.sounds[Music].Len(); got != want {
		t.Errorf("music length = %d samples, want %d", got, want)
	}
}

func TestSynthesizedSamplesInRange(t *testing.T) {
	b, err := Synthesize(rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatal(err)
	}
	for name, buf := range b.sounds {
		s := buf.Streamer(0, buf.Len())
		samples := make([][2]float64, 512)
		for {
			n, ok := s.Stream(samples)
			for _, v := range samples[:n] {
				if v[0] < -1 || v[0] > 1 {
					t.Fatalf("%s: sample %f out of range", name, v[0])
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestFadeEndsStream(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	s := fade(src, 100)

	samples := make([][2]float64, 64)
	total := 0
	for {
		n, ok := s.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	if total != 100 {
		t.Errorf("streamed %d samples, want 100", total)
	}
}

func TestPlayAddsToMixer(t *testing.T) {
	b, err := Synthesize(rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatal(err)
	}

	b.Play(Explosion)
	b.Play(PointCollected)
	b.Play("no_such_sound")
	if got := b.mixer.Len(); got != 2 {
		t.Errorf("mixer has %d streamers, want 2", got)
	}

	b.StartMusic()
	if b.music == nil || b.music.Paused {
		t.Fatal("music not playing")
	}
	b.StopMusic()
	if !b.music.Paused {
		t.Error("music not paused")
	}
	b.StartMusic()
	if b.music.Paused || b.mixer.Len() != 3 {
		t.Errorf("music resume: paused=%v mixer=%d", b.music.Paused, b.mixer.Len())
	}
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{Explosion, PointCollected, PowerUpCollected, Music} {
		writeTone(t, filepath.Join(dir, name+".wav"))
	}

	b, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.sounds[Explosion].Len() == 0 {
		t.Error("decoded sound is empty")
	}
}

func TestLoadMissingSound(t *testing.T) {
	dir := t.TempDir()
	writeTone(t, filepath.Join(dir, Explosion+".wav"))

	_, err := Load(dir, nil)
	if !errors.Is(err, asset.ErrResourceMissing) {
		t.Errorf("Load error = %v, want ErrResourceMissing", err)
	}
}

func writeTone(t *testing.T, path string) {
	t.Helper()
	s, err := tone(sampleRate, 440, 20*time.Millisecond, false)
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := wav.Encode(f, s, format); err != nil {
		t.Fatal(err)
	}
}
