package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// noiseBurst is white noise under an exponential decay with a low rumble.
func noiseBurst(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-t * 10)
			v := env * (0.6*(rng.Float64()*2-1) + 0.4*math.Sin(2*math.Pi*60*t))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// fade scales s linearly from full volume to silence over n samples and
// ends the stream there.
func fade(s beep.Streamer, n int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		if len(samples) > n-pos {
			samples = samples[:n-pos]
		}
		got, ok := s.Stream(samples)
		for i := 0; i < got; i++ {
			gain := 1 - float64(pos)/float64(n)
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return got, ok || got > 0
	})
}

// tone plays a note of the given wave for d and fades it out.
func tone(sr beep.SampleRate, freq float64, d time.Duration, square bool) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	if square {
		s, err = generators.SquareTone(sr, freq)
	} else {
		s, err = generators.SineTone(sr, freq)
	}
	if err != nil {
		return nil, err
	}
	return fade(s, sr.N(d)), nil
}

func volume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// explosionSound is a short noise burst.
func explosionSound(sr beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	return volume(noiseBurst(sr, 400*time.Millisecond, rng), 0.5), nil
}

// pointSound is a two-note coin chime.
func pointSound(sr beep.SampleRate, _ *rand.Rand) (beep.Streamer, error) {
	low, err := tone(sr, 987.77, 60*time.Millisecond, true)
	if err != nil {
		return nil, err
	}
	high, err := tone(sr, 1318.51, 160*time.Millisecond, true)
	if err != nil {
		return nil, err
	}
	return volume(beep.Seq(low, high), 0.15), nil
}

// powerUpSound is a rising major arpeggio.
func powerUpSound(sr beep.SampleRate, _ *rand.Rand) (beep.Streamer, error) {
	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 659.25, 783.99, 1046.5} {
		n, err := tone(sr, freq, 80*time.Millisecond, false)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return volume(beep.Seq(notes...), 0.3), nil
}

// bassLine is the note sequence of the background loop, one note per beat.
var bassLine = []float64{110, 110, 130.81, 98, 110, 110, 146.83, 130.81}

const beat = 300 * time.Millisecond

// musicSound renders one pass of the background loop.
func musicSound(sr beep.SampleRate, _ *rand.Rand) (beep.Streamer, error) {
	var notes []beep.Streamer
	for _, freq := range bassLine {
		n, err := tone(sr, freq, beat, true)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return volume(beep.Seq(notes...), 0.08), nil
}
