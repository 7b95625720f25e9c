package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator is a fixed-length tone. glide is the frequency at the end of the
// tone; the pitch moves linearly between the two.
type oscillator struct {
	freq, glide float64
	phase       float64
	total       int
	position    int
	wave        waveform
	rate        beep.SampleRate
	rng         *rand.Rand
}

func newOscillator(freq, glide float64, d time.Duration, wave waveform, rate beep.SampleRate, seed int64) beep.Streamer {
	return &oscillator{
		freq:  freq,
		glide: glide,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- noise timbre only
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.total)
		f := o.freq + (o.glide-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a stream linearly. Zero or less is silence.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an oscillator shaped by an envelope of the same length.
func tone(freq, glide float64, d, attack, release time.Duration, wave waveform, rate beep.SampleRate, seed int64) beep.Streamer {
	return newEnvelope(newOscillator(freq, glide, d, wave, rate, seed), d, attack, release, rate)
}

// Render drains s into interleaved signed 16-bit little-endian stereo PCM,
// stopping after maxSamples frames.
func Render(s beep.Streamer, maxSamples int) []byte {
	out := make([]byte, 0, maxSamples*4)
	buf := make([][2]float64, 512)
	s = beep.Take(maxSamples, s)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := int16(math.Max(-1, math.Min(1, buf[i][c])) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok {
			break
		}
	}
	return out
}
