package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names one of the game's sound effects.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueSuccess
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueSuccess:
		return "success"
	default:
		return "unknown"
	}
}

const (
	shootDuration   = 110 * time.Millisecond
	hitDuration     = 220 * time.Millisecond
	successNote1    = 90 * time.Millisecond
	successNote2    = 180 * time.Millisecond
	cueAttack       = 3 * time.Millisecond
	shootRelease    = 80 * time.Millisecond
	hitRelease      = 180 * time.Millisecond
	successRelease1 = 30 * time.Millisecond
	successRelease2 = 140 * time.Millisecond
)

// cueDuration is the longest a cue can run.
func cueDuration(c Cue) time.Duration {
	switch c {
	case CueShoot:
		return shootDuration
	case CueHit:
		return hitDuration
	default:
		return successNote1 + successNote2
	}
}

// Synthesize builds the streamer for a cue.
func Synthesize(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueShoot:
		// Falling square chirp over a short noise crack.
		return beep.Mix(
			gain(tone(900, 300, shootDuration, cueAttack, shootRelease, waveSquare, rate, 0), 0.3),
			gain(tone(0, 0, shootDuration/2, cueAttack, shootDuration/2, waveNoise, rate, 11), 0.25),
		)
	case CueHit:
		return beep.Mix(
			gain(tone(0, 0, hitDuration, cueAttack, hitRelease, waveNoise, rate, 23), 0.45),
			gain(tone(140, 60, hitDuration, cueAttack, hitRelease, waveSaw, rate, 0), 0.35),
		)
	default:
		// G5 then C6.
		return beep.Seq(
			gain(tone(783.99, 783.99, successNote1, cueAttack, successRelease1, waveSine, rate, 0), 0.5),
			gain(tone(1046.5, 1046.5, successNote2, cueAttack, successRelease2, waveSine, rate, 0), 0.5),
		)
	}
}

// RenderCue synthesizes c to PCM bytes at rate.
func RenderCue(c Cue, rate beep.SampleRate) []byte {
	return Render(Synthesize(c, rate), rate.N(cueDuration(c)))
}
