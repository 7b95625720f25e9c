package audio

import (
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// Player plays the synthesized cues through an ebiten audio context. A nil
// context gives a player that tracks mute and volume but stays silent.
type Player struct {
	ctx    *audio.Context
	pcm    map[Cue][]byte
	volume float64
	muted  bool
	played map[Cue]int
	log    zerolog.Logger
}

// NewPlayer pre-renders every cue at the context's sample rate.
func NewPlayer(ctx *audio.Context, sampleRate int, volume float64, log zerolog.Logger) *Player {
	if ctx != nil {
		sampleRate = ctx.SampleRate()
	}
	rate := beep.SampleRate(sampleRate)
	p := &Player{
		ctx:    ctx,
		pcm:    make(map[Cue][]byte, 3),
		volume: volume,
		played: make(map[Cue]int, 3),
		log:    log,
	}
	for _, c := range []Cue{CueShoot, CueHit, CueSuccess} {
		p.pcm[c] = RenderCue(c, rate)
	}
	log.Debug().Int("sampleRate", sampleRate).Msg("audio cues rendered")
	return p
}

func (p *Player) PlayShoot()   { p.play(CueShoot) }
func (p *Player) PlayHit()     { p.play(CueHit) }
func (p *Player) PlaySuccess() { p.play(CueSuccess) }

func (p *Player) play(c Cue) {
	if p.muted {
		return
	}
	p.played[c]++
	if p.ctx == nil {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(p.pcm[c])
	pl.SetVolume(p.volume)
	pl.Play()
}

// ToggleMute flips the mute flag and returns the new state.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	p.log.Info().Bool("muted", p.muted).Msg("audio mute toggled")
	return p.muted
}

func (p *Player) SetMuted(m bool) { p.muted = m }
func (p *Player) Muted() bool     { return p.muted }

// Played reports how many times c has been started since construction.
func (p *Player) Played(c Cue) int { return p.played[c] }
