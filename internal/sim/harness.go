package sim

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

// HeadlessSim drives a Scene without a window. It mirrors Game.Update but
// takes controls from a Pilot and records every event into SimLog. Tests
// and the headless report use it.
type HeadlessSim struct {
	Store  *Store
	Scene  *Scene
	SimLog *SimLog
	Frame  int

	team   string
	dt     float64
	seed   int64
	tuning Tuning
	path   FlightPath
	skins  SkinPicker
	pilot  Pilot
	log    zerolog.Logger

	tally Tally
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, tuning, logging, verbose: applied first
	simOptWorld                      // flight path, skins, pilot: applied once tuning is final
)

// SimOption is a builder function applied to a HeadlessSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*HeadlessSim)
}

// WithSeed sets the RNG seed for enemy fire and enemy skins.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) { hs.seed = seed }}
}

// WithTuning replaces the default constants.
func WithTuning(tu Tuning) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) { hs.tuning = tu }}
}

// WithFrameDelta sets the fixed dt in seconds.
func WithFrameDelta(dt float64) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) { hs.dt = dt }}
}

// WithVerbose enables per-frame flight logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) { hs.SimLog = NewSimLog(v) }}
}

// WithLogger routes store and scene logging to l.
func WithLogger(l zerolog.Logger) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) { hs.log = l }}
}

// WithTeam picks the team the sortie starts with.
func WithTeam(id string) SimOption {
	return SimOption{simOptWorld, func(hs *HeadlessSim) { hs.team = id }}
}

// WithPath overrides the enemy flight path.
func WithPath(p FlightPath) SimOption {
	return SimOption{simOptWorld, func(hs *HeadlessSim) { hs.path = p }}
}

// WithSkinPicker overrides enemy skin selection.
func WithSkinPicker(p SkinPicker) SimOption {
	return SimOption{simOptWorld, func(hs *HeadlessSim) { hs.skins = p }}
}

// WithPilot sets who flies the player aircraft. Defaults to an Autopilot.
func WithPilot(p Pilot) SimOption {
	return SimOption{simOptWorld, func(hs *HeadlessSim) { hs.pilot = p }}
}

// NewHeadlessSim builds the store and scene and starts a sortie. Options are
// applied in two passes so world options see the final tuning.
func NewHeadlessSim(opts ...SimOption) *HeadlessSim {
	hs := &HeadlessSim{
		team:   Roster[0].ID,
		dt:     1.0 / 60,
		seed:   1,
		tuning: DefaultTuning(),
		SimLog: NewSimLog(false),
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(hs)
		}
	}
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(hs)
		}
	}

	if hs.skins == nil {
		hs.skins = RandomSkins(rand.New(rand.NewSource(hs.seed))) // #nosec G404 -- test harness
	}
	if hs.pilot == nil {
		hs.pilot = NewAutopilot(hs.tuning)
	}
	hs.Store = NewStore(hs.tuning, WithSkins(hs.skins), WithStoreLogger(hs.log))

	sceneOpts := []SceneOption{
		WithRand(rand.New(rand.NewSource(hs.seed + 1))), // #nosec G404 -- test harness
		WithSceneLogger(hs.log),
	}
	if hs.path != nil {
		sceneOpts = append(sceneOpts, WithFlightPath(hs.path))
	}
	hs.Scene = NewScene(hs.Store, sceneOpts...)
	hs.Scene.Begin(hs.team)
	return hs
}

// Done reports whether the sortie has ended.
func (hs *HeadlessSim) Done() bool {
	return hs.Store.Phase() != PhasePlaying
}

// RunFrames advances up to n frames, stopping early once the sortie ends.
func (hs *HeadlessSim) RunFrames(n int) {
	for i := 0; i < n && !hs.Done(); i++ {
		hs.step()
	}
}

// RunUntil advances up to maxFrames, stopping early if predicate returns true.
// Returns the frame at which the predicate was satisfied, or -1.
func (hs *HeadlessSim) RunUntil(predicate func(*HeadlessSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames && !hs.Done(); i++ {
		hs.step()
		if predicate(hs) {
			return hs.Frame
		}
	}
	return -1
}

func (hs *HeadlessSim) step() {
	view := PilotView{
		Frame:   hs.Frame,
		Elapsed: hs.Scene.Elapsed(),
		Player:  hs.Store.Player(),
		Targets: hs.Scene.Targets(),
	}
	controls := hs.pilot.Fly(view)
	events := hs.Scene.Frame(hs.dt, controls)
	hs.Frame = hs.Scene.FrameCount()

	for _, ev := range events {
		hs.SimLog.RecordEvent(hs.Frame, ev)
		hs.tally.Count(ev)
	}

	if hs.SimLog.Verbose() {
		pl := hs.Store.Player()
		hs.SimLog.AddVerbose(hs.Frame, "P", "flight", "state",
			fmt.Sprintf("pos=(%.1f,%.1f,%.1f) spd=%.1f thr=%.2f hp=%.0f",
				pl.Position.X, pl.Position.Y, pl.Position.Z, pl.Speed(), pl.Throttle, pl.Health),
			pl.Position.Y)
	}
}
