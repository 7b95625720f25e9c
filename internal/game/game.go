package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Gridiron-Aces/internal/config"
	"github.com/Garsondee/Gridiron-Aces/internal/sim"
	"github.com/Garsondee/Gridiron-Aces/internal/telemetry"
)

// Cues plays the gameplay sound effects.
type Cues interface {
	PlayShoot()
	PlayHit()
	PlaySuccess()
	ToggleMute() bool
	Muted() bool
}

// silentCues tracks mute state and plays nothing.
type silentCues struct{ muted bool }

func (*silentCues) PlayShoot()   {}
func (*silentCues) PlayHit()     {}
func (*silentCues) PlaySuccess() {}

func (s *silentCues) Muted() bool { return s.muted }

func (s *silentCues) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Options wires a Game to its collaborators. Zero values get working defaults.
type Options struct {
	Config   config.Config
	KeyMap   KeyMap
	Cues     Cues
	Recorder *telemetry.Recorder // optional
	Logger   zerolog.Logger
	CopyText func(string) error // defaults to the system clipboard

	keys keyState
}

const statusTicks = 180 // status line lifetime

// Game implements ebiten.Game.
type Game struct {
	width, height int
	dt            float64

	store   *sim.Store
	scene   *sim.Scene
	terrain Terrain
	feed    *CombatFeed
	tally   sim.Tally
	report  sim.SortieReport // frozen at game over
	grade   sim.SortieGrade

	keymap   KeyMap
	keys     keyState
	cues     Cues
	rec      *telemetry.Recorder
	log      zerolog.Logger
	copyText func(string) error
	ctx      context.Context

	cursor      int // team grid selection
	simSpeed    float64
	tickAccum   float64
	ticks       int
	status      string
	statusUntil int
}

// New builds a game sitting on the team selection screen.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.TPS <= 0 {
		cfg = config.Default()
	}
	g := &Game{
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		dt:       cfg.FrameDelta(),
		terrain:  GenerateTerrain(cfg.Seed),
		feed:     NewCombatFeed(),
		keymap:   opts.KeyMap,
		keys:     opts.keys,
		cues:     opts.Cues,
		rec:      opts.Recorder,
		log:      opts.Logger,
		copyText: opts.CopyText,
		ctx:      context.Background(),
		simSpeed: 1.0,
	}
	if g.keymap == nil {
		g.keymap = DefaultKeyMap()
	}
	if g.keys == nil {
		g.keys = ebitenKeys{}
	}
	if g.cues == nil {
		g.cues = &silentCues{}
	}
	if g.copyText == nil {
		g.copyText = clipboard.WriteAll
	}

	skins := sim.RandomSkins(newRand(cfg.Seed))
	g.store = sim.NewStore(cfg.Tuning, sim.WithSkins(skins), sim.WithStoreLogger(g.log))
	g.scene = sim.NewScene(g.store, sim.WithRand(newRand(cfg.Seed+1)), sim.WithSceneLogger(g.log))

	for i, t := range sim.Roster {
		if t.ID == cfg.Team {
			g.cursor = i
		}
	}
	g.log.Info().Int("width", g.width).Int("height", g.height).Int64("seed", cfg.Seed).Msg("game ready")
	return g
}

// Store exposes the game state for tests and tools.
func (g *Game) Store() *sim.Store { return g.store }

// Scene exposes the combat loop.
func (g *Game) Scene() *sim.Scene { return g.scene }

// Feed returns the on-screen combat feed.
func (g *Game) Feed() *CombatFeed { return g.feed }

// Report is the summary of the last finished sortie.
func (g *Game) Report() sim.SortieReport { return g.report }

// Grade is the grade of the last finished sortie.
func (g *Game) Grade() sim.SortieGrade { return g.grade }

// Status is the transient message line, empty when expired.
func (g *Game) Status() string {
	if g.ticks >= g.statusUntil {
		return ""
	}
	return g.status
}

func (g *Game) Update() error {
	g.ticks++
	wasPlaying := g.store.Phase() == sim.PhasePlaying
	// Handle input every frame regardless of sim speed.
	g.handleInput()

	// The frame that starts a sortie only takes the menu input.
	if !wasPlaying || g.store.Phase() != sim.PhasePlaying || g.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	c := g.keymap.Controls(g.keys)
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.simTick(c)
		if g.store.Phase() != sim.PhasePlaying {
			g.tickAccum = 0
			break
		}
	}
	return nil
}

// simTick runs one frame of combat and fans the events out.
func (g *Game) simTick(c sim.Controls) {
	events := g.scene.Frame(g.dt, c)
	frame := g.scene.FrameCount()
	for _, ev := range events {
		g.tally.Count(ev)
		g.feed.AddEvent(frame, ev)
		if g.rec != nil {
			g.rec.Record(g.ctx, ev)
		}
		switch ev.Kind {
		case sim.EventShot:
			g.cues.PlayShoot()
		case sim.EventHit:
			g.cues.PlayHit()
		case sim.EventKill, sim.EventWaveCleared:
			g.cues.PlaySuccess()
		case sim.EventGameOver:
			g.report = sim.BuildReport(g.scene, g.tally)
			g.grade = sim.GradeSortie(g.report, g.store.Tuning())
			g.log.Info().Str("report", g.report.String()).Str("grade", g.grade.Grade).Msg("sortie over")
		}
	}
}

func (g *Game) handleInput() {
	ks := g.keys

	if ks.JustPressed(ebiten.KeyM) {
		if g.cues.ToggleMute() {
			g.setStatus("Sound OFF")
		} else {
			g.setStatus("Sound ON")
		}
	}

	switch g.store.Phase() {
	case sim.PhaseTeamSelection:
		g.handleSelection()
	case sim.PhasePlaying:
		g.handleSpeed()
	case sim.PhaseGameOver:
		if ks.JustPressed(ebiten.KeyEnter) || ks.JustPressed(ebiten.KeyR) {
			g.restart()
		}
		if ks.JustPressed(ebiten.KeyC) {
			g.copyReport()
		}
	}
}

// teamGridCols is the number of columns on the selection screen.
const teamGridCols = 8

func (g *Game) handleSelection() {
	ks := g.keys
	n := len(sim.Roster)
	switch {
	case ks.JustPressed(ebiten.KeyArrowRight):
		g.cursor = (g.cursor + 1) % n
	case ks.JustPressed(ebiten.KeyArrowLeft):
		g.cursor = (g.cursor - 1 + n) % n
	case ks.JustPressed(ebiten.KeyArrowDown):
		g.cursor = (g.cursor + teamGridCols) % n
	case ks.JustPressed(ebiten.KeyArrowUp):
		g.cursor = (g.cursor - teamGridCols + n) % n
	}
	if ks.JustPressed(ebiten.KeyEnter) {
		g.begin(sim.Roster[g.cursor].ID)
	}
}

// Sim speed controls: P=pause/resume, ,=slower, .=faster.
var simSpeeds = []float64{0, 0.5, 1, 2, 4}

func (g *Game) handleSpeed() {
	ks := g.keys
	if ks.JustPressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if ks.JustPressed(ebiten.KeyComma) {
		for i, s := range simSpeeds {
			if s >= g.simSpeed && i > 0 {
				g.simSpeed = simSpeeds[i-1]
				break
			}
		}
	}
	if ks.JustPressed(ebiten.KeyPeriod) {
		for _, s := range simSpeeds {
			if s > g.simSpeed {
				g.simSpeed = s
				break
			}
		}
	}
}

func (g *Game) begin(teamID string) {
	if !g.scene.Begin(teamID) {
		return
	}
	g.tally = sim.Tally{}
	g.report = sim.SortieReport{}
	g.grade = sim.SortieGrade{}
	g.feed.Reset()
	g.simSpeed = 1
	g.tickAccum = 0
	if g.rec != nil {
		g.rec.SortieStarted(g.ctx, teamID)
	}
	g.log.Info().Str("team", teamID).Msg("sortie started")
}

func (g *Game) restart() {
	g.scene.Restart()
	g.feed.Reset()
	g.tally = sim.Tally{}
}

func (g *Game) copyReport() {
	line := g.report.String()
	if err := g.copyText(line); err != nil {
		g.log.Warn().Err(fmt.Errorf("copy sortie summary: %w", err)).Msg("clipboard unavailable")
		g.setStatus("Clipboard unavailable")
		return
	}
	g.setStatus("Summary copied to clipboard")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = g.ticks + statusTicks
}

// speedLabel formats the sim speed for the HUD.
func (g *Game) speedLabel() string {
	switch g.simSpeed {
	case 0:
		return "PAUSED"
	case 1:
		return "1x"
	case 2:
		return "2x"
	case 4:
		return "4x"
	}
	return fmt.Sprintf("%.1fx", g.simSpeed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.store.Phase() {
	case sim.PhaseTeamSelection:
		g.drawTeamSelection(screen)
	case sim.PhasePlaying:
		g.drawWorld(screen)
		g.drawHUD(screen)
		g.feed.Draw(screen, g.width, g.height)
	case sim.PhaseGameOver:
		g.drawWorld(screen)
		g.feed.Draw(screen, g.width, g.height)
		g.drawGameOver(screen)
	}
	if s := g.Status(); s != "" {
		g.drawStatus(screen, s)
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
