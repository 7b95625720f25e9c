package sim

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

// Phase is the top-level game state.
type Phase string

const (
	PhaseTeamSelection Phase = "team_selection"
	PhasePlaying       Phase = "playing"
	PhaseGameOver      Phase = "game_over"
)

func (p Phase) String() string { return string(p) }

// Enemy is one AI aircraft. Slot is the flight-path offset assigned at spawn
// and never changes, so removing a wingman does not teleport the others.
type Enemy struct {
	ID     string
	TeamID string
	Health float64
	Slot   int
}

// SkinPicker chooses an enemy skin. exclude is the player's team id.
type SkinPicker func(exclude string) string

// RandomSkins picks uniformly from Roster, never returning exclude while
// another team is available.
func RandomSkins(rng *rand.Rand) SkinPicker {
	return func(exclude string) string {
		pool := make([]string, 0, len(Roster))
		for _, t := range Roster {
			if t.ID != exclude {
				pool = append(pool, t.ID)
			}
		}
		if len(pool) == 0 {
			return exclude
		}
		return pool[rng.Intn(len(pool))]
	}
}

// DamageResult reports what a damage action changed.
type DamageResult struct {
	Found       bool // target existed and was damageable
	Killed      bool // target health reached zero
	WaveCleared bool // last enemy died and a new wave spawned
	Points      int  // score awarded by this action
}

// Store is the single owner of game state. It is not safe for concurrent use;
// everything runs on the frame callback.
type Store struct {
	tuning Tuning
	skins  SkinPicker
	log    zerolog.Logger

	phase        Phase
	selectedTeam string
	player       AircraftState
	enemies      []Enemy
	score        int
	wave         int
	nextEnemyID  int
}

// StoreOption configures a Store at construction.
type StoreOption func(*Store)

// WithSkins overrides enemy skin selection.
func WithSkins(p SkinPicker) StoreOption {
	return func(s *Store) { s.skins = p }
}

// WithStoreLogger attaches a logger for phase and scoring transitions.
func WithStoreLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// NewStore returns a store in team_selection with initial values.
func NewStore(tu Tuning, opts ...StoreOption) *Store {
	s := &Store{
		tuning: tu,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.skins == nil {
		s.skins = RandomSkins(rand.New(rand.NewSource(1))) // #nosec G404 -- cosmetic only
	}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.phase = PhaseTeamSelection
	s.selectedTeam = ""
	s.player = s.initialPlayer()
	s.enemies = s.enemies[:0]
	s.score = 0
	s.wave = 0
	s.nextEnemyID = 0
}

func (s *Store) initialPlayer() AircraftState {
	return AircraftState{
		Position: Vec3{0, s.tuning.StartAltitude, 0},
		Health:   s.tuning.MaxHealth,
		Throttle: s.tuning.StartThrottle,
	}
}

func (s *Store) spawnWave() {
	s.enemies = s.enemies[:0]
	for i := 0; i < s.tuning.WaveSize; i++ {
		s.enemies = append(s.enemies, Enemy{
			ID:     fmt.Sprintf("enemy_%d", s.nextEnemyID),
			TeamID: s.skins(s.selectedTeam),
			Health: s.tuning.MaxHealth,
			Slot:   i,
		})
		s.nextEnemyID++
	}
	s.wave++
}

// --- Reads ---

func (s *Store) Phase() Phase { return s.phase }
func (s *Store) SelectedTeam() string { return s.selectedTeam }
func (s *Store) Player() AircraftState { return s.player }
func (s *Store) Score() int { return s.score }
func (s *Store) Wave() int { return s.wave }
func (s *Store) Tuning() Tuning { return s.tuning }
func (s *Store) EnemyCount() int { return len(s.enemies) }
func (s *Store) Enemies() []Enemy { return append([]Enemy(nil), s.enemies...) }
func (s *Store) enemiesView() []Enemy { return s.enemies }
func (s *Store) Team() Team { return TeamOrDefault(s.selectedTeam) }

// Enemy looks up a live enemy by id.
func (s *Store) Enemy(id string) (Enemy, bool) {
	for _, e := range s.enemies {
		if e.ID == id {
			return e, true
		}
	}
	return Enemy{}, false
}

// --- Actions ---

// SelectTeam starts a sortie. Only legal from team_selection; returns false
// otherwise. Unknown ids are accepted and render with DefaultTeam.
func (s *Store) SelectTeam(teamID string) bool {
	if s.phase != PhaseTeamSelection {
		return false
	}
	s.selectedTeam = teamID
	s.player = s.initialPlayer()
	s.score = 0
	s.wave = 0
	s.spawnWave()
	s.phase = PhasePlaying
	s.log.Info().Str("team", teamID).Int("enemies", len(s.enemies)).Msg("team selected")
	return true
}

// UpdatePlayerState replaces the player aircraft, clamping health and throttle.
func (s *Store) UpdatePlayerState(st AircraftState) {
	st.Health = clamp(st.Health, 0, s.tuning.MaxHealth)
	st.Throttle = clamp01(st.Throttle)
	s.player = st
}

// DamagePlayer applies damage; reaching zero health ends the sortie.
func (s *Store) DamagePlayer(dmg float64) DamageResult {
	if s.phase != PhasePlaying {
		return DamageResult{}
	}
	s.player.Health = clamp(s.player.Health-dmg, 0, s.tuning.MaxHealth)
	res := DamageResult{Found: true}
	if s.player.Health <= 0 {
		res.Killed = true
		s.phase = PhaseGameOver
		s.log.Info().Int("score", s.score).Int("wave", s.wave).Msg("player shot down")
	}
	return res
}

// DamageEnemy damages exactly one enemy. A kill removes it and awards
// KillPoints; clearing the wave spawns the next one and adds WaveBonus.
func (s *Store) DamageEnemy(id string, dmg float64) DamageResult {
	if s.phase != PhasePlaying {
		return DamageResult{}
	}
	idx := -1
	for i := range s.enemies {
		if s.enemies[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return DamageResult{}
	}

	res := DamageResult{Found: true}
	e := &s.enemies[idx]
	e.Health = clamp(e.Health-dmg, 0, s.tuning.MaxHealth)
	if e.Health > 0 {
		return res
	}

	// Swap-remove; Slot keeps each survivor on its own track.
	last := len(s.enemies) - 1
	s.enemies[idx] = s.enemies[last]
	s.enemies = s.enemies[:last]

	res.Killed = true
	res.Points = s.tuning.KillPoints
	s.score += s.tuning.KillPoints
	s.log.Debug().Str("enemy", id).Int("score", s.score).Msg("enemy destroyed")

	if len(s.enemies) == 0 {
		res.WaveCleared = true
		res.Points += s.tuning.WaveBonus
		s.score += s.tuning.WaveBonus
		s.spawnWave()
		s.log.Info().Int("wave", s.wave).Int("score", s.score).Msg("wave cleared")
	}
	return res
}

// Restart returns to team_selection with everything at initial values.
func (s *Store) Restart() {
	s.reset()
	s.log.Info().Msg("restart")
}

// --- HUD ---

// HUDView is the read-only snapshot the HUD renders.
type HUDView struct {
	Team        Team
	Phase       Phase
	Health      float64
	Speed       float64 // |velocity| x10, display units
	Altitude    float64 // never negative
	ThrottlePct float64 // 0..100
	Position    Vec3
	EnemyCount  int
	Score       int
	Wave        int
}

// HUD returns the display snapshot.
func (s *Store) HUD() HUDView {
	alt := s.player.Position.Y
	if alt < 0 {
		alt = 0
	}
	return HUDView{
		Team:        s.Team(),
		Phase:       s.phase,
		Health:      s.player.Health,
		Speed:       s.player.Speed() * 10,
		Altitude:    alt,
		ThrottlePct: clamp(s.player.Throttle*100, 0, 100),
		Position:    s.player.Position,
		EnemyCount:  len(s.enemies),
		Score:       s.score,
		Wave:        s.wave,
	}
}
