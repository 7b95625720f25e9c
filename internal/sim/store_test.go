package sim

import (
	"math/rand"
	"testing"
)

func fixedSkin(id string) SkinPicker {
	return func(string) string { return id }
}

func newPlayingStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(DefaultTuning(), WithSkins(fixedSkin("cowboys")))
	if !s.SelectTeam("packers") {
		t.Fatal("SelectTeam from team_selection returned false")
	}
	return s
}

func TestNewStore_InitialValues(t *testing.T) {
	tu := DefaultTuning()
	s := NewStore(tu)
	if s.Phase() != PhaseTeamSelection {
		t.Fatalf("phase = %s, want team_selection", s.Phase())
	}
	if s.Score() != 0 || s.Wave() != 0 || s.EnemyCount() != 0 {
		t.Fatalf("score=%d wave=%d enemies=%d, want zeros", s.Score(), s.Wave(), s.EnemyCount())
	}
	pl := s.Player()
	if pl.Position != (Vec3{0, tu.StartAltitude, 0}) || pl.Health != tu.MaxHealth || pl.Throttle != tu.StartThrottle {
		t.Fatalf("unexpected initial player %+v", pl)
	}
}

func TestSelectTeam_SpawnsFirstWave(t *testing.T) {
	s := newPlayingStore(t)
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %s, want playing", s.Phase())
	}
	if s.SelectedTeam() != "packers" || s.Team().Name != "Packers" {
		t.Fatalf("team = %q / %q", s.SelectedTeam(), s.Team().Name)
	}
	if s.Wave() != 1 || s.EnemyCount() != 3 {
		t.Fatalf("wave=%d enemies=%d, want 1 and 3", s.Wave(), s.EnemyCount())
	}
	for i, e := range s.Enemies() {
		if e.Health != 100 || e.TeamID != "cowboys" || e.Slot != i {
			t.Fatalf("enemy %d = %+v", i, e)
		}
	}
	if _, ok := s.Enemy("enemy_2"); !ok {
		t.Fatal("enemy_2 missing from first wave")
	}
}

func TestSelectTeam_OnlyFromTeamSelection(t *testing.T) {
	s := newPlayingStore(t)
	if s.SelectTeam("bears") {
		t.Fatal("SelectTeam succeeded while playing")
	}
	if s.SelectedTeam() != "packers" {
		t.Fatalf("team changed to %q", s.SelectedTeam())
	}
}

func TestSelectTeam_UnknownIDRendersDefault(t *testing.T) {
	s := NewStore(DefaultTuning())
	if !s.SelectTeam("xfl") {
		t.Fatal("unknown id rejected")
	}
	if s.Team().Name != DefaultTeam.Name {
		t.Fatalf("team name = %q, want %q", s.Team().Name, DefaultTeam.Name)
	}
	if s.HUD().Team.Primary != "#FF0000" {
		t.Fatalf("hud primary = %q", s.HUD().Team.Primary)
	}
}

func TestDamageEnemy_FourHitsKillOnce(t *testing.T) {
	s := newPlayingStore(t)
	var kills int
	for i := 0; i < 4; i++ {
		res := s.DamageEnemy("enemy_0", 25)
		if !res.Found {
			t.Fatalf("hit %d: enemy_0 not found", i+1)
		}
		if res.Killed {
			kills++
		}
	}
	if kills != 1 {
		t.Fatalf("kills = %d, want exactly 1", kills)
	}
	if s.Score() != 100 {
		t.Fatalf("score = %d, want 100", s.Score())
	}
	if _, ok := s.Enemy("enemy_0"); ok {
		t.Fatal("dead enemy still listed")
	}
	if res := s.DamageEnemy("enemy_0", 25); res.Found {
		t.Fatal("damaging a removed enemy reported Found")
	}
	if s.Score() != 100 {
		t.Fatalf("score moved to %d after hitting a dead enemy", s.Score())
	}
}

func TestDamageEnemy_OnlyTargetTakesDamage(t *testing.T) {
	s := newPlayingStore(t)
	s.DamageEnemy("enemy_1", 25)
	for _, e := range s.Enemies() {
		want := 100.0
		if e.ID == "enemy_1" {
			want = 75
		}
		if e.Health != want {
			t.Fatalf("%s health = %f, want %f", e.ID, e.Health, want)
		}
	}
}

func TestDamageEnemy_SurvivorsKeepSlots(t *testing.T) {
	s := newPlayingStore(t)
	for i := 0; i < 4; i++ {
		s.DamageEnemy("enemy_0", 25)
	}
	e2, _ := s.Enemy("enemy_2")
	if e2.Slot != 2 {
		t.Fatalf("enemy_2 slot = %d after swap-remove, want 2", e2.Slot)
	}
}

func TestDamageEnemy_WaveClearAwardsBonus(t *testing.T) {
	s := newPlayingStore(t)
	var last DamageResult
	for _, id := range []string{"enemy_0", "enemy_1", "enemy_2"} {
		for i := 0; i < 4; i++ {
			last = s.DamageEnemy(id, 25)
		}
	}
	if !last.WaveCleared || last.Points != 600 {
		t.Fatalf("last kill = %+v, want wave cleared with 600 points", last)
	}
	if s.Score() != 800 {
		t.Fatalf("score = %d, want 3*100 + 500", s.Score())
	}
	if s.Wave() != 2 || s.EnemyCount() != 3 {
		t.Fatalf("wave=%d enemies=%d, want 2 and 3", s.Wave(), s.EnemyCount())
	}
	if _, ok := s.Enemy("enemy_3"); !ok {
		t.Fatal("new wave did not continue enemy ids")
	}
}

func TestDamagePlayer_GameOverAndRestart(t *testing.T) {
	s := newPlayingStore(t)
	for i := 0; i < 3; i++ {
		if res := s.DamagePlayer(25); res.Killed {
			t.Fatalf("hit %d killed the player early", i+1)
		}
	}
	if s.Player().Health != 25 {
		t.Fatalf("health = %f, want 25", s.Player().Health)
	}
	if res := s.DamagePlayer(40); !res.Killed {
		t.Fatal("final hit did not kill")
	}
	if s.Phase() != PhaseGameOver || s.Player().Health != 0 {
		t.Fatalf("phase=%s health=%f, want game_over and 0", s.Phase(), s.Player().Health)
	}

	// Frozen until restart.
	if res := s.DamageEnemy("enemy_0", 25); res.Found {
		t.Fatal("enemy damaged during game_over")
	}
	if s.SelectTeam("bears") {
		t.Fatal("SelectTeam succeeded during game_over")
	}

	s.Restart()
	if s.Phase() != PhaseTeamSelection || s.Score() != 0 || s.Wave() != 0 || s.EnemyCount() != 0 {
		t.Fatalf("restart left phase=%s score=%d wave=%d enemies=%d", s.Phase(), s.Score(), s.Wave(), s.EnemyCount())
	}
	if s.Player().Health != 100 || s.SelectedTeam() != "" {
		t.Fatalf("restart left player %+v team %q", s.Player(), s.SelectedTeam())
	}
	if !s.SelectTeam("bears") {
		t.Fatal("SelectTeam after restart failed")
	}
	if _, ok := s.Enemy("enemy_0"); !ok {
		t.Fatal("enemy ids did not restart from zero")
	}
}

func TestUpdatePlayerState_Clamps(t *testing.T) {
	s := newPlayingStore(t)
	s.UpdatePlayerState(AircraftState{Health: 500, Throttle: -2})
	pl := s.Player()
	if pl.Health != 100 || pl.Throttle != 0 {
		t.Fatalf("health=%f throttle=%f, want 100 and 0", pl.Health, pl.Throttle)
	}
}

func TestHUD_Snapshot(t *testing.T) {
	s := newPlayingStore(t)
	s.UpdatePlayerState(AircraftState{
		Position: Vec3{1, -3, 2},
		Velocity: Vec3{3, 0, 4},
		Health:   60,
		Throttle: 0.25,
	})
	h := s.HUD()
	if h.Speed != 50 {
		t.Fatalf("speed = %f, want |v|*10 = 50", h.Speed)
	}
	if h.Altitude != 0 {
		t.Fatalf("altitude = %f, want clamped to 0", h.Altitude)
	}
	if h.ThrottlePct != 25 || h.Health != 60 || h.EnemyCount != 3 || h.Wave != 1 {
		t.Fatalf("unexpected hud %+v", h)
	}
}

func TestRandomSkins_ExcludesPlayerTeam(t *testing.T) {
	pick := RandomSkins(rand.New(rand.NewSource(7)))
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id := pick("packers")
		if id == "packers" {
			t.Fatal("enemy skin matched the player's team")
		}
		if _, ok := LookupTeam(id); !ok {
			t.Fatalf("picked unknown team %q", id)
		}
		seen[id] = true
	}
	if len(seen) < 10 {
		t.Fatalf("only %d distinct skins in 500 picks", len(seen))
	}
}

func TestLookupTeam(t *testing.T) {
	if len(Roster) != 32 {
		t.Fatalf("roster has %d teams, want 32", len(Roster))
	}
	tm, ok := LookupTeam("49ers")
	if !ok || tm.FullName() != "San Francisco 49ers" {
		t.Fatalf("LookupTeam(49ers) = %+v, %v", tm, ok)
	}
	if tm, ok := LookupTeam("nope"); ok || tm.Name != DefaultTeam.Name {
		t.Fatalf("unknown lookup = %+v, %v", tm, ok)
	}
}
