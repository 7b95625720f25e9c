package sim

import (
	"math"
	"math/rand"
	"testing"
)

// parkedPath holds each slot at a fixed position; unknown slots go far away.
func parkedPath(spots ...Vec3) FlightPath {
	return func(_ float64, slot int) Vec3 {
		if slot < len(spots) {
			return spots[slot]
		}
		return Vec3{400, 100, 400}
	}
}

func quietTuning() Tuning {
	tu := DefaultTuning()
	tu.EnemyFireChance = 0
	return tu
}

func newTestScene(t *testing.T, tu Tuning, path FlightPath) *Scene {
	t.Helper()
	store := NewStore(tu, WithSkins(fixedSkin("bears")))
	sc := NewScene(store, WithFlightPath(path), WithRand(rand.New(rand.NewSource(3))))
	if !sc.Begin("lions") {
		t.Fatal("Begin failed from team_selection")
	}
	return sc
}

func TestOrbitPath_SpreadsSlots(t *testing.T) {
	tu := DefaultTuning()
	path := OrbitPath(tu)
	p0 := path(0, 0)
	if !vecAlmostEqual(p0, Vec3{60, 25, 0}, 1e-12) {
		t.Fatalf("slot 0 at t=0 = %+v, want (60,25,0)", p0)
	}
	p1 := path(0, 1)
	want := Vec3{math.Cos(2) * 60, 25, math.Sin(2) * 60}
	if !vecAlmostEqual(p1, want, 1e-12) {
		t.Fatalf("slot 1 at t=0 = %+v, want %+v", p1, want)
	}
	if alt := path(math.Pi/(2*tu.AltSwingRate), 0).Y; !almostEqual(alt, 35, 1e-9) {
		t.Fatalf("peak altitude = %f, want 35", alt)
	}
}

func TestFrame_NoOpOutsidePlaying(t *testing.T) {
	store := NewStore(DefaultTuning())
	sc := NewScene(store)
	if evs := sc.Frame(1.0/60, Controls{Shoot: true, ThrottleUp: true}); len(evs) != 0 {
		t.Fatalf("got %d events in team_selection", len(evs))
	}
	if sc.FrameCount() != 0 || store.Player().Throttle != 0.5 {
		t.Fatalf("state advanced outside playing: frame=%d throttle=%f", sc.FrameCount(), store.Player().Throttle)
	}
}

func TestProjectile_MovingAwayNeverHits(t *testing.T) {
	sc := newTestScene(t, quietTuning(), parkedPath(
		Vec3{0, 10, -50}, Vec3{50, 10, 0}, Vec3{-50, 10, 0},
	))
	if _, ok := sc.Fire(Vec3{0, 30, 30}, Vec3{0, 0, 1}, SidePlayer); !ok {
		t.Fatal("fire rejected")
	}

	var expired []Event
	for i := 0; i < 300; i++ {
		for _, ev := range sc.Frame(1.0/60, Controls{}) {
			switch ev.Kind {
			case EventHit, EventKill:
				t.Fatalf("frame %d: receding projectile produced %s", sc.FrameCount(), ev.Kind)
			case EventExpire:
				expired = append(expired, ev)
			}
		}
	}
	if len(expired) != 1 || expired[0].Reason != ExpireLifetime {
		t.Fatalf("expire events = %+v, want one lifetime expiry", expired)
	}
	for _, e := range sc.Store().Enemies() {
		if e.Health != 100 {
			t.Fatalf("%s took damage: %f", e.ID, e.Health)
		}
	}
	if sc.Pool().Len() != 0 {
		t.Fatalf("%d projectiles still live", sc.Pool().Len())
	}
}

func TestProjectile_ExpiresOnGround(t *testing.T) {
	sc := newTestScene(t, quietTuning(), parkedPath())
	sc.Fire(Vec3{0, 5, 0}, Vec3{0, -1, 0}, SidePlayer)
	var reason ExpireReason
	for i := 0; i < 10 && reason == ExpireNone; i++ {
		for _, ev := range sc.Frame(1.0/60, Controls{}) {
			if ev.Kind == EventExpire {
				reason = ev.Reason
			}
		}
	}
	if reason != ExpireGround {
		t.Fatalf("reason = %s, want ground", reason)
	}
}

func TestProjectile_ExpiresOutOfRange(t *testing.T) {
	sc := newTestScene(t, quietTuning(), parkedPath())
	sc.Fire(Vec3{0, 10, 499}, Vec3{0, 0, 1}, SidePlayer)
	evs := sc.Frame(1.0/60, Controls{})
	if len(evs) != 1 || evs[0].Kind != EventExpire || evs[0].Reason != ExpireBounds {
		t.Fatalf("events = %+v, want a single bounds expiry", evs)
	}
}

func TestProjectile_HitsOnlyFirstTarget(t *testing.T) {
	sc := newTestScene(t, quietTuning(), parkedPath(
		Vec3{0, 10, -40}, Vec3{3, 10, -40}, Vec3{300, 50, 300},
	))
	sc.Fire(Vec3{0, 10, -20}, Vec3{0, 0, -1}, SidePlayer)

	var hits []Event
	for i := 0; i < 60; i++ {
		for _, ev := range sc.Frame(1.0/60, Controls{}) {
			if ev.Kind == EventHit {
				hits = append(hits, ev)
			}
		}
	}
	if len(hits) != 1 || hits[0].EnemyID != "enemy_0" || hits[0].Damage != 25 {
		t.Fatalf("hits = %+v, want one 25 dmg hit on enemy_0", hits)
	}
	e0, _ := sc.Store().Enemy("enemy_0")
	e1, _ := sc.Store().Enemy("enemy_1")
	if e0.Health != 75 || e1.Health != 100 {
		t.Fatalf("health enemy_0=%f enemy_1=%f, want 75 and 100", e0.Health, e1.Health)
	}
}

func TestPlayerFire_RateLimited(t *testing.T) {
	sc := newTestScene(t, quietTuning(), parkedPath())
	var shotTimes []float64
	for i := 0; i < 120; i++ {
		for _, ev := range sc.Frame(1.0/60, Controls{Shoot: true}) {
			if ev.Kind == EventShot && ev.Side == SidePlayer {
				shotTimes = append(shotTimes, sc.Elapsed())
			}
		}
	}
	if len(shotTimes) != 4 {
		t.Fatalf("fired %d times in 2s, want 4", len(shotTimes))
	}
	if shotTimes[0] > 1.0/30 {
		t.Fatalf("first shot at %.3fs, want immediate", shotTimes[0])
	}
	for i := 1; i < len(shotTimes); i++ {
		if gap := shotTimes[i] - shotTimes[i-1]; gap <= 0.5 {
			t.Fatalf("shots %d and %d only %.3fs apart", i-1, i, gap)
		}
	}
}

func TestPlayerFire_AlongNose(t *testing.T) {
	sc := newTestScene(t, quietTuning(), parkedPath())
	sc.Frame(1.0/60, Controls{Shoot: true})
	items := sc.Projectiles()
	if len(items) != 1 {
		t.Fatalf("%d projectiles, want 1", len(items))
	}
	want := Forward(sc.Store().Player().Rotation)
	if !vecAlmostEqual(items[0].Direction, want, 1e-12) || items[0].Side != SidePlayer {
		t.Fatalf("projectile %+v, want player round along %+v", items[0], want)
	}
}

func TestEnemyFire_AimsAtPlayer(t *testing.T) {
	tu := DefaultTuning()
	tu.EnemyFireChance = 1
	sc := newTestScene(t, tu, parkedPath(Vec3{0, 10, -100}, Vec3{100, 10, 0}, Vec3{0, 60, 100}))
	sc.Frame(1.0/60, Controls{})

	pl := sc.Store().Player().Position
	items := sc.Projectiles()
	if len(items) != 3 {
		t.Fatalf("%d enemy rounds, want 3", len(items))
	}
	for _, p := range items {
		want := pl.Sub(p.Origin).Normalize()
		if p.Side != SideEnemy || !vecAlmostEqual(p.Direction, want, 1e-12) {
			t.Fatalf("round %+v not aimed at player %+v", p, pl)
		}
	}
}

func TestEnemyFire_DeterministicForSeed(t *testing.T) {
	run := func() []Event {
		store := NewStore(DefaultTuning(), WithSkins(fixedSkin("bears")))
		sc := NewScene(store, WithRand(rand.New(rand.NewSource(11))))
		sc.Begin("lions")
		var all []Event
		for i := 0; i < 240; i++ {
			all = append(all, sc.Frame(1.0/60, Controls{})...)
		}
		return all
	}
	a, b := run(), run()
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("event counts differ or empty: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("event %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScene_RestartClearsArena(t *testing.T) {
	sc := newTestScene(t, quietTuning(), parkedPath())
	sc.Frame(1.0/60, Controls{Shoot: true})
	sc.Restart()
	if sc.Store().Phase() != PhaseTeamSelection {
		t.Fatalf("phase = %s", sc.Store().Phase())
	}
	if sc.Pool().Len() != 0 || sc.FrameCount() != 0 || sc.Elapsed() != 0 {
		t.Fatalf("arena not cleared: live=%d frame=%d elapsed=%f", sc.Pool().Len(), sc.FrameCount(), sc.Elapsed())
	}
}

func TestProjectile_LifetimeBeatsHitTest(t *testing.T) {
	tu := quietTuning()
	tu.ProjectileLifetime = 0
	tu.ProjectileSpeed = 0
	target := Vec3{0, 20, -40}
	sc := newTestScene(t, tu, parkedPath(target))
	sc.Fire(target, Vec3{0, 0, -1}, SidePlayer)

	evs := sc.Frame(1.0/60, Controls{})
	if len(evs) != 1 || evs[0].Kind != EventExpire || evs[0].Reason != ExpireLifetime {
		t.Fatalf("events = %+v, want lifetime expiry before any hit", evs)
	}
	if e, _ := sc.Store().Enemy("enemy_0"); e.Health != 100 {
		t.Fatalf("enemy_0 damaged by an expired round: %f", e.Health)
	}
}
