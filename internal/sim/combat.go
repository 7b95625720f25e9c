package sim

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
)

// FlightPath returns the scripted world position of the enemy in slot at
// elapsed time t. Enemies have no physics of their own.
type FlightPath func(t float64, slot int) Vec3

// OrbitPath is the stock circuit: a ring around the origin with a slow
// altitude swell, slots spread OrbitSpacing radians apart.
func OrbitPath(tu Tuning) FlightPath {
	return func(t float64, slot int) Vec3 {
		angle := t*tu.OrbitRate + float64(slot)*tu.OrbitSpacing
		return Vec3{
			X: math.Cos(angle) * tu.OrbitRadius,
			Y: tu.CruiseAlt + math.Sin(t*tu.AltSwingRate)*tu.AltSwing,
			Z: math.Sin(angle) * tu.OrbitRadius,
		}
	}
}

// Target is an enemy's derived position for the current frame.
type Target struct {
	EnemyID string
	TeamID  string
	Slot    int
	Pos     Vec3
}

// Scene runs the per-frame combat loop against a Store.
type Scene struct {
	store  *Store
	tuning Tuning
	path   FlightPath
	rng    *rand.Rand
	log    zerolog.Logger

	pool     *ProjectilePool
	targets  []Target
	events   []Event
	frame    int
	elapsed  float64
	lastShot float64
}

// SceneOption configures a Scene at construction.
type SceneOption func(*Scene)

// WithFlightPath replaces the scripted enemy trajectory.
func WithFlightPath(p FlightPath) SceneOption {
	return func(sc *Scene) { sc.path = p }
}

// WithRand sets the RNG used for enemy fire decisions.
func WithRand(rng *rand.Rand) SceneOption {
	return func(sc *Scene) { sc.rng = rng }
}

// WithSceneLogger attaches a logger for shot and hit tracing.
func WithSceneLogger(l zerolog.Logger) SceneOption {
	return func(sc *Scene) { sc.log = l }
}

// NewScene wires a combat loop to store. The store's tuning is used throughout.
func NewScene(store *Store, opts ...SceneOption) *Scene {
	tu := store.Tuning()
	sc := &Scene{
		store:  store,
		tuning: tu,
		log:    zerolog.Nop(),
		pool:   NewProjectilePool(64),
		events: make([]Event, 0, 16),
	}
	for _, o := range opts {
		o(sc)
	}
	if sc.path == nil {
		sc.path = OrbitPath(tu)
	}
	if sc.rng == nil {
		sc.rng = rand.New(rand.NewSource(1)) // #nosec G404 -- gameplay only
	}
	sc.reset()
	return sc
}

func (sc *Scene) reset() {
	sc.pool.Reset()
	sc.targets = sc.targets[:0]
	sc.frame = 0
	sc.elapsed = 0
	sc.lastShot = math.Inf(-1)
}

// --- Phase transitions ---

// Begin selects a team and starts a fresh sortie. Returns false outside team_selection.
func (sc *Scene) Begin(teamID string) bool {
	if !sc.store.SelectTeam(teamID) {
		return false
	}
	sc.reset()
	return true
}

// Restart returns the store to team_selection and clears the arena.
func (sc *Scene) Restart() {
	sc.store.Restart()
	sc.reset()
}

// --- Reads ---

func (sc *Scene) Store() *Store { return sc.store }
func (sc *Scene) Elapsed() float64 { return sc.elapsed }
func (sc *Scene) FrameCount() int { return sc.frame }
func (sc *Scene) Projectiles() []Projectile { return sc.pool.Items() }
func (sc *Scene) Targets() []Target { return sc.targets }
func (sc *Scene) Pool() *ProjectilePool { return sc.pool }

// Fire launches a projectile outside the normal fire controls (tests, scripted events).
func (sc *Scene) Fire(origin, direction Vec3, side Side) (uint64, bool) {
	return sc.pool.Spawn(origin, direction, side, sc.elapsed)
}

// --- Frame ---

// Frame advances the sortie by dt seconds. The returned slice is reused and
// valid until the next call. Outside the playing phase it does nothing.
func (sc *Scene) Frame(dt float64, c Controls) []Event {
	sc.events = sc.events[:0]
	if sc.store.Phase() != PhasePlaying {
		return sc.events
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	sc.frame++
	sc.elapsed += dt

	sc.store.UpdatePlayerState(Integrate(sc.store.Player(), c, dt, sc.tuning))
	sc.refreshTargets()

	if over := sc.advanceProjectiles(dt); over {
		return sc.events
	}
	sc.playerFire(c)
	sc.enemyFire()
	return sc.events
}

// refreshTargets derives every enemy position from the flight path. The
// same slice drives enemy fire and hit tests for the rest of the frame.
func (sc *Scene) refreshTargets() {
	sc.targets = sc.targets[:0]
	for _, e := range sc.store.enemiesView() {
		sc.targets = append(sc.targets, Target{
			EnemyID: e.ID,
			TeamID:  e.TeamID,
			Slot:    e.Slot,
			Pos:     sc.path(sc.elapsed, e.Slot),
		})
	}
}

// advanceProjectiles moves every live round and resolves it. Returns true
// when a hit ended the sortie.
func (sc *Scene) advanceProjectiles(dt float64) bool {
	step := sc.tuning.ProjectileSpeed * dt
	for i := 0; i < sc.pool.Len(); {
		p := sc.pool.At(i)
		p.Position = p.Position.Add(p.Direction.Scale(step))

		if reason := sc.expireReason(p); reason != ExpireNone {
			sc.emit(Event{Kind: EventExpire, Side: p.Side, Projectile: p.ID, Reason: reason, Position: p.Position})
			sc.pool.RemoveAt(i)
			continue
		}

		hit, over := sc.resolveHit(*p)
		if hit {
			sc.pool.RemoveAt(i)
			if over {
				return true
			}
			continue
		}
		i++
	}
	return false
}

// expireReason checks lifetime, ground, then range; first match wins.
func (sc *Scene) expireReason(p *Projectile) ExpireReason {
	switch {
	case p.Age(sc.elapsed) > sc.tuning.ProjectileLifetime:
		return ExpireLifetime
	case p.Position.Y <= 0:
		return ExpireGround
	case p.Position.Len() > sc.tuning.ProjectileRange:
		return ExpireBounds
	}
	return ExpireNone
}

// resolveHit tests p against the valid targets for its side and applies damage.
func (sc *Scene) resolveHit(p Projectile) (hit, gameOver bool) {
	dmg := sc.tuning.ProjectileDamage
	r := sc.tuning.HitRadius

	if p.Side == SideEnemy {
		if p.Position.Dist(sc.store.Player().Position) >= r {
			return false, false
		}
		res := sc.store.DamagePlayer(dmg)
		sc.emit(Event{Kind: EventHit, Side: SideEnemy, Projectile: p.ID, Position: p.Position, Damage: dmg})
		sc.log.Debug().Uint64("projectile", p.ID).Float64("health", sc.store.Player().Health).Msg("player hit")
		if res.Killed {
			sc.emit(Event{Kind: EventGameOver, Side: SideEnemy, Projectile: p.ID, Position: p.Position})
			return true, true
		}
		return true, false
	}

	for _, t := range sc.targets {
		if p.Position.Dist(t.Pos) >= r {
			continue
		}
		res := sc.store.DamageEnemy(t.EnemyID, dmg)
		sc.emit(Event{Kind: EventHit, Side: SidePlayer, Projectile: p.ID, EnemyID: t.EnemyID, Position: p.Position, Damage: dmg})
		sc.log.Debug().Uint64("projectile", p.ID).Str("enemy", t.EnemyID).Msg("enemy hit")
		if res.Killed {
			sc.emit(Event{Kind: EventKill, Side: SidePlayer, Projectile: p.ID, EnemyID: t.EnemyID, Position: t.Pos})
			if res.WaveCleared {
				sc.emit(Event{Kind: EventWaveCleared, Side: SidePlayer, Position: t.Pos})
			}
			sc.refreshTargets()
		}
		return true, false
	}
	return false, false
}

func (sc *Scene) playerFire(c Controls) {
	if !c.Shoot || sc.elapsed-sc.lastShot <= sc.tuning.FireInterval {
		return
	}
	pl := sc.store.Player()
	id, ok := sc.pool.Spawn(pl.Position, Forward(pl.Rotation), SidePlayer, sc.elapsed)
	if !ok {
		return
	}
	sc.lastShot = sc.elapsed
	sc.emit(Event{Kind: EventShot, Side: SidePlayer, Projectile: id, Position: pl.Position})
	sc.log.Trace().Uint64("projectile", id).Msg("player fired")
}

func (sc *Scene) enemyFire() {
	playerPos := sc.store.Player().Position
	for _, t := range sc.targets {
		if sc.rng.Float64() >= sc.tuning.EnemyFireChance {
			continue
		}
		id, ok := sc.pool.Spawn(t.Pos, playerPos.Sub(t.Pos), SideEnemy, sc.elapsed)
		if !ok {
			continue
		}
		sc.emit(Event{Kind: EventShot, Side: SideEnemy, Projectile: id, EnemyID: t.EnemyID, Position: t.Pos})
	}
}

func (sc *Scene) emit(ev Event) {
	ev.Score = sc.store.Score()
	ev.Wave = sc.store.Wave()
	sc.events = append(sc.events, ev)
}
