package sim

// --- Projectile ---

// Projectile is a straight-line round. Direction is unit length.
type Projectile struct {
	ID        uint64
	Origin    Vec3
	Position  Vec3
	Direction Vec3
	Side      Side
	CreatedAt float64 // scene elapsed seconds
}

// Age returns seconds since the projectile was fired.
func (p *Projectile) Age(now float64) float64 {
	return now - p.CreatedAt
}

// ProjectilePool is an arena of live projectiles. Removal swaps the last
// entry into the freed slot, so iteration order is not stable across removals.
type ProjectilePool struct {
	items  []Projectile
	nextID uint64
}

// NewProjectilePool preallocates room for capacity rounds.
func NewProjectilePool(capacity int) *ProjectilePool {
	return &ProjectilePool{items: make([]Projectile, 0, capacity)}
}

// Spawn adds a projectile and returns its id. direction is normalized here;
// a zero direction is rejected (ok=false).
func (pp *ProjectilePool) Spawn(origin, direction Vec3, side Side, now float64) (uint64, bool) {
	dir := direction.Normalize()
	if dir == (Vec3{}) {
		return 0, false
	}
	pp.nextID++
	pp.items = append(pp.items, Projectile{
		ID:        pp.nextID,
		Origin:    origin,
		Position:  origin,
		Direction: dir,
		Side:      side,
		CreatedAt: now,
	})
	return pp.nextID, true
}

// Len is the number of live projectiles.
func (pp *ProjectilePool) Len() int {
	return len(pp.items)
}

// At returns a pointer into the arena; valid until the next Spawn/RemoveAt/Reset.
func (pp *ProjectilePool) At(i int) *Projectile {
	return &pp.items[i]
}

// RemoveAt swap-removes index i.
func (pp *ProjectilePool) RemoveAt(i int) {
	last := len(pp.items) - 1
	pp.items[i] = pp.items[last]
	pp.items[last] = Projectile{}
	pp.items = pp.items[:last]
}

// Items exposes the live slice for read-only use (drawing, tests).
func (pp *ProjectilePool) Items() []Projectile {
	return pp.items
}

// Reset drops every projectile but keeps capacity and the id counter.
func (pp *ProjectilePool) Reset() {
	for i := range pp.items {
		pp.items[i] = Projectile{}
	}
	pp.items = pp.items[:0]
}
