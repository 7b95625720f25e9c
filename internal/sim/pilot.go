package sim

import "math"

// PilotView is what a pilot may look at each frame: the same data the HUD
// and the radar show.
type PilotView struct {
	Frame   int
	Elapsed float64
	Player  AircraftState
	Targets []Target
}

// Pilot turns a view into one frame of controls.
type Pilot interface {
	Fly(v PilotView) Controls
}

// PilotFunc adapts a plain function to Pilot.
type PilotFunc func(v PilotView) Controls

func (f PilotFunc) Fly(v PilotView) Controls { return f(v) }

// HoldControls is a pilot that returns the same controls every frame.
func HoldControls(c Controls) Pilot {
	return PilotFunc(func(PilotView) Controls { return c })
}

// --- Autopilot ---

const (
	autopilotYawDeadband = 0.05 // rad, no correction inside this
	autopilotFireCone    = 0.12 // rad, bearing error allowed when firing
	autopilotFireRange   = 140  // units
	autopilotAltBand     = 1.5  // units, altitude hold tolerance
)

// Autopilot chases the nearest enemy: it holds throttle, yaws onto a lead
// bearing, matches altitude with the vertical assist and fires inside a cone.
type Autopilot struct {
	projectileSpeed float64
	prev            map[string]Vec3
	prevT           float64
}

// NewAutopilot builds an autopilot that leads targets for the given tuning.
func NewAutopilot(tu Tuning) *Autopilot {
	return &Autopilot{
		projectileSpeed: tu.ProjectileSpeed,
		prev:            make(map[string]Vec3),
	}
}

func (a *Autopilot) Fly(v PilotView) Controls {
	c := Controls{ThrottleUp: true}
	pl := v.Player

	dt := v.Elapsed - a.prevT
	best, bestDist := -1, math.Inf(1)
	for i, t := range v.Targets {
		if d := t.Pos.Dist(pl.Position); d < bestDist {
			best, bestDist = i, d
		}
	}
	defer a.remember(v)
	if best < 0 {
		return c
	}

	tgt := v.Targets[best]
	aim := tgt.Pos
	if prev, ok := a.prev[tgt.EnemyID]; ok && dt > 0 && a.projectileSpeed > 0 {
		vel := tgt.Pos.Sub(prev).Scale(1 / dt)
		aim = aim.Add(vel.Scale(bestDist / a.projectileSpeed))
	}

	dx := aim.X - pl.Position.X
	dz := aim.Z - pl.Position.Z
	desired := math.Atan2(-dx, -dz) // yaw whose forward vector points along (dx,dz)
	errYaw := wrapAngle(desired - pl.Rotation.Y)

	switch {
	case errYaw > autopilotYawDeadband:
		c.YawLeft = true
	case errYaw < -autopilotYawDeadband:
		c.YawRight = true
	}

	switch {
	case aim.Y > pl.Position.Y+autopilotAltBand:
		c.MoveUp = true
	case aim.Y < pl.Position.Y-autopilotAltBand:
		c.MoveDown = true
	}

	if math.Abs(errYaw) < autopilotFireCone && bestDist < autopilotFireRange {
		c.Shoot = true
	}
	return c
}

func (a *Autopilot) remember(v PilotView) {
	clear(a.prev)
	for _, t := range v.Targets {
		a.prev[t.EnemyID] = t.Pos
	}
	a.prevT = v.Elapsed
}

// wrapAngle maps a to (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
