package sim

import "math"

// Controls is one frame's snapshot of the flight inputs.
type Controls struct {
	ThrottleUp   bool
	ThrottleDown bool
	PitchUp      bool
	PitchDown    bool
	YawLeft      bool
	YawRight     bool
	RollLeft     bool
	RollRight    bool
	MoveUp       bool
	MoveDown     bool
	Brake        bool
	Shoot        bool
}

// AircraftState is the flyable state of one aircraft.
type AircraftState struct {
	Position Vec3
	Rotation Vec3 // Euler radians: X pitch, Y yaw, Z roll
	Velocity Vec3
	Health   float64 // 0..MaxHealth
	Throttle float64 // 0..1
}

// Speed is the velocity magnitude in world units per second.
func (a AircraftState) Speed() float64 {
	return a.Velocity.Len()
}

// Integrate advances one aircraft by dt seconds of explicit Euler. It never
// mutates its input and has no failure modes: every output is clamped.
func Integrate(s AircraftState, c Controls, dt float64, tu Tuning) AircraftState {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	next := s

	// Throttle ramps, brake bleeds twice as fast.
	if c.ThrottleUp {
		next.Throttle = clamp01(next.Throttle + tu.ThrottleRate*dt)
	}
	if c.ThrottleDown {
		next.Throttle = clamp01(next.Throttle - tu.ThrottleRate*dt)
	}
	if c.Brake {
		next.Throttle = clamp01(next.Throttle - tu.ThrottleRate*2*dt)
	}
	next.Throttle = clamp01(next.Throttle)

	// Orientation.
	if c.PitchUp {
		next.Rotation.X -= tu.PitchRate * dt
	}
	if c.PitchDown {
		next.Rotation.X += tu.PitchRate * dt
	}
	if c.YawLeft {
		next.Rotation.Y += tu.YawRate * dt
	}
	if c.YawRight {
		next.Rotation.Y -= tu.YawRate * dt
	}
	if c.RollLeft {
		next.Rotation.Z += tu.RollRate * dt
	}
	if c.RollRight {
		next.Rotation.Z -= tu.RollRate * dt
	}

	// Direct vertical assist.
	if c.MoveUp {
		next.Velocity.Y += tu.VerticalRate * dt
	}
	if c.MoveDown {
		next.Velocity.Y -= tu.VerticalRate * dt
	}

	next.Rotation.X = clamp(next.Rotation.X, -tu.MaxPitch, tu.MaxPitch)
	next.Rotation.Z = clamp(next.Rotation.Z, -tu.MaxRoll, tu.MaxRoll)

	thrust := Forward(next.Rotation).Scale(next.Throttle * tu.MaxSpeed)

	next.Velocity = next.Velocity.Scale(tu.Drag)
	next.Velocity = next.Velocity.Add(thrust.Scale(dt))
	next.Velocity.Y -= tu.Gravity * dt

	next.Position = next.Position.Add(next.Velocity.Scale(dt))

	// Ground plane.
	if next.Position.Y <= tu.GroundLevel {
		next.Position.Y = tu.GroundLevel
		if next.Velocity.Y < 0 {
			next.Velocity.Y = 0
		}
	}

	// Square boundary: clamp and kill the outward component.
	next.Position.X, next.Velocity.X = clampAxis(next.Position.X, next.Velocity.X, tu.Boundary)
	next.Position.Z, next.Velocity.Z = clampAxis(next.Position.Z, next.Velocity.Z, tu.Boundary)

	// Auto-level pitch and roll. Floor at 0 so a huge dt cannot flip the sign.
	level := 1 - tu.LevelingRate*dt
	if level < 0 {
		level = 0
	}
	next.Rotation.X *= level
	next.Rotation.Z *= level

	next.Health = clamp(next.Health, 0, tu.MaxHealth)
	return next
}

func clampAxis(pos, vel, bound float64) (float64, float64) {
	if pos > bound {
		pos = bound
		if vel > 0 {
			vel = 0
		}
	}
	if pos < -bound {
		pos = -bound
		if vel < 0 {
			vel = 0
		}
	}
	return pos, vel
}
