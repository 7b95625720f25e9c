package sim

import (
	"math"
	"testing"
)

func allControls() Controls {
	return Controls{
		ThrottleUp: true, PitchUp: true, YawLeft: true, RollLeft: true,
		MoveUp: true, Shoot: true,
	}
}

func TestIntegrate_ClampsForAnyDelta(t *testing.T) {
	tu := DefaultTuning()
	deltas := []float64{0, 1e-6, 1.0 / 120, 1.0 / 60, 0.1, 1, 10, 1e6, -1, math.NaN()}
	inputs := []Controls{
		{},
		allControls(),
		{ThrottleDown: true, PitchDown: true, YawRight: true, RollRight: true, MoveDown: true},
		{Brake: true, ThrottleUp: true},
	}

	for _, dt := range deltas {
		for ci, c := range inputs {
			s := AircraftState{Position: Vec3{0, 10, 0}, Health: tu.MaxHealth, Throttle: 0.5}
			for i := 0; i < 50; i++ {
				s = Integrate(s, c, dt, tu)
				if s.Throttle < 0 || s.Throttle > 1 {
					t.Fatalf("dt=%v controls#%d step %d: throttle %f out of [0,1]", dt, ci, i, s.Throttle)
				}
				if math.Abs(s.Rotation.X) > tu.MaxPitch {
					t.Fatalf("dt=%v controls#%d step %d: pitch %f beyond ±%f", dt, ci, i, s.Rotation.X, tu.MaxPitch)
				}
				if math.Abs(s.Rotation.Z) > tu.MaxRoll {
					t.Fatalf("dt=%v controls#%d step %d: roll %f beyond ±%f", dt, ci, i, s.Rotation.Z, tu.MaxRoll)
				}
				if s.Position.Y < tu.GroundLevel {
					t.Fatalf("dt=%v controls#%d step %d: altitude %f under ground", dt, ci, i, s.Position.Y)
				}
				if math.Abs(s.Position.X) > tu.Boundary || math.Abs(s.Position.Z) > tu.Boundary {
					t.Fatalf("dt=%v controls#%d step %d: left flight area at %+v", dt, ci, i, s.Position)
				}
			}
		}
	}
}

func TestIntegrate_DoesNotMutateInput(t *testing.T) {
	tu := DefaultTuning()
	s := AircraftState{Position: Vec3{1, 10, 2}, Throttle: 0.3, Health: 80}
	before := s
	_ = Integrate(s, allControls(), 1.0/60, tu)
	if s != before {
		t.Fatalf("input mutated: %+v -> %+v", before, s)
	}
}

func TestIntegrate_ZeroDeltaOnlyDragsVelocity(t *testing.T) {
	tu := DefaultTuning()
	s := AircraftState{Position: Vec3{0, 20, 0}, Velocity: Vec3{10, 0, 0}, Throttle: 1, Health: 100}
	next := Integrate(s, allControls(), 0, tu)
	if next.Position != s.Position {
		t.Fatalf("position moved with dt=0: %+v", next.Position)
	}
	if next.Throttle != 1 || next.Rotation != (Vec3{}) {
		t.Fatalf("controls applied with dt=0: throttle=%f rot=%+v", next.Throttle, next.Rotation)
	}
	if !almostEqual(next.Velocity.X, 10*tu.Drag, 1e-12) {
		t.Fatalf("velocity.x = %f, want %f", next.Velocity.X, 10*tu.Drag)
	}
}

func TestIntegrate_BrakeBleedsTwiceAsFast(t *testing.T) {
	tu := DefaultTuning()
	dt := 0.05
	s := AircraftState{Position: Vec3{0, 50, 0}, Throttle: 0.8}
	down := Integrate(s, Controls{ThrottleDown: true}, dt, tu)
	brake := Integrate(s, Controls{Brake: true}, dt, tu)
	if !almostEqual(s.Throttle-brake.Throttle, 2*(s.Throttle-down.Throttle), 1e-12) {
		t.Fatalf("brake drop %f, throttle-down drop %f", s.Throttle-brake.Throttle, s.Throttle-down.Throttle)
	}
}

func TestIntegrate_GroundClampStopsDescent(t *testing.T) {
	tu := DefaultTuning()
	s := AircraftState{Position: Vec3{0, tu.GroundLevel + 0.1, 0}, Velocity: Vec3{0, -30, 0}}
	next := Integrate(s, Controls{}, 1.0/60, tu)
	if next.Position.Y != tu.GroundLevel {
		t.Fatalf("altitude = %f, want ground %f", next.Position.Y, tu.GroundLevel)
	}
	if next.Velocity.Y != 0 {
		t.Fatalf("vertical velocity = %f after ground contact, want 0", next.Velocity.Y)
	}
}

func TestIntegrate_BoundaryKillsOutwardVelocity(t *testing.T) {
	tu := DefaultTuning()
	s := AircraftState{Position: Vec3{tu.Boundary - 0.1, 50, -tu.Boundary + 0.1}, Velocity: Vec3{40, 0, -40}}
	next := Integrate(s, Controls{}, 1.0/60, tu)
	if next.Position.X != tu.Boundary || next.Position.Z != -tu.Boundary {
		t.Fatalf("position = %+v, want clamped to the edge", next.Position)
	}
	if next.Velocity.X != 0 || next.Velocity.Z != 0 {
		t.Fatalf("outward velocity survived: %+v", next.Velocity)
	}
}

func TestIntegrate_AutoLevelsPitchAndRoll(t *testing.T) {
	tu := DefaultTuning()
	s := AircraftState{Position: Vec3{0, 50, 0}, Rotation: Vec3{0.5, 0.3, -0.8}}
	for i := 0; i < 600; i++ {
		s = Integrate(s, Controls{}, 1.0/60, tu)
	}
	if math.Abs(s.Rotation.X) > 0.01 || math.Abs(s.Rotation.Z) > 0.02 {
		t.Fatalf("not levelled after 10s: rot=%+v", s.Rotation)
	}
	if s.Rotation.Y != 0.3 {
		t.Fatalf("yaw changed without input: %f", s.Rotation.Y)
	}
}

func TestIntegrate_LevelFlightSettlesOnGround(t *testing.T) {
	tu := DefaultTuning()
	tu.Boundary = 1e9
	dt := 1.0 / 60
	s := AircraftState{Position: Vec3{0, 10, 0}, Health: tu.MaxHealth}
	full := Controls{ThrottleUp: true}

	for i := 0; i < 600; i++ {
		s = Integrate(s, full, dt, tu)
		if s.Position.Y < tu.GroundLevel {
			t.Fatalf("frame %d: altitude %f under ground", i, s.Position.Y)
		}
	}
	if s.Position.Y != tu.GroundLevel {
		t.Fatalf("level flight with no lift should settle at ground, alt=%f", s.Position.Y)
	}
	// Terminal speed where drag loss equals thrust gain.
	terminal := tu.MaxSpeed * dt / (1 - tu.Drag)
	if !almostEqual(-s.Velocity.Z, terminal, 0.01) {
		t.Fatalf("forward speed %f, want terminal %f", -s.Velocity.Z, terminal)
	}
}

func TestIntegrate_NoseHighClimbStabilizes(t *testing.T) {
	tu := DefaultTuning()
	tu.Boundary = 1e9
	dt := 1.0 / 60
	s := AircraftState{Position: Vec3{0, 10, 0}, Health: tu.MaxHealth}
	// PitchDown raises the nose in this rotation convention.
	climb := Controls{ThrottleUp: true, PitchDown: true}

	var prevVY float64
	for i := 0; i < 900; i++ {
		prevVY = s.Velocity.Y
		s = Integrate(s, climb, dt, tu)
	}
	if s.Position.Y <= 10 {
		t.Fatalf("climb never gained altitude: alt=%f", s.Position.Y)
	}
	if s.Velocity.Y <= 0 {
		t.Fatalf("vertical speed %f, want positive climb", s.Velocity.Y)
	}
	if math.Abs(s.Velocity.Y-prevVY) > 1e-3 {
		t.Fatalf("vertical speed still changing: %f -> %f", prevVY, s.Velocity.Y)
	}
}
