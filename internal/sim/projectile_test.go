package sim

import "testing"

func TestProjectilePool_SpawnNormalizes(t *testing.T) {
	pp := NewProjectilePool(4)
	id, ok := pp.Spawn(Vec3{1, 2, 3}, Vec3{0, 0, -5}, SidePlayer, 1.5)
	if !ok || id != 1 {
		t.Fatalf("spawn = (%d,%v), want (1,true)", id, ok)
	}
	p := pp.At(0)
	if p.Direction != (Vec3{0, 0, -1}) {
		t.Fatalf("direction = %+v, want unit -Z", p.Direction)
	}
	if p.Position != p.Origin || p.CreatedAt != 1.5 {
		t.Fatalf("unexpected spawn state %+v", *p)
	}
	if age := p.Age(2); age != 0.5 {
		t.Fatalf("age = %f, want 0.5", age)
	}
}

func TestProjectilePool_RejectsZeroDirection(t *testing.T) {
	pp := NewProjectilePool(1)
	if _, ok := pp.Spawn(Vec3{}, Vec3{}, SideEnemy, 0); ok {
		t.Fatal("zero direction accepted")
	}
	if pp.Len() != 0 {
		t.Fatalf("len = %d, want 0", pp.Len())
	}
}

func TestProjectilePool_SwapRemove(t *testing.T) {
	pp := NewProjectilePool(4)
	for i := 0; i < 4; i++ {
		pp.Spawn(Vec3{X: float64(i)}, Vec3{X: 1}, SidePlayer, 0)
	}
	pp.RemoveAt(1)
	if pp.Len() != 3 {
		t.Fatalf("len = %d, want 3", pp.Len())
	}
	// Last entry (id 4) moved into the hole.
	if got := pp.At(1).ID; got != 4 {
		t.Fatalf("slot 1 holds id %d, want 4", got)
	}
	pp.RemoveAt(2)
	pp.RemoveAt(0)
	pp.RemoveAt(0)
	if pp.Len() != 0 {
		t.Fatalf("len = %d after removing all", pp.Len())
	}
}

func TestProjectilePool_ResetKeepsIDCounter(t *testing.T) {
	pp := NewProjectilePool(2)
	pp.Spawn(Vec3{}, Vec3{Y: 1}, SidePlayer, 0)
	pp.Spawn(Vec3{}, Vec3{Y: 1}, SidePlayer, 0)
	pp.Reset()
	if pp.Len() != 0 {
		t.Fatalf("len = %d after reset", pp.Len())
	}
	id, _ := pp.Spawn(Vec3{}, Vec3{Y: 1}, SidePlayer, 0)
	if id != 3 {
		t.Fatalf("id after reset = %d, want 3", id)
	}
}
