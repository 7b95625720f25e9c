package game

import (
	"math"
	"reflect"
	"testing"
)

func TestValueNoise2D_Range(t *testing.T) {
	seed := int64(12345)
	for y := -10.0; y < 10.0; y += 0.37 {
		for x := -10.0; x < 10.0; x += 0.37 {
			v := valueNoise2D(x, y, seed)
			if v < 0 || v > 1 {
				t.Fatalf("noise at (%.2f,%.2f) = %f, out of [0,1]", x, y, v)
			}
		}
	}
}

func TestGenerateTerrain_Deterministic(t *testing.T) {
	a := GenerateTerrain(7)
	b := GenerateTerrain(7)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different terrain")
	}
	c := GenerateTerrain(8)
	if reflect.DeepEqual(a.Clouds, c.Clouds) {
		t.Fatal("different seeds produced identical clouds")
	}
}

func TestGenerateTerrain_Ranges(t *testing.T) {
	tr := GenerateTerrain(42)
	if len(tr.Clouds) != 20 || len(tr.Mountains) != 8 {
		t.Fatalf("clouds=%d mountains=%d, want 20 and 8", len(tr.Clouds), len(tr.Mountains))
	}
	for i, c := range tr.Clouds {
		if math.Abs(c.Pos.X) > 400 || math.Abs(c.Pos.Z) > 400 {
			t.Fatalf("cloud %d outside ±400: %+v", i, c.Pos)
		}
		if c.Pos.Y < 50 || c.Pos.Y > 150 || c.Scale < 2 || c.Scale > 5 {
			t.Fatalf("cloud %d out of range: %+v", i, c)
		}
	}
	for i, m := range tr.Mountains {
		if r := math.Hypot(m.X, m.Z); math.Abs(r-400) > 1e-9 {
			t.Fatalf("mountain %d at radius %f, want 400", i, r)
		}
		if m.Height < 50 || m.Height > 150 {
			t.Fatalf("mountain %d height %f", i, m.Height)
		}
	}
	shades := map[uint8]bool{}
	for _, p := range tr.Patches {
		if p.Shade > 12 {
			t.Fatalf("patch shade %d > 12", p.Shade)
		}
		shades[p.Shade] = true
	}
	if len(tr.Patches) != 28*28 || len(shades) < 3 {
		t.Fatalf("patches=%d distinct shades=%d", len(tr.Patches), len(shades))
	}
}
