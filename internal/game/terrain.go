package game

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

// terrainConfig holds tuneable decoration parameters.
type terrainConfig struct {
	Extent     float64 // ground patches cover ±Extent on X and Z
	PatchSize  float64 // world units per ground cell
	NoiseScale float64 // smaller = broader light/dark bands

	CloudCount  int
	CloudSpread float64 // clouds within ±CloudSpread on X and Z
	CloudMinY   float64
	CloudMaxY   float64
	CloudMinS   float64
	CloudMaxS   float64

	MountainCount  int
	MountainRing   float64 // radius of the mountain ring
	MountainMinH   float64
	MountainMaxH   float64
	MountainRadius float64 // cone base radius
}

var defaultTerrainConfig = terrainConfig{
	Extent:     140,
	PatchSize:  10,
	NoiseScale: 0.035,

	CloudCount:  20,
	CloudSpread: 400,
	CloudMinY:   50,
	CloudMaxY:   150,
	CloudMinS:   2,
	CloudMaxS:   5,

	MountainCount:  8,
	MountainRing:   400,
	MountainMinH:   50,
	MountainMaxH:   150,
	MountainRadius: 30,
}

// GroundPatch is one cell of ground colour variation.
type GroundPatch struct {
	X, Z  float64 // cell min corner
	Size  float64
	Shade uint8 // 0..12 offset from base green
}

// Cloud is a flattened sphere; Scale multiplies a base radius of 10.
type Cloud struct {
	Pos   sim.Vec3
	Scale float64
}

// Mountain is a cone on the horizon ring.
type Mountain struct {
	X, Z   float64
	Height float64
	Radius float64
}

// Terrain is the static scenery for one seed.
type Terrain struct {
	Seed      int64
	Patches   []GroundPatch
	Clouds    []Cloud
	Mountains []Mountain
}

// GenerateTerrain builds deterministic scenery for seed.
func GenerateTerrain(seed int64) Terrain {
	return generateTerrain(seed, defaultTerrainConfig)
}

func generateTerrain(seed int64, cfg terrainConfig) Terrain {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic only
	tr := Terrain{Seed: seed}

	noiseSeed := rng.Int63()
	cells := int(math.Ceil(2 * cfg.Extent / cfg.PatchSize))
	tr.Patches = make([]GroundPatch, 0, cells*cells)
	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			x := -cfg.Extent + float64(col)*cfg.PatchSize
			z := -cfg.Extent + float64(row)*cfg.PatchSize
			n := valueNoise2D(x*cfg.NoiseScale, z*cfg.NoiseScale, noiseSeed)
			tr.Patches = append(tr.Patches, GroundPatch{
				X: x, Z: z, Size: cfg.PatchSize,
				Shade: uint8(math.Round(n * 12)),
			})
		}
	}

	tr.Clouds = make([]Cloud, 0, cfg.CloudCount)
	for i := 0; i < cfg.CloudCount; i++ {
		tr.Clouds = append(tr.Clouds, Cloud{
			Pos: sim.Vec3{
				X: (rng.Float64() - 0.5) * 2 * cfg.CloudSpread,
				Y: cfg.CloudMinY + rng.Float64()*(cfg.CloudMaxY-cfg.CloudMinY),
				Z: (rng.Float64() - 0.5) * 2 * cfg.CloudSpread,
			},
			Scale: cfg.CloudMinS + rng.Float64()*(cfg.CloudMaxS-cfg.CloudMinS),
		})
	}

	tr.Mountains = make([]Mountain, 0, cfg.MountainCount)
	for i := 0; i < cfg.MountainCount; i++ {
		angle := float64(i) / float64(cfg.MountainCount) * 2 * math.Pi
		tr.Mountains = append(tr.Mountains, Mountain{
			X:      math.Cos(angle) * cfg.MountainRing,
			Z:      math.Sin(angle) * cfg.MountainRing,
			Height: cfg.MountainMinH + rng.Float64()*(cfg.MountainMaxH-cfg.MountainMinH),
			Radius: cfg.MountainRadius,
		})
	}
	return tr
}

// valueNoise2D returns smooth noise in [0,1] at (x, y).
func valueNoise2D(x, y float64, seed int64) float64 {
	xi := int(math.Floor(x))
	yi := int(math.Floor(y))
	xf := x - float64(xi)
	yf := y - float64(yi)

	// Hermite smoothstep.
	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)

	n00 := latticeValue(xi, yi, seed)
	n10 := latticeValue(xi+1, yi, seed)
	n01 := latticeValue(xi, yi+1, seed)
	n11 := latticeValue(xi+1, yi+1, seed)

	nx0 := n00*(1-u) + n10*u
	nx1 := n01*(1-u) + n11*u
	return nx0*(1-v) + nx1*v
}

// latticeValue returns a pseudo-random value in [0,1] for integer coordinates.
func latticeValue(x, y int, seed int64) float64 {
	h := uint64(seed)
	h ^= uint64(x) * 0x517cc1b727220a95
	h ^= uint64(y) * 0x6c62272e07bb0142
	h = h*0x2545f4914f6cdd1d + 0x14057b7ef767814f
	h ^= h >> 16
	h *= 0xd6e8feb86659fd93
	h ^= h >> 16
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}
