package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

// viewport maps world X/Z onto the screen, looking straight down. -Z is up.
type viewport struct {
	cx, cy float64
	scale  float64 // pixels per world unit
}

func (g *Game) worldViewport() viewport {
	bound := g.store.Tuning().Boundary
	if bound <= 0 {
		bound = 100
	}
	span := math.Min(float64(g.width), float64(g.height))
	return viewport{
		cx:    float64(g.width) / 2,
		cy:    float64(g.height) / 2,
		scale: span / (2 * bound * 1.3),
	}
}

func (v viewport) project(x, z float64) (float32, float32) {
	return float32(v.cx + x*v.scale), float32(v.cy + z*v.scale)
}

// altScale grows sprites with height so altitude reads at a glance.
func altScale(y float64) float32 {
	return float32(1 + clampF(y, 0, 150)/60)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(colSky)
	vp := g.worldViewport()

	// Ground patches.
	for _, p := range g.terrain.Patches {
		x0, y0 := vp.project(p.X, p.Z)
		sz := float32(p.Size * vp.scale)
		vector.FillRect(screen, x0, y0, sz+1, sz+1, shade(colGrass, int(p.Shade)*3-18), false)
	}

	// Flight area boundary.
	b := g.store.Tuning().Boundary
	bx, by := vp.project(-b, -b)
	vector.StrokeRect(screen, bx, by, float32(2*b*vp.scale), float32(2*b*vp.scale), 2, color.RGBA{R: 255, G: 255, B: 255, A: 90}, false)

	// Shadows first so aircraft draw over them.
	pl := g.store.Player()
	for _, t := range g.scene.Targets() {
		sx, sy := vp.project(t.Pos.X, t.Pos.Z)
		vector.FillCircle(screen, sx, sy, 4, color.RGBA{A: 60}, false)
	}
	px, py := vp.project(pl.Position.X, pl.Position.Z)
	vector.FillCircle(screen, px, py, 4, color.RGBA{A: 60}, false)

	for _, p := range g.scene.Projectiles() {
		x, y := vp.project(p.Position.X, p.Position.Z)
		col := colRound
		if p.Side == sim.SideEnemy {
			col = colEnemyRnd
		}
		vector.FillCircle(screen, x, y, 2, col, false)
	}

	for _, t := range g.scene.Targets() {
		team := sim.TeamOrDefault(t.TeamID)
		drawAircraft(screen, vp, t.Pos, enemyHeading(t, g.scene.Elapsed(), g.store.Tuning()), team)
	}
	if g.store.Phase() == sim.PhasePlaying {
		f := sim.Forward(pl.Rotation)
		drawAircraft(screen, vp, pl.Position, math.Atan2(f.X, -f.Z), g.store.Team())
	}

	// Clouds sit above everything that flies low.
	for _, c := range g.terrain.Clouds {
		x, y := vp.project(c.Pos.X, c.Pos.Z)
		if x < -60 || y < -60 || x > float32(g.width)+60 || y > float32(g.height)+60 {
			continue
		}
		r := float32(c.Scale * 10 * vp.scale)
		vector.FillCircle(screen, x, y, r, colCloud, true)
		vector.FillCircle(screen, x+r*0.6, y+r*0.2, r*0.7, colCloud, true)
	}

	g.drawRadar(screen)
}

// enemyHeading points along the orbit tangent.
func enemyHeading(t sim.Target, elapsed float64, tu sim.Tuning) float64 {
	angle := elapsed*tu.OrbitRate + float64(t.Slot)*tu.OrbitSpacing
	h := math.Atan2(-math.Sin(angle), -math.Cos(angle))
	if tu.OrbitRate < 0 {
		h += math.Pi
	}
	return h
}

// drawAircraft draws a team-coloured arrow. heading is screen-space radians
// clockwise from up.
func drawAircraft(screen *ebiten.Image, vp viewport, pos sim.Vec3, heading float64, team sim.Team) {
	primary, secondary := teamColors(team)
	x, y := vp.project(pos.X, pos.Z)
	s := 7 * altScale(pos.Y)

	sin, cos := float32(math.Sin(heading)), float32(math.Cos(heading))
	pt := func(fwd, right float32) (float32, float32) {
		return x + fwd*sin + right*cos, y - fwd*cos + right*sin
	}

	var path vector.Path
	nx, ny := pt(s*1.4, 0)
	lx, ly := pt(-s, -s)
	tx, ty := pt(-s*0.4, 0)
	rx, ry := pt(-s, s)
	path.MoveTo(nx, ny)
	path.LineTo(lx, ly)
	path.LineTo(tx, ty)
	path.LineTo(rx, ry)
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(primary)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)

	vector.StrokeLine(screen, nx, ny, lx, ly, 1.5, secondary, true)
	vector.StrokeLine(screen, nx, ny, rx, ry, 1.5, secondary, true)
}

const (
	radarSize  = 150
	radarRange = 450.0 // world units from centre to edge
)

// drawRadar is a north-up overview including the mountain ring.
func (g *Game) drawRadar(screen *ebiten.Image) {
	x0 := float32(g.width - radarSize - 10)
	y0 := float32(10)
	vector.FillRect(screen, x0, y0, radarSize, radarSize, colPanel, false)
	vector.StrokeRect(screen, x0, y0, radarSize, radarSize, 1, colPanelRim, false)

	half := float32(radarSize) / 2
	k := float64(half) / radarRange
	dot := func(x, z float64) (float32, float32) {
		return x0 + half + float32(x*k), y0 + half + float32(z*k)
	}

	for _, m := range g.terrain.Mountains {
		mx, my := dot(m.X, m.Z)
		vector.FillCircle(screen, mx, my, float32(m.Radius*k)+float32(m.Height/75), colMountain, false)
	}
	b := g.store.Tuning().Boundary
	bx, by := dot(-b, -b)
	vector.StrokeRect(screen, bx, by, float32(2*b*k), float32(2*b*k), 1, colPanelRim, false)

	for _, t := range g.scene.Targets() {
		ex, ey := dot(t.Pos.X, t.Pos.Z)
		vector.FillRect(screen, ex-2, ey-2, 4, 4, colBad, false)
	}
	pl := g.store.Player()
	px, py := dot(pl.Position.X, pl.Position.Z)
	vector.FillRect(screen, px-2, py-2, 4, 4, colGood, false)
}
