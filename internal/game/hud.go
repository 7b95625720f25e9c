package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

const (
	glyphW = 7  // basicfont.Face7x13 advance
	lineH  = 15 // line spacing at 1x
	padX   = 8
	padY   = 6
)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y+11, col)
}

// drawPanel fills a translucent box sized for lines and returns its size.
func drawPanel(dst *ebiten.Image, x, y int, lines []string) (w, h int) {
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	w = maxLen*glyphW + padX*2
	h = len(lines)*lineH + padY*2
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), colPanel, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1.0, colPanelRim, false)
	return w, h
}

// hudLines are the left-hand flight readouts.
func (g *Game) hudLines() []string {
	h := g.store.HUD()
	return []string{
		fmt.Sprintf("SPEED: %.0f", h.Speed),
		fmt.Sprintf("ALT: %.0f", h.Altitude),
		fmt.Sprintf("THROTTLE: %.0f%%", h.ThrottlePct),
		"AMMO: INF",
	}
}

// controlLines lists the key bindings shown on screen.
func (g *Game) controlLines() []string {
	km := g.keymap
	sound := "ON"
	if g.cues.Muted() {
		sound = "OFF"
	}
	return []string{
		"CONTROLS",
		fmt.Sprintf("%s/%s: Throttle", km.Describe(ActionThrottleUp), km.Describe(ActionThrottleDown)),
		fmt.Sprintf("%s/%s: Yaw", km.Describe(ActionYawLeft), km.Describe(ActionYawRight)),
		fmt.Sprintf("%s/%s: Pitch", km.Describe(ActionPitchDown), km.Describe(ActionPitchUp)),
		fmt.Sprintf("%s/%s: Roll", km.Describe(ActionRollLeft), km.Describe(ActionRollRight)),
		fmt.Sprintf("%s/%s: Climb/Dive", km.Describe(ActionMoveUp), km.Describe(ActionMoveDown)),
		fmt.Sprintf("%s: Fire", km.Describe(ActionShoot)),
		fmt.Sprintf("%s: Air brake", km.Describe(ActionBrake)),
		"M: Sound " + sound,
		fmt.Sprintf("SIM: %s  P=pause  ,/. speed", g.speedLabel()),
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	h := g.store.HUD()
	primary, secondary := teamColors(h.Team)

	// Team badge and integrity bar.
	const bx, by = 10, 10
	vector.FillRect(screen, bx, by, 260, 78, colPanel, false)
	vector.FillRect(screen, bx+8, by+8, 44, 28, primary, false)
	vector.StrokeRect(screen, bx+8, by+8, 44, 28, 2, secondary, false)
	drawText(screen, h.Team.Abbreviation, bx+12, by+15, secondary)
	drawText(screen, h.Team.FullName(), bx+60, by+8, colText)
	drawText(screen, fmt.Sprintf("Score %d  Wave %d", h.Score, h.Wave), bx+60, by+24, colDim)

	maxHealth := g.store.Tuning().MaxHealth
	frac := 0.0
	if maxHealth > 0 {
		frac = clampF(h.Health/maxHealth, 0, 1)
	}
	drawText(screen, fmt.Sprintf("Aircraft Integrity %.0f%%", frac*100), bx+8, by+42, colText)
	vector.FillRect(screen, bx+8, by+60, 244, 10, color.RGBA{R: 60, G: 60, B: 60, A: 255}, false)
	vector.FillRect(screen, bx+8, by+60, float32(244*frac), 10, healthColor(h.Health, maxHealth), false)

	// Enemy count.
	enemies := fmt.Sprintf("Enemies: %d", h.EnemyCount)
	drawPanel(screen, 10, by+86, []string{enemies})
	drawText(screen, enemies, 10+padX, by+86+padY, colBad)

	// Flight readouts, bottom left.
	lines := g.hudLines()
	_, ph := drawPanel(screen, 10, g.height-len(lines)*lineH-padY*2-10, lines)
	y := g.height - ph - 10 + padY
	for _, l := range lines {
		drawText(screen, l, 10+padX, y, colText)
		y += lineH
	}

	// Controls, bottom centre-left.
	help := g.controlLines()
	hx := 10 + 180
	_, hh := drawPanel(screen, hx, g.height-len(help)*lineH-padY*2-10, help)
	y = g.height - hh - 10 + padY
	for i, l := range help {
		col := colDim
		if i == 0 {
			col = colText
		}
		drawText(screen, l, hx+padX, y, col)
		y += lineH
	}

	g.drawCrosshair(screen)
}

// crosshairLead is how far ahead of the nose the gun cross sits.
const crosshairLead = 40.0

// drawCrosshair marks where rounds fired now will pass.
func (g *Game) drawCrosshair(screen *ebiten.Image) {
	pl := g.store.Player()
	aim := pl.Position.Add(sim.Forward(pl.Rotation).Scale(crosshairLead))
	cx, cy := g.worldViewport().project(aim.X, aim.Z)
	col := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	vector.StrokeCircle(screen, cx, cy, 10, 1.5, col, true)
	vector.StrokeLine(screen, cx-16, cy, cx-6, cy, 1.5, col, false)
	vector.StrokeLine(screen, cx+6, cy, cx+16, cy, 1.5, col, false)
	vector.StrokeLine(screen, cx, cy-16, cx, cy-6, 1.5, col, false)
	vector.StrokeLine(screen, cx, cy+6, cx, cy+16, 1.5, col, false)
}

func (g *Game) drawStatus(screen *ebiten.Image, s string) {
	w := len(s)*glyphW + padX*2
	x := (g.width - w) / 2
	y := 14
	drawPanel(screen, x, y, []string{s})
	drawText(screen, s, x+padX, y+padY, colWarn)
}
