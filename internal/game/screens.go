package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

const (
	cardW   = 136
	cardH   = 74
	cardGap = 10
)

// centered returns the x that centres s on a screen of width w.
func centered(s string, w int) int {
	return (w - len(s)*glyphW) / 2
}

func (g *Game) drawTeamSelection(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1E, G: 0x3A, B: 0x8A, A: 255})

	title := "NFL Fighter Squadron"
	sub := "Select your team's fighter aircraft"
	drawText(screen, title, centered(title, g.width), 24, colText)
	drawText(screen, sub, centered(sub, g.width), 44, colDim)

	rows := (len(sim.Roster) + teamGridCols - 1) / teamGridCols
	gridW := teamGridCols*cardW + (teamGridCols-1)*cardGap
	x0 := (g.width - gridW) / 2
	y0 := 76

	for i, t := range sim.Roster {
		col, row := i%teamGridCols, i/teamGridCols
		x := float32(x0 + col*(cardW+cardGap))
		y := float32(y0 + row*(cardH+cardGap))
		primary, secondary := teamColors(t)

		bg := color.RGBA{R: 255, G: 255, B: 255, A: 30}
		if i == g.cursor {
			bg = color.RGBA{R: 255, G: 255, B: 255, A: 70}
		}
		vector.FillRect(screen, x, y, cardW, cardH, bg, false)
		if i == g.cursor {
			vector.StrokeRect(screen, x, y, cardW, cardH, 3, colWarn, false)
		}

		// Aircraft swatch.
		vector.FillRect(screen, x+cardW/2-20, y+8, 40, 20, primary, false)
		vector.StrokeRect(screen, x+cardW/2-20, y+8, 40, 20, 2, secondary, false)

		drawText(screen, t.Abbreviation, int(x)+cardW/2-len(t.Abbreviation)*glyphW/2, int(y)+32, colText)
		name := t.Name
		if len(name)*glyphW > cardW-8 {
			name = name[:(cardW-8)/glyphW]
		}
		drawText(screen, name, int(x)+cardW/2-len(name)*glyphW/2, int(y)+50, colDim)
	}

	sel := sim.Roster[g.cursor]
	y := y0 + rows*(cardH+cardGap) + 10
	line := fmt.Sprintf("Selected: %s", sel.FullName())
	drawText(screen, line, centered(line, g.width), y, colText)
	cta := "Arrows: choose   Enter: Take Flight!"
	drawText(screen, cta, centered(cta, g.width), y+22, colWarn)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 160}, false)

	r := g.report
	lines := []string{
		"Game Over",
		"",
		fmt.Sprintf("%s  score %d  wave %d", sim.TeamOrDefault(r.Team).FullName(), r.Score, r.Wave),
		fmt.Sprintf("kills %d   hits %d/%d (%.0f%%)   hits taken %d", r.Kills, r.Hits, r.Shots, r.Accuracy*100, r.HitsTaken),
		fmt.Sprintf("time aloft %.1fs   grade %s", r.Seconds, g.grade.Grade),
		"",
		"Enter/R: Play Again   C: Copy summary",
	}
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	w := maxLen*glyphW + padX*2
	x := (g.width - w) / 2
	y := g.height/2 - len(lines)*lineH/2
	drawPanel(screen, x, y, lines)
	for i, l := range lines {
		col := colDim
		if i == 0 {
			col = colBad
		}
		drawText(screen, l, centered(l, g.width), y+padY+i*lineH, col)
	}
}
