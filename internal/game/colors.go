package game

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

var (
	colSky      = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 255}
	colGrass    = color.RGBA{R: 0x22, G: 0x8B, B: 0x22, A: 255}
	colMountain = color.RGBA{R: 0x8B, G: 0x73, B: 0x55, A: 255}
	colCloud    = color.RGBA{R: 255, G: 255, B: 255, A: 170}
	colPanel    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	colPanelRim = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	colText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colDim      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colGood     = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 255}
	colWarn     = color.RGBA{R: 0xEA, G: 0xB3, B: 0x08, A: 255}
	colBad      = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 255}
	colRound    = color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 255}
	colEnemyRnd = color.RGBA{R: 0xFF, G: 0x45, B: 0x00, A: 255}
)

// parseHex reads "#RRGGBB" (or "RRGGBB"). Anything else returns fallback.
func parseHex(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// teamColors resolves a team's primary and secondary colours.
func teamColors(t sim.Team) (primary, secondary color.RGBA) {
	primary = parseHex(t.Primary, color.RGBA{R: 255, A: 255})
	secondary = parseHex(t.Secondary, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return primary, secondary
}

// healthColor is green above half, yellow above a quarter, red below.
func healthColor(health, maxHealth float64) color.RGBA {
	if maxHealth <= 0 {
		return colBad
	}
	switch pct := health / maxHealth * 100; {
	case pct > 50:
		return colGood
	case pct > 25:
		return colWarn
	default:
		return colBad
	}
}

// shade offsets c by d on each channel, saturating.
func shade(c color.RGBA, d int) color.RGBA {
	adj := func(v uint8) uint8 {
		n := int(v) + d
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return color.RGBA{R: adj(c.R), G: adj(c.G), B: adj(c.B), A: c.A}
}
