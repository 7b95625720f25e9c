package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 14
	feedVisible    = 8
)

// FeedEntry is a single line in the combat feed.
type FeedEntry struct {
	Frame   int
	Label   string // "P", enemy id or "--"
	Side    sim.Side
	Message string
}

// CombatFeed is a ring buffer of combat messages rendered on-screen.
type CombatFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewCombatFeed creates a feed with a fixed capacity.
func NewCombatFeed() *CombatFeed {
	return &CombatFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (cf *CombatFeed) Add(frame int, label string, side sim.Side, msg string) {
	cf.entries[cf.head] = FeedEntry{
		Frame:   frame,
		Label:   label,
		Side:    side,
		Message: msg,
	}
	cf.head = (cf.head + 1) % feedMaxEntries
	if cf.count < feedMaxEntries {
		cf.count++
	}
}

// AddEvent records ev if it is worth showing. Shots and expiries are skipped.
func (cf *CombatFeed) AddEvent(frame int, ev sim.Event) {
	label, msg, ok := describeEvent(ev)
	if !ok {
		return
	}
	cf.Add(frame, label, ev.Side, msg)
}

// Reset empties the feed.
func (cf *CombatFeed) Reset() {
	cf.head = 0
	cf.count = 0
}

// Len is the number of stored entries.
func (cf *CombatFeed) Len() int { return cf.count }

// Recent returns entries in chronological order (oldest first).
func (cf *CombatFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, cf.count)
	for i := 0; i < cf.count; i++ {
		idx := (cf.head - cf.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = cf.entries[idx]
	}
	return result
}

func describeEvent(ev sim.Event) (label, msg string, ok bool) {
	switch ev.Kind {
	case sim.EventHit:
		if ev.Side == sim.SidePlayer {
			return "P", fmt.Sprintf("hit %s", ev.EnemyID), true
		}
		return "--", "taking fire", true
	case sim.EventKill:
		return "P", fmt.Sprintf("splashed %s  score %d", ev.EnemyID, ev.Score), true
	case sim.EventWaveCleared:
		return "--", fmt.Sprintf("wave cleared, wave %d inbound", ev.Wave), true
	case sim.EventGameOver:
		return "--", fmt.Sprintf("shot down  final score %d", ev.Score), true
	}
	return "", "", false
}

// Draw renders the newest entries in a panel anchored at the bottom right.
func (cf *CombatFeed) Draw(screen *ebiten.Image, screenW, screenH int) {
	entries := cf.Recent()
	if len(entries) == 0 {
		return
	}
	if len(entries) > feedVisible {
		entries = entries[len(entries)-feedVisible:]
	}

	panelH := len(entries)*feedLineHeight + 22
	px := float32(screenW - feedPanelWidth - 10)
	py := float32(screenH - panelH - 10)

	vector.FillRect(screen, px, py, feedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 16, A: 200}, false)
	vector.StrokeRect(screen, px, py, feedPanelWidth, float32(panelH), 1.0, color.RGBA{R: 60, G: 70, B: 90, A: 220}, false)
	ebitenutil.DebugPrintAt(screen, "COMBAT FEED", int(px)+8, int(py)+2)

	recent := 2 // highlight the latest lines
	y := int(py) + 18
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, px+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 36, B: 48, A: 160}, false)
		}
		dot := color.RGBA{R: 70, G: 200, B: 90, A: 255}
		if e.Side == sim.SideEnemy {
			dot = color.RGBA{R: 220, G: 70, B: 60, A: 255}
		}
		vector.FillRect(screen, px+5, float32(y+4), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d [%s] %s", e.Frame, e.Label, e.Message), int(px)+12, y)
		y += feedLineHeight
	}
}
