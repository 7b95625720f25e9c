package sim

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless sortie.
type SimLogEntry struct {
	Frame    int
	Actor    string  // "P" for the player, enemy id, or "--" for global events
	Category string  // combat, projectile, score, phase, flight
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] P        combat     hit              enemy_1 dmg=25
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-8s %-10s %-16s %s",
		e.Frame, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless sortie. Unlike the
// on-screen combat feed it is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame flight entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(frame, actor, category, key, value, numVal)
}

// Verbose reports whether per-frame entries are recorded.
func (sl *SimLog) Verbose() bool {
	return sl.verbose
}

// RecordEvent translates a frame Event into a log entry.
func (sl *SimLog) RecordEvent(frame int, ev Event) {
	actor := "P"
	if ev.Side == SideEnemy {
		actor = "--"
		if ev.EnemyID != "" {
			actor = ev.EnemyID
		}
	}
	switch ev.Kind {
	case EventShot:
		sl.Add(frame, actor, "projectile", "shot",
			fmt.Sprintf("#%d from (%.1f,%.1f,%.1f)", ev.Projectile, ev.Position.X, ev.Position.Y, ev.Position.Z), 0)
	case EventExpire:
		sl.Add(frame, actor, "projectile", "expire",
			fmt.Sprintf("#%d %s", ev.Projectile, ev.Reason), float64(ev.Reason))
	case EventHit:
		target := "player"
		if ev.Side == SidePlayer {
			actor = "P"
			target = ev.EnemyID
		}
		sl.Add(frame, actor, "combat", "hit",
			fmt.Sprintf("#%d → %s dmg=%.0f", ev.Projectile, target, ev.Damage), ev.Damage)
	case EventKill:
		sl.Add(frame, "P", "combat", "kill", ev.EnemyID, float64(ev.Score))
	case EventWaveCleared:
		sl.Add(frame, "--", "score", "wave_cleared", fmt.Sprintf("wave=%d score=%d", ev.Wave, ev.Score), float64(ev.Score))
	case EventGameOver:
		sl.Add(frame, "P", "phase", "game_over", fmt.Sprintf("score=%d wave=%d", ev.Score, ev.Wave), float64(ev.Score))
	}
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for one actor label.
func (sl *SimLog) FilterActor(actor string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out
}

// FilterFrameRange returns entries within [from, to] inclusive.
func (sl *SimLog) FilterFrameRange(from, to int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Frame >= from && e.Frame <= to {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a frame range.
func (sl *SimLog) FormatRange(from, to int) string {
	var sb strings.Builder
	for _, e := range sl.FilterFrameRange(from, to) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
