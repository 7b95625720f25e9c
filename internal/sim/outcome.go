package sim

import "fmt"

type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeSurvived
	OutcomeShotDown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSurvived:
		return "survived"
	case OutcomeShotDown:
		return "shot_down"
	case OutcomeInProgress:
		return "in_progress"
	default:
		return "unknown"
	}
}

// Tally accumulates per-event totals over a sortie.
type Tally struct {
	Shots     int // player shots only
	Hits      int // player rounds that struck an enemy
	HitsTaken int
	Kills     int
	Waves     int
}

// Count folds one event into the tally.
func (t *Tally) Count(ev Event) {
	switch ev.Kind {
	case EventShot:
		if ev.Side == SidePlayer {
			t.Shots++
		}
	case EventHit:
		if ev.Side == SidePlayer {
			t.Hits++
		} else {
			t.HitsTaken++
		}
	case EventKill:
		t.Kills++
	case EventWaveCleared:
		t.Waves++
	}
}

// SortieReport summarises one sortie.
type SortieReport struct {
	Outcome    Outcome
	Team       string
	Frames     int
	Seconds    float64
	Score      int
	Kills      int
	WavesClear int
	Wave       int
	Shots      int
	Hits       int
	HitsTaken  int
	Health     float64
	Accuracy   float64 // hits / shots, 0 when nothing was fired
}

// BuildReport combines the scene's store with a tally. A sortie still in
// the playing phase counts as survived once it has run at least one frame.
func BuildReport(sc *Scene, t Tally) SortieReport {
	st := sc.Store()
	r := SortieReport{
		Team:       st.SelectedTeam(),
		Frames:     sc.FrameCount(),
		Seconds:    sc.Elapsed(),
		Score:      st.Score(),
		Kills:      t.Kills,
		WavesClear: t.Waves,
		Wave:       st.Wave(),
		Shots:      t.Shots,
		Hits:       t.Hits,
		HitsTaken:  t.HitsTaken,
		Health:     st.Player().Health,
	}
	if t.Shots > 0 {
		r.Accuracy = float64(t.Hits) / float64(t.Shots)
	}
	switch {
	case st.Phase() == PhaseGameOver:
		r.Outcome = OutcomeShotDown
	case r.Frames > 0:
		r.Outcome = OutcomeSurvived
	default:
		r.Outcome = OutcomeInProgress
	}
	return r
}

// String is the one-line summary shown on the game over screen and copied
// to the clipboard.
func (r SortieReport) String() string {
	team := TeamOrDefault(r.Team)
	return fmt.Sprintf("%s (%s): %s after %.1fs | score %d | wave %d | kills %d | hits %d/%d (%.0f%%) | hits taken %d",
		team.Name, team.Abbreviation, r.Outcome, r.Seconds, r.Score, r.Wave,
		r.Kills, r.Hits, r.Shots, r.Accuracy*100, r.HitsTaken)
}

// Summarize reports on the sortie so far.
func (hs *HeadlessSim) Summarize() SortieReport {
	return BuildReport(hs.Scene, hs.tally)
}
