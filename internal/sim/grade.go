package sim

import (
	"fmt"
	"sort"
	"strings"
)

// SortieGrade is the computed performance grade for one sortie.
type SortieGrade struct {
	Grade string  // A+, A, B+, B, C+, C, D, F
	Score float64 // 0-100

	// Situation scores (0-100; -1 = not enough data to grade).
	GunneryScore    float64
	SurvivalScore   float64
	AggressionScore float64

	GoodTraits []string
	BadTraits  []string
}

const (
	gradeMinShots      = 10   // shots needed before accuracy traits apply
	gradeKillsPerMin   = 4.0  // kill rate that earns full aggression
	gradeSurvivalRef   = 60.0 // seconds aloft that earns full credit when shot down
	gradeShotDownScale = 0.6  // survival ceiling when shot down
)

// GradeSortie scores a report against the tuning it was flown with.
func GradeSortie(r SortieReport, tu Tuning) SortieGrade {
	g := SortieGrade{
		GunneryScore:    -1,
		SurvivalScore:   -1,
		AggressionScore: -1,
	}
	if r.Frames == 0 {
		g.Grade = LetterGrade(0)
		return g
	}

	if r.Shots > 0 {
		g.GunneryScore = gradeClamp(r.Accuracy * 100)
	}
	switch r.Outcome {
	case OutcomeShotDown:
		g.SurvivalScore = gradeClamp(r.Seconds/gradeSurvivalRef*100) * gradeShotDownScale
	default:
		if tu.MaxHealth > 0 {
			g.SurvivalScore = gradeClamp(r.Health / tu.MaxHealth * 100)
		}
	}
	if r.Seconds > 0 {
		perMin := float64(r.Kills) / (r.Seconds / 60)
		g.AggressionScore = gradeClamp(perMin / gradeKillsPerMin * 100)
	}

	weighted := []struct {
		score, weight float64
	}{
		{g.GunneryScore, 0.35},
		{g.SurvivalScore, 0.35},
		{g.AggressionScore, 0.30},
	}
	sum, wsum := 0.0, 0.0
	for _, w := range weighted {
		if w.score < 0 {
			continue
		}
		sum += w.score * w.weight
		wsum += w.weight
	}
	if wsum > 0 {
		g.Score = sum / wsum
	}
	g.Grade = LetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = sortieTraits(r)
	return g
}

func sortieTraits(r SortieReport) (good, bad []string) {
	if r.Shots >= gradeMinShots && r.Accuracy >= 0.5 {
		good = append(good, "sharpshooter")
	}
	if r.Kills >= 5 {
		good = append(good, "ace")
	}
	if r.WavesClear > 0 {
		good = append(good, "wave_breaker")
	}
	if r.HitsTaken == 0 && r.Seconds >= 30 {
		good = append(good, "untouched")
	}

	if r.Shots >= 2*gradeMinShots && r.Accuracy < 0.15 {
		bad = append(bad, "spray_and_pray")
	}
	if r.Shots == 0 && r.Seconds >= 10 {
		bad = append(bad, "passive")
	}
	if r.Outcome == OutcomeShotDown && r.Seconds < 30 {
		bad = append(bad, "shot_down_early")
	}
	return good, bad
}

// FormatGrade returns a two-line human-readable grade.
func FormatGrade(g SortieGrade) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grade %s (%.0f)", g.Grade, g.Score)

	var scores []string
	if g.GunneryScore >= 0 {
		scores = append(scores, fmt.Sprintf("Gunnery=%.0f", g.GunneryScore))
	}
	if g.SurvivalScore >= 0 {
		scores = append(scores, fmt.Sprintf("Survival=%.0f", g.SurvivalScore))
	}
	if g.AggressionScore >= 0 {
		scores = append(scores, fmt.Sprintf("Aggression=%.0f", g.AggressionScore))
	}
	if len(scores) > 0 {
		fmt.Fprintf(&sb, "  %s", strings.Join(scores, "  "))
	}
	if len(g.GoodTraits) > 0 {
		fmt.Fprintf(&sb, "\n  Good: %s", strings.Join(g.GoodTraits, ", "))
	}
	if len(g.BadTraits) > 0 {
		fmt.Fprintf(&sb, "\n  Bad:  %s", strings.Join(g.BadTraits, ", "))
	}
	return sb.String()
}

func gradeClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// TopTraits lists the n most frequent traits as "name(count)", most frequent
// first, ties by name.
func TopTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s(%d)", it.trait, it.count))
	}
	return strings.Join(parts, ", ")
}
