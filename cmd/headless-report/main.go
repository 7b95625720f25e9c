package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Gridiron-Aces/internal/config"
	"github.com/Garsondee/Gridiron-Aces/internal/logging"
	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64
	team     string

	firstShotFrame      int
	firstHitFrame       int
	firstKillFrame      int
	firstHitTakenFrame  int
	firstWaveClearFrame int

	expiredLifetime int
	expiredGround   int
	expiredBounds   int

	report sim.SortieReport
	grade  sim.SortieGrade
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var team string
	var configPath string
	var verbose bool
	var copyOut bool

	flag.IntVar(&runs, "runs", 5, "number of headless sorties")
	flag.IntVar(&frames, "frames", 3600, "frames per sortie")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&team, "team", "", "team id to fly (empty = rotate through the roster)")
	flag.StringVar(&configPath, "config", "", "config file for tuning overrides")
	flag.BoolVar(&verbose, "verbose", false, "log sortie events at debug level")
	flag.BoolVar(&copyOut, "copy", false, "copy the aggregate line to the clipboard")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if team != "" {
		if _, ok := sim.LookupTeam(team); !ok {
			fmt.Printf("error: unknown team %q\n", team)
			return
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger := logging.New(level, os.Stderr, nil)

	fmt.Printf("=== Headless Sortie Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d team=%s\n\n", runs, frames, seedBase, seedStep, teamLabel(team))

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		id := team
		if id == "" {
			id = sim.Roster[i%len(sim.Roster)].ID
		}
		stats := runSortie(i+1, seed, frames, id, cfg.Tuning, logger)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)

	if copyOut {
		if err := clipboard.WriteAll(aggregateLine(all)); err != nil {
			fmt.Printf("clipboard: %v\n", err)
			return
		}
		fmt.Println("aggregate copied to clipboard")
	}
}

func teamLabel(id string) string {
	if id == "" {
		return "rotate"
	}
	return id
}

// runSortie flies one autopilot sortie and collects its markers.
func runSortie(runIndex int, seed int64, frames int, team string, tu sim.Tuning, logger zerolog.Logger) runStats {
	hs := sim.NewHeadlessSim(
		sim.WithSeed(seed),
		sim.WithTuning(tu),
		sim.WithLogger(logger),
		sim.WithTeam(team),
		sim.WithPilot(sim.NewAutopilot(tu)),
	)
	hs.RunFrames(frames)

	entries := hs.SimLog.Entries()
	rs := runStats{
		runIndex:            runIndex,
		seed:                seed,
		team:                team,
		firstShotFrame:      firstFrame(entries, "P", "projectile", "shot"),
		firstHitFrame:       firstFrame(entries, "P", "combat", "hit"),
		firstKillFrame:      firstFrame(entries, "", "combat", "kill"),
		firstHitTakenFrame:  firstFrame(entries, "enemy", "combat", "hit"),
		firstWaveClearFrame: firstFrame(entries, "", "score", "wave_cleared"),
		report:              hs.Summarize(),
	}
	rs.grade = sim.GradeSortie(rs.report, tu)
	for _, e := range hs.SimLog.Filter("projectile", "expire") {
		switch sim.ExpireReason(e.NumVal) {
		case sim.ExpireLifetime:
			rs.expiredLifetime++
		case sim.ExpireGround:
			rs.expiredGround++
		case sim.ExpireBounds:
			rs.expiredBounds++
		}
	}
	return rs
}

// firstFrame returns the frame of the first matching entry, or -1. actor
// "P" matches the player, "enemy" matches any other actor, "" matches all.
func firstFrame(entries []sim.SimLogEntry, actor, category, key string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		switch actor {
		case "":
		case "enemy":
			if e.Actor == "P" {
				continue
			}
		default:
			if e.Actor != actor {
				continue
			}
		}
		return e.Frame
	}
	return -1
}

func printRun(rs runStats) {
	r := rs.report
	fmt.Printf("--- Run %d (seed=%d team=%s) ---\n", rs.runIndex, rs.seed, rs.team)
	fmt.Printf("outcome=%s frames=%d seconds=%.1f score=%d wave=%d health=%.0f\n",
		r.Outcome, r.Frames, r.Seconds, r.Score, r.Wave, r.Health)
	fmt.Printf("phase_markers: first_shot=%d first_hit=%d first_kill=%d first_hit_taken=%d first_wave_clear=%d\n",
		rs.firstShotFrame, rs.firstHitFrame, rs.firstKillFrame, rs.firstHitTakenFrame, rs.firstWaveClearFrame)
	fmt.Printf("gunnery: shots=%d hits=%d accuracy=%.0f%% kills=%d waves_cleared=%d hits_taken=%d\n",
		r.Shots, r.Hits, r.Accuracy*100, r.Kills, r.WavesClear, r.HitsTaken)
	fmt.Printf("expiries: lifetime=%d ground=%d bounds=%d\n",
		rs.expiredLifetime, rs.expiredGround, rs.expiredBounds)
	fmt.Println(r.String())
	fmt.Println(sim.FormatGrade(rs.grade))
	fmt.Println()
}

// outcomeCounts tallies outcomes across runs.
func outcomeCounts(all []runStats) map[sim.Outcome]int {
	out := map[sim.Outcome]int{}
	for _, rs := range all {
		out[rs.report.Outcome]++
	}
	return out
}

// bestRun picks the highest score, breaking ties on the lower run index.
func bestRun(all []runStats) (runStats, bool) {
	if len(all) == 0 {
		return runStats{}, false
	}
	best := all[0]
	for _, rs := range all[1:] {
		if rs.report.Score > best.report.Score {
			best = rs
		}
	}
	return best, true
}

func aggregateLine(all []runStats) string {
	totalScore, totalKills, totalShots, totalHits := 0, 0, 0, 0
	for _, rs := range all {
		totalScore += rs.report.Score
		totalKills += rs.report.Kills
		totalShots += rs.report.Shots
		totalHits += rs.report.Hits
	}
	oc := outcomeCounts(all)
	acc := 0.0
	if totalShots > 0 {
		acc = float64(totalHits) / float64(totalShots) * 100
	}
	return fmt.Sprintf("runs=%d survived=%d shot_down=%d avg_score=%.1f avg_kills=%.1f accuracy=%.0f%%",
		len(all), oc[sim.OutcomeSurvived], oc[sim.OutcomeShotDown],
		avg(totalScore, len(all)), avg(totalKills, len(all)), acc)
}

func printAggregate(all []runStats) {
	hitTicks := make([]int, 0, len(all))
	killTicks := make([]int, 0, len(all))
	takenTicks := make([]int, 0, len(all))
	waveTicks := make([]int, 0, len(all))
	totalWaves := 0
	totalTaken := 0
	byTeam := map[string][]int{}
	good := map[string]int{}
	bad := map[string]int{}
	gradeSum := 0.0

	for _, rs := range all {
		if rs.firstHitFrame >= 0 {
			hitTicks = append(hitTicks, rs.firstHitFrame)
		}
		if rs.firstKillFrame >= 0 {
			killTicks = append(killTicks, rs.firstKillFrame)
		}
		if rs.firstHitTakenFrame >= 0 {
			takenTicks = append(takenTicks, rs.firstHitTakenFrame)
		}
		if rs.firstWaveClearFrame >= 0 {
			waveTicks = append(waveTicks, rs.firstWaveClearFrame)
		}
		totalWaves += rs.report.WavesClear
		totalTaken += rs.report.HitsTaken
		byTeam[rs.team] = append(byTeam[rs.team], rs.report.Score)
		gradeSum += rs.grade.Score
		for _, t := range rs.grade.GoodTraits {
			good[t]++
		}
		for _, t := range rs.grade.BadTraits {
			bad[t]++
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Println(aggregateLine(all))
	fmt.Printf("avg_per_run: waves_cleared=%.1f hits_taken=%.1f\n",
		avg(totalWaves, len(all)), avg(totalTaken, len(all)))
	fmt.Printf("phase_marker_avg_frames: first_hit=%s first_kill=%s first_hit_taken=%s first_wave_clear=%s\n",
		avgFrameString(hitTicks), avgFrameString(killTicks), avgFrameString(takenTicks), avgFrameString(waveTicks))

	avgGrade := 0.0
	if len(all) > 0 {
		avgGrade = gradeSum / float64(len(all))
	}
	fmt.Printf("avg_grade=%.1f (%s)\n", avgGrade, sim.LetterGrade(avgGrade))
	if len(good) > 0 {
		fmt.Printf("top_good: %s\n", sim.TopTraits(good, 4))
	}
	if len(bad) > 0 {
		fmt.Printf("top_bad:  %s\n", sim.TopTraits(bad, 4))
	}

	if best, ok := bestRun(all); ok {
		fmt.Printf("best_run: #%d seed=%d %s\n", best.runIndex, best.seed, best.report.String())
	}

	fmt.Println("\n--- Score by team ---")
	teams := make([]string, 0, len(byTeam))
	for id := range byTeam {
		teams = append(teams, id)
	}
	sort.Strings(teams)
	for _, id := range teams {
		scores := byTeam[id]
		sum := 0
		for _, s := range scores {
			sum += s
		}
		t := sim.TeamOrDefault(id)
		fmt.Printf("  %-4s %-22s runs=%d avg_score=%.1f\n", t.Abbreviation, t.FullName(), len(scores), avg(sum, len(scores)))
	}
	fmt.Println(strings.Repeat("=", 40))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
