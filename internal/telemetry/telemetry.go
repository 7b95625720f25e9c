package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

const instrumentationName = "github.com/Garsondee/Gridiron-Aces/internal/telemetry"

// Meter returns the global meter for this module. Without an installed
// provider it is a no-op.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder counts combat events and sorties.
type Recorder struct {
	shots    metric.Int64Counter
	hits     metric.Int64Counter
	kills    metric.Int64Counter
	waves    metric.Int64Counter
	expired  metric.Int64Counter
	sorties  metric.Int64Counter
	outcomes metric.Int64Counter
	team     attribute.KeyValue
}

// New registers every counter on m.
func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{team: attribute.String("team", "")}
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.shots, "gridiron.shots", "Projectiles fired"},
		{&r.hits, "gridiron.hits", "Projectiles that struck an aircraft"},
		{&r.kills, "gridiron.kills", "Enemy aircraft destroyed"},
		{&r.waves, "gridiron.waves_cleared", "Enemy waves cleared"},
		{&r.expired, "gridiron.projectiles_expired", "Projectiles removed without a hit"},
		{&r.sorties, "gridiron.sorties", "Sorties started"},
		{&r.outcomes, "gridiron.sortie_outcomes", "Sorties ended, by outcome"},
	}
	for _, c := range counters {
		ctr, err := m.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit("{count}"))
		if err != nil {
			return nil, fmt.Errorf("create %s counter: %w", c.name, err)
		}
		*c.dst = ctr
	}
	return r, nil
}

// SortieStarted tags subsequent events with team.
func (r *Recorder) SortieStarted(ctx context.Context, team string) {
	r.team = attribute.String("team", team)
	r.sorties.Add(ctx, 1, metric.WithAttributes(r.team))
}

// SortieEnded records the outcome label, e.g. "shot_down" or "quit".
func (r *Recorder) SortieEnded(ctx context.Context, outcome string) {
	r.outcomes.Add(ctx, 1, metric.WithAttributes(r.team, attribute.String("outcome", outcome)))
}

// Record counts one frame event.
func (r *Recorder) Record(ctx context.Context, ev sim.Event) {
	side := attribute.String("side", ev.Side.String())
	switch ev.Kind {
	case sim.EventShot:
		r.shots.Add(ctx, 1, metric.WithAttributes(r.team, side))
	case sim.EventHit:
		r.hits.Add(ctx, 1, metric.WithAttributes(r.team, side))
	case sim.EventKill:
		r.kills.Add(ctx, 1, metric.WithAttributes(r.team))
	case sim.EventWaveCleared:
		r.waves.Add(ctx, 1, metric.WithAttributes(r.team))
	case sim.EventExpire:
		r.expired.Add(ctx, 1, metric.WithAttributes(r.team, attribute.String("reason", ev.Reason.String())))
	case sim.EventGameOver:
		r.SortieEnded(ctx, sim.OutcomeShotDown.String())
	}
}
