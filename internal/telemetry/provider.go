package telemetry

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName tags every exported metric.
const ServiceName = "gridiron-aces"

// Provider owns the SDK meter provider and its periodic stdout exporter.
type Provider struct {
	mp *sdkmetric.MeterProvider
}

// NewProvider exports the counters as JSON to w every interval. It is also
// installed as the global meter provider, so Meter() reaches it.
func NewProvider(ctx context.Context, w io.Writer, interval time.Duration) (*Provider, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("telemetry interval %s must be positive", interval)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp)
	return &Provider{mp: mp}, nil
}

// Meter returns this module's meter on the SDK provider.
func (p *Provider) Meter() metric.Meter {
	return p.mp.Meter(instrumentationName)
}

// Flush exports everything recorded so far.
func (p *Provider) Flush(ctx context.Context) error {
	if err := p.mp.ForceFlush(ctx); err != nil {
		return fmt.Errorf("metric flush failed: %w", err)
	}
	return nil
}

// Shutdown flushes and stops the exporter. Call it once on exit.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.mp.Shutdown(ctx); err != nil {
		return fmt.Errorf("metric shutdown failed: %w", err)
	}
	return nil
}
