package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records page-level measurements through OpenTelemetry,
// exported on the default Prometheus registry next to the promauto metrics.
type Observability struct {
	meterProvider *metric.MeterProvider
	pageBuilds    otelmetric.Int64Counter
	pageDuration  otelmetric.Float64Histogram
}

// New never fails: when the exporter cannot be created the returned value
// records nothing.
func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	pageBuilds, _ := meter.Int64Counter(
		"site.page.builds",
		otelmetric.WithDescription("Number of page view-models built"),
	)

	pageDuration, _ := meter.Float64Histogram(
		"site.page.build_duration",
		otelmetric.WithDescription("Time spent resolving the page view-model"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		pageBuilds:    pageBuilds,
		pageDuration:  pageDuration,
	}
}

// NewNoop returns an Observability that records nothing.
func NewNoop() *Observability {
	return &Observability{}
}

// RecordPageBuild records one page build; source is "upstream", "cache" or "defaults".
func (o *Observability) RecordPageBuild(ctx context.Context, duration time.Duration, source string) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(attribute.String("source", source))
	if o.pageBuilds != nil {
		o.pageBuilds.Add(ctx, 1, attrs)
	}
	if o.pageDuration != nil {
		o.pageDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	}
}

func (o *Observability) Shutdown(ctx context.Context) error {
	if o == nil || o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
