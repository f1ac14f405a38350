package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/charkit/charkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments recorded by readers and sources.
type Metrics struct {
	openTotal    metric.Int64Counter
	openErrors   metric.Int64Counter
	readTotal    metric.Int64Counter
	decodedBytes metric.Int64Counter
	readDuration metric.Float64Histogram
	closeTotal   metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	openTotal, err := meter.Int64Counter("reader.open.total",
		metric.WithDescription("Total number of source opens"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reader.open.total counter: %w", err)
	}

	openErrors, err := meter.Int64Counter("reader.open.errors",
		metric.WithDescription("Total source opens that failed, by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reader.open.errors counter: %w", err)
	}

	readTotal, err := meter.Int64Counter("reader.read.total",
		metric.WithDescription("Total number of read calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reader.read.total counter: %w", err)
	}

	decodedBytes, err := meter.Int64Counter("reader.decoded.bytes",
		metric.WithDescription("Total decoded bytes handed to callers"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reader.decoded.bytes counter: %w", err)
	}

	readDuration, err := meter.Float64Histogram("reader.read.duration",
		metric.WithDescription("Duration of read calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reader.read.duration histogram: %w", err)
	}

	closeTotal, err := meter.Int64Counter("reader.close.total",
		metric.WithDescription("Total number of reader closes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reader.close.total counter: %w", err)
	}

	return &Metrics{
		openTotal:    openTotal,
		openErrors:   openErrors,
		readTotal:    readTotal,
		decodedBytes: decodedBytes,
		readDuration: readDuration,
		closeTotal:   closeTotal,
	}, nil
}

// RecordOpen records a successful source open.
func (m *Metrics) RecordOpen(ctx context.Context, origin, charset string) {
	m.openTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("origin", origin),
		attribute.String("charset", charset),
	))
}

// RecordOpenError records a failed source open by taxonomy code.
func (m *Metrics) RecordOpenError(ctx context.Context, origin, code string) {
	m.openErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("origin", origin),
		attribute.String("code", code),
	))
}

// RecordRead records one read call and the bytes it decoded.
func (m *Metrics) RecordRead(ctx context.Context, charset string, bytes int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("charset", charset))
	m.readTotal.Add(ctx, 1, attrs)
	m.decodedBytes.Add(ctx, int64(bytes), attrs)
	m.readDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordClose records a reader close.
func (m *Metrics) RecordClose(ctx context.Context, origin string) {
	m.closeTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("origin", origin),
	))
}
