// Package observability provides OpenTelemetry tracing and metrics for
// decode workloads.
//
// InitTracer and InitMeter wire the global otel providers to OTLP HTTP
// exporters. The Metrics bundle carries the instruments the reader
// records: opens, open errors, reads, decoded bytes, read duration,
// and closes. Without an initialized provider every instrument is a
// no-op, so library consumers pay nothing unless they opt in.
//
//	mp, err := observability.InitMeter(ctx, &observability.MeterConfig{...})
//	metrics, err := observability.NewMetrics(observability.Meter("charkit"))
//	r := textio.New(src, textio.WithMetrics(metrics))
package observability
