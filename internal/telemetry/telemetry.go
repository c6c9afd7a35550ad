package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "ethicscoach"

// metricInterval is how often metrics are flushed to their file.
const metricInterval = 10 * time.Second

func rotatingFile(dir, name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// InitLogger installs a JSON slog logger writing to a rotating file in
// dir. The terminal belongs to the UI, so nothing is logged to stdout.
// The returned closer flushes and closes the file.
func InitLogger(dir string, level slog.Level) (*slog.Logger, io.Closer) {
	file := rotatingFile(dir, serviceName+".log")
	logger := NewLogger(file, level)
	slog.SetDefault(logger)
	return logger, file
}

// NewLogger returns a JSON logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Providers holds the tracer and meter handed to the session, plus a
// shutdown func that flushes both.
type Providers struct {
	Tracer   trace.Tracer
	Meter    metric.Meter
	Shutdown func(context.Context) error
}

// Init sets up OpenTelemetry tracing and metrics, exporting to rotating
// files in dir, and installs them as the global providers.
func Init(ctx context.Context, dir, version string) (*Providers, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	traceFile := rotatingFile(dir, serviceName+"_traces.log")
	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(traceFile))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	metricsFile := rotatingFile(dir, serviceName+"_metrics.log")
	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(metricsFile))
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricInterval)),
		),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	shutdown := func(ctx context.Context) error {
		var errs []error
		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracer provider: %w", err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown meter provider: %w", err))
		}
		if err := traceFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close trace file: %w", err))
		}
		if err := metricsFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close metrics file: %w", err))
		}
		return errors.Join(errs...)
	}

	return &Providers{
		Tracer:   tp.Tracer(serviceName),
		Meter:    mp.Meter(serviceName),
		Shutdown: shutdown,
	}, nil
}

// Noop returns providers that record nothing, for runs with telemetry
// turned off.
func Noop() *Providers {
	return &Providers{
		Tracer:   otel.Tracer(serviceName),
		Meter:    otel.Meter(serviceName),
		Shutdown: func(context.Context) error { return nil },
	}
}
