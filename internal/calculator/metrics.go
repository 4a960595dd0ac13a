package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	instructionCounter metric.Int64Counter
	clickCounter       metric.Int64Counter
	clickHistogram     metric.Float64Histogram
	errorCounter       metric.Int64Counter
	sequenceGauge      metric.Int64Gauge
)

// InitMetrics registers custom OTel metric instruments for the calculator
// automation domain. Call this once at startup (after
// observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	instructionCounter, err = meter.Int64Counter("calculator.instructions.total",
		metric.WithDescription("Total number of natural-language instructions executed"),
		metric.WithUnit("{instruction}"),
	)
	if err != nil {
		return fmt.Errorf("creating instruction counter: %w", err)
	}

	clickCounter, err = meter.Int64Counter("calculator.clicks.total",
		metric.WithDescription("Total number of button clicks issued"),
		metric.WithUnit("{click}"),
	)
	if err != nil {
		return fmt.Errorf("creating click counter: %w", err)
	}

	clickHistogram, err = meter.Float64Histogram("calculator.instruction.duration",
		metric.WithDescription("Duration of full instruction executions in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(10, 50, 100, 500, 1000, 5000, 10000),
	)
	if err != nil {
		return fmt.Errorf("creating instruction histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of failed calculator operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	sequenceGauge, err = meter.Int64Gauge("calculator.last_sequence_length",
		metric.WithDescription("Number of button presses compiled from the last instruction"),
		metric.WithUnit("{press}"),
	)
	if err != nil {
		return fmt.Errorf("creating sequence gauge: %w", err)
	}

	return nil
}
