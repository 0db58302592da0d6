package calculator

import (
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter          metric.Int64Counter
	opsHistogram        metric.Float64Histogram
	errorCounter        metric.Int64Counter
	requestErrorCounter metric.Int64Counter
	specialCounter      metric.Int64Counter
	resultGauge         metric.Float64Gauge

	metricsOnce sync.Once
	metricsErr  error
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// The instruments bind to the global meter provider, which delegates to
// whatever provider observability.InitMetrics installs later. Safe to call
// more than once.
func InitMetrics() error {
	metricsOnce.Do(func() {
		metricsErr = initMetrics()
	})
	return metricsErr
}

func initMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	opsCounter, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Total number of calculator operations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Duration of calculator operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected calculator inputs"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	requestErrorCounter, err = meter.Int64Counter("calculator.http.errors.total",
		metric.WithDescription("Total number of calculator HTTP requests answered with an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating request error counter: %w", err)
	}

	specialCounter, err = meter.Int64Counter("calculator.special_results.total",
		metric.WithDescription("Results that were NaN or infinite"),
		metric.WithUnit("{result}"),
	)
	if err != nil {
		return fmt.Errorf("creating special result counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last finite calculator operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
