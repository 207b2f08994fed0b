package cleaned

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this library to the global OpenTelemetry
// tracer and meter providers.
const instrumentationName = "github.com/zero-day-ai/cleaned"

var (
	telemetryOnce     sync.Once
	validationCounter metric.Int64Counter
	failureCounter    metric.Int64Counter
)

func instruments() (metric.Int64Counter, metric.Int64Counter) {
	telemetryOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		validationCounter, _ = meter.Int64Counter(
			"cleaned.validations",
			metric.WithDescription("Number of schema validate calls"),
		)
		failureCounter, _ = meter.Int64Counter(
			"cleaned.validation_failures",
			metric.WithDescription("Number of field failures reported by validate calls"),
		)
	})
	return validationCounter, failureCounter
}

// startValidation opens the validate span. The returned finish func records
// the outcome; it must be called exactly once.
func startValidation(ctx context.Context, fieldCount int) (context.Context, func(context.Context, *ValidationError)) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "cleaned.validate",
		trace.WithAttributes(attribute.Int("cleaned.fields", fieldCount)),
	)

	return ctx, func(ctx context.Context, verr *ValidationError) {
		defer span.End()

		validations, failures := instruments()
		if validations != nil {
			validations.Add(ctx, 1)
		}

		if verr == nil {
			span.SetStatus(otelcodes.Ok, "")
			return
		}

		count := int64(len(verr.Flatten()))
		if failures != nil {
			failures.Add(ctx, count)
		}
		span.SetAttributes(attribute.Int64("cleaned.failures", count))
		span.SetStatus(otelcodes.Error, "validation failed")
	}
}
