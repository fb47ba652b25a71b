package extract

import (
	"context"
	"strconv"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RejectionRecorder //

type RejectionRecorder struct {
	rejections metric.Int64Counter
}

// NewRejectionRecorder registers the rejection counter on provider, or on the global meter
// provider when provider is nil. A recorder without a counter records nothing.
func NewRejectionRecorder(provider metric.MeterProvider) *RejectionRecorder {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	meter := provider.Meter("server")
	rejections, err := meter.Int64Counter(
		"http.server.extraction.rejections.count",
		metric.WithDescription("Number of requests rejected during extraction, partitioned by extractor and status code."),
	)
	if err != nil {
		aulogging.Logger.NoCtx().Error().WithErr(err).Print("failed to initialize extraction rejection counter")
		return &RejectionRecorder{}
	}
	return &RejectionRecorder{rejections: rejections}
}

func (r *RejectionRecorder) Record(ctx context.Context, rejection *Rejection) {
	if r == nil || r.rejections == nil {
		return
	}
	r.rejections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("extractor", rejection.Extractor),
		attribute.String("status", strconv.Itoa(rejection.Status)),
	))
}
