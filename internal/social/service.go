// Package social is the operation surface of the feed and graph engine. It guards input, pages results,
// and publishes committed changes, on top of the stores in internal/persistence.
package social

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"feedgraph/internal/core"
)

var (
	tracer = otel.Tracer("feedgraph/social")

	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedgraph_operations_total",
		Help: "Total number of social operations by outcome.",
	}, []string{"operation", "outcome"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feedgraph_operation_duration_seconds",
		Help:    "Duration of social operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

type Service struct {
	Logger *slog.Logger

	Users    core.UserRepository
	Follows  core.FollowRepository
	Posts    core.PostRepository
	Comments core.CommentRepository
	Likes    core.LikeRepository
	Feeds    core.FeedRepository
	Events   core.EventPublisher
}

func (s *Service) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "social.Service")
	return nil
}

// track starts a span for operation and returns the function that records its outcome.
// Business outcomes are not span errors, infrastructure failures are and get logged.
func (s *Service) track(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(*error)) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "social."+operation, trace.WithAttributes(attrs...))

	return ctx, func(errp *error) {
		err := *errp
		outcome := core.Outcome(err)

		operationsTotal.WithLabelValues(operation, outcome).Inc()
		operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

		span.SetAttributes(attribute.String("feedgraph.outcome", outcome))
		if err != nil && !core.IsBusiness(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.Logger.Error("Operation failed", "operation", operation, "error", err)
		}
		span.End()
	}
}

func idAttr(key string, id int64) attribute.KeyValue {
	return attribute.Int64("feedgraph."+key, id)
}
