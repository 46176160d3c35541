package storage

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// QueryHook logs each statement at debug level and records its duration.
type QueryHook struct {
	logger   *zap.Logger
	duration *prometheus.HistogramVec
	slow     time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

// NewQueryHook registers the query duration histogram with reg. A nil reg
// skips metrics.
func NewQueryHook(logger *zap.Logger, reg prometheus.Registerer) *QueryHook {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &QueryHook{
		logger: logger.Named("storage"),
		slow:   500 * time.Millisecond,
	}

	if reg != nil {
		h.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cv",
			Subsystem: "storage",
			Name:      "query_duration_seconds",
			Help:      "Duration of database statements.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"})

		if err := reg.Register(h.duration); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				h.duration = are.ExistingCollector.(*prometheus.HistogramVec)
			} else {
				h.logger.Warn("query metrics disabled", zap.Error(err))
				h.duration = nil
			}
		}
	}

	return h
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	elapsed := time.Since(event.StartTime)
	op := event.Operation()

	status := "ok"
	if event.Err != nil && !isNoRows(event.Err) {
		status = "error"
	}

	if h.duration != nil {
		h.duration.WithLabelValues(op, status).Observe(elapsed.Seconds())
	}

	fields := []zap.Field{
		zap.String("operation", op),
		zap.Duration("elapsed", elapsed),
		zap.String("query", event.Query),
	}

	switch {
	case status == "error":
		h.logger.Warn("query failed", append(fields, zap.Error(event.Err))...)
	case elapsed > h.slow:
		h.logger.Info("slow query", fields...)
	default:
		h.logger.Debug("query", fields...)
	}
}
