package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-ID"

const localRequestID = "request_id"

func requestID(c fiber.Ctx) string {
	if rid, ok := c.Locals(localRequestID).(string); ok {
		return rid
	}
	return c.Get(headerRequestID)
}

// AccessLog tags each request with an X-Request-ID and writes one line
// per request. Durations are observed on duration when it is not nil.
func AccessLog(logger *zap.Logger, duration *prometheus.HistogramVec) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("access")

	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(headerRequestID, rid)
		c.Locals(localRequestID, rid)

		err := c.Next()
		if err != nil {
			// run the error handler now so the logged status is final
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		if duration != nil {
			duration.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Observe(latency.Seconds())
		}

		logger.Info("http request",
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.IP()),
		)

		return nil
	}
}

// NewHTTPMetrics registers the request duration histogram on reg,
// reusing an already registered collector.
func NewHTTPMetrics(reg prometheus.Registerer) *prometheus.HistogramVec {
	if reg == nil {
		return nil
	}

	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cv_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
		return nil
	}
	return hist
}
