// Package metrics expone colectores Prometheus de la API y del document store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry contiene los colectores propios de la aplicación.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "colaboradores",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP atendidas.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "colaboradores",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	storeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "colaboradores",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Operaciones del repositorio de colaboradores por resultado.",
		},
		[]string{"op", "result"},
	)

	storeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "colaboradores",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duración de los round trips al document store.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"op"},
	)

	ambiguousLookups = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colaboradores",
			Subsystem: "store",
			Name:      "ambiguous_email_lookups_total",
			Help:      "Búsquedas por email que encontraron más de un documento.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		storeOps,
		storeDuration,
		ambiguousLookups,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler devuelve el handler HTTP con las métricas registradas.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware registra conteo y duración por ruta (patrón, no path concreto).
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// ObserveStore registra una operación del repositorio.
func ObserveStore(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOps.WithLabelValues(op, result).Inc()
	storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// AmbiguousLookup incrementa el contador de búsquedas ambiguas por email.
func AmbiguousLookup() {
	ambiguousLookups.Inc()
}
