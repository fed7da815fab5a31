// Package metrics expone los contadores del motor de estoque en formato Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

// Prometheus implementa inventory.Metrics con un registry propio (no el global),
// así los tests pueden crear instancias independientes.
type Prometheus struct {
	registry *prometheus.Registry

	movements *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	alerts    *prometheus.CounterVec
	conflicts prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewPrometheus registra los colectores bajo el prefijo indicado ("estoque" por defecto).
func NewPrometheus(prefix string) *Prometheus {
	if prefix == "" {
		prefix = "estoque"
	}
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_movimentos_total",
			Help: "Movimentos aplicados por tipo",
		}, []string{"tipo"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_rejeicoes_total",
			Help: "Movimentos rejeitados por motivo",
		}, []string{"motivo"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_alertas_total",
			Help: "Alertas de capacidade e mínimo emitidos",
		}, []string{"tipo"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_conflitos_total",
			Help: "Escritas condicionais que perderam a corrida e foram repetidas",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de requisições HTTP",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
	reg.MustRegister(
		p.movements, p.rejected, p.alerts, p.conflicts,
		p.httpRequests, p.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) MovementApplied(kind entity.MovementKind) {
	p.movements.WithLabelValues(string(kind)).Inc()
}

func (p *Prometheus) MovementRejected(reason string) {
	p.rejected.WithLabelValues(reason).Inc()
}

func (p *Prometheus) AlertRaised(kind domaininv.AlertKind) {
	p.alerts.WithLabelValues(string(kind)).Inc()
}

func (p *Prometheus) ConflictRetried() { p.conflicts.Inc() }

// ObserveHTTP registra una petición terminada. path debe ser la ruta del router, no la URL.
func (p *Prometheus) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	s := strconv.Itoa(status)
	p.httpRequests.WithLabelValues(method, path, s).Inc()
	p.httpDuration.WithLabelValues(method, path, s).Observe(elapsed.Seconds())
}

// Registry devuelve el registry subyacente.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler sirve /metrics.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
