package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/metrics"
)

var _ inventory.Metrics = (*metrics.Prometheus)(nil)

func TestPrometheus_Contadores(t *testing.T) {
	p := metrics.NewPrometheus("teste")
	p.MovementApplied(entity.MovementEntry)
	p.MovementApplied(entity.MovementEntry)
	p.MovementApplied(entity.MovementExit)
	p.MovementRejected("estoque_insuficiente")
	p.AlertRaised(domaininv.AlertNearMinimum)
	p.ConflictRetried()

	n, err := testutil.GatherAndCount(p.Registry(), "teste_movimentos_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por tipo")

	n, err = testutil.GatherAndCount(p.Registry(), "teste_conflitos_total", "teste_alertas_total", "teste_rejeicoes_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPrometheus_Handler(t *testing.T) {
	p := metrics.NewPrometheus("")
	p.MovementApplied(entity.MovementExit)
	p.ObserveHTTP(http.MethodGet, "/api/produtos", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `estoque_movimentos_total{tipo="SAIDA"} 1`)
	assert.Contains(t, body, `estoque_http_requests_total{method="GET",path="/api/produtos",status="200"} 1`)
}
