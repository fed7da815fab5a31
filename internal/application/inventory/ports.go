package inventory

import (
	"errors"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

// Metrics recibe los eventos del motor de estoque (Prometheus en producción).
type Metrics interface {
	MovementApplied(kind entity.MovementKind)
	MovementRejected(reason string)
	AlertRaised(kind domaininv.AlertKind)
	ConflictRetried()
}

// NopMetrics descarta todos los eventos.
type NopMetrics struct{}

func (NopMetrics) MovementApplied(entity.MovementKind) {}
func (NopMetrics) MovementRejected(string)             {}
func (NopMetrics) AlertRaised(domaininv.AlertKind)     {}
func (NopMetrics) ConflictRetried()                    {}

// rejectionReasons etiqueta "motivo" de estoque_rejeicoes_total.
var rejectionReasons = []struct {
	kind   error
	reason string
}{
	{domain.ErrInvalidQuantity, "quantidade_invalida"},
	{domain.ErrProductNotFound, "produto_inexistente"},
	{domain.ErrMaximumExceeded, "maximo_excedido"},
	{domain.ErrMinimumViolated, "minimo_violado"},
	{domain.ErrInsufficientStock, "estoque_insuficiente"},
	{domain.ErrMinimumAboveMaximum, "minimo_maior_que_maximo"},
	{domain.ErrInitialBelowMinimum, "inicial_abaixo_do_minimo"},
	{domain.ErrInitialAboveMaximum, "inicial_acima_do_maximo"},
	{domain.ErrActorRequired, "usuario_obrigatorio"},
	{domain.ErrConcurrentUpdate, "concorrencia"},
	{domain.ErrStorage, "armazenamento"},
}

// RejectionReason traduce un error del motor a la etiqueta de la métrica.
func RejectionReason(err error) string {
	for _, r := range rejectionReasons {
		if errors.Is(err, r.kind) {
			return r.reason
		}
	}
	return "outro"
}
