package report

import (
	"context"
	"time"

	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// MovementReportRow un movimiento con el nombre del usuario responsable.
type MovementReportRow struct {
	entity.Movement
	Username string
}

// MovementReport datos del histórico de un producto listos para renderizar.
type MovementReport struct {
	Product     *entity.Product
	Rows        []MovementReportRow
	TotalIn     int64
	TotalOut    int64
	GeneratedAt time.Time
}

// MovementReportGenerator genera el PDF del histórico (Maroto en infraestructura).
type MovementReportGenerator interface {
	GenerateMovementReport(ctx context.Context, report *MovementReport) ([]byte, error)
}
