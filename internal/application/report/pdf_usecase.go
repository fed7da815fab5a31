package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	"github.com/jhoicas/controle-estoque/internal/domain/repository"
)

// PDFUseCase genera el relatório de movimentos (auditoría) de un producto.
type PDFUseCase struct {
	products  repository.ProductRepository
	users     repository.UserRepository
	recorder  *inventory.MovementRecorder
	generator MovementReportGenerator
	now       func() time.Time
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	products repository.ProductRepository,
	users repository.UserRepository,
	recorder *inventory.MovementRecorder,
	generator MovementReportGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		products:  products,
		users:     users,
		recorder:  recorder,
		generator: generator,
		now:       time.Now,
	}
}

// BuildMovementReport junta producto, histórico completo y nombres de usuario.
func (uc *PDFUseCase) BuildMovementReport(ctx context.Context, productID int64) (*MovementReport, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if product == nil {
		return nil, domain.NewStockError(domain.ErrProductNotFound, "Produto não encontrado")
	}

	movements, err := uc.recorder.ListForProduct(ctx, productID, 0, 0)
	if err != nil {
		return nil, err
	}

	names := map[int64]string{}
	rep := &MovementReport{
		Product:     product,
		Rows:        make([]MovementReportRow, 0, len(movements)),
		GeneratedAt: uc.now(),
	}
	for _, m := range movements {
		name, ok := names[m.UserID]
		if !ok {
			name = fmt.Sprintf("#%d", m.UserID) // fallback si el usuario ya no existe
			if u, uErr := uc.users.GetByID(ctx, m.UserID); uErr == nil && u != nil {
				name = u.Username
			}
			names[m.UserID] = name
		}
		rep.Rows = append(rep.Rows, MovementReportRow{Movement: *m, Username: name})
		if m.Kind == entity.MovementEntry {
			rep.TotalIn += m.Quantity
		} else {
			rep.TotalOut += m.Quantity
		}
	}
	return rep, nil
}

// DownloadMovementReport genera el PDF y su nombre de archivo.
func (uc *PDFUseCase) DownloadMovementReport(ctx context.Context, productID int64) (pdfBytes []byte, filename string, err error) {
	rep, err := uc.BuildMovementReport(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateMovementReport(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: geração falhou: %w", err)
	}
	filename = fmt.Sprintf("movimentos_produto_%d_%s.pdf", productID, rep.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
