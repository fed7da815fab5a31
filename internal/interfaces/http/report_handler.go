package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-estoque/internal/application/report"
)

// ReportHandler descarga del relatório de movimentos en PDF.
type ReportHandler struct {
	uc *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadMovementsPDF godoc
// @Summary      Relatório de movimentos em PDF
// @Description  Cabeçalho com limites e quantidade atual, uma linha por movimento (data, tipo, quantidade, usuário).
// @Tags         estoque
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/movimentos/pdf [get]
func (h *ReportHandler) DownloadMovementsPDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	data, filename, err := h.uc.DownloadMovementReport(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
