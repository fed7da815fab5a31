package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
	domaininv "github.com/jhoicas/controle-estoque/internal/domain/inventory"
)

// InventoryHandler maneja entradas, saídas, histórico y reposición (protegido).
type InventoryHandler struct {
	engine        *inventory.StockEngine
	recorder      *inventory.MovementRecorder
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	engine *inventory.StockEngine,
	recorder *inventory.MovementRecorder,
	replenishment *inventory.ReplenishmentUseCase,
) *InventoryHandler {
	return &InventoryHandler{engine: engine, recorder: recorder, replenishment: replenishment}
}

// Entry godoc
// @Summary      Registrar entrada de estoque
// @Description  Falha se a quantidade resultante ultrapassar o estoque máximo. Alerta a partir de 80% do máximo.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID do produto"
// @Param        body  body  dto.StockMovementRequest  true  "quantidade"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/entrada [post]
func (h *InventoryHandler) Entry(c *fiber.Ctx) error {
	return h.apply(c, entity.MovementEntry)
}

// Exit godoc
// @Summary      Registrar saída de estoque
// @Description  Falha se a quantidade resultante ficar abaixo do mínimo ou negativa. Alerta até 120% do mínimo.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID do produto"
// @Param        body  body  dto.StockMovementRequest  true  "quantidade"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/saida [post]
func (h *InventoryHandler) Exit(c *fiber.Ctx) error {
	return h.apply(c, entity.MovementExit)
}

func (h *InventoryHandler) apply(c *fiber.Ctx, kind entity.MovementKind) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.engine.Apply(c.UserContext(), kind, id, in.Quantity, GetUserID(c))
	return h.respondMovement(c, kind, in.Quantity, res, err)
}

// RegisterMovement godoc
// @Summary      Registrar movimento (tipo informado)
// @Description  tipo aceita ENTRADA/SAIDA sem diferenciar acentos ou maiúsculas ("saída", "Saida").
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "id_produto, tipo, quantidade"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	kind, err := domaininv.ParseKind(in.Type)
	if err != nil {
		return respondError(c, err)
	}
	res, err := h.engine.RegisterMovementFromRequest(c.UserContext(), GetUserID(c), in)
	return h.respondMovement(c, kind, in.Quantity, res, err)
}

func (h *InventoryHandler) respondMovement(
	c *fiber.Ctx,
	kind entity.MovementKind,
	quantity int64,
	res *inventory.MovementResult,
	err error,
) error {
	if err != nil {
		if res != nil && errors.Is(err, domain.ErrLedgerWriteFailed) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.LedgerFailureResponse{
				Code: "LEDGER_WRITE_FAILED", Message: err.Error(), Product: dto.NewProductResponse(res.Product),
			})
		}
		return respondError(c, err)
	}

	msg := "Entrada registrada"
	if kind == entity.MovementExit {
		msg = "Saída registrada"
	}
	out := dto.MovementResultResponse{
		Message:  msg,
		Quantity: quantity,
		Product:  dto.NewProductResponse(res.Product),
	}
	if res.Movement != nil {
		out.MovementID = &res.Movement.ID
	}
	if a := res.Alert; a != nil {
		out.Alert = &dto.AlertResponse{Type: string(a.Kind), Message: a.Message}
		if a.Kind == domaininv.AlertNearCapacity {
			pct := a.Percent
			out.Alert.Percent = &pct
		}
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Histórico de movimentos do produto
// @Description  Ordem cronológica. O histórico permanece mesmo após a exclusão do produto.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID do produto"
// @Param        limit   query  int  false  "Máximo de itens (padrão 20, máx 100)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/produtos/{id}/movimentos [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.recorder.ListForProduct(c.UserContext(), id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range list {
		out.Items = append(out.Items, dto.NewMovementResponse(m))
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposição
// @Description  Produtos com estoque até 120% do mínimo, com a quantidade sugerida para voltar a 80% do máximo.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/estoque/reposicao [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":     len(list),
		"reposicao": list,
	})
}
