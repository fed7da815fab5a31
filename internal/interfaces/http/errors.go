package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain"
)

type errorMapping struct {
	status int
	code   string
}

// Las violaciones de regla de negocio responden 400, como la API original.
var errorStatus = map[error]errorMapping{
	domain.ErrInvalidQuantity:     {fiber.StatusBadRequest, "INVALID_QUANTITY"},
	domain.ErrInvalidInput:        {fiber.StatusBadRequest, "VALIDATION"},
	domain.ErrInvalidReference:    {fiber.StatusBadRequest, "INVALID_REFERENCE"},
	domain.ErrMaximumExceeded:     {fiber.StatusBadRequest, "MAXIMUM_EXCEEDED"},
	domain.ErrMinimumViolated:     {fiber.StatusBadRequest, "MINIMUM_VIOLATED"},
	domain.ErrInsufficientStock:   {fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
	domain.ErrMinimumAboveMaximum: {fiber.StatusBadRequest, "MINIMUM_ABOVE_MAXIMUM"},
	domain.ErrInitialBelowMinimum: {fiber.StatusBadRequest, "INITIAL_BELOW_MINIMUM"},
	domain.ErrInitialAboveMaximum: {fiber.StatusBadRequest, "INITIAL_ABOVE_MAXIMUM"},
	domain.ErrActorRequired:       {fiber.StatusBadRequest, "ACTOR_REQUIRED"},
	domain.ErrInUse:               {fiber.StatusBadRequest, "IN_USE"},
	domain.ErrProductNotFound:     {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrNotFound:            {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrUserNotFound:        {fiber.StatusNotFound, "USER_NOT_FOUND"},
	domain.ErrUnauthorized:        {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrForbidden:           {fiber.StatusForbidden, "FORBIDDEN"},
	domain.ErrConcurrentUpdate:    {fiber.StatusConflict, "CONCURRENT_UPDATE"},
	domain.ErrConflict:            {fiber.StatusConflict, "CONFLICT"},
	domain.ErrDuplicate:           {fiber.StatusConflict, "DUPLICATE"},
	domain.ErrUserAlreadyExists:   {fiber.StatusConflict, "USER_EXISTS"},
	domain.ErrLedgerWriteFailed:   {fiber.StatusInternalServerError, "LEDGER_WRITE_FAILED"},
	domain.ErrStorage:             {fiber.StatusInternalServerError, "STORAGE"},
}

// StatusFor devuelve el status HTTP y el código para err.
func StatusFor(err error) (int, string) {
	if m, ok := errorStatus[domain.KindOf(err)]; ok {
		return m.status, m.code
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// respondError escribe dto.ErrorResponse con el mensaje legible del error.
func respondError(c *fiber.Ctx, err error) error {
	status, code := StatusFor(err)
	msg := err.Error()
	if code == "INTERNAL" {
		msg = "Erro interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Corpo da requisição inválido"})
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
