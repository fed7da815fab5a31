package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrUserNotFound      = errors.New("Usuário não encontrado")
	ErrUserAlreadyExists = errors.New("Usuário já existe")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("Credenciais inválidas")
	ErrForbidden         = errors.New("Acesso restrito a administradores")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInUse             = errors.New("recurso em uso")
	ErrInvalidReference  = errors.New("Local, categoria ou fornecedor inexistente")
)

// Errores del motor de estoque. Se comparan con errors.Is contra un *StockError.
var (
	ErrInvalidQuantity     = errors.New("quantidade inválida")
	ErrProductNotFound     = errors.New("Produto não encontrado")
	ErrMaximumExceeded     = errors.New("estoque máximo excedido")
	ErrMinimumViolated     = errors.New("estoque mínimo violado")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
	ErrMinimumAboveMaximum = errors.New("estoque mínimo maior que o máximo")
	ErrInitialBelowMinimum = errors.New("quantidade inicial abaixo do mínimo")
	ErrInitialAboveMaximum = errors.New("quantidade inicial acima do máximo")
	ErrStorage             = errors.New("falha no armazenamento")
	ErrLedgerWriteFailed   = errors.New("falha ao registrar movimento")
	ErrConcurrentUpdate    = errors.New("conflito de concorrência")
	ErrActorRequired       = errors.New("usuário responsável obrigatório")
)

// StockError lleva el tipo (sentinel), el mensaje legible y la causa opcional.
type StockError struct {
	Err     error
	Message string
	Cause   error
}

// NewStockError construye un StockError con mensaje formateado.
func NewStockError(kind error, format string, args ...any) *StockError {
	return &StockError{Err: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *StockError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *StockError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// StorageError envuelve una falla del almacén.
func StorageError(cause error) *StockError {
	return &StockError{
		Err:     ErrStorage,
		Message: "Erro ao acessar o banco de dados: " + cause.Error(),
		Cause:   cause,
	}
}

var kinds = []error{
	ErrInvalidQuantity, ErrProductNotFound, ErrMaximumExceeded, ErrMinimumViolated,
	ErrInsufficientStock, ErrMinimumAboveMaximum, ErrInitialBelowMinimum, ErrInitialAboveMaximum,
	ErrLedgerWriteFailed, ErrConcurrentUpdate, ErrActorRequired, ErrStorage,
	ErrNotFound, ErrUserNotFound, ErrUserAlreadyExists, ErrInvalidInput, ErrDuplicate,
	ErrUnauthorized, ErrForbidden, ErrConflict, ErrInUse, ErrInvalidReference,
}

// KindOf devuelve el sentinel que clasifica err, o nil si no es de dominio.
func KindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
