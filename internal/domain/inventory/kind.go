package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// ParseKind normaliza el tipo informado por el cliente ("entrada", "Saída", "SAIDA")
// quitando acentos y pasando a mayúsculas.
func ParseKind(raw string) (entity.MovementKind, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(raw))
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	switch strings.ToUpper(folded) {
	case "ENTRADA", "ENTRY", "IN":
		return entity.MovementEntry, nil
	case "SAIDA", "EXIT", "OUT":
		return entity.MovementExit, nil
	}
	return "", domain.NewStockError(domain.ErrInvalidInput, "Tipo de movimento inválido: '%s' (use ENTRADA ou SAIDA)", raw)
}
