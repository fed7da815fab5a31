// Package pdf implementa el relatório de movimentos de estoque de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do produto + ID │ Data de emissão              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Quantidade atual / Mínimo / Máximo / Preços         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Tipo | Quantidade | Usuário | Operação       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Entradas / Saídas / Saldo                           │
//	│  FOOTER: QR con el identificador del producto                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-estoque/internal/application/report"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorEntry   = &props.Color{Red: 20, Green: 120, Blue: 40}
	colorExit    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.MovementReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	Author string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{Author: nonEmpty(author, "Controle de Estoque")}
}

// GenerateMovementReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(_ context.Context, rep *report.MovementReport) ([]byte, error) {
	if rep == nil || rep.Product == nil {
		return nil, fmt.Errorf("pdf: relatório sem produto")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Movimentos de estoque - "+rep.Product.Name, true).
		WithAuthor(g.Author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rep.Product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(rep.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhum movimento registrado", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableDetailRows(rep.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(rep.Product))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + id del producto (izq) y fecha de emisión (der).
func headerRow(rep *report.MovementReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(rep.Product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Produto #"+strconv.FormatInt(rep.Product.ID, 10), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("RELATÓRIO DE MOVIMENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: estado actual y límites.
func summaryRow(p *entity.Product) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("QUANTIDADE ATUAL", formatInt(p.Quantity)),
		cell("MÍNIMO / MÁXIMO", formatInt(p.MinimumStock)+" / "+formatInt(p.MaximumStock)),
		cell("CUSTO UNITÁRIO", "R$ "+formatMoney(p.UnitCost)),
		cell("VALOR DE VENDA", "R$ "+formatMoney(p.SalePrice)),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 3, align.Left),
		h("Tipo", 2, align.Center),
		h("Quantidade", 2, align.Right),
		h("Usuário", 2, align.Left),
		h("Operação", 3, align.Left),
	)
}

// tableDetailRows: una fila por movimiento, en orden cronológico.
func tableDetailRows(rows []report.MovementReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		kindColor := colorEntry
		if r.Kind == entity.MovementExit {
			kindColor = colorExit
		}
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(
				r.CreatedAt.Format("02/01/2006 15:04:05"),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				string(r.Kind),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: kindColor},
			)),
			col.New(2).Add(text.New(
				formatInt(r.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.Username,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				shortID(r.OperationID),
				props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// totalsRow: entradas, saídas y saldo del período listado.
func totalsRow(rep *report.MovementReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Total de entradas:"),
			label("Total de saídas:"),
			label("Movimentos:"),
		),
		col.New(3).Add(
			value(formatInt(rep.TotalIn)),
			value(formatInt(rep.TotalOut)),
			value(strconv.Itoa(len(rep.Rows))),
		),
	)
}

// footerRow: QR con el identificador del producto para la conferência física.
func footerRow(p *entity.Product) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr("produto:"+strconv.FormatInt(p.ID, 10), props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Documento gerado automaticamente a partir do histórico de movimentos.", props.Text{
				Size: 7, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Versão do registro: "+strconv.FormatInt(p.Version, 10), props.Text{
				Size: 7, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatInt inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200"
func formatInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + groupThousands(s)
}

// formatMoney formato brasileño con dos decimales. Ej: 1234.5 → "1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart) + "," + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
