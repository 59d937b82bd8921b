// Package pdf implementa la generación del Estado de Cuenta de un cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  ESTADO DE CUENTA + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TIENDA: Dirección / Tel                                    │
//	│  CLIENTE: Nombre + Teléfono + Alta                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEUDA PENDIENTE (monto grande)                             │
//	│  ÚLTIMO MOVIMIENTO: tipo / monto / fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/ahadnur/nur-perfumes-os/internal/application/ledger"
	"github.com/ahadnur/nur-perfumes-os/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa ledger.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

var _ ledger.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	shop ledger.ShopInfo,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta", true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shopRow(shop))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(dueRow(customer))
	m.AddRows(lastTransactionRows(customer.LastTransaction)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y título + fecha de emisión (der).
func headerRow(shop ledger.ShopInfo) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// shopRow: datos de contacto de la tienda.
func shopRow(shop ledger.ShopInfo) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s",
				nonEmpty(shop.Address, "—"),
				nonEmpty(shop.Phone, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Cliente desde: %s",
				customer.Phone,
				customer.CreatedAt.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// dueRow: deuda pendiente en grande.
func dueRow(customer *entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New("DEUDA PENDIENTE", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4,
			}),
		),
		col.New(6).Add(
			text.New("$"+formatMoney(customer.CurrentDue.StringFixed(2)), props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// lastTransactionRows: último movimiento aplicado, o la leyenda de que no hay ninguno.
func lastTransactionRows(tx *entity.LastTransaction) []core.Row {
	header := row.New(6).Add(col.New(12).Add(
		text.New("ÚLTIMO MOVIMIENTO", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))

	if tx == nil {
		return []core.Row{header, row.New(6).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		))}
	}

	label := "Depósito (aumenta la deuda)"
	if tx.Type == entity.TransactionPayment {
		label = "Pago (disminuye la deuda)"
	}
	return []core.Row{header, row.New(8).Add(
		col.New(5).Add(text.New(label, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New("$"+formatMoney(tx.Amount.StringFixed(2)), props.Text{
			Size: 9, Align: align.Right, Top: 1,
		})),
		col.New(4).Add(text.New(tx.Date.Format("02/01/2006 15:04"), props.Text{
			Size: 9, Align: align.Right, Top: 1, Color: colorGray,
		})),
	)}
}

// footerRow: leyenda del documento.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento refleja el saldo pendiente a la fecha de emisión. "+
				"Conserve este comprobante para su control.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera de un string numérico
// con dos decimales. Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	intPart, decPart := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, decPart = s[:i], s[i+1:]
			break
		}
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	if decPart != "" {
		buf = append(buf, ',')
		buf = append(buf, decPart...)
	}
	return string(buf)
}
