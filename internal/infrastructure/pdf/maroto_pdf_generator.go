// Package pdf renders the printable GST tax invoice.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name + GSTIN  │  Invoice no. + dates       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: Customer name + GSTIN + contact                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Item | Rate | GST% | GST Amt | Line Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Total GST / GRAND TOTAL / Status        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/rajatsoni/vyapar-api/internal/application/billing"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Business identifies the selling party printed on every invoice.
type Business struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct {
	business Business
}

// NewMarotoPDFGenerator builds the generator for one selling party.
func NewMarotoPDFGenerator(business Business) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{business: business}
}

// Generate renders the invoice and returns the PDF bytes.
func (g *MarotoPDFGenerator) Generate(
	invoice *entity.Invoice,
	customer *entity.Customer,
	lines []billing.InvoiceLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice", true).
		WithAuthor(g.business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.sellerRow())
	m.AddRows(billToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))
	m.AddRows(statusRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business name + GSTIN (left), invoice number and dates (right).
func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+nonEmpty(g.business.GSTIN, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Date: %s   Due: %s",
				invoice.InvoiceDate.Format("02/01/2006"),
				invoice.DueDate.Format("02/01/2006"),
			), props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

// sellerRow: selling party contact details.
func (g *MarotoPDFGenerator) sellerRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SELLER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Address: %s   |   Phone: %s   |   Email: %s",
				nonEmpty(g.business.Address, "—"),
				nonEmpty(g.business.Phone, "—"),
				nonEmpty(g.business.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// billToRow: buyer details.
func billToRow(customer *entity.Customer) core.Row {
	name, gstin, phone := "—", "—", "—"
	if customer != nil {
		name = customer.Name
		gstin = nonEmpty(customer.GSTIN, "—")
		phone = nonEmpty(customer.Phone, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("GSTIN: %s   |   Phone: %s", gstin, phone),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: line-table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 4, align.Left),
		h("Rate", 2, align.Right),
		h("GST%", 1, align.Center),
		h("GST Amt", 2, align.Right),
		h("Line Total", 2, align.Right),
	)
}

// tableLineRows: one row per invoice line.
func tableLineRows(lines []billing.InvoiceLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				l.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+l.Rate.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.GSTPercent.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+l.GSTAmount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+l.LineTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totals block aligned right.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}
	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:", 2),
			label("Total GST:", 8),
			grandLabel("GRAND TOTAL:", 16),
		),
		col.New(3).Add(
			value("₹"+invoice.Subtotal.StringFixed(2), 2),
			value("₹"+invoice.TotalGST.StringFixed(2), 8),
			grandValue("₹"+invoice.TotalAmount.StringFixed(2), 16),
		),
		col.New(3),
	)
}

// statusRow: payment status below the totals.
func statusRow(invoice *entity.Invoice) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Status: "+invoice.Status, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
