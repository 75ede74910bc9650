package billing

import (
	"github.com/shopspring/decimal"

	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
)

// InvoiceLineForPDF is one printable invoice line with the item name
// resolved, so the PDF layer needs no repository access.
type InvoiceLineForPDF struct {
	ItemName   string
	Quantity   int64
	Rate       decimal.Decimal
	GSTPercent decimal.Decimal
	GSTAmount  decimal.Decimal
	LineTotal  decimal.Decimal
}

// InvoicePDFGenerator renders a printable invoice document.
type InvoicePDFGenerator interface {
	Generate(inv *entity.Invoice, customer *entity.Customer, lines []InvoiceLineForPDF) ([]byte, error)
}
