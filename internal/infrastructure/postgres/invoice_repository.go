package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over PostgreSQL. A unique index
// on so_id backs the one-invoice-per-order rule against races the lookup
// in the use case cannot see.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the invoice adapter.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, so_id, customer_id, invoice_date, due_date, subtotal, total_gst, total_amount, status, created_at`

func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.SOID, inv.CustomerID, inv.InvoiceDate, inv.DueDate,
		inv.Subtotal, inv.TotalGST, inv.TotalAmount, inv.Status, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.getOne(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

func (r *InvoiceRepo) GetBySOID(soID string) (*entity.Invoice, error) {
	return r.getOne(`SELECT `+invoiceColumns+` FROM invoices WHERE so_id = $1`, soID)
}

func (r *InvoiceRepo) getOne(query, arg string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&inv.ID, &inv.SOID, &inv.CustomerID, &inv.InvoiceDate, &inv.DueDate,
		&inv.Subtotal, &inv.TotalGST, &inv.TotalAmount, &inv.Status, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.SOID, &inv.CustomerID, &inv.InvoiceDate, &inv.DueDate,
			&inv.Subtotal, &inv.TotalGST, &inv.TotalAmount, &inv.Status, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) CountByCustomer(customerID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoices by customer: %w", err)
	}
	return count, nil
}
