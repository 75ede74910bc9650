// Package apptest holds in-memory repository fakes and a pass-through
// transaction runner for use-case tests. The fakes mimic the postgres
// implementations' contract: lookups return (nil, nil) when absent, and
// creating a second invoice for the same sales order reports a duplicate.
package apptest

import (
	"context"

	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}

// ItemRepo is an in-memory repository.ItemRepository.
type ItemRepo struct {
	items map[string]*entity.Item
	order []string
}

func NewItemRepo() *ItemRepo {
	return &ItemRepo{items: make(map[string]*entity.Item)}
}

func (r *ItemRepo) Create(item *entity.Item) error {
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *ItemRepo) Update(item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return page(out, limit, offset), nil
}

func (r *ItemRepo) Delete(id string) error {
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// InventoryRepo is an in-memory repository.InventoryRepository. LockCalls
// counts GetForUpdate invocations so tests can assert the locked path was
// taken.
type InventoryRepo struct {
	rows      map[string]*entity.Inventory
	LockCalls int
}

func NewInventoryRepo() *InventoryRepo {
	return &InventoryRepo{rows: make(map[string]*entity.Inventory)}
}

func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	r.rows[inv.ItemID] = inv
	return nil
}

func (r *InventoryRepo) Get(itemID string) (*entity.Inventory, error) {
	return r.rows[itemID], nil
}

func (r *InventoryRepo) GetForUpdate(itemID string) (*entity.Inventory, error) {
	r.LockCalls++
	return r.rows[itemID], nil
}

func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	r.rows[inv.ItemID] = inv
	return nil
}

func (r *InventoryRepo) Delete(itemID string) error {
	delete(r.rows, itemID)
	return nil
}

// OnHand returns the current stock for an item, zero when absent.
func (r *InventoryRepo) OnHand(itemID string) int64 {
	if inv := r.rows[itemID]; inv != nil {
		return inv.QuantityOnHand
	}
	return 0
}

// SupplierRepo is an in-memory repository.SupplierRepository.
type SupplierRepo struct {
	rows  map[string]*entity.Supplier
	order []string
}

func NewSupplierRepo() *SupplierRepo {
	return &SupplierRepo{rows: make(map[string]*entity.Supplier)}
}

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	r.rows[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.rows[id], nil
}

func (r *SupplierRepo) Update(s *entity.Supplier) error {
	r.rows[s.ID] = s
	return nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rows[id])
	}
	return page(out, limit, offset), nil
}

func (r *SupplierRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

// CustomerRepo is an in-memory repository.CustomerRepository.
type CustomerRepo struct {
	rows  map[string]*entity.Customer
	order []string
}

func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{rows: make(map[string]*entity.Customer)}
}

func (r *CustomerRepo) Create(c *entity.Customer) error {
	r.rows[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.rows[id], nil
}

func (r *CustomerRepo) Update(c *entity.Customer) error {
	r.rows[c.ID] = c
	return nil
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rows[id])
	}
	return page(out, limit, offset), nil
}

func (r *CustomerRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

// PurchaseOrderRepo is an in-memory repository.PurchaseOrderRepository.
type PurchaseOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
	order  []string
	lines  []*entity.PurchaseOrderLine
}

func NewPurchaseOrderRepo() *PurchaseOrderRepo {
	return &PurchaseOrderRepo{orders: make(map[string]*entity.PurchaseOrder)}
}

func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	r.orders[po.ID] = po
	r.order = append(r.order, po.ID)
	return nil
}

func (r *PurchaseOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	r.lines = append(r.lines, line)
	return nil
}

func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *PurchaseOrderRepo) GetLines(poID string) ([]*entity.PurchaseOrderLine, error) {
	var out []*entity.PurchaseOrderLine
	for _, l := range r.lines {
		if l.POID == poID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	out := make([]*entity.PurchaseOrder, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.orders[id])
	}
	return page(out, limit, offset), nil
}

func (r *PurchaseOrderRepo) UpdateStatus(poID, status string) error {
	if po := r.orders[poID]; po != nil {
		po.Status = status
	}
	return nil
}

func (r *PurchaseOrderRepo) DeleteLines(poID string) error {
	kept := r.lines[:0]
	for _, l := range r.lines {
		if l.POID != poID {
			kept = append(kept, l)
		}
	}
	r.lines = kept
	return nil
}

func (r *PurchaseOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

func (r *PurchaseOrderRepo) CountBySupplier(supplierID string) (int, error) {
	n := 0
	for _, po := range r.orders {
		if po.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

func (r *PurchaseOrderRepo) CountLinesByItem(itemID string) (int, error) {
	n := 0
	for _, l := range r.lines {
		if l.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

// GoodsReceiptRepo is an in-memory repository.GoodsReceiptRepository.
type GoodsReceiptRepo struct {
	rows []*entity.GoodsReceipt
}

func NewGoodsReceiptRepo() *GoodsReceiptRepo { return &GoodsReceiptRepo{} }

func (r *GoodsReceiptRepo) Create(gr *entity.GoodsReceipt) error {
	r.rows = append(r.rows, gr)
	return nil
}

func (r *GoodsReceiptRepo) ListByPO(poID string) ([]*entity.GoodsReceipt, error) {
	var out []*entity.GoodsReceipt
	for _, gr := range r.rows {
		if gr.POID == poID {
			out = append(out, gr)
		}
	}
	return out, nil
}

func (r *GoodsReceiptRepo) SumReceivedByPO(poID string) (map[string]int64, error) {
	sums := make(map[string]int64)
	for _, gr := range r.rows {
		if gr.POID == poID {
			sums[gr.ItemID] += gr.Received
		}
	}
	return sums, nil
}

func (r *GoodsReceiptRepo) CountByPO(poID string) (int, error) {
	n := 0
	for _, gr := range r.rows {
		if gr.POID == poID {
			n++
		}
	}
	return n, nil
}

func (r *GoodsReceiptRepo) CountByItem(itemID string) (int, error) {
	n := 0
	for _, gr := range r.rows {
		if gr.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

// SalesOrderRepo is an in-memory repository.SalesOrderRepository.
type SalesOrderRepo struct {
	orders map[string]*entity.SalesOrder
	order  []string
	lines  []*entity.SalesOrderLine
}

func NewSalesOrderRepo() *SalesOrderRepo {
	return &SalesOrderRepo{orders: make(map[string]*entity.SalesOrder)}
}

func (r *SalesOrderRepo) Create(so *entity.SalesOrder) error {
	r.orders[so.ID] = so
	r.order = append(r.order, so.ID)
	return nil
}

func (r *SalesOrderRepo) CreateLine(line *entity.SalesOrderLine) error {
	r.lines = append(r.lines, line)
	return nil
}

func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	return r.orders[id], nil
}

func (r *SalesOrderRepo) GetLines(soID string) ([]*entity.SalesOrderLine, error) {
	var out []*entity.SalesOrderLine
	for _, l := range r.lines {
		if l.SOID == soID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *SalesOrderRepo) List(limit, offset int) ([]*entity.SalesOrder, error) {
	out := make([]*entity.SalesOrder, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.orders[id])
	}
	return page(out, limit, offset), nil
}

func (r *SalesOrderRepo) Update(so *entity.SalesOrder) error {
	r.orders[so.ID] = so
	return nil
}

func (r *SalesOrderRepo) UpdateStatus(soID, status string) error {
	if so := r.orders[soID]; so != nil {
		so.Status = status
	}
	return nil
}

func (r *SalesOrderRepo) DeleteLines(soID string) error {
	kept := r.lines[:0]
	for _, l := range r.lines {
		if l.SOID != soID {
			kept = append(kept, l)
		}
	}
	r.lines = kept
	return nil
}

func (r *SalesOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

func (r *SalesOrderRepo) CountByCustomer(customerID string) (int, error) {
	n := 0
	for _, so := range r.orders {
		if so.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *SalesOrderRepo) CountLinesByItem(itemID string) (int, error) {
	n := 0
	for _, l := range r.lines {
		if l.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

// DeliveryRepo is an in-memory repository.DeliveryRepository.
type DeliveryRepo struct {
	rows []*entity.Delivery
}

func NewDeliveryRepo() *DeliveryRepo { return &DeliveryRepo{} }

func (r *DeliveryRepo) Create(d *entity.Delivery) error {
	r.rows = append(r.rows, d)
	return nil
}

func (r *DeliveryRepo) ListBySO(soID string) ([]*entity.Delivery, error) {
	var out []*entity.Delivery
	for _, d := range r.rows {
		if d.SOID == soID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *DeliveryRepo) SumDeliveredBySO(soID string) (map[string]int64, error) {
	sums := make(map[string]int64)
	for _, d := range r.rows {
		if d.SOID == soID {
			sums[d.ItemID] += d.Quantity
		}
	}
	return sums, nil
}

// InvoiceRepo is an in-memory repository.InvoiceRepository. Like the unique
// index on so_id in postgres, a second invoice against the same order is a
// duplicate.
type InvoiceRepo struct {
	rows  map[string]*entity.Invoice
	order []string
}

func NewInvoiceRepo() *InvoiceRepo {
	return &InvoiceRepo{rows: make(map[string]*entity.Invoice)}
}

func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range r.rows {
		if existing.SOID == inv.SOID {
			return domain.ErrDuplicate
		}
	}
	r.rows[inv.ID] = inv
	r.order = append(r.order, inv.ID)
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.rows[id], nil
}

func (r *InvoiceRepo) GetBySOID(soID string) (*entity.Invoice, error) {
	for _, inv := range r.rows {
		if inv.SOID == soID {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.order))
	for _, id := range r.order {
		if inv := r.rows[id]; inv != nil {
			out = append(out, inv)
		}
	}
	return page(out, limit, offset), nil
}

func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	if inv := r.rows[id]; inv != nil {
		inv.Status = status
	}
	return nil
}

func (r *InvoiceRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

func (r *InvoiceRepo) CountByCustomer(customerID string) (int, error) {
	n := 0
	for _, inv := range r.rows {
		if inv.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

// ReportRepo is a canned repository.ReportRepository: it returns whatever
// rows the test assigns.
type ReportRepo struct {
	OutputRows  []repository.GSTBracketRow
	InputRows   []repository.GSTBracketRow
	RevenueRows []repository.CustomerRevenueRow
	LowRows     []repository.LowStockRow
	Summary     repository.SalesSummaryRow
}

func (r *ReportRepo) OutputGSTByBracket() ([]repository.GSTBracketRow, error) {
	return r.OutputRows, nil
}

func (r *ReportRepo) InputGSTByBracket() ([]repository.GSTBracketRow, error) {
	return r.InputRows, nil
}

func (r *ReportRepo) RevenueByCustomer() ([]repository.CustomerRevenueRow, error) {
	return r.RevenueRows, nil
}

func (r *ReportRepo) LowStock() ([]repository.LowStockRow, error) {
	return r.LowRows, nil
}

func (r *ReportRepo) SalesSummary() (*repository.SalesSummaryRow, error) {
	return &r.Summary, nil
}

// TxRunner satisfies the catalog, purchasing and sales transaction-runner
// ports by invoking the callback directly against the fakes. Use cases
// validate before mutating, so rollback fidelity is not needed here.
type TxRunner struct {
	Items      *ItemRepo
	Inventory  *InventoryRepo
	Purchases  *PurchaseOrderRepo
	Receipts   *GoodsReceiptRepo
	Sales      *SalesOrderRepo
	Deliveries *DeliveryRepo
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	invRepo repository.InventoryRepository,
) error) error {
	return fn(r.Items, r.Inventory)
}

func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	poRepo repository.PurchaseOrderRepository,
	grRepo repository.GoodsReceiptRepository,
	invRepo repository.InventoryRepository,
) error) error {
	return fn(r.Purchases, r.Receipts, r.Inventory)
}

func (r *TxRunner) RunSales(ctx context.Context, fn func(
	soRepo repository.SalesOrderRepository,
	delRepo repository.DeliveryRepository,
	invRepo repository.InventoryRepository,
) error) error {
	return fn(r.Sales, r.Deliveries, r.Inventory)
}
