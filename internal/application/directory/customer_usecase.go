package directory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rajatsoni/vyapar-api/internal/application/dto"
	"github.com/rajatsoni/vyapar-api/internal/domain"
	"github.com/rajatsoni/vyapar-api/internal/domain/entity"
	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

// CustomerUseCase is the customer directory CRUD.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	soRepo  repository.SalesOrderRepository
	invRepo repository.InvoiceRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository, soRepo repository.SalesOrderRepository, invRepo repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, soRepo: soRepo, invRepo: invRepo}
}

// Create adds a customer.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name", "is required")
	}
	if in.CreditLimit.IsNegative() {
		return nil, domain.Validationf("credit_limit", "must not be negative")
	}
	now := time.Now()
	c := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		GSTIN:         in.GSTIN,
		CreditLimit:   in.CreditLimit,
		PaymentTerms:  in.PaymentTerms,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Update rewrites a customer's directory fields.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.Validationf("name", "is required")
	}
	if in.CreditLimit.IsNegative() {
		return nil, domain.Validationf("credit_limit", "must not be negative")
	}
	c.Name = in.Name
	c.ContactPerson = in.ContactPerson
	c.Phone = in.Phone
	c.Email = in.Email
	c.Address = in.Address
	c.GSTIN = in.GSTIN
	c.CreditLimit = in.CreditLimit
	c.PaymentTerms = in.PaymentTerms
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Get returns one customer, or nil when absent.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List pages through the customer directory.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete removes a customer while no sales order or invoice references it.
// The refusal enumerates every dependent kind so the caller sees the whole
// picture in one round trip.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	soCount, err := uc.soRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	invCount, err := uc.invRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	var deps []domain.Dependency
	if soCount > 0 {
		deps = append(deps, domain.Dependency{Entity: "sales order", Count: soCount})
	}
	if invCount > 0 {
		deps = append(deps, domain.Dependency{Entity: "invoice", Count: invCount})
	}
	if len(deps) > 0 {
		return &domain.ReferentialError{Entity: "customer", Name: c.Name, Dependents: deps}
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		GSTIN:         c.GSTIN,
		CreditLimit:   c.CreditLimit,
		PaymentTerms:  c.PaymentTerms,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
