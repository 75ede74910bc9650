// Package directory owns the supplier and customer directories. Deletes are
// guarded by the dependent-record rule: a party referenced by orders or
// invoices cannot be removed.
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

// SupplierUseCase is the supplier directory CRUD.
type SupplierUseCase struct {
	repo   repository.SupplierRepository
	poRepo repository.PurchaseOrderRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(repo repository.SupplierRepository, poRepo repository.PurchaseOrderRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, poRepo: poRepo}
}

// Create adds a supplier.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name", "is required")
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		GSTIN:         in.GSTIN,
		PaymentTerms:  in.PaymentTerms,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Update rewrites a supplier's directory fields.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.Validationf("name", "is required")
	}
	s.Name = in.Name
	s.ContactPerson = in.ContactPerson
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
	s.GSTIN = in.GSTIN
	s.PaymentTerms = in.PaymentTerms
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Get returns one supplier, or nil when absent.
func (uc *SupplierUseCase) Get(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil || s == nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// List pages through the supplier directory.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete removes a supplier while no purchase order references it.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	count, err := uc.poRepo.CountBySupplier(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ReferentialError{
			Entity: "supplier",
			Name:   s.Name,
			Dependents: []domain.Dependency{
				{Entity: "purchase order", Count: count},
			},
		}
	}
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		GSTIN:         s.GSTIN,
		PaymentTerms:  s.PaymentTerms,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
