package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
	"github.com/unitedfins/inventory-api/pkg/logger"
)

// VendorUseCase gestión de proveedores.
type VendorUseCase struct {
	vendors repository.VendorRepository
	log     *logger.Logger
}

// NewVendorUseCase construye el caso de uso de proveedores.
func NewVendorUseCase(vendors repository.VendorRepository, log *logger.Logger) *VendorUseCase {
	return &VendorUseCase{vendors: vendors, log: log}
}

// Create registra un proveedor nuevo. El nombre es único.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	existing, err := uc.vendors.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	vendorType := in.VendorType
	if vendorType == "" {
		vendorType = entity.VendorTypePurchase
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:            uuid.NewString(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		PostalCode:    in.PostalCode,
		TaxID:         in.TaxID,
		VendorType:    vendorType,
		Rating:        in.Rating,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.vendors.Create(ctx, vendor); err != nil {
		return nil, err
	}
	uc.log.Info().Str("vendor_id", vendor.ID).Str("name", vendor.Name).Msg("proveedor creado")
	return vendorToResponse(vendor), nil
}

// Get obtiene un proveedor por id.
func (uc *VendorUseCase) Get(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return vendorToResponse(vendor), nil
}

// List lista proveedores con filtros opcionales.
func (uc *VendorUseCase) List(ctx context.Context, filter repository.VendorListFilter, page dto.PageRequest) (*dto.VendorListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	vendors, total, err := uc.vendors.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.VendorListResponse{
		Vendors: make([]dto.VendorResponse, 0, len(vendors)),
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, v := range vendors {
		out.Vendors = append(out.Vendors, *vendorToResponse(v))
	}
	return out, nil
}

// Update aplica cambios parciales sobre un proveedor.
func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != vendor.Name {
		other, err := uc.vendors.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		vendor.Name = *in.Name
	}
	if in.ContactPerson != nil {
		vendor.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}
	if in.City != nil {
		vendor.City = *in.City
	}
	if in.PostalCode != nil {
		vendor.PostalCode = *in.PostalCode
	}
	if in.TaxID != nil {
		vendor.TaxID = *in.TaxID
	}
	if in.VendorType != nil {
		vendor.VendorType = *in.VendorType
	}
	if in.Rating != nil {
		vendor.Rating = in.Rating
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.vendors.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendorToResponse(vendor), nil
}

// Delete elimina un proveedor. Las existencias que lo referencian quedan
// con vendor_id en NULL (ON DELETE SET NULL).
func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	vendor, err := uc.vendors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	return uc.vendors.Delete(ctx, id)
}

// SetActive activa o desactiva un proveedor (idempotente).
func (uc *VendorUseCase) SetActive(ctx context.Context, id string, active bool) error {
	vendor, err := uc.vendors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	return uc.vendors.SetActive(ctx, id, active)
}

func vendorToResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
		City:          v.City,
		PostalCode:    v.PostalCode,
		TaxID:         v.TaxID,
		VendorType:    v.VendorType,
		Rating:        v.Rating,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
