package repository

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// VendorListFilter criterios de listado de proveedores.
type VendorListFilter struct {
	Search     string // busca en name y contact_person
	VendorType string
	IsActive   *bool
	Limit      int
	Offset     int
}

// VendorRepository define el puerto de persistencia para Vendor (DIP).
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	GetByName(ctx context.Context, name string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	List(ctx context.Context, filter VendorListFilter) ([]*entity.Vendor, int, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}
