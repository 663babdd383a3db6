package dto

import "time"

// CreateVendorRequest entrada para crear un proveedor.
type CreateVendorRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	ContactPerson string `json:"contact_person" validate:"omitempty,max=100"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Address       string `json:"address" validate:"omitempty,max=255"`
	City          string `json:"city" validate:"omitempty,max=100"`
	PostalCode    string `json:"postal_code" validate:"omitempty,max=20"`
	TaxID         string `json:"tax_id" validate:"omitempty,max=50"`
	VendorType    string `json:"vendor_type" validate:"omitempty,oneof=purchase service scrap"`
	Rating        *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// UpdateVendorRequest campos editables de un proveedor.
type UpdateVendorRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=255"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	Address       *string `json:"address" validate:"omitempty,max=255"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,max=20"`
	TaxID         *string `json:"tax_id" validate:"omitempty,max=50"`
	VendorType    *string `json:"vendor_type" validate:"omitempty,oneof=purchase service scrap"`
	Rating        *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	PostalCode    string    `json:"postal_code,omitempty"`
	TaxID         string    `json:"tax_id,omitempty"`
	VendorType    string    `json:"vendor_type"`
	Rating        *int      `json:"rating,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// VendorListResponse listado paginado de proveedores.
type VendorListResponse struct {
	Vendors []VendorResponse `json:"vendors"`
	Page    PageResponse     `json:"page"`
}
