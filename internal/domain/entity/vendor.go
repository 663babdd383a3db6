package entity

import "time"

// Tipos de proveedor.
const (
	VendorTypePurchase = "purchase"
	VendorTypeService  = "service"
	VendorTypeScrap    = "scrap"
)

// Vendor representa un proveedor del inventario.
type Vendor struct {
	ID            string
	Name          string // único
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	TaxID         string
	VendorType    string // ver constantes VendorType*
	Rating        *int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
