package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, name, contact_person, email, phone, address, city, postal_code,
	tax_id, vendor_type, rating, is_active, created_at, updated_at`

// Create persiste un proveedor nuevo.
func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO vendors (id, name, contact_person, email, phone, address, city, postal_code,
			tax_id, vendor_type, rating, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		vendor.ID, vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone,
		vendor.Address, vendor.City, vendor.PostalCode, vendor.TaxID, vendor.VendorType,
		vendor.Rating, vendor.IsActive, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	return r.get(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)
}

// GetByName obtiene un proveedor por nombre (único).
func (r *VendorRepo) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	return r.get(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE name = $1`, name)
}

func (r *VendorRepo) get(ctx context.Context, query string, arg any) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&v.ID, &v.Name, &v.ContactPerson, &v.Email, &v.Phone, &v.Address, &v.City,
		&v.PostalCode, &v.TaxID, &v.VendorType, &v.Rating, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Update actualiza un proveedor existente.
func (r *VendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	_, err := r.q.Exec(ctx, `
		UPDATE vendors SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6,
			city = $7, postal_code = $8, tax_id = $9, vendor_type = $10, rating = $11, updated_at = $12
		WHERE id = $1`,
		vendor.ID, vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone,
		vendor.Address, vendor.City, vendor.PostalCode, vendor.TaxID, vendor.VendorType,
		vendor.Rating, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// List lista proveedores con filtros y devuelve el total sin paginar.
func (r *VendorRepo) List(ctx context.Context, filter repository.VendorListFilter) ([]*entity.Vendor, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		where = append(where, "(name ILIKE "+p+" OR contact_person ILIKE "+p+")")
	}
	if filter.VendorType != "" {
		where = append(where, "vendor_type = "+arg(filter.VendorType))
	}
	if filter.IsActive != nil {
		where = append(where, "is_active = "+arg(*filter.IsActive))
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM vendors`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}

	query := `SELECT ` + vendorColumns + ` FROM vendors` + cond +
		" ORDER BY name LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Email, &v.Phone, &v.Address,
			&v.City, &v.PostalCode, &v.TaxID, &v.VendorType, &v.Rating, &v.IsActive,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, total, rows.Err()
}

// Delete elimina un proveedor. Las existencias asociadas quedan sin proveedor
// (ON DELETE SET NULL).
func (r *VendorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}

// SetActive fija el estado activo (idempotente).
func (r *VendorRepo) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.q.Exec(ctx, `
		UPDATE vendors SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set vendor active: %w", err)
	}
	return nil
}
