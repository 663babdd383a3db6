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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, product_id, vendor_id, quantity_on_hand, quantity_reserved,
	quantity_available, location, warehouse, shelf, batch_number, expiry_date,
	cost_per_unit, notes, last_counted, is_active, created_at, updated_at`

// Create persiste un registro de existencias nuevo.
func (r *StockRepo) Create(ctx context.Context, record *entity.StockRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory (id, product_id, vendor_id, quantity_on_hand, quantity_reserved,
			quantity_available, location, warehouse, shelf, batch_number, expiry_date,
			cost_per_unit, notes, last_counted, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		record.ID, record.ProductID, nullIfEmpty(record.VendorID),
		record.QuantityOnHand, record.QuantityReserved, record.QuantityAvailable,
		record.Location, record.Warehouse, record.Shelf, record.BatchNumber,
		record.ExpiryDate, record.CostPerUnit, record.Notes, record.LastCounted,
		record.IsActive, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de existencias por ID.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.StockRecord, error) {
	var (
		s        entity.StockRecord
		vendorID *string
	)
	err := r.q.QueryRow(ctx, `SELECT `+stockColumns+` FROM inventory WHERE id = $1`, id).Scan(
		&s.ID, &s.ProductID, &vendorID, &s.QuantityOnHand, &s.QuantityReserved,
		&s.QuantityAvailable, &s.Location, &s.Warehouse, &s.Shelf, &s.BatchNumber,
		&s.ExpiryDate, &s.CostPerUnit, &s.Notes, &s.LastCounted, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	if vendorID != nil {
		s.VendorID = *vendorID
	}
	return &s, nil
}

// Update actualiza un registro existente. Las tres cantidades se escriben tal
// cual: available no se recalcula.
func (r *StockRepo) Update(ctx context.Context, record *entity.StockRecord) error {
	_, err := r.q.Exec(ctx, `
		UPDATE inventory SET vendor_id = $2, quantity_on_hand = $3, quantity_reserved = $4,
			quantity_available = $5, location = $6, warehouse = $7, shelf = $8,
			batch_number = $9, expiry_date = $10, cost_per_unit = $11, notes = $12,
			last_counted = $13, updated_at = $14
		WHERE id = $1`,
		record.ID, nullIfEmpty(record.VendorID),
		record.QuantityOnHand, record.QuantityReserved, record.QuantityAvailable,
		record.Location, record.Warehouse, record.Shelf, record.BatchNumber,
		record.ExpiryDate, record.CostPerUnit, record.Notes, record.LastCounted,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista existencias con filtros y devuelve el total sin paginar.
func (r *StockRepo) List(ctx context.Context, filter repository.StockListFilter) ([]*entity.StockRecord, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.ProductID != "" {
		where = append(where, "i.product_id = "+arg(filter.ProductID))
	}
	if filter.ProductSearch != "" {
		where = append(where, "p.name ILIKE "+arg("%"+filter.ProductSearch+"%"))
	}
	if filter.Location != "" {
		where = append(where, "i.location = "+arg(filter.Location))
	}
	if filter.LowStockOnly {
		where = append(where, "i.quantity_on_hand <= p.min_stock_level")
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}
	from := ` FROM inventory i JOIN products p ON p.id = i.product_id`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*)`+from+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock: %w", err)
	}

	query := `SELECT ` + prefixColumns("i.", stockColumns) + from + cond +
		" ORDER BY i.created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	list, err := scanStockRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByProduct lista todas las existencias de un producto.
func (r *StockRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockRecord, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+stockColumns+` FROM inventory WHERE product_id = $1 ORDER BY created_at DESC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows)
}

// ListLowStock lista existencias con on_hand en o por debajo del mínimo del producto.
func (r *StockRepo) ListLowStock(ctx context.Context) ([]*entity.StockRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+prefixColumns("i.", stockColumns)+`
		FROM inventory i JOIN products p ON p.id = i.product_id
		WHERE i.quantity_on_hand <= p.min_stock_level AND i.is_active
		ORDER BY i.quantity_on_hand`)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows)
}

// Delete elimina un registro de existencias por ID.
func (r *StockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// AdjustOnHand aplica un delta atómico sobre quantity_on_hand y devuelve la
// cantidad resultante. Un solo UPDATE condicional: dos retiros concurrentes
// no pueden dejar la cantidad por debajo de cero.
func (r *StockRepo) AdjustOnHand(ctx context.Context, id string, delta int) (int, error) {
	var quantity int
	err := r.q.QueryRow(ctx, `
		UPDATE inventory SET quantity_on_hand = quantity_on_hand + $2, updated_at = now()
		WHERE id = $1 AND quantity_on_hand + $2 >= 0
		RETURNING quantity_on_hand`,
		id, delta,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Fila inexistente o piso alcanzado: el caso lo distingue el
			// caller, que ya verificó la existencia del registro.
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return quantity, nil
}

func scanStockRows(rows pgx.Rows) ([]*entity.StockRecord, error) {
	var list []*entity.StockRecord
	for rows.Next() {
		var (
			s        entity.StockRecord
			vendorID *string
		)
		if err := rows.Scan(&s.ID, &s.ProductID, &vendorID, &s.QuantityOnHand,
			&s.QuantityReserved, &s.QuantityAvailable, &s.Location, &s.Warehouse,
			&s.Shelf, &s.BatchNumber, &s.ExpiryDate, &s.CostPerUnit, &s.Notes,
			&s.LastCounted, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		if vendorID != nil {
			s.VendorID = *vendorID
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// prefixColumns antepone el alias de tabla a cada columna de una lista.
func prefixColumns(prefix, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = prefix + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
