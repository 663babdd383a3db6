package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]*entity.User
	profiles map[string]*entity.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[string]*entity.User),
		profiles: make(map[string]*entity.Profile),
	}
}

func (f *fakeUserRepo) CreateWithProfile(_ context.Context, user *entity.User, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, p := *user, *profile
	f.users[u.ID] = &u
	f.profiles[u.ID] = &p
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetProfile(_ context.Context, userID string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[profile.UserID]; ok {
		p.Name = profile.Name
		p.PhoneNumber = profile.PhoneNumber
		p.UpdatedAt = profile.UpdatedAt
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[userID]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) SetBlocked(_ context.Context, userID string, blocked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[userID]; ok {
		p.Blocked = blocked
	}
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserListFilter) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, u := range f.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.OnlyUserID != "" && u.ID != filter.OnlyUserID {
			continue
		}
		skip := false
		for _, r := range filter.ExcludeRoles {
			if u.Role == r {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	delete(f.profiles, id)
	return nil
}

func (f *fakeUserRepo) SaveTwoFactorSetup(_ context.Context, userID, secret string, backupCodes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[userID]; ok {
		p.TOTPSecret = secret
		p.BackupCodes = append([]string(nil), backupCodes...)
		p.TOTPEnabled = false
	}
	return nil
}

func (f *fakeUserRepo) EnableTwoFactor(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[userID]; ok {
		p.TOTPEnabled = true
	}
	return nil
}

func (f *fakeUserRepo) ConsumeBackupCode(_ context.Context, userID, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return false, nil
	}
	for i, c := range p.BackupCodes {
		if c == code {
			p.BackupCodes = append(p.BackupCodes[:i], p.BackupCodes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) RecordTOTPUse(_ context.Context, userID, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok || p.LastOTPUsed == code {
		return false, nil
	}
	p.LastOTPUsed = code
	return true, nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLog
}

func (f *fakeAuditRepo) Append(_ context.Context, log *entity.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *log
	cp.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.AuditLog(nil), f.entries...), nil
}

func (f *fakeAuditRepo) ListByActor(_ context.Context, actorID string, limit, offset int) ([]*entity.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.AuditLog
	for _, e := range f.entries {
		if e.ActorID != nil && *e.ActorID == actorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeAuditRepo) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeVendorRepo struct {
	mu      sync.Mutex
	vendors map[string]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[string]*entity.Vendor)}
}

func (f *fakeVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *vendor
	f.vendors[vendor.ID] = &cp
	return nil
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.vendors[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeVendorRepo) GetByName(_ context.Context, name string) (*entity.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.vendors {
		if v.Name == name {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *vendor
	f.vendors[vendor.ID] = &cp
	return nil
}

func (f *fakeVendorRepo) List(_ context.Context, filter repository.VendorListFilter) ([]*entity.Vendor, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Vendor
	for _, v := range f.vendors {
		if filter.VendorType != "" && v.VendorType != filter.VendorType {
			continue
		}
		if filter.IsActive != nil && v.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(v.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(v.ContactPerson), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *v
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, filter.Limit, filter.Offset), len(all), nil
}

func (f *fakeVendorRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.vendors, id)
	return nil
}

func (f *fakeVendorRepo) SetActive(_ context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.vendors[id]; ok {
		v.IsActive = active
	}
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
	products   *fakeProductRepo // para CountProducts
}

func newFakeCategoryRepo(products *fakeProductRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category), products: products}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Category
	for _, c := range f.categories {
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), len(all), nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) SetActive(_ context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.categories[id]; ok {
		c.IsActive = active
	}
	return nil
}

func (f *fakeCategoryRepo) CountProducts(_ context.Context, categoryID string) (int, error) {
	if f.products == nil {
		return 0, nil
	}
	f.products.mu.Lock()
	defer f.products.mu.Unlock()
	n := 0
	for _, p := range f.products.items {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *product
	f.items[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *product
	f.items[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, filter repository.ProductListFilter) ([]*entity.Product, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Product
	for _, p := range f.items {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(p.SKU), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, filter.Limit, filter.Offset), len(all), nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeProductRepo) SetActive(_ context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.items[id]; ok {
		p.IsActive = active
	}
	return nil
}

type fakeStockRepo struct {
	mu       sync.Mutex
	items    map[string]*entity.StockRecord
	products *fakeProductRepo // para el umbral de stock bajo
}

func newFakeStockRepo(products *fakeProductRepo) *fakeStockRepo {
	return &fakeStockRepo{items: make(map[string]*entity.StockRecord), products: products}
}

func (f *fakeStockRepo) Create(_ context.Context, record *entity.StockRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *record
	f.items[record.ID] = &cp
	return nil
}

func (f *fakeStockRepo) GetByID(_ context.Context, id string) (*entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.items[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStockRepo) Update(_ context.Context, record *entity.StockRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *record
	f.items[record.ID] = &cp
	return nil
}

func (f *fakeStockRepo) List(_ context.Context, filter repository.StockListFilter) ([]*entity.StockRecord, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.StockRecord
	for _, r := range f.items {
		if filter.ProductID != "" && r.ProductID != filter.ProductID {
			continue
		}
		if filter.Location != "" && r.Location != filter.Location {
			continue
		}
		if filter.LowStockOnly && !f.isLowStock(r) {
			continue
		}
		cp := *r
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, filter.Limit, filter.Offset), len(all), nil
}

func (f *fakeStockRepo) ListByProduct(_ context.Context, productID string) ([]*entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.StockRecord
	for _, r := range f.items {
		if r.ProductID == productID {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStockRepo) ListLowStock(_ context.Context) ([]*entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.StockRecord
	for _, r := range f.items {
		if r.IsActive && f.isLowStock(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStockRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeStockRepo) AdjustOnHand(_ context.Context, id string, delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.items[id]
	if !ok || r.QuantityOnHand+delta < 0 {
		// El update condicional del repositorio real no toca la fila.
		return 0, domain.ErrConflict
	}
	r.QuantityOnHand += delta
	r.UpdatedAt = time.Now()
	return r.QuantityOnHand, nil
}

func (f *fakeStockRepo) isLowStock(r *entity.StockRecord) bool {
	if f.products == nil {
		return false
	}
	p, ok := f.products.items[r.ProductID]
	if !ok {
		return false
	}
	return r.QuantityOnHand <= p.MinStockLevel
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
