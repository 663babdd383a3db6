package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia y salida.
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
	u := *user
	p := *profile
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
		cp.BackupCodes = append([]string(nil), p.BackupCodes...)
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
		excluded := false
		for _, r := range filter.ExcludeRoles {
			if u.Role == r {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
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
		p.LastOTPUsed = ""
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
	if !ok {
		return false, nil
	}
	if p.LastOTPUsed == code {
		return false, nil
	}
	p.LastOTPUsed = code
	return true, nil
}

type fakeCodeRepo struct {
	mu    sync.Mutex
	codes []*entity.OneTimeCode
}

func (f *fakeCodeRepo) Create(_ context.Context, code *entity.OneTimeCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *code
	f.codes = append(f.codes, &cp)
	return nil
}

func (f *fakeCodeRepo) Consume(_ context.Context, userID, code, purpose string, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.codes {
		if c.UserID == userID && c.Code == code && c.Purpose == purpose &&
			!c.IsUsed && now.Before(c.ExpiresAt) {
			c.IsUsed = true
			return true, nil
		}
	}
	return false, nil
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

// actions devuelve las acciones registradas en orden.
func (f *fakeAuditRepo) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]bool)}
}

func (f *fakeBlacklist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[jti], nil
}

// fakeTOTP acepta un único código válido por secreto.
type fakeTOTP struct {
	validCode string
}

func (f *fakeTOTP) GenerateSecret(accountName string) (string, string, error) {
	return "SECRET-" + accountName, "otpauth://totp/test:" + accountName, nil
}

func (f *fakeTOTP) Verify(secret, code string, _ time.Time) bool {
	return secret != "" && code == f.validCode
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []string // destinos
	body []string // mensajes
}

func (f *fakeSMS) Send(_ context.Context, phoneNumber, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, phoneNumber)
	f.body = append(f.body, message)
	return nil
}
