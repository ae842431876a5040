package service

import (
	"context"
	"strconv"
	"time"

	"github.com/relutech/asset-management/internal/core/domain"
)

// In-memory fakes for the persistence ports, shared by the service tests.

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) add(a domain.Account) *domain.Account {
	if a.ID == "" {
		r.nextID++
		a.ID = "acc" + strconv.Itoa(r.nextID)
	}
	clone := a
	r.accounts[a.ID] = &clone
	return &clone
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Username == account.Username || existing.Email == account.Email {
			return nil, domain.ErrAccountExists
		}
	}
	return cloneAccount(r.add(*account)), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindDeveloper(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := r.accounts[id]; ok && !a.IsAdmin {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrDeveloperNotFound
}

func (r *stubAccountRepo) ListDevelopers(_ context.Context) ([]domain.Account, error) {
	var out []domain.Account
	for i := 1; i <= r.nextID; i++ {
		if a, ok := r.accounts["acc"+strconv.Itoa(i)]; ok && !a.IsAdmin {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, ok := r.accounts[account.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return cloneAccount(account), nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if a, ok := r.accounts[id]; ok {
		t := at
		a.LastLogin = &t
	}
	return nil
}

func (r *stubAccountRepo) HasSuperuser(_ context.Context) (bool, error) {
	for _, a := range r.accounts {
		if a.IsSuperuser {
			return true, nil
		}
	}
	return false, nil
}

type stubAssetRepo struct {
	assets map[string]*domain.Asset
	nextID int
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: make(map[string]*domain.Asset)}
}

func (r *stubAssetRepo) Create(_ context.Context, asset *domain.Asset) (*domain.Asset, error) {
	r.nextID++
	clone := *asset
	clone.ID = "asset" + strconv.Itoa(r.nextID)
	r.assets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAssetRepo) ListAll(_ context.Context) ([]domain.Asset, error) {
	var out []domain.Asset
	for i := 1; i <= r.nextID; i++ {
		if a, ok := r.assets["asset"+strconv.Itoa(i)]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssetRepo) ListByDeveloper(_ context.Context, developerID string) ([]domain.Asset, error) {
	var out []domain.Asset
	for i := 1; i <= r.nextID; i++ {
		if a, ok := r.assets["asset"+strconv.Itoa(i)]; ok && a.DeveloperID == developerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssetRepo) FindForDeveloper(_ context.Context, developerID, assetID string) (*domain.Asset, error) {
	if a, ok := r.assets[assetID]; ok && a.DeveloperID == developerID {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAssetNotFound
}

func (r *stubAssetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.assets[id]; !ok {
		return domain.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

func (r *stubAssetRepo) DeleteByDeveloper(_ context.Context, developerID string) error {
	for id, a := range r.assets {
		if a.DeveloperID == developerID {
			delete(r.assets, id)
		}
	}
	return nil
}

type stubLicenseRepo struct {
	licenses map[string]*domain.License
	nextID   int
}

func newStubLicenseRepo() *stubLicenseRepo {
	return &stubLicenseRepo{licenses: make(map[string]*domain.License)}
}

func (r *stubLicenseRepo) Create(_ context.Context, license *domain.License) (*domain.License, error) {
	r.nextID++
	clone := *license
	clone.ID = "lic" + strconv.Itoa(r.nextID)
	r.licenses[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLicenseRepo) ListAll(_ context.Context) ([]domain.License, error) {
	var out []domain.License
	for i := 1; i <= r.nextID; i++ {
		if l, ok := r.licenses["lic"+strconv.Itoa(i)]; ok {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLicenseRepo) ListByDeveloper(_ context.Context, developerID string) ([]domain.License, error) {
	var out []domain.License
	for i := 1; i <= r.nextID; i++ {
		if l, ok := r.licenses["lic"+strconv.Itoa(i)]; ok && l.DeveloperID == developerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLicenseRepo) FindForDeveloper(_ context.Context, developerID, licenseID string) (*domain.License, error) {
	if l, ok := r.licenses[licenseID]; ok && l.DeveloperID == developerID {
		clone := *l
		return &clone, nil
	}
	return nil, domain.ErrLicenseNotFound
}

func (r *stubLicenseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.licenses[id]; !ok {
		return domain.ErrLicenseNotFound
	}
	delete(r.licenses, id)
	return nil
}

func (r *stubLicenseRepo) DeleteByDeveloper(_ context.Context, developerID string) error {
	for id, l := range r.licenses {
		if l.DeveloperID == developerID {
			delete(r.licenses, id)
		}
	}
	return nil
}

type stubSessionStore struct {
	sessions map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Save(_ context.Context, jti, accountID string, _ time.Duration) error {
	s.sessions[jti] = accountID
	return nil
}

func (s *stubSessionStore) Exists(_ context.Context, jti string) (bool, error) {
	_, ok := s.sessions[jti]
	return ok, nil
}

func (s *stubSessionStore) Delete(_ context.Context, jti string) error {
	delete(s.sessions, jti)
	return nil
}
