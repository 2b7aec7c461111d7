package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pizza-store/internal/domain"
	"github.com/spec-kit/pizza-store/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository. Storage failures are
// injected per call site so tests can fail exactly one stage.
type fakeUserRepo struct {
	users       map[string]*domain.User
	lookupErr   error
	updateErr   error
	updateCalls int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		copied := *u
		repo.users[u.Login] = &copied
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.lookupErr != nil {
		return f.lookupErr
	}
	copied := *user
	f.users[user.Login] = &copied
	return nil
}

func (f *fakeUserRepo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	user, ok := f.users[login]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ExistsByCredentials(ctx context.Context, login, password string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	user, ok := f.users[login]
	return ok && user.Password == password, nil
}

func (f *fakeUserRepo) UpdateField(ctx context.Context, login string, field domain.UserField, value string) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	user, ok := f.users[login]
	if !ok {
		return pgx.ErrNoRows
	}
	switch field {
	case domain.FieldPhoneNum:
		user.PhoneNum = value
	case domain.FieldPassword:
		user.Password = value
	case domain.FieldFavoriteItems:
		user.FavoriteItems = &value
	case domain.FieldRole:
		user.Role = domain.ParseRole(value)
	case domain.FieldLogin:
		delete(f.users, login)
		user.Login = value
		f.users[value] = user
	}
	return nil
}

// fakeItemRepo is an in-memory ItemRepository recording the last
// filter it received.
type fakeItemRepo struct {
	items      []domain.Item
	err        error
	calls      int
	lastFilter repository.ItemFilter
}

func (f *fakeItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// fakeCache is a map-backed CatalogCache.
type fakeCache struct {
	entries map[string][]domain.Item
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]domain.Item)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]domain.Item, bool) {
	items, ok := f.entries[key]
	return items, ok
}

func (f *fakeCache) Set(ctx context.Context, key string, items []domain.Item) {
	f.sets++
	f.entries[key] = items
}
