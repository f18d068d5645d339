package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/savorly/mealplan-backend/internal/models"
	"github.com/savorly/mealplan-backend/internal/store"
	"gorm.io/datatypes"
)

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", s, err)
	}
	return id
}

// In-memory store fakes. Username matching is case-insensitive to mirror
// the real store.

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Create(username, passwordHash string) (*models.User, error) {
	if _, err := f.FindByUsername(username); err == nil {
		return nil, store.ErrDuplicate
	}
	u := &models.User{ID: uuid.New(), Username: username, Password: passwordHash}
	f.users[u.ID] = u
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Update(user *models.User) (*models.User, error) {
	if existing, err := f.FindByUsername(user.Username); err == nil && existing.ID != user.ID {
		return nil, store.ErrDuplicate
	}
	copied := *user
	f.users[user.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeUserStore) Delete(id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakePreferenceStore struct {
	prefs map[uuid.UUID]*models.Preference // keyed by preference id
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{prefs: make(map[uuid.UUID]*models.Preference)}
}

func (f *fakePreferenceStore) FindByUser(userID uuid.UUID) (*models.Preference, error) {
	for _, p := range f.prefs {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePreferenceStore) FindByID(id uuid.UUID) (*models.Preference, error) {
	p, ok := f.prefs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePreferenceStore) Create(userID uuid.UUID) (*models.Preference, error) {
	if _, err := f.FindByUser(userID); err == nil {
		return nil, store.ErrConflict
	}
	p := &models.Preference{
		ID:          uuid.New(),
		UserID:      userID,
		Diets:       datatypes.NewJSONSlice(store.DefaultDiets),
		Allergies:   datatypes.NewJSONSlice([]string{}),
		Favorites:   datatypes.NewJSONSlice(store.DefaultFavorites),
		Ingredients: datatypes.NewJSONSlice(store.DefaultIngredients),
	}
	f.prefs[p.ID] = p
	copied := *p
	return &copied, nil
}

func (f *fakePreferenceStore) Save(pref *models.Preference) (*models.Preference, error) {
	copied := *pref
	f.prefs[pref.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakePreferenceStore) DeleteByUser(userID uuid.UUID) error {
	for id, p := range f.prefs {
		if p.UserID == userID {
			delete(f.prefs, id)
		}
	}
	return nil
}
