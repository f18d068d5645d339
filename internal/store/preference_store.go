package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/savorly/mealplan-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Defaults seeded when a preference is created.
var (
	DefaultDiets       = []string{"balanced"}
	DefaultFavorites   = []string{"pasta", "sandwich"}
	DefaultIngredients = []string{"egg", "salt", "pepper", "milk"}
)

// PreferenceStore handles persistence for per-user preference documents.
// A user has at most one preference record.
type PreferenceStore interface {
	FindByUser(userID uuid.UUID) (*models.Preference, error)
	FindByID(id uuid.UUID) (*models.Preference, error)
	Create(userID uuid.UUID) (*models.Preference, error)
	Save(pref *models.Preference) (*models.Preference, error)
	DeleteByUser(userID uuid.UUID) error
}

type GormPreferenceStore struct {
	db *gorm.DB
}

func NewPreferenceStore(db *gorm.DB) *GormPreferenceStore {
	return &GormPreferenceStore{db: db}
}

func (s *GormPreferenceStore) FindByUser(userID uuid.UUID) (*models.Preference, error) {
	var pref models.Preference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up preference by user: %w", err)
	}
	return &pref, nil
}

func (s *GormPreferenceStore) FindByID(id uuid.UUID) (*models.Preference, error) {
	var pref models.Preference
	err := s.db.First(&pref, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up preference by id: %w", err)
	}
	return &pref, nil
}

func (s *GormPreferenceStore) Create(userID uuid.UUID) (*models.Preference, error) {
	if _, err := s.FindByUser(userID); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	pref := models.Preference{
		ID:          uuid.New(),
		UserID:      userID,
		Diets:       datatypes.NewJSONSlice(DefaultDiets),
		Allergies:   datatypes.NewJSONSlice([]string{}),
		Favorites:   datatypes.NewJSONSlice(DefaultFavorites),
		Ingredients: datatypes.NewJSONSlice(DefaultIngredients),
	}
	if err := s.db.Create(&pref).Error; err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}
	return &pref, nil
}

func (s *GormPreferenceStore) Save(pref *models.Preference) (*models.Preference, error) {
	if err := s.db.Save(pref).Error; err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}
	return pref, nil
}

// DeleteByUser removes a user's preference record. Deleting a user with
// no preference is not an error.
func (s *GormPreferenceStore) DeleteByUser(userID uuid.UUID) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.Preference{}).Error; err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return nil
}
