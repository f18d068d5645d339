package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/savorly/mealplan-backend/internal/dto"
	"github.com/savorly/mealplan-backend/internal/models"
	"github.com/savorly/mealplan-backend/internal/store"
	"gorm.io/datatypes"
)

var (
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrPreferenceExists   = errors.New("preference already exists")
	ErrNoDiets            = errors.New("at least one diet is required")
	ErrTooFewFavorites    = errors.New("favorites must have at least 2 items")
	ErrTooFewIngredients  = errors.New("ingredients must have at least 4 items")
)

type PreferenceService struct {
	prefs store.PreferenceStore
}

func NewPreferenceService(prefs store.PreferenceStore) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

func (s *PreferenceService) GetByUser(userID string) (*models.Preference, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrPreferenceNotFound
	}
	pref, err := s.prefs.FindByUser(uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}
	return pref, nil
}

// Create seeds a preference record with default diets, favorites and
// ingredients. Preferences are never created automatically on signup.
func (s *PreferenceService) Create(userID string) (*models.Preference, error) {
	if userID == "" {
		return nil, ErrMissingFields
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrMissingFields
	}

	pref, err := s.prefs.Create(uid)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrPreferenceExists
		}
		return nil, err
	}
	return pref, nil
}

// Update replaces list fields wholesale. Omitted fields keep their
// stored values; any validation failure leaves the record untouched.
func (s *PreferenceService) Update(req dto.UpdatePreferenceRequest) (*models.Preference, error) {
	if req.ID == "" {
		return nil, ErrMissingFields
	}

	if req.Diets != nil && len(*req.Diets) < 1 {
		return nil, ErrNoDiets
	}
	if req.Favorites != nil && len(*req.Favorites) < 2 {
		return nil, ErrTooFewFavorites
	}
	if req.Ingredients != nil && len(*req.Ingredients) < 4 {
		return nil, ErrTooFewIngredients
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, ErrPreferenceNotFound
	}
	pref, err := s.prefs.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}

	if req.Diets != nil {
		pref.Diets = datatypes.NewJSONSlice(*req.Diets)
	}
	if req.Allergies != nil {
		pref.Allergies = datatypes.NewJSONSlice(*req.Allergies)
	}
	if req.Favorites != nil {
		pref.Favorites = datatypes.NewJSONSlice(*req.Favorites)
	}
	if req.Ingredients != nil {
		pref.Ingredients = datatypes.NewJSONSlice(*req.Ingredients)
	}

	return s.prefs.Save(pref)
}
