package dto

import "github.com/savorly/mealplan-backend/internal/models"

type CreatePreferenceRequest struct {
	UserID string `json:"userId"`
}

// UpdatePreferenceRequest replaces list fields wholesale; nil means
// "leave unchanged".
type UpdatePreferenceRequest struct {
	ID          string    `json:"id"`
	Diets       *[]string `json:"diets"`
	Allergies   *[]string `json:"allergies"`
	Favorites   *[]string `json:"favorites"`
	Ingredients *[]string `json:"ingredients"`
}

type PreferenceEnvelope struct {
	Preference models.Preference `json:"preference"`
}
