package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Preference holds a user's dietary settings. The list fields are
// document-shaped and stored as JSONB columns.
type Preference struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Diets       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"diets"`
	Allergies   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"allergies"`
	Favorites   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"favorites"`
	Ingredients datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ingredients"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	User        User                        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
