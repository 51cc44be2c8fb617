package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Recipe source values
const (
	SourceGenerated = "generated"
	SourceUserAdded = "user-added"
)

// DefaultCategory is applied when a recipe is saved without a valid category
const DefaultCategory = "main-entrees"

// Categories is the fixed set of recipe categories
var Categories = map[string]string{
	"appetizers":   "Appetizers",
	"main-entrees": "Main Entrees",
	"side-dishes":  "Side Dishes",
	"soups-salads": "Soups & Salads",
	"desserts":     "Desserts",
	"beverages":    "Beverages",
	"snacks":       "Snacks",
}

// ValidCategory reports whether name is one of the fixed categories
func ValidCategory(name string) bool {
	_, ok := Categories[name]
	return ok
}

// NormalizeCategory returns name if valid, otherwise the default category
func NormalizeCategory(name string) string {
	if ValidCategory(name) {
		return name
	}
	return DefaultCategory
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// SavedRecipe is a persisted recipe row owned by exactly one user. Rows are
// created and deleted but never updated in place.
type SavedRecipe struct {
	ID                uint             `gorm:"primarykey" json:"id"`
	UserID            uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RecipeName        string           `gorm:"size:255;not null" json:"recipe_name"`
	RecipeDescription string           `gorm:"type:text;not null" json:"recipe_description"`
	CookTime          string           `gorm:"size:100;not null" json:"cook_time"`
	Ingredients       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Category          string           `gorm:"size:50;not null;default:'main-entrees'" json:"category"`
	Source            string           `gorm:"size:20;not null;default:'generated'" json:"source"`
	CreatedAt         time.Time        `json:"created_at"`
}
