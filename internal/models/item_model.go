package models

import (
	"encoding/json"
	"time"
)

// Item is the recipe or product being turned into content. The two kinds
// share one schema: Features holds ingredients for recipes and product
// features otherwise, Steps holds instructions or usage.
type Item struct {
	ID          int64     `db:"id" json:"id"`
	ProjectID   int64     `db:"project_id" json:"project_id"`
	Kind        string    `db:"kind" json:"kind"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Features    string    `db:"features" json:"features"`
	Steps       string    `db:"steps" json:"steps"`
	Story       string    `db:"story" json:"story"`
	Images      string    `db:"images" json:"images"`
	Source      string    `db:"source" json:"source"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

const (
	ItemKindRecipe  = "RECIPE"
	ItemKindProduct = "PRODUCT"
)

func (i *Item) FeatureList() []string {
	return decodeStringList(i.Features)
}

func (i *Item) StepList() []string {
	return decodeStringList(i.Steps)
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
