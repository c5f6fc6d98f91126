package glaze

import "fmt"

// Ingredient is one line of a recipe. Amount is a batch percentage or weight
// as written in the source; no unit conversion is performed.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func (i *Ingredient) UnmarshalJSON(data []byte) error {
	type plain Ingredient
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("ingredient: %w", err)
	}
	*i = Ingredient(p)
	return nil
}

// Recipe is a glaze recipe. It is keyed by an integer id and, unlike the
// other records, carries no cross-references.
type Recipe struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Cone         string       `json:"cone"`
	Atmosphere   string       `json:"atmosphere"`
	Ingredients  []Ingredient `json:"ingredients"`
	Additives    []Ingredient `json:"additives,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	ImageName    string       `json:"image_name"`
	Sourced
}

// UnmarshalJSON decodes a recipe; a missing additives list or instructions
// text decodes as empty rather than failing.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	type plain Recipe
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("recipe: %w", err)
	}
	if p.Additives == nil {
		p.Additives = []Ingredient{}
	}
	*r = Recipe(p)
	return nil
}

func (r Recipe) Key() int      { return r.ID }
func (r Recipe) Label() string { return r.Name }
