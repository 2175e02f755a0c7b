package models

// Ingredient is a catalog entry, keyed by its unique name.
type Ingredient struct {
	Name  string
	Price float64
}
