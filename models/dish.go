package models

// Dish is a menu item as returned by the ordering API.
//
// The API serves French field names (nom, tempsDePreparation); they are kept
// as-is on the wire and mapped to English names client-side.
type Dish struct {
	// ID is the dish identifier.
	ID int64 `json:"id"`

	// Name is the display name of the dish.
	Name string `json:"nom"`

	// PreparationTime is how long the kitchen needs for this dish, in seconds.
	PreparationTime int `json:"tempsDePreparation"`
}

// Ingredient is a single ingredient of a dish.
type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"nom"`
}
