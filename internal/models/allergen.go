package models

type Allergen struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
