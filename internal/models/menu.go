package models

type Menu struct {
	ID              int    `json:"id"`
	EstablishmentID int    `json:"establishment_id"`
	Title           string `json:"title"`
}
