package models

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
