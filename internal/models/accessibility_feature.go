package models

type AccessibilityFeature struct {
	ID              int     `json:"id"`
	EstablishmentID int     `json:"establishment_id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
}

type AccessibilityFeatureUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
