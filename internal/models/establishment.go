package models

type Establishment struct {
	ID                   int      `json:"id"`
	NIT                  string   `json:"nit"`
	Name                 string   `json:"name"`
	Description          *string  `json:"description,omitempty"`
	SustainabilityPoints int      `json:"sustainability_points"`
	Address              *string  `json:"address,omitempty"`
	MeanWaitingTime      *float64 `json:"mean_waiting_time,omitempty"`
	OpeningHour          *string  `json:"opening_hour,omitempty"`
	ClosingHour          *string  `json:"closing_hour,omitempty"`
	PhoneNumber          *string  `json:"phone_number,omitempty"`
	Website              *string  `json:"website,omitempty"`
	Logo                 *string  `json:"logo,omitempty"`
}

type EstablishmentUpdate struct {
	NIT                  *string  `json:"nit"`
	Name                 *string  `json:"name"`
	Description          *string  `json:"description"`
	SustainabilityPoints *int     `json:"sustainability_points"`
	Address              *string  `json:"address"`
	MeanWaitingTime      *float64 `json:"mean_waiting_time"`
	OpeningHour          *string  `json:"opening_hour"`
	ClosingHour          *string  `json:"closing_hour"`
	PhoneNumber          *string  `json:"phone_number"`
	Website              *string  `json:"website"`
	Logo                 *string  `json:"logo"`
}
