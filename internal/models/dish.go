package models

type Dish struct {
	ID          int     `json:"id"`
	MenuID      int     `json:"menu_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Img         *string `json:"img,omitempty"`
}

type DishUpdate struct {
	MenuID      *int     `json:"menu_id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Img         *string  `json:"img"`
}
