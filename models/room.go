package models

// Room describes one bookable room in the inventory.
type Room struct {
	ID          int     `json:"id" bson:"id"`
	Type        string  `json:"type" bson:"type"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	Available   bool    `json:"available" bson:"available"`
}
