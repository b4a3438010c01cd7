package model

import "time"

type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
