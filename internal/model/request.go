package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DestinationInput carries the client-supplied fields for create and update.
// Rating and Price are pointers so a missing field can be told apart from a
// legitimate zero; Featured is optional and defaults to true on create.
type DestinationInput struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Rating      *float64 `json:"rating"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Featured    *bool    `json:"featured"`
}

type TestimonialInput struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Image    string   `json:"image"`
	Rating   *float64 `json:"rating"`
	Comment  string   `json:"comment"`
	Featured *bool    `json:"featured"`
}

// ListQuery is the parsed query string shared by the destination and
// testimonial list endpoints.
type ListQuery struct {
	FeaturedOnly bool
	Search       string
}
