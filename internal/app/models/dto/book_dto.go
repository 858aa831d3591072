package dto

// CreateBookRequest lists a book for sale
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Author      string `json:"author" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Condition   string `json:"condition" binding:"required,oneof=NEW LIKE_NEW GOOD FAIR"`
	PriceRupees int    `json:"priceRupees" binding:"required,gt=0"`
	MRPRupees   int    `json:"mrpRupees" binding:"omitempty,gt=0"`
	Description string `json:"description"`
	Image       string `json:"image"`
	City        string `json:"city"`
}

// ListBooksFilter carries the marketplace filter selections
type ListBooksFilter struct {
	Search    string `form:"search"`
	Subject   string `form:"subject"`
	Condition string `form:"condition"`
	// Sort is one of price_asc, price_desc, newest
	Sort string `form:"sort"`
}

// BookResponse is one marketplace listing with its image URL resolved
type BookResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Subject     string `json:"subject"`
	Condition   string `json:"condition"`
	PriceRupees int    `json:"priceRupees"`
	MRPRupees   int    `json:"mrpRupees,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	City        string `json:"city,omitempty"`
	Sold        bool   `json:"sold"`
}
