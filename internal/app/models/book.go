package models

import "time"

// BookCondition describes the wear level of a second-hand book
type BookCondition string

const (
	BookConditionNew      BookCondition = "NEW"
	BookConditionLikeNew  BookCondition = "LIKE_NEW"
	BookConditionGood     BookCondition = "GOOD"
	BookConditionFair     BookCondition = "FAIR"
)

// Book is a marketplace listing for a study book
type Book struct {
	ID          int64         `json:"id"`
	SellerID    int64         `json:"sellerId"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Subject     string        `json:"subject"`
	Condition   BookCondition `json:"condition"`
	PriceRupees int           `json:"priceRupees"`
	MRPRupees   int           `json:"mrpRupees,omitempty"`
	Description string        `json:"description,omitempty"`
	Image       string        `json:"image,omitempty"`
	City        string        `json:"city,omitempty"`
	Sold        bool          `json:"sold"`
	CreatedAt   time.Time     `json:"createdAt"`
}
