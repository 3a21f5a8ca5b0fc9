package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrOutOfStock = errors.New("insufficient stock")

// Product is read-only from the storefront core's perspective; the catalog is
// maintained out of band. CountInStock is the only field business logic
// depends on (the add-to-cart stock guard).
type Product struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	Name         string  `json:"name" bson:"name"`
	Price        float64 `json:"price" bson:"price"`
	Image        string  `json:"image" bson:"image"`
	Description  string  `json:"description" bson:"description"`
	Slug         string  `json:"slug" bson:"slug"`
	Brand        string  `json:"brand" bson:"brand"`
	Category     string  `json:"category" bson:"category"`
	Rating       float64 `json:"rating" bson:"rating"`
	NumReviews   int     `json:"num_reviews" bson:"num_reviews"`
	CountInStock int     `json:"count_in_stock" bson:"count_in_stock"`
}
