package domain

import "errors"

// ErrProductNotFound indicates that no product with the given id exists in the dataset.
var ErrProductNotFound = errors.New("product not found")

// Dataset validation errors.
var (
	// ErrEmptyProductID indicates a product record without an id.
	ErrEmptyProductID = errors.New("product id cannot be empty")

	// ErrDuplicateProductID indicates two product records share an id.
	ErrDuplicateProductID = errors.New("duplicate product id")

	// ErrNegativePrice indicates a product with a price below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNonFinitePrice indicates a price of NaN or ±Inf, which cannot be totalled or stored.
	ErrNonFinitePrice = errors.New("price must be a finite number")

	// ErrNonFiniteRating indicates a rating of NaN or ±Inf.
	ErrNonFiniteRating = errors.New("rating must be a finite number")

	// ErrNegativeReviews indicates a product with a negative review count.
	ErrNegativeReviews = errors.New("reviews cannot be negative")

	// ErrEmptyCategoryID indicates a category descriptor without an id.
	ErrEmptyCategoryID = errors.New("category id cannot be empty")
)
