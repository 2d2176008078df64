package shared

import "errors"

var (
	// Configuration errors
	ErrMissingConfig = errors.New("configuration not found")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Session errors
	ErrMissingField     = errors.New("required field missing")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Catalog and cart errors
	ErrMovieNotFound = errors.New("movie not found")
	ErrEmptyCart     = errors.New("cart is empty")

	// Checkout errors
	ErrInvalidContact = errors.New("invalid contact details")
	ErrInvalidPayment = errors.New("invalid payment details")

	// Storage errors
	ErrSlotBackend = errors.New("slot storage failed")

	// Input validation errors
	ErrMissingArgument = errors.New("missing required argument")
	ErrInvalidArgument = errors.New("invalid argument")
)
