package order

import "errors"

var (
	ErrInvalidOrderID   = errors.New("order id cannot be null or empty")
	ErrInvalidPartnerID = errors.New("partner id cannot be null or empty")

	ErrOrderExists     = errors.New("order already exists")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPartnerNotFound = errors.New("partner not found")
)
