package partner

import "errors"

var (
	ErrInvalidPartnerID  = errors.New("partner id cannot be null or empty")
	ErrPartnerExists     = errors.New("partner already exists")
	ErrPartnerNotFound   = errors.New("partner not found")
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrNoDeliveries      = errors.New("partner has no deliveries with a valid time")
)
