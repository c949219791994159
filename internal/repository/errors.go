package repository

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrPartnerNotFound = errors.New("partner not found")
	ErrOrderExists     = errors.New("order already exists")
	ErrPartnerExists   = errors.New("partner already exists")
)
