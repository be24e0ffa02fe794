package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrForumPostNotFound   = errors.New("forum post not found")
	ErrPlaceNotFound       = errors.New("place not found")
	ErrNotOwner            = errors.New("resource belongs to another account")
	ErrWeatherUnavailable  = errors.New("weather service unavailable")
	ErrPlaceNotIndexed     = errors.New("place not indexed for similarity yet")
)
