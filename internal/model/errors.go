package model

import "errors"

var (
	// Auth related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserNotFound       = errors.New("user not found")

	// Record related errors
	ErrDestinationNotFound = errors.New("destination not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
