package domain

import "errors"

// Domain-specific errors returned by services and repositories.
var (
	// Contact errors
	ErrMessageNotFound = errors.New("message not found")
	ErrAlreadySent     = errors.New("message already delivered")
	ErrInvalidMessage  = errors.New("invalid contact message")
	ErrRateLimited     = errors.New("too many requests")
	ErrDeliveryFailed  = errors.New("message delivery failed")
	ErrMailerDisabled  = errors.New("SMTP credentials not configured")

	// Link errors
	ErrLinkNotFound = errors.New("link not found")

	// Admin errors
	ErrUnauthorized = errors.New("invalid credentials")

	// Content errors
	ErrInvalidContent = errors.New("invalid portfolio content")
)
