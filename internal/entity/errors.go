package entity

import "errors"

var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// Event errors
	ErrEventNotFound = errors.New("event not found")

	// Registration errors
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrCapacityReached      = errors.New("event capacity reached")
	ErrPaymentRequired      = errors.New("payment required for this event")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden operation")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
