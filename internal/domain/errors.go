package domain

import "errors"

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidPhone  = errors.New("invalid phone")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidCursor = errors.New("invalid cursor")

	// Contacts
	ErrContactNotFound   = errors.New("contact not found")
	ErrContactEmailTaken = errors.New("contact email taken")
)
