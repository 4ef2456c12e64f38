package domain

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientData = errors.New("insufficient data")
	ErrDeserialization  = errors.New("corrupt persisted state")
	ErrUnauthorized     = errors.New("unauthorized")
)
