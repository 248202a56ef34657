package auth

import "errors"

var (
	ErrMissingSecret = errors.New("token secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)
