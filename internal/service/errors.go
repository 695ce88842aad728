package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrMissingCredentials = errors.New("missing credentials")
	ErrWrongCredentials   = errors.New("wrong credentials")

	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token is expired")
	ErrTokenCreation = errors.New("token creation failed")

	ErrInvalidUUID = errors.New("invalid user uuid")
)
