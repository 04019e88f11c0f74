package service

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	ErrInvalidToken = errors.New("invalid authentication token")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidSeedData = errors.New("invalid seed data")
)
