package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("incorrect email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInfluencerEmailExists  = errors.New("influencer email already exists")
	ErrInfluencerNotFound     = errors.New("influencer not found")
	ErrFileNotFound           = errors.New("file not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
