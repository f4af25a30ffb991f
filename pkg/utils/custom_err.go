package utils

import "errors"

var (
	ErrInvalidCredentials      = errors.New("username/password invalid")
	ErrDuplicateAccount        = errors.New("more than one account exists with provided credentials")
	ErrUnknownAccountType      = errors.New("unknown account type returned from server")
	ErrUnknownSubscriptionType = errors.New("unknown subscription type returned from server")
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrProfileNotFound         = errors.New("account has no role profile")
	ErrInvalidRequest          = errors.New("invalid request format")
)
