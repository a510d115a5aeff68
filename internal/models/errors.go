package models

import (
	"errors"
)

var (
	ErrNoRecord              = errors.New("models: no matching record found")
	ErrInvalidCredentials    = errors.New("models: invalid credentials")
	ErrDuplicateEmail        = errors.New("models: duplicate email")
	ErrUserNotFound          = errors.New("models: user not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrReplyNotFound         = errors.New("reply not found")
	ErrAlreadyReviewed       = errors.New("user already reviewed this accommodation")
	ErrAlreadyFavorite       = errors.New("accommodation already in favorites")
	ErrNotOwner              = errors.New("accommodation belongs to another user")
	ErrResetCodeMismatch     = errors.New("reset code mismatch or expired")
)
