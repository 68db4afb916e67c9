package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrConsumableNotFound  = errors.New("consumable not found")
	ErrPurchasableNotFound = errors.New("purchasable not found")
	ErrAdminNotFound       = errors.New("admin user not found")
	ErrCMSUserNotFound     = errors.New("cms user not found")

	ErrDuplicateMobile   = errors.New("mobile number already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already registered")

	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrAlreadyRefunded    = errors.New("event already refunded")

	// ErrLockTimeout means the per-user row lock could not be acquired within
	// the configured bound. The operation is safe to retry.
	ErrLockTimeout = errors.New("balance update lock timeout")
)
