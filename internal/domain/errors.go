package domain

import "errors"

// Error taxonomy. Repositories translate storage errors into these so
// callers never see transport-specific failures.
var (
	ErrTrainNotFound   = errors.New("train not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("username or email already exists")
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrDraftNotFound   = errors.New("no pending booking found")

	// ErrInsufficientAvailability is expected and user-recoverable:
	// the caller should re-offer class/seat selection.
	ErrInsufficientAvailability = errors.New("insufficient availability")

	ErrInvalidInput = errors.New("invalid input")
)
