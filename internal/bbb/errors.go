package bbb

import "github.com/openconf/meetpool/internal/errors"

const (
	// ErrBackendUnavailable covers transport failures and timeouts; retryable.
	ErrBackendUnavailable errors.Code = "backend unavailable"
	// ErrBackendRejected is an explicit FAILED returncode from the backend; not retryable as-is.
	ErrBackendRejected errors.Code = "backend rejected"
	ErrInvalidPayload  errors.Code = "invalid payload"
	ErrNotFound        errors.Code = "not found"
	ErrAlreadyExisted  errors.Code = "already existed"
)
