// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the actor lacks the required capability or role.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidArgument indicates malformed input (capability, audience, field values).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict indicates a unique constraint violation that cannot be upserted.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized indicates failed authentication (no or invalid principal).
	ErrUnauthorized = errors.New("unauthorized")
)

// Refinements of ErrInvalidArgument; errors.Is(err, ErrInvalidArgument) holds for both.
var (
	// ErrMissingField indicates a required field was not supplied.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrInvalidArgument)

	// ErrInvalidCapability indicates a capability string outside VIEW/EDIT/DOWNLOAD.
	ErrInvalidCapability = fmt.Errorf("%w: invalid capability", ErrInvalidArgument)
)
