package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyRegistered is returned when registration collides with an
	// existing email, compared case-insensitively.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidRole is returned when registration names a role other than
	// owner or customer.
	ErrInvalidRole = errors.New("invalid role")

	// ErrDatesRequired is returned when a booking request is missing its start
	// or end date.
	ErrDatesRequired = errors.New("start and end dates are required")

	ErrBillboardNotFound = errors.New("billboard not found")
	ErrBookingNotFound   = errors.New("booking not found")

	// ErrBillboardBooked is returned when a customer tries to book a billboard
	// whose status is not available.
	ErrBillboardBooked = errors.New("billboard is already booked")

	ErrForbidden = errors.New("access forbidden")

	// ErrNoDocument is returned by storage backends when nothing has been
	// persisted under the storage key yet.
	ErrNoDocument = errors.New("no document stored")
)
