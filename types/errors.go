package types

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Handlers map these to HTTP status codes; the texts that reach clients
// live in the handlers, not here.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both unknown username and wrong password
	// so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession indicates the request carried no refresh token at all.
	ErrNoSession = errors.New("no session")

	// ErrSessionRevoked indicates the presented refresh token is not the one
	// currently stored on any account.
	ErrSessionRevoked = errors.New("session revoked")

	// ErrSessionExpired indicates the stored refresh token failed signature
	// or expiry checks.
	ErrSessionExpired = errors.New("session expired")

	// ErrTokenExpired and ErrTokenInvalid are the verification outcomes of a
	// single token, independent of any stored state.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// ErrForbidden indicates an authorization rule rejected the action.
	ErrForbidden = errors.New("forbidden")

	// ErrNotEmployee indicates a staff operation targeted a regular user.
	ErrNotEmployee = errors.New("target is not an employee")

	// ErrAlreadyEmployee indicates a promotion targeted an existing employee.
	ErrAlreadyEmployee = errors.New("target is already an employee")

	// ErrNotVerified gates password changes on unverified accounts.
	ErrNotVerified = errors.New("account not verified")

	// ErrDeletionFailed indicates the account deletion cascade was rolled
	// back; the caller may retry.
	ErrDeletionFailed = errors.New("deletion failed")
)
