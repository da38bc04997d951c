package adapter

import "errors"

var (
	// ErrUpstream marks transport-level failures (connection refused,
	// timeout, DNS) and unrecognised non-2xx statuses.
	ErrUpstream = errors.New("upstream request failed")
	// ErrBadShape marks responses whose body does not match the shape the
	// client requires (missing fields, non-array where an array is expected,
	// undecodable JSON).
	ErrBadShape = errors.New("malformed response data")
	// ErrNotFound marks an absent entity: a 404 status or an empty/invalid
	// one-element list from a detail endpoint.
	ErrNotFound = errors.New("entity not found")
	// ErrIdentityRejected marks a structured refusal from the identity
	// provider; the wrapped message is the provider's error code
	// (e.g. "EMAIL_EXISTS", "INVALID_PASSWORD").
	ErrIdentityRejected = errors.New("identity provider rejected credentials")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrInternalServerError = errors.New("internal server error")
)
