// Package adapter provides the transport layer of the restaurant client.
//
// Two abstractions are exposed: [IdentityProvider], which wraps the
// third-party identity API used for account creation and sign-in, and
// [OrderingAPI], which wraps the restaurant ordering REST API (dishes,
// ingredients, orders, order lines, prices, payment validation). Both are
// backed by HTTP/REST implementations built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// Malformed response bodies are reported as [ErrBadShape] instead of leaking
// raw decoding errors, and never passed upward as partial data.
package adapter
