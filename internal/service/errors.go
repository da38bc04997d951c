package service

import "errors"

var (
	// ErrEmptyCredentials is returned by Signup/Login before any network
	// call when the email or password is blank.
	ErrEmptyCredentials = errors.New("email and password are required")

	// ErrInvalidQuantity is returned by AddDish for a zero or negative
	// quantity, before any network call.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrNoCurrentOrder is returned by CurrentOrderID when the user has no
	// open order.
	ErrNoCurrentOrder = errors.New("no current order for user")

	// ErrPaymentRefused is returned by Pay when the API acknowledges the
	// request but refuses the payment (ack status other than 0). The
	// wrapped message is the API's own explanation.
	ErrPaymentRefused = errors.New("payment refused")
)
