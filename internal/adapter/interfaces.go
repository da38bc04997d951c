package adapter

import (
	"context"

	"github.com/Anjaratiana11/restaurant-mobile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider defines communication with the third-party identity API
// used for account creation and sign-in. Implementations are responsible for
// serialisation, the API-key query parameter, and mapping provider error
// envelopes to [ErrIdentityRejected].
type IdentityProvider interface {
	// SignUp creates an account with the provider and returns the full
	// provider payload, including the issued idToken. Returns a wrapped
	// [ErrIdentityRejected] carrying the provider's structured error message
	// when the provider refuses, or a wrapped [ErrUpstream] on transport
	// failure.
	SignUp(ctx context.Context, email, password string) (models.SignUpResponse, error)

	// SignIn authenticates existing credentials. Same contract as SignUp,
	// against the sign-in endpoint.
	SignIn(ctx context.Context, email, password string) (models.SignUpResponse, error)
}

// OrderingAPI defines typed, validated access to the restaurant ordering REST
// API. Every operation performs exactly one network round trip and validates
// the response shape before returning; a structural mismatch is reported as a
// domain error ([ErrBadShape], [ErrNotFound]) rather than a raw decoding
// error. No operation retries, caches, or returns partial data.
type OrderingAPI interface {
	// ListDishes fetches the full menu. Every element of the response must
	// carry id, name and preparation time; one missing field fails the whole
	// call with [ErrBadShape].
	ListDishes(ctx context.Context) ([]models.Dish, error)

	// GetDish fetches one dish by id. The endpoint returns a one-element
	// list; an empty list or a first element without id/name yields
	// [ErrNotFound].
	GetDish(ctx context.Context, dishID int64) (models.Dish, error)

	// ListDishIngredientIDs fetches the ingredient ids of a dish. A response
	// that is not a JSON array yields [ErrBadShape].
	ListDishIngredientIDs(ctx context.Context, dishID int64) ([]int64, error)

	// GetIngredient fetches one ingredient by id. The endpoint returns a
	// one-element list whose first element must carry a name; otherwise
	// [ErrNotFound].
	GetIngredient(ctx context.Context, ingredientID int64) (models.Ingredient, error)

	// CurrentOrderID returns the id of the user's open order, or 0 when the
	// user has none.
	CurrentOrderID(ctx context.Context, userID int64) (int64, error)

	// AddDishToOrder creates an order line for the given dish and quantity.
	// Quantity validation is the caller's concern at this layer.
	AddDishToOrder(ctx context.Context, orderID, dishID int64, quantity int) (models.Ack, error)

	// GetOrderLines fetches the lines of an order.
	GetOrderLines(ctx context.Context, orderID int64) ([]models.OrderLine, error)

	// ValidateOrder triggers payment validation of an order. A non-2xx
	// status is an error; a body that is not valid JSON is a distinct
	// [ErrBadShape] decode error. An ack with non-zero Status is returned
	// without error: refusal is a business outcome for the caller to judge.
	ValidateOrder(ctx context.Context, orderID int64) (models.Ack, error)

	// DeleteOrderLine removes one order line. A non-OK status fails
	// regardless of body content; an empty success body is normalised to
	// the ack {Status:0, Message:"deleted"}.
	DeleteOrderLine(ctx context.Context, lineID int64) (models.Ack, error)

	// GetDishPrice fetches the unit price of a dish.
	GetDishPrice(ctx context.Context, dishID int64) (float64, error)

	// GetOrderTotal fetches the server-computed total of an order.
	GetOrderTotal(ctx context.Context, orderID int64) (float64, error)
}
