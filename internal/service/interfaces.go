package service

import (
	"context"

	"github.com/Anjaratiana11/restaurant-mobile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService defines account creation and sign-in against the third-party
// identity provider, plus ownership of the locally persisted session token.
// No other component reads or writes the token.
type AuthService interface {
	// Signup creates an account, persists the issued token under the fixed
	// session key, and returns the full session info. Returns a wrapped
	// adapter error when the provider refuses or the network fails.
	Signup(ctx context.Context, email, password string) (models.Session, error)

	// Login authenticates existing credentials; same persistence contract
	// as Signup.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Token returns the persisted session token. An absent session is not
	// an error: the empty string with a nil error means "not logged in".
	Token(ctx context.Context) (string, error)

	// Logout deletes the persisted token. Idempotent: logging out with no
	// session stored succeeds.
	Logout(ctx context.Context) error
}

// MenuService provides validated read access to the menu: dishes,
// ingredients and prices. Every result is a fresh snapshot; nothing is
// cached.
type MenuService interface {
	// Dishes returns the full menu.
	Dishes(ctx context.Context) ([]models.Dish, error)

	// Dish returns one dish by id.
	Dish(ctx context.Context, dishID int64) (models.Dish, error)

	// Ingredients resolves the full ingredient list of a dish: the id list
	// first, then one fetch per id. All-or-nothing: a single failed
	// ingredient fetch fails the whole call.
	Ingredients(ctx context.Context, dishID int64) ([]models.Ingredient, error)

	// DishPrice returns the unit price of a dish.
	DishPrice(ctx context.Context, dishID int64) (float64, error)
}

// OrderService manages the user's current order: line creation and removal,
// composed order views, and payment validation.
type OrderService interface {
	// CurrentOrderID resolves the user's open order. Returns
	// [ErrNoCurrentOrder] when the user has none.
	CurrentOrderID(ctx context.Context, userID int64) (int64, error)

	// AddDish creates an order line. The quantity invariant (> 0) is
	// enforced here, before any network call, with [ErrInvalidQuantity].
	AddDish(ctx context.Context, orderID, dishID int64, quantity int) (models.Ack, error)

	// OrderView composes the full order screen data: the raw lines, each
	// joined with its dish and unit price (fetched concurrently,
	// all-or-nothing), and the server-computed total. A failure of any
	// single fetch fails the whole view; no partial view is returned.
	OrderView(ctx context.Context, orderID int64) (models.OrderView, error)

	// Pay validates (pays) the order. An ack with non-zero Status is
	// surfaced as [ErrPaymentRefused] carrying the ack message.
	Pay(ctx context.Context, orderID int64) (models.Ack, error)

	// RemoveLine deletes one order line.
	RemoveLine(ctx context.Context, lineID int64) (models.Ack, error)
}
