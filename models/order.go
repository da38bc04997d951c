package models

// Order line statuses as used by the ordering API. A line is created in
// StatusPending; paying the order or removing the line are both terminal.
const (
	StatusPending   = 0
	StatusValidated = 1
)

// OrderLine is one dish-quantity entry inside an order, as returned by
// GET /commande/{id}/detailsCommande.
type OrderLine struct {
	// ID is the line identifier, used for deletion.
	ID int64 `json:"id"`

	// DishID references the dish this line was created from.
	DishID int64 `json:"idPlat"`

	// Status is the line state (see Status* constants).
	Status int `json:"statut"`
}

// OrderLineView is an order line joined with the dish it references and the
// dish unit price. The ordering API does not embed dish data in line payloads,
// so the client composes this view from separate fetches.
type OrderLineView struct {
	Line  OrderLine
	Dish  Dish
	Price float64
}

// OrderView is everything the order screen needs: the order id, the composed
// lines and the server-computed total.
type OrderView struct {
	OrderID int64
	Lines   []OrderLineView
	Total   float64
}
