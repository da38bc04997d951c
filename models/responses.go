package models

// Ack is the acknowledgement payload returned by the order mutation endpoints
// (PUT /paiement/{id}/valider, DELETE /detailsCommande/{id}). Status 0 means
// success; any other value is a business-level refusal explained by Message.
type Ack struct {
	Status  int    `json:"statut"`
	Message string `json:"message"`
}

// DishPriceResponse is the envelope of GET /plat/{id}/prix.
type DishPriceResponse struct {
	Amount float64 `json:"montant"`
}

// OrderTotalResponse is the envelope of GET /commande/{id}/total.
type OrderTotalResponse struct {
	Total float64 `json:"total"`
}

// CurrentOrderResponse is the envelope of GET /utilisateur/{id}/commandeActu.
// OrderID 0 means the user has no open order.
type CurrentOrderResponse struct {
	OrderID int64 `json:"idCommande"`
}

// AddDishRequest is the JSON body of POST /detailsCommande/multi.
type AddDishRequest struct {
	OrderID  int64 `json:"idCommande"`
	DishID   int64 `json:"idPlat"`
	Quantity int   `json:"quantite"`
}
