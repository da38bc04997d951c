package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Anjaratiana11/restaurant-mobile/internal/config"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/utils"
	"github.com/Anjaratiana11/restaurant-mobile/models"
	"github.com/go-resty/resty/v2"
)

type orderingAdapter struct {
	client *utils.HTTPClient

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewOrderingAdapter constructs an HTTP/REST implementation of [OrderingAPI].
// It normalises and validates the base URL from orderingCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if orderingCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewOrderingAdapter(orderingCfg config.ClientOrdering, logger *logger.Logger) (OrderingAPI, error) {
	baseURL, err := normalizeBaseURL(orderingCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ordering base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(orderingCfg.RequestTimeout)

	return &orderingAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// rawDish mirrors the dish payload with pointer fields so that absent keys
// can be told apart from zero values during shape validation.
type rawDish struct {
	ID              *int64  `json:"id"`
	Name            *string `json:"nom"`
	PreparationTime *int    `json:"tempsDePreparation"`
}

type rawIngredient struct {
	ID   *int64  `json:"id"`
	Name *string `json:"nom"`
}

// ListDishes implements [OrderingAPI]. It GETs /plats and checks that every
// element carries id, nom and tempsDePreparation before converting; one
// incomplete element fails the whole call, no partial data is returned.
func (o *orderingAdapter) ListDishes(ctx context.Context) ([]models.Dish, error) {
	resp, err := o.request(ctx).Get("/plats")
	if err != nil {
		return nil, fmt.Errorf("%w: list dishes request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var raw []rawDish
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode dish list: %v", ErrBadShape, err)
	}

	dishes := make([]models.Dish, 0, len(raw))
	for i, r := range raw {
		if r.ID == nil || r.Name == nil || r.PreparationTime == nil {
			o.logger.Debug().Int("index", i).Msg("dish list element missing required fields")
			return nil, fmt.Errorf("%w: dish at index %d is missing required fields", ErrBadShape, i)
		}
		dishes = append(dishes, models.Dish{ID: *r.ID, Name: *r.Name, PreparationTime: *r.PreparationTime})
	}

	return dishes, nil
}

// GetDish implements [OrderingAPI]. GET /plat/{id} answers with a one-element
// list; an empty list or a first element without id/nom yields [ErrNotFound].
func (o *orderingAdapter) GetDish(ctx context.Context, dishID int64) (models.Dish, error) {
	resp, err := o.request(ctx).Get("/plat/" + strconv.FormatInt(dishID, 10))
	if err != nil {
		return models.Dish{}, fmt.Errorf("%w: get dish request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dish{}, err
	}

	var raw []rawDish
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return models.Dish{}, fmt.Errorf("%w: decode dish detail: %v", ErrBadShape, err)
	}
	if len(raw) == 0 || raw[0].ID == nil || raw[0].Name == nil {
		return models.Dish{}, fmt.Errorf("%w: dish %d", ErrNotFound, dishID)
	}

	dish := models.Dish{ID: *raw[0].ID, Name: *raw[0].Name}
	if raw[0].PreparationTime != nil {
		dish.PreparationTime = *raw[0].PreparationTime
	}

	return dish, nil
}

// ListDishIngredientIDs implements [OrderingAPI]. The response of
// GET /plats/{id}/ingredients must decode as a JSON array of ids.
func (o *orderingAdapter) ListDishIngredientIDs(ctx context.Context, dishID int64) ([]int64, error) {
	resp, err := o.request(ctx).Get(fmt.Sprintf("/plats/%d/ingredients", dishID))
	if err != nil {
		return nil, fmt.Errorf("%w: list dish ingredients request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ids []int64
	if err = json.Unmarshal(resp.Body(), &ids); err != nil {
		return nil, fmt.Errorf("%w: decode ingredient id list: %v", ErrBadShape, err)
	}

	return ids, nil
}

// GetIngredient implements [OrderingAPI]. GET /ingredient/{id} answers with a
// one-element list whose first element must carry a name.
func (o *orderingAdapter) GetIngredient(ctx context.Context, ingredientID int64) (models.Ingredient, error) {
	resp, err := o.request(ctx).Get("/ingredient/" + strconv.FormatInt(ingredientID, 10))
	if err != nil {
		return models.Ingredient{}, fmt.Errorf("%w: get ingredient request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Ingredient{}, err
	}

	var raw []rawIngredient
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return models.Ingredient{}, fmt.Errorf("%w: decode ingredient detail: %v", ErrBadShape, err)
	}
	if len(raw) == 0 || raw[0].Name == nil {
		return models.Ingredient{}, fmt.Errorf("%w: ingredient %d", ErrNotFound, ingredientID)
	}

	ingredient := models.Ingredient{Name: *raw[0].Name}
	if raw[0].ID != nil {
		ingredient.ID = *raw[0].ID
	}

	return ingredient, nil
}

// CurrentOrderID implements [OrderingAPI]. It returns the idCommande field of
// GET /utilisateur/{id}/commandeActu, 0 meaning the user has no open order.
func (o *orderingAdapter) CurrentOrderID(ctx context.Context, userID int64) (int64, error) {
	resp, err := o.request(ctx).Get(fmt.Sprintf("/utilisateur/%d/commandeActu", userID))
	if err != nil {
		return 0, fmt.Errorf("%w: current order request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var current models.CurrentOrderResponse
	if err = json.Unmarshal(resp.Body(), &current); err != nil {
		return 0, fmt.Errorf("%w: decode current order response: %v", ErrBadShape, err)
	}

	return current.OrderID, nil
}

// AddDishToOrder implements [OrderingAPI]. It POSTs an order-line creation to
// POST /detailsCommande/multi. Not idempotent: callers must not retry blindly.
func (o *orderingAdapter) AddDishToOrder(ctx context.Context, orderID, dishID int64, quantity int) (models.Ack, error) {
	resp, err := o.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddDishRequest{OrderID: orderID, DishID: dishID, Quantity: quantity}).
		Post("/detailsCommande/multi")
	if err != nil {
		return models.Ack{}, fmt.Errorf("%w: add dish request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Ack{}, err
	}

	return decodeAck(resp.Body(), "added")
}

// GetOrderLines implements [OrderingAPI].
func (o *orderingAdapter) GetOrderLines(ctx context.Context, orderID int64) ([]models.OrderLine, error) {
	resp, err := o.request(ctx).Get(fmt.Sprintf("/commande/%d/detailsCommande", orderID))
	if err != nil {
		return nil, fmt.Errorf("%w: get order lines request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lines []models.OrderLine
	if err = json.Unmarshal(resp.Body(), &lines); err != nil {
		return nil, fmt.Errorf("%w: decode order lines: %v", ErrBadShape, err)
	}

	return lines, nil
}

// ValidateOrder implements [OrderingAPI]. It PUTs /paiement/{id}/valider.
// HTTP failures map through mapHTTPError; a success body that is not valid
// JSON is reported as a decode error distinct from status failures. An ack
// with non-zero Status is NOT an error at this layer.
func (o *orderingAdapter) ValidateOrder(ctx context.Context, orderID int64) (models.Ack, error) {
	resp, err := o.request(ctx).Put(fmt.Sprintf("/paiement/%d/valider", orderID))
	if err != nil {
		return models.Ack{}, fmt.Errorf("%w: validate order request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Ack{}, err
	}

	var ack models.Ack
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return models.Ack{}, fmt.Errorf("%w: decode validate order response: %v", ErrBadShape, err)
	}

	return ack, nil
}

// DeleteOrderLine implements [OrderingAPI]. A non-OK status fails regardless
// of body content. The API answers 204 with an empty body on success, which
// is normalised to the ack {Status:0, Message:"deleted"}.
func (o *orderingAdapter) DeleteOrderLine(ctx context.Context, lineID int64) (models.Ack, error) {
	resp, err := o.request(ctx).Delete("/detailsCommande/" + strconv.FormatInt(lineID, 10))
	if err != nil {
		return models.Ack{}, fmt.Errorf("%w: delete order line request: %v", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Ack{}, err
	}

	return decodeAck(resp.Body(), "deleted")
}

// GetDishPrice implements [OrderingAPI]. It returns the montant field of
// GET /plat/{id}/prix.
func (o *orderingAdapter) GetDishPrice(ctx context.Context, dishID int64) (float64, error) {
	resp, err := o.request(ctx).Get(fmt.Sprintf("/plat/%d/prix", dishID))
	if err != nil {
		return 0, fmt.Errorf("get dish price request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var price models.DishPriceResponse
	if err = json.Unmarshal(resp.Body(), &price); err != nil {
		return 0, fmt.Errorf("%w: decode dish price response: %v", ErrBadShape, err)
	}

	return price.Amount, nil
}

// GetOrderTotal implements [OrderingAPI]. It returns the total field of
// GET /commande/{id}/total.
func (o *orderingAdapter) GetOrderTotal(ctx context.Context, orderID int64) (float64, error) {
	resp, err := o.request(ctx).Get(fmt.Sprintf("/commande/%d/total", orderID))
	if err != nil {
		return 0, fmt.Errorf("get order total request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var total models.OrderTotalResponse
	if err = json.Unmarshal(resp.Body(), &total); err != nil {
		return 0, fmt.Errorf("%w: decode order total response: %v", ErrBadShape, err)
	}

	return total.Total, nil
}

func (o *orderingAdapter) request(ctx context.Context) *resty.Request {
	return o.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", o.ids.Generate())
}

// decodeAck decodes a mutation acknowledgement, synthesizing a default ack
// when the endpoint answered with an empty body.
func decodeAck(body []byte, defaultMessage string) (models.Ack, error) {
	if len(body) == 0 {
		return models.Ack{Status: 0, Message: defaultMessage}, nil
	}

	var ack models.Ack
	if err := json.Unmarshal(body, &ack); err != nil {
		return models.Ack{}, fmt.Errorf("%w: decode ack response: %v", ErrBadShape, err)
	}

	return ack, nil
}
