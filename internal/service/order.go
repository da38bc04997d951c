package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Anjaratiana11/restaurant-mobile/internal/adapter"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/models"
)

type orderService struct {
	ordering adapter.OrderingAPI

	logger *logger.Logger
}

// NewOrderService wires the ordering adapter into an [OrderService].
func NewOrderService(ordering adapter.OrderingAPI, logger *logger.Logger) OrderService {
	return &orderService{ordering: ordering, logger: logger}
}

func (o *orderService) CurrentOrderID(ctx context.Context, userID int64) (int64, error) {
	orderID, err := o.ordering.CurrentOrderID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("fetch current order of user %d: %w", userID, err)
	}
	if orderID == 0 {
		return 0, ErrNoCurrentOrder
	}

	return orderID, nil
}

func (o *orderService) AddDish(ctx context.Context, orderID, dishID int64, quantity int) (models.Ack, error) {
	if quantity <= 0 {
		return models.Ack{}, ErrInvalidQuantity
	}

	ack, err := o.ordering.AddDishToOrder(ctx, orderID, dishID, quantity)
	if err != nil {
		return models.Ack{}, fmt.Errorf("add dish %d to order %d: %w", dishID, orderID, err)
	}

	o.logger.Info().Int64("order", orderID).Int64("dish", dishID).Int("quantity", quantity).Msg("dish added to order")
	return ack, nil
}

func (o *orderService) OrderView(ctx context.Context, orderID int64) (models.OrderView, error) {
	lines, err := o.ordering.GetOrderLines(ctx, orderID)
	if err != nil {
		return models.OrderView{}, fmt.Errorf("fetch lines of order %d: %w", orderID, err)
	}

	views := make([]models.OrderLineView, len(lines))
	errs := make([]error, len(lines))

	var wg sync.WaitGroup
	for i, line := range lines {
		wg.Add(1)
		go func(i int, line models.OrderLine) {
			defer wg.Done()
			views[i], errs[i] = o.composeLineView(ctx, line)
		}(i, line)
	}
	wg.Wait()

	// all-or-nothing: a single failed line fails the whole view
	if err := errors.Join(errs...); err != nil {
		return models.OrderView{}, fmt.Errorf("compose view of order %d: %w", orderID, err)
	}

	total, err := o.ordering.GetOrderTotal(ctx, orderID)
	if err != nil {
		return models.OrderView{}, fmt.Errorf("fetch total of order %d: %w", orderID, err)
	}

	return models.OrderView{OrderID: orderID, Lines: views, Total: total}, nil
}

func (o *orderService) composeLineView(ctx context.Context, line models.OrderLine) (models.OrderLineView, error) {
	dish, err := o.ordering.GetDish(ctx, line.DishID)
	if err != nil {
		return models.OrderLineView{}, fmt.Errorf("fetch dish %d of line %d: %w", line.DishID, line.ID, err)
	}

	price, err := o.ordering.GetDishPrice(ctx, line.DishID)
	if err != nil {
		return models.OrderLineView{}, fmt.Errorf("fetch price of dish %d of line %d: %w", line.DishID, line.ID, err)
	}

	return models.OrderLineView{Line: line, Dish: dish, Price: price}, nil
}

func (o *orderService) Pay(ctx context.Context, orderID int64) (models.Ack, error) {
	ack, err := o.ordering.ValidateOrder(ctx, orderID)
	if err != nil {
		return models.Ack{}, fmt.Errorf("validate order %d: %w", orderID, err)
	}

	if ack.Status != 0 {
		o.logger.Warn().Int64("order", orderID).Int("status", ack.Status).Str("message", ack.Message).Msg("payment refused")
		return ack, fmt.Errorf("%w: %s", ErrPaymentRefused, ack.Message)
	}

	o.logger.Info().Int64("order", orderID).Msg("order paid")
	return ack, nil
}

func (o *orderService) RemoveLine(ctx context.Context, lineID int64) (models.Ack, error) {
	ack, err := o.ordering.DeleteOrderLine(ctx, lineID)
	if err != nil {
		return models.Ack{}, fmt.Errorf("delete order line %d: %w", lineID, err)
	}

	o.logger.Info().Int64("line", lineID).Msg("order line deleted")
	return ack, nil
}
