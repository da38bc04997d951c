package service

import (
	"context"
	"testing"

	"github.com/Anjaratiana11/restaurant-mobile/internal/adapter"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/mock"
	"github.com/Anjaratiana11/restaurant-mobile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrderSvc(t *testing.T, ctrl *gomock.Controller) (*orderService, *mock.MockOrderingAPI) {
	t.Helper()
	mockOrdering := mock.NewMockOrderingAPI(ctrl)
	svc := NewOrderService(mockOrdering, logger.Nop()).(*orderService)
	return svc, mockOrdering
}

// ── CurrentOrderID ───────────────────────────────────────────────────────────

func TestOrderService_CurrentOrderID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().CurrentOrderID(ctx, int64(1)).Return(int64(42), nil)

	orderID, err := svc.CurrentOrderID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)
}

func TestOrderService_CurrentOrderID_NoOpenOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().CurrentOrderID(ctx, int64(1)).Return(int64(0), nil)

	_, err := svc.CurrentOrderID(ctx, 1)
	assert.ErrorIs(t, err, ErrNoCurrentOrder)
}

func TestOrderService_CurrentOrderID_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().CurrentOrderID(ctx, int64(1)).Return(int64(0), adapter.ErrUpstream)

	_, err := svc.CurrentOrderID(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUpstream)
	assert.NotErrorIs(t, err, ErrNoCurrentOrder)
}

// ── AddDish ──────────────────────────────────────────────────────────────────

func TestOrderService_AddDish_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().AddDishToOrder(ctx, int64(42), int64(7), 3).
		Return(models.Ack{Status: 0, Message: "ok"}, nil)

	ack, err := svc.AddDish(ctx, 42, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, ack.Status)
}

func TestOrderService_AddDish_InvalidQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	// no adapter call expected: the quantity is rejected before the network
	_, err := svc.AddDish(ctx, 42, 7, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddDish(ctx, 42, 7, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestOrderService_AddDish_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().AddDishToOrder(ctx, int64(42), int64(7), 1).
		Return(models.Ack{}, adapter.ErrBadRequest)

	_, err := svc.AddDish(ctx, 42, 7, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

// ── OrderView ────────────────────────────────────────────────────────────────

func TestOrderService_OrderView_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	lines := []models.OrderLine{
		{ID: 10, DishID: 1, Status: models.StatusPending},
		{ID: 11, DishID: 2, Status: models.StatusPending},
	}

	mockOrdering.EXPECT().GetOrderLines(ctx, int64(42)).Return(lines, nil)
	// per-line fetches run concurrently, so no ordering between them
	mockOrdering.EXPECT().GetDish(ctx, int64(1)).Return(models.Dish{ID: 1, Name: "Ravitoto"}, nil)
	mockOrdering.EXPECT().GetDishPrice(ctx, int64(1)).Return(12.5, nil)
	mockOrdering.EXPECT().GetDish(ctx, int64(2)).Return(models.Dish{ID: 2, Name: "Romazava"}, nil)
	mockOrdering.EXPECT().GetDishPrice(ctx, int64(2)).Return(9.0, nil)
	mockOrdering.EXPECT().GetOrderTotal(ctx, int64(42)).Return(21.5, nil)

	view, err := svc.OrderView(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), view.OrderID)
	assert.Equal(t, 21.5, view.Total)
	require.Len(t, view.Lines, 2)

	// view order follows line order regardless of fetch completion order
	assert.Equal(t, int64(10), view.Lines[0].Line.ID)
	assert.Equal(t, "Ravitoto", view.Lines[0].Dish.Name)
	assert.Equal(t, 12.5, view.Lines[0].Price)
	assert.Equal(t, int64(11), view.Lines[1].Line.ID)
	assert.Equal(t, "Romazava", view.Lines[1].Dish.Name)
	assert.Equal(t, 9.0, view.Lines[1].Price)
}

func TestOrderService_OrderView_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().GetOrderLines(ctx, int64(42)).Return([]models.OrderLine{}, nil)
	mockOrdering.EXPECT().GetOrderTotal(ctx, int64(42)).Return(0.0, nil)

	view, err := svc.OrderView(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}

func TestOrderService_OrderView_OneLineFetchFailsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	lines := []models.OrderLine{
		{ID: 10, DishID: 1},
		{ID: 11, DishID: 2},
	}

	mockOrdering.EXPECT().GetOrderLines(ctx, int64(42)).Return(lines, nil)
	mockOrdering.EXPECT().GetDish(ctx, int64(1)).Return(models.Dish{ID: 1, Name: "Ravitoto"}, nil)
	mockOrdering.EXPECT().GetDishPrice(ctx, int64(1)).Return(12.5, nil)
	mockOrdering.EXPECT().GetDish(ctx, int64(2)).Return(models.Dish{}, adapter.ErrNotFound)
	// no price fetch for dish 2, no total fetch: the whole view fails

	_, err := svc.OrderView(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestOrderService_OrderView_TotalFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	lines := []models.OrderLine{{ID: 10, DishID: 1}}

	mockOrdering.EXPECT().GetOrderLines(ctx, int64(42)).Return(lines, nil)
	mockOrdering.EXPECT().GetDish(ctx, int64(1)).Return(models.Dish{ID: 1, Name: "Ravitoto"}, nil)
	mockOrdering.EXPECT().GetDishPrice(ctx, int64(1)).Return(12.5, nil)
	mockOrdering.EXPECT().GetOrderTotal(ctx, int64(42)).Return(0.0, adapter.ErrInternalServerError)

	_, err := svc.OrderView(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestOrderService_OrderView_LinesFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().GetOrderLines(ctx, int64(42)).Return(nil, adapter.ErrUpstream)

	_, err := svc.OrderView(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUpstream)
}

// ── Pay ──────────────────────────────────────────────────────────────────────

func TestOrderService_Pay_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().ValidateOrder(ctx, int64(42)).
		Return(models.Ack{Status: 0, Message: "commande validée"}, nil)

	ack, err := svc.Pay(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, ack.Status)
}

func TestOrderService_Pay_Refused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().ValidateOrder(ctx, int64(42)).
		Return(models.Ack{Status: 1, Message: "solde insuffisant"}, nil)

	ack, err := svc.Pay(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentRefused)
	assert.Contains(t, err.Error(), "solde insuffisant")
	// the ack is still returned so the screen can show the API message
	assert.Equal(t, 1, ack.Status)
}

func TestOrderService_Pay_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().ValidateOrder(ctx, int64(42)).
		Return(models.Ack{}, adapter.ErrBadShape)

	_, err := svc.Pay(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBadShape)
	assert.NotErrorIs(t, err, ErrPaymentRefused)
}

// ── RemoveLine ───────────────────────────────────────────────────────────────

func TestOrderService_RemoveLine_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().DeleteOrderLine(ctx, int64(10)).
		Return(models.Ack{Status: 0, Message: "deleted"}, nil)

	ack, err := svc.RemoveLine(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "deleted", ack.Message)
}

func TestOrderService_RemoveLine_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().DeleteOrderLine(ctx, int64(10)).
		Return(models.Ack{}, adapter.ErrNotFound)

	_, err := svc.RemoveLine(ctx, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
