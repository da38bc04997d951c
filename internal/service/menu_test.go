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

func newTestMenuSvc(t *testing.T, ctrl *gomock.Controller) (*menuService, *mock.MockOrderingAPI) {
	t.Helper()
	mockOrdering := mock.NewMockOrderingAPI(ctrl)
	svc := NewMenuService(mockOrdering, logger.Nop()).(*menuService)
	return svc, mockOrdering
}

func TestMenuService_Dishes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	menu := []models.Dish{
		{ID: 1, Name: "Ravitoto", PreparationTime: 30},
		{ID: 2, Name: "Romazava", PreparationTime: 25},
	}
	mockOrdering.EXPECT().ListDishes(ctx).Return(menu, nil)

	got, err := svc.Dishes(ctx)
	require.NoError(t, err)
	assert.Equal(t, menu, got)
}

func TestMenuService_Dishes_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().ListDishes(ctx).Return(nil, adapter.ErrUpstream)

	_, err := svc.Dishes(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUpstream)
}

func TestMenuService_Dish_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().GetDish(ctx, int64(7)).Return(models.Dish{ID: 7, Name: "Mofo gasy"}, nil)

	dish, err := svc.Dish(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Mofo gasy", dish.Name)
}

func TestMenuService_Dish_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().GetDish(ctx, int64(999)).Return(models.Dish{}, adapter.ErrNotFound)

	_, err := svc.Dish(ctx, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestMenuService_Ingredients_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockOrdering.EXPECT().ListDishIngredientIDs(ctx, int64(7)).Return([]int64{3, 5}, nil),
		mockOrdering.EXPECT().GetIngredient(ctx, int64(3)).Return(models.Ingredient{ID: 3, Name: "Riz"}, nil),
		mockOrdering.EXPECT().GetIngredient(ctx, int64(5)).Return(models.Ingredient{ID: 5, Name: "Zébu"}, nil),
	)

	ingredients, err := svc.Ingredients(ctx, 7)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Riz", ingredients[0].Name)
	assert.Equal(t, "Zébu", ingredients[1].Name)
}

func TestMenuService_Ingredients_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().ListDishIngredientIDs(ctx, int64(7)).Return([]int64{}, nil)

	ingredients, err := svc.Ingredients(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, ingredients)
}

func TestMenuService_Ingredients_OneFetchFailsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockOrdering.EXPECT().ListDishIngredientIDs(ctx, int64(7)).Return([]int64{3, 5}, nil),
		mockOrdering.EXPECT().GetIngredient(ctx, int64(3)).Return(models.Ingredient{}, adapter.ErrNotFound),
		// no call for ingredient 5: the first failure aborts the whole list
	)

	_, err := svc.Ingredients(ctx, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestMenuService_DishPrice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().GetDishPrice(ctx, int64(7)).Return(12.5, nil)

	price, err := svc.DishPrice(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 12.5, price)
}

func TestMenuService_DishPrice_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrdering := newTestMenuSvc(t, ctrl)
	ctx := context.Background()

	mockOrdering.EXPECT().GetDishPrice(ctx, int64(7)).Return(0.0, adapter.ErrUpstream)

	_, err := svc.DishPrice(ctx, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUpstream)
}
