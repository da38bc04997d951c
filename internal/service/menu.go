package service

import (
	"context"
	"fmt"

	"github.com/Anjaratiana11/restaurant-mobile/internal/adapter"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/models"
)

type menuService struct {
	ordering adapter.OrderingAPI

	logger *logger.Logger
}

// NewMenuService wires the ordering adapter into a [MenuService].
func NewMenuService(ordering adapter.OrderingAPI, logger *logger.Logger) MenuService {
	return &menuService{ordering: ordering, logger: logger}
}

func (m *menuService) Dishes(ctx context.Context) ([]models.Dish, error) {
	dishes, err := m.ordering.ListDishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch dishes: %w", err)
	}

	return dishes, nil
}

func (m *menuService) Dish(ctx context.Context, dishID int64) (models.Dish, error) {
	dish, err := m.ordering.GetDish(ctx, dishID)
	if err != nil {
		return models.Dish{}, fmt.Errorf("fetch dish %d: %w", dishID, err)
	}

	return dish, nil
}

func (m *menuService) Ingredients(ctx context.Context, dishID int64) ([]models.Ingredient, error) {
	ids, err := m.ordering.ListDishIngredientIDs(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("fetch ingredient ids of dish %d: %w", dishID, err)
	}

	ingredients := make([]models.Ingredient, 0, len(ids))
	for _, id := range ids {
		ingredient, err := m.ordering.GetIngredient(ctx, id)
		if err != nil {
			// all-or-nothing: one missing ingredient fails the whole list
			return nil, fmt.Errorf("fetch ingredient %d: %w", id, err)
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, nil
}

func (m *menuService) DishPrice(ctx context.Context, dishID int64) (float64, error) {
	price, err := m.ordering.GetDishPrice(ctx, dishID)
	if err != nil {
		return 0, fmt.Errorf("fetch price of dish %d: %w", dishID, err)
	}

	return price, nil
}
