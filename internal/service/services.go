package service

import (
	"github.com/Anjaratiana11/restaurant-mobile/internal/adapter"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/store"
	"github.com/rs/zerolog"
)

// ClientServices aggregates every service the client works through.
type ClientServices struct {
	AuthService  AuthService
	MenuService  MenuService
	OrderService OrderService
}

func NewClientServices(localStore *store.ClientStorages, identity adapter.IdentityProvider, ordering adapter.OrderingAPI, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewAuthService(localStore, identity, serviceLogger(log, "auth")),
		MenuService:  NewMenuService(ordering, serviceLogger(log, "menu")),
		OrderService: NewOrderService(ordering, serviceLogger(log, "order")),
	}
}

func serviceLogger(log *logger.Logger, name string) *logger.Logger {
	child := log.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("service", name)
	})
	return child
}
