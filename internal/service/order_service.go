package service

import (
	"context"

	"github.com/spec-kit/pizza-store/internal/auth"
	"github.com/spec-kit/pizza-store/internal/domain"
	"github.com/spec-kit/pizza-store/pkg/util"
)

// OrderService holds the declared order and store capability slots.
// The menu exposes them, but their behavior is not specified yet, so
// every operation reports NOT_IMPLEMENTED rather than guessing.
type OrderService struct{}

// NewOrderService builds the service.
func NewOrderService() *OrderService {
	return &OrderService{}
}

func (s *OrderService) PlaceOrder(ctx context.Context, sess *auth.Session) error {
	return util.NewNotImplemented("order placement")
}

func (s *OrderService) ViewAllOrders(ctx context.Context, sess *auth.Session) error {
	return util.NewNotImplemented("order history")
}

func (s *OrderService) ViewRecentOrders(ctx context.Context, sess *auth.Session) error {
	return util.NewNotImplemented("recent orders")
}

func (s *OrderService) ViewOrderInfo(ctx context.Context, sess *auth.Session, orderID string) error {
	return util.NewNotImplemented("order details")
}

func (s *OrderService) ViewStores(ctx context.Context) error {
	return util.NewNotImplemented("store listing")
}

// UpdateOrderStatus is reachable for drivers and managers only; the
// gate exists even though the behavior behind it does not yet.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, sess *auth.Session) error {
	if sess == nil || (sess.Role != domain.RoleDriver && !sess.Role.IsManager()) {
		return util.NewUnauthorized("drivers and managers only")
	}
	return util.NewNotImplemented("order status updates")
}
