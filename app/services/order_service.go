package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// OrderService turns the caller's cart into an order snapshot. Shipment
// booking with the logistics provider is handled outside this backend.
type OrderService struct {
	orders    repositories.OrderRepository
	carts     repositories.CartRepository
	addresses repositories.AddressRepository
	products  repositories.ProductRepository
}

func NewOrderService(
	orders repositories.OrderRepository,
	carts repositories.CartRepository,
	addresses repositories.AddressRepository,
	products repositories.ProductRepository,
) *OrderService {
	return &OrderService{orders: orders, carts: carts, addresses: addresses, products: products}
}

// Create snapshots the caller's cart against one of their addresses, prices
// it from the current catalogue, stores the order and clears the cart.
func (s *OrderService) Create(ctx context.Context, addressID string) (*models.Order, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	aid, err := parseObjectID(addressID, "address id")
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.FindByID(ctx, aid)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Storage("address lookup", err)
	}
	if address.UserID != identity.ID {
		return nil, apperr.NotFound("address", addressID)
	}

	cart, err := s.carts.Get(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("cart get", err)
	}
	if len(cart.Products) == 0 {
		return nil, apperr.InvalidArgument("cart is empty")
	}

	total, err := s.price(ctx, cart.Products)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:    identity.ID,
		AddressID: aid,
		Products:  cart.Products,
		Total:     total,
		Status:    models.OrderStatusPending,
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, apperr.Storage("order insert", err)
	}

	// Clearing the cart after the order write gives at-least-once order
	// semantics; a failed clear leaves the cart intact rather than losing
	// the order.
	if err := s.carts.Clear(ctx, identity.ID); err != nil {
		logger.WithCtx(ctx).Warn("cart clear after order failed",
			"user_id", identity.ID.Hex(), "order_id", order.ID.Hex(), "error", err)
	}

	logger.WithCtx(ctx).Info("order created",
		"user_id", identity.ID.Hex(), "order_id", order.ID.Hex(), "total", total)
	return order, nil
}

// List returns the caller's orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("order list", err)
	}
	return orders, nil
}

func (s *OrderService) price(ctx context.Context, items []models.CartItem) (float64, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return 0, apperr.Storage("order pricing", err)
	}

	priceByID := make(map[primitive.ObjectID]float64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	var total float64
	for _, it := range items {
		price, ok := priceByID[it.ProductID]
		if !ok {
			return 0, apperr.NotFound("product", it.ProductID.Hex())
		}
		total += price * float64(it.Quantity)
	}
	return total, nil
}
