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
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// maxMergeAttempts bounds the increment-else-insert retry loop. Each retry
// means another writer touched the same line item between our two steps;
// more than a couple in a row indicates something badly wrong.
const maxMergeAttempts = 5

// CartService is the cart merge engine. Line items merge by product id:
// adding a product already in the cart increments its quantity in place,
// atomically, so interleaved adds never lose an increment.
type CartService struct {
	carts repositories.CartRepository
}

func NewCartService(carts repositories.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// Get returns the caller's cart (empty when never written).
func (s *CartService) Get(ctx context.Context) (*models.Cart, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("cart get", err)
	}
	return cart, nil
}

// AddProduct merges (productID, quantity) into the caller's cart and returns
// the updated cart. A nil quantity means 1; zero or negative quantities are
// rejected before any write.
func (s *CartService) AddProduct(ctx context.Context, productID string, quantity *int) (*models.Cart, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	pid, err := parseObjectID(productID, "product id")
	if err != nil {
		return nil, err
	}

	qty := 1
	if quantity != nil {
		if *quantity <= 0 {
			return nil, apperr.InvalidArgument("quantity must be a positive integer")
		}
		qty = *quantity
	}

	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		matched, err := s.carts.IncrementItem(ctx, identity.ID, pid, qty)
		if err != nil {
			return nil, apperr.Storage("cart increment", err)
		}
		if matched {
			return s.reload(ctx, identity.ID, pid, qty)
		}

		err = s.carts.InsertItem(ctx, identity.ID, pid, qty)
		if err == nil {
			return s.reload(ctx, identity.ID, pid, qty)
		}
		if !errors.Is(err, repositories.ErrItemExists) {
			return nil, apperr.Storage("cart insert item", err)
		}
		// A concurrent writer created the line item between our increment
		// and insert; go around and increment it instead.
		metrics.CartMergeRetries.Inc()
		logger.WithCtx(ctx).Debug("cart merge retry",
			"user_id", identity.ID.Hex(), "product_id", pid.Hex(), "attempt", attempt+1)
	}

	return nil, apperr.Storage("cart add", errors.New("merge retries exhausted"))
}

// RemoveProduct strips any line item for productID. Removing a product that
// is not in the cart is a no-op success, not an error.
func (s *CartService) RemoveProduct(ctx context.Context, productID string) (*models.Cart, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	pid, err := parseObjectID(productID, "product id")
	if err != nil {
		return nil, err
	}

	if err := s.carts.RemoveItem(ctx, identity.ID, pid); err != nil {
		return nil, apperr.Storage("cart remove item", err)
	}

	cart, err := s.carts.Get(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("cart get", err)
	}
	return cart, nil
}

func (s *CartService) reload(ctx context.Context, userID, productID primitive.ObjectID, qty int) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, apperr.Storage("cart get", err)
	}
	logger.WithCtx(ctx).Info("product added to cart",
		"user_id", userID.Hex(), "product_id", productID.Hex(), "quantity", qty)
	return cart, nil
}
