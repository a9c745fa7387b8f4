package services

import (
	"context"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// WishlistService maintains the per-user wishlist with set semantics:
// repeated adds of the same product are idempotent.
type WishlistService struct {
	wishlists repositories.WishlistRepository
}

func NewWishlistService(wishlists repositories.WishlistRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists}
}

// Get returns the caller's wishlist (empty when never written).
func (s *WishlistService) Get(ctx context.Context) (*models.Wishlist, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.wishlists.Get(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("wishlist get", err)
	}
	return list, nil
}

// AddProduct puts productID on the caller's wishlist and returns the updated
// list.
func (s *WishlistService) AddProduct(ctx context.Context, productID string) (*models.Wishlist, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	pid, err := parseObjectID(productID, "product id")
	if err != nil {
		return nil, err
	}

	if err := s.wishlists.Add(ctx, identity.ID, pid); err != nil {
		return nil, apperr.Storage("wishlist add", err)
	}

	logger.WithCtx(ctx).Info("product added to wishlist",
		"user_id", identity.ID.Hex(), "product_id", pid.Hex())

	list, err := s.wishlists.Get(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("wishlist get", err)
	}
	return list, nil
}

// RemoveProduct strips all occurrences of productID. Removing an absent
// product is a no-op success.
func (s *WishlistService) RemoveProduct(ctx context.Context, productID string) (*models.Wishlist, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	pid, err := parseObjectID(productID, "product id")
	if err != nil {
		return nil, err
	}

	if err := s.wishlists.Remove(ctx, identity.ID, pid); err != nil {
		return nil, apperr.Storage("wishlist remove", err)
	}

	list, err := s.wishlists.Get(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("wishlist get", err)
	}
	return list, nil
}
