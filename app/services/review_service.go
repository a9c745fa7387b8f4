package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// ReviewInput is the mutation request for adding or replacing a review.
// Score and review text pass through unvalidated; range checks belong to the
// schema layer in front of this service.
type ReviewInput struct {
	ProductID string  `json:"product_id"`
	Review    string  `json:"review"`
	Score     float64 `json:"score"`
}

// ReviewService keeps at most one review per (user, product) pair: a second
// submission overwrites the first in place.
type ReviewService struct {
	reviews  repositories.ReviewRepository
	products repositories.ProductRepository
}

func NewReviewService(reviews repositories.ReviewRepository, products repositories.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// AddProductReview creates or overwrites the caller's review of a product
// and returns the resulting document.
func (s *ReviewService) AddProductReview(ctx context.Context, in ReviewInput) (*models.Review, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	pid, err := parseObjectID(in.ProductID, "product id")
	if err != nil {
		return nil, err
	}

	// Reject unknown products before writing anything.
	if _, err := s.products.FindByID(ctx, pid); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Storage("product find", err)
	}

	review, err := s.reviews.Upsert(ctx, models.Review{
		UserID:    identity.ID,
		ProductID: pid,
		Review:    in.Review,
		Score:     in.Score,
	})
	if err != nil {
		return nil, apperr.Storage("review upsert", err)
	}

	// Link the review into the product document. $addToSet keeps this
	// idempotent across overwrites; a retry after failure is safe.
	if err := s.products.AppendReview(ctx, pid, review.ID); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("review saved",
		"user_id", identity.ID.Hex(), "product_id", pid.Hex(), "score", in.Score)
	return review, nil
}

// ListByProduct returns all reviews for a product. Public.
func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	pid, err := parseObjectID(productID, "product id")
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByProduct(ctx, pid)
	if err != nil {
		return nil, apperr.Storage("review list", err)
	}
	return reviews, nil
}
