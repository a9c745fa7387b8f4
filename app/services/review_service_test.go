package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

type reviewKey struct {
	user    primitive.ObjectID
	product primitive.ObjectID
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[reviewKey]models.Review
	writes  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[reviewKey]models.Review{}}
}

func (f *fakeReviewRepo) Upsert(_ context.Context, r models.Review) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	key := reviewKey{user: r.UserID, product: r.ProductID}
	if existing, ok := f.reviews[key]; ok {
		existing.Review = r.Review
		existing.Score = r.Score
		f.reviews[key] = existing
		return &existing, nil
	}
	r.ID = primitive.NewObjectID()
	f.reviews[key] = r
	return &r, nil
}

func (f *fakeReviewRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		for _, id := range ids {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestReviewUpsertOverwrites(t *testing.T) {
	repo := newFakeReviewRepo()
	pid := primitive.NewObjectID()
	products := &fakeProductRepo{products: []models.Product{{ID: pid}}}
	svc := NewReviewService(repo, products)
	ctx := authedCtx()

	first, err := svc.AddProductReview(ctx, ReviewInput{
		ProductID: pid.Hex(), Review: "runs small", Score: 3,
	})
	require.NoError(t, err)

	second, err := svc.AddProductReview(ctx, ReviewInput{
		ProductID: pid.Hex(), Review: "fine after exchange", Score: 4.5,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "overwrite must keep the same document")
	assert.Equal(t, 4.5, second.Score)
	assert.Equal(t, "fine after exchange", second.Review)

	all, err := svc.ListByProduct(ctx, pid.Hex())
	require.NoError(t, err)
	require.Len(t, all, 1, "at most one review per (user, product)")
	assert.Equal(t, 4.5, all[0].Score)

	require.Len(t, products.products[0].ReviewIDs, 1, "product links the review exactly once")
	assert.Equal(t, first.ID, products.products[0].ReviewIDs[0])
}

func TestReviewsFromDistinctUsersCoexist(t *testing.T) {
	repo := newFakeReviewRepo()
	pid := primitive.NewObjectID()
	products := &fakeProductRepo{products: []models.Product{{ID: pid}}}
	svc := NewReviewService(repo, products)

	_, err := svc.AddProductReview(authedCtx(), ReviewInput{ProductID: pid.Hex(), Score: 2})
	require.NoError(t, err)
	_, err = svc.AddProductReview(authedCtx(), ReviewInput{ProductID: pid.Hex(), Score: 5})
	require.NoError(t, err)

	all, err := svc.ListByProduct(context.Background(), pid.Hex())
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Len(t, products.products[0].ReviewIDs, 2)
}

func TestReviewMalformedProductID(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), &fakeProductRepo{})
	_, err := svc.AddProductReview(authedCtx(), ReviewInput{ProductID: "zzz"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.ListByProduct(context.Background(), "zzz")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestReviewOfUnknownProduct(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, &fakeProductRepo{})

	_, err := svc.AddProductReview(authedCtx(), ReviewInput{
		ProductID: primitive.NewObjectID().Hex(), Score: 5,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Zero(t, repo.writes, "no review document for a missing product")
}

func TestUnauthenticatedReviewWrite(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, &fakeProductRepo{})

	_, err := svc.AddProductReview(context.Background(), ReviewInput{
		ProductID: primitive.NewObjectID().Hex(), Score: 5,
	})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.Zero(t, repo.writes)
}
