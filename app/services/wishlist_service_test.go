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

type fakeWishlistRepo struct {
	mu     sync.Mutex
	lists  map[primitive.ObjectID]*models.Wishlist
	writes int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{lists: map[primitive.ObjectID]*models.Wishlist{}}
}

func (f *fakeWishlistRepo) Get(_ context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list, ok := f.lists[userID]
	if !ok {
		return &models.Wishlist{UserID: userID, Products: []primitive.ObjectID{}}, nil
	}
	cp := *list
	cp.Products = append([]primitive.ObjectID(nil), list.Products...)
	return &cp, nil
}

func (f *fakeWishlistRepo) Add(_ context.Context, userID, productID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	list, ok := f.lists[userID]
	if !ok {
		list = &models.Wishlist{ID: primitive.NewObjectID(), UserID: userID}
		f.lists[userID] = list
	}
	if list.Contains(productID) {
		return nil
	}
	list.Products = append(list.Products, productID)
	return nil
}

func (f *fakeWishlistRepo) Remove(_ context.Context, userID, productID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	list, ok := f.lists[userID]
	if !ok {
		return nil
	}
	kept := list.Products[:0]
	for _, id := range list.Products {
		if id != productID {
			kept = append(kept, id)
		}
	}
	list.Products = kept
	return nil
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := NewWishlistService(repo)
	ctx := authedCtx()
	pid := primitive.NewObjectID()

	list, err := svc.AddProduct(ctx, pid.Hex())
	require.NoError(t, err)
	require.Len(t, list.Products, 1)

	list, err = svc.AddProduct(ctx, pid.Hex())
	require.NoError(t, err, "re-adding a wishlisted product is not an error")
	require.Len(t, list.Products, 1, "set semantics: no duplicate entries")
	assert.True(t, list.Contains(pid))
}

func TestWishlistRemoveAbsentIsNoOp(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := NewWishlistService(repo)
	ctx := authedCtx()
	pid := primitive.NewObjectID()

	_, err := svc.AddProduct(ctx, pid.Hex())
	require.NoError(t, err)

	list, err := svc.RemoveProduct(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	require.Len(t, list.Products, 1)

	list, err = svc.RemoveProduct(ctx, pid.Hex())
	require.NoError(t, err)
	assert.Empty(t, list.Products)
}

func TestWishlistMalformedID(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo())
	_, err := svc.AddProduct(authedCtx(), "not-a-hex-id")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestUnauthenticatedWishlistMutations(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := NewWishlistService(repo)
	ctx := context.Background()
	pid := primitive.NewObjectID().Hex()

	_, err := svc.AddProduct(ctx, pid)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.RemoveProduct(ctx, pid)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.Get(ctx)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	assert.Zero(t, repo.writes)
}
