package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
)

// fakeCartRepo implements the atomic gateway contract in memory: increments
// and inserts are serialized under one lock, exactly as the store serializes
// single-document updates. beforeInsert lets tests interleave a competing
// writer between the increment miss and the insert.
type fakeCartRepo struct {
	mu           sync.Mutex
	carts        map[primitive.ObjectID]*models.Cart
	writes       int
	beforeInsert func()
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[primitive.ObjectID]*models.Cart{}}
}

func (f *fakeCartRepo) Get(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[userID]
	if !ok {
		return &models.Cart{UserID: userID, Products: []models.CartItem{}}, nil
	}
	cp := *cart
	cp.Products = append([]models.CartItem(nil), cart.Products...)
	return &cp, nil
}

func (f *fakeCartRepo) IncrementItem(_ context.Context, userID, productID primitive.ObjectID, by int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[userID]
	if !ok {
		return false, nil
	}
	for i := range cart.Products {
		if cart.Products[i].ProductID == productID {
			cart.Products[i].Quantity += by
			f.writes++
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCartRepo) InsertItem(_ context.Context, userID, productID primitive.ObjectID, quantity int) error {
	if f.beforeInsert != nil {
		f.beforeInsert()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[userID]
	if !ok {
		cart = &models.Cart{ID: primitive.NewObjectID(), UserID: userID}
		f.carts[userID] = cart
	}
	for i := range cart.Products {
		if cart.Products[i].ProductID == productID {
			return repositories.ErrItemExists
		}
	}
	cart.Products = append(cart.Products, models.CartItem{ProductID: productID, Quantity: quantity})
	f.writes++
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, userID, productID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[userID]
	if !ok {
		return nil
	}
	kept := cart.Products[:0]
	for _, it := range cart.Products {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	cart.Products = kept
	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cart, ok := f.carts[userID]; ok {
		cart.Products = nil
	}
	return nil
}

func authedCtx() context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{ID: primitive.NewObjectID()})
}

func intp(v int) *int { return &v }

func TestAddProductMergesQuantities(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	ctx := authedCtx()
	pid := primitive.NewObjectID()

	_, err := svc.AddProduct(ctx, pid.Hex(), intp(2))
	require.NoError(t, err)

	cart, err := svc.AddProduct(ctx, pid.Hex(), intp(3))
	require.NoError(t, err)

	require.Len(t, cart.Products, 1, "merge must never produce two line items")
	assert.Equal(t, 5, cart.Products[0].Quantity)
}

func TestAddProductDefaultsToOne(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	ctx := authedCtx()
	pid := primitive.NewObjectID()

	cart, err := svc.AddProduct(ctx, pid.Hex(), nil)
	require.NoError(t, err)
	require.Len(t, cart.Products, 1)
	assert.Equal(t, 1, cart.Products[0].Quantity)

	// A second add with no quantity increments by one, never corrupts the
	// stored quantity.
	cart, err = svc.AddProduct(ctx, pid.Hex(), nil)
	require.NoError(t, err)
	require.Len(t, cart.Products, 1)
	assert.Equal(t, 2, cart.Products[0].Quantity)
}

func TestAddProductRejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	ctx := authedCtx()
	pid := primitive.NewObjectID()

	for _, q := range []int{0, -3} {
		_, err := svc.AddProduct(ctx, pid.Hex(), intp(q))
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument, "quantity %d", q)
	}
	assert.Zero(t, repo.writes, "rejected adds must not write")
}

func TestAddProductMalformedID(t *testing.T) {
	svc := NewCartService(newFakeCartRepo())
	_, err := svc.AddProduct(authedCtx(), "garbage", intp(1))
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	ctx := authedCtx()
	pid := primitive.NewObjectID()

	_, err := svc.AddProduct(ctx, pid.Hex(), intp(2))
	require.NoError(t, err)

	cart, err := svc.RemoveProduct(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err, "removing an absent product is a defined no-op")
	require.Len(t, cart.Products, 1)
	assert.Equal(t, 2, cart.Products[0].Quantity)
}

func TestRemoveProduct(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	ctx := authedCtx()
	pid := primitive.NewObjectID()

	_, err := svc.AddProduct(ctx, pid.Hex(), intp(2))
	require.NoError(t, err)

	cart, err := svc.RemoveProduct(ctx, pid.Hex())
	require.NoError(t, err)
	assert.Empty(t, cart.Products)
}

func TestUnauthenticatedCartMutations(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	ctx := context.Background()
	pid := primitive.NewObjectID().Hex()

	_, err := svc.AddProduct(ctx, pid, intp(1))
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.RemoveProduct(ctx, pid)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.Get(ctx)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	assert.Zero(t, repo.writes, "unauthenticated calls must perform no write")
}

// A competing writer inserts the line item between our increment miss and
// our insert. The merge loop must fall back to an increment instead of
// erroring or duplicating the line.
func TestAddProductLosesInsertRace(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	identity := auth.Identity{ID: primitive.NewObjectID()}
	ctx := auth.WithIdentity(context.Background(), identity)
	pid := primitive.NewObjectID()

	raced := false
	repo.beforeInsert = func() {
		if raced {
			return
		}
		raced = true
		require.NoError(t, repo.InsertItem(context.Background(), identity.ID, pid, 4))
	}

	cart, err := svc.AddProduct(ctx, pid.Hex(), intp(2))
	require.NoError(t, err)
	require.Len(t, cart.Products, 1)
	assert.Equal(t, 6, cart.Products[0].Quantity, "the racing 4 and our 2 must both survive")
}

func TestConcurrentAddsSumExactly(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	identity := auth.Identity{ID: primitive.NewObjectID()}
	ctx := auth.WithIdentity(context.Background(), identity)
	pid := primitive.NewObjectID()

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddProduct(ctx, pid.Hex(), intp(3))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Products, 1)
	assert.Equal(t, writers*3, cart.Products[0].Quantity)
}
