package graph

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/auth"
)

// memCartRepo is a minimal in-memory cart gateway for schema tests.
type memCartRepo struct {
	carts map[primitive.ObjectID]*models.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[primitive.ObjectID]*models.Cart{}}
}

func (m *memCartRepo) Get(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if cart, ok := m.carts[userID]; ok {
		return cart, nil
	}
	return &models.Cart{UserID: userID, Products: []models.CartItem{}}, nil
}

func (m *memCartRepo) IncrementItem(_ context.Context, userID, productID primitive.ObjectID, by int) (bool, error) {
	cart, ok := m.carts[userID]
	if !ok {
		return false, nil
	}
	for i := range cart.Products {
		if cart.Products[i].ProductID == productID {
			cart.Products[i].Quantity += by
			return true, nil
		}
	}
	return false, nil
}

func (m *memCartRepo) InsertItem(_ context.Context, userID, productID primitive.ObjectID, quantity int) error {
	cart, ok := m.carts[userID]
	if !ok {
		cart = &models.Cart{ID: primitive.NewObjectID(), UserID: userID}
		m.carts[userID] = cart
	}
	for i := range cart.Products {
		if cart.Products[i].ProductID == productID {
			return repositories.ErrItemExists
		}
	}
	cart.Products = append(cart.Products, models.CartItem{ProductID: productID, Quantity: quantity})
	return nil
}

func (m *memCartRepo) RemoveItem(_ context.Context, userID, productID primitive.ObjectID) error {
	cart, ok := m.carts[userID]
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

func (m *memCartRepo) Clear(_ context.Context, userID primitive.ObjectID) error {
	if cart, ok := m.carts[userID]; ok {
		cart.Products = nil
	}
	return nil
}

func testSchema(t *testing.T) graphql.Schema {
	t.Helper()
	schema, err := NewSchema(&Resolver{
		Cart: services.NewCartService(newMemCartRepo()),
	})
	require.NoError(t, err)
	return schema
}

func TestAddProductToCartMutation(t *testing.T) {
	schema := testSchema(t)
	ctx := auth.WithIdentity(context.Background(), auth.Identity{ID: primitive.NewObjectID()})
	pid := primitive.NewObjectID().Hex()

	result := graphql.Do(graphql.Params{
		Schema: schema,
		RequestString: `mutation($pid: String!) {
			addProductToCart(productId: $pid, quantity: 2) {
				products { product_id quantity }
			}
		}`,
		VariableValues: map[string]interface{}{"pid": pid},
		Context:        ctx,
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	cart := data["addProductToCart"].(map[string]interface{})
	items := cart["products"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, pid, item["product_id"])
	assert.Equal(t, 2, item["quantity"])
}

func TestCartMutationWithoutIdentity(t *testing.T) {
	schema := testSchema(t)

	result := graphql.Do(graphql.Params{
		Schema: schema,
		RequestString: `mutation {
			addProductToCart(productId: "abc") { id }
		}`,
		Context: context.Background(),
	})
	require.NotEmpty(t, result.Errors, "anonymous mutation must fail")
	assert.Contains(t, result.Errors[0].Message, "authentication required")
}

func TestDecodeFilter(t *testing.T) {
	filter, err := decodeFilter(map[string]interface{}{
		"size":     "M",
		"minPrice": 10.5,
		"limit":    3,
		"sort":     map[string]interface{}{"field": "price", "order": "asc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "M", filter.Size)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 10.5, *filter.MinPrice)
	require.NotNil(t, filter.Limit)
	assert.Equal(t, int64(3), *filter.Limit)
	require.NotNil(t, filter.Sort)
	assert.Equal(t, "price", filter.Sort.Field)

	nilFilter, err := decodeFilter(nil)
	require.NoError(t, err)
	assert.Nil(t, nilFilter)
}
