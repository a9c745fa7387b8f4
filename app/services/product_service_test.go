package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
)

type fakeImageRepo struct {
	images []models.ProductImage
}

func (f *fakeImageRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.ProductImage, error) {
	var out []models.ProductImage
	for _, img := range f.images {
		for _, id := range ids {
			if img.ID == id {
				out = append(out, img)
			}
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Insert(_ context.Context, img *models.ProductImage) error {
	img.ID = primitive.NewObjectID()
	f.images = append(f.images, *img)
	return nil
}

func internalCtx() context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{
		ID: primitive.NewObjectID(), IsInternal: true,
	})
}

func TestCreateProductRequiresInternalIdentity(t *testing.T) {
	products := &fakeProductRepo{}
	svc := NewProductService(products, &fakeImageRepo{})

	_, err := svc.Create(authedCtx(), ProductInput{Name: "Kurta", Price: 30})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated, "shopper identity must not manage the catalogue")

	_, err = svc.Create(context.Background(), ProductInput{Name: "Kurta", Price: 30})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	assert.Empty(t, products.products)
}

func TestCreateProduct(t *testing.T) {
	products := &fakeProductRepo{}
	svc := NewProductService(products, &fakeImageRepo{})

	cid := primitive.NewObjectID()
	p, err := svc.Create(internalCtx(), ProductInput{
		Name:        "Chanderi Kurta",
		Code:        "CK-102",
		Price:       45,
		CategoryIDs: []string{cid.Hex()},
		Keywords:    []string{"kurta", "chanderi"},
	})
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())
	assert.Equal(t, []primitive.ObjectID{cid}, p.CategoryIDs)

	_, err = svc.Create(internalCtx(), ProductInput{Name: "  "})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Create(internalCtx(), ProductInput{Name: "x", Price: -1})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Create(internalCtx(), ProductInput{Name: "x", CategoryIDs: []string{"bad"}})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestAttachImage(t *testing.T) {
	pid := primitive.NewObjectID()
	products := &fakeProductRepo{products: []models.Product{{ID: pid}}}
	images := &fakeImageRepo{}
	svc := NewProductService(products, images)

	var putKey string
	svc.putBlob = func(key string, content []byte) error {
		putKey = key
		return nil
	}

	img, err := svc.AttachImage(internalCtx(), pid.Hex(), "front.jpg", "front view", []byte{0xff, 0xd8})
	require.NoError(t, err)

	assert.Equal(t, img.Key, putKey)
	assert.True(t, strings.HasPrefix(putKey, "products/"+pid.Hex()+"/"))
	assert.True(t, strings.HasSuffix(putKey, ".jpg"))

	require.Len(t, products.products[0].ImageIDs, 1)
	assert.Equal(t, img.ID, products.products[0].ImageIDs[0])
}

func TestAttachImageValidation(t *testing.T) {
	pid := primitive.NewObjectID()
	svc := NewProductService(&fakeProductRepo{products: []models.Product{{ID: pid}}}, &fakeImageRepo{})
	svc.putBlob = func(string, []byte) error { return nil }

	_, err := svc.AttachImage(internalCtx(), pid.Hex(), "a.jpg", "", nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.AttachImage(internalCtx(), primitive.NewObjectID().Hex(), "a.jpg", "", []byte{1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
