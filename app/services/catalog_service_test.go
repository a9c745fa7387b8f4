package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/catalog"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

type fakeProductRepo struct {
	products      []models.Product
	lastPredicate bson.M
	lastParams    catalog.FindParams
}

func (f *fakeProductRepo) Find(_ context.Context, predicate bson.M, params catalog.FindParams) ([]models.Product, error) {
	f.lastPredicate = predicate
	f.lastParams = params
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, apperr.NotFound("product", id.Hex())
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Insert(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) AppendImage(_ context.Context, productID, imageID primitive.ObjectID) error {
	return f.appendRef(productID, imageID, func(p *models.Product) *[]primitive.ObjectID { return &p.ImageIDs })
}

func (f *fakeProductRepo) AppendReview(_ context.Context, productID, reviewID primitive.ObjectID) error {
	return f.appendRef(productID, reviewID, func(p *models.Product) *[]primitive.ObjectID { return &p.ReviewIDs })
}

func (f *fakeProductRepo) appendRef(productID, ref primitive.ObjectID, field func(*models.Product) *[]primitive.ObjectID) error {
	for i := range f.products {
		if f.products[i].ID != productID {
			continue
		}
		refs := field(&f.products[i])
		for _, existing := range *refs {
			if existing == ref {
				return nil
			}
		}
		*refs = append(*refs, ref)
		return nil
	}
	return apperr.NotFound("product", productID.Hex())
}

type fakeCategoryRepo struct{ categories []models.Category }

func (f *fakeCategoryRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct{ users []models.User }

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user", id.Hex())
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user", email)
}

func (f *fakeUserRepo) Insert(_ context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, *u)
	return nil
}

func TestSearchExpandsRelations(t *testing.T) {
	author := models.User{ID: primitive.NewObjectID(), Name: "Asha", Password: "hash"}
	category := models.Category{ID: primitive.NewObjectID(), Name: "Sarees", Slug: "sarees"}
	image := models.ProductImage{ID: primitive.NewObjectID(), Key: "products/one.jpg"}
	review := models.Review{ID: primitive.NewObjectID(), UserID: author.ID, Score: 4, Review: "good fabric"}
	orphanReview := models.Review{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Score: 2}

	danglingCategory := primitive.NewObjectID()
	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        "Banarasi Silk",
		Price:       120,
		CategoryIDs: []primitive.ObjectID{category.ID, danglingCategory},
		ImageIDs:    []primitive.ObjectID{image.ID},
		ReviewIDs:   []primitive.ObjectID{review.ID, orphanReview.ID, primitive.NewObjectID()},
	}

	reviews := newFakeReviewRepo()
	reviews.reviews[reviewKey{user: review.UserID, product: review.ProductID}] = review
	reviews.reviews[reviewKey{user: orphanReview.UserID, product: orphanReview.ProductID}] = orphanReview

	svc := NewCatalogService(
		&fakeProductRepo{products: []models.Product{product}},
		&fakeCategoryRepo{categories: []models.Category{category}},
		&fakeImageRepo{images: []models.ProductImage{image}},
		reviews,
		&fakeUserRepo{users: []models.User{author}},
	)
	svc.imageURL = func(key string) string { return "https://cdn.test/" + key }

	out, err := svc.Search(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	got := out[0]

	require.Len(t, got.Categories, 1, "dangling category reference is skipped")
	assert.Equal(t, "Sarees", got.Categories[0].Name)

	require.Len(t, got.Images, 1)
	assert.Equal(t, "https://cdn.test/products/one.jpg", got.Images[0].URL)

	require.Len(t, got.Reviews, 2, "dangling review id is skipped, orphan review survives")
	for _, r := range got.Reviews {
		switch r.ID {
		case review.ID:
			require.NotNil(t, r.Author)
			assert.Equal(t, "Asha", r.Author.Name)
			assert.Empty(t, r.Author.Password, "hashes never leave the service")
		case orphanReview.ID:
			assert.Nil(t, r.Author, "missing author resolves to absent, not error")
		default:
			t.Fatalf("unexpected review %s", r.ID.Hex())
		}
	}
}

func TestSearchEmptyResultKeepsEmptySlices(t *testing.T) {
	svc := NewCatalogService(&fakeProductRepo{}, &fakeCategoryRepo{}, &fakeImageRepo{}, newFakeReviewRepo(), &fakeUserRepo{})
	svc.imageURL = func(key string) string { return key }

	out, err := svc.Search(context.Background(), &catalog.ProductFilter{Name: "nothing"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearchPassesCompiledFilter(t *testing.T) {
	products := &fakeProductRepo{}
	svc := NewCatalogService(products, &fakeCategoryRepo{}, &fakeImageRepo{}, newFakeReviewRepo(), &fakeUserRepo{})
	svc.imageURL = func(key string) string { return key }

	limit := int64(3)
	_, err := svc.Search(context.Background(), &catalog.ProductFilter{Size: "M", Limit: &limit})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"size": "M"}, products.lastPredicate)
	assert.Equal(t, int64(3), products.lastParams.Limit)
}

func TestSearchRejectsMalformedFilter(t *testing.T) {
	svc := NewCatalogService(&fakeProductRepo{}, &fakeCategoryRepo{}, &fakeImageRepo{}, newFakeReviewRepo(), &fakeUserRepo{})
	_, err := svc.Search(context.Background(), &catalog.ProductFilter{ID: "not-hex"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
