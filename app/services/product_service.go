package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/storage"
)

// ProductInput is the internal catalogue-management request.
type ProductInput struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Price       float64  `json:"price"`
	CategoryIDs []string `json:"category_ids"`
	Keywords    []string `json:"keywords"`
}

// ProductService covers internal catalogue management: creating products and
// attaching images. All operations require an internal identity.
type ProductService struct {
	products repositories.ProductRepository
	images   repositories.ImageRepository

	putBlob func(key string, content []byte) error
}

func NewProductService(products repositories.ProductRepository, images repositories.ImageRepository) *ProductService {
	return &ProductService{
		products: products,
		images:   images,
		putBlob:  storage.Put,
	}
}

// Create stores a new catalogue entry.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := requireInternal(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.InvalidArgument("product name is required")
	}
	if in.Price < 0 {
		return nil, apperr.InvalidArgument("price must not be negative")
	}

	categoryIDs := make([]primitive.ObjectID, 0, len(in.CategoryIDs))
	for _, raw := range in.CategoryIDs {
		cid, err := parseObjectID(raw, "category id")
		if err != nil {
			return nil, err
		}
		categoryIDs = append(categoryIDs, cid)
	}

	p := &models.Product{
		Name:        in.Name,
		Code:        in.Code,
		Size:        in.Size,
		Color:       in.Color,
		Price:       in.Price,
		CategoryIDs: categoryIDs,
		Keywords:    in.Keywords,
	}
	if err := s.products.Insert(ctx, p); err != nil {
		return nil, apperr.Storage("product insert", err)
	}

	logger.WithCtx(ctx).Info("product created", "product_id", p.ID.Hex(), "code", p.Code)
	return p, nil
}

// AttachImage stores the blob, records the image document and links it to
// the product.
func (s *ProductService) AttachImage(ctx context.Context, productID, filename, alt string, content []byte) (*models.ProductImage, error) {
	if err := requireInternal(ctx); err != nil {
		return nil, err
	}

	pid, err := parseObjectID(productID, "product id")
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, apperr.InvalidArgument("image content is empty")
	}

	key := fmt.Sprintf("products/%s/%s%s", pid.Hex(), primitive.NewObjectID().Hex(), path.Ext(filename))
	if err := s.putBlob(key, content); err != nil {
		return nil, apperr.Storage("image put", err)
	}

	img := &models.ProductImage{ProductID: pid, Key: key, Alt: alt}
	if err := s.images.Insert(ctx, img); err != nil {
		return nil, apperr.Storage("image insert", err)
	}
	if err := s.products.AppendImage(ctx, pid, img.ID); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("product image attached",
		"product_id", pid.Hex(), "image_id", img.ID.Hex(), "key", key)
	return img, nil
}

// requireInternal is the guard for catalogue management. Shoppers carry
// IsInternal=false and are rejected the same way anonymous callers are.
func requireInternal(ctx context.Context) error {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return err
	}
	if !identity.IsInternal {
		return apperr.Unauthenticated()
	}
	return nil
}
