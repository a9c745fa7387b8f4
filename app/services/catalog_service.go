package services

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/catalog"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/storage"
)

// catalogCacheTTL is deliberately short: the catalogue is read-mostly but
// reviews land on products continuously.
const catalogCacheTTL = 30 * time.Second

// CatalogService answers public product queries. Search compiles the filter,
// runs it, and expands each product's categories, images and reviews (each
// review with its author). A dangling reference resolves to an absent
// relation — expansion never fails the read.
type CatalogService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	images     repositories.ImageRepository
	reviews    repositories.ReviewRepository
	users      repositories.UserRepository

	imageURL func(key string) string
}

func NewCatalogService(
	products repositories.ProductRepository,
	categories repositories.CategoryRepository,
	images repositories.ImageRepository,
	reviews repositories.ReviewRepository,
	users repositories.UserRepository,
) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		images:     images,
		reviews:    reviews,
		users:      users,
		imageURL:   storage.URL,
	}
}

// Search runs a filtered, paginated catalogue read. No authentication —
// browsing is public.
func (s *CatalogService) Search(ctx context.Context, filter *catalog.ProductFilter) ([]models.ExpandedProduct, error) {
	predicate, params, err := catalog.Compile(filter)
	if err != nil {
		return nil, err
	}

	key := searchCacheKey(filter)
	var cached []models.ExpandedProduct
	if cache.Get(key, &cached) {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	products, err := s.products.Find(ctx, predicate, params)
	if err != nil {
		return nil, apperr.Storage("product find", err)
	}

	expanded, err := s.expand(ctx, products)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(key, expanded, catalogCacheTTL)
	return expanded, nil
}

// expand batch-reads every referenced category, image, review and review
// author across the page, then assembles per product. Referenced ids with no
// target are skipped.
func (s *CatalogService) expand(ctx context.Context, products []models.Product) ([]models.ExpandedProduct, error) {
	var categoryIDs, imageIDs, reviewIDs []primitive.ObjectID
	for _, p := range products {
		categoryIDs = append(categoryIDs, p.CategoryIDs...)
		imageIDs = append(imageIDs, p.ImageIDs...)
		reviewIDs = append(reviewIDs, p.ReviewIDs...)
	}

	categories, err := s.categories.FindByIDs(ctx, dedupe(categoryIDs))
	if err != nil {
		return nil, apperr.Storage("category expand", err)
	}
	images, err := s.images.FindByIDs(ctx, dedupe(imageIDs))
	if err != nil {
		return nil, apperr.Storage("image expand", err)
	}
	reviews, err := s.reviews.FindByIDs(ctx, dedupe(reviewIDs))
	if err != nil {
		return nil, apperr.Storage("review expand", err)
	}

	var authorIDs []primitive.ObjectID
	for _, r := range reviews {
		authorIDs = append(authorIDs, r.UserID)
	}
	authors, err := s.users.FindByIDs(ctx, dedupe(authorIDs))
	if err != nil {
		// Review authors are cosmetic; log and serve reviews without them.
		logger.WithCtx(ctx).Warn("review author expand failed", "error", err)
		authors = nil
	}

	categoryByID := make(map[primitive.ObjectID]models.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	imageByID := make(map[primitive.ObjectID]models.ProductImage, len(images))
	for _, img := range images {
		img.URL = s.imageURL(img.Key)
		imageByID[img.ID] = img
	}
	reviewByID := make(map[primitive.ObjectID]models.Review, len(reviews))
	for _, r := range reviews {
		reviewByID[r.ID] = r
	}
	authorByID := make(map[primitive.ObjectID]models.User, len(authors))
	for _, u := range authors {
		u.Password = ""
		authorByID[u.ID] = u
	}

	out := make([]models.ExpandedProduct, 0, len(products))
	for _, p := range products {
		ep := models.ExpandedProduct{
			Product:    p,
			Categories: []models.Category{},
			Images:     []models.ProductImage{},
			Reviews:    []models.ExpandedReview{},
		}
		for _, id := range p.CategoryIDs {
			if c, ok := categoryByID[id]; ok {
				ep.Categories = append(ep.Categories, c)
			}
		}
		for _, id := range p.ImageIDs {
			if img, ok := imageByID[id]; ok {
				ep.Images = append(ep.Images, img)
			}
		}
		for _, id := range p.ReviewIDs {
			r, ok := reviewByID[id]
			if !ok {
				continue
			}
			er := models.ExpandedReview{Review: r}
			if a, ok := authorByID[r.UserID]; ok {
				er.Author = &a
			}
			ep.Reviews = append(ep.Reviews, er)
		}
		out = append(out, ep)
	}
	return out, nil
}

func searchCacheKey(filter *catalog.ProductFilter) string {
	raw, err := json.Marshal(filter)
	if err != nil {
		return "catalog:search:default"
	}
	return "catalog:search:" + string(raw)
}

func dedupe(ids []primitive.ObjectID) []primitive.ObjectID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
