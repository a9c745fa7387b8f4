// Package catalog compiles user-supplied product filter requests into
// document store predicates.
//
// Compile is a pure function: it never touches the store, which keeps it
// testable in isolation and keeps the repositories free of request-shape
// concerns. Every present field contributes one independent clause; absent
// fields contribute none.
package catalog

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

// Defaults applied when the request leaves pagination unset.
const (
	DefaultLimit = 10
	DefaultStart = 0
)

// Sort names a field and a direction. Order "asc" sorts ascending; any other
// value sorts descending.
type Sort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// ProductFilter is the partially-populated filter request from the API
// boundary. All fields are optional and independent.
type ProductFilter struct {
	ID         string   `json:"id,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Size       string   `json:"size,omitempty"`
	Color      string   `json:"color,omitempty"`
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`
	Name       string   `json:"name,omitempty"`
	Limit      *int64   `json:"limit,omitempty"`
	Start      *int64   `json:"start,omitempty"`
	Sort       *Sort    `json:"sort,omitempty"`
	Code       string   `json:"code,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// FindParams carries the pagination and ordering compiled alongside the
// predicate.
type FindParams struct {
	Limit  int64
	Offset int64
	Sort   bson.D // nil means implementation-default order
}

// Compile maps a filter request to an immutable predicate plus find
// parameters. A nil filter compiles to the empty predicate with defaults.
//
// Coercion failures (a malformed identifier) return ErrInvalidArgument;
// empty Categories/Keywords slices are treated as absent, not as
// "match nothing".
func Compile(f *ProductFilter) (bson.M, FindParams, error) {
	params := FindParams{Limit: DefaultLimit, Offset: DefaultStart}
	predicate := bson.M{}

	if f == nil {
		return predicate, params, nil
	}

	if f.ID != "" {
		oid, err := primitive.ObjectIDFromHex(f.ID)
		if err != nil {
			return nil, FindParams{}, apperr.InvalidArgument(fmt.Sprintf("invalid product id %q", f.ID))
		}
		predicate["_id"] = oid
	}

	if f.Name != "" {
		predicate["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}
	}

	if f.Code != "" {
		predicate["code"] = f.Code
	}

	if f.Size != "" {
		predicate["size"] = f.Size
	}

	if f.Color != "" {
		predicate["color"] = f.Color
	}

	if len(f.Categories) > 0 {
		ids := make([]primitive.ObjectID, 0, len(f.Categories))
		for _, c := range f.Categories {
			oid, err := primitive.ObjectIDFromHex(c)
			if err != nil {
				return nil, FindParams{}, apperr.InvalidArgument(fmt.Sprintf("invalid category id %q", c))
			}
			ids = append(ids, oid)
		}
		predicate["category_ids"] = bson.M{"$in": ids}
	}

	if len(f.Keywords) > 0 {
		predicate["keywords"] = bson.M{"$in": f.Keywords}
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		predicate["price"] = price
	}

	if f.Limit != nil && *f.Limit > 0 {
		params.Limit = *f.Limit
	}
	if f.Start != nil && *f.Start > 0 {
		params.Offset = *f.Start
	}

	if f.Sort != nil && f.Sort.Field != "" {
		direction := -1
		if f.Sort.Order == "asc" {
			direction = 1
		}
		params.Sort = bson.D{{Key: f.Sort.Field, Value: direction}}
	}

	return predicate, params, nil
}
