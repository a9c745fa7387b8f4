// Package graph hosts the GraphQL surface: the products query plus the cart,
// wishlist and review mutations. Resolvers delegate straight to the services;
// the caller's identity arrives through the resolve context, so the same
// guard path runs for REST and GraphQL.
package graph

import (
	"encoding/json"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/vastra/app/catalog"
	"github.com/shashiranjanraj/vastra/app/services"
)

// Resolver bundles the services the schema resolves against.
type Resolver struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Wishlist *services.WishlistService
	Reviews  *services.ReviewService
}

// NewSchema builds the executable schema.
func NewSchema(res *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type:        graphql.NewList(productType),
				Description: "Filtered, paginated product search with relations expanded.",
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: productFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, err := decodeFilter(p.Args["filter"])
					if err != nil {
						return nil, err
					}
					return res.Catalog.Search(p.Context, filter)
				},
			},
			"cart": &graphql.Field{
				Type:        cartType,
				Description: "The caller's cart.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return res.Cart.Get(p.Context)
				},
			},
			"wishlist": &graphql.Field{
				Type:        wishlistType,
				Description: "The caller's wishlist.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return res.Wishlist.Get(p.Context)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addProductToCart": &graphql.Field{
				Type: cartType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"quantity":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var quantity *int
					if q, ok := p.Args["quantity"].(int); ok {
						quantity = &q
					}
					return res.Cart.AddProduct(p.Context, p.Args["productId"].(string), quantity)
				},
			},
			"removeProductFromCart": &graphql.Field{
				Type: cartType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return res.Cart.RemoveProduct(p.Context, p.Args["productId"].(string))
				},
			},
			"addProductToWishlist": &graphql.Field{
				Type: wishlistType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return res.Wishlist.AddProduct(p.Context, p.Args["productId"].(string))
				},
			},
			"removeProductFromWishlist": &graphql.Field{
				Type: wishlistType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return res.Wishlist.RemoveProduct(p.Context, p.Args["productId"].(string))
				},
			},
			"addProductReview": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"review":    &graphql.ArgumentConfig{Type: graphql.String},
					"score":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := services.ReviewInput{
						ProductID: p.Args["productId"].(string),
						Score:     p.Args["score"].(float64),
					}
					if text, ok := p.Args["review"].(string); ok {
						in.Review = text
					}
					review, err := res.Reviews.AddProductReview(p.Context, in)
					if err != nil {
						return nil, err
					}
					return *review, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// decodeFilter coerces the filter argument into a catalog.ProductFilter. The
// filter's json tags match the input field names, so a JSON round trip does
// the mapping.
func decodeFilter(arg interface{}) (*catalog.ProductFilter, error) {
	if arg == nil {
		return nil, nil
	}

	raw, err := json.Marshal(arg)
	if err != nil {
		return nil, fmt.Errorf("graph: encode filter: %w", err)
	}

	var filter catalog.ProductFilter
	if err := json.Unmarshal(raw, &filter); err != nil {
		return nil, fmt.Errorf("graph: decode filter: %w", err)
	}
	return &filter, nil
}
