package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/vastra/app/models"
)

// ObjectIDs serialize as hex strings. graphql-go's default resolver would
// stringify the raw ObjectID value, so every id field gets an explicit
// resolver.

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Category).ID.Hex(), nil
			},
		},
		"name": &graphql.Field{Type: graphql.String},
		"slug": &graphql.Field{Type: graphql.String},
	},
})

var imageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductImage",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ProductImage).ID.Hex(), nil
			},
		},
		"url": &graphql.Field{Type: graphql.String},
		"alt": &graphql.Field{Type: graphql.String},
	},
})

var authorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ReviewAuthor",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).ID.Hex(), nil
			},
		},
		"name":          &graphql.Field{Type: graphql.String},
		"profile_image": &graphql.Field{Type: graphql.String},
	},
})

var reviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Review",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.String,
			Resolve: reviewID,
		},
		"review": &graphql.Field{Type: graphql.String},
		"score":  &graphql.Field{Type: graphql.Float},
		"user": &graphql.Field{
			Type: authorType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if er, ok := p.Source.(models.ExpandedReview); ok && er.Author != nil {
					return er.Author, nil
				}
				return nil, nil
			},
		},
	},
})

func reviewID(p graphql.ResolveParams) (interface{}, error) {
	switch r := p.Source.(type) {
	case models.ExpandedReview:
		return r.ID.Hex(), nil
	case models.Review:
		return r.ID.Hex(), nil
	}
	return nil, nil
}

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ExpandedProduct).ID.Hex(), nil
			},
		},
		"name":     &graphql.Field{Type: graphql.String},
		"code":     &graphql.Field{Type: graphql.String},
		"size":     &graphql.Field{Type: graphql.String},
		"color":    &graphql.Field{Type: graphql.String},
		"price":    &graphql.Field{Type: graphql.Float},
		"keywords": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"categories": &graphql.Field{
			Type: graphql.NewList(categoryType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ExpandedProduct).Categories, nil
			},
		},
		"product_images": &graphql.Field{
			Type: graphql.NewList(imageType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ExpandedProduct).Images, nil
			},
		},
		"reviews": &graphql.Field{
			Type: graphql.NewList(reviewType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ExpandedProduct).Reviews, nil
			},
		},
	},
})

var cartItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CartItem",
	Fields: graphql.Fields{
		"product_id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.CartItem).ProductID.Hex(), nil
			},
		},
		"quantity": &graphql.Field{Type: graphql.Int},
	},
})

var cartType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cart",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Cart).ID.Hex(), nil
			},
		},
		"user_id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Cart).UserID.Hex(), nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewList(cartItemType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Cart).Products, nil
			},
		},
	},
})

var wishlistType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Wishlist",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Wishlist).ID.Hex(), nil
			},
		},
		"user_id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Wishlist).UserID.Hex(), nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				list := p.Source.(*models.Wishlist)
				out := make([]string, 0, len(list.Products))
				for _, id := range list.Products {
					out = append(out, id.Hex())
				}
				return out, nil
			},
		},
	},
})

var sortInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SortInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"field": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"order": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"categories": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		"size":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"color":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"minPrice":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"maxPrice":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"name":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"limit":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"start":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"sort":       &graphql.InputObjectFieldConfig{Type: sortInput},
		"code":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"keywords":   &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
	},
})
