// Package routes declares the public HTTP surface.
package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/graph"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"github.com/shashiranjanraj/vastra/pkg/router"
)

// RegisterAPI wires repositories, services and controllers onto the router.
func RegisterAPI(r *router.Router) error {
	products := repositories.NewProductRepository()
	categories := repositories.NewCategoryRepository()
	images := repositories.NewImageRepository()
	reviews := repositories.NewReviewRepository()
	users := repositories.NewUserRepository()
	carts := repositories.NewCartRepository()
	wishlists := repositories.NewWishlistRepository()
	addresses := repositories.NewAddressRepository()
	orders := repositories.NewOrderRepository()

	catalogSvc := services.NewCatalogService(products, categories, images, reviews, users)
	cartSvc := services.NewCartService(carts)
	wishlistSvc := services.NewWishlistService(wishlists)
	reviewSvc := services.NewReviewService(reviews, products)
	authSvc := services.NewAuthService(users)
	addressSvc := services.NewAddressService(addresses)
	orderSvc := services.NewOrderService(orders, carts, addresses, products)
	productSvc := services.NewProductService(products, images)

	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(catalogSvc, productSvc, reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	wishlistCtrl := controllers.NewWishlistController(wishlistSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	addressCtrl := controllers.NewAddressController(addressSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	schema, err := graph.NewSchema(&graph.Resolver{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Wishlist: wishlistSvc,
		Reviews:  reviewSvc,
	})
	if err != nil {
		return fmt.Errorf("routes: build graphql schema: %w", err)
	}

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	// Identity is optional across /api: public reads pass through anonymous,
	// services guard the operations that need a user.
	api := r.Group("/api", middleware.Identity)

	// Credential endpoints carry a per-IP limit against brute force.
	loginLimit := middleware.RateLimit(20, time.Minute)
	api.Post("/register", "auth.register", authCtrl.Register, loginLimit)
	api.Post("/login", "auth.login", authCtrl.Login, loginLimit)

	api.Get("/products", "products.index", productCtrl.List)
	api.Get("/products/{id}", "products.show", productCtrl.Show)
	api.Get("/products/{id}/reviews", "products.reviews", productCtrl.Reviews)

	api.Post("/graphql", "graphql", graph.Handler(schema))

	protected := api.Group("", middleware.Authenticate)

	protected.Get("/profile", "auth.profile", authCtrl.Profile)

	protected.Get("/cart", "cart.show", cartCtrl.Show)
	protected.Post("/cart", "cart.add", cartCtrl.Add)
	protected.Delete("/cart/{productId}", "cart.remove", cartCtrl.Remove)

	protected.Get("/wishlist", "wishlist.show", wishlistCtrl.Show)
	protected.Post("/wishlist", "wishlist.add", wishlistCtrl.Add)
	protected.Delete("/wishlist/{productId}", "wishlist.remove", wishlistCtrl.Remove)

	protected.Post("/reviews", "reviews.add", reviewCtrl.Add)

	protected.Get("/addresses", "addresses.index", addressCtrl.List)
	protected.Post("/addresses", "addresses.create", addressCtrl.Create)
	protected.Delete("/addresses/{id}", "addresses.delete", addressCtrl.Delete)

	protected.Post("/orders", "orders.create", orderCtrl.Create)
	protected.Get("/orders", "orders.index", orderCtrl.List)

	internal := protected.Group("/internal")
	internal.Post("/products", "internal.products.create", productCtrl.Create)
	internal.Post("/products/{id}/image", "internal.products.image", productCtrl.UploadImage)

	return nil
}
