package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

type WishlistController struct {
	service *services.WishlistService
}

func NewWishlistController(service *services.WishlistService) *WishlistController {
	return &WishlistController{service: service}
}

func (c *WishlistController) Show(w http.ResponseWriter, r *http.Request) {
	list, err := c.service.Get(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, list)
}

func (c *WishlistController) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	list, err := c.service.AddProduct(r.Context(), body.ProductID)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, list)
}

func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	list, err := c.service.RemoveProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, list)
}
