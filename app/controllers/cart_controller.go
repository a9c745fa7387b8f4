package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	cart, err := c.service.Get(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
		Quantity  *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	cart, err := c.service.AddProduct(r.Context(), body.ProductID, body.Quantity)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	cart, err := c.service.RemoveProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, cart)
}
