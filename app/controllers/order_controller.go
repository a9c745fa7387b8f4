package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Create snapshots the caller's cart into an order.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AddressID string `json:"address_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	order, err := c.service.Create(r.Context(), body.AddressID)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, order)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, orders)
}
