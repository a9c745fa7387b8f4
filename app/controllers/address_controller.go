package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

type AddressController struct {
	service *services.AddressService
}

func NewAddressController(service *services.AddressService) *AddressController {
	return &AddressController{service: service}
}

func (c *AddressController) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := c.service.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, addresses)
}

func (c *AddressController) Create(w http.ResponseWriter, r *http.Request) {
	var body services.AddressInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	address, err := c.service.Create(r.Context(), body)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, address)
}

func (c *AddressController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, map[string]bool{"deleted": true})
}
