// Package controllers maps HTTP requests onto the services. Controllers
// decode, delegate and encode; every business rule lives one layer down.
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	user, tokens, err := c.service.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"user":   user,
		"tokens": tokens,
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	tokens, err := c.service.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, tokens)
}

func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := c.service.Profile(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, user)
}
