package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// Add creates or overwrites the caller's review of a product.
func (c *ReviewController) Add(w http.ResponseWriter, r *http.Request) {
	var body services.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	review, err := c.service.AddProductReview(r.Context(), body)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, review)
}
