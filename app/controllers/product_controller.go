package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/catalog"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// maxImageBytes caps product image uploads.
const maxImageBytes = 8 << 20

type ProductController struct {
	catalog *services.CatalogService
	admin   *services.ProductService
	reviews *services.ReviewService
}

func NewProductController(catalog *services.CatalogService, admin *services.ProductService, reviews *services.ReviewService) *ProductController {
	return &ProductController{catalog: catalog, admin: admin, reviews: reviews}
}

// List runs a filtered catalogue search. The filter arrives as query
// parameters; repeated `category` and `keyword` params build the membership
// clauses.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	products, err := c.catalog.Search(r.Context(), filter)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, products)
}

// Show returns one product with relations expanded.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	products, err := c.catalog.Search(r.Context(), &catalog.ProductFilter{ID: id})
	if err != nil {
		response.AppError(w, err)
		return
	}
	if len(products) == 0 {
		response.NotFound(w)
		return
	}
	response.Success(w, products[0])
}

// Reviews lists a product's reviews.
func (c *ProductController) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.reviews.ListByProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, reviews)
}

// Create is the internal catalogue-management endpoint.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	product, err := c.admin.Create(r.Context(), body)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, product)
}

// UploadImage attaches a multipart image to a product. Internal.
func (c *ProductController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed multipart body")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "unreadable image file")
		return
	}

	img, err := c.admin.AttachImage(r.Context(),
		chi.URLParam(r, "id"), header.Filename, r.FormValue("alt"), content)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Created(w, img)
}

func filterFromQuery(r *http.Request) *catalog.ProductFilter {
	q := r.URL.Query()
	filter := &catalog.ProductFilter{
		ID:         q.Get("id"),
		Categories: q["category"],
		Size:       q.Get("size"),
		Color:      q.Get("color"),
		Name:       q.Get("name"),
		Code:       q.Get("code"),
		Keywords:   q["keyword"],
	}

	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := strconv.ParseInt(q.Get("limit"), 10, 64); err == nil {
		filter.Limit = &v
	}
	if v, err := strconv.ParseInt(q.Get("start"), 10, 64); err == nil {
		filter.Start = &v
	}
	if field := q.Get("sort"); field != "" {
		filter.Sort = &catalog.Sort{Field: field, Order: q.Get("order")}
	}
	return filter
}
