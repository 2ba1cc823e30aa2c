package handlers

import (
	"net/http"

	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	pkgvalidator "github.com/sevakart/marketplace/pkg/validator"
	appsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
)

// CategoriesHandler serves GET and POST /categories.
type CategoriesHandler struct {
	svc *appsvcs.Services
}

func NewCategoriesHandler(svc *appsvcs.Services) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List returns the category vocabulary.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{object}	CategoriesResponse
//	@Router		/categories [get]
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Product.Categories(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CategoriesResponse{Categories: cats})
}

// Add appends a category to the vocabulary.
//
//	@Summary	Add category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddCategoryRequest	true	"Category"
//	@Success	201		{object}	CategoriesResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/categories [post]
func (h *CategoriesHandler) Add(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AddCategoryRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.Product.AddCategory(r.Context(), req.Name); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	cats, err := h.svc.Product.Categories(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, CategoriesResponse{Categories: cats})
}
