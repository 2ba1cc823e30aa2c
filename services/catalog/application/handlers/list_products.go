package handlers

import (
	"net/http"

	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	appsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
)

// ListProductsHandler handles GET /products.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute lists the catalog, optionally searched or filtered.
//
//	@Summary		List products
//	@Description	Returns the catalog. q searches name, category and supplier; category filters exactly. q wins when both are set.
//	@Tags			products
//	@Produce		json
//	@Param			q			query		string	false	"Search text"
//	@Param			category	query		string	false	"Category, or all"
//	@Success		200			{object}	ProductListResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := h.svc.Product.Browse(r.Context(), q.Get("q"), q.Get("category"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductList(products))
}
