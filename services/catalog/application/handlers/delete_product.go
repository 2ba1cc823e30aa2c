package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	appsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
)

// DeleteProductHandler handles DELETE /products/{id}.
type DeleteProductHandler struct {
	svc *appsvcs.Services
}

func NewDeleteProductHandler(svc *appsvcs.Services) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc}
}

// Execute deletes a product owned by the calling supplier.
//
//	@Summary	Delete product
//	@Tags		products
//	@Param		id	path	string	true	"Product ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	supplierID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := h.svc.Product.Delete(r.Context(), supplierID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
