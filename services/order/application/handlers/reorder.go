package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	appsvcs "github.com/sevakart/marketplace/services/order/application/services"
)

// ReorderHandler handles POST /orders/{id}/reorder.
type ReorderHandler struct {
	svc *appsvcs.Services
}

func NewReorderHandler(svc *appsvcs.Services) *ReorderHandler {
	return &ReorderHandler{svc: svc}
}

// Execute places a copy of a past order at its historical prices. The
// vendor's cart is replaced by the resolved items.
//
//	@Summary	Reorder
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Source order ID"
//	@Success	201	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id}/reorder [post]
func (h *ReorderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	sourceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	o, err := h.svc.Order.Reorder(r.Context(), vendorID, sourceID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toOrderResponse(o))
}
