package handlers

import (
	"net/http"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	appsvcs "github.com/sevakart/marketplace/services/order/application/services"
)

// ListOrdersHandler handles GET /orders.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists the caller's orders. Vendors see their own orders; suppliers
// see every order they have lines in, restricted to those lines.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderListResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/orders [get]
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := OrderListResponse{Orders: []OrderResponse{}}
	if id.IsSupplier() {
		views, err := h.svc.Order.ListForSupplier(r.Context(), id.AccountID)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		for _, v := range views {
			resp.Orders = append(resp.Orders, toSupplierOrderResponse(v))
		}
	} else {
		orders, err := h.svc.Order.ListForVendor(r.Context(), id.AccountID)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		for _, o := range orders {
			resp.Orders = append(resp.Orders, toOrderResponse(o))
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
