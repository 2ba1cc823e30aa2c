package handlers

import (
	"net/http"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	pkgvalidator "github.com/sevakart/marketplace/pkg/validator"
	appsvcs "github.com/sevakart/marketplace/services/order/application/services"
	"github.com/sevakart/marketplace/services/order/domain/models"
)

// PostOrderHandler handles POST /orders.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute commits an order from explicit lines.
//
//	@Summary		Place order
//	@Description	Total and supplier attribution are computed from the lines.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Order lines"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[PlaceOrderRequest](w, r)
	if !ok {
		return
	}

	o, err := h.svc.Order.PlaceOrder(r.Context(), vendorID, req.lines(), models.Status(req.Status))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toOrderResponse(o))
}

// CheckoutHandler handles POST /orders/checkout.
type CheckoutHandler struct {
	svc *appsvcs.Services
}

func NewCheckoutHandler(svc *appsvcs.Services) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Execute turns the vendor's cart into an order and clears the cart.
//
//	@Summary	Checkout cart
//	@Tags		orders
//	@Produce	json
//	@Success	201	{object}	OrderResponse
//	@Failure	422	{object}	ErrorResponse	"Cart is empty"
//	@Router		/orders/checkout [post]
func (h *CheckoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	o, err := h.svc.Order.Checkout(r.Context(), vendorID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toOrderResponse(o))
}
