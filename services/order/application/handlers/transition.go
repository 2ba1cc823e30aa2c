package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	appsvcs "github.com/sevakart/marketplace/services/order/application/services"
	"github.com/sevakart/marketplace/services/order/domain/models"
	domainsvcs "github.com/sevakart/marketplace/services/order/domain/services"
)

// TransitionHandler serves the supplier lifecycle actions on /orders/{id}.
type TransitionHandler struct {
	svc *appsvcs.Services
}

func NewTransitionHandler(svc *appsvcs.Services) *TransitionHandler {
	return &TransitionHandler{svc: svc}
}

// Accept ships an order.
//
//	@Summary		Accept order
//	@Description	ordered → shipped. The status is shared by every supplier on the order.
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{id}/accept [post]
func (h *TransitionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.svc.Order.Accept)
}

// Deliver marks a shipped order delivered.
//
//	@Summary		Mark delivered
//	@Description	shipped → delivered
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{id}/deliver [post]
func (h *TransitionHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.svc.Order.MarkDelivered)
}

// Reject deletes an order that has not been accepted yet.
//
//	@Summary	Reject order
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/reject [post]
func (h *TransitionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	supplierID, orderID, ok := params(w, r)
	if !ok {
		return
	}
	if err := h.svc.Order.Reject(r.Context(), supplierID, orderID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transitionFunc func(ctx context.Context, supplierID, orderID uuid.UUID) (*models.Order, error)

func (h *TransitionHandler) apply(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	supplierID, orderID, ok := params(w, r)
	if !ok {
		return
	}
	o, err := fn(r.Context(), supplierID, orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSupplierOrderResponse(domainsvcs.ViewFor(o, supplierID)))
}

// params extracts the caller and the {id} path parameter, writing the error
// response itself when either is missing.
func params(w http.ResponseWriter, r *http.Request) (accountID, orderID uuid.UUID, ok bool) {
	accountID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return uuid.Nil, uuid.Nil, false
	}
	orderID, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid order id")
		return uuid.Nil, uuid.Nil, false
	}
	return accountID, orderID, true
}
