package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	pkgvalidator "github.com/sevakart/marketplace/pkg/validator"
	appsvcs "github.com/sevakart/marketplace/services/cart/application/services"
)

// CartHandler serves the /cart endpoints for the calling vendor.
type CartHandler struct {
	svc *appsvcs.Services
}

func NewCartHandler(svc *appsvcs.Services) *CartHandler {
	return &CartHandler{svc: svc}
}

// Get returns the vendor's cart.
//
//	@Summary	Get cart
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCartResponse(h.svc.Cart.Get(r.Context(), vendorID)))
}

// AddItem adds a catalog product to the cart, merging with an existing line.
//
//	@Summary		Add to cart
//	@Description	Adds quantity (default 1) of a product. Stock is not checked.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddCartItemRequest	true	"Item"
//	@Success		200		{object}	CartResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddCartItemRequest](w, r)
	if !ok {
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	cart, err := h.svc.Cart.AddProduct(r.Context(), vendorID, req.ProductID, qty)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCartResponse(cart))
}

// UpdateItem sets a line's quantity; zero or less removes it.
//
//	@Summary	Update cart quantity
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		productID	path		string					true	"Product ID"
//	@Param		request		body		UpdateCartItemRequest	true	"Quantity"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/cart/items/{productID} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateCartItemRequest](w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, toCartResponse(h.svc.Cart.UpdateQuantity(r.Context(), vendorID, productID, req.Quantity)))
}

// RemoveItem drops a product from the cart.
//
//	@Summary	Remove from cart
//	@Tags		cart
//	@Produce	json
//	@Param		productID	path		string	true	"Product ID"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	httpx.JSON(w, http.StatusOK, toCartResponse(h.svc.Cart.Remove(r.Context(), vendorID, productID)))
}

// Clear empties the cart.
//
//	@Summary	Clear cart
//	@Tags		cart
//	@Success	204
//	@Failure	500	{object}	ErrorResponse
//	@Router		/cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.svc.Cart.Clear(r.Context(), vendorID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
