package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	pkgvalidator "github.com/sevakart/marketplace/pkg/validator"
	appsvcs "github.com/sevakart/marketplace/services/inventory/application/services"
)

// InventoryHandler serves the /inventory endpoints for the calling vendor.
type InventoryHandler struct {
	svc *appsvcs.Services
}

func NewInventoryHandler(svc *appsvcs.Services) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List returns the vendor's items ordered by name.
//
//	@Summary	List inventory
//	@Tags		inventory
//	@Produce	json
//	@Success	200	{object}	ItemListResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.Inventory.List(r.Context(), vendorID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	resp := ItemListResponse{Items: make([]ItemResponse, len(items))}
	for i, it := range items {
		resp.Items[i] = toItemResponse(it)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Add records a new item.
//
//	@Summary	Add inventory item
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddItemRequest	true	"Item"
//	@Success	201		{object}	ItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/inventory [post]
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Inventory.Add(r.Context(), vendorID, appsvcs.ItemInput{Name: req.Name, Stock: req.Stock, Unit: req.Unit})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// UpdateStock sets an item's current stock.
//
//	@Summary	Update stock
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Item ID"
//	@Param		request	body		UpdateStockRequest	true	"Stock"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/inventory/{id} [put]
func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	vendorID, id, ok := itemParams(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateStockRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Inventory.UpdateStock(r.Context(), vendorID, id, req.Stock)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// Delete removes an item.
//
//	@Summary	Delete inventory item
//	@Tags		inventory
//	@Param		id	path	string	true	"Item ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventory/{id} [delete]
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vendorID, id, ok := itemParams(w, r)
	if !ok {
		return
	}
	if err := h.svc.Inventory.Delete(r.Context(), vendorID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary returns the inventory dashboard.
//
//	@Summary	Inventory summary
//	@Tags		inventory
//	@Produce	json
//	@Success	200	{object}	SummaryResponse
//	@Router		/inventory/summary [get]
func (h *InventoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	s, err := h.svc.Inventory.Summary(r.Context(), vendorID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, SummaryResponse{
		ItemCount:     s.ItemCount,
		LowCount:      s.LowCount,
		CriticalCount: s.CriticalCount,
		TotalValue:    s.TotalValue,
	})
}

// Reorder restocks a low or critical item.
//
//	@Summary		Reorder item
//	@Description	Updates the newest open order containing the item, or orders it from the catalog. Quantity defaults to 5.
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Item ID"
//	@Param			request	body		ReorderRequest	false	"Quantity"
//	@Success		200		{object}	ReorderResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Stock is good"
//	@Router			/inventory/{id}/reorder [post]
func (h *InventoryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	vendorID, id, ok := itemParams(w, r)
	if !ok {
		return
	}
	var qty int
	if r.ContentLength != 0 {
		req, ok := pkgvalidator.ValidateRequest[ReorderRequest](w, r)
		if !ok {
			return
		}
		qty = req.Quantity
	}
	res, err := h.svc.Inventory.Reorder(r.Context(), vendorID, id, qty)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ReorderResponse{
		OrderID: res.Order.ID,
		Updated: res.Updated,
		Total:   res.Order.Total,
		Status:  res.Order.Status.String(),
	})
}

func itemParams(w http.ResponseWriter, r *http.Request) (vendorID, id uuid.UUID, ok bool) {
	vendorID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return uuid.Nil, uuid.Nil, false
	}
	id, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, uuid.Nil, false
	}
	return vendorID, id, true
}
