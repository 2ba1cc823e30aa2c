package handlers

import (
	"net/http"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	appsvcs "github.com/sevakart/marketplace/services/order/application/services"
)

// SummaryHandler handles GET /orders/summary.
type SummaryHandler struct {
	svc *appsvcs.Services
}

func NewSummaryHandler(svc *appsvcs.Services) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// Execute returns the dashboard of the caller's role.
//
//	@Summary		Order dashboard
//	@Description	Vendors get VendorSummaryResponse; suppliers get SupplierSummaryResponse.
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	VendorSummaryResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/orders/summary [get]
func (h *SummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if id.IsSupplier() {
		s, err := h.svc.Order.SupplierSummary(r.Context(), id.AccountID)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, SupplierSummaryResponse{
			TodayOrders:  s.TodayOrders,
			NewOrders:    s.NewOrders,
			WeeklySales:  s.WeeklySales,
			ProductCount: s.ProductCount,
		})
		return
	}

	s, err := h.svc.Order.VendorSummary(r.Context(), id.AccountID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, VendorSummaryResponse{
		TodayOrders:    s.TodayOrders,
		DeliveredToday: s.DeliveredToday,
		PendingToday:   s.PendingToday,
		SpentToday:     s.SpentToday,
		CurrentOrders:  s.CurrentOrders,
		HistoryOrders:  s.HistoryOrders,
	})
}

// CustomersHandler handles GET /orders/customers.
type CustomersHandler struct {
	svc *appsvcs.Services
}

func NewCustomersHandler(svc *appsvcs.Services) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// Execute lists the vendors that ordered from the calling supplier.
//
//	@Summary	Supplier customers
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	CustomerListResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/orders/customers [get]
func (h *CustomersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	supplierID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	customers, err := h.svc.Order.Customers(r.Context(), supplierID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	resp := CustomerListResponse{Customers: make([]CustomerResponse, len(customers))}
	for i, c := range customers {
		resp.Customers[i] = CustomerResponse{
			VendorID:      c.VendorID,
			OrderCount:    c.OrderCount,
			TotalBusiness: c.TotalBusiness,
			LastOrderAt:   c.LastOrderAt,
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
