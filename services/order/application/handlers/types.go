package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/order/domain/models"
	domainsvcs "github.com/sevakart/marketplace/services/order/domain/services"
)

// LineItemRequest is one explicit order line.
type LineItemRequest struct {
	Name       string          `json:"name" validate:"required,max=255" example:"Onion"`
	Qty        int             `json:"qty" validate:"gte=1" example:"2"`
	Price      decimal.Decimal `json:"price" validate:"gte=0" swaggertype:"string" example:"40.00"`
	SupplierID *uuid.UUID      `json:"supplier_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name LineItemRequest

// PlaceOrderRequest is the request body for POST /orders.
type PlaceOrderRequest struct {
	Items  []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	Status string            `json:"status,omitempty" validate:"omitempty,oneof=ordered shipped delivered" example:"ordered"`
} // @name PlaceOrderRequest

func (r PlaceOrderRequest) lines() []models.LineItem {
	lines := make([]models.LineItem, len(r.Items))
	for i, it := range r.Items {
		lines[i] = models.LineItem{Name: it.Name, Qty: it.Qty, Price: it.Price}
		if it.SupplierID != nil {
			lines[i].SupplierID = *it.SupplierID
		}
	}
	return lines
}

// LineItemResponse is one order line.
type LineItemResponse struct {
	Name       string          `json:"name"     example:"Onion"`
	Qty        int             `json:"qty"      example:"2"`
	Price      decimal.Decimal `json:"price"    swaggertype:"string" example:"40"`
	Subtotal   decimal.Decimal `json:"subtotal" swaggertype:"string" example:"80"`
	SupplierID *uuid.UUID      `json:"supplier_id,omitempty"`
} // @name LineItemResponse

// OrderResponse is the JSON representation of an order. In a supplier's
// view Items holds only that supplier's lines and Subtotal is their sum;
// Total stays the whole order's total.
type OrderResponse struct {
	ID        uuid.UUID          `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	VendorID  uuid.UUID          `json:"vendor_id"  example:"11111111-1111-1111-1111-111111111111"`
	Items     []LineItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"      swaggertype:"string" example:"180"`
	Subtotal  *decimal.Decimal   `json:"subtotal,omitempty" swaggertype:"string" example:"80"`
	Status    string             `json:"status"     example:"ordered"`
	Supplier  string             `json:"supplier"   example:"multiple"`
	Version   int                `json:"version"    example:"1"`
	CreatedAt time.Time          `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time          `json:"updated_at" example:"2024-01-15T10:30:00Z"`
} // @name OrderResponse

// OrderListResponse wraps a list of orders, newest first.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
} // @name OrderListResponse

// VendorSummaryResponse is the vendor dashboard.
type VendorSummaryResponse struct {
	TodayOrders    int             `json:"today_orders"    example:"3"`
	DeliveredToday int             `json:"delivered_today" example:"1"`
	PendingToday   int             `json:"pending_today"   example:"2"`
	SpentToday     decimal.Decimal `json:"spent_today"     swaggertype:"string" example:"540"`
	CurrentOrders  int             `json:"current_orders"  example:"4"`
	HistoryOrders  int             `json:"history_orders"  example:"12"`
} // @name VendorSummaryResponse

// SupplierSummaryResponse is the supplier dashboard.
type SupplierSummaryResponse struct {
	TodayOrders  int             `json:"today_orders"  example:"5"`
	NewOrders    int             `json:"new_orders"    example:"2"`
	WeeklySales  decimal.Decimal `json:"weekly_sales"  swaggertype:"string" example:"12500"`
	ProductCount int             `json:"product_count" example:"18"`
} // @name SupplierSummaryResponse

// CustomerResponse is one vendor's business with the calling supplier.
type CustomerResponse struct {
	VendorID      uuid.UUID       `json:"vendor_id"      example:"11111111-1111-1111-1111-111111111111"`
	OrderCount    int             `json:"order_count"    example:"7"`
	TotalBusiness decimal.Decimal `json:"total_business" swaggertype:"string" example:"4200"`
	LastOrderAt   time.Time       `json:"last_order_at"  example:"2024-01-15T10:30:00Z"`
} // @name CustomerResponse

// CustomerListResponse lists customers by total business, highest first.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
} // @name CustomerListResponse

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"order not found"`
} // @name ErrorResponse

func toOrderResponse(o *models.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		VendorID:  o.VendorID,
		Items:     toLineResponses(o.Items),
		Total:     o.Total,
		Status:    o.Status.String(),
		Supplier:  o.Supplier,
		Version:   o.Version,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toSupplierOrderResponse(v domainsvcs.SupplierOrderView) OrderResponse {
	resp := toOrderResponse(v.Order)
	resp.Items = toLineResponses(v.Items)
	subtotal := v.Subtotal
	resp.Subtotal = &subtotal
	return resp
}

func toLineResponses(lines []models.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(lines))
	for i, l := range lines {
		out[i] = LineItemResponse{Name: l.Name, Qty: l.Qty, Price: l.Price, Subtotal: l.Subtotal()}
		if l.SupplierID != uuid.Nil {
			id := l.SupplierID
			out[i].SupplierID = &id
		}
	}
	return out
}
