package handlers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/cart/domain/models"
)

// AddCartItemRequest is the request body for POST /cart/items.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  int       `json:"quantity" validate:"omitempty,gte=1" example:"1"`
} // @name AddCartItemRequest

// UpdateCartItemRequest is the request body for PUT /cart/items/{productID}.
// A quantity of zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" example:"3"`
} // @name UpdateCartItemRequest

// CartItemResponse is one cart line with its frozen product snapshot.
type CartItemResponse struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Quantity     int             `json:"quantity" example:"2"`
	Name         string          `json:"name" example:"Tomatoes"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"40"`
	Unit         string          `json:"unit" example:"kg"`
	Category     string          `json:"category" example:"Vegetables"`
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name" example:"Fresh Farms"`
	Stock        int             `json:"stock" example:"100"`
	Image        *string         `json:"image,omitempty"`
	Subtotal     decimal.Decimal `json:"subtotal" swaggertype:"string" example:"80"`
} // @name CartItemResponse

// CartResponse is the vendor's cart.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count" example:"1"`
	Total decimal.Decimal    `json:"total" swaggertype:"string" example:"80"`
} // @name CartResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid quantity"`
} // @name ErrorResponse

func toCartResponse(c models.Cart) CartResponse {
	out := CartResponse{
		Items: make([]CartItemResponse, len(c.Items)),
		Count: c.Count(),
		Total: c.Total(),
	}
	for i, it := range c.Items {
		out.Items[i] = CartItemResponse{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			Name:         it.Name,
			Price:        it.Price,
			Unit:         it.Unit,
			Category:     it.Category,
			SupplierID:   it.SupplierID,
			SupplierName: it.SupplierName,
			Stock:        it.Stock,
			Image:        it.Image,
			Subtotal:     it.Subtotal(),
		}
	}
	return out
}
