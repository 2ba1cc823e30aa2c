package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/inventory/domain/models"
)

// AddItemRequest is the request body for POST /inventory.
type AddItemRequest struct {
	Name  string `json:"name" validate:"required,max=255" example:"Onion"`
	Stock int    `json:"current_stock" validate:"gte=0" example:"12"`
	Unit  string `json:"unit" validate:"max=20" example:"kg"`
} // @name AddInventoryItemRequest

// UpdateStockRequest is the request body for PUT /inventory/{id}.
type UpdateStockRequest struct {
	Stock int `json:"current_stock" validate:"gte=0" example:"3"`
} // @name UpdateStockRequest

// ReorderRequest is the optional request body for POST /inventory/{id}/reorder.
type ReorderRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=10000" example:"5"`
} // @name InventoryReorderRequest

// ItemResponse is the JSON representation of an inventory item.
type ItemResponse struct {
	ID           uuid.UUID `json:"id"            example:"123e4567-e89b-12d3-a456-426614174000"`
	Name         string    `json:"name"          example:"Onion"`
	CurrentStock int       `json:"current_stock" example:"3"`
	Unit         string    `json:"unit"          example:"kg"`
	Status       string    `json:"status"        example:"low"`
	CreatedAt    time.Time `json:"created_at"    example:"2024-01-15T10:30:00Z"`
	UpdatedAt    time.Time `json:"updated_at"    example:"2024-01-15T10:30:00Z"`
} // @name InventoryItemResponse

// ItemListResponse wraps the vendor's items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
} // @name InventoryItemListResponse

// SummaryResponse is the inventory dashboard.
type SummaryResponse struct {
	ItemCount     int             `json:"item_count"     example:"14"`
	LowCount      int             `json:"low_count"      example:"3"`
	CriticalCount int             `json:"critical_count" example:"1"`
	TotalValue    decimal.Decimal `json:"total_value"    swaggertype:"string" example:"5230"`
} // @name InventorySummaryResponse

// ReorderResponse reports the order a reorder placed or updated.
type ReorderResponse struct {
	OrderID uuid.UUID       `json:"order_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Updated bool            `json:"updated"  example:"false"`
	Total   decimal.Decimal `json:"total"    swaggertype:"string" example:"200"`
	Status  string          `json:"status"   example:"ordered"`
} // @name InventoryReorderResponse

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"inventory item not found"`
} // @name ErrorResponse

func toItemResponse(it *models.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		CurrentStock: it.CurrentStock,
		Unit:         it.Unit,
		Status:       it.Status.String(),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
