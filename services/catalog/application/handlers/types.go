package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/catalog/domain/models"
)

// CategoryChoiceRequest selects a category. Exactly one of the fields is set.
type CategoryChoiceRequest struct {
	Existing string `json:"existing,omitempty" validate:"required_without=New,excluded_with=New,max=100" example:"Vegetables"`
	New      string `json:"new,omitempty" validate:"required_without=Existing,max=100" example:"Pickles"`
} // @name CategoryChoiceRequest

func (c CategoryChoiceRequest) toChoice() models.CategoryChoice {
	if c.New != "" {
		return models.NewCategory(c.New)
	}
	return models.ExistingCategory(c.Existing)
}

// ProductRequest is the request body for POST /products and PUT /products/{id}.
type ProductRequest struct {
	Name         string                `json:"name" validate:"required,max=255" example:"Tomatoes"`
	Price        decimal.Decimal       `json:"price" swaggertype:"string" example:"40.00"`
	Unit         string                `json:"unit" validate:"required,oneof=kg L piece packet" example:"kg"`
	Category     CategoryChoiceRequest `json:"category"`
	SupplierName string                `json:"supplier_name" validate:"max=255" example:"Fresh Farms"`
	Stock        int                   `json:"stock" validate:"gte=0" example:"100"`
	Image        *string               `json:"image,omitempty" validate:"omitempty,url" example:"https://cdn.example.com/tomatoes.png"`
} // @name ProductRequest

// ProductResponse is the JSON representation of a catalog product.
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"            example:"123e4567-e89b-12d3-a456-426614174000"`
	Name         string          `json:"name"          example:"Tomatoes"`
	Price        decimal.Decimal `json:"price"         swaggertype:"string" example:"40"`
	Unit         string          `json:"unit"          example:"kg"`
	Category     string          `json:"category"      example:"Vegetables"`
	SupplierID   uuid.UUID       `json:"supplier_id"   example:"550e8400-e29b-41d4-a716-446655440000"`
	SupplierName string          `json:"supplier_name" example:"Fresh Farms"`
	Stock        int             `json:"stock"         example:"100"`
	Image        *string         `json:"image,omitempty"`
	CreatedAt    time.Time       `json:"created_at"    example:"2024-01-15T10:30:00Z"`
	UpdatedAt    time.Time       `json:"updated_at"    example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// ProductListResponse wraps a list of products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
} // @name ProductListResponse

// CategoriesResponse lists the category vocabulary with "all" first.
type CategoriesResponse struct {
	Categories []string `json:"categories" example:"all,Vegetables,Spices"`
} // @name CategoriesResponse

// AddCategoryRequest is the request body for POST /categories.
type AddCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Pickles"`
} // @name AddCategoryRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name.String(),
		Price:        p.Price,
		Unit:         p.Unit.String(),
		Category:     p.Category,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		Stock:        p.Stock,
		Image:        p.Image,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductList(ps []*models.Product) ProductListResponse {
	out := ProductListResponse{Products: make([]ProductResponse, len(ps))}
	for i, p := range ps {
		out.Products[i] = toProductResponse(p)
	}
	return out
}
