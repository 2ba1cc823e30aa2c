package handlers

import (
	"net/http"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	pkgvalidator "github.com/sevakart/marketplace/pkg/validator"
	appsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
)

// PostProductHandler handles POST /products.
type PostProductHandler struct {
	svc *appsvcs.Services
}

func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a product owned by the calling supplier.
//
//	@Summary		Create product
//	@Description	Creates a product for the authenticated supplier. category is {"existing": name} or {"new": name}.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProductRequest	true	"Product"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	supplierID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}

	p, err := h.svc.Product.Create(r.Context(), supplierID, req.toInput())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toProductResponse(p))
}

func (req *ProductRequest) toInput() appsvcs.ProductInput {
	return appsvcs.ProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Unit:         req.Unit,
		Category:     req.Category.toChoice(),
		SupplierName: req.SupplierName,
		Stock:        req.Stock,
		Image:        req.Image,
	}
}
