// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/httpx"
	cartdomain "github.com/sevakart/marketplace/services/cart/domain"
	catalogdomain "github.com/sevakart/marketplace/services/catalog/domain"
	inventorydomain "github.com/sevakart/marketplace/services/inventory/domain"
	orderdomain "github.com/sevakart/marketplace/services/order/domain"
)

var production atomic.Bool

// SetProduction hides the message of 5xx responses when enabled.
func SetProduction(enabled bool) {
	production.Store(enabled)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrIdentityNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, auth.ErrForbiddenRole):
		return http.StatusForbidden // 403

	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound),
		errors.Is(err, inventorydomain.ErrInventoryItemNotFound):
		return http.StatusNotFound // 404

	case errors.Is(err, catalogdomain.ErrProductAlreadyExists),
		errors.Is(err, orderdomain.ErrInvalidTransition),
		errors.Is(err, orderdomain.ErrConcurrentUpdate),
		errors.Is(err, inventorydomain.ErrReorderNotNeeded):
		return http.StatusConflict // 409

	case errors.Is(err, catalogdomain.ErrInvalidProduct),
		errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrEmptyCart),
		errors.Is(err, orderdomain.ErrInvalidOrder),
		errors.Is(err, inventorydomain.ErrInvalidInventoryItem):
		return http.StatusUnprocessableEntity // 422

	default:
		return http.StatusInternalServerError // 500
	}
}
