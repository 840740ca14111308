package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketplace/core/internal/domain/entities"
)

// SellerIDHeader carries the claimed seller identity when the request body
// does not. The body takes precedence.
const SellerIDHeader = "x-seller-id"

// ErrorResponse is the JSON payload for every failure mode: a single
// human-readable error string.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON payload for confirmation-only responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindFields decodes the request body into a raw field map. A missing or
// empty body yields an empty map, which matters for DELETE where the claimed
// seller may arrive via header instead.
func bindFields(c echo.Context) (map[string]any, error) {
	fields := map[string]any{}
	body := c.Request().Body
	if body == nil {
		return fields, nil
	}
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return fields, nil
}

// claimedSeller extracts the caller's claimed seller identity, preferring
// the body sellerId over the x-seller-id header.
func claimedSeller(c echo.Context, fields map[string]any) entities.Principal {
	if s, ok := fields["sellerId"].(string); ok && s != "" {
		return entities.Principal{SellerID: s}
	}
	return entities.Principal{SellerID: c.Request().Header.Get(SellerIDHeader)}
}

func isNotFound(err error) bool {
	return errors.Is(err, entities.ErrProductNotFound) || errors.Is(err, entities.ErrOrderNotFound)
}

func isForbidden(err error) bool {
	return errors.Is(err, entities.ErrSellerMismatch)
}

// translateError maps domain errors onto HTTP statuses. Anything unexpected
// is an opaque 500; storage failures never leak file details to the caller.
func translateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
	case errors.Is(err, entities.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
	case errors.Is(err, entities.ErrSellerMismatch):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "seller is not the owner of this product"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
