package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
)

// getPathCode extracts a code path parameter. chi never matches an empty
// segment, so a missing value means the route was wired incorrectly.
func getPathCode(r *http.Request, paramName string) string {
	return chi.URLParam(r, paramName)
}

// getPathInvoiceID parses the invoice id path parameter. Invoice ids are
// positive int4 values written as plain digits; anything else cannot name an
// invoice and is reported as not found.
func getPathInvoiceID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %w %q", store.ErrInvoiceNotFound, domain.ErrInvalidID, raw)
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w %q", store.ErrInvoiceNotFound, domain.ErrInvalidID, raw)
	}
	return id, nil
}
