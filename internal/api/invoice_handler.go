package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/service"
)

// InvoiceHandler serves the /invoices routes.
type InvoiceHandler struct {
	invoices service.InvoiceService
	logger   *slog.Logger
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(invoices service.InvoiceService, logger *slog.Logger) *InvoiceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceHandler{
		invoices: invoices,
		logger:   logger.With(slog.String("component", "invoice_handler")),
	}
}

// ListInvoices handles GET /invoices.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	list, err := h.invoices.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list invoices")
		return
	}

	out := make([]InvoiceSummaryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, InvoiceSummaryResponse{ID: inv.ID, CompCode: inv.CompCode})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, InvoicesResponse{Invoices: out})
}

// GetInvoice handles GET /invoices/{id}.
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInvoiceID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	invoice, err := h.invoices.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get invoice")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InvoiceEnvelope{Invoice: invoiceDetailToResponse(invoice)})
}

// CreateInvoice handles POST /invoices.
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	invoice, err := h.invoices.Create(r.Context(), req.CompCode, *req.Amt)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create invoice")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InvoiceEnvelope{Invoice: invoiceToResponse(invoice)})
}

// UpdateInvoice handles PUT /invoices/{id}. Only the amount can change.
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInvoiceID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateInvoiceRequest
	fields, err := shared.DecodeJSONFields(r, &req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if fields.Has("comp_code") {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("rejected invoice update carrying comp_code", slog.Int64("invoice_id", id))
		HandleAPIError(w, r, ErrNotAllowed, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	invoice, err := h.invoices.UpdateAmount(r.Context(), id, *req.Amt)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update invoice")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InvoiceEnvelope{Invoice: invoiceToResponse(invoice)})
}

// DeleteInvoice handles DELETE /invoices/{id}.
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInvoiceID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.invoices.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete invoice")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{Status: "deleted"})
}
