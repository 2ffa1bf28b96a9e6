package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/service"
)

// CompanyHandler serves the /companies routes.
type CompanyHandler struct {
	companies service.CompanyService
	logger    *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(companies service.CompanyService, logger *slog.Logger) *CompanyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyHandler{
		companies: companies,
		logger:    logger.With(slog.String("component", "company_handler")),
	}
}

// ListCompanies handles GET /companies.
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	list, err := h.companies.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list companies")
		return
	}

	out := make([]CompanySummaryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CompanySummaryResponse{Code: c.Code, Name: c.Name})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CompaniesResponse{Companies: out})
}

// GetCompany handles GET /companies/{code}.
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	code := getPathCode(r, "code")

	company, err := h.companies.Get(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get company")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyEnvelope{Company: companyDetailToResponse(company)})
}

// CreateCompany handles POST /companies.
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCompanyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid company body", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	company, err := h.companies.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create company")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CompanyEnvelope{Company: companyToResponse(company)})
}

// UpdateCompany handles PUT /companies/{code}. The code itself is immutable.
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	code := getPathCode(r, "code")

	var req UpdateCompanyRequest
	fields, err := shared.DecodeJSONFields(r, &req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if fields.Has("code") {
		HandleAPIError(w, r, ErrNotAllowed, "")
		return
	}

	company, err := h.companies.Update(r.Context(), domain.CompanyUpdate{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update company")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyEnvelope{Company: companyToResponse(company)})
}

// DeleteCompany handles DELETE /companies/{code}.
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	code := getPathCode(r, "code")

	if err := h.companies.Delete(r.Context(), code); err != nil {
		HandleAPIError(w, r, err, "Failed to delete company")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{Status: "deleted"})
}
