package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/phrazzld/biztime-api/internal/service"
)

// IndustryHandler serves the /industries routes.
type IndustryHandler struct {
	industries service.IndustryService
	logger     *slog.Logger
}

// NewIndustryHandler creates an IndustryHandler.
func NewIndustryHandler(industries service.IndustryService, logger *slog.Logger) *IndustryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndustryHandler{
		industries: industries,
		logger:     logger.With(slog.String("component", "industry_handler")),
	}
}

// ListIndustries handles GET /industries.
func (h *IndustryHandler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	list, err := h.industries.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list industries")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, industriesToResponse(list))
}

// CreateIndustry handles POST /industries.
func (h *IndustryHandler) CreateIndustry(w http.ResponseWriter, r *http.Request) {
	var req CreateIndustryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	industry, err := h.industries.Create(r.Context(), req.Code, req.Industry)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create industry")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, IndustryEnvelope{Industry: industryToResponse(industry)})
}

// AssociateCompany handles POST /industries/{code}, linking the company named
// in the body to the industry in the path.
func (h *IndustryHandler) AssociateCompany(w http.ResponseWriter, r *http.Request) {
	industryCode := getPathCode(r, "code")

	var req AssociateIndustryRequest
	fields, err := shared.DecodeJSONFields(r, &req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if fields.Has("code") {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("rejected association body carrying code", slog.String("industry_code", industryCode))
		HandleAPIError(w, r, ErrNotAllowed, "")
		return
	}
	if strings.TrimSpace(req.CompanyCode) == "" {
		HandleAPIError(w, r, ErrCompanyCodeRequired, "")
		return
	}

	assoc, err := h.industries.Associate(r.Context(), industryCode, req.CompanyCode)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to associate company")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AssociationEnvelope{
		Association: AssociationResponse{
			CompanyCode:  assoc.CompanyCode,
			IndustryCode: assoc.IndustryCode,
		},
	})
}
