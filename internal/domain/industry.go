package domain

import (
	"strings"

	"github.com/phrazzld/biztime-api/internal/slug"
)

// Industry is a sector companies can be associated with.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryWithCompanies is an industry and the codes of every company
// associated with it, in association order.
type IndustryWithCompanies struct {
	Industry
	CompanyCodes []string `json:"company_codes"`
}

// Association links one company to one industry.
type Association struct {
	CompanyCode  string `json:"company_code"`
	IndustryCode string `json:"industry_code"`
}

// NewIndustry builds an industry, normalising the caller supplied code.
func NewIndustry(code, name string) (*Industry, error) {
	i := &Industry{
		Code:     slug.Make(code),
		Industry: strings.TrimSpace(name),
	}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

// Validate checks that the industry can be persisted.
func (i *Industry) Validate() error {
	if i.Code == "" {
		return NewValidationError("code", "must contain at least one letter or digit", ErrEmptyCode)
	}
	if i.Industry == "" {
		return ErrEmptyIndustryName
	}
	return nil
}
