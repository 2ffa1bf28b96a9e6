package domain

import (
	"strings"

	"github.com/phrazzld/biztime-api/internal/slug"
)

// Company is a business that can be billed through invoices and belongs to
// any number of industries. Code is the URL-safe primary key and never
// changes once assigned.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanySummary is the list projection of a company.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company together with the codes of its industries and
// the ids of its invoices.
type CompanyDetail struct {
	Company
	Industries []string `json:"industries"`
	Invoices   []int64  `json:"invoices"`
}

// NewCompany builds a company whose code is derived from name.
func NewCompany(name string, description *string) (*Company, error) {
	c := &Company{
		Code:        slug.Make(name),
		Name:        strings.TrimSpace(name),
		Description: description,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the company can be persisted.
func (c *Company) Validate() error {
	if c.Name == "" {
		return ErrEmptyCompanyName
	}
	if c.Code == "" {
		return NewValidationError("name", "must contain at least one letter or digit", ErrEmptyCode)
	}
	return nil
}

// CompanyUpdate carries the mutable fields of a company. A nil Name keeps
// the stored name; Description is always written.
type CompanyUpdate struct {
	Code        string  `json:"code"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description"`
}

// Normalize trims a provided name and rejects one that is blank.
func (u *CompanyUpdate) Normalize() error {
	if u.Name == nil {
		return nil
	}
	name := strings.TrimSpace(*u.Name)
	if name == "" {
		return ErrEmptyCompanyName
	}
	u.Name = &name
	return nil
}
