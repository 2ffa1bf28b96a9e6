package api

import (
	"time"

	"github.com/phrazzld/biztime-api/internal/domain"
)

// CreateCompanyRequest is the body of POST /companies.
type CreateCompanyRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest is the body of PUT /companies/{code}. A missing name
// keeps the stored one.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateIndustryRequest is the body of POST /industries.
type CreateIndustryRequest struct {
	Code     string `json:"code"     validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

// AssociateIndustryRequest is the body of POST /industries/{code}.
type AssociateIndustryRequest struct {
	CompanyCode string `json:"company_code"`
}

// CreateInvoiceRequest is the body of POST /invoices.
type CreateInvoiceRequest struct {
	CompCode string   `json:"comp_code" validate:"required"`
	Amt      *float64 `json:"amt"       validate:"required,gt=0"`
}

// UpdateInvoiceRequest is the body of PUT /invoices/{id}.
type UpdateInvoiceRequest struct {
	Amt *float64 `json:"amt" validate:"required,gt=0"`
}

// CompanyResponse is a company without its relations.
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetailResponse is a company with its industry codes and invoice ids.
type CompanyDetailResponse struct {
	CompanyResponse
	Industries []string `json:"industries"`
	Invoices   []int64  `json:"invoices"`
}

// CompanySummaryResponse is one entry of the company list.
type CompanySummaryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompaniesResponse wraps the company list.
type CompaniesResponse struct {
	Companies []CompanySummaryResponse `json:"companies"`
}

// CompanyEnvelope wraps a single company.
type CompanyEnvelope struct {
	Company interface{} `json:"company"`
}

// IndustryResponse is an industry without its companies.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryWithCompaniesResponse is one entry of the industry list.
type IndustryWithCompaniesResponse struct {
	Code         string   `json:"code"`
	Industry     string   `json:"industry"`
	CompanyCodes []string `json:"company_codes"`
}

// IndustriesResponse wraps the industry list.
type IndustriesResponse struct {
	Industries []IndustryWithCompaniesResponse `json:"industries"`
}

// IndustryEnvelope wraps a single industry.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// AssociationResponse is a company/industry pair.
type AssociationResponse struct {
	CompanyCode  string `json:"company_code"`
	IndustryCode string `json:"industry_code"`
}

// AssociationEnvelope wraps an association.
type AssociationEnvelope struct {
	Association AssociationResponse `json:"association"`
}

// InvoiceResponse is a full invoice row.
type InvoiceResponse struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceDetailResponse is an invoice with its company inlined.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Company  CompanyResponse `json:"company"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceSummaryResponse is one entry of the invoice list.
type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoicesResponse wraps the invoice list.
type InvoicesResponse struct {
	Invoices []InvoiceSummaryResponse `json:"invoices"`
}

// InvoiceEnvelope wraps a single invoice.
type InvoiceEnvelope struct {
	Invoice interface{} `json:"invoice"`
}

func companyToResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{Code: c.Code, Name: c.Name, Description: c.Description}
}

func companyDetailToResponse(c *domain.CompanyDetail) CompanyDetailResponse {
	industries := c.Industries
	if industries == nil {
		industries = []string{}
	}
	invoices := c.Invoices
	if invoices == nil {
		invoices = []int64{}
	}
	return CompanyDetailResponse{
		CompanyResponse: companyToResponse(&c.Company),
		Industries:      industries,
		Invoices:        invoices,
	}
}

func industryToResponse(i *domain.Industry) IndustryResponse {
	return IndustryResponse{Code: i.Code, Industry: i.Industry}
}

func industriesToResponse(list []domain.IndustryWithCompanies) IndustriesResponse {
	out := make([]IndustryWithCompaniesResponse, 0, len(list))
	for _, i := range list {
		codes := i.CompanyCodes
		if codes == nil {
			codes = []string{}
		}
		out = append(out, IndustryWithCompaniesResponse{
			Code:         i.Code,
			Industry:     i.Industry.Industry,
			CompanyCodes: codes,
		})
	}
	return IndustriesResponse{Industries: out}
}

func invoiceToResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func invoiceDetailToResponse(inv *domain.InvoiceDetail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       inv.ID,
		Company:  companyToResponse(&inv.Company),
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
