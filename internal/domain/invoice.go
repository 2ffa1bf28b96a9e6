package domain

import "time"

// Invoice is an amount billed to a company. ID is assigned by the store;
// Paid, AddDate and PaidDate take store defaults on creation.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceSummary is the list projection of an invoice.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is an invoice with its owning company inlined.
type InvoiceDetail struct {
	ID       int64      `json:"id"`
	Company  Company    `json:"company"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// ValidateAmount rejects amounts that are not strictly positive.
func ValidateAmount(amt float64) error {
	if amt <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
