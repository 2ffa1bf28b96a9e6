// Package domain contains the business entities of the invoicing API
// (companies, industries, invoices and the company/industry association),
// their validation rules, and the fold that turns flat join rows into
// nested per-entity views.
package domain
