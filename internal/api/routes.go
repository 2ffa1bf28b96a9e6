package api

import "github.com/go-chi/chi/v5"

// Handlers groups the resource handlers mounted by RegisterRoutes.
type Handlers struct {
	Companies  *CompanyHandler
	Industries *IndustryHandler
	Invoices   *InvoiceHandler
}

// RegisterRoutes mounts the resource routes on r and installs JSON
// responses for unmatched paths and methods.
func RegisterRoutes(r chi.Router, h Handlers) {
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", h.Companies.ListCompanies)
		r.Post("/", h.Companies.CreateCompany)
		r.Get("/{code}", h.Companies.GetCompany)
		r.Put("/{code}", h.Companies.UpdateCompany)
		r.Delete("/{code}", h.Companies.DeleteCompany)
	})

	r.Route("/industries", func(r chi.Router) {
		r.Get("/", h.Industries.ListIndustries)
		r.Post("/", h.Industries.CreateIndustry)
		r.Post("/{code}", h.Industries.AssociateCompany)
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.Invoices.ListInvoices)
		r.Post("/", h.Invoices.CreateInvoice)
		r.Get("/{id}", h.Invoices.GetInvoice)
		r.Put("/{id}", h.Invoices.UpdateInvoice)
		r.Delete("/{id}", h.Invoices.DeleteInvoice)
	})
}
