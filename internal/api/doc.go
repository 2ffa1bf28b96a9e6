// Package api handles incoming HTTP requests, request validation and
// response formatting for companies, industries and invoices. It adapts
// HTTP to the service layer; every failure leaves through HandleAPIError,
// which maps tagged errors to a status code and a client-safe message.
package api
