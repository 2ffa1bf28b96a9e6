// Package postgres provides PostgreSQL implementations of the store
// interfaces for companies, industries and invoices. Stores issue
// parameterized SQL through store.DBTX, classify driver errors by SQLSTATE
// (MapError) and never interpret rows beyond scanning them into domain types.
//
// The schema is kept as goose migrations embedded in the binary; see
// Migrate.
package postgres
