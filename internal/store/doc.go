// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying database from the services,
// so business rules stay independent of SQL and driver details.
//
// Implementations report missing rows with ErrNotFound (or one of the
// entity-specific variants), unique violations with ErrDuplicate, and
// constraint violations with ErrInvalidEntity.
package store
