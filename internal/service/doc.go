// Package service contains the application use cases for companies,
// industries and invoices. Services sit between the HTTP handlers and the
// store interfaces: they build and validate domain values, call a single
// store method per operation and emit a change event after every
// successful mutation.
//
// Services receive their dependencies through constructor injection and
// never depend on a concrete database implementation.
//
// Error handling:
//   - Expected conditions (store.ErrNotFound, store.ErrDuplicate,
//     store.ErrInvalidEntity, domain.ErrValidation) are returned unchanged
//     so the API layer can match them with errors.Is.
//   - Anything else is wrapped in a ServiceError naming the operation.
//   - Event emission failures are logged and never returned.
package service
