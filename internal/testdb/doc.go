// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Tests using it carry the integration build tag and are skipped
// when no database URL is configured.
//
// Typical use:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.SetupTestDatabaseSchema(t, db)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		companies := postgres.NewPostgresCompanyStore(tx, nil)
//		...
//	})
//
// Every WithTx callback runs in a transaction that is rolled back afterwards,
// so tests do not observe each other's rows.
package testdb
