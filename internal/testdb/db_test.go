package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	t.Run("DATABASE_URL wins", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://a")
		t.Setenv("BIZTIME_TEST_DB_URL", "postgres://b")
		assert.Equal(t, "postgres://a", GetTestDatabaseURL())
		assert.True(t, IsIntegrationTestEnvironment())
	})

	t.Run("falls back to BIZTIME_TEST_DB_URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("BIZTIME_TEST_DB_URL", "postgres://b")
		assert.Equal(t, "postgres://b", GetTestDatabaseURL())
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("BIZTIME_TEST_DB_URL", "")
		t.Setenv("BIZTIME_DATABASE_URL", "")
		assert.Empty(t, GetTestDatabaseURL())
		assert.False(t, IsIntegrationTestEnvironment())
	})
}
