package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/biztime-api/internal/redact"
)

// Environment variables consulted by this package.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	EnvDatabaseURL   = "DATABASE_URL"
	EnvBiztimeTestDB = "BIZTIME_TEST_DB_URL"
	EnvBiztimeDBURL  = "BIZTIME_DATABASE_URL"
)

// TestDatabaseEnvVars lists, in priority order, where a test database URL
// may come from.
var TestDatabaseEnvVars = []string{EnvDatabaseURL, EnvBiztimeTestDB, EnvBiztimeDBURL}

// IsCI reports whether the process runs under a known CI provider.
func IsCI() bool {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty variable in
// envVars, or defaultValue when none is set. The chosen variable is logged
// with its value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for _, name := range envVars {
		if val := os.Getenv(name); val != "" {
			if logger != nil {
				logger.Debug("resolved environment variable",
					"var", name,
					"value", redact.String(val))
			}
			return val
		}
	}
	return defaultValue
}

// TestDatabaseURL returns the URL of the database integration tests run
// against, or "" when none is configured.
func TestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks(TestDatabaseEnvVars, "", logger)
}
