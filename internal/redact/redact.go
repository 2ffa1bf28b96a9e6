// Package redact strips sensitive fragments from error text before it is
// logged: database credentials, SQL statements, key/value details from
// PostgreSQL constraint errors, file paths and host names.
package redact

import "regexp"

// Placeholders substituted for each class of sensitive text.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedDetailPlaceholder     = "[REDACTED_DETAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Order matters: connection strings go before hosts, SQL before paths.
var rules = []rule{
	{
		regexp.MustCompile(`(?i)(postgres(?:ql)?|pgx)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)(\s*[=:]\s*)['"]?[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},
	{
		// PostgreSQL puts offending values in the DETAIL, e.g.
		// Key (code)=(apple-inc) already exists.
		regexp.MustCompile(`Key \([^)]*\)=\([^)]*\)[^.;]*`),
		RedactedDetailPlaceholder,
	},
	{
		regexp.MustCompile(`(?is)\b(SELECT|INSERT\s+INTO|UPDATE|DELETE\s+FROM)\b.*?(?:;|$)`),
		RedactedSQLPlaceholder,
	},
	{
		regexp.MustCompile(`(/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		RedactedHostPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	out := input
	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.placeholder)
	}
	return out
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
