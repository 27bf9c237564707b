// Package redact scrubs credentials and personal data out of strings before
// they reach logs. Database errors and token failures routinely echo DSNs,
// bearer tokens and email addresses; everything logged at error level in this
// service goes through Error or ErrorAttr first.
package redact

import (
	"log/slog"
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	KeyPlaceholder        = "[REDACTED_KEY]"
	TokenPlaceholder      = "[REDACTED_JWT]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; DSNs and bearer tokens come first so the broader
// key and path patterns never see half of a secret.
var rules = []rule{
	{
		regexp.MustCompile(`(?i)(postgres|postgresql|pgx|mysql|redis)://[^@\s]+@`),
		CredentialPlaceholder,
	},
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		TokenPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`),
		"Bearer " + KeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		CredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(secret|api[_-]?key|token)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		KeyPlaceholder,
	},
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		EmailPlaceholder,
	},
	{
		regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[\s\w,*()$.]+\b(FROM|INTO|SET)\b(?:[\s\w,*()=$'".]+)?`,
		),
		SQLPlaceholder,
	},
	{
		regexp.MustCompile(`(/[\w.-]+){3,}`),
		PathPlaceholder,
	},
}

// String redacts sensitive fragments from input.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error returns the redacted Error() text of err, or "" for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// ErrorAttr builds the conventional "error" log attribute with redaction applied.
func ErrorAttr(err error) slog.Attr {
	return slog.String("error", Error(err))
}
