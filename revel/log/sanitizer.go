package log

import "strings"

// controlCharReplacer escapes control characters that can be used for log
// injection (CWE-117). Newlines, carriage returns, and tabs in log messages
// can forge fake log entries, mislead incident response, or inject false
// audit trail entries.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// SanitizeString escapes control characters in a single string value.
func SanitizeString(s string) string {
	return controlCharReplacer.Replace(s)
}

// SanitizeFields escapes control characters in all string-typed field values.
// Non-string values are passed through unchanged.
func SanitizeFields(fields []Field) []Field {
	sanitized := make([]Field, len(fields))
	for i, f := range fields {
		if s, ok := f.Value.(string); ok {
			f.Value = SanitizeString(s)
		}

		sanitized[i] = f
	}

	return sanitized
}
