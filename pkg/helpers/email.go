package helpers

import "strings"

// NormalizeEmail lowercases the domain part of an email address and trims
// surrounding whitespace. The local part is kept as-is; uniqueness checks
// compare the whole address case-insensitively at the storage layer.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
