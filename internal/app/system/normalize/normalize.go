// Package normalize folds user-supplied identity and query values into the
// canonical forms stored and compared throughout the app. Handlers call these
// at the request boundary so stores never see raw input.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// AuthMethod lowercases and trims an auth method value.
func AuthMethod(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a suggestion status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a free-text query value, preserving case. Search matching
// downstream is case-insensitive, so case is kept for display.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Category trims a category filter, mapping the "all" sentinel (any case) to
// empty, which downstream treats as no filter.
func Category(s string) string {
	v := strings.TrimSpace(s)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}
