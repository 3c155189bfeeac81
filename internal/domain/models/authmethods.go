package models

// AuthMethod represents how an account was established.
type AuthMethod struct {
	Value string // stored in the database
	Label string // display label
}

// AllAuthMethods contains the auth methods this app recognizes. "admin" is
// the synthetic method attached to privileged allow-list sessions; it never
// appears on persisted accounts in the normal flow.
var AllAuthMethods = []AuthMethod{
	{Value: "email", Label: "Email"},
	{Value: "google", Label: "Google"},
	{Value: "admin", Label: "Privileged"},
}

// IsValidAuthMethod checks if a value is a recognized auth method.
func IsValidAuthMethod(value string) bool {
	for _, m := range AllAuthMethods {
		if m.Value == value {
			return true
		}
	}
	return false
}

const (
	AuthMethodEmail  = "email"
	AuthMethodGoogle = "google"
	AuthMethodAdmin  = "admin"
)
