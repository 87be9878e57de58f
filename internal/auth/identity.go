package auth

// ExternalIdentity represents a normalized external authentication identity
// asserted by an OAuth token issuer. It contains facts only, no decisions.
type ExternalIdentity struct {
	Provider      Provider // "google" or "apple"
	Subject       string   // provider-scoped unique user identifier (sub)
	Email         string   // may be empty on Apple repeat sign-ins
	EmailVerified bool     // whether provider asserts email ownership
	FullName      string   // optional display name from the provider
	PictureURL    string   // optional profile picture from the provider
}
