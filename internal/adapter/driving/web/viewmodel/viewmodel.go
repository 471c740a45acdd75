// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// LoginViewModel holds presentation-ready data for the sign-in screen.
type LoginViewModel struct {
	// ClientID configures the Google sign-in widget.
	ClientID string
	// LoginURI is the absolute URL the widget posts its credential to.
	LoginURI string
	// WelcomeHTML is sanitized HTML rendered from the welcome markdown.
	WelcomeHTML string
	// FailureMessage is non-empty when the previous sign-in attempt failed.
	// The page raises it as a blocking alert.
	FailureMessage string
}

// DashboardViewModel holds presentation-ready data for the credential screen.
type DashboardViewModel struct {
	// Token is the stored credential, shown verbatim.
	Token string
	// CopyConfirmMillis is how long the "copied" state stays visible.
	CopyConfirmMillis int64
}
