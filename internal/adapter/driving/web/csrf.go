package web

import (
	"net/http"
)

// The Google sign-in widget protects its callback with a double-submit token:
// it sets a cookie on our origin and posts the same value as a form field.
const (
	gisCSRFCookieName = "g_csrf_token"
	gisCSRFFormField  = "g_csrf_token"
)

// validateCSRF checks that the widget's CSRF form field matches its cookie.
// Returns true if the tokens match and are non-empty. The form must already
// be parsed.
func validateCSRF(r *http.Request) bool {
	cookie, err := r.Cookie(gisCSRFCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	token := r.PostFormValue(gisCSRFFormField)

	return token != "" && token == cookie.Value
}
