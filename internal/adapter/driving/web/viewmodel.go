package web

import (
	"net/http"

	vm "github.com/ericfisherdev/tokenview/internal/adapter/driving/web/viewmodel"
)

// toLoginViewModel builds the sign-in screen view model for r.
// failure is the alert text to raise, or empty on a plain page load.
func (h *Handler) toLoginViewModel(r *http.Request, failure string) vm.LoginViewModel {
	return vm.LoginViewModel{
		ClientID:       h.clientID,
		LoginURI:       callbackURL(r),
		WelcomeHTML:    h.welcomeHTML,
		FailureMessage: failure,
	}
}

// toDashboardViewModel builds the credential screen view model.
func toDashboardViewModel(token string) vm.DashboardViewModel {
	return vm.DashboardViewModel{
		Token:             token,
		CopyConfirmMillis: CopyConfirmDuration.Milliseconds(),
	}
}

// callbackURL returns the absolute URL of the sign-in callback on the host
// the request was addressed to. The widget requires an absolute login URI.
func callbackURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + CallbackPath
}
