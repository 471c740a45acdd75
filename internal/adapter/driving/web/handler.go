// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/tokenview/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/tokenview/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/tokenview/internal/application"
	"github.com/ericfisherdev/tokenview/internal/metrics"
)

// Route paths served by the web adapter.
const (
	LoginPath     = "/"
	CallbackPath  = "/login/callback"
	DashboardPath = "/dashboard"
)

// CopyConfirmDuration is how long the dashboard shows the "copied" state.
const CopyConfirmDuration = 2 * time.Second

// LoginFailedMessage is the blocking alert raised after a failed sign-in.
const LoginFailedMessage = "Login failed. Try again!"

// maxCallbackBody bounds the sign-in callback form.
const maxCallbackBody = 64 << 10

// Options configures the web Handler.
type Options struct {
	// ClientID is the Google OAuth client identifier for the sign-in widget.
	ClientID string
	// WelcomeMarkdown is rendered above the sign-in button.
	WelcomeMarkdown string
	// SecureCookies marks the slot cookie Secure (serve over HTTPS).
	SecureCookies bool
}

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	credSvc       *application.CredentialService
	clientID      string
	welcomeHTML   string
	secureCookies bool
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(credSvc *application.CredentialService, opts Options, logger *slog.Logger) *Handler {
	return &Handler{
		credSvc:       credSvc,
		clientID:      opts.ClientID,
		welcomeHTML:   RenderMarkdown(opts.WelcomeMarkdown),
		secureCookies: opts.SecureCookies,
		logger:        logger,
	}
}

// Login renders the sign-in screen.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "Sign in", pages.Login(h.toLoginViewModel(r, "")))
}

// LoginCallback receives the sign-in widget's form post. On success the
// credential is stored in the browser's slot and the browser is sent to the
// dashboard. On failure nothing is stored and the sign-in screen is shown
// again with a blocking alert.
func (h *Handler) LoginCallback(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCallbackBody)
	if err := r.ParseForm(); err != nil {
		h.loginFailed(w, r, "bad_form", err)
		return
	}

	if !validateCSRF(r) {
		h.loginFailed(w, r, "csrf", nil)
		return
	}

	credential := r.PostFormValue("credential")
	if credential == "" {
		h.loginFailed(w, r, "missing_credential", nil)
		return
	}

	slot := ensureSlot(w, r, h.secureCookies)
	if err := h.credSvc.Save(r.Context(), slot, credential); err != nil {
		if errors.Is(err, application.ErrEmptyCredential) {
			h.loginFailed(w, r, "missing_credential", err)
			return
		}
		metrics.LoginCallbacks.WithLabelValues("store_error").Inc()
		h.logger.Error("failed to store credential", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	metrics.LoginCallbacks.WithLabelValues("success").Inc()
	h.logger.Info("credential stored", "credential_len", len(credential))
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

// Dashboard renders the stored credential, or sends the browser back to the
// sign-in screen when nothing is stored for it.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	token, ok, err := h.credSvc.Load(r.Context(), readSlot(r))
	if err != nil {
		h.logger.Error("failed to load credential", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		metrics.DashboardViews.WithLabelValues("redirected").Inc()
		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		return
	}

	metrics.DashboardViews.WithLabelValues("shown").Inc()
	w.Header().Set("Cache-Control", "no-store")
	h.render(w, r, http.StatusOK, "Dashboard", pages.Dashboard(toDashboardViewModel(token)))
}

// loginFailed re-renders the sign-in screen with the failure alert. err may
// be nil when the reason alone explains the failure.
func (h *Handler) loginFailed(w http.ResponseWriter, r *http.Request, reason string, err error) {
	metrics.LoginCallbacks.WithLabelValues("rejected").Inc()
	metrics.LoginRejections.WithLabelValues(reason).Inc()
	if err != nil {
		h.logger.Warn("sign-in callback rejected", "reason", reason, "error", err)
	} else {
		h.logger.Warn("sign-in callback rejected", "reason", reason)
	}

	h.render(w, r, http.StatusBadRequest, "Sign in", pages.Login(h.toLoginViewModel(r, LoginFailedMessage)))
}

// render writes page inside the layout. Rendering is buffered so a template
// error still yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, page templ.Component) {
	var buf bytes.Buffer
	ctx := templ.WithChildren(r.Context(), page)
	if err := templates.Layout(title).Render(ctx, &buf); err != nil {
		h.logger.Error("failed to render page", "title", title, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
