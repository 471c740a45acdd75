package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web GUI routes on the provided mux.
// The sign-in callback is wrapped by callbackLimit (e.g. a rate limiter);
// pass nil to register it bare.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler, callbackLimit func(http.Handler) http.Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	var callback http.Handler = http.HandlerFunc(h.LoginCallback)
	if callbackLimit != nil {
		callback = callbackLimit(callback)
	}

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Login)
	mux.Handle("POST "+CallbackPath, callback)
	mux.HandleFunc("GET "+DashboardPath, h.Dashboard)
}
