package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// slotCookieName names the cookie that identifies a browser's storage slot.
	slotCookieName = "tokenview_client"
	// slotCookieMaxAge keeps the slot alive until the browser drops it.
	// Browsers cap cookie lifetime at 400 days.
	slotCookieMaxAge = 400 * 24 * time.Hour
)

// readSlot returns the browser's storage slot, or "" if it has none.
func readSlot(r *http.Request) string {
	cookie, err := r.Cookie(slotCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}

// ensureSlot returns the browser's storage slot, assigning a new one and
// setting its cookie when the request carries none.
func ensureSlot(w http.ResponseWriter, r *http.Request, secure bool) string {
	if slot := readSlot(r); slot != "" {
		return slot
	}

	slot := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     slotCookieName,
		Value:    slot,
		Path:     "/",
		MaxAge:   int(slotCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
	return slot
}
