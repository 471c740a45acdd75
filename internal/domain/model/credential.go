package model

import "time"

// GoogleTokenKey is the fixed storage key the sign-in callback writes the
// Google credential under and the dashboard reads it back from.
const GoogleTokenKey = "google_token"

// Credential is an opaque credential string held in a browser's storage slot.
// Slot identifies the browser (one per client cookie) and Key identifies the
// entry within that slot. Value is never parsed or validated.
type Credential struct {
	Slot     string
	Key      string
	Value    string
	StoredAt time.Time
}
