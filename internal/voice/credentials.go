package voice

import "strings"

// Credentials is the process-wide Vapi credential triple. Loaded once at
// startup and read-only afterwards.
//
// Key-usage rule:
// - PrivateKey authorizes phone calls, call listing/reads/deletion and
//   assistant reads/updates. It must never be sent to a browser.
// - PublicKey is the only key transmitted on web-call creation; the
//   private key still gates whether web calls are attempted at all.
type Credentials struct {
	PrivateKey  string
	PublicKey   string
	AssistantID string
}

// placeholderValues are the sentinel strings shipped in .env examples.
// A deployment that still carries them is treated as unconfigured.
var placeholderValues = []string{
	"your_vapi_private_key",
	"your_vapi_public_key",
	"your_assistant_id",
	"your-private-key",
	"your-public-key",
	"your-assistant-id",
	"changeme",
}

// Valid reports whether all three credentials are present and none of
// them is a known placeholder.
func (c Credentials) Valid() bool {
	for _, v := range []string{c.PrivateKey, c.PublicKey, c.AssistantID} {
		if strings.TrimSpace(v) == "" || isPlaceholder(v) {
			return false
		}
	}
	return true
}

func isPlaceholder(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, p := range placeholderValues {
		if v == p {
			return true
		}
	}
	return false
}
