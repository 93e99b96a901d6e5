package response

import "time"

// PortalLinkResponse returns a freshly minted portal URL. The raw token is
// embedded in the URL and never stored; this response is the only time it is
// visible.
type PortalLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
