package httpadapter

import (
	"net/http"
	"strings"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// Headers carrying the tenant's already-authenticated platform credential.
const (
	headerAdvertiserID = "X-Advertiser-ID"
	headerAuth         = "Authorization"
)

// withAccount attaches the platform credential from the request headers.
// Requests without one use the process-wide credential of the client.
func withAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acct := domain.PlatformAccount{
			AdvertiserID: strings.TrimSpace(r.Header.Get(headerAdvertiserID)),
		}
		if token, ok := strings.CutPrefix(r.Header.Get(headerAuth), "Bearer "); ok {
			acct.AccessToken = strings.TrimSpace(token)
		}
		if acct.AdvertiserID != "" || acct.AccessToken != "" {
			r = r.WithContext(port.WithAccount(r.Context(), acct))
		}
		next.ServeHTTP(w, r)
	})
}
