package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/koodakziba/koodakziba-backend/pkg/logger"
)

const (
	cartSessionHeader = "X-Cart-Session"
	cartSessionCookie = "cart_session"
)

// CartSession resolves the visitor cart session id from the request header,
// falling back to the cookie, minting a fresh id when neither is present.
// The id is echoed back on both the header and the cookie so anonymous
// clients keep their cart across requests.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(cartSessionHeader)
			if sessionID == "" {
				if cookie, err := r.Cookie(cartSessionCookie); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(cartSessionHeader, sessionID)
			http.SetCookie(w, &http.Cookie{
				Name:     cartSessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
