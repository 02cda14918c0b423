package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/psecuresystem/NFT-Marketplace/pkg/httpx"
	"github.com/psecuresystem/NFT-Marketplace/pkg/logger"
)

const sessionName = "nftmarket_session"
const sessionAccountIDKey = "account_id"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the account identity, and injects it into
// the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid
// account_id.
//
// After this middleware, handlers can safely call auth.AccountIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			accountIDStr, ok := session.Values[sessionAccountIDKey].(string)
			if !ok || accountIDStr == "" {
				log.WarnContext(r.Context(), "session missing account_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			accountID, err := uuid.Parse(accountIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid account_id in session", "account_id", accountIDStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithAccountID(r.Context(), accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
