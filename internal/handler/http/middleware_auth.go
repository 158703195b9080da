package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/akgarhwal/vault/internal/logger"
)

const authRealm = `Basic realm="vault-mirror", charset="UTF-8"`

// basicAuth rejects requests whose basic auth credentials do not match the
// configured user and password with 401 and a WWW-Authenticate challenge.
// Both values are compared in constant time.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(h.user)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.password)) == 1
		if !ok || !userOK || !passwordOK {
			logger.FromRequest(r).Warn().Err(ErrUnauthorized).Str("user", user).Send()
			w.Header().Set("WWW-Authenticate", authRealm)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
