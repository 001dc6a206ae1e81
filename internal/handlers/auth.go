package handlers

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RequireAdmin — basic auth для админских ручек, пароль сверяется с bcrypt-хешем.
// Без хеша в конфиге админка выключена.
func (e *Env) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e.AdminPasswordHash == "" {
			e.writeError(w, r, http.StatusForbidden, "admin is disabled")
			return
		}

		user, pass, ok := r.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(e.AdminUser)) == 1
		if !ok || !userOK || bcrypt.CompareHashAndPassword([]byte(e.AdminPasswordHash), []byte(pass)) != nil {
			zap.S().Named("auth").Warnw("admin auth failed", "user", user, "remote_addr", r.RemoteAddr)
			w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
			e.writeError(w, r, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// HashPassword — bcrypt-хеш для STUDIO_ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
