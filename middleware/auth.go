// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"trivia-platform/models"
)

// SessionName is the cookie session name.
const SessionName = "session"

type contextKey int

const sessionContextKey contextKey = 0

// SessionFrom returns the login state attached to the request by
// RequireSession or Auth.
func SessionFrom(r *http.Request) (models.Session, bool) {
	sess, ok := r.Context().Value(sessionContextKey).(models.Session)
	return sess, ok
}

func withSession(r *http.Request, sess models.Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
}

func sessionFromCookie(store *sessions.CookieStore, r *http.Request) (models.Session, bool) {
	session, _ := store.Get(r, SessionName)
	teamName, ok := session.Values["team_name"].(string)
	if !ok || teamName == "" {
		return models.Session{}, false
	}
	uniqueCode, _ := session.Values["unique_code"].(string)
	return models.Session{TeamName: teamName, UniqueCode: uniqueCode}, true
}

// RequireSession guards a page handler: without a login it redirects to
// the login page, otherwise it attaches the session and calls next.
func RequireSession(store *sessions.CookieStore, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromCookie(store, r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, withSession(r, sess))
	}
}

// Auth guards API routes. The cookie session is checked first; clients
// without one may instead present the bearer token issued by the JSON
// login endpoint.
func Auth(store *sessions.CookieStore, jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, ok := sessionFromCookie(store, r); ok {
				next.ServeHTTP(w, withSession(r, sess))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				http.Error(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
				return jwtSecret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			teamName, _ := claims["team_name"].(string)
			uniqueCode, _ := claims["unique_code"].(string)
			if teamName == "" {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, withSession(r, models.Session{
				TeamName:   teamName,
				UniqueCode: uniqueCode,
			}))
		})
	}
}
