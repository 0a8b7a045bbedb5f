// handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"trivia-platform/database"
	"trivia-platform/middleware"
	"trivia-platform/models"
)

type APILoginRequest struct {
	UniqueCode string `json:"unique_code"`
}

type APILoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Token    string `json:"token,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

func Index(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, middleware.SessionName)
		if name, ok := session.Values["team_name"].(string); ok && name != "" {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func LoginPage(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, middleware.SessionName)
		if name, ok := session.Values["team_name"].(string); ok && name != "" {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderLogin(w, "")
	}
}

// Login handles the login form: the unique code is matched against the
// participants collection and a session is established on success.
func Login(db database.Store, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uniqueCode := r.FormValue("unique_code")

		participant, err := db.FindParticipantByCode(r.Context(), uniqueCode)
		if errors.Is(err, database.ErrNotFound) {
			renderLogin(w, "Invalid code!")
			return
		}
		if err != nil {
			log.Printf("Login lookup failed: %v", err)
			renderLogin(w, "Database error!")
			return
		}

		session, _ := store.Get(r, middleware.SessionName)
		session.Values["team_name"] = participant.TeamName
		session.Values["unique_code"] = uniqueCode
		session.Save(r, w)

		registerLogin(r, db, participant)

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// APILogin is the JSON variant for non-browser clients: same lookup,
// but it issues a bearer token instead of a cookie.
func APILogin(db database.Store, jwtSecret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req APILoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		participant, err := db.FindParticipantByCode(r.Context(), req.UniqueCode)
		if errors.Is(err, database.ErrNotFound) {
			json.NewEncoder(w).Encode(APILoginResponse{Success: false, Message: "Invalid code!"})
			return
		}
		if err != nil {
			log.Printf("Login lookup failed: %v", err)
			json.NewEncoder(w).Encode(APILoginResponse{Success: false, Message: "Database error!"})
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"team_name":   participant.TeamName,
			"unique_code": req.UniqueCode,
			"exp":         time.Now().Add(24 * time.Hour).Unix(),
		})
		tokenString, err := token.SignedString(jwtSecret)
		if err != nil {
			http.Error(w, "Could not create token", http.StatusInternalServerError)
			return
		}

		registerLogin(r, db, participant)

		json.NewEncoder(w).Encode(APILoginResponse{
			Success:  true,
			Token:    tokenString,
			TeamName: participant.TeamName,
		})
	}
}

// registerLogin bumps the global participant counter once per
// participant and lazily creates the team's leaderboard record. The
// counted check is read-then-write across two calls; concurrent logins
// with the same code can double-count.
func registerLogin(r *http.Request, db database.Store, participant *models.Participant) {
	ctx := r.Context()

	if !participant.Counted {
		if err := db.IncrementParticipantCount(ctx); err != nil {
			log.Printf("Participant counter increment failed: %v", err)
		} else if err := db.MarkParticipantCounted(ctx, participant.ID); err != nil {
			log.Printf("Marking participant counted failed: %v", err)
		}
	}

	_, err := db.FindLeaderboardByName(ctx, participant.TeamName)
	if errors.Is(err, database.ErrNotFound) {
		err = db.CreateLeaderboardEntry(ctx, models.LeaderboardEntry{
			Name:   participant.TeamName,
			Status: "online",
		})
		if err != nil {
			log.Printf("Creating leaderboard entry for %s failed: %v", participant.TeamName, err)
		}
	} else if err != nil {
		log.Printf("Leaderboard lookup for %s failed: %v", participant.TeamName, err)
	}
}

func Logout(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, middleware.SessionName)
		session.Options.MaxAge = -1
		session.Save(r, w)

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func renderLogin(w http.ResponseWriter, errorMessage string) {
	data := map[string]interface{}{
		"Title": "Login - Team Trivia",
		"Error": errorMessage,
	}

	tmpl := template.Must(template.ParseFiles("templates/login.html"))
	tmpl.Execute(w, data)
}
