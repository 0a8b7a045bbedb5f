// handlers/dashboard.go
package handlers

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"

	"trivia-platform/database"
	"trivia-platform/game"
	"trivia-platform/middleware"
	"trivia-platform/models"
)

// resolveTeamName prefers the participant record for the session's
// unique code over the team name cached in the session; leaderboard
// records are keyed by name, and renames in the store should win. The
// lookup is fresh on every call.
func resolveTeamName(ctx context.Context, db database.Store, sess models.Session) string {
	if sess.UniqueCode != "" {
		participant, err := db.FindParticipantByCode(ctx, sess.UniqueCode)
		if err == nil && participant.TeamName != "" {
			return participant.TeamName
		}
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			log.Printf("Participant lookup failed: %v", err)
		}
	}
	return sess.TeamName
}

// teamStats fetches the leaderboard snapshot for a team, with the
// zeroed offline defaults when the team has no record or the lookup
// fails.
func teamStats(ctx context.Context, db database.Store, teamName string) models.TeamStats {
	doc, err := db.FindLeaderboardByName(ctx, teamName)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			log.Printf("Leaderboard lookup for %s failed: %v", teamName, err)
		}
		return models.TeamStats{Status: "offline"}
	}
	return doc.Stats()
}

func DashboardPage(db database.Store, catalog *game.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFrom(r)
		teamName := resolveTeamName(r.Context(), db, sess)
		stats := teamStats(r.Context(), db, teamName)

		data := map[string]interface{}{
			"Title":       "Dashboard - Team Trivia",
			"TeamName":    teamName,
			"Status":      stats.Status,
			"Score":       stats.Score,
			"Wins":        stats.Wins,
			"GamesPlayed": stats.GamesPlayed,
			"TotalImages": len(catalog.AvailableImages()),
		}

		tmpl := template.Must(template.ParseFiles("templates/dashboard.html"))
		tmpl.Execute(w, data)
	}
}
