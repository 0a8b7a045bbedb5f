// handlers/api.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"trivia-platform/database"
	"trivia-platform/middleware"
	"trivia-platform/models"
)

type UpdateScoreRequest struct {
	Points int `json:"points"`
}

func APIStatus(db database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFrom(r)
		teamName := resolveTeamName(r.Context(), db, sess)

		json.NewEncoder(w).Encode(teamStats(r.Context(), db, teamName))
	}
}

// UpdateScore adds the submitted points to the team's leaderboard
// record. Only fields already present in the fetched snapshot are
// written; a record missing wins never gains it. A team with no record
// at all gets one created, seeded with the submitted points.
func UpdateScore(db database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		sess, _ := middleware.SessionFrom(r)
		teamName := resolveTeamName(r.Context(), db, sess)

		log.Printf("Updating score for %s: +%d points", teamName, req.Points)

		doc, err := db.FindLeaderboardByName(r.Context(), teamName)
		if errors.Is(err, database.ErrNotFound) {
			err = db.CreateLeaderboardEntry(r.Context(), models.LeaderboardEntry{
				Name:        teamName,
				TotalPoints: req.Points,
				Wins:        1,
				Status:      "online",
			})
			if err != nil {
				log.Printf("Creating leaderboard entry for %s failed: %v", teamName, err)
				json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "created": true})
			return
		}
		if err != nil {
			log.Printf("Score update lookup failed: %v", err)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
			return
		}

		if !doc.Has("totalPoints") {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "totalPoints field not found"})
			return
		}

		updateData := map[string]interface{}{
			"totalPoints": doc.Int("totalPoints") + req.Points,
		}
		if doc.Has("wins") {
			updateData["wins"] = doc.Int("wins") + 1
		}
		if doc.Has("status") {
			updateData["status"] = "online"
		}

		if err := db.ApplyLeaderboardUpdate(r.Context(), doc.ID, updateData); err != nil {
			log.Printf("Score update failed: %v", err)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "updated_fields": updateData})
	}
}

// CompleteImage records a finished image: gamesPlayed goes up by one,
// under the same only-if-present policy as UpdateScore.
func CompleteImage(db database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFrom(r)
		teamName := resolveTeamName(r.Context(), db, sess)

		log.Printf("Marking image completion for %s", teamName)

		doc, err := db.FindLeaderboardByName(r.Context(), teamName)
		if errors.Is(err, database.ErrNotFound) {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Team not found"})
			return
		}
		if err != nil {
			log.Printf("Image completion lookup failed: %v", err)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
			return
		}

		updateData := map[string]interface{}{}
		if doc.Has("gamesPlayed") {
			updateData["gamesPlayed"] = doc.Int("gamesPlayed") + 1
		}
		if doc.Has("status") {
			updateData["status"] = "online"
		}

		if len(updateData) == 0 {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "No fields to update"})
			return
		}

		if err := db.ApplyLeaderboardUpdate(r.Context(), doc.ID, updateData); err != nil {
			log.Printf("Image completion update failed: %v", err)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "updated_fields": updateData})
	}
}
