// handlers/debug.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"trivia-platform/database"
	"trivia-platform/game"
	"trivia-platform/middleware"
)

func DebugImages(catalog *game.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys := catalog.Keys()
		numbers := catalog.AvailableImages()

		sampleKeys := keys
		if len(sampleKeys) > 10 {
			sampleKeys = sampleKeys[:10]
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"total_images_in_json":    len(keys),
			"available_image_numbers": numbers,
			"total_available_images":  len(numbers),
			"missing_numbers":         catalog.MissingNumbers(),
			"sample_keys":             sampleKeys,
		})
	}
}

func DebugDifficulties(catalog *game.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "All difficulty levels: %v", catalog.Difficulties())
	}
}

func DebugLeaderboard(db database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFrom(r)

		doc, err := db.FindLeaderboardByName(r.Context(), sess.TeamName)
		if errors.Is(err, database.ErrNotFound) {
			json.NewEncoder(w).Encode(map[string]interface{}{"error": "Team not found"})
			return
		}
		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{"error": err.Error()})
			return
		}

		fields := make([]string, 0, len(doc.Fields))
		for field := range doc.Fields {
			fields = append(fields, field)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"team_name":        sess.TeamName,
			"current_data":     doc.Fields,
			"available_fields": fields,
		})
	}
}
