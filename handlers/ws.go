// handlers/ws.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"trivia-platform/database"
	"trivia-platform/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StatusWebSocket pushes the /api/status payload to the client on a
// ticker, so dashboards don't have to poll.
func StatusWebSocket(db database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := middleware.SessionFrom(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for {
			teamName := resolveTeamName(r.Context(), db, sess)
			stats := teamStats(r.Context(), db, teamName)

			if err := conn.WriteJSON(stats); err != nil {
				return
			}

			<-ticker.C
		}
	}
}
