// models/leaderboard.go
package models

// LeaderboardEntry is the document shape written when a new team is
// added to the leaderboard collection.
type LeaderboardEntry struct {
	Name        string `firestore:"name" json:"name"`
	TotalPoints int    `firestore:"totalPoints" json:"total_points"`
	Wins        int    `firestore:"wins" json:"wins"`
	GamesPlayed int    `firestore:"gamesPlayed" json:"games_played"`
	Status      string `firestore:"status" json:"status"`
}

// LeaderboardDoc is a fetched leaderboard snapshot. Fields holds the raw
// document data so callers can check which fields actually exist before
// updating them: fields absent from the stored record are never written.
type LeaderboardDoc struct {
	ID     string
	Fields map[string]interface{}
}

// Has reports whether the stored record carries the given field.
func (d *LeaderboardDoc) Has(field string) bool {
	_, ok := d.Fields[field]
	return ok
}

// Int reads a numeric field, tolerating the integer and float shapes the
// store returns, with 0 for anything missing or non-numeric.
func (d *LeaderboardDoc) Int(field string) int {
	switch v := d.Fields[field].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// String reads a string field, with fallback for anything else.
func (d *LeaderboardDoc) String(field, fallback string) string {
	if v, ok := d.Fields[field].(string); ok {
		return v
	}
	return fallback
}

// TeamStats is the payload served by /api/status and the dashboard.
type TeamStats struct {
	Status      string `json:"status"`
	Score       int    `json:"score"`
	Wins        int    `json:"wins"`
	GamesPlayed int    `json:"games_played"`
}

// Stats flattens a snapshot into the display shape, applying the
// offline/zero defaults for missing fields.
func (d *LeaderboardDoc) Stats() TeamStats {
	return TeamStats{
		Status:      d.String("status", "offline"),
		Score:       d.Int("totalPoints"),
		Wins:        d.Int("wins"),
		GamesPlayed: d.Int("gamesPlayed"),
	}
}
