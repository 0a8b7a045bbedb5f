// models/participant.go
package models

// Participant is a registration record in the participants collection,
// identified by a one-time unique code handed out before the event.
type Participant struct {
	ID         string `firestore:"-" json:"id"`
	TeamName   string `firestore:"teamName" json:"team_name"`
	UniqueCode string `firestore:"uniqueCode" json:"unique_code"`
	Counted    bool   `firestore:"counted" json:"counted"`
}
