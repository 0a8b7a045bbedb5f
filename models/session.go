// models/session.go
package models

// Session is the per-client login state carried in the cookie session
// (or in JWT claims for API clients).
type Session struct {
	TeamName   string `json:"team_name"`
	UniqueCode string `json:"unique_code"`
}
