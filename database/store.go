// database/store.go
package database

import (
	"context"
	"errors"

	"trivia-platform/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// Store is the gateway to the participant and leaderboard collections.
// Two implementations exist: the live Firestore client and a mock used
// when no credentials are configured. One is chosen at startup and
// injected into the route layer.
type Store interface {
	// FindParticipantByCode looks a participant up by its uniqueCode
	// attribute. Returns ErrNotFound when no participant matches.
	FindParticipantByCode(ctx context.Context, code string) (*models.Participant, error)

	// MarkParticipantCounted sets the participant's counted flag so the
	// global counter is only bumped once per participant.
	MarkParticipantCounted(ctx context.Context, participantID string) error

	// IncrementParticipantCount applies an atomic server-side increment
	// to the global participant counter.
	IncrementParticipantCount(ctx context.Context) error

	// FindLeaderboardByName fetches a team's leaderboard snapshot by
	// team name. Returns ErrNotFound when the team has no record.
	FindLeaderboardByName(ctx context.Context, name string) (*models.LeaderboardDoc, error)

	// CreateLeaderboardEntry adds a new leaderboard record.
	CreateLeaderboardEntry(ctx context.Context, entry models.LeaderboardEntry) error

	// ApplyLeaderboardUpdate writes the given fields to an existing
	// record. Callers only pass fields present in the fetched snapshot;
	// missing fields are never auto-created.
	ApplyLeaderboardUpdate(ctx context.Context, docID string, fields map[string]interface{}) error

	Close() error
}
