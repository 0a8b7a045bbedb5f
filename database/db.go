// database/db.go
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"trivia-platform/models"
)

const (
	participantsCollection = "participants"
	leaderboardCollection  = "leaderboard"
	statsCollection        = "stats"
	statsDoc               = "global"
)

// Firestore is the live Store implementation.
type Firestore struct {
	client *firestore.Client
}

// Connect builds the Firestore client from environment credentials.
// Three variables are honored: FIRESTORE_CREDENTIALS_FILE (a key file
// path), FIRESTORE_CREDENTIALS_JSON (the key inline), and the legacy
// FIREBASE_CREDENTIALS which accepts either form. An error here is not
// fatal to the caller; it selects the mock store instead.
func Connect(ctx context.Context) (*Firestore, error) {
	opt, projectID, err := credentialsFromEnv()
	if err != nil {
		return nil, err
	}

	if projectID == "" {
		projectID = getEnv("GOOGLE_CLOUD_PROJECT", "")
	}
	if projectID == "" {
		return nil, fmt.Errorf("no project id in credentials or GOOGLE_CLOUD_PROJECT")
	}

	client, err := firestore.NewClient(ctx, projectID, opt)
	if err != nil {
		return nil, err
	}

	log.Printf("Connected to Firestore project %s", projectID)
	return &Firestore{client: client}, nil
}

func credentialsFromEnv() (option.ClientOption, string, error) {
	if path := getEnv("FIRESTORE_CREDENTIALS_FILE", ""); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("credentials file: %w", err)
		}
		return option.WithCredentialsFile(path), projectIDFromKey(raw), nil
	}

	if inline := getEnv("FIRESTORE_CREDENTIALS_JSON", ""); inline != "" {
		return option.WithCredentialsJSON([]byte(inline)), projectIDFromKey([]byte(inline)), nil
	}

	// Legacy variable: a path, or the key itself.
	if legacy := getEnv("FIREBASE_CREDENTIALS", ""); legacy != "" {
		if strings.HasPrefix(legacy, "{") {
			return option.WithCredentialsJSON([]byte(legacy)), projectIDFromKey([]byte(legacy)), nil
		}
		raw, err := os.ReadFile(legacy)
		if err != nil {
			return nil, "", fmt.Errorf("credentials file: %w", err)
		}
		return option.WithCredentialsFile(legacy), projectIDFromKey(raw), nil
	}

	return nil, "", fmt.Errorf("no credentials configured")
}

func projectIDFromKey(raw []byte) string {
	var key struct {
		ProjectID string `json:"project_id"`
	}
	json.Unmarshal(raw, &key)
	return key.ProjectID
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func (s *Firestore) FindParticipantByCode(ctx context.Context, code string) (*models.Participant, error) {
	docs, err := s.client.Collection(participantsCollection).
		Where("uniqueCode", "==", code).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	var participant models.Participant
	if err := docs[0].DataTo(&participant); err != nil {
		return nil, err
	}
	participant.ID = docs[0].Ref.ID
	return &participant, nil
}

func (s *Firestore) MarkParticipantCounted(ctx context.Context, participantID string) error {
	_, err := s.client.Collection(participantsCollection).Doc(participantID).
		Update(ctx, []firestore.Update{{Path: "counted", Value: true}})
	return err
}

func (s *Firestore) IncrementParticipantCount(ctx context.Context) error {
	// Set with merge creates the stats document on first use; the
	// increment itself is applied server-side.
	_, err := s.client.Collection(statsCollection).Doc(statsDoc).
		Set(ctx, map[string]interface{}{
			"participantCount": firestore.Increment(1),
		}, firestore.MergeAll)
	return err
}

func (s *Firestore) FindLeaderboardByName(ctx context.Context, name string) (*models.LeaderboardDoc, error) {
	docs, err := s.client.Collection(leaderboardCollection).
		Where("name", "==", name).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	return &models.LeaderboardDoc{
		ID:     docs[0].Ref.ID,
		Fields: docs[0].Data(),
	}, nil
}

func (s *Firestore) CreateLeaderboardEntry(ctx context.Context, entry models.LeaderboardEntry) error {
	_, _, err := s.client.Collection(leaderboardCollection).Add(ctx, entry)
	return err
}

func (s *Firestore) ApplyLeaderboardUpdate(ctx context.Context, docID string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := s.client.Collection(leaderboardCollection).Doc(docID).Update(ctx, updates)
	return err
}

func (s *Firestore) Close() error {
	return s.client.Close()
}
