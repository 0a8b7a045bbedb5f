// testutil/testutil.go
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"

	"trivia-platform/database"
	"trivia-platform/middleware"
	"trivia-platform/models"
)

// AppliedUpdate records one ApplyLeaderboardUpdate call.
type AppliedUpdate struct {
	DocID  string
	Fields map[string]interface{}
}

// FakeStore is a scriptable database.Store for handler tests.
// Participants are keyed by unique code, leaderboard docs by team name.
// Every write is recorded; set Err to force failures.
type FakeStore struct {
	Participants map[string]*models.Participant
	Leaderboard  map[string]*models.LeaderboardDoc

	CounterIncrements int
	CountedMarks      []string
	Created           []models.LeaderboardEntry
	Updates           []AppliedUpdate

	Err error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		Participants: map[string]*models.Participant{},
		Leaderboard:  map[string]*models.LeaderboardDoc{},
	}
}

func (f *FakeStore) FindParticipantByCode(ctx context.Context, code string) (*models.Participant, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	participant, ok := f.Participants[code]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *participant
	return &copied, nil
}

func (f *FakeStore) MarkParticipantCounted(ctx context.Context, participantID string) error {
	if f.Err != nil {
		return f.Err
	}
	f.CountedMarks = append(f.CountedMarks, participantID)
	return nil
}

func (f *FakeStore) IncrementParticipantCount(ctx context.Context) error {
	if f.Err != nil {
		return f.Err
	}
	f.CounterIncrements++
	return nil
}

func (f *FakeStore) FindLeaderboardByName(ctx context.Context, name string) (*models.LeaderboardDoc, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	doc, ok := f.Leaderboard[name]
	if !ok {
		return nil, database.ErrNotFound
	}
	return doc, nil
}

func (f *FakeStore) CreateLeaderboardEntry(ctx context.Context, entry models.LeaderboardEntry) error {
	if f.Err != nil {
		return f.Err
	}
	f.Created = append(f.Created, entry)
	f.Leaderboard[entry.Name] = &models.LeaderboardDoc{
		ID: "fake-" + entry.Name,
		Fields: map[string]interface{}{
			"name":        entry.Name,
			"totalPoints": int64(entry.TotalPoints),
			"wins":        int64(entry.Wins),
			"gamesPlayed": int64(entry.GamesPlayed),
			"status":      entry.Status,
		},
	}
	return nil
}

func (f *FakeStore) ApplyLeaderboardUpdate(ctx context.Context, docID string, fields map[string]interface{}) error {
	if f.Err != nil {
		return f.Err
	}
	f.Updates = append(f.Updates, AppliedUpdate{DocID: docID, Fields: fields})
	return nil
}

func (f *FakeStore) Close() error { return nil }

// SessionCookie produces a logged-in session cookie for test requests.
func SessionCookie(t *testing.T, store *sessions.CookieStore, teamName, uniqueCode string) *http.Cookie {
	t.Helper()

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	session, _ := store.Get(r, middleware.SessionName)
	session.Values["team_name"] = teamName
	session.Values["unique_code"] = uniqueCode
	if err := session.Save(r, w); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("No session cookie written")
	}
	return cookies[0]
}

// MakeRequest creates an HTTP test request, JSON-encoding body if given.
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks the recorded status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
