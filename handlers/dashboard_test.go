package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-platform/middleware"
	"trivia-platform/testutil"
)

func TestDashboardPage(t *testing.T) {
	db := testutil.NewFakeStore()
	db.Participants["abc"] = &testParticipant
	db.Leaderboard["Red Pandas"] = redPandasDoc(map[string]interface{}{
		"status":      "online",
		"totalPoints": int64(250),
		"wins":        int64(3),
		"gamesPlayed": int64(6),
	})
	catalog := testCatalog(t, `{"LAUGH/001.jpg": {}, "LAUGH/002.jpg": {}}`)

	store := newCookieStore()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(testutil.SessionCookie(t, store, "Red Pandas", "abc"))
	w := httptest.NewRecorder()
	middleware.RequireSession(store, DashboardPage(db, catalog))(w, req)

	testutil.AssertStatus(t, w, 200)
	body := w.Body.String()
	for _, want := range []string{"Red Pandas", "250", "online"} {
		if !strings.Contains(body, want) {
			t.Errorf("Dashboard should contain %q", want)
		}
	}
}

func TestDashboardPageAbsentTeam(t *testing.T) {
	db := testutil.NewFakeStore()
	db.Participants["abc"] = &testParticipant
	catalog := testCatalog(t, `{"LAUGH/001.jpg": {}}`)

	store := newCookieStore()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(testutil.SessionCookie(t, store, "Red Pandas", "abc"))
	w := httptest.NewRecorder()
	middleware.RequireSession(store, DashboardPage(db, catalog))(w, req)

	testutil.AssertStatus(t, w, 200)
	if !strings.Contains(w.Body.String(), "offline") {
		t.Error("Dashboard should fall back to offline for a team with no record")
	}
}

func TestDebugImages(t *testing.T) {
	catalog := testCatalog(t, `{"LAUGH/001.jpg": {}, "LAUGH/003.jpg": {}}`)

	w := httptest.NewRecorder()
	DebugImages(catalog)(w, httptest.NewRequest("GET", "/debug-images", nil))

	var resp struct {
		TotalImagesInJSON     int   `json:"total_images_in_json"`
		AvailableImageNumbers []int `json:"available_image_numbers"`
		MissingNumbers        []int `json:"missing_numbers"`
	}
	testutil.AssertJSON(t, w, &resp)
	if resp.TotalImagesInJSON != 2 {
		t.Errorf("total_images_in_json = %d, want 2", resp.TotalImagesInJSON)
	}
	if len(resp.AvailableImageNumbers) != 2 || resp.AvailableImageNumbers[0] != 1 {
		t.Errorf("available_image_numbers = %v", resp.AvailableImageNumbers)
	}
	if len(resp.MissingNumbers) != 1 || resp.MissingNumbers[0] != 2 {
		t.Errorf("missing_numbers = %v, want [2]", resp.MissingNumbers)
	}
}

func TestDebugDifficulties(t *testing.T) {
	catalog := testCatalog(t, `{"LAUGH/001.jpg": {"easy": [], "impossible": []}}`)

	w := httptest.NewRecorder()
	DebugDifficulties(catalog)(w, httptest.NewRequest("GET", "/debug-difficulties", nil))

	body := w.Body.String()
	if !strings.Contains(body, "easy") || !strings.Contains(body, "impossible") {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestDebugLeaderboard(t *testing.T) {
	db := testutil.NewFakeStore()
	db.Leaderboard["Red Pandas"] = redPandasDoc(map[string]interface{}{
		"totalPoints": int64(10),
		"status":      "online",
	})

	store := newCookieStore()
	req := httptest.NewRequest("GET", "/debug-leaderboard", nil)
	req.AddCookie(testutil.SessionCookie(t, store, "Red Pandas", "abc"))
	w := httptest.NewRecorder()
	middleware.RequireSession(store, DebugLeaderboard(db))(w, req)

	var resp struct {
		TeamName        string   `json:"team_name"`
		AvailableFields []string `json:"available_fields"`
	}
	testutil.AssertJSON(t, w, &resp)
	if resp.TeamName != "Red Pandas" || len(resp.AvailableFields) != 2 {
		t.Errorf("Response = %+v", resp)
	}
}
