package handlers

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/sessions"

	"trivia-platform/testutil"
)

// Page handlers load templates relative to the repo root.
func TestMain(m *testing.M) {
	os.Chdir("..")
	os.Exit(m.Run())
}

func newCookieStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-session-key"))
}

func TestLoginUnknownCode(t *testing.T) {
	db := testutil.NewFakeStore()
	store := newCookieStore()

	form := url.Values{"unique_code": {"wrong"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	Login(db, store)(w, req)

	testutil.AssertStatus(t, w, 200)
	if !strings.Contains(w.Body.String(), "Invalid code!") {
		t.Error("Login page should show the invalid-code error")
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("No session should be established for an unknown code")
	}
}

func TestLoginStoreError(t *testing.T) {
	db := testutil.NewFakeStore()
	db.Err = errors.New("store unavailable")
	store := newCookieStore()

	form := url.Values{"unique_code": {"abc"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	Login(db, store)(w, req)

	testutil.AssertStatus(t, w, 200)
	if !strings.Contains(w.Body.String(), "Database error!") {
		t.Error("Login page should show the database error")
	}
}

func TestLoginSuccess(t *testing.T) {
	db := testutil.NewFakeStore()
	db.Participants["abc"] = &testParticipant
	store := newCookieStore()

	form := url.Values{"unique_code": {"abc"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	Login(db, store)(w, req)

	testutil.AssertStatus(t, w, 303)
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Redirect location = %q, want /dashboard", loc)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("Login should set a session cookie")
	}

	// First login: counter bumped once, counted flag set, leaderboard
	// record created.
	if db.CounterIncrements != 1 {
		t.Errorf("CounterIncrements = %d, want 1", db.CounterIncrements)
	}
	if len(db.CountedMarks) != 1 || db.CountedMarks[0] != "p1" {
		t.Errorf("CountedMarks = %v, want [p1]", db.CountedMarks)
	}
	if len(db.Created) != 1 || db.Created[0].Name != "Red Pandas" || db.Created[0].Status != "online" {
		t.Errorf("Created = %+v, want one online entry for Red Pandas", db.Created)
	}
}

func TestLoginAlreadyCounted(t *testing.T) {
	db := testutil.NewFakeStore()
	counted := testParticipant
	counted.Counted = true
	db.Participants["abc"] = &counted
	db.Leaderboard["Red Pandas"] = redPandasDoc(map[string]interface{}{"totalPoints": int64(5)})
	store := newCookieStore()

	form := url.Values{"unique_code": {"abc"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	Login(db, store)(w, req)

	testutil.AssertStatus(t, w, 303)
	if db.CounterIncrements != 0 {
		t.Errorf("CounterIncrements = %d, want 0 for a counted participant", db.CounterIncrements)
	}
	if len(db.Created) != 0 {
		t.Errorf("Created = %+v, want no new entry for an existing team", db.Created)
	}
}

func TestAPILogin(t *testing.T) {
	db := testutil.NewFakeStore()
	db.Participants["abc"] = &testParticipant

	req := testutil.MakeRequest("POST", "/api/login", map[string]string{"unique_code": "abc"})
	w := httptest.NewRecorder()

	APILogin(db, []byte("test-jwt-secret"))(w, req)

	testutil.AssertStatus(t, w, 200)
	var resp APILoginResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.Token == "" || resp.TeamName != "Red Pandas" {
		t.Errorf("APILogin response = %+v", resp)
	}
}

func TestAPILoginInvalidCode(t *testing.T) {
	db := testutil.NewFakeStore()

	req := testutil.MakeRequest("POST", "/api/login", map[string]string{"unique_code": "wrong"})
	w := httptest.NewRecorder()

	APILogin(db, []byte("test-jwt-secret"))(w, req)

	var resp APILoginResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success || resp.Token != "" {
		t.Errorf("APILogin response = %+v, want failure without token", resp)
	}
	if resp.Message != "Invalid code!" {
		t.Errorf("Message = %q, want Invalid code!", resp.Message)
	}
}

func TestLogout(t *testing.T) {
	store := newCookieStore()
	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(testutil.SessionCookie(t, store, "Red Pandas", "abc"))
	w := httptest.NewRecorder()

	Logout(store)(w, req)

	testutil.AssertStatus(t, w, 303)
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Redirect location = %q, want /login", loc)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge != -1 {
		t.Error("Logout should expire the session cookie")
	}
}

func TestIndexRedirects(t *testing.T) {
	store := newCookieStore()

	w := httptest.NewRecorder()
	Index(store)(w, httptest.NewRequest("GET", "/", nil))
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Anonymous / redirect = %q, want /login", loc)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(testutil.SessionCookie(t, store, "Red Pandas", "abc"))
	w = httptest.NewRecorder()
	Index(store)(w, req)
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Logged-in / redirect = %q, want /dashboard", loc)
	}
}
