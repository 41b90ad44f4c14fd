package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"freightdesk/config"
	"freightdesk/services"
	"freightdesk/templates"
	"freightdesk/testhelpers"
)

func TestHandleLogin_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()
	user := testhelpers.CreateTestUser(t, app, "operator@example.com", "correct-horse-battery")

	form := url.Values{}
	form.Set("email", "operator@example.com")
	form.Set("password", "correct-horse-battery")
	req := newFormPost("/login", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogin(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/jobs" {
		t.Errorf("expected redirect to /jobs, got %q", loc)
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.SessionCookie {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected a session cookie")
	}
	if sessionCookie.Value != user.Id {
		t.Error("expected the cookie to reference the authenticated user")
	}
	if !sessionCookie.HttpOnly {
		t.Error("expected an HttpOnly session cookie")
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()
	testhelpers.CreateTestUser(t, app, "operator@example.com", "correct-horse-battery")

	form := url.Values{}
	form.Set("email", "operator@example.com")
	form.Set("password", "wrong")
	req := newFormPost("/login", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogin(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Invalid email or password", "operator@example.com")

	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.SessionCookie && c.Value != "" {
			t.Error("no session cookie may be set on a failed login")
		}
	}
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()

	form := url.Values{}
	form.Set("email", "nobody@example.com")
	form.Set("password", "whatever")
	req := newFormPost("/login", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogin(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Invalid email or password")
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogout(cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie cleared")
	}
}

func TestLogoutControl_PostsToLogoutRoute(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Full page render (no HX-Request) so the shell with the topbar shows.
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	ctx := context.WithValue(req.Context(), SessionKey, &templates.Session{UserID: "u1", Email: "op@example.com"})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleRecordList(app, services.JobEntity)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `action="/logout"`, `method="post"`)
	if strings.Contains(body, `<a href="/logout"`) {
		t.Error("expected the logout control to submit a POST, not follow a GET link")
	}
}

func TestSessionMiddleware_RedirectsAnonymous(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	// Next is never reached for an unauthenticated page request.
	if err := SessionMiddleware(app, cfg)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestSessionMiddleware_StaleCookieRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Load()

	// A cookie referencing a deleted user behaves like no session at all.
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.AddCookie(&http.Cookie{Name: cfg.SessionCookie, Value: "gone-user-id"})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := SessionMiddleware(app, cfg)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the stale cookie cleared")
	}
}
