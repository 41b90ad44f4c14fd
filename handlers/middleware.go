package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/config"
	"freightdesk/templates"
)

type contextKey string

const SessionKey contextKey = "session"

// GetSession extracts the resolved operator session from the request
// context, nil when unauthenticated.
func GetSession(r *http.Request) *templates.Session {
	if val, ok := r.Context().Value(SessionKey).(*templates.Session); ok {
		return val
	}
	return nil
}

// GetHeaderData builds the page chrome data for the current request.
func GetHeaderData(r *http.Request, active string) templates.HeaderData {
	return templates.HeaderData{
		Session: GetSession(r),
		Active:  active,
	}
}

// GuardRoute is a pure function of session state and path: it reports
// whether the request may proceed. Route guarding never reads ambient
// storage; the middleware resolves the session exactly once per request.
func GuardRoute(authenticated bool, path string) bool {
	if authenticated {
		return true
	}
	if path == "/login" {
		return true
	}
	return strings.HasPrefix(path, "/static/")
}

// SessionMiddleware resolves the session cookie to an auth record, stores
// the session in the request context, and redirects unauthenticated
// requests to the login page.
func SessionMiddleware(app *pocketbase.PocketBase, cfg config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var session *templates.Session

		if cookie, err := e.Request.Cookie(cfg.SessionCookie); err == nil && cookie.Value != "" {
			if rec, err := app.FindRecordById("users", cookie.Value); err == nil {
				session = &templates.Session{
					UserID: rec.Id,
					Email:  rec.GetString("email"),
				}
			} else {
				// Stale session: clear the cookie so the next request
				// starts clean.
				http.SetCookie(e.Response, &http.Cookie{
					Name:   cfg.SessionCookie,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		if session != nil {
			ctx := context.WithValue(e.Request.Context(), SessionKey, session)
			e.Request = e.Request.WithContext(ctx)
		}

		if !GuardRoute(session != nil, e.Request.URL.Path) {
			return e.Redirect(http.StatusFound, "/login")
		}
		return e.Next()
	}
}
