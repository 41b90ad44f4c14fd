package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/config"
	"freightdesk/templates"
)

// HandleLoginPage renders the login form.
func HandleLoginPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.LoginPage(templates.LoginData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin validates credentials against the users auth collection and
// starts a session. The session lifecycle is explicit: unauthenticated →
// authenticated on success here, back to unauthenticated in HandleLogout.
func HandleLogin(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return templates.LoginPage(templates.LoginData{Error: "Invalid form data"}).
				Render(e.Request.Context(), e.Response)
		}

		email := strings.TrimSpace(e.Request.FormValue("email"))
		password := e.Request.FormValue("password")

		users, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			log.Printf("auth: could not find users collection: %v", err)
			return templates.LoginPage(templates.LoginData{Email: email, Error: "Something went wrong. Please try again."}).
				Render(e.Request.Context(), e.Response)
		}

		record, err := app.FindAuthRecordByEmail(users, email)
		if err != nil || !record.ValidatePassword(password) {
			log.Printf("auth: failed login attempt for %s", email)
			return templates.LoginPage(templates.LoginData{Email: email, Error: "Invalid email or password"}).
				Render(e.Request.Context(), e.Response)
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     cfg.SessionCookie,
			Value:    record.Id,
			Path:     "/",
			MaxAge:   int(cfg.SessionTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.Redirect(http.StatusFound, "/jobs")
	}
}

// HandleLogout clears the session cookie.
func HandleLogout(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   cfg.SessionCookie,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return e.Redirect(http.StatusFound, "/login")
	}
}
