// Package templates holds the view data structures and templ components
// for the dashboard. Components are plain templ.ComponentFunc values so
// handlers can render either a full page shell or an HTMX fragment.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Session is the authenticated operator injected into every page render.
// Views never read auth state from anywhere else.
type Session struct {
	UserID string
	Email  string
}

// HeaderData feeds the page chrome.
type HeaderData struct {
	Session *Session
	Active  string // nav key of the current section
}

func component(fn func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(w)
	})
}

func esc(s string) string { return templ.EscapeString(s) }

// navLink writes one sidebar entry, marking the active section.
func navLink(w io.Writer, href, key, label, active string) {
	class := "nav-link"
	if key == active {
		class = "nav-link active"
	}
	fmt.Fprintf(w, `<a class=%q href=%q>%s</a>`, class, href, esc(label))
}

// Shell wraps body in the full page layout with header and sidebar.
func Shell(title string, header HeaderData, body templ.Component) templ.Component {
	return component(func(w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s — FreightDesk</title>`, esc(title))
		io.WriteString(w, `<script src="/static/htmx.min.js"></script><link rel="stylesheet" href="/static/app.css"></head><body>`)

		io.WriteString(w, `<header class="topbar"><span class="brand">FreightDesk</span>`)
		if header.Session != nil {
			fmt.Fprintf(w, `<span class="user">%s</span><form method="post" action="/logout"><button type="submit" class="link">Logout</button></form>`, esc(header.Session.Email))
		}
		io.WriteString(w, `</header>`)

		io.WriteString(w, `<nav class="sidebar">`)
		navLink(w, "/jobs", "jobs", "Jobs", header.Active)
		navLink(w, "/shipments", "shipments", "Shipments", header.Active)
		navLink(w, "/vendors", "vendors", "Vendors", header.Active)
		navLink(w, "/report/dsr", "report", "DSR Report", header.Active)
		io.WriteString(w, `</nav>`)

		io.WriteString(w, `<main id="content">`)
		if err := body.Render(context.Background(), w); err != nil {
			return err
		}
		io.WriteString(w, `</main><div id="toast-root"></div></body></html>`)
		return nil
	})
}

// ErrorBanner renders a dismissible banner carrying a store error message
// verbatim. An empty message renders nothing.
func ErrorBanner(w io.Writer, message string) {
	if message == "" {
		return
	}
	fmt.Fprintf(w,
		`<div class="banner banner-error" role="alert">%s <button type="button" onclick="this.parentElement.remove()">Dismiss</button></div>`,
		esc(message))
}
