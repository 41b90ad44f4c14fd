package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginData feeds the login form.
type LoginData struct {
	Email string
	Error string
}

// LoginPage renders the standalone login screen. It deliberately skips the
// shell: there is no session to build the chrome from.
func LoginPage(data LoginData) templ.Component {
	return component(func(w io.Writer) error {
		io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Sign in — FreightDesk</title><link rel="stylesheet" href="/static/app.css"></head><body class="login">`)
		io.WriteString(w, `<main class="login-card"><h1>FreightDesk</h1>`)
		if data.Error != "" {
			fmt.Fprintf(w, `<div class="banner banner-error">%s</div>`, esc(data.Error))
		}
		io.WriteString(w, `<form method="post" action="/login">`)
		fmt.Fprintf(w, `<label for="email">Email</label><input type="email" id="email" name="email" value=%q required>`, esc(data.Email))
		io.WriteString(w, `<label for="password">Password</label><input type="password" id="password" name="password" required>`)
		io.WriteString(w, `<button type="submit">Sign in</button></form></main></body></html>`)
		return nil
	})
}
