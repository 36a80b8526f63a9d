package controllers

import (
	"fmt"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/auth-audit/userctx"
)

// HomeController renders the landing page and the protected profile page.
type HomeController struct{}

// NewHomeController creates a new home controller
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index shows a landing page, or a welcome page when logged in
func (hc *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")

	sess := session.GetSession(r)
	if name, ok := sess.Get("username").(string); ok && name != "" {
		fmt.Fprintf(w, `<h1>Welcome, %s</h1>
<p><a href="/profile">Profile</a> | <a href="/logout">Log out</a></p>`, name)
		return
	}

	fmt.Fprint(w, `<h1>Auth audit demo</h1>
<p><a href="/login">Log in</a> or <a href="/register">register</a>.</p>`)
}

// Profile shows the authenticated user's identity from the request context
func (hc *HomeController) Profile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<h1>Profile</h1>
<p>Logged in as %s (id %s)</p>
<p><a href="/">Home</a></p>`,
		userctx.GetUsername(r.Context()), userctx.GetUserID(r.Context()))
}
