package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/auth-audit/userctx"
)

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID := sess.Get("user_id")

		if userID == nil {
			// Store the intended destination for redirect after login
			sess.Set("redirect_after_login", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Add user identity to request context for use in handlers
		ctx := r.Context()
		if id, ok := userID.(string); ok {
			ctx = userctx.SetUserID(ctx, id)
		}
		if name, ok := sess.Get("username").(string); ok {
			ctx = userctx.SetUsername(ctx, name)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
