package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/blogem/auth-audit/auditing"
	"github.com/blogem/auth-audit/authenticator"
	"github.com/blogem/auth-audit/controllers"
	"github.com/blogem/auth-audit/database"
	"github.com/blogem/auth-audit/logging"
	authmiddleware "github.com/blogem/auth-audit/middleware"
	"github.com/blogem/auth-audit/repositories"
	"github.com/blogem/auth-audit/services"
	"github.com/blogem/auth-audit/signals"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load environment variables from .env file, if one exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize database
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "auth_audit.db"
	}
	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos)

	// SIEM audit channel: logrus emitter plus the auth event receivers
	emitter := logging.NewLogrusEmitter(logging.NewLogger(os.Getenv("AUDIT_LOG_FORMAT")))
	usernameField := os.Getenv("AUDIT_USERNAME_FIELD")

	bus := signals.NewBus()
	auditing.NewReceivers(emitter, usernameField).Register(bus)

	// Initialize OIDC provider when configured
	var provider authenticator.Provider
	if os.Getenv("OIDC_DOMAIN") != "" {
		provider, err = authenticator.NewOIDCProvider(authenticator.Config{
			Domain:       os.Getenv("OIDC_DOMAIN"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
		})
		if err != nil {
			log.Fatalf("Failed to initialize OIDC provider: %v", err)
		}
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, bus, provider, usernameField)

	// Set up router
	r, err := setupRouter(ctrl, emitter)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Auth audit demo starting on port %s\n", port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", port)
	fmt.Printf("🗃️  Database: %s\n", dbPath)

	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, emitter logging.Emitter) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Determine if we should use secure cookies (HTTPS)
	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "auth_audit_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Request headers logging on the audit channel
	r.Use(authmiddleware.RequestHeadersLogger(emitter))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Home.Index)
	r.Get("/login", ctrl.Auth.ShowLogin)
	r.Post("/login", ctrl.Auth.Login)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/register", ctrl.Auth.ShowRegister)
	r.Post("/register", ctrl.Auth.Register)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "auth-audit"}`)
	})

	// OIDC routes, only when a provider is configured
	if ctrl.OIDC != nil {
		r.Get("/oidc/login", ctrl.OIDC.Login)
		r.Get("/callback", ctrl.OIDC.Callback)
	}

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Get("/profile", ctrl.Home.Profile)
	})

	return r, nil
}
