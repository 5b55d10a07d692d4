// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"nutricoach/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO configuration.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	goals     *app.GoalService
	meals     *app.MealService
	adherence *app.AdherenceService
	authSvc   *app.AuthService

	oidcConfig  OIDCConfig
	corsOrigins []string
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(gs *app.GoalService, ms *app.MealService, as *app.AdherenceService, auth *app.AuthService, oidcCfg OIDCConfig, corsOrigins []string) *Server {
	return &Server{
		goals:       gs,
		meals:       ms,
		adherence:   as,
		authSvc:     auth,
		oidcConfig:  oidcCfg,
		corsOrigins: corsOrigins,
	}
}

// WithoutAuth disables authentication; requests act as a fixed test user.
// For tests only.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)
	api.HandleFunc("/auth/setup", s.handleSetupUser).Methods(http.MethodPost)
	api.HandleFunc("/auth/config", s.handleConfig).Methods(http.MethodGet)
	api.HandleFunc("/auth/sso", s.handleSSOLogin).Methods(http.MethodGet)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)

	protected.HandleFunc("/profile", s.handleProfileGet).Methods(http.MethodGet)
	protected.HandleFunc("/profile", s.handleProfilePut).Methods(http.MethodPut)
	protected.HandleFunc("/goals", s.handleGoals).Methods(http.MethodGet)
	protected.HandleFunc("/bmi", s.handleBMI).Methods(http.MethodGet)

	protected.HandleFunc("/food/normalize", s.handleFoodNormalize).Methods(http.MethodPost)

	protected.HandleFunc("/meals", s.handleMealLog).Methods(http.MethodPost)
	protected.HandleFunc("/meals", s.handleMealsForDay).Methods(http.MethodGet)
	protected.HandleFunc("/meals/{id:[0-9]+}", s.handleMealDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/meals/totals", s.handleDayTotals).Methods(http.MethodGet)

	protected.HandleFunc("/adherence/week", s.handleAdherenceWeek).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return withLogging(withNoCache(c.Handler(r)))
}
