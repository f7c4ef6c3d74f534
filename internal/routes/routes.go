package routes

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/redis/go-redis/v9"

	"github.com/worksite/onsite_backend/config"
	"github.com/worksite/onsite_backend/db"
	authHandlers "github.com/worksite/onsite_backend/internal/handlers/auth"
	geoHandlers "github.com/worksite/onsite_backend/internal/handlers/geo"
	reportHandlers "github.com/worksite/onsite_backend/internal/handlers/report"
	shiftHandlers "github.com/worksite/onsite_backend/internal/handlers/shift"
	"github.com/worksite/onsite_backend/internal/middleware"
	"github.com/worksite/onsite_backend/internal/pkg/response"
	"github.com/worksite/onsite_backend/internal/repositories"
	authService "github.com/worksite/onsite_backend/internal/services/auth"
	geoService "github.com/worksite/onsite_backend/internal/services/geo"
	shiftService "github.com/worksite/onsite_backend/internal/services/shift"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "onsite-worker-backend"

// Setup wires repositories, services and handlers into the router. Routes
// fall into exactly three auth classes: public, bearer-token and
// supervisor-secret; the two credential mechanisms never compose.
func Setup(cfg *config.Config, database *sql.DB, redisClient *redis.Client) *chi.Mux {
	jwtAuth := jwtauth.New("HS256", []byte(cfg.JwtSecret), nil)
	jwtService := authService.NewJWTService(cfg.JwtSecret)

	gateway := db.NewGateway(database)
	userRepo := repositories.NewUserRepository(gateway)
	shiftRepo := repositories.NewShiftRepository(gateway)
	crumbRepo := repositories.NewBreadcrumbRepository(gateway)

	creds := authService.NewCredentialService(userRepo, jwtService)
	shifts := shiftService.NewService(shiftRepo)
	geoSvc := geoService.NewGeoTrackService(crumbRepo, redisClient)

	authHandler := authHandlers.NewAuthHandler(creds)
	shiftHandler := shiftHandlers.NewShiftHandler(shifts)
	crumbHandler := geoHandlers.NewBreadcrumbHandler(geoSvc)
	reportHandler := reportHandlers.NewReportHandler(shifts, geoSvc)

	router := chi.NewRouter()
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(jwtauth.Verifier(jwtAuth))
	router.Use(middleware.AddUserIDToContext())

	// Public routes
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"ok":      true,
			"service": ServiceName,
		})
	})
	router.Post("/auth/register", authHandler.RegisterHandler)
	router.Post("/auth/login", authHandler.LoginHandler)
	router.Post("/shifts/start", shiftHandler.StartHandler)
	router.Post("/shifts/end", shiftHandler.EndHandler)
	router.Get("/shifts/status", shiftHandler.StatusHandler)
	router.Post("/breadcrumbs", crumbHandler.RecordHandler)

	// Bearer-token routes
	router.Group(func(r chi.Router) {
		r.Use(jwtauth.Authenticator(jwtAuth))
		r.Get("/auth/me", authHandler.MeHandler)
	})

	// Supervisor routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.SupervisorOnly(cfg.SupervisorToken))
		r.Post("/shifts/end-all", shiftHandler.EndAllHandler)
		r.Get("/shifts/active", shiftHandler.ActiveHandler)
		r.Get("/debug/shift", shiftHandler.DebugShiftHandler)
		r.Get("/breadcrumbs", crumbHandler.ListHandler)
		r.Get("/locations/last", crumbHandler.LastLocationsHandler)
		r.Get("/reports/shift", reportHandler.CSVHandler)
		r.Get("/reports/shift.xlsx", reportHandler.XLSXHandler)
	})

	return router
}
