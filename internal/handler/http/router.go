package http

import (
	"log/slog"
	"os"

	"github.com/giodelapiedra/aegira-backend-go/internal/handler/http/middleware"
	"github.com/giodelapiedra/aegira-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppName        string
	AppVersion     string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	scheduleHandler TeamScheduleHandler,
	exemptionHandler ExemptionHandler,
	checkInHandler CheckInHandler,
	eligibilityHandler EligibilityHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/company", func(r chi.Router) {
				r.Get("/", companyHandler.GetMyCompany)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", companyHandler.UpdateMyCompany)
				})
			})

			r.Route("/team-schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", scheduleHandler.Upsert)
					r.Put("/{id}", scheduleHandler.Upsert)
					r.Delete("/{id}", scheduleHandler.Delete)
				})
			})

			r.Route("/exemptions", func(r chi.Router) {
				r.Post("/", exemptionHandler.Create)
				r.Get("/my", exemptionHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", exemptionHandler.Approve)
					r.Post("/{id}/reject", exemptionHandler.Reject)
					r.Post("/{id}/end-early", exemptionHandler.EndEarly)
				})
			})

			r.Route("/check-ins", func(r chi.Router) {
				r.Post("/", checkInHandler.CheckIn)
				r.Get("/my", checkInHandler.ListMyCheckIns)
				r.Get("/eligibility", eligibilityHandler.GetMyEligibility)
			})
		})
	})
	return r
}
