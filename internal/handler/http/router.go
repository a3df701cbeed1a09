package http

import (
	"log/slog"
	"os"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/config"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/handler/http/middleware"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	adminHandler AdminHandler,
	locationHandler LocationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.BaseURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.CheckIn)
				r.Get("/today", attendanceHandler.Today)
				r.Post("/photo", attendanceHandler.UploadPhoto)
				// Owner or admin, enforced in the service
				r.Delete("/{recordID}", attendanceHandler.Delete)
			})

			r.Get("/location/network", locationHandler.NetworkLocate)

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", adminHandler.GetSettings)
					r.Put("/", adminHandler.UpdateSettings)
				})

				r.Get("/users", adminHandler.ListUsers)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", adminHandler.DailyRoster)
					r.Get("/export", adminHandler.ExportRange)
					r.Put("/{recordID}/flag", adminHandler.SetFlag)
				})

				r.Route("/users/{userID}", func(r chi.Router) {
					r.Get("/attendance", adminHandler.MonthlyHistory)
					r.Get("/attendance/export", adminHandler.ExportUserMonth)
				})
			})
		})
	})

	return r
}
