package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/config"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/domain/setting"
	appHTTP "github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/handler/http"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/cloudinary"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/database"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/email"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/geo"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/jwt"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/repository/postgresql"
	attendanceService "github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/service/attendance"
	serviceAuth "github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/service/auth"
	locationService "github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/service/location"
	reportService "github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/service/report"
	userService "github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	settings := setting.NewStore(settingRepo)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	timezones, err := geo.NewTimezoneLookup()
	if err != nil {
		// Check-ins still work without zone resolution, they just classify
		// against the host clock.
		slog.Warn("timezone lookup unavailable", "error", err)
		timezones = nil
	}
	geocoder := geo.NewReverseGeocoder(cfg.Geocode, nil)
	locator := geo.NewNetworkLocator(cfg.Geocode.UserAgent, nil)

	var photoStore attendanceService.PhotoStore
	if cfg.Cloudinary.Configured() {
		photoStore = cloudinary.New(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
		)
	} else {
		slog.Warn("cloudinary not configured, photo endpoints disabled")
	}

	authSvc := serviceAuth.NewAuthService(userRepo, refreshTokenRepo, postgresql.NewTransactor(db), JWTService, emailService, cfg.App.AdminInviteCode, cfg.App.BaseURL)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settings, timezones, geocoder, photoStore)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo, settings)
	userSvc := userService.NewUserService(userRepo)
	locationSvc := locationService.NewLocationService(locator)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	adminHandler := appHTTP.NewAdminHandler(settings, reportSvc, attendanceSvc, userSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		adminHandler,
		locationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
