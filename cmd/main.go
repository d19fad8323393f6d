package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"spacehub-backend/internal/config"
	spaces_controllers "spacehub-backend/internal/features/spaces/controllers"
	spaces_repositories "spacehub-backend/internal/features/spaces/repositories"
	spaces_services "spacehub-backend/internal/features/spaces/services"
	"spacehub-backend/internal/features/system"
	users_controllers "spacehub-backend/internal/features/users/controllers"
	users_middleware "spacehub-backend/internal/features/users/middleware"
	users_services "spacehub-backend/internal/features/users/services"
	env_utils "spacehub-backend/internal/util/env"
	files_utils "spacehub-backend/internal/util/files"
	"spacehub-backend/internal/util/logger"
	tls_utils "spacehub-backend/internal/util/tls"
	_ "spacehub-backend/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SpaceHub Backend API
// @version 1.0
// @description API for SpaceHub

// @host localhost:4010
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	runMigrations(log)

	err := files_utils.EnsureDirectories([]string{
		config.GetEnv().DataFolder,
	})
	if err != nil {
		log.Error("Failed to ensure directories", "error", err)
		os.Exit(1)
	}

	handlePasswordReset(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf"},
		),
	))

	enableCors(ginApp)
	setUpDependencies()
	setUpRoutes(ginApp)
	runBackgroundTasks(log)

	startServerWithGracefulShutdown(log, ginApp)
}

func handlePasswordReset(log *slog.Logger) {
	newPassword := flag.String("new-password", "", "Set a new password for the user")
	email := flag.String("email", "", "Email of the user to reset password")

	flag.Parse()

	if *newPassword == "" {
		return
	}

	log.Info("Found reset password command - reseting password...")

	if *email == "" {
		log.Info("No email provided, please provide an email via --email=\"some@email.com\" flag")
		os.Exit(1)
	}

	resetPassword(*email, *newPassword, log)
}

func resetPassword(email string, newPassword string, log *slog.Logger) {
	log.Info("Resetting password...")

	userService := users_services.GetUserService()
	err := userService.ChangeUserPasswordByEmail(email, newPassword)
	if err != nil {
		log.Error("Failed to reset password", "error", err)
		os.Exit(1)
	}

	log.Info("Password reset successfully")
	os.Exit(0)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	cfg := config.GetEnv()
	var srv *http.Server
	var httpRedirectSrv *http.Server

	if cfg.EnableHTTPS && cfg.EnvMode == env_utils.EnvModeProduction {
		certManager := tls_utils.NewCertificateManager(cfg.CertsDir)
		certPath, keyPath, err := certManager.EnsureCertificates()
		if err != nil {
			log.Error("Failed to setup TLS certificates", "error", err)
			os.Exit(1)
		}
		log.Info("TLS certificates ready", "certPath", certPath, "keyPath", keyPath)

		srv = &http.Server{
			Addr:    host + ":" + cfg.HTTPSPort,
			Handler: app,
		}

		go func() {
			log.Info("Starting HTTPS server", "addr", srv.Addr)
			if err := srv.ListenAndServeTLS(certPath, keyPath); err != nil &&
				err != http.ErrServerClosed {
				log.Error("HTTPS listen error:", "error", err)
			}
		}()

		httpRedirectSrv = &http.Server{
			Addr: host + ":" + cfg.HTTPPort,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				target := "https://" + r.Host + r.URL.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
			}),
		}

		go func() {
			log.Info("Starting HTTP redirect server", "addr", httpRedirectSrv.Addr)
			if err := httpRedirectSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("HTTP redirect listen error:", "error", err)
			}
		}()

		log.Info(
			"SpaceHub is running with HTTPS!",
			"https", "https://localhost:"+cfg.HTTPSPort,
			"http_redirect", "http://localhost:"+cfg.HTTPPort,
		)
	} else {
		srv = &http.Server{
			Addr:    host + ":" + cfg.HTTPPort,
			Handler: app,
		}

		go func() {
			log.Info("Starting HTTP server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("listen:", "error", err)
			}
		}()

		log.Info("SpaceHub is running!", "http", "http://localhost:"+cfg.HTTPPort)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	if httpRedirectSrv != nil {
		if err := httpRedirectSrv.Shutdown(ctx); err != nil {
			log.Error("HTTP redirect server forced to shutdown:", "error", err)
		}
	}

	log.Info("Server gracefully stopped")
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes (only user auth routes and healthcheck should be public)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)
	system.GetSystemController().RegisterPublicRoutes(v1)

	// Setup auth middleware
	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	users_controllers.GetSettingsController().RegisterRoutes(protected)
	spaces_controllers.GetSpaceController().RegisterRoutes(protected)
	system.GetSystemController().RegisterProtectedRoutes(protected)
}

func setUpDependencies() {
	userService := users_services.GetUserService()
	userService.SetSpaceCounter(spaces_repositories.GetSpaceRepository())
}

func runBackgroundTasks(log *slog.Logger) {
	log.Info("Preparing to run background tasks...")

	go runWithPanicLogging(log, "membership reconcile service", func() {
		spaces_services.GetMembershipReconcileService().Run()
	})
}

func runWithPanicLogging(log *slog.Logger, serviceName string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic in "+serviceName, "error", r)
		}
	}()
	fn()
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	cmd := exec.Command("goose", "up")
	cmd.Env = append(
		os.Environ(),
		"GOOSE_DRIVER=postgres",
		"GOOSE_DBSTRING="+config.GetEnv().DatabaseDsn,
	)

	// Set the working directory to where migrations are located
	cmd.Dir = "./migrations"

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to run migrations", "error", err, "output", string(output))
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully", "output", string(output))
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}
