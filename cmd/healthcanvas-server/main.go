package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthcanvas/healthcanvas/internal/config"
	"github.com/healthcanvas/healthcanvas/internal/domain/aiassist"
	"github.com/healthcanvas/healthcanvas/internal/domain/allergy"
	"github.com/healthcanvas/healthcanvas/internal/domain/biomarker"
	"github.com/healthcanvas/healthcanvas/internal/domain/condition"
	"github.com/healthcanvas/healthcanvas/internal/domain/dashboard"
	"github.com/healthcanvas/healthcanvas/internal/domain/family"
	"github.com/healthcanvas/healthcanvas/internal/domain/goal"
	"github.com/healthcanvas/healthcanvas/internal/domain/healthscore"
	"github.com/healthcanvas/healthcanvas/internal/domain/journal"
	"github.com/healthcanvas/healthcanvas/internal/domain/medication"
	"github.com/healthcanvas/healthcanvas/internal/domain/observation"
	"github.com/healthcanvas/healthcanvas/internal/domain/procedure"
	"github.com/healthcanvas/healthcanvas/internal/domain/user"
	"github.com/healthcanvas/healthcanvas/internal/domain/vaccination"
	"github.com/healthcanvas/healthcanvas/internal/domain/visitprep"
	"github.com/healthcanvas/healthcanvas/internal/platform/ai"
	"github.com/healthcanvas/healthcanvas/internal/platform/auth"
	"github.com/healthcanvas/healthcanvas/internal/platform/db"
	"github.com/healthcanvas/healthcanvas/internal/platform/middleware"
	"github.com/healthcanvas/healthcanvas/internal/platform/pdf"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthcanvas-server",
		Short: "HealthCanvas API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())
	aiClient := ai.NewClient(ai.Config{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.AITimeout(),
	})
	if !aiClient.Configured() {
		logger.Warn().Msg("GEMINI_API_KEY not set, AI endpoints will be unavailable")
	}
	renderer := pdf.NewRenderer()

	// Domain services
	userSvc := user.NewService(user.NewRepoPG(pool), issuer)
	biomarkerRepo := biomarker.NewRepoPG(pool)
	biomarkerSvc := biomarker.NewService(biomarkerRepo)
	observationSvc := observation.NewService(observation.NewRepoPG(pool), biomarkerRepo)
	medicationSvc := medication.NewService(medication.NewRepoPG(pool))
	conditionSvc := condition.NewService(condition.NewRepoPG(pool))
	allergySvc := allergy.NewService(allergy.NewRepoPG(pool))
	vaccinationSvc := vaccination.NewService(vaccination.NewRepoPG(pool))
	procedureSvc := procedure.NewService(procedure.NewRepoPG(pool))
	goalSvc := goal.NewService(goal.NewRepoPG(pool))
	journalSvc := journal.NewService(journal.NewRepoPG(pool))
	familySvc := family.NewService(family.NewRepoPG(pool))
	scoreRepo := healthscore.NewRepoPG(pool)
	dashboardSvc := dashboard.NewService(scoreRepo, observationSvc, medicationSvc, conditionSvc)
	visitprepSvc := visitprep.NewService(
		observationSvc, medicationSvc, conditionSvc, allergySvc,
		userSvc, scoreRepo, aiClient, renderer, logger,
	)
	aiassistSvc := aiassist.NewService(biomarkerSvc, observationSvc, conditionSvc, medicationSvc, aiClient)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.BodyLimit("10M"))
	e.Use(auth.Middleware(issuer, userSvc, auth.DefaultSkipper))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "version": version})
	})
	e.GET("/health/db", db.HealthHandler(pool))
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "HealthCanvas API", "version": version})
	})

	api := e.Group("/api")
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	user.NewHandler(userSvc).RegisterRoutes(api)
	biomarker.NewHandler(biomarkerSvc).RegisterRoutes(api)
	observation.NewHandler(observationSvc).RegisterRoutes(api)
	medication.NewHandler(medicationSvc).RegisterRoutes(api)
	condition.NewHandler(conditionSvc).RegisterRoutes(api)
	allergy.NewHandler(allergySvc).RegisterRoutes(api)
	vaccination.NewHandler(vaccinationSvc).RegisterRoutes(api)
	procedure.NewHandler(procedureSvc).RegisterRoutes(api)
	goal.NewHandler(goalSvc).RegisterRoutes(api)
	journal.NewHandler(journalSvc).RegisterRoutes(api)
	family.NewHandler(familySvc).RegisterRoutes(api)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)
	visitprep.NewHandler(visitprepSvc).RegisterRoutes(api)
	aiassist.NewHandler(aiassistSvc).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
