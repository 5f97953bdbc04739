package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"talenthub/internal/domain/audit"
	"talenthub/internal/domain/auth"
	"talenthub/internal/domain/evaluation"
	"talenthub/internal/domain/hire"
	"talenthub/internal/domain/hiring"
	"talenthub/internal/domain/notifications"
	"talenthub/internal/domain/reports"
	platformmw "talenthub/internal/middleware"
	"talenthub/internal/platform/config"
	"talenthub/internal/platform/db"
	"talenthub/internal/platform/metrics"
	adminhandler "talenthub/internal/transport/http/handlers/admin"
	applicationshandler "talenthub/internal/transport/http/handlers/applications"
	authhandler "talenthub/internal/transport/http/handlers/auth"
	contractshandler "talenthub/internal/transport/http/handlers/contracts"
	evaluationshandler "talenthub/internal/transport/http/handlers/evaluations"
	notificationshandler "talenthub/internal/transport/http/handlers/notifications"
	reportshandler "talenthub/internal/transport/http/handlers/reports"
	"talenthub/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.DB.Close()

	log.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	authStore := auth.NewStore(pool)
	auditSvc := audit.New(pool)
	notifySvc := notifications.New(pool)

	hireSvc := hire.NewService(pool)
	hiringStore := hiring.NewStore(pool)
	hiringSvc := hiring.NewService(hiringStore, hireSvc)

	rubric := evaluation.DefaultRubric()
	rubric.PassingThreshold = cfg.PassingThreshold
	evalStore := evaluation.NewStore(pool)
	evalSvc := evaluation.NewService(evalStore, hiringStore, hireSvc, rubric)

	reportsSvc := reports.NewService(reports.NewStore(pool, hiringStore, evalStore))

	router := chi.NewRouter()
	router.Use(platformmw.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authStore, cfg.JWTSecret, auditSvc)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/auth/me", authHandler.HandleMe)

		appsHandler := applicationshandler.NewHandler(hiringSvc, auditSvc, notifySvc)
		evalHandler := evaluationshandler.NewHandler(evalSvc, hireSvc, auditSvc, notifySvc)
		r.Route("/applications", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermApplicationsWrite, authStore)).
				Post("/", appsHandler.HandleCreate)
			r.With(middleware.RequirePermission(auth.PermApplicationsRead, authStore)).
				Get("/", appsHandler.HandleList)

			r.Route("/{id}", func(r chi.Router) {
				r.With(middleware.RequirePermission(auth.PermApplicationsRead, authStore)).
					Get("/", appsHandler.HandleGet)
				r.With(middleware.RequirePermission(auth.PermApplicationsRead, authStore)).
					Get("/interview", appsHandler.HandleGetInterview)
				r.With(middleware.RequirePermission(auth.PermEvaluationsRead, authStore)).
					Get("/evaluation", evalHandler.HandleGetForApplication)

				transition := r.With(middleware.RequirePermission(auth.PermApplicationsTransition, authStore))
				transition.Post("/transition", appsHandler.HandleTransition)
				transition.Post("/endorse", appsHandler.HandleEndorse)
				transition.Post("/dean-decision", appsHandler.HandleDeanDecision)
				transition.Post("/interview", appsHandler.HandleScheduleInterview)
				transition.Post("/reject", appsHandler.HandleReject)
				transition.Post("/hire", appsHandler.HandleHire)
			})
		})

		r.Route("/evaluations", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermEvaluationsWrite, authStore)).
				Post("/", evalHandler.HandleSubmit)
			r.With(middleware.RequirePermission(auth.PermEvaluationsRead, authStore)).
				Get("/", evalHandler.HandleList)
			r.With(middleware.RequirePermission(auth.PermEvaluationsRead, authStore)).
				Get("/{id}", evalHandler.HandleGet)
			r.With(middleware.RequirePermission(auth.PermContractsDecide, authStore)).
				Post("/{id}/contract-decision", evalHandler.HandleContractDecision)
		})

		contractsHandler := contractshandler.NewHandler(hireSvc)
		r.Route("/contracts", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermContractsRead, authStore))
			r.Get("/", contractsHandler.HandleList)
			r.Get("/{id}", contractsHandler.HandleGet)
		})
		r.With(middleware.RequirePermission(auth.PermContractsRead, authStore)).
			Get("/faculty/{applicationId}", contractsHandler.HandleGetFaculty)

		reportsHandler := reportshandler.NewHandler(reportsSvc)
		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermReportsRead, authStore))
			r.Get("/pipeline", reportsHandler.HandlePipeline)
			r.Get("/score-sheet/{applicationId}", reportsHandler.HandleScoreSheet)
		})

		notifyHandler := notificationshandler.NewHandler(notifySvc)
		r.Route("/notifications", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermNotificationsRead, authStore))
			r.Get("/", notifyHandler.HandleList)
			r.Post("/{id}/read", notifyHandler.HandleMarkRead)
		})

		adminHandler := adminhandler.NewHandler(auditSvc, collector)
		r.Route("/admin", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermSystemAdmin, authStore)).
				Get("/metrics", adminHandler.HandleMetrics)
			r.With(middleware.RequirePermission(auth.PermAuditRead, authStore)).
				Get("/audit", adminHandler.HandleAuditList)
		})
	})

	return &App{Config: cfg, DB: pool, Router: router}, nil
}
