package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/config"
	"github.com/2beens/fitplan/internal/db"
	"github.com/2beens/fitplan/internal/gymstats/bodycomp"
	"github.com/2beens/fitplan/internal/gymstats/plans"
	"github.com/2beens/fitplan/internal/gymstats/templates"
	"github.com/2beens/fitplan/internal/journal"
	"github.com/2beens/fitplan/internal/middleware"
	"github.com/2beens/fitplan/internal/misc"
	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient    *redis.Client
	rateLimiter    middleware.RequestRateLimiter
	loginChecker   auth.Checker
	authService    *auth.Service
	stopSessionsGC context.CancelFunc

	// handlers
	miscHandler      *misc.Handler
	plansHandler     *plans.Handler
	templatesHandler *templates.Handler
	bodyCompHandler  *bodycomp.Handler
	journalHandler   *journal.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
	InitDB                  bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.InitDB {
		if err := db.ApplySchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, err
		}
		log.Infoln("db schema initialized")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "fitplan", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitplan-backend", rdb)
	if err != nil {
		return nil, err
	}

	authService := auth.NewAuthService(auth.NewUsersRepo(dbPool), cfg.SessionTTL.Duration, rdb)

	bodyCompService := bodycomp.NewService(bodycomp.NewRepo(dbPool))
	plansService := plans.NewService(plans.NewRepo(dbPool), bodyCompService)
	templatesService := templates.NewService(templates.NewRepo(dbPool), plansService)

	s := &Server{
		config: cfg,
		dbPool: dbPool,

		redisClient:  rdb,
		rateLimiter:  redis_rate.NewLimiter(rdb),
		authService:  authService,
		loginChecker: auth.NewLoginChecker(cfg.SessionTTL.Duration, rdb),

		miscHandler:      misc.NewHandler(params.VersionInfo, authService),
		plansHandler:     plans.NewHandler(plansService, metricsManager, cfg.DefaultPlansWindowDays),
		templatesHandler: templates.NewHandler(templatesService, metricsManager),
		bodyCompHandler:  bodycomp.NewHandler(bodyCompService),
		journalHandler:   journal.NewHandler(journal.NewRepo(dbPool), metricsManager),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	s.miscHandler.SetupRoutes(r, s.rateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	plansHandler := s.plansHandler
	r.HandleFunc("/exercise-plan", plansHandler.HandleCreatePlan).Methods("POST", "OPTIONS").Name("new-exercise-plan")
	r.HandleFunc("/exercises", plansHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/weekly", plansHandler.HandleListWeekly).Methods("GET", "OPTIONS").Name("list-exercises-weekly")
	r.HandleFunc("/exercises/monthly", plansHandler.HandleListMonthly).Methods("GET", "OPTIONS").Name("list-exercises-monthly")
	r.HandleFunc("/exercises/{id:[0-9]+}", plansHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}", plansHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}", plansHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}/sets", plansHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("new-exercise-set")
	r.HandleFunc("/exercise-sets/{id:[0-9]+}", plansHandler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-exercise-set")
	r.HandleFunc("/exercise-sets/{id:[0-9]+}", plansHandler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-exercise-set")
	r.HandleFunc("/exercise-sets/{id:[0-9]+}/details", plansHandler.HandleAddDetail).Methods("POST", "OPTIONS").Name("new-set-detail")
	r.HandleFunc("/set-details/{id:[0-9]+}", plansHandler.HandleUpdateDetail).Methods("PUT", "OPTIONS").Name("update-set-detail")
	r.HandleFunc("/set-details/{id:[0-9]+}", plansHandler.HandleDeleteDetail).Methods("DELETE", "OPTIONS").Name("delete-set-detail")
	r.HandleFunc("/exercise-types", plansHandler.HandleListTypes).Methods("GET", "OPTIONS").Name("list-exercise-types")
	r.HandleFunc("/exercise-types", plansHandler.HandleAddType).Methods("POST", "OPTIONS").Name("new-exercise-type")

	templatesHandler := s.templatesHandler
	r.HandleFunc("/templates", templatesHandler.HandleSave).Methods("POST", "OPTIONS").Name("new-template")
	r.HandleFunc("/templates", templatesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/templates/{id:[0-9]+}", templatesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-template")
	r.HandleFunc("/templates/{id:[0-9]+}", templatesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-template")
	r.HandleFunc("/templates/{id:[0-9]+}", templatesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-template")
	r.HandleFunc("/templates/{id:[0-9]+}/create", templatesHandler.HandleCreateFromTemplate).Methods("POST", "OPTIONS").Name("create-from-template")
	r.HandleFunc("/templates/{id:[0-9]+}/duplicate", templatesHandler.HandleDuplicate).Methods("POST", "OPTIONS").Name("duplicate-template")

	r.HandleFunc("/body-composition", s.bodyCompHandler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-body-composition")
	r.HandleFunc("/body-composition", s.bodyCompHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-body-composition")

	journalHandler := s.journalHandler
	r.HandleFunc("/journal", journalHandler.HandleList).Methods("GET", "OPTIONS").Name("list-journal-entries")
	r.HandleFunc("/journal", journalHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-journal-entry")
	r.HandleFunc("/journal/{id:[0-9]+}", journalHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-journal-entry")
	r.HandleFunc("/journal/{id:[0-9]+}", journalHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-journal-entry")
	r.HandleFunc("/journal/{id:[0-9]+}", journalHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-journal-entry")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	gcCtx, stopSessionsGC := context.WithCancel(ctx)
	s.stopSessionsGC = stopSessionsGC
	go s.runSessionsCleanup(gcCtx, sessionsCleanupInterval)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) runSessionsCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.stopSessionsGC != nil {
		s.stopSessionsGC()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeConnections.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeConnections.Add(-1)
	default:
		// do nothing
	}
}
