package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/auth"
	authpg "github.com/furnimed/catalog-admin/internal/auth/postgres"
	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/employee"
	"github.com/furnimed/catalog-admin/internal/medical"
	"github.com/furnimed/catalog-admin/internal/product"
	"github.com/furnimed/catalog-admin/internal/transport/rest"
	"github.com/furnimed/catalog-admin/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Gorm     *gorm.DB
	Sessions auth.SessionStore
	Router   *chi.Mux
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.Sessions.Close(); err != nil {
			slog.Error("Session store close error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config
	sessionCookie := cfg.Session.Cookie()
	sessionTTL := cfg.Session.Lifetime()

	authService := auth.NewService(
		authpg.NewRepository(deps.Gorm),
		deps.Sessions,
		cfg.Security.BCryptCost,
		sessionTTL,
		deps.Logger,
	)

	productRepo := catalog.NewRepository[product.Product](deps.Gorm, "products")
	employeeRepo := catalog.NewRepository[employee.Employee](deps.Gorm, "employees")
	medicalGoodsRepo := catalog.NewRepository[medical.Good](deps.Gorm, medical.TableMedicalGoods)
	medicinesRepo := catalog.NewRepository[medical.Good](deps.Gorm, medical.TableMedicines)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(authService, sessionCookie, sessionTTL),
		Products:     product.NewHandler(product.NewService(productRepo, deps.Logger)),
		Employees:    employee.NewHandler(employee.NewService(employeeRepo, deps.Logger)),
		MedicalGoods: medical.NewHandler(medical.NewService(medicalGoodsRepo, "medical goods", deps.Logger)),
		Medicines:    medical.NewHandler(medical.NewService(medicinesRepo, "medicines", deps.Logger)),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, cfg.Server.AllowedOrigins, cfg.Server.StaticDir, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Environment)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	sessions := newSessionStore(config.Session)
	router := chi.NewRouter()

	return &Dependencies{
		Config:   config,
		Logger:   logger.L(),
		DB:       db,
		Gorm:     gormDB,
		Sessions: sessions,
		Router:   router,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Open(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// A dead database at startup is not fatal: the server comes up and the
	// health endpoint reports unhealthy until the database returns.
	if err := dbConn.Ping(); err != nil {
		slog.Warn("database unreachable at startup", "error", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-pooled pgx connection so both
// query paths share one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// the sqlx pool already pings; opening must not fail when the
		// database is briefly unreachable
		DisableAutomaticPing: true,
	})
}

func newSessionStore(cfg internal.SessionConfig) auth.SessionStore {
	switch cfg.StoreKind() {
	case "redis":
		slog.Info("using redis session store", "addr", cfg.Redis.Addr)
		return auth.NewRedisSessionStore(cfg.Redis)
	default:
		return auth.NewMemorySessionStore()
	}
}
