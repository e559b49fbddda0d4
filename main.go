package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/acme/autocert"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Domain     string
	CertDir    string
	DevMode    bool

	AdminToken string

	MapboxToken   string
	MapboxBaseURL string
	ResendKey     string
	ResendBaseURL string
	MailFrom      string
	INatBaseURL   string

	PhotosPerSeason int

	LogLevel  string
	LogFormat string
}

func getConfig() Config {
	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "gardenplanner"),
		DBPassword: getEnv("DB_PASSWORD", "gardenplanner"),
		DBName:     getEnv("DB_NAME", "gardenplanner"),
		Domain:     getEnv("DOMAIN", "plan.marinnativegarden.com"),
		CertDir:    getEnv("CERT_DIR", "/opt/marin-garden/certs"),
		DevMode:    getEnv("DEV_MODE", "false") == "true",

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		MapboxToken:   getEnv("MAPBOX_TOKEN", ""),
		MapboxBaseURL: getEnv("MAPBOX_BASE_URL", "https://api.mapbox.com"),
		ResendKey:     getEnv("RESEND_API_KEY", ""),
		ResendBaseURL: getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		MailFrom:      getEnv("MAIL_FROM", "Marin Native Garden <plans@marinnativegarden.com>"),
		INatBaseURL:   getEnv("INATURALIST_BASE_URL", "https://api.inaturalist.org/v1"),

		PhotosPerSeason: getEnvInt("PHOTOS_PER_SEASON", defaultPhotosPerSeason),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func newLogger(cfg Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.DevMode || cfg.LogFormat == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.With(zap.String("service", "marin-native-garden"))
}

func initDB(cfg Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func main() {
	cfg := getConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	// The planner works without a database; submissions just aren't recorded.
	var store SubmissionStore
	db, err := initDB(cfg)
	if err != nil {
		logger.Warn("database unavailable, submissions will not be recorded", zap.Error(err))
		db = nil
	} else {
		defer db.Close()
		pg := NewPostgresStore(db, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("schema setup failed", zap.Error(err))
		}
		cancel()
		store = pg
		logger.Info("database connected")
	}

	geocoder := NewMapboxClient(cfg.MapboxBaseURL, cfg.MapboxToken, logger)
	photos := NewINaturalistClient(cfg.INatBaseURL, cfg.PhotosPerSeason, logger)
	mailer := NewResendClient(cfg.ResendBaseURL, cfg.ResendKey, cfg.MailFrom, logger)
	renderer := NewGardenPDFRenderer(logger)
	planner := NewPlanner(geocoder, photos, logger)

	srv := &server{
		cfg:     cfg,
		logger:  logger,
		planner: planner,
		store:   store,
		email:   mailer,
		pdf:     renderer,
		db:      db,
	}

	mux := http.NewServeMux()

	// API routes
	mux.HandleFunc("/api/health", srv.handleHealth)
	mux.HandleFunc("/api/plan", srv.handlePlan)
	mux.HandleFunc("/api/admin/submissions", srv.handleAdminSubmissions)
	mux.HandleFunc("/api/admin/submissions/export", srv.handleAdminExport)

	// Static files
	mux.Handle("/", http.FileServer(http.Dir("static")))

	// CORS middleware
	handler := corsMiddleware(mux)

	if cfg.DevMode {
		// Development mode - HTTP only
		logger.Info("starting development server", zap.String("addr", ":8080"))
		if err := http.ListenAndServe(":8080", handler); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	} else {
		// Production mode - HTTPS with ACME
		certManager := autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.Domain),
			Cache:      autocert.DirCache(cfg.CertDir),
		}

		httpsServer := &http.Server{
			Addr:    ":443",
			Handler: handler,
			TLSConfig: &tls.Config{
				GetCertificate: certManager.GetCertificate,
				MinVersion:     tls.VersionTLS12,
			},
		}

		// Internal HTTP on :8080 for inter-container communication
		go func() {
			logger.Info("starting internal API server", zap.String("addr", ":8080"))
			if err := http.ListenAndServe(":8080", handler); err != nil {
				logger.Error("internal API server stopped", zap.Error(err))
			}
		}()

		// HTTP redirect to HTTPS (+ ACME challenge)
		go func() {
			redirectServer := &http.Server{
				Addr:    ":80",
				Handler: certManager.HTTPHandler(http.HandlerFunc(redirectHTTPS)),
			}
			logger.Info("starting HTTP redirect server", zap.String("addr", ":80"))
			if err := redirectServer.ListenAndServe(); err != nil {
				logger.Error("HTTP redirect server stopped", zap.Error(err))
			}
		}()

		logger.Info("starting HTTPS server", zap.String("domain", cfg.Domain), zap.String("addr", ":443"))
		if err := httpsServer.ListenAndServeTLS("", ""); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}
}

func redirectHTTPS(w http.ResponseWriter, r *http.Request) {
	target := "https://" + r.Host + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
