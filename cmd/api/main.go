package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/config"
	"github.com/annorax/sleek-travel-backend/internal/notify"
	"github.com/annorax/sleek-travel-backend/internal/observability/logging"
	"github.com/annorax/sleek-travel-backend/internal/observability/metrics"
	obsmw "github.com/annorax/sleek-travel-backend/internal/observability/middleware"
	"github.com/annorax/sleek-travel-backend/internal/service/impl"
	"github.com/annorax/sleek-travel-backend/internal/store"
	httpx "github.com/annorax/sleek-travel-backend/internal/transport/http"
	"github.com/annorax/sleek-travel-backend/pkg/db"
	"github.com/joho/godotenv"
)

func main() {
	// .env is a dev convenience; absence is fine.
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "api",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	cfg := config.Load()
	metrics.MustRegister("api")

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	st := store.New(gdb)

	// All clients below are constructed once and shared read-only.
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	sms := notify.NewSmsSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	notifier := notify.NewDispatcher(mailer, sms)

	passwords := impl.NewPasswordServiceArgon2id()
	linkTokens, err := impl.NewSignedTokenServiceHS256([]byte(cfg.VerificationSecret), "email-verification")
	if err != nil {
		logger.Error("link token service", "error", err)
		os.Exit(1)
	}
	resetTokens, err := impl.NewSignedTokenServiceHS256([]byte(cfg.AuthSecret), "password-reset")
	if err != nil {
		logger.Error("reset token service", "error", err)
		os.Exit(1)
	}
	sessions := impl.NewSessionServiceImpl(st)
	otp := impl.NewOtpServiceImpl(st.Users(), notifier, cfg.OtpTTL)
	users := impl.NewUserServiceImpl(
		st.Users(), sessions, passwords, linkTokens, resetTokens, otp, notifier,
		cfg.ClientBaseURL, cfg.LinkTTL,
	)

	router := httpx.NewRouter(httpx.Config{CORSOrigins: cfg.CORSOrigins}, users, sessions, st.Logins())
	handler := obsmw.WithRequestAndTrace(obsmw.WithMetrics(router))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("api listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
