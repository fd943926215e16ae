package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wishbay/wishbay/pkg/authn"
	"github.com/wishbay/wishbay/pkg/config"
	"github.com/wishbay/wishbay/pkg/email"
	"github.com/wishbay/wishbay/pkg/httpserver"
	"github.com/wishbay/wishbay/pkg/jwt"
	"github.com/wishbay/wishbay/pkg/logger"
	"github.com/wishbay/wishbay/pkg/mongo"
	"github.com/wishbay/wishbay/pkg/mongostore"
	"github.com/wishbay/wishbay/pkg/otp"
	"github.com/wishbay/wishbay/pkg/redis"
)

type appConfig struct {
	AppName  string     `env:"APP_NAME" envDefault:"wishbay"`
	AppEnv   string     `env:"APP_ENV" envDefault:"development"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret    string        `env:"JWT_SECRET,required"`
	ResetSecret  string        `env:"RESET_TOKEN_SECRET,required"`
	ResetBaseURL string        `env:"RESET_BASE_URL" envDefault:"http://localhost:3000"`
	OTPTTL       time.Duration `env:"OTP_TTL" envDefault:"10m"`
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`
	DevMailDir   string        `env:"DEV_MAIL_DIR" envDefault:"./tmp/mail"`

	HTTP  httpserver.Config
	Mongo mongo.Config
	Redis redis.Config
	Email email.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.FormatJSON),
		logger.WithService(cfg.AppName, cfg.AppEnv),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := mongo.NewDatabase(connectCtx, cfg.Mongo,
		options.Client().SetRegistry(mongostore.Registry()))
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	store := mongostore.New(db)
	if err := store.EnsureIndexes(connectCtx); err != nil {
		return err
	}

	redisClient, err := redis.Connect(connectCtx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	sessions, err := jwt.NewFromString(cfg.JWTSecret)
	if err != nil {
		return err
	}

	mailer, err := newMailer(cfg, log)
	if err != nil {
		return err
	}

	svc, err := authn.NewService(
		store,
		otp.NewRedisCache(redisClient, cfg.OTPTTL),
		mailer,
		sessions,
		cfg.ResetSecret,
		authn.WithLogger(log),
		authn.WithBcryptCost(cfg.BcryptCost),
		authn.WithResetBaseURL(cfg.ResetBaseURL),
	)
	if err != nil {
		return err
	}
	_ = svc // credential routes are mounted by the embedding application

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log,
		mongo.Healthcheck(db.Client()),
		redis.Healthcheck(redisClient),
	))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	log.InfoContext(ctx, "starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("env", cfg.AppEnv))
	return srv.Run(ctx, r)
}

// newMailer picks the outbound channel: Postmark when credentials are
// present, otherwise the filesystem dev sender.
func newMailer(cfg appConfig, log *slog.Logger) (email.EmailSender, error) {
	if cfg.Email.PostmarkServerToken != "" {
		return email.NewPostmarkClient(cfg.Email)
	}

	log.Warn("postmark credentials missing, writing mail to disk",
		slog.String("dir", cfg.DevMailDir))
	return email.NewDevSender(cfg.DevMailDir), nil
}
