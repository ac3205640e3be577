package di

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/neutralpress/member-service/internal/app"
	"github.com/neutralpress/member-service/internal/config"
	"github.com/neutralpress/member-service/internal/database"
	"github.com/neutralpress/member-service/internal/http/handler"
	"github.com/neutralpress/member-service/internal/http/router"
	"github.com/neutralpress/member-service/internal/observability"
	"github.com/neutralpress/member-service/internal/repository"
	"github.com/neutralpress/member-service/internal/security"
	"github.com/neutralpress/member-service/internal/service"
)

var (
	ConfigSet        = wire.NewSet(config.Load)
	ObservabilitySet = wire.NewSet(provideLogger)
	RuntimeInfraSet  = wire.NewSet(provideOpenDB, provideRedisClient)
	RepositorySet    = wire.NewSet(provideMemberRepository)
	SecuritySet      = wire.NewSet(provideJWTManager, providePasswordHasher, provideTokenIssuer)
	ServiceSet       = wire.NewSet(provideVerificationStore, provideNotifier, provideMemberService)
	HTTPSet          = wire.NewSet(
		handler.NewMemberHandler,
		provideHealthHandler,
		provideRouterDependencies,
		router.New,
		provideHTTPServer,
	)
	AppSet = wire.NewSet(app.New)
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return observability.NewLogger(cfg.Env)
}

func provideOpenDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

func provideRedisClient(cfg *config.Config) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func provideMemberRepository(db *gorm.DB) repository.MemberRepository {
	return repository.NewGormMemberRepository(db)
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
}

func providePasswordHasher() security.PasswordHasher {
	return security.NewBcryptHasher()
}

func provideTokenIssuer(manager *security.JWTManager, cfg *config.Config) service.TokenIssuer {
	return security.NewTokenIssuer(manager, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
}

func provideVerificationStore(client redis.UniversalClient) service.VerificationStore {
	return service.NewRedisVerificationStore(client, "reset")
}

func provideNotifier(cfg *config.Config, logger *slog.Logger) service.Notifier {
	if cfg.NotifierMode == "smtp" {
		return service.NewSMTPNotifier(cfg.SMTPAddr, cfg.SMTPFrom, logger)
	}
	return service.NewDevNotifier(logger)
}

func provideMemberService(
	members repository.MemberRepository,
	hasher security.PasswordHasher,
	tokens service.TokenIssuer,
	store service.VerificationStore,
	notifier service.Notifier,
	logger *slog.Logger,
	cfg *config.Config,
) service.MemberServiceInterface {
	return service.NewMemberService(members, hasher, tokens, store, notifier, logger, cfg.ResetCodeTTL)
}

func provideHealthHandler(db *gorm.DB, client redis.UniversalClient) *handler.HealthHandler {
	return handler.NewHealthHandler(db, client)
}

func provideRouterDependencies(
	logger *slog.Logger,
	jwtManager *security.JWTManager,
	memberHandler *handler.MemberHandler,
	healthHandler *handler.HealthHandler,
) router.Dependencies {
	return router.Dependencies{
		Logger:        logger,
		JWTManager:    jwtManager,
		MemberHandler: memberHandler,
		HealthHandler: healthHandler,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

type MigrationRunner struct {
	db *gorm.DB
}

func NewMigrationRunner(db *gorm.DB) *MigrationRunner {
	return &MigrationRunner{db: db}
}

func (r *MigrationRunner) Run() error {
	return database.Migrate(r.db)
}
