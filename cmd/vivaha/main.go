package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"vivaha/config"
	"vivaha/internal/delivery"
	"vivaha/internal/delivery/http"
	"vivaha/internal/delivery/http/middleware"
	"vivaha/internal/delivery/http/router/handler"
	"vivaha/internal/domain/service"
	"vivaha/internal/infra/assistant"
	"vivaha/internal/infra/auth"
	"vivaha/internal/infra/cache"
	"vivaha/internal/infra/geocode"
	logs "vivaha/internal/infra/log"
	"vivaha/internal/infra/mailer"
	"vivaha/internal/infra/persistence/surreal"
	"vivaha/internal/infra/qrcode"
	"vivaha/internal/usecase/impl"

	"github.com/surrealdb/surrealdb.go"
	"go.uber.org/fx"
)

const defaultCacheTTL = 24 * time.Hour

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newSurrealClient,
	)
}

func newSurrealClient(ctx context.Context, cfg *config.Config) (*surrealdb.DB, error) {
	return surreal.NewClient(ctx, cfg.SurrealDB)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			surreal.NewUserRepository,
			surreal.NewWorkspaceRepository,
			surreal.NewGuestRepository,
			surreal.NewBudgetRepository,
			surreal.NewTodoRepository,
			surreal.NewRegistryRepository,
			surreal.NewVendorRepository,
			surreal.NewSeatingRepository,
			surreal.NewPostRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newCacheStore,
			newQRCodeService,
			newMailer,
			newAssistantClient,
			newGeocoder,
		),
	)
}

// newCacheStore wires the TTL cache over Redis, falling back to the in-memory
// store when Redis is not configured.
func newCacheStore(cfg *config.Config) (service.CacheStore, error) {
	ttl := defaultCacheTTL
	if cfg.Cache != nil && cfg.Cache.DefaultTTL > 0 {
		ttl = cfg.Cache.DefaultTTL
	}

	if cfg.Redis == nil {
		return cache.New(cache.NewMemoryStore(), ttl), nil
	}

	kv, err := cache.NewRedisStore(cfg.Redis)
	if err != nil {
		return nil, err
	}

	return cache.New(kv, ttl), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	mailerCfg := cfg.Mailer
	if mailerCfg == nil {
		// Disabled mailer logs and drops outbound email.
		mailerCfg = &config.MailerConfig{}
	}

	return mailer.NewResendMailer(mailerCfg, logger)
}

func newAssistantClient(cfg *config.Config) service.AssistantClient {
	assistantCfg := cfg.Assistant
	if assistantCfg == nil {
		assistantCfg = &config.AssistantConfig{}
	}

	return assistant.NewAnthropicClient(assistantCfg)
}

func newGeocoder(cfg *config.Config) service.Geocoder {
	geocodeCfg := cfg.Geocode
	if geocodeCfg == nil {
		geocodeCfg = &config.GeocodeConfig{}
	}

	return geocode.NewNominatimGeocoder(geocodeCfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewWorkspaceService,
			impl.NewSyncService,
			impl.NewGuestService,
			impl.NewBudgetService,
			impl.NewTodoService,
			impl.NewRegistryService,
			impl.NewVendorService,
			impl.NewSeatingService,
			impl.NewPostService,
			impl.NewAssistantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSyncHandler,
			handler.NewGuestHandler,
			handler.NewBudgetHandler,
			handler.NewTodoHandler,
			handler.NewRegistryHandler,
			handler.NewVendorHandler,
			handler.NewSeatingHandler,
			handler.NewWorkspaceHandler,
			handler.NewPostHandler,
			handler.NewAssistantHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
