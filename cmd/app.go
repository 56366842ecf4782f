package main

import (
	"context"
	"fmt"
	"time"

	"crm-web-server/config"
	"crm-web-server/internal/handler"
	"crm-web-server/internal/middleware"
	"crm-web-server/internal/repository"
	"crm-web-server/internal/repository/migrations"
	"crm-web-server/internal/security"
	"crm-web-server/internal/service"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
)

// application : подключения, сервисы и хендлеры одного процесса
type application struct {
	cfg *config.AppConfig

	db          *config.Database
	mongoClient *config.MongoClient
	redisClient *config.RedisClient

	jwtRepo    *repository.JWTRepository
	jwtService *security.JWTService

	shareLinkService  *service.ShareLinkService
	uploadLinkService *service.UploadLinkService
	authService       *service.AuthenticationService

	authHandler     *handler.AuthenticationHandler
	userHandler     *handler.UserHandler
	sharingHandler  *handler.SharingHandler
	uploadHandler   *handler.CustomerUploadHandler
	customerHandler *handler.CustomerHandler
	leadHandler     *handler.LeadHandler

	publicLimiter *middleware.RateLimiter
}

// newApplication : withHTTP=false поднимает только то, что нужно для purge-links
func newApplication(ctx context.Context, cfg *config.AppConfig, withHTTP bool) (*application, error) {
	app := &application{cfg: cfg}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}
	app.db = db

	if cfg.DatabaseConfig.Migrate {
		if err := migrations.MigrateUp(db.DB.DB); err != nil {
			app.Close()
			return nil, err
		}
	}

	if cfg.DatabaseConfig.Driver == "mongo" {
		mongoClient, err := config.SetupMongo(&cfg.MongoConfig)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.mongoClient = mongoClient
	}

	stores, err := repository.NewStores(cfg.DatabaseConfig.Driver, db, app.mongoClient)
	if err != nil {
		app.Close()
		return nil, err
	}

	clock := util.RealClock{}
	ids := util.UUIDGenerator{}

	if !withHTTP {
		app.shareLinkService = service.NewShareLinkService(stores.ShareLinks, stores.Customers, nil, clock, cfg.Links.MaxExpiresInHours)
		app.uploadLinkService = service.NewUploadLinkService(stores.UploadLinks, stores.Customers, nil, nil, clock, ids, cfg.Links.MaxExpiresInHours)
		app.authService = service.NewAuthenticationService(db, repository.NewJWTRepository(db), &cfg.JWT, nil, nil, clock)
		return app, nil
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.redisClient = redisClient
	stores.WithCustomerCache(repository.NewCacheRepository(redisClient, cfg.CacheTTL()))

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("ошибка создания S3 сервиса: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	app.jwtRepo = repository.NewJWTRepository(db)
	app.jwtService = security.NewJWTService(&cfg.JWT)

	signer := service.NewSignedURLService(s3Service, clock, cfg.SignedURLTTL(), cfg.MinSignedURLTTL())
	app.shareLinkService = service.NewShareLinkService(stores.ShareLinks, stores.Customers, signer, clock, cfg.Links.MaxExpiresInHours)
	app.uploadLinkService = service.NewUploadLinkService(stores.UploadLinks, stores.Customers, s3Service, signer, clock, ids, cfg.Links.MaxExpiresInHours)
	customerService := service.NewCustomerService(stores.Customers, s3Service, signer, clock, ids)
	leadService := service.NewLeadService(db, leadRepo, customerService, s3Service, signer, clock, ids)
	userService := service.NewUserService(db, userRepo, &cfg.Admin, clock)
	app.authService = service.NewAuthenticationService(db, app.jwtRepo, &cfg.JWT, app.jwtService, userRepo, clock)

	app.authHandler = handler.NewAuthenticationHandler(app.authService, app.jwtService, cfg.JWT.SecretKey)
	app.userHandler = handler.NewUserHandler(userService)
	app.sharingHandler = handler.NewSharingHandler(app.shareLinkService, signer)
	app.uploadHandler = handler.NewCustomerUploadHandler(app.uploadLinkService, cfg.Upload.MaxRequestBytes)
	app.customerHandler = handler.NewCustomerHandler(customerService, cfg.Upload.MaxRequestBytes)
	app.leadHandler = handler.NewLeadHandler(leadService, cfg.Upload.MaxRequestBytes)
	app.publicLimiter = middleware.NewRateLimiter(cfg.RateLimit.PerMinute)

	return app, nil
}

func (a *application) Close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			util.Logger.Warn("ошибка при закрытии Redis", zap.Error(err))
		}
	}
	if a.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.mongoClient.Close(ctx); err != nil {
			util.Logger.Warn("ошибка при закрытии MongoDB", zap.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			util.Logger.Warn("ошибка при закрытии БД", zap.Error(err))
		}
	}
	_ = util.Logger.Sync()
}
