package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/waveline-social/waveline/internal/cache"
	dbi "github.com/waveline-social/waveline/internal/database/interfaces"
	"github.com/waveline-social/waveline/internal/database/mongodb"
	"github.com/waveline-social/waveline/internal/middleware/requestid"
	"github.com/waveline-social/waveline/internal/pkg/log"
	platformconfig "github.com/waveline-social/waveline/internal/platform/config"
	"github.com/waveline-social/waveline/posts"
	"github.com/waveline-social/waveline/posts/handlers"
	postsRepository "github.com/waveline-social/waveline/posts/repository"
	postsServices "github.com/waveline-social/waveline/posts/services"
	"github.com/waveline-social/waveline/storage/provider"
	storageServices "github.com/waveline-social/waveline/storage/services"
	usersRepository "github.com/waveline-social/waveline/users/repository"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatal("Failed to load platform config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
	}))

	ctx := context.Background()
	mongoConfig := &dbi.MongoDBConfig{
		Host:                   cfg.Database.Mongo.Host,
		Port:                   cfg.Database.Mongo.Port,
		Username:               cfg.Database.Mongo.Username,
		Password:               cfg.Database.Mongo.Password,
		AuthDatabase:           cfg.Database.Mongo.AuthDatabase,
		ReplicaSet:             cfg.Database.Mongo.ReplicaSet,
		SSL:                    cfg.Database.Mongo.SSL,
		ConnectTimeout:         cfg.Database.Mongo.ConnectTimeout,
		MaxPoolSize:            cfg.Database.Mongo.MaxPoolSize,
		MinPoolSize:            cfg.Database.Mongo.MinPoolSize,
		MaxIdleTime:            cfg.Database.Mongo.MaxIdleTime,
		ServerSelectionTimeout: cfg.Database.Mongo.ServerSelectionTimeout,
	}
	db, err := mongodb.NewMongoRepository(ctx, mongoConfig, cfg.Database.Mongo.Database)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// Indexes back the owner and feed queries; failures are non-fatal
	if err := <-db.CreateIndex(ctx, "posts", map[string]interface{}{"postedBy": 1, "created_date": -1}); err != nil {
		log.Warn("Failed to ensure posts indexes: %v", err)
	}
	if err := <-db.CreateIndex(ctx, "users", map[string]interface{}{"username": 1}); err != nil {
		log.Warn("Failed to ensure users indexes: %v", err)
	}

	// Repositories
	postRepo := postsRepository.NewMongoPostRepository(db)
	userRepo := usersRepository.NewMongoUserRepository(db)

	// Media storage
	var mediaService storageServices.MediaService
	blobProvider, err := provider.NewS3Provider(&cfg.Storage)
	if err != nil {
		log.Warn("Blob storage not configured, image uploads disabled: %v", err)
	} else {
		mediaService = storageServices.NewMediaService(blobProvider)
	}

	// Cache is optional, the service degrades to direct reads without it
	cacheConfig := &cache.Config{
		Enabled: cfg.Cache.Enabled,
		Prefix:  cfg.Cache.Prefix,
		TTL:     cfg.Cache.TTL,
		Redis: cache.RedisConfig{
			Address:      cfg.Cache.Redis.Address,
			Password:     cfg.Cache.Redis.Password,
			Database:     cfg.Cache.Redis.Database,
			PoolSize:     cfg.Cache.Redis.PoolSize,
			MinIdleConns: cfg.Cache.Redis.MinIdleConns,
			MaxConnAge:   cfg.Cache.Redis.MaxConnAge,
		},
	}
	var cacheService *cache.GenericCacheService
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cacheConfig)
		if err != nil {
			log.Warn("Redis unavailable, continuing without cache: %v", err)
		} else {
			defer redisCache.Close()
			cacheService = cache.NewGenericCacheService(redisCache, cacheConfig)
		}
	}

	postsService := postsServices.NewPostService(postRepo, userRepo, mediaService, cacheService)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := <-db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	postsHandlers := &posts.PostsHandlers{
		PostHandler: handlers.NewPostHandler(postsService),
	}

	posts.RegisterRoutes(app, postsHandlers, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting %s on %s", cfg.App.Name, addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Server stopped: %v", err)
	}
}
