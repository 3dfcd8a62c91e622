package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"journal-backend/internal/config"
	infraCache "journal-backend/internal/infrastructure/cache"
	"journal-backend/internal/infrastructure/database"
	"journal-backend/internal/infrastructure/queue"
	"journal-backend/pkg/cache"
	"journal-backend/pkg/jwt"

	commentHandler "journal-backend/internal/domains/comment/handler"
	commentRepo "journal-backend/internal/domains/comment/repository"
	commentService "journal-backend/internal/domains/comment/service"
	entryHandler "journal-backend/internal/domains/entry/handler"
	entryRepo "journal-backend/internal/domains/entry/repository"
	entryService "journal-backend/internal/domains/entry/service"
	notificationHandler "journal-backend/internal/domains/notification/handler"
	notificationRepo "journal-backend/internal/domains/notification/repository"
	notificationService "journal-backend/internal/domains/notification/service"
	socialHandler "journal-backend/internal/domains/social/handler"
	socialRepo "journal-backend/internal/domains/social/repository"
	socialService "journal-backend/internal/domains/social/service"
	userHandler "journal-backend/internal/domains/user/handler"
	userRepo "journal-backend/internal/domains/user/repository"
	userService "journal-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton; construction order is config, infrastructure, repositories,
// services, handlers.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	QueueClient *queue.Client

	// Repositories
	UserRepo         userRepo.UserRepository
	SocialRepo       socialRepo.SocialRepository
	EntryRepo        entryRepo.EntryRepository
	CommentRepo      commentRepo.CommentRepository
	NotificationRepo notificationRepo.NotificationRepository

	// Services
	UserService         userService.UserService
	SocialService       socialService.SocialService
	EntryService        entryService.EntryService
	CommentService      commentService.CommentService
	NotificationService notificationService.NotificationService

	// Handlers
	UserHandler         *userHandler.UserHandler
	SocialHandler       *socialHandler.SocialHandler
	EntryHandler        *entryHandler.EntryHandler
	CommentHandler      *commentHandler.CommentHandler
	NotificationHandler *notificationHandler.NotificationHandler

	redisCache *infraCache.RedisCache
}

// Options tailor the container per binary.
type Options struct {
	// WithQueue wires the asynq client so entry creation enqueues
	// notification fan-out. The worker consumes tasks instead of
	// producing them, so it runs without one.
	WithQueue bool
}

// NewContainer builds the full dependency graph for the API server.
func NewContainer() (*Container, error) {
	return NewContainerWithOptions(Options{WithQueue: true})
}

func NewContainerWithOptions(opts Options) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Cache
	c.redisCache = infraCache.NewRedisCache(cfg.Redis)
	if err := c.redisCache.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = c.redisCache

	// Auth
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// Queue
	if opts.WithQueue {
		c.QueueClient = queue.NewClient(cfg.Redis.Host)
	}

	// Repositories
	c.UserRepo = userRepo.NewPostgresUserRepository(c.DB.Pool)
	c.SocialRepo = socialRepo.NewPostgresSocialRepository(c.DB.Pool)
	c.EntryRepo = entryRepo.NewPostgresEntryRepository(c.DB.Pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(c.DB.Pool)
	c.NotificationRepo = notificationRepo.NewPostgresNotificationRepository(c.DB.Pool)

	// Services
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	c.NotificationService = notificationService.NewNotificationService(c.NotificationRepo)
	c.SocialService = socialService.NewSocialService(c.SocialRepo, c.Cache, c.NotificationService)

	var enqueuer entryService.FanOutEnqueuer
	if c.QueueClient != nil {
		enqueuer = c.QueueClient
	}
	c.EntryService = entryService.NewEntryService(c.EntryRepo, c.UserRepo, enqueuer)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.EntryRepo)

	// Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.SocialHandler = socialHandler.NewSocialHandler(c.SocialService)
	c.EntryHandler = entryHandler.NewEntryHandler(c.EntryService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)

	log.Info().Msg("container initialized")
	return c, nil
}

// HealthCheck pings the stateful dependencies.
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := c.DB.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Cache.Ping(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Cleanup releases all held connections, in reverse construction order.
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Warn().Err(err).Msg("queue client close failed")
		}
	}
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
