package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/you/regsvc/domain"
	"github.com/you/regsvc/internal/config"
	"github.com/you/regsvc/internal/infrastructure/auth"
	"github.com/you/regsvc/internal/infrastructure/cache"
	"github.com/you/regsvc/internal/infrastructure/database"
	"github.com/you/regsvc/internal/infrastructure/notifications"
	"github.com/you/regsvc/internal/infrastructure/repositories"
	"github.com/you/regsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Ports
	UserRepo    domain.UserRepository
	Notifier    domain.Notifier
	CodeCache   domain.CodeCache
	PasswordSvc domain.PasswordService
	CodeGen     domain.CodeGenerator

	// Services
	RegistrationSvc domain.RegistrationService
	VerificationSvc domain.VerificationService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}

	c.initPorts()
	c.initServices()

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	return database.Ping(context.Background(), c.RedisClient)
}

func (c *Container) initPorts() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.CodeCache = cache.NewCodeCache(c.RedisClient, c.Config.CodeTTL)
	c.PasswordSvc = auth.NewPasswordService()
	c.CodeGen = auth.NewCodeGenerator(c.Config.CodeLength)
	c.Notifier = notifications.NewGateway(
		notifications.SMTPConfig{
			Host: c.Config.SMTPHost,
			Port: c.Config.SMTPPort,
			User: c.Config.SMTPUser,
			Pass: c.Config.SMTPPass,
			From: c.Config.SMTPFrom,
		},
		notifications.TwilioConfig{
			AccountSID: c.Config.TwilioSID,
			AuthToken:  c.Config.TwilioToken,
			FromNumber: c.Config.TwilioFrom,
		},
		c.Logger,
	)
}

func (c *Container) initServices() {
	c.RegistrationSvc = services.NewRegistrationService(
		c.UserRepo, c.Notifier, c.CodeCache, c.PasswordSvc, c.CodeGen, c.Logger)
	c.VerificationSvc = services.NewVerificationService(
		c.UserRepo, c.Notifier, c.CodeCache, c.CodeGen, c.Logger)
}
