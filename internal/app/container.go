package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/karthikc1125/simple-login/domain"
	"github.com/karthikc1125/simple-login/internal/config"
	"github.com/karthikc1125/simple-login/internal/infrastructure/auth"
	"github.com/karthikc1125/simple-login/internal/infrastructure/database"
	"github.com/karthikc1125/simple-login/internal/infrastructure/notifications"
	"github.com/karthikc1125/simple-login/internal/infrastructure/repositories"
	"github.com/karthikc1125/simple-login/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	UserRepo domain.UserRepository
	CityRepo domain.CityRepository
	BlogRepo domain.BlogRepository
	Sessions domain.SessionStore
	OTPs     domain.OTPStore

	PasswordSvc domain.PasswordService
	Tokens      domain.TokenSource
	Mailer      domain.Mailer
	AuthSvc     domain.AuthService
	BlogSvc     domain.BlogService
	PolicySvc   domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initStores(); err != nil {
		return nil, err
	}
	if err := c.initServices(); err != nil {
		return nil, err
	}

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

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas
	return nil
}

func (c *Container) initStores() error {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.CityRepo = repositories.NewCityRepository(c.DB)
	c.BlogRepo = repositories.NewBlogRepository(c.DB)
	c.OTPs = repositories.NewMemoryOTPStore()

	if c.Config.SessionStore == "redis" {
		c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
		c.Sessions = repositories.NewRedisSessionStore(c.RedisClient, c.Config.SessionTTL)
	} else {
		c.Sessions = repositories.NewMemorySessionStore()
	}
	return nil
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.Tokens = auth.NewTokenSource()
	c.Mailer = notifications.NewSMTPMailer(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUser,
		c.Config.SMTPPass,
		c.Config.SMTPFrom,
		c.Logger,
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.Sessions,
		c.OTPs,
		c.PasswordSvc,
		c.Tokens,
		c.Mailer,
		services.OTPConfig{Length: c.Config.OTPLength, TTL: c.Config.OTPTTL},
	)
	c.BlogSvc = services.NewBlogService(c.BlogRepo)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
	return nil
}
