package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karthikc1125/simple-login/internal/config"
	httpx "github.com/karthikc1125/simple-login/internal/http"
	"github.com/karthikc1125/simple-login/internal/http/handlers"
	"github.com/karthikc1125/simple-login/internal/http/middleware"
	"github.com/karthikc1125/simple-login/internal/infrastructure/repositories"
)

func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
			return err
		}
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, logger)
	cityH := handlers.NewCityHandlers(c.CityRepo, logger)
	blogH := handlers.NewBlogHandlers(c.BlogSvc, logger)
	polH := handlers.NewPolicyHandlers(c.PolicySvc)

	authMW := middleware.NewAuthMW(c.Sessions)
	casbinMW := middleware.NewCasbinMW(c.PolicySvc)

	r := httpx.BuildRouter(authH, cityH, blogH, polH, authMW, casbinMW)

	seedPolicies(c, logger)
	if err := repositories.SeedCities(c.DB); err != nil {
		return err
	}

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on first boot.
func seedPolicies(c *Container, logger *zap.Logger) {
	existing, err := c.PolicySvc.GetPolicies()
	if err != nil {
		logger.Warn("failed to load policies", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}
	defaults := [][3]string{
		{"role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"},
		{"role_admin", "/blog", "POST"},
	}
	for _, p := range defaults {
		if err := c.PolicySvc.AddPolicy(p[0], p[1], p[2]); err != nil {
			logger.Warn("failed to seed policy", zap.Strings("policy", p[:]), zap.Error(err))
		}
	}
	logger.Info("casbin: seeded default policies")
}
