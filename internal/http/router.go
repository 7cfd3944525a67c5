package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/karthikc1125/simple-login/internal/http/handlers"
	"github.com/karthikc1125/simple-login/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ch *handlers.CityHandlers, bh *handlers.BlogHandlers, ph *handlers.PolicyHandlers, authmw *middleware.AuthMW, cb middleware.CasbinMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.GET("/me", authmw.RequireSession(), ah.Me)

	cities := r.Group("/cities")
	cities.GET("", ch.List)
	cities.GET("/:id", ch.Get)

	blog := r.Group("/blog")
	blog.GET("", bh.List)
	blog.GET("/:id", bh.Get)
	blog.POST("", authmw.RequireSession(), cb.Enforce(), bh.Create)

	adm := r.Group("/admin").Use(authmw.RequireSession(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
