package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/modumal-backend/config"
	"github.com/ikkim/modumal-backend/internal/app/controller"
	"github.com/ikkim/modumal-backend/internal/middleware"
)

type Router struct {
	authController        *controller.AuthController
	languageController    *controller.LanguageController
	tagController         *controller.TagController
	translationController *controller.TranslationController
	authMiddleware        *middleware.AuthMiddleware
	config                *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	languageController *controller.LanguageController,
	tagController *controller.TagController,
	translationController *controller.TranslationController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:        authController,
		languageController:    languageController,
		tagController:         tagController,
		translationController: translationController,
		authMiddleware:        authMiddleware,
		config:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "MODUMAL API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		languages := v1.Group("/languages")
		{
			languages.GET("", r.languageController.ListLanguages)
			languages.GET("/:id", r.languageController.GetLanguage)
			languages.POST("", r.authMiddleware.Authenticate(), r.languageController.CreateLanguage)
			languages.PUT("/:id", r.authMiddleware.Authenticate(), r.languageController.UpdateLanguage)
			languages.DELETE("/:id", r.authMiddleware.Authenticate(), r.languageController.DeleteLanguage)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", r.tagController.ListTags)
			tags.GET("/:id", r.tagController.GetTag)
			tags.POST("", r.authMiddleware.Authenticate(), r.tagController.CreateTag)
			tags.PUT("/:id", r.authMiddleware.Authenticate(), r.tagController.UpdateTag)
			tags.DELETE("/:id", r.authMiddleware.Authenticate(), r.tagController.DeleteTag)
		}

		translations := v1.Group("/translations")
		{
			translations.GET("", r.translationController.ListTranslations)
			// by-key must be registered before :id
			translations.GET("/by-key", r.translationController.GetByKey)
			translations.GET("/:id", r.translationController.GetTranslation)
			translations.POST("", r.authMiddleware.Authenticate(), r.translationController.CreateTranslation)
			translations.PUT("/:id", r.authMiddleware.Authenticate(), r.translationController.UpdateTranslation)
			translations.DELETE("/:id", r.authMiddleware.Authenticate(), r.translationController.DeleteTranslation)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
