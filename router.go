package main

import (
	"time"

	"github.com/Scalingo/sclng-repo-languages/config"
	"github.com/Scalingo/sclng-repo-languages/controller"
	"github.com/Scalingo/sclng-repo-languages/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// newRouter registers the middlewares and every route of the api
func newRouter(cfg config.Config, apiController controller.APIController) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET"},
			AllowHeaders:  []string{"Content-Type", "Accept", "Origin", "Cache-Control", "X-Requested-With", middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}),
		middleware.RateLimit(cfg.API),
	)

	repos := router.Group("/repos/:owner/:name")
	{
		repos.GET("/languages", apiController.GetRepositoryLanguages)
		repos.GET("/languages/main", apiController.GetRepositoryMainLanguage)
	}

	router.GET("/languages/main", apiController.GetMainLanguageFromURL)

	return router
}
