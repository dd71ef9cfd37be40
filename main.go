package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/controllers"
	"github.com/ChurchSite/initializers"
	"github.com/ChurchSite/middlewares"
	"github.com/ChurchSite/services"
)

var cfg initializers.Config

func init() {
	initializers.LoadEnv()
	cfg = initializers.LoadConfig()
	initializers.ConnectDB()
	services.InitUploadStore(cfg.UploadDir, cfg.MaxUploadBytes)
	services.InitEmailService(cfg.ContactNotifyEmail)
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	// Uploaded sermon media is served read-only from the staged references.
	router.Static("/uploads", cfg.UploadDir)

	router.POST("/login", middlewares.RateLimit(2, 2, getKey), controllers.UserLogin)

	// Public reads
	router.GET("/announcements", middlewares.OptionalAuth, controllers.GetAnnouncements)
	router.GET("/events", controllers.GetEvents)
	router.GET("/events/:id", controllers.GetEvent)
	router.GET("/pages", controllers.GetPages)
	router.GET("/pages/:slug", controllers.GetPageBySlug)
	router.GET("/sermons", controllers.GetSermons)
	router.GET("/sermons/:id", controllers.GetSermon)

	// Public contact form submission
	router.POST("/contacts", middlewares.RateLimit(2, 2, getKey), controllers.SubmitContact)

	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth)
	{
		auth.GET("/users/me", controllers.GetCurrentUser)

		admin := auth.Group("/")
		admin.Use(middlewares.CheckAdmin)
		{
			admin.POST("/announcements", controllers.CreateAnnouncement)
			admin.PUT("/announcements/:id", controllers.UpdateAnnouncement)
			admin.DELETE("/announcements/:id", controllers.DeleteAnnouncement)

			admin.POST("/events", controllers.CreateEvent)
			admin.PUT("/events/:id", controllers.UpdateEvent)
			admin.DELETE("/events/:id", controllers.DeleteEvent)

			admin.PUT("/pages/:slug", controllers.UpsertPage)
			admin.DELETE("/pages/:slug", controllers.DeletePage)

			admin.POST("/sermons", middlewares.MaxBodyBytes(cfg.MaxUploadBytes+1<<20), controllers.CreateSermon)
			admin.PUT("/sermons/:id", controllers.UpdateSermon)
			admin.DELETE("/sermons/:id", controllers.DeleteSermon)

			admin.GET("/contacts", controllers.GetContacts)
			admin.GET("/contacts/:id", controllers.GetContact)
			admin.PATCH("/contacts/:id/read", controllers.ToggleContactRead)
			admin.DELETE("/contacts/:id", controllers.DeleteContact)
		}
	}

	log.Printf("Listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
