package routes

import (
	"net/http"
	"time"

	"studiohub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	catalog := api.Group("/catalog")
	{
		catalog.GET("/:flowType", h.ListOfferings)
		catalog.GET("/:flowType/bundles", h.ListBundles)
	}

	requests := api.Group("/requests")
	{
		requests.POST("/session", h.InitiateSession)
		requests.GET("/session/:sessionID", h.GetSession)
		requests.PUT("/session/:sessionID/category", h.SelectCategory)
		requests.POST("/session/:sessionID/offerings/:offeringID", h.ToggleOffering)
		requests.PUT("/session/:sessionID/details", h.UpdateDetails)
		requests.PUT("/session/:sessionID/bundle", h.ApplyBundle)
		requests.POST("/session/:sessionID/stage", h.StageSession)
		requests.POST("/session/:sessionID/unstage", h.UnstageSession)
		requests.POST("/session/:sessionID/confirm", h.ConfirmSession)
		requests.DELETE("/session/:sessionID", h.CancelSession)
		requests.POST("/deposit-intent", h.CreateDepositIntent)
	}

	links := api.Group("/smartlinks")
	{
		// Public surface is keyed by slug; management is keyed by id.
		links.POST("", h.CreateSmartLink)
		links.GET("/:slug", h.GetSmartLink)
		links.POST("/:slug/buttons/:buttonID/click", h.TrackButtonClick)

		links.PUT("/manage/:id", h.UpdateSmartLink)
		links.DELETE("/manage/:id", h.DeleteSmartLink)
		links.POST("/manage/:id/buttons", h.AddLinkButton)
		links.PUT("/manage/:id/buttons/order", h.ReorderLinkButtons)
		links.DELETE("/manage/:id/buttons/:buttonID", h.DeleteLinkButton)
	}
}
