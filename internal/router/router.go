package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sipstation/internal/catalog"
	"sipstation/internal/chat"
	"sipstation/internal/llm"
	"sipstation/internal/order"
	"sipstation/internal/recommend"
)

// Deps collects everything the HTTP surface needs. Keeping the
// assembly here lets tests spin up the full engine with in-memory
// fixtures.
type Deps struct {
	Catalog   *catalog.Catalog
	Orders    *order.Service
	Providers *llm.Registry
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	catalogHandler := catalog.NewHandler(deps.Catalog)
	orderHandler := order.NewHandler(deps.Orders, deps.Catalog)

	recommendService := recommend.NewService(deps.Catalog, deps.Providers)
	recommendHandler := recommend.NewHandler(recommendService, deps.Providers, deps.Orders)

	chatService := chat.NewService(deps.Providers)
	chatHandler := chat.NewHandler(chatService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/beverages", catalogHandler.ListBeverages)
		api.GET("/condiments", catalogHandler.ListCondiments)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/history", orderHandler.History)
		api.GET("/orders/:id", orderHandler.Get)
		api.PUT("/orders/:id/status", orderHandler.UpdateStatus)

		api.GET("/recommendations", recommendHandler.Heuristic)
		api.GET("/models/available", recommendHandler.AvailableModels)
		api.POST("/ai-recommendation", recommendHandler.AIRecommendation)

		api.POST("/chat", chatHandler.Chat)
	}

	return r
}
