package api

import (
	"github.com/gin-gonic/gin"

	"github.com/sutharpankaj1/flowq/internal/api/handlers"
	"github.com/sutharpankaj1/flowq/internal/api/middleware"
	"github.com/sutharpankaj1/flowq/internal/broker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoint
const Version = "0.1.0"

// Router manages API routing and handlers
type Router struct {
	engine         *gin.Engine
	queueHandler   *handlers.QueueHandler
	messageHandler *handlers.MessageHandler
}

// NewRouter creates a new API router with all handlers initialized
func NewRouter(b *broker.Broker) *Router {
	router := &Router{
		engine:         gin.New(),
		queueHandler:   handlers.NewQueueHandler(b),
		messageHandler: handlers.NewMessageHandler(b),
	}

	router.setupMiddleware()
	router.setupRoutes()

	return router
}

// setupMiddleware configures global middleware
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.LoggingMiddleware())
	r.engine.Use(middleware.ErrorHandlerMiddleware())
	r.engine.Use(gin.Recovery())
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Health check
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Swagger UI - serves OpenAPI documentation at /swagger/index.html
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		queues := v1.Group("/queues")
		{
			queues.GET("", r.queueHandler.ListQueues)
			queues.POST("", r.queueHandler.CreateQueue)
			queues.GET("/:name", r.queueHandler.GetQueue)
			queues.DELETE("/:name", r.queueHandler.DeleteQueue)
			queues.GET("/:name/stats", r.queueHandler.GetQueueStats)
			queues.POST("/:name/purge", r.queueHandler.PurgeQueue)

			queues.POST("/:name/messages", r.messageHandler.PublishMessage)
			queues.GET("/:name/messages", r.messageHandler.ReceiveMessages)
			queues.GET("/:name/messages/peek", r.messageHandler.PeekMessage)
			queues.GET("/:name/messages/:id", r.messageHandler.GetMessage)
			queues.POST("/:name/messages/ack", r.messageHandler.AckMessage)
			queues.POST("/:name/messages/nack", r.messageHandler.NackMessage)
		}
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
