package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
// authMW puede ser nil (modo abierto, solo para desarrollo local).
func NewRouter(
	logger *zap.Logger,
	authMW gin.HandlerFunc,
	authH *AuthHandler,
	batteryH *BatteryHandler,
	sessionH *SessionHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.POST("/auth/token", authH.IssueToken)

	api := r.Group("/")
	if authMW != nil {
		api.Use(authMW)
	}

	batteries := api.Group("/batteries")
	batteries.GET("", batteryH.ListBatteries)
	batteries.GET("/:name", batteryH.GetBattery)
	batteries.POST("", batteryH.ImportBattery)

	sessions := api.Group("/sessions")
	sessions.POST("", sessionH.CreateSession)
	sessions.GET("", sessionH.ListSessions)
	sessions.GET("/:id", sessionH.GetSession)
	sessions.PUT("/:id/results", sessionH.RecordResult)
	sessions.PUT("/:id/notes", sessionH.SetNotes)
	sessions.PUT("/:id/owner-profile", sessionH.SetOwnerProfile)
	sessions.GET("/:id/scores", sessionH.Score)
	sessions.GET("/:id/comparison", sessionH.Compare)
	sessions.POST("/:id/ideal-profile", sessionH.GenerateIdealProfile)
	sessions.POST("/:id/assessment", sessionH.GenerateAssessment)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
