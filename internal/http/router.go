package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas del quiz.
func NewRouter(
	logger *zap.Logger,
	allowedOrigins []string,
	metricsHandler http.Handler,
	imageFiles ImageFiles,
	tokens *service.SessionTokenService,
	quizH *QuizHandler,
	resultH *ResultHandler,
) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), cors.New(corsConfig(allowedOrigins)))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", health)
	r.HEAD("/health", health)
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}
	r.GET("/placeholders/:file", Placeholder)
	if imageFiles != nil {
		r.GET("/results/:file", ResultImage(imageFiles))
	}

	requireToken := SessionTokenMiddleware(tokens)
	api := r.Group("/api", jsonContentTypeMiddleware())

	quiz := api.Group("/quiz")
	quiz.POST("/start", quizH.Start)
	quiz.GET("/:slug/questions", quizH.Questions)
	quiz.POST("/:slug/answer", requireToken, quizH.SubmitAnswer)

	results := api.Group("/results")
	results.GET("/:slug", resultH.Get)
	results.POST("/:slug/generate", requireToken, resultH.Generate)
	results.POST("/:slug/regenerate-image/:trait", requireToken, resultH.RegenerateImage)
	results.POST("/:slug/chat", resultH.Chat)

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		cfg.AllowOrigins = allowedOrigins
	} else {
		cfg.AllowOrigins = []string{"http://localhost:8787"}
	}
	cfg.AllowWildcard = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
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
