package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tempmail-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
// Las rutas públicas (páginas de entrada y /api/auth) quedan fuera del gate;
// todo lo que vive bajo el dashboard pasa por RequireSession.
func NewRouter(
	logger *zap.Logger,
	tokens *service.TokenService,
	cookies *SessionCookies,
	authH *AuthHandler,
	contentH *ContentHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	// Páginas públicas.
	r.GET("/", pageHandler("TempMail"))
	r.GET("/login", pageHandler("Login"))
	r.GET("/register", pageHandler("Register"))

	auth := r.Group("/api/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.GET("/me", authH.Me)

	// Rutas protegidas por el gate de sesión.
	gate := RequireSession(tokens, cookies)

	protected := r.Group("/", gate)
	protected.GET("/dashboard", pageHandler("Dashboard"))
	protected.GET("/dashboard/inbox", pageHandler("Inbox"))
	protected.GET("/profile", pageHandler("Profile"))
	protected.GET("/settings", pageHandler("Settings"))
	protected.GET("/api/content/dashboard", contentH.Dashboard)

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
