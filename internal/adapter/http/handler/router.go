package handler

import (
	"net/http"

	"currency-wallet/internal/adapter/http/middleware"
	"currency-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	WalletSvc      ports.WalletService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Public: token issuing
	authHandler := NewAuthHandler(deps.AuthSvc, deps.TokenSvc)
	r.POST("/token", authHandler.Token)

	// Bearer-authenticated wallet routes
	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := r.Group("/wallet", middleware.BearerAuth(deps.TokenSvc, deps.Logger))
	{
		wallet.GET("", walletHandler.GetConverted)
		wallet.GET("/original", walletHandler.GetOriginal)
		wallet.POST("/add/:currency_code/:amount", walletHandler.Add)
		wallet.POST("/subtract/:currency_code/:amount", walletHandler.Subtract)
	}

	return r
}

// HealthCheck handles GET /health. Each registered checker is pinged and
// the endpoint reports degraded when any of them fails.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
