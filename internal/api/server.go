// Package api exposes the marketplace over HTTP with gin.
package api

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/ecohub/internal/advisor"
	"github.com/UnknownOlympus/ecohub/internal/metrics"
	"github.com/UnknownOlympus/ecohub/internal/repository"
	"github.com/UnknownOlympus/ecohub/internal/service"
	"github.com/gin-gonic/gin"
)

// Server wires HTTP handlers with storage and the marketplace services.
type Server struct {
	log            *slog.Logger
	repo           repository.Interface
	matchmaker     *service.Matchmaker
	analyst        *service.MarketAnalyst
	advisor        *advisor.Advisor
	metrics        *metrics.Metrics
	allowedOrigins []string
}

// Deps holds everything the API needs.
type Deps struct {
	Log            *slog.Logger
	Repo           repository.Interface
	Matchmaker     *service.Matchmaker
	Analyst        *service.MarketAnalyst
	Advisor        *advisor.Advisor
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

func NewServer(deps Deps) *Server {
	return &Server{
		log:            deps.Log,
		repo:           deps.Repo,
		matchmaker:     deps.Matchmaker,
		analyst:        deps.Analyst,
		advisor:        deps.Advisor,
		metrics:        deps.Metrics,
		allowedOrigins: deps.AllowedOrigins,
	}
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		requestID(),
		s.recovery(),
		s.accessLog(),
		s.observe(),
		corsMiddleware(s.allowedOrigins),
	)

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "Not found", nil)
	})

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)

	listings := api.Group("/listings")
	{
		listings.GET("", s.handleListListings)
		listings.GET("/:id", s.handleGetListing)
		listings.POST("", requireUser(), s.handleCreateListing)
		listings.PUT("/:id", requireUser(), s.handleUpdateListing)
		listings.DELETE("/:id", requireUser(), s.handleDeleteListing)
	}

	match := api.Group("/match")
	{
		match.GET("", optionalUser(), s.handleNearby)
		match.POST("/rank", s.handleRank)
	}

	ai := api.Group("/ai")
	{
		ai.POST("/chat", requireUser(), s.handleChat)
		ai.POST("/advice", optionalUser(), s.handleAdvice)
		ai.POST("/listing-content", optionalUser(), s.handleListingContent)
		ai.POST("/auto-fill", s.handleAutoFill)
		ai.GET("/analyze-market", s.handleAnalyzeMarket)
	}

	transactions := api.Group("/transactions", requireUser())
	{
		transactions.POST("", s.handleCreateTransaction)
		transactions.GET("/me", s.handleListPurchases)
		transactions.GET("/me/summary", s.handlePurchaseSummary)
		transactions.GET("/sales", s.handleListSales)
		transactions.GET("/sales/summary", s.handleSalesSummary)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/metrics", s.handleDashboardMetrics)
		dashboard.GET("/stats", s.handleDashboardStats)
		dashboard.GET("/predictions", s.handlePredictions)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.repo.Ping(c.Request.Context()); err != nil {
		s.log.ErrorContext(c.Request.Context(), "Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "ok"})
}
