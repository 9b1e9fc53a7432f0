package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDashboardMetrics(c *gin.Context) {
	metrics, err := s.repo.DashboardMetrics(c.Request.Context())
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to get dashboard metrics", "error", err)
		fail(c, http.StatusInternalServerError, "Failed to retrieve dashboard metrics", err)
		return
	}

	success(c, http.StatusOK, metrics)
}

func (s *Server) handleDashboardStats(c *gin.Context) {
	stats, err := s.repo.DashboardStats(c.Request.Context())
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to get dashboard stats", "error", err)
		fail(c, http.StatusInternalServerError, "Failed to retrieve stats", err)
		return
	}

	success(c, http.StatusOK, stats)
}

func (s *Server) handlePredictions(c *gin.Context) {
	predictions, err := s.repo.PerformancePredictions(c.Request.Context())
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to get performance predictions", "error", err)
		fail(c, http.StatusInternalServerError, "Failed to retrieve performance predictions", err)
		return
	}

	success(c, http.StatusOK, predictions)
}
