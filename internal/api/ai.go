package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/UnknownOlympus/ecohub/internal/advisor"
	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

type autoFillRequest struct {
	CurrentData struct {
		Location string `json:"location"`
	} `json:"currentData"`
}

func (s *Server) handleChat(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := currentUser(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		fail(c, http.StatusBadRequest, "Message is required", nil)
		return
	}

	chat := advisor.ChatRequest{Message: req.Message, Role: models.RoleConsumer}
	if user, err := s.repo.GetUser(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "Could not load user for chat context", "user", userID, "error", err)
	} else {
		chat.Location = user.Location
		if user.Role != "" {
			chat.Role = user.Role
		}
	}

	reply := s.advisor.Chat(ctx, chat)
	s.logInteraction(ctx, models.Interaction{
		UserID:   userID,
		Type:     models.InteractionChat,
		Prompt:   req.Message,
		Response: reply.Response,
	})

	success(c, http.StatusOK, reply)
}

func (s *Server) handleAdvice(c *gin.Context) {
	ctx := c.Request.Context()

	var req advisor.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	advice := s.advisor.Advice(ctx, req)
	if userID, ok := currentUser(c); ok {
		carbon := advice.CarbonSavingsEstimate
		s.logInteraction(ctx, models.Interaction{
			UserID:                userID,
			Type:                  models.InteractionAdvice,
			Prompt:                "advice for " + req.Location,
			Response:              advice.Advice,
			CarbonSavingsEstimate: &carbon,
		})
	}

	success(c, http.StatusOK, advice)
}

func (s *Server) handleListingContent(c *gin.Context) {
	ctx := c.Request.Context()

	var req advisor.ListingCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	listingCopy := s.advisor.ListingCopy(ctx, req)
	if userID, ok := currentUser(c); ok {
		s.logInteraction(ctx, models.Interaction{
			UserID:   userID,
			Type:     models.InteractionListingCopy,
			Prompt:   "listing copy for " + req.EnergyType,
			Response: listingCopy.Title + "\n" + listingCopy.Description,
		})
	}

	success(c, http.StatusOK, listingCopy)
}

func (s *Server) handleAutoFill(c *gin.Context) {
	var req autoFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "No data provided", nil)
		return
	}

	suggestion := s.analyst.Suggestions(c.Request.Context(), strings.TrimSpace(req.CurrentData.Location))

	c.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"message": "AI suggestions generated",
		"data":    suggestion,
	})
}

func (s *Server) handleAnalyzeMarket(c *gin.Context) {
	analysis, err := s.analyst.Analyze(c.Request.Context())
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to analyze market", "error", err)
		fail(c, http.StatusInternalServerError, "Failed to analyze market", err)
		return
	}

	success(c, http.StatusOK, analysis)
}

// logInteraction stores an AI exchange. Failures are logged and never reach the caller.
func (s *Server) logInteraction(ctx context.Context, interaction models.Interaction) {
	if err := s.repo.LogInteraction(ctx, interaction); err != nil {
		s.log.WarnContext(ctx, "Failed to log AI interaction",
			"user", interaction.UserID, "type", interaction.Type, "error", err)
	}
}
