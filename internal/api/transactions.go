package api

import (
	"errors"
	"net/http"

	"github.com/UnknownOlympus/ecohub/internal/repository"
	"github.com/gin-gonic/gin"
)

type transactionRequest struct {
	ListingID int64   `json:"listingId"`
	KWh       float64 `json:"kwh"`
}

func (s *Server) handleCreateTransaction(c *gin.Context) {
	ctx := c.Request.Context()
	buyerID, _ := currentUser(c)

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ListingID == 0 || req.KWh == 0 {
		fail(c, http.StatusBadRequest, "listingId and kwh are required", nil)
		return
	}
	if req.KWh < 0 {
		fail(c, http.StatusBadRequest, "kwh must be greater than 0", nil)
		return
	}

	trx, err := s.repo.CreateTransaction(ctx, buyerID, req.ListingID, req.KWh)
	if errors.Is(err, repository.ErrListingNotFound) {
		fail(c, http.StatusNotFound, "Listing not found", nil)
		return
	}
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to create transaction", "buyer", buyerID, "listing", req.ListingID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to create transaction", err)
		return
	}

	success(c, http.StatusCreated, trx)
}

func (s *Server) handleListPurchases(c *gin.Context) {
	buyerID, _ := currentUser(c)

	history, err := s.repo.ListPurchases(c.Request.Context(), buyerID)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to fetch transactions", "buyer", buyerID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch transactions", err)
		return
	}

	success(c, http.StatusOK, history)
}

func (s *Server) handlePurchaseSummary(c *gin.Context) {
	buyerID, _ := currentUser(c)

	summary, err := s.repo.PurchaseSummary(c.Request.Context(), buyerID)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to fetch purchase summary", "buyer", buyerID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch summary", err)
		return
	}

	success(c, http.StatusOK, summary)
}

func (s *Server) handleListSales(c *gin.Context) {
	sellerID, _ := currentUser(c)

	sales, err := s.repo.ListSales(c.Request.Context(), sellerID)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to fetch sales", "seller", sellerID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch sales", err)
		return
	}

	success(c, http.StatusOK, sales)
}

func (s *Server) handleSalesSummary(c *gin.Context) {
	sellerID, _ := currentUser(c)

	summary, err := s.repo.SalesSummary(c.Request.Context(), sellerID)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to fetch sales summary", "seller", sellerID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch sales summary", err)
		return
	}

	success(c, http.StatusOK, summary)
}
