package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/UnknownOlympus/ecohub/internal/repository"
	"github.com/gin-gonic/gin"
)

var invalidEnergyTypeMessage = "Invalid energy type. Must be one of: " + strings.Join(models.EnergyTypes, ", ")

// listingRequest accepts quantity and price either as JSON numbers or as numeric strings.
type listingRequest struct {
	Title       string      `json:"title"`
	EnergyType  string      `json:"energyType"`
	Quantity    json.Number `json:"quantity"`
	Price       json.Number `json:"price"`
	Location    string      `json:"location"`
	Status      string      `json:"status"`
	Description string      `json:"description"`
	ImageURL    *string     `json:"imageUrl"`
}

type listingUpdateRequest struct {
	Title       *string      `json:"title"`
	EnergyType  *string      `json:"energyType"`
	Quantity    *json.Number `json:"quantity"`
	Price       *json.Number `json:"price"`
	Status      *string      `json:"status"`
	Location    *string      `json:"location"`
	Description *string      `json:"description"`
	ImageURL    *string      `json:"imageUrl"`
}

func (s *Server) handleListListings(c *gin.Context) {
	filter := models.ListingFilter{
		Status:     c.Query("status"),
		EnergyType: c.Query("energy_type"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			fail(c, http.StatusBadRequest, "limit must be a non-negative integer", nil)
			return
		}
		filter.Limit = limit
	}

	listings, err := s.repo.ListListings(c.Request.Context(), filter)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to list listings", "error", err)
		fail(c, http.StatusInternalServerError, "Failed to retrieve listings", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "data": listings, "count": len(listings)})
}

func (s *Server) handleGetListing(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}

	listing, err := s.repo.GetListing(c.Request.Context(), listingID)
	if errors.Is(err, repository.ErrListingNotFound) {
		fail(c, http.StatusNotFound, "Listing not found", nil)
		return
	}
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to get listing", "listing", listingID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to retrieve listing", err)
		return
	}

	success(c, http.StatusOK, listing)
}

func (s *Server) handleCreateListing(c *gin.Context) {
	userID, _ := currentUser(c)

	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	required := []struct{ name, value string }{
		{"title", req.Title},
		{"energyType", req.EnergyType},
		{"quantity", req.Quantity.String()},
		{"price", req.Price.String()},
		{"location", req.Location},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			fail(c, http.StatusBadRequest, "Missing required field: "+field.name, nil)
			return
		}
	}

	if !models.IsValidEnergyType(req.EnergyType) {
		fail(c, http.StatusBadRequest, invalidEnergyTypeMessage, nil)
		return
	}

	quantity, errQuantity := strconv.ParseInt(req.Quantity.String(), 10, 64)
	price, errPrice := req.Price.Float64()
	if errQuantity != nil || errPrice != nil {
		fail(c, http.StatusBadRequest, "Quantity must be an integer and price must be a number", nil)
		return
	}
	if quantity <= 0 {
		fail(c, http.StatusBadRequest, "Quantity must be greater than 0", nil)
		return
	}
	if price <= 0 {
		fail(c, http.StatusBadRequest, "Price must be greater than 0", nil)
		return
	}

	listing := &models.Listing{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		EnergyType:   req.EnergyType,
		AvailableKWh: float64(quantity),
		PricePerKWh:  price,
		Location:     req.Location,
		Status:       req.Status,
		ImageURL:     req.ImageURL,
	}
	if err := s.repo.CreateListing(c.Request.Context(), listing); err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to create listing", "user", userID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to create listing", err)
		return
	}

	s.log.InfoContext(c.Request.Context(), "Listing created", "listing", listing.ID, "user", userID)
	c.JSON(http.StatusCreated, gin.H{
		"status":  statusSuccess,
		"message": "Listing created successfully",
		"data":    listing,
	})
}

func (s *Server) handleUpdateListing(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}

	var req listingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	upd, message := req.toUpdate()
	if message != "" {
		fail(c, http.StatusBadRequest, message, nil)
		return
	}
	if upd.Empty() {
		fail(c, http.StatusBadRequest, "No valid fields to update", nil)
		return
	}

	if !s.authorizeOwner(c, listingID) {
		return
	}

	err := s.repo.UpdateListing(c.Request.Context(), listingID, upd)
	if errors.Is(err, repository.ErrListingNotFound) {
		fail(c, http.StatusNotFound, "Listing not found", nil)
		return
	}
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to update listing", "listing", listingID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to update listing", err)
		return
	}

	successMessage(c, http.StatusOK, "Listing updated successfully")
}

func (s *Server) handleDeleteListing(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}

	if !s.authorizeOwner(c, listingID) {
		return
	}

	err := s.repo.DeleteListing(c.Request.Context(), listingID)
	if errors.Is(err, repository.ErrListingNotFound) {
		fail(c, http.StatusNotFound, "Listing not found", nil)
		return
	}
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to delete listing", "listing", listingID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to delete listing", err)
		return
	}

	successMessage(c, http.StatusOK, "Listing deleted successfully")
}

// authorizeOwner checks that the caller owns the listing and writes the error response otherwise.
func (s *Server) authorizeOwner(c *gin.Context, listingID int64) bool {
	userID, _ := currentUser(c)

	listing, err := s.repo.GetListing(c.Request.Context(), listingID)
	if errors.Is(err, repository.ErrListingNotFound) {
		fail(c, http.StatusNotFound, "Listing not found", nil)
		return false
	}
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to get listing", "listing", listingID, "error", err)
		fail(c, http.StatusInternalServerError, "Failed to retrieve listing", err)
		return false
	}

	if listing.UserID != userID {
		fail(c, http.StatusForbidden, "You can only modify your own listings", nil)
		return false
	}

	return true
}

// toUpdate validates the request and converts it. A non-empty message describes the first invalid field.
func (r listingUpdateRequest) toUpdate() (models.ListingUpdate, string) {
	upd := models.ListingUpdate{
		Title:       r.Title,
		EnergyType:  r.EnergyType,
		Status:      r.Status,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}

	if r.EnergyType != nil && !models.IsValidEnergyType(*r.EnergyType) {
		return upd, invalidEnergyTypeMessage
	}

	if r.Quantity != nil {
		quantity, err := strconv.ParseInt(r.Quantity.String(), 10, 64)
		if err != nil {
			return upd, "Quantity must be an integer"
		}
		if quantity <= 0 {
			return upd, "Quantity must be greater than 0"
		}
		kwh := float64(quantity)
		upd.AvailableKWh = &kwh
	}

	if r.Price != nil {
		price, err := r.Price.Float64()
		if err != nil {
			return upd, "Price must be a number"
		}
		if price <= 0 {
			return upd, "Price must be greater than 0"
		}
		upd.PricePerKWh = &price
	}

	if r.Location != nil && strings.TrimSpace(*r.Location) == "" {
		return upd, "Location cannot be empty"
	}

	return upd, ""
}

// pathID parses the :id path parameter and writes a 400 response when it is invalid.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "Invalid listing id", nil)
		return 0, false
	}

	return id, true
}
