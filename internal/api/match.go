package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/ecohub/internal/geo"
	"github.com/UnknownOlympus/ecohub/internal/ranking"
	"github.com/UnknownOlympus/ecohub/internal/repository"
	"github.com/UnknownOlympus/ecohub/internal/service"
	"github.com/gin-gonic/gin"
)

type rankRequest struct {
	Buyer    *geo.Point        `json:"buyer"`
	Listings []json.RawMessage `json:"listings"`
}

// handleNearby ranks stored listings around lat/lon, or around the caller's stored location
// when no coordinates are given.
func (s *Server) handleNearby(c *gin.Context) {
	ctx := c.Request.Context()
	query := service.NearbyQuery{EnergyType: c.Query("energy_type")}

	lat, lon := c.Query("lat"), c.Query("lon")
	switch {
	case lat != "" && lon != "":
		point, ok := parsePoint(lat, lon)
		if !ok {
			fail(c, http.StatusBadRequest, "lat and lon must be valid coordinates", nil)
			return
		}
		query.Buyer = point
	case lat != "" || lon != "":
		fail(c, http.StatusBadRequest, "lat and lon must be given together", nil)
		return
	default:
		userID, ok := currentUser(c)
		if !ok {
			fail(c, http.StatusBadRequest, "Buyer location is required", nil)
			return
		}
		point, err := s.matchmaker.BuyerLocation(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			fail(c, http.StatusNotFound, "User not found", nil)
			return
		case errors.Is(err, service.ErrLocationUnknown):
			fail(c, http.StatusBadRequest, "Buyer location is required", nil)
			return
		case err != nil:
			s.log.ErrorContext(ctx, "Failed to load buyer location", "user", userID, "error", err)
			fail(c, http.StatusInternalServerError, "Failed to find nearby sellers", err)
			return
		}
		query.Buyer = point
	}

	if raw := c.Query("max_distance_km"); raw != "" {
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil || distance <= 0 {
			fail(c, http.StatusBadRequest, "max_distance_km must be a positive number", nil)
			return
		}
		query.MaxDistanceKM = distance
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			fail(c, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
		query.Limit = limit
	}

	result, err := s.matchmaker.Nearby(ctx, query)
	if errors.Is(err, service.ErrInvalidLocation) {
		fail(c, http.StatusBadRequest, "lat and lon must be valid coordinates", nil)
		return
	}
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to find nearby sellers", "error", err)
		fail(c, http.StatusInternalServerError, "Failed to find nearby sellers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "data": result, "count": len(result.Listings)})
}

// handleRank runs the ranking engine over listings supplied by the client.
func (s *Server) handleRank(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Buyer == nil || !req.Buyer.Valid() {
		fail(c, http.StatusBadRequest, "buyer must hold valid coordinates", nil)
		return
	}

	listings := make([]ranking.Listing, 0, len(req.Listings))
	for _, raw := range req.Listings {
		listings = append(listings, decodeListing(raw))
	}

	success(c, http.StatusOK, s.matchmaker.Rank(c.Request.Context(), *req.Buyer, listings))
}

// decodeListing reads a client listing one field at a time. A field that does not
// decode is left empty, so a mistyped listing reaches the engine as incomplete
// instead of failing the request.
func decodeListing(raw json.RawMessage) ranking.Listing {
	var listing ranking.Listing

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return listing
	}

	decodeField(fields["id"], &listing.ID)
	decodeField(fields["title"], &listing.Title)
	decodeField(fields["energy_type"], &listing.EnergyType)
	decodeField(fields["price_per_kwh"], &listing.PricePerKWh)
	decodeField(fields["available_kwh"], &listing.AvailableKWh)
	decodeField(fields["location"], &listing.Location)

	return listing
}

func decodeField[T any](raw json.RawMessage, dst *T) {
	if len(raw) == 0 {
		return
	}

	var value T
	if err := json.Unmarshal(raw, &value); err == nil {
		*dst = value
	}
}

func parsePoint(lat, lon string) (geo.Point, bool) {
	latitude, errLat := strconv.ParseFloat(lat, 64)
	longitude, errLon := strconv.ParseFloat(lon, 64)
	if errLat != nil || errLon != nil {
		return geo.Point{}, false
	}

	point := geo.Point{Latitude: latitude, Longitude: longitude}

	return point, point.Valid()
}
