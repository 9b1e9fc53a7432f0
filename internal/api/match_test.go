package api_test

import (
	"net/http"
	"testing"

	"github.com/UnknownOlympus/ecohub/internal/geo"
	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/UnknownOlympus/ecohub/internal/repository"
	"github.com/UnknownOlympus/ecohub/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func geocodedListing(id int64, energyType string, price, kwh, lat, lon float64) models.Listing {
	return models.Listing{
		ID:           id,
		EnergyType:   energyType,
		PricePerKWh:  price,
		AvailableKWh: kwh,
		Latitude:     ptr(lat),
		Longitude:    ptr(lon),
		Status:       models.ListingStatusActive,
	}
}

func rankedIDs(t *testing.T, body map[string]any) []float64 {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	listings, ok := data["listings"].([]any)
	require.True(t, ok)

	out := make([]float64, 0, len(listings))
	for _, item := range listings {
		listing, isMap := item.(map[string]any)
		require.True(t, isMap)
		out = append(out, listing["id"].(float64))
	}

	return out
}

func TestMatch_Nearby(t *testing.T) {
	t.Parallel()

	buyer := &geo.Point{Latitude: -1.2864, Longitude: 36.8172}
	defaultFilter := models.CandidateFilter{Near: buyer, RadiusKM: 50, Limit: 500}
	candidates := []models.Listing{
		geocodedListing(1, "Wind", 0.45, 50, -1.0, 37.0),
		geocodedListing(2, "Solar", 0.10, 1200, -1.29, 36.82),
		geocodedListing(3, "Solar", 0.05, 1500, 4.0, 40.0),
	}

	t.Run("success with coordinates", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		ts.repo.On("FetchRankingCandidates", mock.Anything, defaultFilter).
			Return(candidates, nil).Once()

		rec := ts.do(t, http.MethodGet, "/api/match?lat=-1.2864&lon=36.8172", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, []float64{2, 1}, rankedIDs(t, body), "listings beyond 50 km are cut off")
		assert.InDelta(t, 2, body["count"], 0)
		assert.Equal(t, "scored", body["data"].(map[string]any)["mode"])
	})

	t.Run("success with radius, limit and energy type", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		ts.repo.On("FetchRankingCandidates", mock.Anything, models.CandidateFilter{
			EnergyType: "Solar", Near: buyer, RadiusKM: 2000, Limit: 500,
		}).
			Return(candidates[1:], nil).Once()

		rec := ts.do(t, http.MethodGet,
			"/api/match?lat=-1.2864&lon=36.8172&max_distance_km=2000&limit=2&energy_type=Solar", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []float64{2, 3}, rankedIDs(t, decode(t, rec)), "equal scores keep storage order")
	})

	t.Run("success with the caller's stored location", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		ts.repo.On("GetUser", mock.Anything, int64(5)).
			Return(&models.User{ID: 5, Latitude: ptr(-1.2864), Longitude: ptr(36.8172)}, nil).Once()
		ts.repo.On("FetchRankingCandidates", mock.Anything, defaultFilter).
			Return(candidates, nil).Once()

		rec := ts.do(t, http.MethodGet, "/api/match", nil, "5")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []float64{2, 1}, rankedIDs(t, decode(t, rec)))
	})

	testCases := []struct {
		name    string
		path    string
		userID  string
		setup   func(repo *mocks.Repository)
		code    int
		message string
	}{
		{
			name:    "only latitude",
			path:    "/api/match?lat=1",
			code:    http.StatusBadRequest,
			message: "lat and lon must be given together",
		},
		{
			name:    "latitude out of range",
			path:    "/api/match?lat=91&lon=0",
			code:    http.StatusBadRequest,
			message: "lat and lon must be valid coordinates",
		},
		{
			name:    "anonymous without coordinates",
			path:    "/api/match",
			code:    http.StatusBadRequest,
			message: "Buyer location is required",
		},
		{
			name:   "caller without coordinates",
			path:   "/api/match",
			userID: "5",
			setup: func(repo *mocks.Repository) {
				repo.On("GetUser", mock.Anything, int64(5)).Return(&models.User{ID: 5}, nil).Once()
			},
			code:    http.StatusBadRequest,
			message: "Buyer location is required",
		},
		{
			name:   "unknown caller",
			path:   "/api/match",
			userID: "5",
			setup: func(repo *mocks.Repository) {
				repo.On("GetUser", mock.Anything, int64(5)).Return(nil, repository.ErrUserNotFound).Once()
			},
			code:    http.StatusNotFound,
			message: "User not found",
		},
		{
			name:    "invalid radius",
			path:    "/api/match?lat=0&lon=0&max_distance_km=-5",
			code:    http.StatusBadRequest,
			message: "max_distance_km must be a positive number",
		},
		{
			name:    "invalid limit",
			path:    "/api/match?lat=0&lon=0&limit=0",
			code:    http.StatusBadRequest,
			message: "limit must be a positive integer",
		},
		{
			name: "storage error",
			path: "/api/match?lat=0&lon=0",
			setup: func(repo *mocks.Repository) {
				repo.On("FetchRankingCandidates", mock.Anything, mock.Anything).Return(nil, errDB).Once()
			},
			code:    http.StatusInternalServerError,
			message: "Failed to find nearby sellers",
		},
	}

	for _, tc := range testCases {
		t.Run("error - "+tc.name, func(t *testing.T) {
			t.Parallel()
			ts := newTestServer(t)
			if tc.setup != nil {
				tc.setup(ts.repo)
			}

			rec := ts.do(t, http.MethodGet, tc.path, nil, tc.userID)

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.message, decode(t, rec)["message"])
		})
	}
}

func TestMatch_Rank(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		body := map[string]any{
			"buyer": map[string]any{"latitude": 1.2921, "longitude": 36.8219},
			"listings": []map[string]any{
				{
					"id": 1, "energy_type": "Solar", "price_per_kwh": 0.10, "available_kwh": 1200,
					"location": map[string]any{"latitude": 1.0, "longitude": 36.0},
				},
				{
					"id": 2, "energy_type": "Wind", "price_per_kwh": 0.45, "available_kwh": 50,
					"location": map[string]any{"latitude": -1.0, "longitude": 37.0},
				},
			},
		}

		rec := ts.do(t, http.MethodPost, "/api/match/rank", body, "")

		require.Equal(t, http.StatusOK, rec.Code)
		decoded := decode(t, rec)
		assert.Equal(t, []float64{1, 2}, rankedIDs(t, decoded))
		listings := decoded["data"].(map[string]any)["listings"].([]any)
		assert.InDelta(t, 1.0, listings[0].(map[string]any)["score"], 1e-9)
		assert.InDelta(t, 0.44, listings[1].(map[string]any)["score"], 1e-9)
	})

	t.Run("fallback when a listing misses a price", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		body := map[string]any{
			"buyer": map[string]any{"latitude": 0, "longitude": 0},
			"listings": []map[string]any{
				{"id": 1, "energy_type": "Solar", "available_kwh": 10, "location": map[string]any{"latitude": 1, "longitude": 1}},
				{"id": 2, "energy_type": "Wind", "price_per_kwh": 0.2, "available_kwh": 10},
			},
		}

		rec := ts.do(t, http.MethodPost, "/api/match/rank", body, "")

		require.Equal(t, http.StatusOK, rec.Code)
		decoded := decode(t, rec)
		assert.Equal(t, "distance_fallback", decoded["data"].(map[string]any)["mode"])
		assert.Equal(t, []float64{1, 2}, rankedIDs(t, decoded))
	})

	t.Run("fallback when a field has the wrong type", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		body := map[string]any{
			"buyer": map[string]any{"latitude": 0, "longitude": 0},
			"listings": []map[string]any{
				{
					"id": 1, "energy_type": "Solar", "price_per_kwh": "cheap", "available_kwh": 10,
					"location": map[string]any{"latitude": 1, "longitude": 1},
				},
				{
					"id": 2, "energy_type": "Wind", "price_per_kwh": 0.2, "available_kwh": 10,
					"location": map[string]any{"latitude": 2, "longitude": 2},
				},
			},
		}

		rec := ts.do(t, http.MethodPost, "/api/match/rank", body, "")

		require.Equal(t, http.StatusOK, rec.Code)
		decoded := decode(t, rec)
		data := decoded["data"].(map[string]any)
		assert.Equal(t, "distance_fallback", data["mode"])
		assert.Equal(t, []float64{1, 2}, rankedIDs(t, decoded))
		first := data["listings"].([]any)[0].(map[string]any)
		assert.Nil(t, first["price_per_kwh"])
		assert.InDelta(t, 0.5, first["price_score"], 1e-9)
	})

	t.Run("fallback when a listing is not an object", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)
		body := `{"buyer":{"latitude":0,"longitude":0},"listings":["oops",` +
			`{"id":2,"energy_type":"Wind","price_per_kwh":0.2,"available_kwh":10,` +
			`"location":{"latitude":"north","longitude":2}}]}`

		rec := ts.do(t, http.MethodPost, "/api/match/rank", body, "")

		require.Equal(t, http.StatusOK, rec.Code)
		decoded := decode(t, rec)
		assert.Equal(t, "distance_fallback", decoded["data"].(map[string]any)["mode"])
		assert.Equal(t, []float64{0, 2}, rankedIDs(t, decoded))
	})

	t.Run("error - missing buyer", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/match/rank", map[string]any{"listings": []any{}}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "buyer must hold valid coordinates", decode(t, rec)["message"])
	})

	t.Run("error - malformed body", func(t *testing.T) {
		t.Parallel()
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/match/rank", "[", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
