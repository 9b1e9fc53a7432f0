package mocks

import (
	context "context"

	geo "github.com/UnknownOlympus/ecohub/internal/geo"
	mock "github.com/stretchr/testify/mock"

	models "github.com/UnknownOlympus/ecohub/internal/models"
)

// Repository is a mock type for the Interface type
type Repository struct {
	mock.Mock
}

// CreateListing provides a mock function with given fields: ctx, listing
func (_m *Repository) CreateListing(ctx context.Context, listing *models.Listing) error {
	ret := _m.Called(ctx, listing)

	if len(ret) == 0 {
		panic("no return value specified for CreateListing")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Listing) error); ok {
		r0 = rf(ctx, listing)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CreateTransaction provides a mock function with given fields: ctx, buyerID, listingID, kwh
func (_m *Repository) CreateTransaction(ctx context.Context, buyerID int64, listingID int64, kwh float64) (*models.Transaction, error) {
	ret := _m.Called(ctx, buyerID, listingID, kwh)

	if len(ret) == 0 {
		panic("no return value specified for CreateTransaction")
	}

	var r0 *models.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, float64) (*models.Transaction, error)); ok {
		return rf(ctx, buyerID, listingID, kwh)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, float64) *models.Transaction); ok {
		r0 = rf(ctx, buyerID, listingID, kwh)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Transaction)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64, float64) error); ok {
		r1 = rf(ctx, buyerID, listingID, kwh)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DashboardMetrics provides a mock function with given fields: ctx
func (_m *Repository) DashboardMetrics(ctx context.Context) (map[string]models.Metric, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for DashboardMetrics")
	}

	var r0 map[string]models.Metric
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (map[string]models.Metric, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) map[string]models.Metric); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]models.Metric)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DashboardStats provides a mock function with given fields: ctx
func (_m *Repository) DashboardStats(ctx context.Context) (map[string]models.Stat, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for DashboardStats")
	}

	var r0 map[string]models.Stat
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (map[string]models.Stat, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) map[string]models.Stat); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]models.Stat)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteListing provides a mock function with given fields: ctx, listingID
func (_m *Repository) DeleteListing(ctx context.Context, listingID int64) error {
	ret := _m.Called(ctx, listingID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteListing")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, listingID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FetchListingsForGeocoding provides a mock function with given fields: ctx, limit
func (_m *Repository) FetchListingsForGeocoding(ctx context.Context, limit int) ([]models.Listing, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for FetchListingsForGeocoding")
	}

	var r0 []models.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]models.Listing, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []models.Listing); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchRankingCandidates provides a mock function with given fields: ctx, filter
func (_m *Repository) FetchRankingCandidates(ctx context.Context, filter models.CandidateFilter) ([]models.Listing, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for FetchRankingCandidates")
	}

	var r0 []models.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.CandidateFilter) ([]models.Listing, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, models.CandidateFilter) []models.Listing); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.CandidateFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetListing provides a mock function with given fields: ctx, listingID
func (_m *Repository) GetListing(ctx context.Context, listingID int64) (*models.Listing, error) {
	ret := _m.Called(ctx, listingID)

	if len(ret) == 0 {
		panic("no return value specified for GetListing")
	}

	var r0 *models.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Listing, error)); ok {
		return rf(ctx, listingID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Listing); ok {
		r0 = rf(ctx, listingID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, listingID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetUser provides a mock function with given fields: ctx, userID
func (_m *Repository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetUser")
	}

	var r0 *models.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.User, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.User); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// IncrementGeocodingFailure provides a mock function with given fields: ctx, listingID, errMsg
func (_m *Repository) IncrementGeocodingFailure(ctx context.Context, listingID int64, errMsg string) error {
	ret := _m.Called(ctx, listingID, errMsg)

	if len(ret) == 0 {
		panic("no return value specified for IncrementGeocodingFailure")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		r0 = rf(ctx, listingID, errMsg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListListings provides a mock function with given fields: ctx, filter
func (_m *Repository) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListListings")
	}

	var r0 []models.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.ListingFilter) ([]models.Listing, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, models.ListingFilter) []models.Listing); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.ListingFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListPurchases provides a mock function with given fields: ctx, buyerID
func (_m *Repository) ListPurchases(ctx context.Context, buyerID int64) ([]models.TransactionRecord, error) {
	ret := _m.Called(ctx, buyerID)

	if len(ret) == 0 {
		panic("no return value specified for ListPurchases")
	}

	var r0 []models.TransactionRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]models.TransactionRecord, error)); ok {
		return rf(ctx, buyerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []models.TransactionRecord); ok {
		r0 = rf(ctx, buyerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.TransactionRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, buyerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListSales provides a mock function with given fields: ctx, sellerID
func (_m *Repository) ListSales(ctx context.Context, sellerID int64) ([]models.TransactionRecord, error) {
	ret := _m.Called(ctx, sellerID)

	if len(ret) == 0 {
		panic("no return value specified for ListSales")
	}

	var r0 []models.TransactionRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]models.TransactionRecord, error)); ok {
		return rf(ctx, sellerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []models.TransactionRecord); ok {
		r0 = rf(ctx, sellerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.TransactionRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, sellerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// LocationTrend provides a mock function with given fields: ctx, location
func (_m *Repository) LocationTrend(ctx context.Context, location string) (*models.MarketTrend, error) {
	ret := _m.Called(ctx, location)

	if len(ret) == 0 {
		panic("no return value specified for LocationTrend")
	}

	var r0 *models.MarketTrend
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.MarketTrend, error)); ok {
		return rf(ctx, location)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.MarketTrend); ok {
		r0 = rf(ctx, location)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.MarketTrend)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, location)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// LogInteraction provides a mock function with given fields: ctx, interaction
func (_m *Repository) LogInteraction(ctx context.Context, interaction models.Interaction) error {
	ret := _m.Called(ctx, interaction)

	if len(ret) == 0 {
		panic("no return value specified for LogInteraction")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, models.Interaction) error); ok {
		r0 = rf(ctx, interaction)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MarketTrends provides a mock function with given fields: ctx
func (_m *Repository) MarketTrends(ctx context.Context) ([]models.MarketTrend, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for MarketTrends")
	}

	var r0 []models.MarketTrend
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]models.MarketTrend, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []models.MarketTrend); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.MarketTrend)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PerformancePredictions provides a mock function with given fields: ctx
func (_m *Repository) PerformancePredictions(ctx context.Context) (*models.Predictions, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for PerformancePredictions")
	}

	var r0 *models.Predictions
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*models.Predictions, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *models.Predictions); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Predictions)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Ping provides a mock function with given fields: ctx
func (_m *Repository) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Ping")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// PurchaseSummary provides a mock function with given fields: ctx, buyerID
func (_m *Repository) PurchaseSummary(ctx context.Context, buyerID int64) (models.PurchaseSummary, error) {
	ret := _m.Called(ctx, buyerID)

	if len(ret) == 0 {
		panic("no return value specified for PurchaseSummary")
	}

	var r0 models.PurchaseSummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (models.PurchaseSummary, error)); ok {
		return rf(ctx, buyerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) models.PurchaseSummary); ok {
		r0 = rf(ctx, buyerID)
	} else {
		r0 = ret.Get(0).(models.PurchaseSummary)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, buyerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RecentActivity provides a mock function with given fields: ctx, days, limit
func (_m *Repository) RecentActivity(ctx context.Context, days int, limit int) ([]models.DailyActivity, error) {
	ret := _m.Called(ctx, days, limit)

	if len(ret) == 0 {
		panic("no return value specified for RecentActivity")
	}

	var r0 []models.DailyActivity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]models.DailyActivity, error)); ok {
		return rf(ctx, days, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []models.DailyActivity); ok {
		r0 = rf(ctx, days, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.DailyActivity)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, days, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SalesSummary provides a mock function with given fields: ctx, sellerID
func (_m *Repository) SalesSummary(ctx context.Context, sellerID int64) (models.SalesSummary, error) {
	ret := _m.Called(ctx, sellerID)

	if len(ret) == 0 {
		panic("no return value specified for SalesSummary")
	}

	var r0 models.SalesSummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (models.SalesSummary, error)); ok {
		return rf(ctx, sellerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) models.SalesSummary); ok {
		r0 = rf(ctx, sellerID)
	} else {
		r0 = ret.Get(0).(models.SalesSummary)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, sellerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateListing provides a mock function with given fields: ctx, listingID, upd
func (_m *Repository) UpdateListing(ctx context.Context, listingID int64, upd models.ListingUpdate) error {
	ret := _m.Called(ctx, listingID, upd)

	if len(ret) == 0 {
		panic("no return value specified for UpdateListing")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, models.ListingUpdate) error); ok {
		r0 = rf(ctx, listingID, upd)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpdateListingCoordinates provides a mock function with given fields: ctx, listingID, point
func (_m *Repository) UpdateListingCoordinates(ctx context.Context, listingID int64, point geo.Point) error {
	ret := _m.Called(ctx, listingID, point)

	if len(ret) == 0 {
		panic("no return value specified for UpdateListingCoordinates")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, geo.Point) error); ok {
		r0 = rf(ctx, listingID, point)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewRepository creates a new instance of Repository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	mock := &Repository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
