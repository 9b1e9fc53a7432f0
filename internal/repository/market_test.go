package repository_test

import (
	"log/slog"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/ecohub/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketTrends(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := "FROM listings GROUP BY energy_type ORDER BY COUNT(*) DESC, energy_type"
	cols := []string{"energy_type", "count", "active", "avg_price", "avg_kwh", "capacity", "active_price", "active_kwh"}

	t.Run("error - query trends", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(assert.AnError)

		trends, err := repo.MarketTrends(ctx)

		require.Nil(t, trends)
		require.ErrorContains(t, err, "failed to query market trends")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - trends", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow("Solar", 4, 3, 0.15, 600.0, 2400.0, 0.14, 650.0).
				AddRow("Wind", 1, 1, 0.2, 800.0, 800.0, 0.2, 800.0))

		trends, err := repo.MarketTrends(ctx)

		require.NoError(t, err)
		require.Len(t, trends, 2)
		assert.Equal(t, "Solar", trends[0].EnergyType)
		assert.Equal(t, 4, trends[0].ListingCount)
		assert.Equal(t, 3, trends[0].ActiveCount)
		assert.InDelta(t, 650.0, trends[0].ActiveAvgKWh, 1e-9)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLocationTrend(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := "WHERE status = 'active' AND location ILIKE '%' || $1 || '%'"

	t.Run("success - no listing in location", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Mombasa").WillReturnError(pgx.ErrNoRows)

		trend, err := repo.LocationTrend(ctx, "Mombasa")

		require.NoError(t, err)
		assert.Nil(t, trend)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - query location", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Mombasa").WillReturnError(assert.AnError)

		trend, err := repo.LocationTrend(ctx, "Mombasa")

		require.Nil(t, trend)
		require.ErrorContains(t, err, "failed to query location trend")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - dominant type", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Nakuru").
			WillReturnRows(pgxmock.NewRows([]string{"energy_type", "count", "avg_price", "avg_kwh"}).
				AddRow("Geothermal", 2, 0.11, 900.0))

		trend, err := repo.LocationTrend(ctx, "Nakuru")

		require.NoError(t, err)
		require.NotNil(t, trend)
		assert.Equal(t, "Geothermal", trend.EnergyType)
		assert.Equal(t, 2, trend.ListingCount)
		assert.InDelta(t, 0.11, trend.ActiveAvgPrice, 1e-9)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecentActivity(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	query := "WHERE created_at >= CURRENT_DATE - make_interval(days => $1)"

	t.Run("error - query activity", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(30, 7).WillReturnError(assert.AnError)

		activity, err := repo.RecentActivity(ctx, 30, 7)

		require.Nil(t, activity)
		require.ErrorContains(t, err, "failed to query recent activity")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - activity per day", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(30, 7).
			WillReturnRows(pgxmock.NewRows([]string{"day", "count"}).AddRow(createdAt, 3))

		activity, err := repo.RecentActivity(ctx, 30, 7)

		require.NoError(t, err)
		require.Len(t, activity, 1)
		assert.Equal(t, createdAt, activity[0].Date)
		assert.Equal(t, 3, activity[0].NewListings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
