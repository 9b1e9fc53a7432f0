package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/jackc/pgx/v5"
)

// MarketTrends aggregates all listings per energy type, most listed type first.
func (r *Repository) MarketTrends(ctx context.Context) ([]models.MarketTrend, error) {
	query := `
		SELECT
			energy_type,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COALESCE(AVG(price_per_kwh), 0),
			COALESCE(AVG(available_kwh), 0),
			COALESCE(SUM(available_kwh), 0),
			COALESCE(AVG(price_per_kwh) FILTER (WHERE status = 'active'), 0),
			COALESCE(AVG(available_kwh) FILTER (WHERE status = 'active'), 0)
		FROM listings
		GROUP BY energy_type
		ORDER BY COUNT(*) DESC, energy_type;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query market trends: %w", err)
	}
	defer rows.Close()

	trends := make([]models.MarketTrend, 0)
	for rows.Next() {
		var t models.MarketTrend
		if errScan := rows.Scan(
			&t.EnergyType, &t.ListingCount, &t.ActiveCount, &t.AveragePrice, &t.AverageKWh,
			&t.TotalCapacity, &t.ActiveAvgPrice, &t.ActiveAvgKWh,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan market trend: %w", errScan)
		}
		trends = append(trends, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return trends, nil
}

// LocationTrend returns the dominant energy type among active listings whose location
// contains the given text, or nil when none match.
func (r *Repository) LocationTrend(ctx context.Context, location string) (*models.MarketTrend, error) {
	query := `
		SELECT energy_type, COUNT(*), AVG(price_per_kwh), AVG(available_kwh)
		FROM listings
		WHERE status = 'active' AND location ILIKE '%' || $1 || '%'
		GROUP BY energy_type
		ORDER BY COUNT(*) DESC, energy_type
		LIMIT 1;
	`

	var t models.MarketTrend
	err := r.db.QueryRow(ctx, query, location).Scan(&t.EnergyType, &t.ActiveCount, &t.ActiveAvgPrice, &t.ActiveAvgKWh)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query location trend: %w", err)
	}
	t.ListingCount = t.ActiveCount

	return &t, nil
}

// RecentActivity counts new listings per day over the last days, newest day first.
func (r *Repository) RecentActivity(ctx context.Context, days, limit int) ([]models.DailyActivity, error) {
	query := `
		SELECT DATE(created_at) AS day, COUNT(*)
		FROM listings
		WHERE created_at >= CURRENT_DATE - make_interval(days => $1)
		GROUP BY day
		ORDER BY day DESC
		LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, days, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	activity := make([]models.DailyActivity, 0)
	for rows.Next() {
		var a models.DailyActivity
		if errScan := rows.Scan(&a.Date, &a.NewListings); errScan != nil {
			return nil, fmt.Errorf("failed to scan recent activity: %w", errScan)
		}
		activity = append(activity, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return activity, nil
}
