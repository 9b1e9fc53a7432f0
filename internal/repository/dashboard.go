package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/UnknownOlympus/ecohub/internal/models"
)

// DashboardMetrics returns the stored dashboard figures keyed by metric name,
// completed with the live community and household counts.
// A failing live count is logged and left out.
func (r *Repository) DashboardMetrics(ctx context.Context) (map[string]models.Metric, error) {
	query := `
		SELECT metric_name, metric_value, metric_unit, description, updated_at
		FROM dashboard_metrics
		ORDER BY metric_name;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard metrics: %w", err)
	}
	defer rows.Close()

	result := make(map[string]models.Metric)
	for rows.Next() {
		var (
			name   string
			metric models.Metric
		)
		if errScan := rows.Scan(
			&name, &metric.Value, &metric.Unit, &metric.Description, &metric.UpdatedAt,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan dashboard metric: %w", errScan)
		}
		result[name] = metric
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	live := []struct {
		name  string
		query string
	}{
		{"active_community_members", "SELECT COUNT(*) FROM users"},
		{"households_powered", "SELECT COUNT(DISTINCT buyer_id) FROM transactions"},
	}
	for _, m := range live {
		var count int64
		if errCount := r.db.QueryRow(ctx, m.query).Scan(&count); errCount != nil {
			r.log.WarnContext(ctx, "Failed to compute live dashboard metric", "metric", m.name, "error", errCount)
			continue
		}
		result[m.name] = models.Metric{Value: strconv.FormatInt(count, 10)}
	}

	return result, nil
}

// DashboardStats returns the secondary dashboard statistics keyed by name.
func (r *Repository) DashboardStats(ctx context.Context) (map[string]models.Stat, error) {
	query := `
		SELECT stat_name, stat_value, updated_at
		FROM dashboard_stats
		ORDER BY stat_name;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard stats: %w", err)
	}
	defer rows.Close()

	result := make(map[string]models.Stat)
	for rows.Next() {
		var (
			name string
			stat models.Stat
		)
		if errScan := rows.Scan(&name, &stat.Value, &stat.UpdatedAt); errScan != nil {
			return nil, fmt.Errorf("failed to scan dashboard stat: %w", errScan)
		}
		result[name] = stat
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return result, nil
}

// PerformancePredictions returns the monthly forecast in calendar order.
func (r *Repository) PerformancePredictions(ctx context.Context) (*models.Predictions, error) {
	query := `
		SELECT month, consumption_forecast, renewable_generation, created_at
		FROM performance_predictions
		ORDER BY COALESCE(
			array_position(ARRAY['Jan','Feb','Mar','Apr','May','Jun','Jul','Aug','Sep','Oct','Nov','Dec'], month::text),
			13
		), month;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance predictions: %w", err)
	}
	defer rows.Close()

	predictions := &models.Predictions{
		Months:              make([]string, 0),
		ConsumptionForecast: make([]float64, 0),
		RenewableGeneration: make([]float64, 0),
	}
	for rows.Next() {
		var (
			month                   string
			consumption, generation float64
			createdAt               *time.Time
		)
		if errScan := rows.Scan(&month, &consumption, &generation, &createdAt); errScan != nil {
			return nil, fmt.Errorf("failed to scan performance prediction: %w", errScan)
		}
		predictions.Months = append(predictions.Months, month)
		predictions.ConsumptionForecast = append(predictions.ConsumptionForecast, consumption)
		predictions.RenewableGeneration = append(predictions.RenewableGeneration, generation)
		if createdAt != nil && (predictions.LastUpdated == nil || createdAt.After(*predictions.LastUpdated)) {
			predictions.LastUpdated = createdAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return predictions, nil
}
