package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateTransaction records a completed purchase of kwh from the listing.
// The seller and the total price are taken from the listing in the same statement.
func (r *Repository) CreateTransaction(
	ctx context.Context,
	buyerID, listingID int64,
	kwh float64,
) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions
			(buyer_id, seller_id, listing_id, kwh_amount, total_price, status, created_at, completed_at)
		SELECT $1::integer, l.user_id, l.id, $3::double precision, l.price_per_kwh * $3::double precision,
			'completed', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		FROM listings l
		WHERE l.id = $2
		RETURNING id, seller_id, total_price, created_at, completed_at;
	`

	trx := models.Transaction{
		BuyerID:   buyerID,
		ListingID: listingID,
		KWh:       kwh,
		Status:    models.TransactionStatusCompleted,
	}
	err := r.db.QueryRow(ctx, query, buyerID, listingID, kwh).
		Scan(&trx.ID, &trx.SellerID, &trx.TotalPrice, &trx.CreatedAt, &trx.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	r.log.InfoContext(ctx, "Transaction recorded",
		"transaction", trx.ID, "buyer", buyerID, "listing", listingID, "kwh", kwh)

	return &trx, nil
}

// ListPurchases returns the buyer's purchase history, newest first.
func (r *Repository) ListPurchases(ctx context.Context, buyerID int64) ([]models.TransactionRecord, error) {
	query := `
		SELECT t.id, t.created_at, l.location, l.energy_type, t.kwh_amount, t.total_price
		FROM transactions t
		JOIN listings l ON l.id = t.listing_id
		WHERE t.buyer_id = $1
		ORDER BY t.created_at DESC, t.id DESC;
	`

	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	history := make([]models.TransactionRecord, 0)
	for rows.Next() {
		var rec models.TransactionRecord
		if errScan := rows.Scan(
			&rec.ID, &rec.Date, &rec.Location, &rec.EnergyType, &rec.KWh, &rec.TotalPrice,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", errScan)
		}
		history = append(history, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return history, nil
}

// PurchaseSummary returns the buyer's total kWh bought and money spent.
func (r *Repository) PurchaseSummary(ctx context.Context, buyerID int64) (models.PurchaseSummary, error) {
	query := `
		SELECT COALESCE(SUM(kwh_amount), 0), COALESCE(SUM(total_price), 0)
		FROM transactions
		WHERE buyer_id = $1;
	`

	var summary models.PurchaseSummary
	if err := r.db.QueryRow(ctx, query, buyerID).Scan(&summary.TotalKWh, &summary.TotalExpenditure); err != nil {
		return models.PurchaseSummary{}, fmt.Errorf("failed to summarize purchases: %w", err)
	}

	return summary, nil
}

// ListSales returns the seller's sales history, newest first.
func (r *Repository) ListSales(ctx context.Context, sellerID int64) ([]models.TransactionRecord, error) {
	query := `
		SELECT t.id, t.created_at, l.id, l.title, l.location, l.energy_type, t.kwh_amount, t.total_price
		FROM transactions t
		JOIN listings l ON l.id = t.listing_id
		WHERE t.seller_id = $1
		ORDER BY t.created_at DESC, t.id DESC;
	`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := make([]models.TransactionRecord, 0)
	for rows.Next() {
		var rec models.TransactionRecord
		if errScan := rows.Scan(
			&rec.ID, &rec.Date, &rec.ListingID, &rec.ListingTitle, &rec.Location, &rec.EnergyType,
			&rec.KWh, &rec.TotalPrice,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", errScan)
		}
		sales = append(sales, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return sales, nil
}

// SalesSummary returns the seller's total kWh sold and revenue.
func (r *Repository) SalesSummary(ctx context.Context, sellerID int64) (models.SalesSummary, error) {
	query := `
		SELECT COALESCE(SUM(kwh_amount), 0), COALESCE(SUM(total_price), 0)
		FROM transactions
		WHERE seller_id = $1;
	`

	var summary models.SalesSummary
	if err := r.db.QueryRow(ctx, query, sellerID).Scan(&summary.TotalKWh, &summary.TotalRevenue); err != nil {
		return models.SalesSummary{}, fmt.Errorf("failed to summarize sales: %w", err)
	}

	return summary, nil
}
