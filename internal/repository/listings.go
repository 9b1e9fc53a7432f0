package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/ecohub/internal/geo"
	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/jackc/pgx/v5"
)

// maxGeocodingAttempts is the number of failed lookups after which a listing is no longer geocoded.
const maxGeocodingAttempts = 5

const listingColumns = `id, user_id, title, description, energy_type, available_kwh, price_per_kwh,
		location, latitude, longitude, status, image_url, geocoding_attempts, created_at, updated_at`

func scanListing(row pgx.Row) (models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID, &l.UserID, &l.Title, &l.Description, &l.EnergyType, &l.AvailableKWh, &l.PricePerKWh,
		&l.Location, &l.Latitude, &l.Longitude, &l.Status, &l.ImageURL, &l.GeocodingAttempts,
		&l.CreatedAt, &l.UpdatedAt,
	)

	return l, err
}

func collectListings(rows pgx.Rows) ([]models.Listing, error) {
	defer rows.Close()

	listings := make([]models.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return listings, nil
}

// ListListings returns listings newest first, optionally filtered by status and energy type.
func (r *Repository) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.EnergyType != "" {
		args = append(args, filter.EnergyType)
		conditions = append(conditions, fmt.Sprintf("energy_type = $%d", len(args)))
	}

	query := "SELECT " + listingColumns + " FROM listings"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}

	return collectListings(rows)
}

// GetListing returns a single listing or ErrListingNotFound.
func (r *Repository) GetListing(ctx context.Context, listingID int64) (*models.Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings WHERE id = $1"

	listing, err := scanListing(r.db.QueryRow(ctx, query, listingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &listing, nil
}

// CreateListing inserts the listing and fills its ID and timestamps.
// Coordinates are left to the geocoding worker.
func (r *Repository) CreateListing(ctx context.Context, listing *models.Listing) error {
	query := `
		INSERT INTO listings
			(user_id, title, energy_type, available_kwh, price_per_kwh, location, description, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at;
	`

	if listing.Status == "" {
		listing.Status = models.ListingStatusActive
	}

	err := r.db.QueryRow(ctx, query,
		listing.UserID, listing.Title, listing.EnergyType, listing.AvailableKWh, listing.PricePerKWh,
		listing.Location, listing.Description, listing.ImageURL, listing.Status,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	r.log.DebugContext(ctx, "A new listing has been stored", "listing", listing.ID, "user", listing.UserID)

	return nil
}

// UpdateListing applies a partial update. A changed location clears the coordinates
// so the geocoding worker resolves it again.
func (r *Repository) UpdateListing(ctx context.Context, listingID int64, upd models.ListingUpdate) error {
	if upd.Empty() {
		return ErrEmptyUpdate
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.EnergyType != nil {
		set("energy_type", *upd.EnergyType)
	}
	if upd.AvailableKWh != nil {
		set("available_kwh", *upd.AvailableKWh)
	}
	if upd.PricePerKWh != nil {
		set("price_per_kwh", *upd.PricePerKWh)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Location != nil {
		set("location", *upd.Location)
		sets = append(sets, "latitude = NULL", "longitude = NULL", "geocoding_attempts = 0", "geocoding_error = NULL")
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.ImageURL != nil {
		set("image_url", *upd.ImageURL)
	}

	args = append(args, listingID)
	query := fmt.Sprintf("UPDATE listings SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrListingNotFound
	}

	return nil
}

// DeleteListing removes a listing or returns ErrListingNotFound.
func (r *Repository) DeleteListing(ctx context.Context, listingID int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM listings WHERE id = $1", listingID)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrListingNotFound
	}

	return nil
}

// FetchRankingCandidates returns active listings that already have coordinates.
// With filter.Near set the limit applies to the listings closest to it.
func (r *Repository) FetchRankingCandidates(
	ctx context.Context,
	filter models.CandidateFilter,
) ([]models.Listing, error) {
	query := "SELECT " + listingColumns + ` FROM listings
		WHERE status = 'active' AND latitude IS NOT NULL AND longitude IS NOT NULL`
	var args []any

	if filter.EnergyType != "" {
		args = append(args, filter.EnergyType)
		query += fmt.Sprintf(" AND energy_type = $%d", len(args))
	}

	order := " ORDER BY id"
	if filter.Near != nil && filter.RadiusKM > 0 {
		box := geo.BoundingBox(*filter.Near, filter.RadiusKM)
		args = append(args, box.MinLatitude, box.MaxLatitude, box.MinLongitude, box.MaxLongitude)
		query += fmt.Sprintf(" AND latitude BETWEEN $%d AND $%d AND longitude BETWEEN $%d AND $%d",
			len(args)-3, len(args)-2, len(args)-1, len(args))

		// Squared equirectangular distance to Near.
		args = append(args, filter.Near.Latitude, filter.Near.Longitude)
		lat, lon := len(args)-1, len(args)
		order = fmt.Sprintf(
			" ORDER BY power(latitude - $%d, 2) + power((longitude - $%d) * cos(radians($%d)), 2), id",
			lat, lon, lat)
	}
	query += order
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking candidates: %w", err)
	}

	return collectListings(rows)
}

// FetchListingsForGeocoding retrieves listings that require geocoding.
// It returns listings that have a NULL latitude, fewer than 5 geocoding attempts
// and a non-empty location, oldest first and limited to the specified count.
func (r *Repository) FetchListingsForGeocoding(ctx context.Context, limit int) ([]models.Listing, error) {
	query := `
		SELECT id, location
		FROM listings
		WHERE
			latitude IS NULL
			AND geocoding_attempts < $1
			AND location <> ''
		ORDER BY created_at ASC
		LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, maxGeocodingAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings without coordinates: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var listing models.Listing
		if errScan := rows.Scan(&listing.ID, &listing.Location); errScan != nil {
			return nil, fmt.Errorf("failed to scan listing without coordinates: %w", errScan)
		}
		r.log.DebugContext(ctx, "A listing without coordinates has been received.",
			"listing", listing.ID, "location", listing.Location)
		listings = append(listings, listing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return listings, nil
}

// UpdateListingCoordinates stores the resolved coordinates and clears the last geocoding error.
func (r *Repository) UpdateListingCoordinates(ctx context.Context, listingID int64, point geo.Point) error {
	query := `
		UPDATE listings
		SET
			latitude = $1,
			longitude = $2,
			geocoding_error = NULL
		WHERE
			id = $3;
	`

	_, err := r.db.Exec(ctx, query, point.Latitude, point.Longitude, listingID)
	if err != nil {
		return fmt.Errorf("failed to update listing coordinates: %w", err)
	}

	return nil
}

// IncrementGeocodingFailure increments the geocoding attempt count of a listing
// and records the error message of the failed lookup.
func (r *Repository) IncrementGeocodingFailure(ctx context.Context, listingID int64, errMsg string) error {
	query := `
		UPDATE listings
		SET
			geocoding_attempts = geocoding_attempts + 1,
			geocoding_error = $1
		WHERE id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, listingID)
	if err != nil {
		return fmt.Errorf("failed to update geocoding error and number of attempts: %w", err)
	}

	return nil
}
