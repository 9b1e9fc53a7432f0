package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/jackc/pgx/v5"
)

// GetUser returns the user profile or ErrUserNotFound.
func (r *Repository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT id, name, email, role, location, latitude, longitude, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.Location,
		&user.Latitude, &user.Longitude, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
