package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/ecohub/internal/models"
)

// LogInteraction stores an AI prompt and its answer.
func (r *Repository) LogInteraction(ctx context.Context, interaction models.Interaction) error {
	query := `
		INSERT INTO ai_interactions (user_id, interaction_type, prompt, response, carbon_savings_estimate)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.db.Exec(ctx, query,
		interaction.UserID, interaction.Type, interaction.Prompt, interaction.Response,
		interaction.CarbonSavingsEstimate,
	)
	if err != nil {
		return fmt.Errorf("failed to log ai interaction: %w", err)
	}

	return nil
}
