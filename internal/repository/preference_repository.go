// internal/repository/preference_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/daybook-app/daybook/ent/generated"
	"github.com/daybook-app/daybook/ent/generated/user"
)

// PreferenceRepository reads and writes the user settings the filter
// engine depends on. It implements timezone.PreferenceSource.
type PreferenceRepository struct {
	client *ent.Client
}

func NewPreferenceRepository(client *ent.Client) *PreferenceRepository {
	return &PreferenceRepository{
		client: client,
	}
}

// Preferences is the settings slice exposed to the API layer.
type Preferences struct {
	Timezone      string
	RetentionDays int
}

// GetUserTimezone returns the stored zone identifier, "" when the user
// never chose one. The resolver owns validation and fallback.
func (r *PreferenceRepository) GetUserTimezone(ctx context.Context, userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("invalid user ID: %w", err)
	}

	zone, err := r.client.User.
		Query().
		Where(user.ID(id)).
		Select(user.FieldTimezone).
		String(ctx)
	if err != nil {
		return "", fmt.Errorf("query timezone: %w", err)
	}
	return zone, nil
}

// GetCompletedRetentionDays returns how many days of completed tasks
// stay visible for the user.
func (r *PreferenceRepository) GetCompletedRetentionDays(ctx context.Context, userID string) (int, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID: %w", err)
	}

	days, err := r.client.User.
		Query().
		Where(user.ID(id)).
		Select(user.FieldCompletedRetentionDays).
		Int(ctx)
	if err != nil {
		return 0, fmt.Errorf("query retention days: %w", err)
	}
	return days, nil
}

// Get returns both preference values for display.
func (r *PreferenceRepository) Get(ctx context.Context, userID uuid.UUID) (Preferences, error) {
	row, err := r.client.User.
		Query().
		Where(user.ID(userID)).
		Only(ctx)
	if err != nil {
		return Preferences{}, err
	}
	return Preferences{
		Timezone:      row.Timezone,
		RetentionDays: row.CompletedRetentionDays,
	}, nil
}

// Update persists new settings. Nil fields are left untouched. Callers
// invalidate the timezone resolver cache after a successful update.
func (r *PreferenceRepository) Update(ctx context.Context, userID uuid.UUID, zone *string, retentionDays *int) (Preferences, error) {
	update := r.client.User.UpdateOneID(userID)
	if zone != nil {
		update = update.SetTimezone(*zone)
	}
	if retentionDays != nil {
		update = update.SetCompletedRetentionDays(*retentionDays)
	}

	row, err := update.Save(ctx)
	if err != nil {
		return Preferences{}, err
	}
	return Preferences{
		Timezone:      row.Timezone,
		RetentionDays: row.CompletedRetentionDays,
	}, nil
}
