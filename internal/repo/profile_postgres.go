package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

type PostgresProfileRepository struct {
	db *sql.DB
}

func NewPostgresProfileRepository(db *sql.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(p models.Profile) (models.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO profiles (id, user_id, display_name, notification_days_before, push_notifications_enabled)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.ID, p.UserID, p.DisplayName, p.NotificationDaysBefore, p.PushNotificationsEnabled).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProfileRepository) GetByUserID(userID string) (models.Profile, error) {
	query := `SELECT id, user_id, display_name, notification_days_before, push_notifications_enabled, created_at, updated_at
		FROM profiles WHERE user_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Profile
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&p.ID, &p.UserID, &p.DisplayName, &p.NotificationDaysBefore, &p.PushNotificationsEnabled, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	return p, err
}

func (r *PostgresProfileRepository) Update(p models.Profile) (models.Profile, error) {
	query := `UPDATE profiles SET display_name = $1, notification_days_before = $2, push_notifications_enabled = $3,
		updated_at = now() WHERE user_id = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.DisplayName, p.NotificationDaysBefore, p.PushNotificationsEnabled, p.UserID)
	if err != nil {
		return models.Profile{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (r *PostgresProfileRepository) GetPushEnabled() ([]models.Profile, error) {
	query := `SELECT id, user_id, display_name, notification_days_before, push_notifications_enabled, created_at, updated_at
		FROM profiles WHERE push_notifications_enabled`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.DisplayName, &p.NotificationDaysBefore, &p.PushNotificationsEnabled, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
