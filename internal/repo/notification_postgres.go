package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(n models.Notification) (models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	query := `INSERT INTO notifications (id, user_id, product_id, urgency, message, notified_for)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, notified_for) DO NOTHING
		RETURNING created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, n.ID, n.UserID, n.ProductID, n.Urgency, n.Message, n.NotifiedFor).
		Scan(&n.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Notification{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (r *PostgresNotificationRepository) GetAllByUser(userID string) ([]models.Notification, error) {
	query := `SELECT id, user_id, product_id, urgency, message, to_char(notified_for, 'YYYY-MM-DD'), read, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.ProductID, &n.Urgency, &n.Message, &n.NotifiedFor, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *PostgresNotificationRepository) MarkRead(id, userID string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
