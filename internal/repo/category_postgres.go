package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(c models.Category) (models.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO categories (id, user_id, name, icon, is_default) VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.Icon, c.IsDefault)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Category{}, ErrDuplicatedValueUnique
		}
		return models.Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) GetAllByUser(userID string) ([]models.Category, error) {
	query := `SELECT id, user_id, name, icon, is_default FROM categories
		WHERE user_id = $1 ORDER BY is_default DESC, name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.IsDefault); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) GetByID(id string) (models.Category, error) {
	query := `SELECT id, user_id, name, icon, is_default FROM categories WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.IsDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

func (r *PostgresCategoryRepository) Delete(id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
