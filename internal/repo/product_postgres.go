package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `p.id, p.user_id, p.category_id, p.name, to_char(p.expiry_date, 'YYYY-MM-DD'), p.quantity, p.notes, p.image_url,
	c.id, c.name, c.icon, c.is_default`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var categoryID sql.NullString
	var catID, catName, catIcon sql.NullString
	var catDefault sql.NullBool

	err := row.Scan(&p.ID, &p.UserID, &categoryID, &p.Name, &p.ExpiryDate, &p.Quantity, &p.Notes, &p.ImageURL,
		&catID, &catName, &catIcon, &catDefault)
	if err != nil {
		return models.Product{}, err
	}
	if categoryID.Valid {
		p.CategoryID = &categoryID.String
	}
	if catID.Valid {
		p.Category = &models.Category{
			ID:        catID.String,
			UserID:    p.UserID,
			Name:      catName.String,
			Icon:      catIcon.String,
			IsDefault: catDefault.Bool,
		}
	}
	return p, nil
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO products (id, user_id, category_id, name, expiry_date, quantity, notes, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.ID, p.UserID, p.CategoryID, p.Name, p.ExpiryDate, p.Quantity, p.Notes, p.ImageURL)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAllByUser(userID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.user_id = $1 ORDER BY p.expiry_date, p.created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET category_id = $1, name = $2, expiry_date = $3, quantity = $4, notes = $5,
		image_url = $6, updated_at = now() WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.CategoryID, p.Name, p.ExpiryDate, p.Quantity, p.Notes, p.ImageURL, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id string) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Filter(filter ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := productFilterConditions(filter)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products p WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE 1=1` + conditions + ` ORDER BY p.expiry_date, p.created_at`

	if filter.Limit != nil && *filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *filter.Limit)
		argIdx++
	}
	if filter.Offset != nil && *filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *filter.Offset)
		argIdx++
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, totalCount, rows.Err()
}

func productFilterConditions(filter ProductFilter) (string, []any, int) {
	query := " AND p.user_id = $1"
	argIdx := 2
	args := []any{filter.UserID}

	if filter.Name != "" {
		query += fmt.Sprintf(" AND p.name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Name+"%")
		argIdx++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", argIdx)
		args = append(args, filter.CategoryID)
		argIdx++
	}
	if filter.ExpiringWithinDays != nil {
		query += fmt.Sprintf(" AND p.expiry_date <= CURRENT_DATE + $%d", argIdx)
		args = append(args, *filter.ExpiringWithinDays)
		argIdx++
	}

	return query, args, argIdx
}
