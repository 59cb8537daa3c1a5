package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM categories
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, name string) (*Category, error) {
	c := &Category{
		ID:   uuid.New().String(),
		Name: name,
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
	`, c.ID, c.Name)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM categories
		WHERE id = $1
	`, id)
	return err
}
