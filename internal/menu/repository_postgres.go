package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrItemNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price::text, category_id,
		       is_veg, is_spicy, is_chefs_special, is_available,
		       image_url, image_hint
		FROM menu_items
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, price::text, category_id,
		       is_veg, is_spicy, is_chefs_special, is_available,
		       image_url, image_hint
		FROM menu_items
		WHERE id = $1
	`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (
			id, name, description, price, category_id,
			is_veg, is_spicy, is_chefs_special, is_available,
			image_url, image_hint
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		item.ID, item.Name, item.Description, item.Price.String(), nullable(item.CategoryID),
		item.IsVeg, item.IsSpicy, item.IsChefsSpecial, item.IsAvailable,
		item.ImageURL, item.ImageHint,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category_id = $5,
		    is_veg = $6, is_spicy = $7, is_chefs_special = $8,
		    is_available = $9, image_url = $10, image_hint = $11
		WHERE id = $1
	`,
		item.ID, item.Name, item.Description, item.Price.String(), nullable(item.CategoryID),
		item.IsVeg, item.IsSpicy, item.IsChefsSpecial, item.IsAvailable,
		item.ImageURL, item.ImageHint,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM menu_items
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanItem(row pgx.Row) (*Item, error) {
	var (
		item       Item
		price      string
		categoryID *string
	)

	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &price, &categoryID,
		&item.IsVeg, &item.IsSpicy, &item.IsChefsSpecial, &item.IsAvailable,
		&item.ImageURL, &item.ImageHint,
	)
	if err != nil {
		return nil, err
	}

	item.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		item.CategoryID = *categoryID
	}

	return &item, nil
}
