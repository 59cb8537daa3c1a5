package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"hungryhouse/internal/billing"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create writes the order and its lines in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, customer_name, table_id, status,
			subtotal, cgst, sgst, round_off, total,
			created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		o.ID, o.CustomerName, nullable(o.TableID), o.Status,
		o.Subtotal.String(), o.CGST.String(), o.SGST.String(),
		o.RoundOff.String(), o.Total.String(),
		nullable(o.CreatedBy), o.CreatedAt,
	)
	if err != nil {
		return err
	}

	for _, line := range o.Lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, item_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, o.ID, nullable(line.ItemID), line.Name, line.UnitPrice.String(), line.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := r.scanOrder(r.db.QueryRow(ctx, `
		SELECT id, customer_name, table_id, status,
		       subtotal::text, cgst::text, sgst::text, round_off::text, total::text,
		       created_by, created_at
		FROM orders
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := r.loadLines(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_name, table_id, status,
		       subtotal::text, cgst::text, sgst::text, round_off::text, total::text,
		       created_by, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadLines(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) loadLines(ctx context.Context, o *Order) error {
	rows, err := r.db.Query(ctx, `
		SELECT item_id, name, unit_price::text, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line   billing.Line
			itemID *string
			price  string
		)
		if err := rows.Scan(&itemID, &line.Name, &price, &line.Quantity); err != nil {
			return err
		}
		if itemID != nil {
			line.ItemID = *itemID
		}
		line.UnitPrice, err = decimal.NewFromString(price)
		if err != nil {
			return err
		}
		o.Lines = append(o.Lines, line)
	}

	return rows.Err()
}

func (r *PostgresRepository) scanOrder(row pgx.Row) (*Order, error) {
	var (
		o                                     Order
		tableID, createdBy                    *string
		subtotal, cgst, sgst, roundOff, total string
		createdAt                             time.Time
	)

	err := row.Scan(
		&o.ID, &o.CustomerName, &tableID, &o.Status,
		&subtotal, &cgst, &sgst, &roundOff, &total,
		&createdBy, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if tableID != nil {
		o.TableID = *tableID
	}
	if createdBy != nil {
		o.CreatedBy = *createdBy
	}
	o.CreatedAt = createdAt

	for dst, src := range map[*decimal.Decimal]string{
		&o.Subtotal: subtotal,
		&o.CGST:     cgst,
		&o.SGST:     sgst,
		&o.RoundOff: roundOff,
		&o.Total:    total,
	} {
		d, err := decimal.NewFromString(src)
		if err != nil {
			return nil, err
		}
		*dst = d
	}

	return &o, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
