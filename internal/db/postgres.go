package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			category_id UUID NULL REFERENCES categories(id) ON DELETE SET NULL,
			is_veg BOOLEAN NOT NULL DEFAULT FALSE,
			is_spicy BOOLEAN NOT NULL DEFAULT FALSE,
			is_chefs_special BOOLEAN NOT NULL DEFAULT FALSE,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			image_hint VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS tables (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			capacity INT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'AVAILABLE'
		)`,

		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL DEFAULT '',
			table_id UUID NULL REFERENCES tables(id) ON DELETE SET NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'KOT',
			subtotal NUMERIC(12,2) NOT NULL,
			cgst NUMERIC(14,6) NOT NULL,
			sgst NUMERIC(14,6) NOT NULL,
			round_off NUMERIC(14,6) NOT NULL,
			total NUMERIC(12,2) NOT NULL,
			created_by UUID NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			item_id UUID NULL,
			name VARCHAR(255) NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("Schema initialized successfully")
	return nil
}
