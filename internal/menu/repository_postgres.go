package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LOAD CATALOG
// price_label is kept as printed so malformed rows survive the load
// --------------------------------------------------
func (r *PostgresRepository) Load(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			title,
			category,
			spice_level,
			price_label,
			is_new
		FROM menu_items
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem

	for rows.Next() {
		var (
			id         int
			title      string
			category   string
			spice      string
			priceLabel string
			isNew      bool
		)
		if err := rows.Scan(
			&id,
			&title,
			&category,
			&spice,
			&priceLabel,
			&isNew,
		); err != nil {
			return nil, err
		}

		items = append(items, NewItem(
			id,
			title,
			Category(category),
			SpiceLevel(spice),
			priceLabel,
			isNew,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
