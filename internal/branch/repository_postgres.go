package branch

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List branches
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Branch, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, address, latitude, longitude
		FROM branches
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []Branch

	for rows.Next() {
		var b Branch
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Address,
			&b.Coordinates[0],
			&b.Coordinates[1],
		); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}

// --------------------------------------------------
// Get one branch
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, id int) (*Branch, error) {
	var b Branch

	err := r.db.QueryRow(ctx, `
		SELECT id, name, address, latitude, longitude
		FROM branches
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Name, &b.Address, &b.Coordinates[0], &b.Coordinates[1])

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	return &b, nil
}
