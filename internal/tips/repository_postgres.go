package tips

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// --------------------------------------------------
// Totals across all branches
// --------------------------------------------------
func (r *PostgresRepository) Totals(ctx context.Context) (int, int, error) {
	query, args, err := r.sb.
		Select("COALESCE(SUM(amount), 0)", "COUNT(DISTINCT tipper_id)").
		From("tips").
		ToSql()
	if err != nil {
		return 0, 0, err
	}

	var amount, people int
	err = r.db.QueryRow(ctx, query, args...).Scan(&amount, &people)
	return amount, people, err
}

// --------------------------------------------------
// Most recent tips
// --------------------------------------------------
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]Tip, error) {
	query, args, err := r.sb.
		Select("t.amount", "b.name", "t.created_at").
		From("tips t").
		Join("branches b ON b.id = t.branch_id").
		OrderBy("t.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := []Tip{}

	for rows.Next() {
		var t Tip
		if err := rows.Scan(&t.Amount, &t.BranchName, &t.CreatedAt); err != nil {
			return nil, err
		}
		recent = append(recent, t)
	}

	return recent, rows.Err()
}
