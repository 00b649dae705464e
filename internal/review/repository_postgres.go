package review

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
// List reviews for a branch (newest first)
// --------------------------------------------------
func (r *PostgresRepository) ListByBranch(ctx context.Context, branchID int) ([]Review, error) {
	query, args, err := r.sb.
		Select("rv.id", "rv.branch_id", "b.name", "rv.author_name", "rv.rating", "rv.body", "rv.created_at").
		From("reviews rv").
		Join("branches b ON b.id = rv.branch_id").
		Where(sq.Eq{"rv.branch_id": branchID}).
		OrderBy("rv.created_at DESC", "rv.id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}

	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID,
			&rv.BranchID,
			&rv.BranchName,
			&rv.Name,
			&rv.Rating,
			&rv.Text,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

// --------------------------------------------------
// Create review
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, rv *Review) error {
	query, args, err := r.sb.
		Insert("reviews").
		Columns("branch_id", "author_name", "rating", "body", "created_at").
		Values(rv.BranchID, rv.Name, rv.Rating, rv.Text, rv.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, query, args...).Scan(&rv.ID)
}
