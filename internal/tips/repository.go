package tips

import "context"

type Repository interface {
	Totals(ctx context.Context) (amount int, people int, err error)
	Recent(ctx context.Context, limit int) ([]Tip, error)
}
