package review

import (
	"errors"
	"time"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrUnknownBranch = errors.New("unknown branch")
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID         int64     `json:"id"`
	BranchID   int       `json:"branch_id"`
	BranchName string    `json:"branch"`
	Name       string    `json:"name"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// SeedReviews are the reviews the site launched with, dated relative to now.
func SeedReviews(now time.Time) []Review {
	day := 24 * time.Hour
	week := 7 * day

	return []Review{
		{BranchID: 1, BranchName: "KONO Центр", Name: "Анна", Rating: 5,
			Text:      "Отличный ресторан! Блюда очень вкусные, атмосфера уютная. Обязательно вернусь снова!",
			CreatedAt: now.Add(-2 * day)},
		{BranchID: 1, BranchName: "KONO Центр", Name: "Дмитрий", Rating: 4,
			Text:      "Хорошая еда, быстрое обслуживание. Цены приемлемые для такого качества.",
			CreatedAt: now.Add(-week)},
		{BranchID: 2, BranchName: "KONO Север", Name: "Михаил", Rating: 4,
			Text:      "Хорошая еда, но долго готовили. Персонал вежливый, порции большие.",
			CreatedAt: now.Add(-week)},
		{BranchID: 3, BranchName: "KONO Юг", Name: "Елена", Rating: 5,
			Text:      "Потрясающий рамен! Самый вкусный в городе. Атмосфера как в Японии.",
			CreatedAt: now.Add(-2 * week)},
		{BranchID: 3, BranchName: "KONO Юг", Name: "Сергей", Rating: 5,
			Text:      "Отличное место для семейного ужина. Дети в восторге от персонажей!",
			CreatedAt: now.Add(-3 * week)},
	}
}
