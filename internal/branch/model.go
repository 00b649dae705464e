package branch

import (
	"errors"

	"github.com/AlexeyAndrrr/konoramenidk/internal/core"
)

var (
	ErrBranchNotFound = core.ErrBranchNotFound
	ErrNoSelection    = errors.New("no branch selected")
	ErrInvalidVisitor = errors.New("invalid visitor id")
)

// Branch is one KONO restaurant location.
type Branch struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}

// DefaultBranches is the network as listed on the site.
func DefaultBranches() []Branch {
	return []Branch{
		{ID: 1, Name: "KONO Центр", Address: "ул. Главная, 123", Coordinates: [2]float64{55.7558, 37.6176}},
		{ID: 2, Name: "KONO Север", Address: "пр. Северный, 45", Coordinates: [2]float64{55.8358, 37.6176}},
		{ID: 3, Name: "KONO Юг", Address: "ул. Южная, 67", Coordinates: [2]float64{55.6758, 37.6176}},
		{ID: 4, Name: "KONO Запад", Address: "ул. Западная, 89", Coordinates: [2]float64{55.7558, 37.5176}},
		{ID: 5, Name: "KONO Восток", Address: "пр. Восточный, 12", Coordinates: [2]float64{55.7558, 37.7176}},
	}
}
