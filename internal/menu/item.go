package menu

// MenuItem is a single dish as loaded from the catalog source.
// Price is nil when the printed label could not be parsed.
type MenuItem struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Category   Category   `json:"category"`
	SpiceLevel SpiceLevel `json:"spice_level"`
	Price      *int       `json:"price"`
	PriceLabel string     `json:"price_label"`
	IsNew      bool       `json:"is_new"`
}

// NewItem builds an item from raw catalog fields, parsing the price label.
func NewItem(id int, title string, category Category, spice SpiceLevel, priceLabel string, isNew bool) MenuItem {
	item := MenuItem{
		ID:         id,
		Title:      title,
		Category:   category,
		SpiceLevel: spice,
		PriceLabel: priceLabel,
		IsNew:      isNew,
	}
	if p, err := ParsePrice(priceLabel); err == nil {
		item.Price = &p
	}
	return item
}

// Malformed reports whether the item's price could not be parsed.
func (i MenuItem) Malformed() bool {
	return i.Price == nil
}
