package menu

import (
	"errors"
	"fmt"
)

var ErrInvalidSelection = errors.New("invalid filter selection")

// Dimension names one axis of the filter selection.
type Dimension string

const (
	DimensionCategory Dimension = "category"
	DimensionSpice    Dimension = "spice"
	DimensionPrice    Dimension = "price"
)

// FilterSelection is the active menu filter of one browsing session.
type FilterSelection struct {
	Category    string      `json:"category"`
	SpiceLevel  string      `json:"spice"`
	PriceBucket PriceBucket `json:"price"`
}

// DefaultSelection shows everything.
func DefaultSelection() FilterSelection {
	return FilterSelection{
		Category:    FilterAll,
		SpiceLevel:  FilterAll,
		PriceBucket: PriceAll,
	}
}

// Update changes a single dimension. The selection is left untouched when
// the value is rejected.
func (s *FilterSelection) Update(dim Dimension, value string) error {
	switch dim {
	case DimensionCategory:
		if value != FilterAll && value != FilterNew && !Category(value).Known() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidSelection, value)
		}
		s.Category = value
	case DimensionSpice:
		if value != FilterAll && !SpiceLevel(value).Known() {
			return fmt.Errorf("%w: unknown spice level %q", ErrInvalidSelection, value)
		}
		s.SpiceLevel = value
	case DimensionPrice:
		if !PriceBucket(value).Known() {
			return fmt.Errorf("%w: unknown price range %q", ErrInvalidSelection, value)
		}
		s.PriceBucket = PriceBucket(value)
	default:
		return fmt.Errorf("%w: unknown dimension %q", ErrInvalidSelection, dim)
	}
	return nil
}

// ParseSelection builds a selection from query-style values. Empty values
// mean "all".
func ParseSelection(category, spice, price string) (FilterSelection, error) {
	sel := DefaultSelection()

	updates := []struct {
		dim   Dimension
		value string
	}{
		{DimensionCategory, category},
		{DimensionSpice, spice},
		{DimensionPrice, price},
	}
	for _, u := range updates {
		if u.value == "" {
			continue
		}
		if err := sel.Update(u.dim, u.value); err != nil {
			return FilterSelection{}, err
		}
	}

	return sel, nil
}
