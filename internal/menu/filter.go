package menu

// Evaluate decides which catalog items are visible under sel and derives
// the badge counts. It always scans the whole catalog and has no side
// effects.
func Evaluate(catalog []MenuItem, sel FilterSelection) EvaluationResult {
	result := EvaluationResult{
		VisibleIDs:     []int{},
		CategoryCounts: make(map[Category]int, len(Categories)),
	}
	for _, c := range Categories {
		result.CategoryCounts[c] = 0
	}

	for _, item := range catalog {
		// counts ignore the active filters
		if item.Category.Known() {
			result.CategoryCounts[item.Category]++
		}
		if item.IsNew {
			result.NewCount++
		}

		if matchCategory(item, sel.Category) &&
			matchSpice(item, sel.SpiceLevel) &&
			matchPrice(item, sel.PriceBucket) {
			result.VisibleIDs = append(result.VisibleIDs, item.ID)
		}
	}

	result.IsEmpty = len(result.VisibleIDs) == 0
	return result
}

func matchCategory(item MenuItem, want string) bool {
	switch want {
	case FilterAll:
		return true
	case FilterNew:
		return item.IsNew
	default:
		return item.Category.Known() && string(item.Category) == want
	}
}

func matchSpice(item MenuItem, want string) bool {
	if want == FilterAll {
		return true
	}
	return item.SpiceLevel.Known() && string(item.SpiceLevel) == want
}

func matchPrice(item MenuItem, bucket PriceBucket) bool {
	if bucket == PriceAll {
		return true
	}
	if item.Price == nil {
		return false
	}

	p := *item.Price
	switch bucket {
	case PriceLow:
		return p <= LowPriceMax
	case PriceMedium:
		return p >= MediumPriceMin && p <= MediumPriceMax
	case PriceHigh:
		return p >= HighPriceMin
	default:
		return false
	}
}

// MalformedItems returns the ids of items whose price failed to parse.
func MalformedItems(catalog []MenuItem) []int {
	var ids []int
	for _, item := range catalog {
		if item.Malformed() {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
