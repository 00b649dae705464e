package menu

// Category is the menu section an item belongs to.
type Category string

const (
	CategoryRamen      Category = "ramen"
	CategorySushi      Category = "sushi"
	CategoryRolls      Category = "rolls"
	CategoryAppetizers Category = "appetizers"
	CategoryDesserts   Category = "desserts"
	CategoryDrinks     Category = "drinks"
)

// Categories lists every concrete category in menu tab order.
var Categories = []Category{
	CategoryRamen,
	CategorySushi,
	CategoryRolls,
	CategoryAppetizers,
	CategoryDesserts,
	CategoryDrinks,
}

// SpiceLevel is how hot a dish is.
type SpiceLevel string

const (
	SpiceNone   SpiceLevel = "none"
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

var SpiceLevels = []SpiceLevel{SpiceNone, SpiceMild, SpiceMedium, SpiceHot}

// PriceBucket groups prices for the price range filter.
type PriceBucket string

const (
	PriceAll    PriceBucket = "all"
	PriceLow    PriceBucket = "low"
	PriceMedium PriceBucket = "medium"
	PriceHigh   PriceBucket = "high"
)

var PriceBuckets = []PriceBucket{PriceAll, PriceLow, PriceMedium, PriceHigh}

// Bucket edges in roubles. Both edges belong to two buckets.
const (
	LowPriceMax    = 300
	HighPriceMin   = 600
	MediumPriceMin = LowPriceMax
	MediumPriceMax = HighPriceMin
)

// Sentinel filter values.
const (
	FilterAll = "all"
	FilterNew = "new"
)

func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (s SpiceLevel) Known() bool {
	for _, known := range SpiceLevels {
		if s == known {
			return true
		}
	}
	return false
}

func (b PriceBucket) Known() bool {
	for _, known := range PriceBuckets {
		if b == known {
			return true
		}
	}
	return false
}

// EvaluationResult is what the renderer needs after a filter change.
type EvaluationResult struct {
	VisibleIDs     []int            `json:"visible_ids"`
	CategoryCounts map[Category]int `json:"category_counts"`
	NewCount       int              `json:"new_count"`
	IsEmpty        bool             `json:"is_empty"`
}

// Visible reports whether id is in the visible set.
func (r EvaluationResult) Visible(id int) bool {
	for _, v := range r.VisibleIDs {
		if v == id {
			return true
		}
	}
	return false
}
