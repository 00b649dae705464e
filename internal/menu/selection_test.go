package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		label string
		want  int
		ok    bool
	}{
		{"350₽", 350, true},
		{" 350 ₽ ", 350, true},
		{"420 руб.", 420, true},
		{"0", 0, true},
		{"", 0, false},
		{"₽", 0, false},
		{"abc", 0, false},
		{"-10₽", 0, false},
		{"12.5", 0, false},
	}

	for _, tc := range cases {
		got, err := ParsePrice(tc.label)
		if tc.ok {
			require.NoError(t, err, tc.label)
			assert.Equal(t, tc.want, got, tc.label)
		} else {
			assert.ErrorIs(t, err, ErrMalformedItem, tc.label)
		}
	}
}

func TestNewItem_MalformedPrice(t *testing.T) {
	ok := NewItem(1, "Tonkotsu", CategoryRamen, SpiceMild, "450₽", false)
	bad := NewItem(2, "Special", CategoryRamen, SpiceMild, "market price", false)

	require.NotNil(t, ok.Price)
	assert.Equal(t, 450, *ok.Price)
	assert.False(t, ok.Malformed())
	assert.True(t, bad.Malformed())
}

func TestFilterSelection_Update(t *testing.T) {
	sel := DefaultSelection()

	require.NoError(t, sel.Update(DimensionCategory, "sushi"))
	require.NoError(t, sel.Update(DimensionSpice, "hot"))
	require.NoError(t, sel.Update(DimensionPrice, "high"))

	assert.Equal(t, FilterSelection{Category: "sushi", SpiceLevel: "hot", PriceBucket: PriceHigh}, sel)

	require.NoError(t, sel.Update(DimensionCategory, FilterNew))
	assert.Equal(t, FilterNew, sel.Category)
}

func TestFilterSelection_UpdateRejectsUnknownValues(t *testing.T) {
	sel := DefaultSelection()

	assert.ErrorIs(t, sel.Update(DimensionCategory, "pizza"), ErrInvalidSelection)
	assert.ErrorIs(t, sel.Update(DimensionSpice, "volcanic"), ErrInvalidSelection)
	assert.ErrorIs(t, sel.Update(DimensionPrice, "cheap"), ErrInvalidSelection)
	assert.ErrorIs(t, sel.Update(Dimension("color"), "red"), ErrInvalidSelection)

	assert.Equal(t, DefaultSelection(), sel)
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection("", "mild", "")
	require.NoError(t, err)
	assert.Equal(t, FilterSelection{Category: FilterAll, SpiceLevel: "mild", PriceBucket: PriceAll}, sel)

	_, err = ParseSelection("ramen", "", "huge")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
