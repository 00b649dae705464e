package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedItem = errors.New("malformed menu item price")

// ParsePrice turns a printed price such as "350₽" or "350 руб." into
// whole roubles.
func ParsePrice(label string) (int, error) {
	s := strings.TrimSpace(label)
	s = strings.TrimSuffix(s, "₽")
	s = strings.TrimSuffix(s, "руб.")
	s = strings.TrimSuffix(s, "руб")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, fmt.Errorf("%w: empty price %q", ErrMalformedItem, label)
	}

	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedItem, label)
	}
	if p < 0 {
		return 0, fmt.Errorf("%w: negative price %q", ErrMalformedItem, label)
	}

	return p, nil
}

// FormatPrice renders a price the way the menu prints it.
func FormatPrice(p int) string {
	return strconv.Itoa(p) + "₽"
}
