package menu

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var allowedExt = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}

// ValidateCatalog checks catalog-wide invariants. Unknown categories and
// spice levels are allowed; they simply never match a specific filter.
func ValidateCatalog(items []MenuItem) error {
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			return fmt.Errorf("duplicate menu item id %d", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}
