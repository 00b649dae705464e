package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk / object-storage layout of a menu.
type catalogFile struct {
	Items []catalogEntry `json:"items" yaml:"items"`
}

type catalogEntry struct {
	ID       int        `json:"id" yaml:"id"`
	Title    string     `json:"title" yaml:"title"`
	Category string     `json:"category" yaml:"category"`
	Spice    string     `json:"spice" yaml:"spice"`
	Price    priceLabel `json:"price" yaml:"price"`
	New      bool       `json:"new" yaml:"new"`
}

// priceLabel keeps a price as written. Numbers and strings are kept as
// text; any other value leaves it empty so the item loads as malformed.
type priceLabel string

func (p *priceLabel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = priceLabel(s)
	case isJSONNumber(data):
		*p = priceLabel(data)
	default:
		*p = ""
	}
	return nil
}

func (p *priceLabel) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag != "!!null" && value.Tag != "!!bool" {
		*p = priceLabel(value.Value)
		return nil
	}
	*p = ""
	return nil
}

func isJSONNumber(data []byte) bool {
	var n json.Number
	return json.Unmarshal(data, &n) == nil
}

// DecodeCatalog parses a catalog document. The format is picked from the
// file name extension.
func DecodeCatalog(filename string, data []byte) ([]MenuItem, error) {
	if err := ValidateFileExtension(filename); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filename, err)
	}

	var doc catalogFile
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", filename, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", filename, err)
		}
	}

	items := make([]MenuItem, 0, len(doc.Items))
	for _, e := range doc.Items {
		spice := e.Spice
		if spice == "" {
			spice = string(SpiceNone)
		}
		items = append(items, NewItem(
			e.ID,
			e.Title,
			Category(e.Category),
			SpiceLevel(spice),
			string(e.Price),
			e.New,
		))
	}

	if err := ValidateCatalog(items); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filename, err)
	}

	return items, nil
}
