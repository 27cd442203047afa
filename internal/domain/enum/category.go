package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies report items by preparation origin
type Category int

const (
	CategoryAll     Category = 0
	CategoryKitchen Category = 1
	CategoryBar     Category = 2
)

func (c Category) String() string {
	names := [...]string{"All", "Kitchen", "Bar"}
	if int(c) < 0 || int(c) >= len(names) {
		return "All"
	}
	return names[c]
}

// Slug returns the lowercase form used in query parameters and filenames.
func (c Category) Slug() string {
	return strings.ToLower(c.String())
}

// Includes reports whether a line item with the given kitchen flag
// belongs to this category filter.
func (c Category) Includes(isKitchen bool) bool {
	switch c {
	case CategoryKitchen:
		return isKitchen
	case CategoryBar:
		return !isKitchen
	default:
		return true
	}
}

// CategoryFromKitchenFlag maps the item-level boolean onto the
// mutually exclusive Kitchen/Bar classification.
func CategoryFromKitchenFlag(isKitchen bool) Category {
	if isKitchen {
		return CategoryKitchen
	}
	return CategoryBar
}

// ParseCategory parses a query-parameter value. Empty input means All.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll, nil
	case "kitchen":
		return CategoryKitchen, nil
	case "bar":
		return CategoryBar, nil
	}
	return CategoryAll, fmt.Errorf("unknown category %q (use all, kitchen, or bar)", s)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = Category(i)
		return nil
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
