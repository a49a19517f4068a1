package domain

import "strings"

// Category is a NewsAPI top-headlines category
type Category string

const (
	CategoryBusiness      Category = "business"
	CategoryEntertainment Category = "entertainment"
	CategoryGeneral       Category = "general"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategorySports        Category = "sports"
	CategoryTechnology    Category = "technology"
)

// Categories lists the accepted categories in display order.
var Categories = []Category{
	CategoryBusiness,
	CategoryEntertainment,
	CategoryGeneral,
	CategoryHealth,
	CategoryScience,
	CategorySports,
	CategoryTechnology,
}

// ParseCategory matches raw case-insensitively against Categories.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(raw))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// CategoryList renders Categories as "business, entertainment, ...".
func CategoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
