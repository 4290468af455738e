package domain

// Category is the semantic classification of an observed activity.
type Category string

const (
	CategoryWork          Category = "Work"
	CategoryGaming        Category = "Gaming"
	CategoryBrowsing      Category = "Browsing"
	CategoryCommunication Category = "Communication"
	CategoryMedia         Category = "Media"
	CategoryOther         Category = "Other"
)

// Categories is the closed set of valid category labels, in prompt order.
var Categories = []Category{
	CategoryWork,
	CategoryGaming,
	CategoryBrowsing,
	CategoryCommunication,
	CategoryMedia,
	CategoryOther,
}

var validCategories = map[Category]bool{
	CategoryWork:          true,
	CategoryGaming:        true,
	CategoryBrowsing:      true,
	CategoryCommunication: true,
	CategoryMedia:         true,
	CategoryOther:         true,
}

// ParseCategory maps a raw label onto the closed category set.
// Matching is exact: case or whitespace variants ("work", "WORK ") and
// anything outside the set collapse to CategoryOther.
func ParseCategory(label string) Category {
	c := Category(label)
	if validCategories[c] {
		return c
	}
	return CategoryOther
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	return validCategories[c]
}

func (c Category) String() string {
	return string(c)
}
