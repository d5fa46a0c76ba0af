package domain

// Category groups forums by broad topic area.
type Category string

// Supported forum categories.
const (
	CategoryTechnology Category = "Technology"
	CategoryScience    Category = "Science"
	CategoryArt        Category = "Art"
)

// Valid reports whether the category is one of the supported values.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryScience, CategoryArt:
		return true
	}
	return false
}

// Forum is a top-level discussion area. The slug is its URL-safe public
// identifier and is immutable once the forum is created; forums are never
// updated or deleted.
type Forum struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}
