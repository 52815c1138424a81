package types

// Category groups articles. Color is a UI style token, not validated here.
// Articles reference categories by id; deleting a category leaves those
// references dangling.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Color     string `json:"color,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// CategoryPatch carries a partial update for a category.
type CategoryPatch struct {
	Name  *string `json:"name,omitempty"`
	Slug  *string `json:"slug,omitempty"`
	Color *string `json:"color,omitempty"`
}
