package types

// Page is a standalone site page. Content is markdown, or raw HTML when it
// starts with "<" (renderers branch on the leading character). ParentID
// forms a tree; the store does not prevent self-reference or cycles, that
// is the editor's job. Pages carry no creation timestamp.
type Page struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	ParentID   string `json:"parentId,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
	Order      int    `json:"order,omitempty"`
	UpdatedAt  string `json:"updatedAt"`
}

// PagePatch carries a partial update for a page.
type PagePatch struct {
	Title      *string `json:"title,omitempty"`
	Slug       *string `json:"slug,omitempty"`
	Content    *string `json:"content,omitempty"`
	Status     *string `json:"status,omitempty"`
	ParentID   *string `json:"parentId,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
	Order      *int    `json:"order,omitempty"`
}
