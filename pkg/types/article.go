package types

// Publication status values shared by articles and pages.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is a blog post authored in markdown. CategoryID is an optional
// reference resolved lazily by readers; a dangling value is tolerated,
// never rejected. Timestamps are RFC 3339 strings set by the store.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"coverImage"`
	Status      string   `json:"status"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsSticky    bool     `json:"isSticky,omitempty"`
	StickyOrder int      `json:"stickyOrder,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ArticlePatch carries a partial update. Nil fields are left untouched;
// non-nil fields overwrite, including Tags, which is replaced wholesale.
type ArticlePatch struct {
	Title       *string   `json:"title,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	Content     *string   `json:"content,omitempty"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	Status      *string   `json:"status,omitempty"`
	CategoryID  *string   `json:"categoryId,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	IsSticky    *bool     `json:"isSticky,omitempty"`
	StickyOrder *int      `json:"stickyOrder,omitempty"`
}
