package types

// Media is an uploaded file stored inline. Data holds the encoded payload
// (a data URL in practice); Size is the original byte count. Other records
// reference media by URL-valued fields, never by id, so deletion leaves
// those references dangling.
type Media struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Size      int64  `json:"size"`
	Data      string `json:"data"`
	CreatedAt string `json:"createdAt"`
}

// MediaPatch carries a partial update for a media item. Only the display
// name is editable after upload.
type MediaPatch struct {
	Name *string `json:"name,omitempty"`
}
