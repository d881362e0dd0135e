package todo

// Item is a single tracked todo entry. CreatedAt is epoch milliseconds;
// zero means unknown (seed items carry no timestamp).
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}
