package models

// Assignment is an append-only row in data/assignments.json. Link points at an
// external location (Google Drive or similar), the file itself is not stored.
type Assignment struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Link        string `json:"link"`
	CreatedAt   string `json:"created_at"`
}
