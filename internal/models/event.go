package models

// CalendarEvent is an append-only row in data/events.json.
type CalendarEvent struct {
	ID          int    `json:"id"`
	EventName   string `json:"event_name"`
	EventDate   string `json:"event_date"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}
