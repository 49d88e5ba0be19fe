package models

// ClassSchedule is one scheduled class in data/schedules.json.
type ClassSchedule struct {
	ID        int    `json:"id"`
	ClassName string `json:"class_name"`
	Room      string `json:"room"`
	Time      string `json:"time"`
	Day       string `json:"day"`
	Teacher   string `json:"teacher"`
	CreatedAt string `json:"created_at"`
}
