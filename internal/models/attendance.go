package models

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceRecord is an append-only row in data/attendance.json.
type AttendanceRecord struct {
	ID          int    `json:"id"`
	StudentName string `json:"student_name"`
	ClassName   string `json:"class_name"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	RecordedAt  string `json:"recorded_at"`
}
