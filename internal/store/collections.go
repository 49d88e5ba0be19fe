package store

import (
	"sort"

	"github.com/shishant-cloud/ClassSchedule/internal/models"
)

func (s *Store) AddClass(className, room, time, day, teacher string) (models.ClassSchedule, error) {
	return Append(s, Schedules, func(id int) models.ClassSchedule {
		return models.ClassSchedule{
			ID:        id,
			ClassName: className,
			Room:      room,
			Time:      time,
			Day:       day,
			Teacher:   teacher,
			CreatedAt: Now(),
		}
	})
}

func (s *Store) Classes() []models.ClassSchedule {
	return ReadAll[models.ClassSchedule](s, Schedules)
}

func (s *Store) MarkAttendance(studentName, className, date, status string) (models.AttendanceRecord, error) {
	return Append(s, Attendance, func(id int) models.AttendanceRecord {
		return models.AttendanceRecord{
			ID:          id,
			StudentName: studentName,
			ClassName:   className,
			Date:        date,
			Status:      status,
			RecordedAt:  Now(),
		}
	})
}

func (s *Store) AttendanceRecords() []models.AttendanceRecord {
	return ReadAll[models.AttendanceRecord](s, Attendance)
}

func (s *Store) AddAssignment(title, description, dueDate, link string) (models.Assignment, error) {
	return Append(s, Assignments, func(id int) models.Assignment {
		return models.Assignment{
			ID:          id,
			Title:       title,
			Description: description,
			DueDate:     dueDate,
			Link:        link,
			CreatedAt:   Now(),
		}
	})
}

func (s *Store) AllAssignments() []models.Assignment {
	return ReadAll[models.Assignment](s, Assignments)
}

func (s *Store) AddEvent(eventName, eventDate, description string) (models.CalendarEvent, error) {
	return Append(s, Events, func(id int) models.CalendarEvent {
		return models.CalendarEvent{
			ID:          id,
			EventName:   eventName,
			EventDate:   eventDate,
			Description: description,
			CreatedAt:   Now(),
		}
	})
}

// AllEvents returns calendar events newest-first. Event dates come from date
// inputs (YYYY-MM-DD), so the string sort matches chronological order.
func (s *Store) AllEvents() []models.CalendarEvent {
	events := ReadAll[models.CalendarEvent](s, Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventDate > events[j].EventDate
	})
	return events
}
