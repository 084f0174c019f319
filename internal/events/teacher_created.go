package events

import "time"

const TeacherCreatedTopic = "hazri.teacher.created"

type TeacherCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	TeacherID  string    `json:"teacher_id"`
	Name       string    `json:"name"`
	GrNumber   string    `json:"gr_number"`
	OccurredAt time.Time `json:"occurred_at"`
}
