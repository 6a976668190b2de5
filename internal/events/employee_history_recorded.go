package events

import "time"

const EmployeeHistoryTopic = "hr.employee.history.v1"

// EmployeeHistoryRecordedEvent is emitted through the outbox whenever a
// history period is opened (creation or material change).
type EmployeeHistoryRecordedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	HistoryID     string    `json:"history_id"`
	ChangeType    string    `json:"change_type"`
	EffectiveFrom string    `json:"effective_from"`
	ChangedBy     string    `json:"changed_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
