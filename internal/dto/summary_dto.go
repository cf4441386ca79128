package dto

// StudentSummaryResponse is the aggregated snapshot returned by the summary
// endpoint. The five parts are read independently and are not guaranteed to
// observe the same database state.
type StudentSummaryResponse struct {
	Profile       StudentResponse        `json:"profile"`
	Marks         []MarkResponse         `json:"marks"`
	Attendance    []AttendanceResponse   `json:"attendance"`
	Behavior      []BehaviorResponse     `json:"behavior"`
	Notifications []NotificationResponse `json:"notifications"`
}
