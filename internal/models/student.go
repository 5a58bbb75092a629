package models

// StudentData holds per-student attendance counters. Updates replace the
// whole row; there is no increment operation.
type StudentData struct {
	Username     string `db:"username" json:"username"`
	TotalDays    int    `db:"attendance_total_days" json:"totalDays"`
	AttendedDays int    `db:"attendance_attended_days" json:"attendedDays"`
}

// Attendance is the wire shape of the attendance read endpoint.
type Attendance struct {
	TotalDays    int `json:"totalDays"`
	AttendedDays int `json:"attendedDays"`
}
