package models

// Mark is one subject score for one student. At most one row exists per
// (student_username, subject) pair, enforced by a unique index.
type Mark struct {
	ID              int    `db:"id" json:"id"`
	StudentUsername string `db:"student_username" json:"student_username"`
	Subject         string `db:"subject" json:"subject"`
	Marks           int    `db:"marks" json:"marks"`
}
