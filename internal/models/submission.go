package models

// Submission links an uploaded file to an assignment. A student may submit
// the same assignment more than once; no uniqueness is enforced. Remarks stay
// null until faculty sets them.
type Submission struct {
	ID              int     `db:"id" json:"id"`
	AssignmentID    int     `db:"assignment_id" json:"assignment_id"`
	StudentUsername string  `db:"student_username" json:"student_username"`
	FilePath        string  `db:"file_path" json:"file_path"`
	Remarks         *string `db:"remarks" json:"remarks"`
}

// SubmissionDetail is the submissions listing row, joined with the
// assignment name.
type SubmissionDetail struct {
	ID              int     `db:"id" json:"id"`
	AssignmentName  string  `db:"assignment_name" json:"assignment_name"`
	StudentUsername string  `db:"student_username" json:"student_username"`
	FilePath        string  `db:"file_path" json:"file_path"`
	Remarks         *string `db:"remarks" json:"remarks"`
}
