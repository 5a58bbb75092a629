package models

// Assignment is immutable once created; there are no update or delete
// endpoints.
type Assignment struct {
	ID      int    `db:"id" json:"id"`
	Name    string `db:"assignment_name" json:"name"`
	Details string `db:"details" json:"details"`
}
