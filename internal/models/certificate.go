package models

// CertificateStatus is the review state of an uploaded certificate. Any value
// is reachable from any other; there is no enforced ordering.
type CertificateStatus string

const (
	CertificatePending  CertificateStatus = "pending"
	CertificateApproved CertificateStatus = "approved"
	CertificateRejected CertificateStatus = "rejected"
)

// ValidCertificateStatus reports whether s is one of the three known states.
// The value must match exactly; no case folding.
func ValidCertificateStatus(s string) bool {
	switch CertificateStatus(s) {
	case CertificatePending, CertificateApproved, CertificateRejected:
		return true
	}
	return false
}

// Certificate is a non-academic upload awaiting faculty review. UploadedAt is
// an ISO-8601 UTC timestamp string, matching the legacy storage format.
type Certificate struct {
	ID              int     `db:"id" json:"id"`
	StudentUsername string  `db:"student_username" json:"student_username"`
	FilePath        string  `db:"file_path" json:"file_path"`
	Status          string  `db:"status" json:"status"`
	Remarks         *string `db:"remarks" json:"remarks"`
	UploadedAt      string  `db:"uploaded_at" json:"uploaded_at"`
}

// StudentCertificate is the listing row returned to students; they already
// know their own username so it is omitted.
type StudentCertificate struct {
	ID         int     `db:"id" json:"id"`
	FilePath   string  `db:"file_path" json:"file_path"`
	Status     string  `db:"status" json:"status"`
	Remarks    *string `db:"remarks" json:"remarks"`
	UploadedAt string  `db:"uploaded_at" json:"uploaded_at"`
}
