package domain

import "time"

// Context carries the per-file invariants handed to every row.
type Context struct {
	// ManualCode is the project code supplied by the operator when the file
	// carries no usable project column.
	ManualCode string

	// CutoffDate, when set (YYYY-MM-DD), excludes rows whose reference
	// month/year falls strictly before it.
	CutoffDate string

	// FileName is stamped into every canonical row for traceability.
	FileName string

	// TargetProject restricts output to rows resolving to this code. Used
	// when one physical file holds multiple projects.
	TargetProject ProjectCode

	// AnalysisMode relaxes recognition so row counts per project can be
	// estimated before the operator commits to a manual code.
	AnalysisMode bool

	// Now is the reference instant for days-late computation. Injected so a
	// run is reproducible.
	Now time.Time
}

// RejectReason explains why a row was excluded from output.
type RejectReason string

const (
	RejectCancelled         RejectReason = "cancelled"
	RejectOldDate           RejectReason = "old_date"
	RejectMissingIdentity   RejectReason = "missing_identity"
	RejectInvalidStatus     RejectReason = "invalid_status"
	RejectMissingIssueDate  RejectReason = "missing_issue_date"
	RejectUnresolvedProject RejectReason = "unresolved_project"
	RejectProjectMismatch   RejectReason = "project_mismatch"
)

// Rejection is the non-error outcome of a classifier declining a row.
type Rejection struct {
	Reason RejectReason
}

// Reject is a convenience constructor for a Rejection.
func Reject(reason RejectReason) *Rejection {
	return &Rejection{Reason: reason}
}

// ProcessingStats counts row outcomes for one file-processing invocation.
type ProcessingStats struct {
	Total            int `json:"total"`
	Processed        int `json:"processed"`
	SkippedOld       int `json:"skippedOld"`
	SkippedCancelled int `json:"skippedCancelled"`
	SkippedEmpty     int `json:"skippedEmpty"`
	SkippedStatus    int `json:"skippedStatus"`
}

// Count increments the bucket matching a rejection reason.
func (s *ProcessingStats) Count(reason RejectReason) {
	switch reason {
	case RejectCancelled:
		s.SkippedCancelled++
	case RejectOldDate:
		s.SkippedOld++
	case RejectInvalidStatus:
		s.SkippedStatus++
	default:
		// Validation failures (identity floor, issue date, unresolved or
		// mismatched project) count as empty/garbage rows.
		s.SkippedEmpty++
	}
}

// Merge folds another file's stats into this one.
func (s *ProcessingStats) Merge(other ProcessingStats) {
	s.Total += other.Total
	s.Processed += other.Processed
	s.SkippedOld += other.SkippedOld
	s.SkippedCancelled += other.SkippedCancelled
	s.SkippedEmpty += other.SkippedEmpty
	s.SkippedStatus += other.SkippedStatus
}
