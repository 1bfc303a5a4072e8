package analyses

import "time"

// Analysis is a stored resume analysis run.
type Analysis struct {
	ID           string
	DocumentID   string
	SourceFormat string
	OverallScore float64
	Grade        string
	CareerLevel  string
	Report       *Report
	CreatedAt    time.Time
}
