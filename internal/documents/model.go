package documents

import "time"

// Document represents an uploaded resume file.
type Document struct {
	ID               string
	FileName         string
	MimeType         string
	SizeBytes        int64
	StorageKey       string
	ContentHash      string
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
}
