// Package parser turns free-form resume text into structured records:
// contact details, summary, skills, and the experience, education,
// certification and project sections. Extraction is deterministic; the
// same input always yields the same Resume.
package parser

import (
	"sort"
	"strings"

	"resume-intel/internal/knowledge"
)

// scannedPlaceholder is reported when a document yields no extractable
// text, typically an image-only PDF.
const scannedPlaceholder = "Note: This PDF appears to be image-based or scanned. " +
	"Text extraction was not possible. Please try uploading a text-based PDF " +
	"or copy-paste your resume content using the Quick Analysis feature."

// Parse extracts a full Resume from raw text. Empty or whitespace-only
// input returns a minimal Resume carrying a placeholder summary instead of
// an error, so callers can still render a report for unreadable uploads.
func Parse(text string, format SourceFormat) *Resume {
	if strings.TrimSpace(text) == "" {
		return &Resume{
			Summary:      scannedPlaceholder,
			SourceFormat: format,
		}
	}

	// Links are pulled from the raw input: cleaning strips URL slashes.
	links := ExtractLinks(text)
	cleaned := CleanText(text)

	return &Resume{
		FullName:        ExtractName(cleaned),
		Email:           ExtractEmail(cleaned),
		Phone:           ExtractPhone(cleaned),
		LinkedIn:        links.LinkedIn,
		GitHub:          links.GitHub,
		Website:         links.Website,
		Summary:         ExtractSummary(cleaned),
		TechnicalSkills: scanSkills(cleaned),
		Experiences:     ExtractExperiences(cleaned),
		Education:       ExtractEducation(cleaned),
		Certifications:  ExtractCertifications(cleaned),
		Projects:        ExtractProjects(cleaned),
		SourceFormat:    format,
		RawText:         cleaned,
	}
}

// scanSkills matches every known taxonomy skill against the whole document
// and returns the canonical names, deduplicated and sorted.
func scanSkills(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	var found []string
	for _, category := range knowledge.Categories {
		for _, skill := range category.Skills {
			if _, dup := seen[skill]; dup {
				continue
			}
			if strings.Contains(lower, strings.ToLower(skill)) {
				seen[skill] = struct{}{}
				found = append(found, skill)
			}
		}
	}

	sort.Strings(found)
	return found
}
