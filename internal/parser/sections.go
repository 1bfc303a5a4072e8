package parser

import (
	"regexp"
	"strings"
)

// Header keyword sets per section. A line opens a section when it contains
// one of these keywords, carries no colon and stays under the length
// threshold; the guard keeps inline mentions like "Skills: Python" from
// being read as headers.
var (
	experienceHeaders = []string{"experience", "employment", "work history", "professional experience"}
	educationHeaders  = []string{"education", "academic", "qualifications"}
	certHeaders       = []string{"certifications", "certificates", "licenses"}
	projectHeaders    = []string{"projects", "portfolio", "personal projects"}

	afterExperience = []string{"education", "skills", "certifications", "projects", "awards", "publications"}
	afterEducation  = []string{"experience", "skills", "certifications", "projects", "awards"}
	afterCerts      = []string{"experience", "education", "skills", "projects"}
	afterProjects   = []string{"experience", "education", "skills", "certifications"}
)

const (
	experienceHeaderMaxLen = 30
	sectionHeaderMaxLen    = 25
)

// sectionLines returns the lines belonging to the first section opened by
// one of headers. The section stays open until a line opens a different
// section (one of closers) under the same header constraints, or input
// ends. A missing section yields nil, not an error.
func sectionLines(text string, headers, closers []string, maxHeaderLen int) []string {
	var body []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if isHeaderLine(line, lower, headers, maxHeaderLen) {
			inSection = true
			body = nil
			continue
		}

		if inSection {
			if isHeaderLine(line, lower, closers, maxHeaderLen) {
				break
			}
			body = append(body, line)
		}
	}

	return body
}

func isHeaderLine(line, lower string, keywords []string, maxLen int) bool {
	if strings.Contains(line, ":") || len(line) >= maxLen {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var nameSkipWords = map[string]struct{}{
	"summary": {}, "experience": {}, "education": {}, "skills": {},
	"certifications": {}, "projects": {}, "contact": {}, "resume": {},
	"curriculum": {},
}

// ExtractName finds the candidate name near the top of the document: an
// early line of two to four title-cased words that is not contact info or
// a section header.
func ExtractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if strings.Contains(line, "@") || strings.Contains(strings.ToLower(line), "email") {
			continue
		}
		if strings.ContainsAny(line, "0123456789") {
			continue
		}
		if _, skip := nameSkipWords[strings.ToLower(line)]; skip {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		allTitle := true
		for _, w := range words {
			if w != "" && (w[0] < 'A' || w[0] > 'Z') {
				allTitle = false
				break
			}
		}
		if allTitle {
			return line
		}
	}

	return lines[0]
}

var (
	summaryHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)professional\s*summary[:\s]*`),
		regexp.MustCompile(`(?i)summary[:\s]*`),
		regexp.MustCompile(`(?i)profile[:\s]*`),
	}
	summaryStopRe = regexp.MustCompile(`(?i)\n(?:experience|education|skills|certifications|projects)`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// ExtractSummary returns the professional summary paragraph, collapsed to a
// single line and capped at 500 characters.
func ExtractSummary(text string) string {
	for _, headerRe := range summaryHeaderRes {
		loc := headerRe.FindStringIndex(text)
		if loc == nil {
			continue
		}
		rest := text[loc[1]:]
		if stop := summaryStopRe.FindStringIndex(rest); stop != nil {
			rest = rest[:stop[0]]
		}
		summary := whitespaceRe.ReplaceAllString(strings.TrimSpace(rest), " ")
		if summary == "" {
			continue
		}
		if len(summary) > 500 {
			summary = summary[:500]
		}
		return summary
	}
	return ""
}
