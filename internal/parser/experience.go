package parser

import (
	"regexp"
	"strings"
)

const maxDescriptionLen = 500

var (
	monthToken = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

	// "Software Engineer - Jan 2022 - Present" on a single line.
	inlineRoleDateRe = regexp.MustCompile(`(?i)^(.+?)\s*[-–—]\s*(` + monthToken + `\s*\d{4}|\d{4})\s*(?:[-–—]|to)+\s*(present|current|\d{4}|` + monthToken + `\s*\d{4})\s*$`)

	// Date lines such as "Jan 2022 - Mar 2024" or "2019 - 2021".
	dateLineRe1 = regexp.MustCompile(`(?i)^(` + monthToken + `\s*\d{4}|\d{4})\s*(?:[-–—]|to)+\s*(present|current|\d{4}|` + monthToken + `\s*\d{4})\s*$`)
	dateLineRe2 = regexp.MustCompile(`(?i)^(\d{4})\s*(?:[-–—]|to)+\s*(\d{4}|present|current)\s*$`)

	// "Software Engineer - Tech Corp".
	roleCompanyRe = regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+)$`)
)

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•")
}

func isDateLine(line string) bool {
	return dateLineRe1.MatchString(line) || dateLineRe2.MatchString(line)
}

// ExtractExperiences walks the experience section once, accumulating one
// entry at a time. A role-company line is held as pending until a date line
// confirms it; an inline role-with-dates line completes an entry on its own.
func ExtractExperiences(text string) []Experience {
	lines := sectionLines(text, experienceHeaders, afterExperience, experienceHeaderMaxLen)

	var (
		entries []Experience
		current Experience
		pending struct {
			role    string
			company string
			set     bool
		}
		descParts []string
	)

	flush := func() {
		if current.Role != "" {
			current.Description = joinDescription(descParts)
			entries = append(entries, current)
		}
		current = Experience{}
		descParts = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := inlineRoleDateRe.FindStringSubmatch(line); m != nil {
			if current.Role != "" && current.Duration != "" {
				flush()
			}
			current.Role = strings.TrimSpace(m[1])
			current.Duration = line
			pending.set = false
			continue
		}

		if isDateLine(line) {
			current.Duration = line
			if pending.set {
				current.Role = pending.role
				current.Company = pending.company
				pending.set = false
			}
			continue
		}

		if m := roleCompanyRe.FindStringSubmatch(line); m != nil && !isBulletLine(line) {
			if current.Role != "" && current.Duration != "" {
				flush()
			}
			pending.role = strings.TrimSpace(m[1])
			pending.company = strings.TrimSpace(m[2])
			pending.set = true
			continue
		}

		if isBulletLine(line) {
			descParts = append(descParts, strings.TrimSpace(strings.TrimLeft(line, "-*• ")))
			continue
		}

		if current.Role != "" && current.Duration != "" {
			descParts = append(descParts, line)
		} else if current.Role == "" {
			current.Role = line
		}
	}

	flush()
	return entries
}

func joinDescription(parts []string) string {
	desc := strings.Join(parts, " ")
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen]
	}
	return desc
}
