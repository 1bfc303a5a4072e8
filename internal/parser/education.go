package parser

import (
	"regexp"
	"strings"
)

var (
	degreeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(bachelor|master|ph\.?d|mba|b\.?s|m\.?s|b\.?a|m\.?a)\b`),
		regexp.MustCompile(`(?i)\b(associate|diploma|certificate)\b`),
	}
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ExtractEducation pulls degree entries from the education section. A line
// counts when it mentions a recognized degree keyword; the institution is
// whatever remains of the line once the degree is removed.
func ExtractEducation(text string) []Education {
	lines := sectionLines(text, educationHeaders, afterEducation, sectionHeaderMaxLen)

	var entries []Education
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		for _, re := range degreeRes {
			m := re.FindStringSubmatchIndex(line)
			if m == nil {
				continue
			}

			degree := titleWords(line[m[2]:m[3]])
			institution := strings.Trim(line[:m[2]]+line[m[3]:], " ,-\t")

			edu := Education{
				Degree:      degree,
				Institution: institution,
				Details:     line,
			}
			if year := yearRe.FindString(line); year != "" {
				edu.Year = year
			}
			entries = append(entries, edu)
			break
		}
	}

	return entries
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
