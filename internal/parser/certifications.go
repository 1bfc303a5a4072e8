package parser

import "strings"

// ExtractCertifications reads one certification per non-empty line of the
// certifications section. Bullet lines are detail text, not certification
// names, and are skipped. Parenthesized issuer notes are cut from the name.
func ExtractCertifications(text string) []Certification {
	lines := sectionLines(text, certHeaders, afterCerts, sectionHeaderMaxLen)

	var entries []Certification
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
			continue
		}

		name := line
		if idx := strings.Index(name, "("); idx >= 0 {
			name = name[:idx]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		entries = append(entries, Certification{Name: name})
	}

	return entries
}
