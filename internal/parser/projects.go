package parser

import (
	"regexp"
	"strings"
)

var projectTechRes = func() []*regexp.Regexp {
	words := []string{
		"python", "java", "javascript", "react", "node", "django", "flask",
		"aws", "docker", "kubernetes", "sql", "mongodb",
	}
	res := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		res = append(res, regexp.MustCompile(`(?i)\b`+w+`\b`))
	}
	return res
}()

// ExtractProjects treats each non-bullet line of the projects section as a
// project name and folds the bullet lines below it into the description,
// picking out well-known technology names along the way.
func ExtractProjects(text string) []Project {
	lines := sectionLines(text, projectHeaders, afterProjects, sectionHeaderMaxLen)

	var (
		entries   []Project
		current   Project
		descParts []string
	)

	flush := func() {
		if current.Name != "" {
			current.Description = joinDescription(descParts)
			entries = append(entries, current)
		}
		current = Project{}
		descParts = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if !isBulletLine(line) {
			flush()
			current.Name = line
			continue
		}

		body := strings.TrimSpace(strings.TrimLeft(line, "-*• "))
		descParts = append(descParts, body)
		for _, re := range projectTechRes {
			if tech := re.FindString(body); tech != "" {
				current.Technologies = appendUniqueTech(current.Technologies, titleWords(tech))
			}
		}
	}

	flush()
	return entries
}

func appendUniqueTech(techs []string, tech string) []string {
	for _, t := range techs {
		if t == tech {
			return techs
		}
	}
	return append(techs, tech)
}
