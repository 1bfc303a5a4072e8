package scoring

import (
	"regexp"
	"strings"

	"resume-intel/internal/parser"
)

// JobMatch is the result of comparing a resume against a job description.
type JobMatch struct {
	MatchPercentage     float64  `json:"match_percentage"`
	RequirementsFound   []string `json:"requirements_found"`
	RequirementsMissing []string `json:"requirements_missing"`
	Recommendation      string   `json:"recommendation"`
}

var requirementRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:required|must have|experience with)\s+([a-z+#]+(?:\s+[a-z+#]+){0,3})`),
	regexp.MustCompile(`(?:proficient|familiar)\s+in\s+([a-z]+(?:\s+[a-z]+){0,3})`),
}

const maxRequirements = 10

// CompareWithJob extracts requirement phrases from a job description and
// checks which of them the resume covers. Only the first ten requirements
// are checked; the percentage is still taken over everything found.
func CompareWithJob(resume *parser.Resume, jobDescription string) *JobMatch {
	jobText := strings.ToLower(jobDescription)

	var requirements []string
	for _, re := range requirementRes {
		for _, m := range re.FindAllStringSubmatch(jobText, -1) {
			requirements = append(requirements, m[1])
		}
	}

	resumeText := strings.ToLower(resume.RawText)

	checked := requirements
	if len(checked) > maxRequirements {
		checked = checked[:maxRequirements]
	}

	var found, missing []string
	for _, req := range checked {
		if anyWordIn(req, resumeText) {
			found = append(found, req)
		} else {
			missing = append(missing, req)
		}
	}

	pct := 0.0
	if len(requirements) > 0 {
		pct = round2(float64(len(found)) / float64(len(requirements)) * 100)
	}

	return &JobMatch{
		MatchPercentage:     pct,
		RequirementsFound:   found,
		RequirementsMissing: missing,
		Recommendation:      matchRecommendation(pct),
	}
}

func anyWordIn(requirement, text string) bool {
	for _, word := range strings.Fields(requirement) {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func matchRecommendation(pct float64) string {
	switch {
	case pct >= 80:
		return "Strong match! Apply with confidence."
	case pct >= 60:
		return "Good match. Consider addressing missing requirements."
	case pct >= 40:
		return "Partial match. Significant skill gaps to address."
	default:
		return "Low match. Consider applying to similar roles first."
	}
}

var (
	seniorJobKeywords = []string{"senior", "sr", "5+ years", "7+ years"}
	juniorJobKeywords = []string{"junior", "jr", "entry", "0-2 years", "recent graduate"}
)

// CareerLevelMatch judges whether a candidate's career level fits the
// seniority signals in a job description.
func CareerLevelMatch(candidateLevel, jobDescription string) string {
	jobLower := strings.ToLower(jobDescription)

	for _, kw := range seniorJobKeywords {
		if strings.Contains(jobLower, kw) {
			switch candidateLevel {
			case "senior", "lead", "architect":
				return "Good match"
			case "mid-level":
				return "Possible match with experience"
			default:
				return "May lack required experience"
			}
		}
	}

	for _, kw := range juniorJobKeywords {
		if strings.Contains(jobLower, kw) {
			if candidateLevel == "fresher" || candidateLevel == "junior" {
				return "Good match"
			}
			return "May be overqualified"
		}
	}

	return "Likely match"
}
