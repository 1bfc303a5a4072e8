// Package scoring grades resume quality across several dimensions and
// compares resumes against specific job descriptions.
package scoring

import (
	"math"
	"strings"

	"resume-intel/internal/knowledge"
	"resume-intel/internal/parser"
	"resume-intel/internal/skills"
)

// Score is the full quality report for one resume.
type Score struct {
	OverallScore    float64   `json:"overall_score"`
	Breakdown       Breakdown `json:"breakdown"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
	ImprovementTips []string  `json:"improvement_tips"`
	Grade           string    `json:"grade"`
}

// Breakdown holds the per-dimension sub-scores, each on a 0-100 scale.
type Breakdown struct {
	SkillRelevance       float64 `json:"skill_relevance"`
	ExperienceClarity    float64 `json:"experience_clarity"`
	KeywordOptimization  float64 `json:"keyword_optimization"`
	StructureReadability float64 `json:"structure_readability"`
	Completeness         float64 `json:"completeness"`
	ATSCompatibility     float64 `json:"ats_compatibility"`
}

type keywordCategory struct {
	name     string
	keywords []string
}

// atsKeywords are scanned over the raw text for keyword optimization.
var atsKeywords = []keywordCategory{
	{"technology", []string{
		"agile", "scrum", "ci/cd", "devops", "microservices", "api", "cloud",
		"python", "java", "javascript", "sql", "git", "docker", "kubernetes",
	}},
	{"general", []string{
		"leadership", "teamwork", "communication", "problem-solving", "analytical",
		"project management", "stakeholder", "strategy", "innovation",
	}},
	{"soft_skills", []string{
		"collaboration", "adaptability", "critical thinking", "time management",
		"attention to detail", "organization", "multitasking",
	}},
}

var atsActionVerbs = []string{
	"led", "managed", "developed", "created", "implemented",
	"designed", "analyzed", "improved", "increased",
}

const maxImprovementTips = 8

// ScoreResume grades a parsed resume. The skill profile may be nil, in
// which case skill relevance falls back to a neutral default. The ATS
// sub-score is reported in the breakdown but carries no weight in the
// overall score.
func ScoreResume(resume *parser.Resume, skillProfile *skills.Profile) *Score {
	skill := scoreSkillRelevance(skillProfile)
	exp := scoreExperienceClarity(resume)
	keyword := scoreKeywordOptimization(resume)
	structure := scoreStructure(resume)
	completeness := scoreCompleteness(resume)
	ats := scoreATSCompatibility(resume)

	overall := skill*knowledge.ScoringWeights["skill_relevance"] +
		exp*knowledge.ScoringWeights["experience_clarity"] +
		keyword*knowledge.ScoringWeights["keyword_optimization"] +
		structure*knowledge.ScoringWeights["structure_readability"] +
		completeness*knowledge.ScoringWeights["completeness"]

	strengths, weaknesses := strengthsAndWeaknesses(skill, exp, keyword, structure, completeness, ats)

	// The skill relevance formula can exceed 100 at its top end; the raw
	// value feeds the weighted overall, the reported sub-score is capped.
	return &Score{
		OverallScore: round2(overall),
		Breakdown: Breakdown{
			SkillRelevance:       round2(math.Min(100, skill)),
			ExperienceClarity:    round2(exp),
			KeywordOptimization:  round2(keyword),
			StructureReadability: round2(structure),
			Completeness:         round2(completeness),
			ATSCompatibility:     round2(ats),
		},
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		ImprovementTips: improvementTips(resume, skillProfile, skill, exp, keyword, structure, completeness, ats),
		Grade:           grade(overall),
	}
}

func grade(overall float64) string {
	switch {
	case overall >= 90:
		return "A+"
	case overall >= 80:
		return "A"
	case overall >= 70:
		return "B+"
	case overall >= 60:
		return "B"
	case overall >= 50:
		return "C+"
	case overall >= 40:
		return "C"
	default:
		return "D"
	}
}

func scoreSkillRelevance(skillProfile *skills.Profile) float64 {
	if skillProfile == nil {
		return 50
	}

	total := len(skillProfile.AllSkills)
	switch {
	case total < 5:
		return math.Min(40, float64(total)*8)
	case total > 20:
		return math.Min(95, 70+float64(total-20))
	default:
		return 70 + float64(total-5)*2.5
	}
}

func scoreExperienceClarity(resume *parser.Resume) float64 {
	experiences := resume.Experiences
	if len(experiences) == 0 {
		return 20
	}

	clearEntries := 0
	for _, exp := range experiences {
		if exp.Role != "" && exp.Company != "" {
			clearEntries++
		}
	}

	base := math.Min(40, float64(len(experiences))*10)
	clarityBonus := float64(clearEntries) / float64(len(experiences)) * 30

	return math.Min(100, base+clarityBonus)
}

func scoreKeywordOptimization(resume *parser.Resume) float64 {
	text := strings.ToLower(resume.RawText)

	total, found := 0, 0
	for _, category := range atsKeywords {
		for _, kw := range category.keywords {
			total++
			if strings.Contains(text, kw) {
				found++
			}
		}
	}
	if total == 0 {
		return 50
	}

	score := float64(found) / float64(total) * 100

	if len(resume.TechnicalSkills)+len(resume.SoftSkills) > 10 {
		score = math.Min(100, score+10)
	}

	return score
}

func scoreStructure(resume *parser.Resume) float64 {
	score := 50.0

	sections := 0
	if resume.Summary != "" {
		sections++
	}
	if len(resume.TechnicalSkills) > 0 || len(resume.SoftSkills) > 0 {
		sections++
	}
	if len(resume.Experiences) > 0 {
		sections++
	}
	if len(resume.Education) > 0 {
		sections++
	}
	score += float64(sections) * 10

	if resume.Email != "" {
		score += 5
	}
	if resume.Phone != "" {
		score += 5
	}
	if resume.LinkedIn != "" || resume.GitHub != "" {
		score += 5
	}
	if len(resume.Projects) > 0 {
		score += math.Min(10, float64(len(resume.Projects))*5)
	}

	return math.Min(100, score)
}

func scoreCompleteness(resume *parser.Resume) float64 {
	score := 0.0

	if resume.Summary != "" {
		score += 15
	}
	if len(resume.TechnicalSkills) > 0 || len(resume.SoftSkills) > 0 {
		score += 15
	}
	if len(resume.Experiences) > 0 {
		score += 20
	}
	if len(resume.Education) > 0 {
		score += 15
	}
	if len(resume.Certifications) > 0 {
		score += 10
	}
	if len(resume.Projects) > 0 {
		score += 10
	}
	if resume.LinkedIn != "" || resume.GitHub != "" || resume.Website != "" {
		score += 5
	}

	return math.Min(100, score)
}

func scoreATSCompatibility(resume *parser.Resume) float64 {
	score := 70.0
	text := strings.ToLower(resume.RawText)

	for _, header := range []string{"experience", "education", "skills", "summary"} {
		if strings.Contains(text, header) {
			score += 3
		}
	}

	if strings.Contains(resume.Email, "@") {
		score += 5
	}
	if resume.Phone != "" {
		score += 5
	}

	actionCount := 0
	for _, verb := range atsActionVerbs {
		if strings.Contains(text, verb) {
			actionCount++
		}
	}
	score += math.Min(10, float64(actionCount)*2)

	return math.Max(0, math.Min(100, score))
}

func strengthsAndWeaknesses(scores ...float64) (strengths, weaknesses []string) {
	names := []string{
		"Skill relevance", "Experience clarity", "Keyword optimization",
		"Structure readability", "Completeness", "ATS compatibility",
	}

	for i, name := range names {
		switch {
		case scores[i] >= 85:
			strengths = append(strengths, "Strong "+strings.ToLower(name))
		case scores[i] < 50:
			weaknesses = append(weaknesses, "Needs improvement in "+strings.ToLower(name))
		}
	}
	return strengths, weaknesses
}

func improvementTips(resume *parser.Resume, skillProfile *skills.Profile,
	skill, exp, keyword, structure, completeness, ats float64) []string {
	var tips []string

	if skill < 70 {
		tips = append(tips, "Add more relevant technical skills to your profile")
		if skillProfile != nil {
			if unknown := skillProfile.Categorized["unknown"]; len(unknown) > 0 {
				top := unknown
				if len(top) > 3 {
					top = top[:3]
				}
				tips = append(tips, "Consider validating your skills: "+strings.Join(top, ", "))
			}
		}
	}

	if exp < 70 {
		tips = append(tips,
			"Provide clearer descriptions of your work experience",
			"Include specific achievements with metrics where possible")
	}

	if keyword < 70 {
		tips = append(tips, "Research and include more industry-specific keywords")
		text := strings.ToLower(resume.RawText)
		for _, category := range atsKeywords {
			var absent []string
			for _, kw := range category.keywords {
				if !strings.Contains(text, kw) {
					absent = append(absent, kw)
				}
			}
			if len(absent) > 0 {
				if len(absent) > 3 {
					absent = absent[:3]
				}
				tips = append(tips, "Consider adding: "+strings.Join(absent, ", "))
			}
		}
	}

	if structure < 70 {
		tips = append(tips,
			"Ensure all sections have clear headings",
			"Include your LinkedIn and GitHub profiles")
	}

	if completeness < 70 {
		if resume.Summary == "" {
			tips = append(tips, "Add a professional summary at the top of your resume")
		}
		if len(resume.Projects) == 0 {
			tips = append(tips, "Add relevant personal or professional projects")
		}
		if len(resume.Certifications) == 0 {
			tips = append(tips, "Consider adding relevant certifications")
		}
	}

	if ats < 70 {
		tips = append(tips,
			"Avoid complex formatting, tables, or graphics",
			"Use standard section headings (Experience, Education, Skills)",
			"Include a clean, standard email format")
	}

	if len(tips) < 2 {
		tips = append(tips,
			"Quantify achievements with specific metrics and numbers",
			"Use action verbs at the start of bullet points")
	}

	if len(tips) > maxImprovementTips {
		tips = tips[:maxImprovementTips]
	}
	return tips
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
