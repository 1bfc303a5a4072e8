// Package jobrec scores a candidate's skill and experience profiles
// against the role catalog and produces ranked job recommendations,
// skill gap analyses and career roadmaps.
package jobrec

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-intel/internal/experience"
	"resume-intel/internal/knowledge"
	"resume-intel/internal/skills"
)

// ErrUnknownRole is returned when a target job id is not in the catalog.
var ErrUnknownRole = errors.New("unknown job role")

const (
	// Recommendations below this match score are not worth showing.
	matchThreshold = 0.2

	defaultTopN = 10
)

// Recommendation is one ranked job suggestion.
type Recommendation struct {
	JobID                 string          `json:"job_id"`
	Title                 string          `json:"title"`
	MatchScore            float64         `json:"match_score"`
	WhyFits               []string        `json:"why_fits"`
	SkillsBreakdown       SkillsBreakdown `json:"required_skills_vs_candidate"`
	MissingCriticalSkills []string        `json:"missing_critical_skills"`
	SkillMatchPercentage  float64         `json:"skill_match_percentage"`
	GrowthPotential       string          `json:"growth_potential"`
	DemandLevel           string          `json:"demand_level"`
}

// SkillsBreakdown contrasts a role's requirements with what the candidate has.
type SkillsBreakdown struct {
	Required []string `json:"required"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
}

type marketInfo struct {
	demand    string
	growth    string
	avgSalary string
}

var defaultMarket = marketInfo{demand: "medium", growth: "stable"}

var jobMarketData = map[string]marketInfo{
	"software_engineer":         {"high", "stable", "$100k-$150k"},
	"data_scientist":            {"very_high", "growing", "$120k-$160k"},
	"frontend_developer":        {"high", "stable", "$90k-$130k"},
	"backend_developer":         {"high", "stable", "$100k-$140k"},
	"full_stack_developer":      {"very_high", "growing", "$110k-$150k"},
	"devops_engineer":           {"high", "growing", "$120k-$160k"},
	"machine_learning_engineer": {"very_high", "growing", "$140k-$180k"},
	"product_manager":           {"high", "stable", "$120k-$170k"},
	"data_analyst":              {"high", "stable", "$70k-$100k"},
	"cloud_architect":           {"high", "growing", "$150k-$200k"},
	"project_manager":           {"very_high", "stable", "$90k-$140k"},
	"teacher":                   {"medium", "stable", "$45k-$75k"},
	"sales_representative":      {"high", "stable", "$50k-$80k"},
	"account_manager":           {"high", "stable", "$70k-$110k"},
	"retail_associate":          {"high", "stable", "$25k-$40k"},
	"customer_service_rep":      {"high", "stable", "$30k-$50k"},
	"nurse":                     {"very_high", "growing", "$70k-$120k"},
	"administrative_assistant":  {"medium", "stable", "$35k-$55k"},
	"accountant":                {"high", "stable", "$60k-$100k"},
	"hr_specialist":             {"high", "stable", "$55k-$90k"},
	"operations_manager":        {"high", "stable", "$80k-$130k"},
	"marketing_specialist":      {"high", "growing", "$55k-$95k"},
	"business_analyst":          {"high", "stable", "$75k-$115k"},
}

// criticalSkills are the must-have subset of each role's requirements.
var criticalSkills = map[string][]string{
	"software_engineer":         {"Python", "Java", "SQL", "Git"},
	"data_scientist":            {"Python", "Machine Learning", "SQL", "Statistics"},
	"frontend_developer":        {"JavaScript", "HTML", "CSS", "React"},
	"backend_developer":         {"Python", "Java", "SQL", "REST API"},
	"full_stack_developer":      {"JavaScript", "Python", "React", "Node.js"},
	"devops_engineer":           {"Docker", "Kubernetes", "CI/CD", "AWS"},
	"machine_learning_engineer": {"Python", "TensorFlow", "PyTorch", "Machine Learning"},
	"product_manager":           {"Communication", "Strategy", "Analytics"},
	"data_analyst":              {"Python", "SQL", "Excel", "Tableau"},
	"cloud_architect":           {"AWS", "Azure", "Docker", "Kubernetes"},
	"project_manager":           {"Project Planning", "Risk Management", "Stakeholder Management", "Agile"},
	"teacher":                   {"Curriculum Development", "Lesson Planning", "Classroom Management", "Teaching"},
	"sales_representative":      {"Sales", "Lead Generation", "Communication", "Negotiation"},
	"account_manager":           {"Account Management", "Client Relations", "Communication", "Negotiation"},
	"retail_associate":          {"Customer Service", "Retail", "Sales", "Point of Sale"},
	"customer_service_rep":      {"Customer Service", "Communication", "Problem Solving", "Interpersonal Skills"},
	"nurse":                     {"Patient Care", "Clinical Skills", "Medical Terminology", "Healthcare Documentation"},
	"administrative_assistant":  {"Microsoft Office", "Data Entry", "Calendar Management", "Communication"},
	"accountant":                {"Financial Analysis", "Bookkeeping", "Excel", "Financial Reporting"},
	"hr_specialist":             {"Recruiting", "Employee Relations", "Training and Development", "Communication"},
	"operations_manager":        {"Operations Management", "Process Improvement", "Team Leadership", "Logistics"},
	"marketing_specialist":      {"Digital Marketing", "Social Media Marketing", "Content Marketing", "Analytics"},
	"business_analyst":          {"Analytical Skills", "Data Analysis", "Requirements Gathering", "Communication"},
}

// relatedSkillMap rewards adjacent skills when a required one is missing.
var relatedSkillMap = map[string][]string{
	"python":           {"django", "flask", "fastapi", "pandas", "numpy"},
	"java":             {"spring", "kotlin", "scala"},
	"javascript":       {"typescript", "react", "vue", "node"},
	"sql":              {"postgresql", "mysql", "mongodb"},
	"aws":              {"azure", "gcp", "docker"},
	"machine learning": {"deep learning", "nlp", "tensorflow"},
	"react":            {"redux", "next.js", "gatsby"},
	"docker":           {"kubernetes", "terraform", "jenkins"},
}

type matchResult struct {
	score           float64
	matched         []string
	missing         []string
	criticalMatched int
	criticalMissing int
}

// Recommend ranks all catalog roles against the candidate and returns the
// top matches above the threshold. Ties break on job id so output order is
// stable across runs.
func Recommend(skillProfile *skills.Profile, expProfile *experience.Profile, topN int) []Recommendation {
	if topN <= 0 {
		topN = defaultTopN
	}

	candidate := lowerSet(skillProfile.AllSkills)

	var recs []Recommendation
	for _, jobID := range knowledge.RoleIDs() {
		role := knowledge.Roles[jobID]
		result := calculateMatch(role.RequiredSkills, criticalSkills[jobID], candidate)
		if result.score < matchThreshold {
			continue
		}
		recs = append(recs, buildRecommendation(jobID, role, result, expProfile))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

func calculateMatch(requiredSkills, criticalList []string, candidate map[string]struct{}) matchResult {
	required := lowerAll(requiredSkills)
	critical := lowerSet(criticalList)

	var matched, missing []string
	for _, skill := range required {
		if _, ok := candidate[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := 0.0
	if len(required) > 0 {
		score = float64(len(matched)) / float64(len(required))
	}

	criticalMatched := countIn(matched, critical)
	criticalMissing := countIn(missing, critical)
	if len(critical) > 0 {
		criticalScore := (float64(criticalMatched) - float64(criticalMissing)*0.5) / float64(len(critical))
		score = clamp1(score + criticalScore*0.3)
	}

	score = clamp1(score + relatedBoost(required, candidate)*0.2)

	return matchResult{
		score:           round2(score),
		matched:         matched,
		missing:         missing,
		criticalMatched: criticalMatched,
		criticalMissing: criticalMissing,
	}
}

func relatedBoost(required []string, candidate map[string]struct{}) float64 {
	boost := 0.0
	for _, req := range required {
		related, ok := relatedSkillMap[req]
		if !ok {
			continue
		}
		for _, r := range related {
			if _, has := candidate[r]; has {
				boost += 0.1
				break
			}
		}
	}
	if boost > 0.3 {
		boost = 0.3
	}
	return boost
}

func buildRecommendation(jobID string, role knowledge.Role, result matchResult, expProfile *experience.Profile) Recommendation {
	market, ok := jobMarketData[jobID]
	if !ok {
		market = defaultMarket
	}

	critical := lowerSet(criticalSkills[jobID])
	var missingCritical []string
	for _, skill := range result.missing {
		if _, ok := critical[skill]; ok {
			missingCritical = append(missingCritical, skill)
		}
	}

	return Recommendation{
		JobID:      jobID,
		Title:      role.Title,
		MatchScore: result.score,
		WhyFits:    whyFits(role, result, expProfile),
		SkillsBreakdown: SkillsBreakdown{
			Required: role.RequiredSkills,
			Matched:  result.matched,
			Missing:  result.missing,
		},
		MissingCriticalSkills: missingCritical,
		SkillMatchPercentage:  result.score * 100,
		GrowthPotential:       market.growth,
		DemandLevel:           market.demand,
	}
}

func whyFits(role knowledge.Role, result matchResult, expProfile *experience.Profile) []string {
	reasons := []string{
		fmt.Sprintf("Matches %.0f%% of required skills", result.score*100),
	}

	if len(expProfile.DomainExpertise) > 0 {
		reasons = append(reasons, fmt.Sprintf("Has %s domain experience", titleCase(expProfile.DomainExpertise[0])))
	}

	reasons = append(reasons, fmt.Sprintf("Experience level aligns with %s role", role.ExperienceLevel))

	if len(result.matched) >= 2 {
		top := result.matched
		if len(top) > 3 {
			top = top[:3]
		}
		reasons = append(reasons, "Key skills: "+strings.Join(top, ", "))
	}

	if len(reasons) > 4 {
		reasons = reasons[:4]
	}
	return reasons
}

func lowerAll(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = strings.ToLower(s)
	}
	return out
}

func lowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

func countIn(skills []string, set map[string]struct{}) int {
	n := 0
	for _, s := range skills {
		if _, ok := set[s]; ok {
			n++
		}
	}
	return n
}

func clamp1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
