// Package experience derives a career profile from parsed work history:
// total tenure, level, domains, leadership signals and role progression.
package experience

import (
	"fmt"
	"strings"

	"resume-intel/internal/knowledge"
	"resume-intel/internal/parser"
)

// Profile captures everything the analyzer can infer about a career.
type Profile struct {
	TotalYears         float64           `json:"total_years_experience"`
	CareerLevel        string            `json:"career_level"`
	DomainExpertise    []string          `json:"domain_expertise"`
	RoleSpecialization string            `json:"role_specialization"`
	IndustryHistory    []string          `json:"industry_history"`
	CompanyTypes       []string          `json:"company_types"`
	Leadership         bool              `json:"leadership_experience"`
	ProjectComplexity  string            `json:"project_complexity"`
	CareerProgression  []ProgressionStep `json:"career_progression"`
}

// ProgressionStep is one role in the candidate's history, in resume order.
type ProgressionStep struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Level    string `json:"level"`
	Sequence int    `json:"sequence"`
}

type keywordGroup struct {
	name     string
	keywords []string
}

// Groups are matched in declared order so repeated runs produce identical
// slices.
var domainKeywords = []keywordGroup{
	{"technology", []string{"software", "web", "mobile", "cloud", "devops", "ai", "ml", "data", "software development"}},
	{"finance", []string{"banking", "fintech", "trading", "investment", "financial", "accounting"}},
	{"healthcare", []string{"health", "medical", "pharma", "clinical", "patient", "ehr", "hipaa"}},
	{"ecommerce", []string{"e-commerce", "retail", "online", "marketplace", "shopping"}},
	{"marketing", []string{"marketing", "digital", "seo", "content", "advertising", "brand"}},
	{"education", []string{"education", "e-learning", "courses", "training", "academic"}},
	{"consulting", []string{"consulting", "advisory", "strategy", "management"}},
	{"government", []string{"government", "public", "federal", "state", "policy"}},
	{"manufacturing", []string{"manufacturing", "production", "supply chain", "logistics"}},
	{"telecom", []string{"telecom", "networking", "wireless", "5g", "isp"}},
}

var roleKeywords = []keywordGroup{
	{"developer", []string{"developer", "engineer", "programmer", "coder"}},
	{"designer", []string{"designer", "ui", "ux", "creative"}},
	{"analyst", []string{"analyst", "analytics", "insights"}},
	{"manager", []string{"manager", "lead", "head", "director", "vp"}},
	{"architect", []string{"architect", "principal", "staff"}},
	{"consultant", []string{"consultant", "advisor"}},
	{"researcher", []string{"researcher", "scientist", "research"}},
	{"administrator", []string{"administrator", "admin", "operations"}},
}

var companyKeywords = []keywordGroup{
	{"startup", []string{"startup", "seed", "series", "ycombinator"}},
	{"enterprise", []string{"enterprise", "fortune", "fortune 500", "multinational"}},
	{"mid_size", []string{"mid-size", "mid-market", "growing"}},
	{"agency", []string{"agency", "consulting firm"}},
	{"non_profit", []string{"non-profit", "nonprofit", "foundation", "ngo"}},
	{"government", []string{"government", "federal", "state", "city"}},
	{"academic", []string{"university", "college", "research institution"}},
}

var leadershipKeywords = []string{
	"led", "managed", "mentored", "directed", "headed", "oversaw",
	"supervised", "coordinated", "spearheaded", "championed", "built team",
}

var (
	seniorKeywords = []string{"senior", "sr", "lead", "principal", "staff", "head", "director", "vp", "chief"}
	juniorKeywords = []string{"junior", "jr", "associate", "entry", "intern", "trainee"}
)

var complexTechs = []string{
	"microservices", "distributed", "scalable", "enterprise",
	"high-traffic", "real-time", "machine learning", "ai",
}

// Analyze builds a career Profile from a parsed resume.
func Analyze(resume *parser.Resume) *Profile {
	profile := &Profile{
		TotalYears: TotalYears(resume.Experiences),
	}

	profile.CareerLevel = levelFromYears(profile.TotalYears)
	if roleLevel := levelFromRoles(resume.Experiences); roleLevel != "mid" {
		profile.CareerLevel = roleLevel
	}

	profile.DomainExpertise = matchGroups(domainKeywords, fullText(resume))
	profile.RoleSpecialization = identifyRole(resume)
	profile.IndustryHistory = matchGroups(domainKeywords, fullText(resume))
	profile.CompanyTypes = identifyCompanyTypes(resume.Experiences)
	profile.Leadership = hasLeadership(resume.Experiences)
	profile.ProjectComplexity = assessComplexity(resume.Experiences)
	profile.CareerProgression = progression(resume.Experiences)

	return profile
}

func levelFromYears(years float64) string {
	switch {
	case years < float64(knowledge.ExperienceThresholds["junior"]):
		return "fresher"
	case years < float64(knowledge.ExperienceThresholds["mid"]):
		return "junior"
	case years < float64(knowledge.ExperienceThresholds["senior"]):
		return "mid-level"
	case years < float64(knowledge.ExperienceThresholds["lead"]):
		return "senior"
	case years < float64(knowledge.ExperienceThresholds["architect"]):
		return "lead"
	default:
		return "architect"
	}
}

func levelFromRoles(experiences []parser.Experience) string {
	if len(experiences) == 0 {
		return "fresher"
	}

	var hasSenior, hasJunior bool
	for _, exp := range experiences {
		role := strings.ToLower(exp.Role)
		for _, kw := range seniorKeywords {
			if strings.Contains(role, kw) {
				hasSenior = true
			}
		}
		for _, kw := range juniorKeywords {
			if strings.Contains(role, kw) {
				hasJunior = true
			}
		}
	}

	switch {
	case hasSenior && !hasJunior:
		return "senior"
	case hasJunior && !hasSenior:
		return "junior"
	default:
		return "mid"
	}
}

func matchGroups(groups []keywordGroup, text string) []string {
	lower := strings.ToLower(text)

	var matched []string
	for _, group := range groups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, group.name)
				break
			}
		}
	}
	return matched
}

func identifyRole(resume *parser.Resume) string {
	for _, exp := range resume.Experiences {
		expText := strings.ToLower(exp.Role + " " + exp.Company + " " + exp.Description)
		for _, group := range roleKeywords {
			for _, kw := range group.keywords {
				if strings.Contains(expText, kw) {
					return group.name
				}
			}
		}
	}

	if resume.Summary != "" {
		summary := strings.ToLower(resume.Summary)
		for _, group := range roleKeywords {
			for _, kw := range group.keywords {
				if strings.Contains(summary, kw) {
					return group.name
				}
			}
		}
	}

	return "general"
}

func identifyCompanyTypes(experiences []parser.Experience) []string {
	seen := make(map[string]struct{})
	var types []string

	for _, exp := range experiences {
		companyText := strings.ToLower(exp.Company + " " + exp.Description)
		for _, group := range companyKeywords {
			if _, dup := seen[group.name]; dup {
				continue
			}
			for _, kw := range group.keywords {
				if strings.Contains(companyText, kw) {
					seen[group.name] = struct{}{}
					types = append(types, group.name)
					break
				}
			}
		}
	}

	return types
}

func hasLeadership(experiences []parser.Experience) bool {
	for _, exp := range experiences {
		expText := strings.ToLower(exp.Role + " " + exp.Description)
		for _, kw := range leadershipKeywords {
			if strings.Contains(expText, kw) {
				return true
			}
		}
	}
	return false
}

func assessComplexity(experiences []parser.Experience) string {
	if len(experiences) == 0 {
		return "unknown"
	}

	score := 0
	for _, exp := range experiences {
		desc := strings.ToLower(exp.Description)
		for _, tech := range complexTechs {
			if strings.Contains(desc, tech) {
				score++
			}
		}
	}

	if len(experiences) >= 5 {
		score += 2
	} else if len(experiences) >= 3 {
		score++
	}

	switch {
	case score >= 4:
		return "enterprise"
	case score >= 2:
		return "intermediate"
	default:
		return "standard"
	}
}

func progression(experiences []parser.Experience) []ProgressionStep {
	steps := make([]ProgressionStep, 0, len(experiences))
	for i, exp := range experiences {
		steps = append(steps, ProgressionStep{
			Role:     exp.Role,
			Company:  exp.Company,
			Duration: exp.Duration,
			Level:    roleLevel(exp.Role),
			Sequence: i + 1,
		})
	}
	return steps
}

func roleLevel(role string) string {
	lower := strings.ToLower(role)
	for _, kw := range seniorKeywords {
		if strings.Contains(lower, kw) {
			return "senior"
		}
	}
	for _, kw := range juniorKeywords {
		if strings.Contains(lower, kw) {
			return "junior"
		}
	}
	return "mid"
}

func fullText(resume *parser.Resume) string {
	var parts []string
	if resume.Summary != "" {
		parts = append(parts, resume.Summary)
	}
	for _, exp := range resume.Experiences {
		parts = append(parts, exp.Role, exp.Company, exp.Description)
	}
	for _, edu := range resume.Education {
		parts = append(parts, edu.Degree, edu.Institution)
	}
	return strings.Join(parts, " ")
}

// Summary condenses a Profile into the short narrative shown in reports.
type Summary struct {
	Overview        string   `json:"overview"`
	Level           string   `json:"level"`
	KeyDomains      string   `json:"key_domains"`
	Leadership      string   `json:"leadership"`
	Complexity      string   `json:"complexity"`
	Progression     string   `json:"progression"`
	Recommendations []string `json:"recommendations"`
}

// Summarize renders the human-readable view of a Profile.
func Summarize(profile *Profile) Summary {
	s := Summary{
		Overview:   fmt.Sprintf("%v years of experience as a %s", profile.TotalYears, profile.RoleSpecialization),
		Level:      titleCase(profile.CareerLevel),
		KeyDomains: "Not specified",
		Leadership: "Developing",
		Complexity: titleCase(profile.ProjectComplexity),
	}

	if len(profile.DomainExpertise) > 0 {
		domains := profile.DomainExpertise
		if len(domains) > 3 {
			domains = domains[:3]
		}
		s.KeyDomains = strings.Join(domains, ", ")
	}
	if profile.Leadership {
		s.Leadership = "Yes"
	}
	if len(profile.CareerProgression) > 1 {
		s.Progression = "Progressive"
	} else {
		s.Progression = "Early career"
	}
	s.Recommendations = recommendations(profile)

	return s
}

func recommendations(profile *Profile) []string {
	var recs []string

	switch {
	case profile.TotalYears < 2:
		recs = append(recs, "Focus on building foundational skills and completing projects")
	case profile.TotalYears < 5:
		recs = append(recs, "Consider taking on more responsibilities or leadership roles")
	default:
		recs = append(recs, "Look for senior leadership or specialized positions")
	}

	if !profile.Leadership {
		recs = append(recs, "Seek opportunities to mentor junior team members")
	}

	if len(profile.DomainExpertise) > 2 {
		recs = append(recs, "Consider specializing further in your strongest domain")
	} else if len(profile.DomainExpertise) == 0 {
		recs = append(recs, "Identify and focus on a specific industry domain")
	}

	return recs
}

func titleCase(s string) string {
	out := []byte(s)
	upperNext := true
	for i := 0; i < len(out); i++ {
		c := out[i]
		if c >= 'a' && c <= 'z' && upperNext {
			out[i] = c - 'a' + 'A'
		}
		upperNext = c == ' ' || c == '-'
	}
	return string(out)
}
