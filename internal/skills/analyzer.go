package skills

import (
	"sort"
	"strings"

	"resume-intel/internal/knowledge"
	"resume-intel/internal/parser"
)

// ScoredSkill is a skill ranked by the composite primary-skill score.
type ScoredSkill struct {
	Skill    string  `json:"skill"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Profile aggregates every skill signal found in a resume.
type Profile struct {
	AllSkills      []string            `json:"all_skills"`
	Categorized    map[string][]string `json:"categorized_skills"`
	Primary        []ScoredSkill       `json:"primary_skills"`
	Secondary      []ScoredSkill       `json:"secondary_skills"`
	Emerging       []string            `json:"emerging_skills"`
	Normalized     []NormalizedSkill   `json:"-"`
	SoftSkills     []string            `json:"soft_skills"`
	Technical      []string            `json:"technical_skills"`
	ToolsPlatforms []string            `json:"tools_platforms"`
	TotalCount     int                 `json:"total_skills_count"`
}

// learningIndicators mark skills that read as in-progress rather than held.
var learningIndicators = []string{
	"learning", "studying", "exploring", "familiarity", "beginner",
	"junior", "new to", "currently learning", "in progress",
}

// priorityCategories rank categories for primary-skill scoring; earlier
// entries earn a larger boost.
var priorityCategories = []string{
	"programming_languages",
	"frameworks_libraries",
	"tools_platforms",
	"data_science",
	"devops_cloud",
	"soft_skills",
}

// Analyze builds the skill profile from extracted resume data.
func Analyze(resume *parser.Resume) Profile {
	var raw []string
	raw = append(raw, resume.TechnicalSkills...)
	raw = append(raw, resume.SoftSkills...)
	raw = append(raw, resume.Tools...)

	for _, exp := range resume.Experiences {
		raw = append(raw, FromText(exp.Description)...)
	}
	for _, proj := range resume.Projects {
		raw = append(raw, proj.Technologies...)
		raw = append(raw, FromText(proj.Description)...)
	}

	profile := Profile{
		Normalized: NormalizeList(raw),
	}

	seen := make(map[string]struct{}, len(profile.Normalized))
	for _, ns := range profile.Normalized {
		if _, ok := seen[ns.Normalized]; ok {
			continue
		}
		seen[ns.Normalized] = struct{}{}
		profile.AllSkills = append(profile.AllSkills, ns.Normalized)
	}
	sort.Strings(profile.AllSkills)

	profile.Categorized = Categorize(profile.AllSkills)
	profile.Technical = concat(
		profile.Categorized["programming_languages"],
		profile.Categorized["frameworks_libraries"],
		profile.Categorized["data_science"],
		profile.Categorized["devops_cloud"],
	)
	profile.SoftSkills = profile.Categorized["soft_skills"]
	profile.ToolsPlatforms = profile.Categorized["tools_platforms"]

	scored := RankPrimary(profile.AllSkills)
	mid := len(scored) / 3
	if mid < 1 {
		mid = 1
	}
	if mid > len(scored) {
		mid = len(scored)
	}
	profile.Primary = scored[:mid]
	profile.Secondary = scored[mid:]

	context := resume.Summary
	for _, exp := range resume.Experiences {
		context += " " + exp.Description
	}
	profile.Emerging = emergingSkills(profile.AllSkills, context)
	profile.TotalCount = len(profile.AllSkills)

	return profile
}

// FromText scans free text for taxonomy skill names.
func FromText(text string) []string {
	var found []string
	lower := strings.ToLower(text)
	for _, cat := range knowledge.Categories {
		for _, skill := range cat.Skills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				found = append(found, skill)
			}
		}
	}
	return found
}

// Categorize buckets normalized skills by category. Only the core technical
// and soft-skill categories get their own bucket; everything else falls into
// the unknown bucket.
func Categorize(skillNames []string) map[string][]string {
	buckets := map[string][]string{
		"programming_languages": {},
		"frameworks_libraries":  {},
		"tools_platforms":       {},
		"soft_skills":           {},
		"data_science":          {},
		"devops_cloud":          {},
		"unknown":               {},
	}

	for _, skill := range skillNames {
		ns := Normalize(skill)
		bucket, ok := buckets[ns.Category]
		if !ok {
			bucket = buckets["unknown"]
			if !contains(bucket, ns.Normalized) {
				buckets["unknown"] = append(bucket, ns.Normalized)
			}
			continue
		}
		if !contains(bucket, ns.Normalized) {
			buckets[ns.Category] = append(bucket, ns.Normalized)
		}
	}

	return buckets
}

// RankPrimary scores skills by frequency, category priority and confidence.
// Ties break on skill name so output is stable.
func RankPrimary(skillNames []string) []ScoredSkill {
	type tally struct {
		count      int
		category   string
		confidence float64
	}
	tallies := make(map[string]*tally)
	var order []string

	for _, skill := range skillNames {
		ns := Normalize(skill)
		t, ok := tallies[ns.Normalized]
		if !ok {
			t = &tally{category: ns.Category, confidence: ns.Confidence}
			tallies[ns.Normalized] = t
			order = append(order, ns.Normalized)
		}
		t.count++
	}

	scored := make([]ScoredSkill, 0, len(order))
	for _, name := range order {
		t := tallies[name]
		boost := 0
		for i, cat := range priorityCategories {
			if cat == t.category {
				boost = len(priorityCategories) - i
				break
			}
		}
		score := float64(t.count)*0.5 + float64(boost)*0.3 + t.confidence*0.2
		scored = append(scored, ScoredSkill{
			Skill:    name,
			Category: t.category,
			Score:    round2(score),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Skill < scored[j].Skill
	})

	return scored
}

func emergingSkills(skillNames []string, context string) []string {
	lower := strings.ToLower(context)
	var emerging []string
	for _, skill := range skillNames {
		for _, indicator := range learningIndicators {
			if strings.Contains(lower, indicator) {
				emerging = append(emerging, skill)
				break
			}
		}
	}
	return emerging
}

// SuggestExpansion lists taxonomy skills from a category the candidate does
// not hold yet, capped at ten.
func SuggestExpansion(held []string, category string) []string {
	heldLower := make(map[string]struct{}, len(held))
	for _, s := range held {
		heldLower[strings.ToLower(s)] = struct{}{}
	}

	var suggestions []string
	for _, skill := range knowledge.CategorySkills(category) {
		if _, ok := heldLower[strings.ToLower(skill)]; !ok {
			suggestions = append(suggestions, skill)
		}
	}
	if len(suggestions) > 10 {
		suggestions = suggestions[:10]
	}
	return suggestions
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
