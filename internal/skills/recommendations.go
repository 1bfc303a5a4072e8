package skills

import (
	"sort"
	"strings"

	"resume-intel/internal/knowledge"
)

// Recommendations groups skill-growth suggestions derived from a profile.
type Recommendations struct {
	HotSkills      []string `json:"hot_skills_to_learn"`
	Complementary  []string `json:"complementary_skills"`
	Certifications []string `json:"certification_suggestions"`
}

var hotSkillsByCategory = map[string][]string{
	"programming_languages": {"Python", "TypeScript", "Go", "Rust"},
	"frameworks_libraries":  {"React", "Next.js", "FastAPI", "TensorFlow"},
	"tools_platforms":       {"Docker", "Kubernetes", "AWS", "PostgreSQL"},
	"data_science":          {"Machine Learning", "Deep Learning", "NLP"},
	"devops_cloud":          {"DevOps", "Cloud Architecture", "Terraform"},
}

var complementarySkills = map[string][]string{
	"Python":           {"Django", "Flask", "FastAPI", "Pandas", "TensorFlow"},
	"JavaScript":       {"React", "Node.js", "TypeScript", "GraphQL"},
	"Java":             {"Spring", "Hibernate", "Maven", "Kubernetes"},
	"React":            {"Redux", "TypeScript", "Next.js", "Jest"},
	"Machine Learning": {"TensorFlow", "PyTorch", "Scikit-learn", "MLOps"},
}

var certificationSuggestions = map[string][]string{
	"AWS":                {"AWS Solutions Architect", "AWS Developer", "AWS DevOps Engineer"},
	"Azure":              {"Azure Solutions Architect", "Azure Developer", "Azure Administrator"},
	"GCP":                {"Google Cloud Professional", "GCP Architect", "GCP Data Engineer"},
	"Kubernetes":         {"CKA (Certified Kubernetes Administrator)", "CKAD (Developer)"},
	"Python":             {"PCEP", "PCAP", "PCPP"},
	"Machine Learning":   {"TensorFlow Developer", "AWS Machine Learning", "Google ML"},
	"DevOps":             {"DevOps Foundation", "Site Reliability Engineer"},
	"Project Management": {"PMP", "CSM (Scrum Master)", "PRINCE2"},
}

// Recommend suggests hot, complementary and certification skills the
// candidate does not already hold, capped at five per list.
func Recommend(profile Profile) Recommendations {
	heldLower := make(map[string]struct{}, len(profile.AllSkills))
	for _, s := range profile.AllSkills {
		heldLower[strings.ToLower(s)] = struct{}{}
	}

	var hot []string
	for _, primary := range top(profile.Primary, 3) {
		for _, candidate := range hotSkillsByCategory[primary.Category] {
			if _, ok := heldLower[strings.ToLower(candidate)]; !ok {
				hot = append(hot, candidate)
			}
		}
	}

	var complementary []string
	for _, primary := range top(profile.Primary, 5) {
		for _, candidate := range complementarySkills[primary.Skill] {
			if _, ok := heldLower[strings.ToLower(candidate)]; !ok {
				complementary = append(complementary, candidate)
			}
		}
	}

	var certs []string
	for _, primary := range profile.Primary {
		certs = append(certs, certificationSuggestions[primary.Skill]...)
	}

	return Recommendations{
		HotSkills:      dedupeCap(hot, 5),
		Complementary:  dedupeCap(complementary, 5),
		Certifications: dedupeCap(certs, 5),
	}
}

// DepthAnalysis measures how broad and deep the candidate's skill set is.
type DepthAnalysis struct {
	BreadthScore      float64  `json:"breadth_score"`
	DepthScore        float64  `json:"depth_score"`
	BalanceScore      float64  `json:"balance_score"`
	StrengthAreas     []string `json:"strength_areas"`
	WeakAreas         []string `json:"weak_areas"`
	OverallAssessment string   `json:"overall_assessment"`
}

// AnalyzeDepth scores the breadth/depth balance of a skill profile.
func AnalyzeDepth(profile Profile) DepthAnalysis {
	var analysis DepthAnalysis

	active := 0
	perCategory := make(map[string]int)
	for cat, list := range profile.Categorized {
		if len(list) == 0 || cat == "unknown" {
			continue
		}
		active++
		perCategory[cat] = len(list)
	}
	analysis.BreadthScore = round2(float64(active) / float64(len(knowledge.Categories)))

	if len(perCategory) > 0 {
		total := 0
		for _, n := range perCategory {
			total += n
		}
		avg := float64(total) / float64(len(perCategory))
		depth := avg / 10
		if depth > 1.0 {
			depth = 1.0
		}
		analysis.DepthScore = depth
	}

	if analysis.BreadthScore > 0 && analysis.DepthScore > 0 {
		analysis.BalanceScore = round2((analysis.BreadthScore + analysis.DepthScore) / 2)
	}

	type catCount struct {
		name  string
		count int
	}
	sorted := make([]catCount, 0, len(perCategory))
	for name, count := range perCategory {
		sorted = append(sorted, catCount{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})
	for i, cc := range sorted {
		if i >= 3 {
			break
		}
		if cc.count >= 2 {
			analysis.StrengthAreas = append(analysis.StrengthAreas, cc.name)
		}
	}

	for cat, list := range profile.Categorized {
		if len(list) == 0 && cat != "unknown" {
			analysis.WeakAreas = append(analysis.WeakAreas, cat)
		}
	}
	sort.Strings(analysis.WeakAreas)
	if len(analysis.WeakAreas) > 3 {
		analysis.WeakAreas = analysis.WeakAreas[:3]
	}

	switch {
	case analysis.BalanceScore >= 0.7:
		analysis.OverallAssessment = "Well-rounded professional with balanced skill set"
	case analysis.BreadthScore > analysis.DepthScore:
		analysis.OverallAssessment = "Jack of many trades, consider deepening expertise"
	case analysis.DepthScore > analysis.BreadthScore:
		analysis.OverallAssessment = "Deep specialist, consider broadening skill set"
	default:
		analysis.OverallAssessment = "Developing professional with foundational skills"
	}

	return analysis
}

func top(list []ScoredSkill, n int) []ScoredSkill {
	if len(list) < n {
		return list
	}
	return list[:n]
}

func dedupeCap(list []string, limit int) []string {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
