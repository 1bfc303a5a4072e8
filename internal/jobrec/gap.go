package jobrec

import (
	"sort"
	"strings"

	"resume-intel/internal/knowledge"
	"resume-intel/internal/skills"
)

// GapAnalysis details what stands between a candidate and a target role.
type GapAnalysis struct {
	TargetRole             string                  `json:"target_role"`
	MatchPercentage        float64                 `json:"match_percentage"`
	MatchedSkills          []string                `json:"matched_skills"`
	CriticalMissingSkills  []string                `json:"critical_missing_skills"`
	ImportantMissingSkills []string                `json:"important_missing_skills"`
	LearningResources      map[string]LearningPath `json:"learning_resources"`
	TimeToJobReady         string                  `json:"time_to_job_ready"`
}

// LearningPath suggests how to acquire a missing skill.
type LearningPath struct {
	Resources    []string `json:"resources"`
	Level        string   `json:"level"`
	TimeEstimate string   `json:"time_estimate"`
}

var defaultLearningPath = LearningPath{
	Resources:    []string{"Online courses", "Industry-specific training", "Professional certifications"},
	Level:        "Intermediate",
	TimeEstimate: "2-3 months",
}

var learningPaths = map[string]LearningPath{
	"python":                 {[]string{"Official Python Tutorial", "Codecademy Python", "Real Python"}, "Beginner", "2-4 weeks"},
	"javascript":             {[]string{"MDN Web Docs", "JavaScript.info", "FreeCodeCamp"}, "Intermediate", "4-6 weeks"},
	"react":                  {[]string{"Official React Docs", "React Tutorial", "Egghead.io"}, "Intermediate", "3-4 weeks"},
	"machine learning":       {[]string{"Coursera ML Course", "Fast.ai", "Andrew Ng's ML"}, "Advanced", "3-6 months"},
	"docker":                 {[]string{"Docker Documentation", "Docker Mastery Course", "Katacoda"}, "Intermediate", "2-3 weeks"},
	"kubernetes":             {[]string{"Kubernetes.io", "Kube Academy", "CKA Prep"}, "Advanced", "4-6 weeks"},
	"project management":     {[]string{"PMP Certification", "CAPM Prep", "Project Management Fundamentals"}, "Intermediate", "2-3 months"},
	"communication":          {[]string{"Dale Carnegie Course", "Toastmasters", "Business Communication Books"}, "Beginner", "1-2 months"},
	"leadership":             {[]string{"Leadership Books", "Executive Coaching", "Leadership Workshops"}, "Advanced", "3-6 months"},
	"sales":                  {[]string{"Sales Training Programs", "Sandler Training", "SPIN Selling"}, "Beginner", "1-2 months"},
	"customer service":       {[]string{"Customer Service Training", "Zendesk Academy", "Help Desk Certification"}, "Beginner", "2-4 weeks"},
	"negotiation":            {[]string{"Never Split the Difference", "Harvard PON", "Negotiation Training"}, "Intermediate", "1-2 months"},
	"teaching":               {[]string{"Teaching Certification", "Coursera Teaching", "Classroom Management Training"}, "Intermediate", "3-6 months"},
	"curriculum development": {[]string{"Instructional Design Courses", "ADDIE Model", "eLearning Industry"}, "Intermediate", "2-3 months"},
	"data analysis":          {[]string{"Excel Advanced", "Tableau Training", "Google Data Analytics Certificate"}, "Beginner", "2-3 months"},
	"digital marketing":      {[]string{"Google Digital Garage", "HubSpot Academy", "Facebook Blueprint"}, "Beginner", "1-2 months"},
	"financial analysis":     {[]string{"Financial Modeling Courses", "CFA Preparation", "Wall Street Prep"}, "Intermediate", "3-6 months"},
	"recruiting":             {[]string{"SHRM Certification", "LinkedIn Recruiter Training", "Recruiting Software Certifications"}, "Beginner", "1-2 months"},
	"process improvement":    {[]string{"Six Sigma Certification", "Lean Training", "Process Excellence"}, "Intermediate", "2-3 months"},
}

// AnalyzeGap compares the candidate's skills against one target role and
// lays out the missing pieces with learning suggestions.
func AnalyzeGap(skillProfile *skills.Profile, targetJobID string) (*GapAnalysis, error) {
	role, ok := knowledge.Roles[targetJobID]
	if !ok {
		return nil, ErrUnknownRole
	}

	required := lowerAll(role.RequiredSkills)
	candidate := lowerSet(skillProfile.AllSkills)
	critical := lowerSet(criticalSkills[targetJobID])

	var matched, missing []string
	for _, skill := range required {
		if _, has := candidate[skill]; has {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	var criticalMissing, importantMissing []string
	for _, skill := range missing {
		if _, ok := critical[skill]; ok {
			criticalMissing = append(criticalMissing, skill)
		} else {
			importantMissing = append(importantMissing, skill)
		}
	}

	resources := make(map[string]LearningPath, len(missing))
	for _, skill := range missing {
		resources[titleCase(skill)] = SuggestLearningPath(skill)
	}

	matchPct := 0.0
	if len(required) > 0 {
		matchPct = round2(float64(len(matched))/float64(len(required))) * 100
	}

	return &GapAnalysis{
		TargetRole:             role.Title,
		MatchPercentage:        matchPct,
		MatchedSkills:          matched,
		CriticalMissingSkills:  criticalMissing,
		ImportantMissingSkills: importantMissing,
		LearningResources:      resources,
		TimeToJobReady:         estimateTimeToReady(missing, criticalMissing),
	}, nil
}

// SuggestLearningPath picks resources for one skill, preferring an exact
// table entry and falling back to a partial match, then a generic path.
func SuggestLearningPath(skill string) LearningPath {
	lower := strings.ToLower(skill)

	if path, ok := learningPaths[lower]; ok {
		return path
	}

	for _, key := range learningPathKeys() {
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return learningPaths[key]
		}
	}

	return defaultLearningPath
}

// Partial matching walks keys in sorted order so repeated calls agree.
func learningPathKeys() []string {
	keys := make([]string, 0, len(learningPaths))
	for k := range learningPaths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func estimateTimeToReady(missing, criticalMissing []string) string {
	if len(missing) == 0 {
		return "Ready now"
	}

	const (
		weeksPerCritical = 3
		weeksPerOther    = 2
	)
	totalWeeks := len(criticalMissing)*weeksPerCritical + (len(missing)-len(criticalMissing))*weeksPerOther

	switch {
	case totalWeeks <= 2:
		return "1-2 weeks"
	case totalWeeks <= 6:
		return "1-2 months"
	case totalWeeks <= 12:
		return "2-3 months"
	default:
		return "3+ months"
	}
}
