package analyses

import (
	"fmt"
	"strings"

	"resume-intel/internal/experience"
	"resume-intel/internal/jobrec"
	"resume-intel/internal/parser"
	"resume-intel/internal/scoring"
	"resume-intel/internal/skills"
)

const summaryPreviewLimit = 200

// BasicInfo carries the contact header of the analyzed resume.
type BasicInfo struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Location       string `json:"location"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	SummaryPreview string `json:"summary_preview"`
}

// Suggestions aggregates improvement guidance from the individual analyzers.
type Suggestions struct {
	SkillImprovements  skills.Recommendations `json:"skill_improvements"`
	SkillGapAnalysis   *jobrec.GapAnalysis    `json:"skill_gap_analysis,omitempty"`
	ExperienceInsights experience.Summary     `json:"experience_insights"`
}

// Report is the full analysis payload returned to clients.
type Report struct {
	BasicInfo          BasicInfo               `json:"basic_info"`
	SkillProfile       skills.Profile          `json:"skill_profile"`
	ExperienceProfile  *experience.Profile     `json:"experience_profile"`
	JobRecommendations []jobrec.Recommendation `json:"job_recommendations"`
	ResumeScore        *scoring.Score          `json:"resume_score"`
	Suggestions        Suggestions             `json:"suggestions"`
	JobMatchAnalysis   *scoring.JobMatch       `json:"job_match_analysis,omitempty"`
}

// QuickRecommendation is a compact job suggestion for the quick view.
type QuickRecommendation struct {
	Title string `json:"title"`
	Match string `json:"match"`
}

// QuickReport is the condensed summary of a full report.
type QuickReport struct {
	OverallScore          float64               `json:"overall_score"`
	Grade                 string                `json:"grade"`
	CareerLevel           string                `json:"career_level"`
	TopJobRecommendations []QuickRecommendation `json:"top_job_recommendations"`
	KeySkills             []string              `json:"key_skills"`
	MainStrength          string                `json:"main_strength"`
	MainImprovement       string                `json:"main_improvement"`
}

// Comparison is the condensed resume-versus-job view.
type Comparison struct {
	MatchPercentage     float64  `json:"match_percentage"`
	Recommendation      string   `json:"recommendation"`
	MissingRequirements []string `json:"missing_requirements"`
	MatchedRequirements []string `json:"matched_requirements"`
	ResumeScore         float64  `json:"resume_score"`
	CareerLevelMatch    string   `json:"career_level_match"`
}

// BuildReport runs the full analysis pipeline over a parsed resume.
// A non-empty jobDescription adds the job match section.
func BuildReport(resume *parser.Resume, jobDescription string) *Report {
	skillProfile := skills.Analyze(resume)
	expProfile := experience.Analyze(resume)
	recs := jobrec.Recommend(&skillProfile, expProfile, 0)
	score := scoring.ScoreResume(resume, &skillProfile)

	report := &Report{
		BasicInfo:          basicInfo(resume),
		SkillProfile:       skillProfile,
		ExperienceProfile:  expProfile,
		JobRecommendations: recs,
		ResumeScore:        score,
		Suggestions: Suggestions{
			SkillImprovements:  skills.Recommend(skillProfile),
			SkillGapAnalysis:   topRoleGap(&skillProfile, recs),
			ExperienceInsights: experience.Summarize(expProfile),
		},
	}

	if strings.TrimSpace(jobDescription) != "" {
		report.JobMatchAnalysis = scoring.CompareWithJob(resume, jobDescription)
	}
	return report
}

// QuickView condenses a full report to its headline facts.
func QuickView(report *Report) QuickReport {
	quick := QuickReport{
		OverallScore:    report.ResumeScore.OverallScore,
		Grade:           report.ResumeScore.Grade,
		CareerLevel:     report.ExperienceProfile.CareerLevel,
		MainStrength:    "N/A",
		MainImprovement: "N/A",
	}

	for i, rec := range report.JobRecommendations {
		if i == 3 {
			break
		}
		quick.TopJobRecommendations = append(quick.TopJobRecommendations, QuickRecommendation{
			Title: rec.Title,
			Match: fmt.Sprintf("%.0f%%", rec.SkillMatchPercentage),
		})
	}

	for i, scored := range report.SkillProfile.Primary {
		if i == 5 {
			break
		}
		quick.KeySkills = append(quick.KeySkills, scored.Skill)
	}

	if len(report.ResumeScore.Strengths) > 0 {
		quick.MainStrength = report.ResumeScore.Strengths[0]
	}
	if len(report.ResumeScore.ImprovementTips) > 0 {
		quick.MainImprovement = report.ResumeScore.ImprovementTips[0]
	}
	return quick
}

// CompareView condenses a report with a job match section into the
// comparison payload.
func CompareView(report *Report, jobDescription string) Comparison {
	cmp := Comparison{
		ResumeScore:      report.ResumeScore.OverallScore,
		CareerLevelMatch: scoring.CareerLevelMatch(report.ExperienceProfile.CareerLevel, jobDescription),
	}
	if jm := report.JobMatchAnalysis; jm != nil {
		cmp.MatchPercentage = jm.MatchPercentage
		cmp.Recommendation = jm.Recommendation
		cmp.MissingRequirements = jm.RequirementsMissing
		cmp.MatchedRequirements = jm.RequirementsFound
	}
	return cmp
}

func basicInfo(resume *parser.Resume) BasicInfo {
	return BasicInfo{
		Name:           resume.FullName,
		Email:          resume.Email,
		Location:       resume.Location,
		LinkedIn:       resume.LinkedIn,
		GitHub:         resume.GitHub,
		SummaryPreview: previewSummary(resume.Summary),
	}
}

func previewSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) <= summaryPreviewLimit {
		return summary
	}
	return string(runes[:summaryPreviewLimit]) + "..."
}

func topRoleGap(skillProfile *skills.Profile, recs []jobrec.Recommendation) *jobrec.GapAnalysis {
	if len(recs) == 0 {
		return nil
	}
	gap, err := jobrec.AnalyzeGap(skillProfile, recs[0].JobID)
	if err != nil {
		return nil
	}
	return gap
}

// RenderText formats a report as a plain text summary for export.
func RenderText(report *Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "RESUME INTELLIGENCE REPORT")
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, "\nOVERALL SCORE")
	fmt.Fprintf(&b, "Grade: %s\n", report.ResumeScore.Grade)
	fmt.Fprintf(&b, "Score: %g/100\n", report.ResumeScore.OverallScore)

	fmt.Fprintln(&b, "\nBASIC INFO")
	fmt.Fprintf(&b, "Name: %s\n", report.BasicInfo.Name)
	fmt.Fprintf(&b, "Email: %s\n", report.BasicInfo.Email)

	fmt.Fprintln(&b, "\nCAREER PROFILE")
	fmt.Fprintf(&b, "Level: %s\n", report.ExperienceProfile.CareerLevel)
	fmt.Fprintf(&b, "Experience: %g years\n", report.ExperienceProfile.TotalYears)

	fmt.Fprintln(&b, "\nTOP JOB RECOMMENDATIONS")
	for i, rec := range report.JobRecommendations {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "%d. %s - %.0f%% match\n", i+1, rec.Title, rec.SkillMatchPercentage)
	}

	fmt.Fprintln(&b, "\nSTRENGTHS")
	for i, s := range report.ResumeScore.Strengths {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "+ %s\n", s)
	}

	fmt.Fprintln(&b, "\nIMPROVEMENT TIPS")
	for i, tip := range report.ResumeScore.ImprovementTips {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
