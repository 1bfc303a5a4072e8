package analyses

import (
	"strings"
	"testing"

	"resume-intel/internal/parser"
)

func TestBuildReportSections(t *testing.T) {
	resume := parser.Parse(sampleResume, parser.FormatTXT)
	report := BuildReport(resume, "")

	if report.BasicInfo.Name != "John Smith" {
		t.Fatalf("unexpected name: %q", report.BasicInfo.Name)
	}
	if report.BasicInfo.LinkedIn == "" {
		t.Fatal("expected linkedin link")
	}
	if report.ResumeScore == nil || report.ExperienceProfile == nil {
		t.Fatal("expected score and experience profile")
	}
	if report.SkillProfile.TotalCount == 0 {
		t.Fatal("expected extracted skills")
	}
	if report.JobMatchAnalysis != nil {
		t.Fatal("job match should be absent without a job description")
	}
	if len(report.JobRecommendations) > 0 && report.Suggestions.SkillGapAnalysis == nil {
		t.Fatal("expected a gap analysis for the top recommendation")
	}
	if report.Suggestions.ExperienceInsights.Overview == "" {
		t.Fatal("expected experience insights")
	}
}

func TestBuildReportWithJobDescription(t *testing.T) {
	resume := parser.Parse(sampleResume, parser.FormatTXT)
	report := BuildReport(resume, "Required python and must have sql. Senior role, 5+ years.")

	if report.JobMatchAnalysis == nil {
		t.Fatal("expected a job match section")
	}
}

func TestPreviewSummary(t *testing.T) {
	short := "Brief summary."
	if got := previewSummary(short); got != short {
		t.Fatalf("short summary should pass through, got %q", got)
	}

	long := strings.Repeat("a", 250)
	got := previewSummary(long)
	if len([]rune(got)) != summaryPreviewLimit+3 {
		t.Fatalf("unexpected preview length: %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("preview should end with ellipsis: %q", got)
	}
}

func TestRenderText(t *testing.T) {
	resume := parser.Parse(sampleResume, parser.FormatTXT)
	report := BuildReport(resume, "")

	text := RenderText(report)
	for _, want := range []string{
		"RESUME INTELLIGENCE REPORT",
		"OVERALL SCORE",
		"BASIC INFO",
		"CAREER PROFILE",
		"TOP JOB RECOMMENDATIONS",
		"John Smith",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("rendered report missing %q:\n%s", want, text)
		}
	}
}
