package parser

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `John Smith
john.smith@example.com
(555) 123-4567
https://linkedin.com/in/john-smith
https://github.com/jsmith

SUMMARY
Seasoned engineer building backend services in Go and Python.

EXPERIENCE
Software Engineer - Tech Corp
Jan 2022 - Present
- Built scalable APIs in Go
- Led migration to Docker

EDUCATION
Bachelor of Science, State University, 2018

CERTIFICATIONS
AWS Certified Developer (Amazon)

PROJECTS
Inventory Tracker
- Built with Python and Docker
`

func TestParseContactInfo(t *testing.T) {
	resume := Parse(sampleResume, FormatTXT)

	if resume.FullName != "John Smith" {
		t.Errorf("full name = %q, want %q", resume.FullName, "John Smith")
	}
	if resume.Email != "john.smith@example.com" {
		t.Errorf("email = %q, want %q", resume.Email, "john.smith@example.com")
	}
	if resume.Phone == "" {
		t.Error("expected a phone number")
	}
	if resume.LinkedIn != "https://linkedin.com/in/john-smith" {
		t.Errorf("linkedin = %q", resume.LinkedIn)
	}
	if resume.GitHub != "https://github.com/jsmith" {
		t.Errorf("github = %q", resume.GitHub)
	}
}

func TestParseExperienceEntry(t *testing.T) {
	resume := Parse(sampleResume, FormatTXT)

	if len(resume.Experiences) != 1 {
		t.Fatalf("experiences = %d, want 1", len(resume.Experiences))
	}
	exp := resume.Experiences[0]
	if exp.Role != "Software Engineer" {
		t.Errorf("role = %q, want %q", exp.Role, "Software Engineer")
	}
	if exp.Company != "Tech Corp" {
		t.Errorf("company = %q, want %q", exp.Company, "Tech Corp")
	}
	if !strings.Contains(exp.Duration, "Jan 2022") {
		t.Errorf("duration = %q, want it to carry the date range", exp.Duration)
	}
	if !strings.Contains(exp.Description, "Built scalable APIs") {
		t.Errorf("description = %q, missing bullet content", exp.Description)
	}
}

func TestParseSections(t *testing.T) {
	resume := Parse(sampleResume, FormatTXT)

	if len(resume.Education) != 1 {
		t.Fatalf("education = %d, want 1", len(resume.Education))
	}
	edu := resume.Education[0]
	if edu.Degree != "Bachelor" {
		t.Errorf("degree = %q, want %q", edu.Degree, "Bachelor")
	}
	if edu.Year != "2018" {
		t.Errorf("year = %q, want %q", edu.Year, "2018")
	}

	if len(resume.Certifications) != 1 {
		t.Fatalf("certifications = %d, want 1", len(resume.Certifications))
	}
	if got := resume.Certifications[0].Name; got != "AWS Certified Developer" {
		t.Errorf("certification name = %q", got)
	}

	if len(resume.Projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(resume.Projects))
	}
	proj := resume.Projects[0]
	if proj.Name != "Inventory Tracker" {
		t.Errorf("project name = %q", proj.Name)
	}
	wantTech := []string{"Python", "Docker"}
	if !reflect.DeepEqual(proj.Technologies, wantTech) {
		t.Errorf("project technologies = %v, want %v", proj.Technologies, wantTech)
	}
}

// A line belongs to exactly one section: the experience walker must not
// swallow education or project lines.
func TestParseSectionDisjointness(t *testing.T) {
	resume := Parse(sampleResume, FormatTXT)

	for _, exp := range resume.Experiences {
		if strings.Contains(exp.Description, "Bachelor") || strings.Contains(exp.Description, "Inventory") {
			t.Errorf("experience description leaked across sections: %q", exp.Description)
		}
	}
	for _, edu := range resume.Education {
		if strings.Contains(edu.Details, "Tech Corp") {
			t.Errorf("education details leaked experience content: %q", edu.Details)
		}
	}
}

func TestParseSummary(t *testing.T) {
	resume := Parse(sampleResume, FormatTXT)
	want := "Seasoned engineer building backend services in Go and Python."
	if resume.Summary != want {
		t.Errorf("summary = %q, want %q", resume.Summary, want)
	}
}

func TestParseSkillScan(t *testing.T) {
	resume := Parse(sampleResume, FormatTXT)

	found := make(map[string]bool)
	for _, s := range resume.TechnicalSkills {
		found[s] = true
	}
	for _, want := range []string{"Go", "Python", "Docker", "AWS"} {
		if !found[want] {
			t.Errorf("skill scan missing %q in %v", want, resume.TechnicalSkills)
		}
	}
}

func TestParseEmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n\t  "} {
		resume := Parse(text, FormatPDF)
		if resume == nil {
			t.Fatal("Parse returned nil for empty text")
		}
		if !strings.Contains(resume.Summary, "image-based or scanned") {
			t.Errorf("summary = %q, want scanned-document note", resume.Summary)
		}
		if len(resume.Experiences) != 0 {
			t.Errorf("expected no experiences, got %d", len(resume.Experiences))
		}
	}
}

func TestParseDeterminism(t *testing.T) {
	first := Parse(sampleResume, FormatTXT)
	for i := 0; i < 5; i++ {
		if next := Parse(sampleResume, FormatTXT); !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d diverged from first parse", i)
		}
	}
}

// CleanText collapses space runs first and strips special characters
// second, so a removed character can leave adjacent spaces behind. The
// expected strings below pin that exact order.
func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"collapses runs keeps newlines", "Hello\t  world\nnext line", "Hello world\nnext line"},
		{"strips specials after collapsing", "Hello\t  world! (parens)  \nNext — line", "Hello world parens \nNext  line"},
		{"trims ends", "  padded  ", "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.raw); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseSetsSourceFormat(t *testing.T) {
	if got := Parse(sampleResume, FormatTXT).SourceFormat; got != FormatTXT {
		t.Errorf("source format = %q, want %q", got, FormatTXT)
	}
	if got := Parse("", FormatPDF).SourceFormat; got != FormatPDF {
		t.Errorf("empty-text source format = %q, want %q", got, FormatPDF)
	}
}

// Bullet lines under CERTIFICATIONS are detail text and never become
// certification entries on their own.
func TestExtractCertificationsSkipsBullets(t *testing.T) {
	text := `CERTIFICATIONS
AWS Certified Developer (Amazon)
- expires 2027
• renewed annually
Google Cloud Architect
`
	got := ExtractCertifications(text)
	if len(got) != 2 {
		t.Fatalf("certifications = %d, want 2: %v", len(got), got)
	}
	if got[0].Name != "AWS Certified Developer" {
		t.Errorf("first name = %q", got[0].Name)
	}
	if got[1].Name != "Google Cloud Architect" {
		t.Errorf("second name = %q", got[1].Name)
	}
}

func TestExtractExperiencesInlineDates(t *testing.T) {
	text := `EXPERIENCE
Senior Developer - 2019 - 2021
- Shipped the billing system
Platform Engineer - 2021 - Present
- Ran the container platform
`
	got := ExtractExperiences(text)
	if len(got) != 2 {
		t.Fatalf("experiences = %d, want 2", len(got))
	}
	if got[0].Role != "Senior Developer" {
		t.Errorf("first role = %q", got[0].Role)
	}
	if got[1].Role != "Platform Engineer" {
		t.Errorf("second role = %q", got[1].Role)
	}
}
