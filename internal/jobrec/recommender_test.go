package jobrec

import (
	"testing"

	"resume-intel/internal/experience"
	"resume-intel/internal/skills"
)

func profileWith(skillNames ...string) *skills.Profile {
	return &skills.Profile{AllSkills: skillNames}
}

func TestRecommendBoundsAndOrder(t *testing.T) {
	skillProfile := profileWith("Python", "SQL", "Git", "Communication", "Excel")
	expProfile := &experience.Profile{CareerLevel: "mid-level", TotalYears: 4}

	recs := Recommend(skillProfile, expProfile, 10)
	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if len(recs) > 10 {
		t.Fatalf("got %d recommendations, want at most 10", len(recs))
	}

	for i, rec := range recs {
		if rec.MatchScore < 0.2 || rec.MatchScore > 1.0 {
			t.Errorf("rec %d (%s) score %v out of range", i, rec.JobID, rec.MatchScore)
		}
		if i > 0 && recs[i-1].MatchScore < rec.MatchScore {
			t.Errorf("recommendations not sorted: %v before %v", recs[i-1].MatchScore, rec.MatchScore)
		}
		if len(rec.WhyFits) == 0 || len(rec.WhyFits) > 4 {
			t.Errorf("rec %s has %d why-fits reasons", rec.JobID, len(rec.WhyFits))
		}
	}
}

func TestRecommendDeterministicTieOrder(t *testing.T) {
	skillProfile := profileWith("Communication")
	expProfile := &experience.Profile{}

	first := Recommend(skillProfile, expProfile, 10)
	for run := 0; run < 3; run++ {
		next := Recommend(skillProfile, expProfile, 10)
		if len(next) != len(first) {
			t.Fatalf("run %d returned %d recs, first returned %d", run, len(next), len(first))
		}
		for i := range first {
			if first[i].JobID != next[i].JobID {
				t.Fatalf("run %d order diverged at %d: %s vs %s", run, i, first[i].JobID, next[i].JobID)
			}
		}
	}
}

func TestCalculateMatchScore(t *testing.T) {
	// Product Manager requires four skills, three of them critical. Holding
	// Communication and Strategy gives 2/4 base plus a 2/3 critical bonus
	// weighted at 0.3, which lands on 0.7 exactly.
	skillProfile := profileWith("Communication", "Strategy")
	expProfile := &experience.Profile{CareerLevel: "senior"}

	recs := Recommend(skillProfile, expProfile, 25)
	var found *Recommendation
	for i := range recs {
		if recs[i].JobID == "product_manager" {
			found = &recs[i]
			break
		}
	}
	if found == nil {
		t.Fatal("product_manager not recommended")
	}
	if found.MatchScore != 0.7 {
		t.Errorf("match score = %v, want 0.7", found.MatchScore)
	}
	if found.SkillMatchPercentage != 70 {
		t.Errorf("skill match percentage = %v, want 70", found.SkillMatchPercentage)
	}
}

func TestCalculateMatchCriticalPenalty(t *testing.T) {
	// Python+SQL against a four-skill requirement with Python and Java
	// critical: base 2/4 = 0.5, critical (1 - 0.5*1)/2 = 0.25, adjusted
	// 0.5 + 0.25*0.3 = 0.575, which rounds to 0.57 at two decimals.
	candidate := lowerSet([]string{"Python", "SQL"})

	result := calculateMatch(
		[]string{"Python", "Java", "SQL", "Git"},
		[]string{"Python", "Java"},
		candidate,
	)

	if result.score != 0.57 {
		t.Errorf("score = %v, want 0.57", result.score)
	}
	if result.criticalMatched != 1 || result.criticalMissing != 1 {
		t.Errorf("critical matched/missing = %d/%d, want 1/1",
			result.criticalMatched, result.criticalMissing)
	}
	if len(result.matched) != 2 || len(result.missing) != 2 {
		t.Errorf("matched/missing = %v/%v, want two of each", result.matched, result.missing)
	}
}

func TestCalculateMatchFullMatchClamped(t *testing.T) {
	skillProfile := profileWith("JavaScript", "HTML", "CSS", "React", "Vue.js")
	expProfile := &experience.Profile{}

	recs := Recommend(skillProfile, expProfile, 25)
	for _, rec := range recs {
		if rec.JobID == "frontend_developer" {
			if rec.MatchScore != 1.0 {
				t.Errorf("full match score = %v, want 1.0", rec.MatchScore)
			}
			if len(rec.MissingCriticalSkills) != 0 {
				t.Errorf("full match still missing critical skills: %v", rec.MissingCriticalSkills)
			}
			return
		}
	}
	t.Fatal("frontend_developer not recommended despite full skill match")
}

func TestRelatedBoost(t *testing.T) {
	candidate := lowerSet([]string{"Django"})
	if got := relatedBoost([]string{"python"}, candidate); got != 0.1 {
		t.Errorf("relatedBoost = %v, want 0.1", got)
	}

	// Boost caps at 0.3 even with many related hits.
	many := lowerSet([]string{"Django", "Spring", "TypeScript", "PostgreSQL", "Azure"})
	if got := relatedBoost([]string{"python", "java", "javascript", "sql", "aws"}, many); got != 0.3 {
		t.Errorf("capped relatedBoost = %v, want 0.3", got)
	}
}

func TestAnalyzeGap(t *testing.T) {
	gap, err := AnalyzeGap(profileWith("Python", "SQL"), "data_analyst")
	if err != nil {
		t.Fatalf("AnalyzeGap: %v", err)
	}
	if gap.TargetRole != "Data Analyst" {
		t.Errorf("target role = %q", gap.TargetRole)
	}
	if gap.MatchPercentage < 0 || gap.MatchPercentage > 100 {
		t.Errorf("match percentage %v out of range", gap.MatchPercentage)
	}
	if len(gap.CriticalMissingSkills)+len(gap.ImportantMissingSkills) == 0 {
		t.Error("expected some missing skills")
	}
	for _, skill := range gap.CriticalMissingSkills {
		if _, ok := gap.LearningResources[titleCase(skill)]; !ok {
			t.Errorf("no learning resources for missing skill %q", skill)
		}
	}
	if gap.TimeToJobReady == "" {
		t.Error("expected a time-to-ready estimate")
	}
}

func TestAnalyzeGapUnknownRole(t *testing.T) {
	if _, err := AnalyzeGap(profileWith("Python"), "astronaut"); err != ErrUnknownRole {
		t.Errorf("err = %v, want ErrUnknownRole", err)
	}
}

func TestSuggestLearningPath(t *testing.T) {
	if got := SuggestLearningPath("Python"); got.Level != "Beginner" {
		t.Errorf("exact match level = %q, want Beginner", got.Level)
	}
	// Partial match: "advanced python" contains the "python" key.
	if got := SuggestLearningPath("Advanced Python"); got.Level != "Beginner" {
		t.Errorf("partial match level = %q, want Beginner", got.Level)
	}
	if got := SuggestLearningPath("Underwater Basket Weaving"); got.TimeEstimate != "2-3 months" {
		t.Errorf("fallback estimate = %q, want 2-3 months", got.TimeEstimate)
	}
}

func TestEstimateTimeToReady(t *testing.T) {
	tests := []struct {
		name     string
		missing  []string
		critical []string
		want     string
	}{
		{"nothing missing", nil, nil, "Ready now"},
		{"one minor skill", []string{"excel"}, nil, "1-2 weeks"},
		{"two critical", []string{"python", "sql"}, []string{"python", "sql"}, "1-2 months"},
		{"four skills two critical", []string{"a", "b", "c", "d"}, []string{"a", "b"}, "2-3 months"},
		{"many skills", []string{"a", "b", "c", "d", "e", "f", "g"}, []string{"a", "b", "c", "d"}, "3+ months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateTimeToReady(tt.missing, tt.critical); got != tt.want {
				t.Errorf("estimateTimeToReady = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRoadmap(t *testing.T) {
	expProfile := &experience.Profile{CareerLevel: "junior"}

	roadmap, err := BuildRoadmap(profileWith("HTML"), expProfile, "frontend_developer")
	if err != nil {
		t.Fatalf("BuildRoadmap: %v", err)
	}
	if roadmap.TargetRole != "Frontend Developer" {
		t.Errorf("target role = %q", roadmap.TargetRole)
	}
	if len(roadmap.Steps) != 3 {
		t.Fatalf("steps = %d, want 3 with critical gaps present", len(roadmap.Steps))
	}
	if roadmap.Steps[0].Phase != "Immediate Priority" {
		t.Errorf("first phase = %q", roadmap.Steps[0].Phase)
	}
	if len(roadmap.Steps[0].Actions) > 2 {
		t.Errorf("immediate actions = %d, want at most 2", len(roadmap.Steps[0].Actions))
	}

	// With every requirement covered there are no critical gaps, so the
	// roadmap starts at portfolio building.
	full, err := BuildRoadmap(profileWith("JavaScript", "HTML", "CSS", "React", "Vue.js"), expProfile, "frontend_developer")
	if err != nil {
		t.Fatalf("BuildRoadmap full: %v", err)
	}
	if len(full.Steps) != 2 || full.Steps[0].Phase != "Portfolio Building" {
		t.Errorf("full-match roadmap steps wrong: %+v", full.Steps)
	}

	if _, err := BuildRoadmap(profileWith("HTML"), expProfile, "wizard"); err != ErrUnknownRole {
		t.Errorf("err = %v, want ErrUnknownRole", err)
	}
}
