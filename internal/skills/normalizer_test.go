package skills

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		in             string
		wantNormalized string
		wantCategory   string
		wantConfidence float64
		wantAlias      bool
	}{
		{"alias", "js", "JavaScript", "programming_languages", 1.0, true},
		{"alias mixed case", "GoLang", "Go", "programming_languages", 1.0, true},
		{"taxonomy member", "Python", "Python", "programming_languages", 0.95, false},
		{"taxonomy lowercase", "react", "React", "frameworks_libraries", 0.95, false},
		{"taxonomy interior caps", "javascript", "JavaScript", "programming_languages", 0.95, false},
		{"unknown", "underwater basket weaving", "Underwater Basket Weaving", "unknown", 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got.Normalized != tt.wantNormalized {
				t.Errorf("normalized = %q, want %q", got.Normalized, tt.wantNormalized)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.IsAlias != tt.wantAlias {
				t.Errorf("isAlias = %v, want %v", got.IsAlias, tt.wantAlias)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aws", "AWS"},
		{"cicd", "CI/CD"},
		{"mongodb", "MongoDB"},
		{"machine learning", "Machine Learning"},
		{"python", "Python"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"js", "Python", "tailwind css", "node.js", "some unknown skill"} {
		once := Normalize(in)
		twice := Normalize(once.Normalized)
		if twice.Normalized != once.Normalized {
			t.Errorf("Normalize(%q) unstable: %q then %q", in, once.Normalized, twice.Normalized)
		}
		if twice.Category != once.Category {
			t.Errorf("Normalize(%q) category drifted: %q then %q", in, once.Category, twice.Category)
		}
	}
}

// Canonical names with interior capitals must survive a second pass with
// the taxonomy's casing, not generic title casing.
func TestNormalizeKeepsCanonicalCasing(t *testing.T) {
	once := Normalize("js")
	if once.Normalized != "JavaScript" {
		t.Fatalf("Normalize(js) = %q, want JavaScript", once.Normalized)
	}
	twice := Normalize(once.Normalized)
	if twice.Normalized != "JavaScript" {
		t.Errorf("Normalize(JavaScript) = %q, want JavaScript", twice.Normalized)
	}
	if twice.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", twice.Confidence)
	}
}

func TestValidate(t *testing.T) {
	valid, invalid := Validate([]string{"js", "Python", "zzz made up zzz"})
	wantValid := []string{"JavaScript", "Python"}
	if !reflect.DeepEqual(valid, wantValid) {
		t.Errorf("valid = %v, want %v", valid, wantValid)
	}
	if len(invalid) != 1 || invalid[0] != "zzz made up zzz" {
		t.Errorf("invalid = %v", invalid)
	}
}

func TestSynonyms(t *testing.T) {
	syns := Synonyms("react.js")
	found := false
	for _, s := range syns {
		if s == "reactjs" {
			found = true
		}
	}
	if !found {
		t.Errorf("Synonyms(react.js) = %v, want it to include reactjs", syns)
	}

	if got := Synonyms("completely novel"); len(got) != 1 || got[0] != "completely novel" {
		t.Errorf("Synonyms fallback = %v", got)
	}
}

func TestCalculateMatch(t *testing.T) {
	pct, matched, missing := CalculateMatch(
		[]string{"Python", "SQL"},
		[]string{"Python", "Java", "SQL", "Git"},
	)
	if pct != 0.5 {
		t.Errorf("pct = %v, want 0.5", pct)
	}
	if !reflect.DeepEqual(matched, []string{"python", "sql"}) {
		t.Errorf("matched = %v", matched)
	}
	if !reflect.DeepEqual(missing, []string{"git", "java"}) {
		t.Errorf("missing = %v", missing)
	}
}

func TestCalculateMatchEmptyRequired(t *testing.T) {
	pct, matched, missing := CalculateMatch([]string{"Python"}, nil)
	if pct != 1.0 || matched != nil || missing != nil {
		t.Errorf("empty required = (%v, %v, %v), want (1.0, nil, nil)", pct, matched, missing)
	}
}
