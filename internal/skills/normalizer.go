// Package skills normalizes raw skill tokens against the knowledge-base
// taxonomy and builds the candidate skill profile.
package skills

import (
	"sort"
	"strings"

	"resume-intel/internal/knowledge"
)

// NormalizedSkill is the canonical form of one raw skill token.
type NormalizedSkill struct {
	Original   string   `json:"original"`
	Normalized string   `json:"normalized"`
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	IsAlias    bool     `json:"is_alias"`
	Aliases    []string `json:"aliases,omitempty"`
}

// aliasTable maps lowercase skill variants to their canonical names.
var aliasTable = map[string]string{
	// Programming languages
	"js":            "JavaScript",
	"ts":            "TypeScript",
	"py":            "Python",
	"rb":            "Ruby",
	"cpp":           "C++",
	"csharp":        "C#",
	"objective-c":   "Objective-C",
	"objc":          "Objective-C",
	"fsharp":        "F#",
	"golang":        "Go",
	"rs":            "Rust",
	"php":           "PHP",
	"swift":         "Swift",
	"kotlin":        "Kotlin",
	"scala":         "Scala",
	"matlab":        "MATLAB",
	"r programming": "R",
	"sql":           "SQL",
	"t-sql":         "T-SQL",
	"plsql":         "PL/SQL",
	"html5":         "HTML",
	"css3":          "CSS",

	// Frameworks and libraries
	"reactjs":    "React",
	"react.js":   "React",
	"vuejs":      "Vue.js",
	"vue.js":     "Vue.js",
	"angularjs":  "Angular",
	"angular.js": "Angular",
	"nodejs":     "Node.js",
	"node.js":    "Node.js",
	"expressjs":  "Express.js",
	"express":    "Express.js",
	"flask":      "Flask",
	"django":     "Django",
	"springboot": "Spring Boot",
	"spring":     "Spring",
	"tensorflow": "TensorFlow",
	"pytorch":    "PyTorch",
	"keras":      "Keras",
	"sklearn":    "Scikit-learn",
	"pandas":     "Pandas",
	"numpy":      "NumPy",
	"matplotlib": "Matplotlib",
	"bootstrap":  "Bootstrap",
	"tailwind":   "Tailwind CSS",
	"jquery":     "jQuery",
	"nextjs":     "Next.js",
	"nuxt":       "Nuxt.js",
	"gatsby":     "Gatsby",

	// Tools and platforms
	"aws":                   "AWS",
	"amazon web services":   "AWS",
	"azure":                 "Azure",
	"microsoft azure":       "Azure",
	"gcp":                   "GCP",
	"google cloud":          "GCP",
	"google cloud platform": "GCP",
	"docker":                "Docker",
	"kubernetes":            "Kubernetes",
	"k8s":                   "Kubernetes",
	"git":                   "Git",
	"github":                "GitHub",
	"gitlab":                "GitLab",
	"jenkins":               "Jenkins",
	"circleci":              "CircleCI",
	"travis":                "Travis CI",
	"linux":                 "Linux",
	"ubuntu":                "Linux",
	"centos":                "Linux",
	"debian":                "Linux",
	"windows server":        "Windows",
	"mongodb":               "MongoDB",
	"postgres":              "PostgreSQL",
	"mysql":                 "MySQL",
	"redis":                 "Redis",
	"elasticsearch":         "Elasticsearch",
	"kafka":                 "Kafka",
	"rabbitmq":              "RabbitMQ",
	"graphql":               "GraphQL",
	"rest":                  "REST API",
	"restful":               "REST API",
	"rest api":              "REST API",
	"microservice":          "Microservices",

	// Data science
	"ml":                          "Machine Learning",
	"machine learning":            "Machine Learning",
	"deep learning":               "Deep Learning",
	"nlp":                         "Natural Language Processing",
	"natural language processing": "Natural Language Processing",
	"computer vision":             "Computer Vision",
	"data analytics":              "Data Analysis",
	"data analysis":               "Data Analysis",
	"data viz":                    "Data Visualization",
	"data visualization":          "Data Visualization",
	"statistics":                  "Statistics",
	"a/b testing":                 "A/B Testing",
	"ab testing":                  "A/B Testing",
	"predictive modeling":         "Predictive Modeling",
	"feature engineering":         "Feature Engineering",

	// DevOps
	"devops":                 "DevOps",
	"cloud":                  "Cloud Architecture",
	"cloud architecture":     "Cloud Architecture",
	"iaas":                   "Infrastructure as Code",
	"infrastructure as code": "Infrastructure as Code",
	"terraform":              "Terraform",
	"ansible":                "Ansible",
	"cicd":                   "CI/CD",
	"ci/cd":                  "CI/CD",
	"ci cd":                  "CI/CD",
	"monitoring":             "Monitoring",
	"logging":                "Logging",
	"security":               "Security",
	"container":              "Container Orchestration",
	"orchestration":          "Container Orchestration",
	"service mesh":           "Service Mesh",
}

// specialCases are casings the generic title-case rule gets wrong.
var specialCases = map[string]string{
	"css":     "CSS",
	"html":    "HTML",
	"sql":     "SQL",
	"api":     "API",
	"aws":     "AWS",
	"gcp":     "GCP",
	"mongodb": "MongoDB",
	"graphql": "GraphQL",
	"restful": "REST API",
	"cicd":    "CI/CD",
	"devops":  "DevOps",
	"ml":      "ML",
	"ai":      "AI",
	"nlp":     "NLP",
}

// canonicalIndex maps lowercase taxonomy skill names to their canonical
// casing and category. First category wins for any duplicated name.
var canonicalIndex = buildCanonicalIndex()

type taxonomyEntry struct {
	name     string
	category string
}

func buildCanonicalIndex() map[string]taxonomyEntry {
	idx := make(map[string]taxonomyEntry)
	for _, cat := range knowledge.Categories {
		for _, name := range cat.Skills {
			lower := strings.ToLower(name)
			if _, ok := idx[lower]; !ok {
				idx[lower] = taxonomyEntry{name: name, category: cat.Name}
			}
		}
	}
	return idx
}

// reverseAliases maps canonical names back to their known aliases, sorted
// for deterministic output.
var reverseAliases = buildReverseAliases()

func buildReverseAliases() map[string][]string {
	rev := make(map[string][]string)
	for alias, canonical := range aliasTable {
		rev[canonical] = append(rev[canonical], alias)
	}
	for canonical := range rev {
		sort.Strings(rev[canonical])
	}
	return rev
}

// Normalize maps a raw skill token to its canonical form. Exact alias hits
// carry confidence 1.0, taxonomy members 0.95 and unknown tokens 0.5.
// Normalize is idempotent: feeding back the normalized name yields the
// same canonical name and category.
func Normalize(skill string) NormalizedSkill {
	lower := strings.ToLower(strings.TrimSpace(skill))

	if canonical, ok := aliasTable[lower]; ok {
		return NormalizedSkill{
			Original:   skill,
			Normalized: canonical,
			Category:   categoryOf(canonical),
			Confidence: 1.0,
			IsAlias:    true,
			Aliases:    reverseAliases[canonical],
		}
	}

	// Taxonomy members keep the taxonomy's casing, so canonical names
	// survive a second pass unchanged.
	if entry, ok := canonicalIndex[lower]; ok {
		return NormalizedSkill{
			Original:   skill,
			Normalized: entry.name,
			Category:   entry.category,
			Confidence: 0.95,
		}
	}

	return NormalizedSkill{
		Original:   skill,
		Normalized: Capitalize(skill),
		Category:   "unknown",
		Confidence: 0.5,
	}
}

// NormalizeList normalizes every skill in order.
func NormalizeList(skills []string) []NormalizedSkill {
	out := make([]NormalizedSkill, 0, len(skills))
	for _, s := range skills {
		out = append(out, Normalize(s))
	}
	return out
}

// Capitalize returns the display casing for a skill name. Acronym-style
// names are special-cased, everything else is title-cased.
func Capitalize(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if fixed, ok := specialCases[lower]; ok {
		return fixed
	}
	return titleCase(strings.TrimSpace(skill))
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// categoryOf returns the first taxonomy category holding the skill, or
// "unknown".
func categoryOf(skill string) string {
	if entry, ok := canonicalIndex[strings.ToLower(skill)]; ok {
		return entry.category
	}
	return "unknown"
}

// CategoryOf exposes taxonomy category lookup for callers outside the package.
func CategoryOf(skill string) string {
	return categoryOf(skill)
}

// Synonyms returns the known aliases for a skill, or the skill itself when
// none are recorded.
func Synonyms(skill string) []string {
	normalized := Normalize(skill)
	if aliases, ok := reverseAliases[normalized.Normalized]; ok {
		return aliases
	}
	return []string{skill}
}

// Validate splits raw skills into recognized canonical names and tokens the
// taxonomy knows nothing about.
func Validate(skills []string) (valid []string, invalid []string) {
	for _, skill := range skills {
		normalized := Normalize(skill)
		if normalized.Category != "unknown" || normalized.Confidence > 0.8 {
			valid = append(valid, normalized.Normalized)
		} else {
			invalid = append(invalid, skill)
		}
	}
	return valid, invalid
}

// CalculateMatch computes the share of required skills the candidate covers.
// An empty requirement list counts as a full match.
func CalculateMatch(candidateSkills, requiredSkills []string) (float64, []string, []string) {
	candidate := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		candidate[strings.ToLower(Normalize(s).Normalized)] = struct{}{}
	}

	if len(requiredSkills) == 0 {
		return 1.0, nil, nil
	}

	var matched, missing []string
	for _, req := range requiredSkills {
		lower := strings.ToLower(req)
		if _, ok := candidate[lower]; ok {
			matched = append(matched, lower)
		} else {
			missing = append(missing, lower)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	pct := round2(float64(len(matched)) / float64(len(requiredSkills)))
	return pct, matched, missing
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
