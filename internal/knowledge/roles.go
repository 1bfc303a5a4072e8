package knowledge

import "sort"

// Role describes one entry in the job-role catalog.
type Role struct {
	ID              string   `json:"job_id"`
	Title           string   `json:"title"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
	Keywords        []string `json:"keywords"`
}

// Roles is the job-role catalog keyed by role ID.
var Roles = map[string]Role{
	"software_engineer": {
		ID:              "software_engineer",
		Title:           "Software Engineer",
		RequiredSkills:  []string{"Python", "Java", "JavaScript", "SQL", "Git"},
		ExperienceLevel: "mid",
		Keywords:        []string{"development", "coding", "programming", "software"},
	},
	"data_scientist": {
		ID:              "data_scientist",
		Title:           "Data Scientist",
		RequiredSkills:  []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Analysis"},
		ExperienceLevel: "mid",
		Keywords:        []string{"data", "machine learning", "analytics", "modeling"},
	},
	"frontend_developer": {
		ID:              "frontend_developer",
		Title:           "Frontend Developer",
		RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "React", "Vue.js"},
		ExperienceLevel: "mid",
		Keywords:        []string{"frontend", "UI", "UX", "web development"},
	},
	"backend_developer": {
		ID:              "backend_developer",
		Title:           "Backend Developer",
		RequiredSkills:  []string{"Python", "Java", "Node.js", "SQL", "REST API"},
		ExperienceLevel: "mid",
		Keywords:        []string{"backend", "API", "server", "database"},
	},
	"full_stack_developer": {
		ID:              "full_stack_developer",
		Title:           "Full Stack Developer",
		RequiredSkills:  []string{"JavaScript", "Python", "React", "Node.js", "SQL"},
		ExperienceLevel: "senior",
		Keywords:        []string{"full stack", "end-to-end", "complete development"},
	},
	"devops_engineer": {
		ID:              "devops_engineer",
		Title:           "DevOps Engineer",
		RequiredSkills:  []string{"Docker", "Kubernetes", "CI/CD", "AWS", "Linux"},
		ExperienceLevel: "senior",
		Keywords:        []string{"devops", "infrastructure", "automation", "deployment"},
	},
	"machine_learning_engineer": {
		ID:              "machine_learning_engineer",
		Title:           "Machine Learning Engineer",
		RequiredSkills:  []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "Deep Learning"},
		ExperienceLevel: "senior",
		Keywords:        []string{"ML", "AI", "neural networks", "model training"},
	},
	"project_manager": {
		ID:              "project_manager",
		Title:           "Project Manager",
		RequiredSkills:  []string{"Project Planning", "Risk Management", "Stakeholder Management", "Agile", "Scrum"},
		ExperienceLevel: "senior",
		Keywords:        []string{"project", "planning", "execution", "delivery", "coordination"},
	},
	"product_manager": {
		ID:              "product_manager",
		Title:           "Product Manager",
		RequiredSkills:  []string{"Product Management", "Communication", "Analytical Skills", "Strategy"},
		ExperienceLevel: "senior",
		Keywords:        []string{"product", "roadmap", "stakeholders", "requirements"},
	},
	"teacher": {
		ID:              "teacher",
		Title:           "Teacher / Educator",
		RequiredSkills:  []string{"Curriculum Development", "Lesson Planning", "Classroom Management", "Teaching"},
		ExperienceLevel: "mid",
		Keywords:        []string{"teaching", "education", "training", "instruction", "students"},
	},
	"sales_representative": {
		ID:              "sales_representative",
		Title:           "Sales Representative",
		RequiredSkills:  []string{"Sales", "Lead Generation", "Client Relations", "Negotiation", "Communication"},
		ExperienceLevel: "junior",
		Keywords:        []string{"sales", "selling", "revenue", "clients", "deals"},
	},
	"account_manager": {
		ID:              "account_manager",
		Title:           "Account Manager",
		RequiredSkills:  []string{"Account Management", "Client Relations", "Communication", "Negotiation"},
		ExperienceLevel: "mid",
		Keywords:        []string{"accounts", "clients", "relationships", "retention"},
	},
	"retail_associate": {
		ID:              "retail_associate",
		Title:           "Retail Associate",
		RequiredSkills:  []string{"Customer Service", "Retail", "Sales", "Point of Sale"},
		ExperienceLevel: "junior",
		Keywords:        []string{"retail", "store", "customers", "sales", "products"},
	},
	"customer_service_rep": {
		ID:              "customer_service_rep",
		Title:           "Customer Service Representative",
		RequiredSkills:  []string{"Customer Service", "Communication", "Problem Solving", "Interpersonal Skills"},
		ExperienceLevel: "junior",
		Keywords:        []string{"customer service", "support", "clients", "inquiries"},
	},
	"nurse": {
		ID:              "nurse",
		Title:           "Nurse / Healthcare Professional",
		RequiredSkills:  []string{"Patient Care", "Clinical Skills", "Medical Terminology", "Healthcare Documentation"},
		ExperienceLevel: "mid",
		Keywords:        []string{"healthcare", "patient", "medical", "clinical", "care"},
	},
	"administrative_assistant": {
		ID:              "administrative_assistant",
		Title:           "Administrative Assistant",
		RequiredSkills:  []string{"Microsoft Office", "Data Entry", "Calendar Management", "Communication"},
		ExperienceLevel: "junior",
		Keywords:        []string{"administration", "office", "support", "coordination"},
	},
	"accountant": {
		ID:              "accountant",
		Title:           "Accountant",
		RequiredSkills:  []string{"Financial Analysis", "Bookkeeping", "Excel", "Financial Reporting"},
		ExperienceLevel: "mid",
		Keywords:        []string{"accounting", "finance", "tax", "audit", "reports"},
	},
	"hr_specialist": {
		ID:              "hr_specialist",
		Title:           "HR Specialist",
		RequiredSkills:  []string{"Recruiting", "Employee Relations", "Training and Development", "HRIS"},
		ExperienceLevel: "mid",
		Keywords:        []string{"human resources", "HR", "recruiting", "employees"},
	},
	"operations_manager": {
		ID:              "operations_manager",
		Title:           "Operations Manager",
		RequiredSkills:  []string{"Operations Management", "Process Improvement", "Team Leadership", "Logistics"},
		ExperienceLevel: "senior",
		Keywords:        []string{"operations", "logistics", "process", "efficiency"},
	},
	"marketing_specialist": {
		ID:              "marketing_specialist",
		Title:           "Marketing Specialist",
		RequiredSkills:  []string{"Digital Marketing", "Social Media Marketing", "Content Marketing", "Analytics"},
		ExperienceLevel: "mid",
		Keywords:        []string{"marketing", "campaigns", "digital", "branding"},
	},
	"business_analyst": {
		ID:              "business_analyst",
		Title:           "Business Analyst",
		RequiredSkills:  []string{"Analytical Skills", "Data Analysis", "Requirements Gathering", "Communication"},
		ExperienceLevel: "mid",
		Keywords:        []string{"business", "analysis", "requirements", "stakeholders"},
	},
	"data_analyst": {
		ID:              "data_analyst",
		Title:           "Data Analyst",
		RequiredSkills:  []string{"Python", "SQL", "Data Analysis", "Excel", "Data Visualization"},
		ExperienceLevel: "junior",
		Keywords:        []string{"analytics", "reporting", "visualization", "insights"},
	},
}

// RoleIDs returns all role IDs in ascending order for deterministic iteration.
func RoleIDs() []string {
	ids := make([]string, 0, len(Roles))
	for id := range Roles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExperienceThresholds maps career levels to the minimum years required.
var ExperienceThresholds = map[string]float64{
	"fresher":   0,
	"junior":    1,
	"mid":       3,
	"senior":    5,
	"lead":      8,
	"architect": 10,
}

// ScoringWeights holds the weights of the overall resume score.
// The ATS compatibility sub-score is reported but carries no weight.
var ScoringWeights = map[string]float64{
	"skill_relevance":       0.25,
	"experience_clarity":    0.25,
	"keyword_optimization":  0.20,
	"structure_readability": 0.20,
	"completeness":          0.10,
}

// ATSKeywordsByIndustry lists applicant-tracking keywords per industry.
var ATSKeywordsByIndustry = map[string][]string{
	"technology": {"agile", "scrum", "ci/cd", "devops", "microservices", "api", "cloud"},
	"finance":    {"risk management", "compliance", "financial analysis", "trading", "banking"},
	"healthcare": {"hipaa", "patient care", "clinical", "healthcare analytics", "ehr"},
	"marketing":  {"digital marketing", "seo", "content strategy", "analytics", "campaigns"},
	"sales":      {"lead generation", "salesforce", "revenue", "client relations", "negotiation"},
	"education":  {"curriculum", "lesson planning", "classroom management", "student outcomes"},
	"retail":     {"customer satisfaction", "merchandising", "inventory", "sales targets"},
	"hr":         {"recruitment", "employee engagement", "performance reviews", "training"},
	"operations": {"supply chain", "logistics", "process optimization", "vendor management"},
}
