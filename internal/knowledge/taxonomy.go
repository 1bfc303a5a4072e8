// Package knowledge holds the static lookup tables the analysis engine is
// built on: the skill taxonomy, the job-role catalog, experience thresholds
// and scoring weights. Tables are initialized once and never mutated.
package knowledge

// Category is one named bucket of canonical skill names.
type Category struct {
	Name   string
	Skills []string
}

// Categories lists every skill category in priority order. Order matters:
// category lookup returns the first category containing a skill name.
var Categories = []Category{
	{Name: "programming_languages", Skills: []string{
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
		"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "SQL", "HTML", "CSS",
	}},
	{Name: "frameworks_libraries", Skills: []string{
		"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "Node.js",
		"Express.js", "FastAPI", "TensorFlow", "PyTorch", "Keras", "Scikit-learn",
		"Pandas", "NumPy", "Matplotlib", "Bootstrap", "Tailwind CSS", "jQuery",
	}},
	{Name: "tools_platforms", Skills: []string{
		"Git", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Jenkins", "CI/CD",
		"Linux", "Windows", "macOS", "MongoDB", "PostgreSQL", "MySQL", "Redis",
		"Elasticsearch", "RabbitMQ", "Kafka", "GraphQL", "REST API", "Microservices",
	}},
	{Name: "data_science", Skills: []string{
		"Machine Learning", "Deep Learning", "Natural Language Processing", "Computer Vision",
		"Data Analysis", "Data Visualization", "Statistics", "A/B Testing",
		"Predictive Modeling", "Feature Engineering", "Model Deployment",
	}},
	{Name: "devops_cloud", Skills: []string{
		"DevOps", "Cloud Architecture", "Infrastructure as Code", "Terraform",
		"Ansible", "CI/CD Pipelines", "Monitoring", "Logging", "Security",
		"Container Orchestration", "Service Mesh",
	}},
	{Name: "soft_skills", Skills: []string{
		"Communication", "Teamwork", "Leadership", "Problem Solving", "Critical Thinking",
		"Time Management", "Adaptability", "Creativity", "Analytical Skills",
		"Project Management", "Collaboration", "Presentation", "Negotiation",
		"Interpersonal Skills", "Customer Service", "Organizational Skills",
		"Attention to Detail", "Multitasking", "Decision Making", "Conflict Resolution",
	}},
	{Name: "education_skills", Skills: []string{
		"Curriculum Development", "Lesson Planning", "Classroom Management", "Teaching",
		"Education Technology", "Student Assessment", "Instructional Design", "Training",
		"Tutoring", "Academic Advising", "Course Development", "E-Learning",
		"Special Education", "Child Development", "Pedagogy",
	}},
	{Name: "sales_marketing_skills", Skills: []string{
		"Sales", "Lead Generation", "Client Relations", "Negotiation", "Business Development",
		"Account Management", "Market Research", "Digital Marketing", "SEO", "SEM",
		"Social Media Marketing", "Content Marketing", "Email Marketing", "Brand Management",
		"Public Relations", "Advertising", "CRM", "Salesforce", "Revenue Growth",
		"Customer Acquisition", "Partner Relations", "Cold Calling", "Prospecting",
	}},
	{Name: "retail_customer_service", Skills: []string{
		"Customer Service", "Retail", "Point of Sale", "Inventory Management",
		"Cash Handling", "Store Operations", "Merchandising", "Stock Management",
		"Clienteling", "Product Knowledge", "Visual Merchandising", "Order Fulfillment",
		"Returns Processing", "Payment Processing", "Upselling", "Cross-selling",
	}},
	{Name: "healthcare_skills", Skills: []string{
		"Patient Care", "Clinical Skills", "Medical Terminology", "Healthcare Documentation",
		"HIPAA Compliance", "Vital Signs", "Phlebotomy", "EKG", "CPR Certified",
		"Electronic Health Records", "Patient Advocacy", "Medical Billing", "Insurance Claims",
		"Health Education", "Wellness Coaching",
	}},
	{Name: "administrative_skills", Skills: []string{
		"Microsoft Office", "Google Workspace", "Data Entry", "Record Keeping",
		"Document Management", "Calendar Management", "Travel Coordination", "Meeting Coordination",
		"Office Administration", "Executive Assistant", "Administrative Support",
		"Correspondence", "Filing Systems", "Budgeting", "Expense Reporting",
	}},
	{Name: "finance_accounting_skills", Skills: []string{
		"Financial Analysis", "Budgeting", "Forecasting", "Financial Reporting",
		"Bookkeeping", "Accounts Payable", "Accounts Receivable", "Tax Preparation",
		"Audit", "Compliance", "Risk Management", "Investment Analysis",
		"Excel", "QuickBooks", "SAP", "Oracle Financials", "Payroll Processing",
	}},
	{Name: "hr_skills", Skills: []string{
		"Recruiting", "Talent Acquisition", "Employee Relations", "Performance Management",
		"Training and Development", "HRIS", "Benefits Administration", "Onboarding",
		"Offboarding", "Succession Planning", "Workforce Planning", "HR Analytics",
		"Employee Engagement", "Policy Development", "Labor Law Compliance",
	}},
	{Name: "project_management_skills", Skills: []string{
		"Project Planning", "Project Execution", "Risk Management", "Stakeholder Management",
		"Resource Allocation", "Budget Management", "Schedule Management", "Agile", "Scrum",
		"Waterfall", "Kanban", "JIRA", "Confluence", "Microsoft Project",
		"Earned Value Management", "Quality Assurance", "Vendor Management",
	}},
	{Name: "operations_logistics", Skills: []string{
		"Supply Chain Management", "Logistics", "Inventory Control", "Warehouse Management",
		"Transportation", "Procurement", "Vendor Management", "Quality Control",
		"Process Improvement", "Lean Six Sigma", "Forecasting", "Demand Planning",
		"Distribution", "Order Management", "Freight Forwarding",
	}},
}

// CategoryNames returns every category name in declared order.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, cat := range Categories {
		names = append(names, cat.Name)
	}
	return names
}

// CategorySkills returns the canonical skill list for a category name,
// or nil when the category does not exist.
func CategorySkills(name string) []string {
	for _, cat := range Categories {
		if cat.Name == name {
			return cat.Skills
		}
	}
	return nil
}
