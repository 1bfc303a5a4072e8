package parser

// SourceFormat identifies the origin of the raw text.
type SourceFormat string

const (
	FormatPDF  SourceFormat = "pdf"
	FormatDOCX SourceFormat = "docx"
	FormatTXT  SourceFormat = "txt"
)

// Experience is one work-history entry.
type Experience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
	Details     string `json:"details"`
}

// Certification is one certificate or license entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Expiry       string `json:"expiry,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// Project is one portfolio entry. Technologies are pulled from the
// description independently of the skill taxonomy scan.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	Role         string   `json:"role,omitempty"`
}

// Resume is the complete structured record extracted from one document.
type Resume struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary"`

	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	Tools           []string `json:"tools"`

	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`

	Languages []string `json:"languages"`
	Interests []string `json:"interests"`

	RawText      string       `json:"-"`
	SourceFormat SourceFormat `json:"file_type"`
}
