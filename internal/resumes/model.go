package resumes

// ResumeRecord is the canonical extracted-resume shape handed back to the UI.
// Every field is always present: strings default to "" and lists to empty
// slices so the front-end never sees null.
type ResumeRecord struct {
	Personal    Personal          `json:"personal"`
	Experiences []ExperienceEntry `json:"experiences"`
	Education   []EducationEntry  `json:"education"`
	Skills      Skills            `json:"skills"`
	Additional  Additional        `json:"additional"`
}

type Personal struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
	City        string `json:"city"`
	State       string `json:"state"`
	Summary     string `json:"summary"`
	JobTitle    string `json:"jobTitle"`
}

// ExperienceEntry.ID mirrors Type. It is a type-tag for the UI's grouped list
// rendering, not a unique key.
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

type EducationEntry struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	SchoolName   string   `json:"schoolName"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Field        string   `json:"field"`
	Degree       string   `json:"degree"`
	GPA          string   `json:"gpa"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Courses      []string `json:"courses"`
}

type Skills struct {
	TechnicalSkills []Skill         `json:"technicalSkills"`
	SoftSkills      []Skill         `json:"softSkills"`
	Certifications  []Certification `json:"certifications"`
	Languages       []Language      `json:"languages"`
	Hobbies         []string        `json:"hobbies"`
}

type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Proficiency string `json:"proficiency"`
}

type Certification struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	IssueDate      string `json:"issueDate"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	DoesNotExpire  bool   `json:"doesNotExpire"`
}

type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Additional struct {
	Publications []string `json:"publications"`
	Patents      []string `json:"patents"`
	Memberships  []string `json:"memberships"`
	Awards       []string `json:"awards"`
}
