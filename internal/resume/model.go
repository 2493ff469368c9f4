package resume

// Education entry types, fixed at creation.
const (
	EducationGraduation      = "Graduation"
	EducationHigherSecondary = "HigherSecondary"
	EducationSchooling       = "Schooling"
)

// ValidEducationType reports whether t is a recognized education type.
func ValidEducationType(t string) bool {
	switch t {
	case EducationGraduation, EducationHigherSecondary, EducationSchooling:
		return true
	}
	return false
}

// PersonalInfo is the contact header of a resume.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// Skills groups skill keywords by category.
type Skills struct {
	Languages  string `json:"languages"`
	Frameworks string `json:"frameworks"`
	Tools      string `json:"tools"`
}

// EducationEntry is one education record. Type never changes after creation.
type EducationEntry struct {
	ID             string `json:"id"`
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
	StartYear      string `json:"startYear"`
	EndYear        string `json:"endYear"`
	Score          string `json:"score"`
	Location       string `json:"location"`
	Type           string `json:"type"`
}

// ProjectEntry is one project record.
type ProjectEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// ExperienceEntry is one work experience record.
type ExperienceEntry struct {
	ID             string `json:"id"`
	Company        string `json:"company"`
	Designation    string `json:"designation"`
	Duration       string `json:"duration"`
	CurrentSalary  string `json:"currentSalary,omitempty"`
	ExpectedSalary string `json:"expectedSalary,omitempty"`
	NoticePeriod   string `json:"noticePeriod,omitempty"`
	Description    string `json:"description"`
}

// CertificationEntry is one certification record. It persists round-trip
// even though no editor step currently populates it.
type CertificationEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IssuedBy string `json:"issuedBy"`
}

// Document is a complete resume, serialized wholesale as one JSON value.
type Document struct {
	PersonalInfo   PersonalInfo         `json:"personalInfo"`
	Summary        string               `json:"summary"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	WorkExperience []ExperienceEntry    `json:"workExperience"`
	Skills         Skills               `json:"skills"`
	Certifications []CertificationEntry `json:"certifications"`
}

// EmptyDocument returns the default document a new user starts from.
func EmptyDocument() Document {
	return Document{
		Education:      []EducationEntry{},
		Projects:       []ProjectEntry{},
		WorkExperience: []ExperienceEntry{},
		Certifications: []CertificationEntry{},
	}
}

// Clone returns a deep copy so snapshots never alias live session state.
func (d Document) Clone() Document {
	out := d
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Projects = append([]ProjectEntry(nil), d.Projects...)
	out.WorkExperience = append([]ExperienceEntry(nil), d.WorkExperience...)
	out.Certifications = append([]CertificationEntry(nil), d.Certifications...)
	return out
}
