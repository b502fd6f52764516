package domain

// StructuredResume is the sectioned view of a resume used to prefill the
// details editor. Fields the source text never provides stay empty.
type StructuredResume struct {
	Contact    ContactInfo       `json:"contact"`
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Projects   []ProjectEntry    `json:"projects"`
}

type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type ExperienceEntry struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type ProjectEntry struct {
	Name         string `json:"name"`
	Technologies string `json:"technologies"`
	Description  string `json:"description"`
}

// IsEmpty reports whether extraction produced nothing worth keeping, which
// sends callers to the local section parser instead.
func (s *StructuredResume) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Summary == "" &&
		len(s.Experience) == 0 &&
		len(s.Education) == 0 &&
		len(s.Projects) == 0 &&
		s.Contact == (ContactInfo{})
}
