package resume

// DefaultExperienceLocation is used when an experience entry carries no
// trailing location field.
const DefaultExperienceLocation = "Remote"

// EducationEntry is one degree in the Education section.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Period      string   `json:"period"`
	Details     []string `json:"details"`
}

// ExperienceEntry is one position in the Experience section.
type ExperienceEntry struct {
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

// VolunteeringEntry is one role in the Volunteering section.
type VolunteeringEntry struct {
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Description  []string `json:"description"`
}

// ProjectEntry is one project in the Projects section. Technologies is not
// read from the document: it is inferred from Description by a
// capitalised-identifier heuristic and may contain false positives or miss
// lower-case names.
type ProjectEntry struct {
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
}

// Skills holds the three comma-split skill lists in document order.
// Duplicates and empty items are retained.
type Skills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
}

// Record is the Parsed Record.
type Record struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	GPA      string `json:"gpa"`

	Education    []EducationEntry    `json:"education"`
	Experience   []ExperienceEntry   `json:"experience"`
	Volunteering []VolunteeringEntry `json:"volunteering"`
	Projects     []ProjectEntry      `json:"projects"`
	Skills       Skills              `json:"skills"`
}

// New returns an empty, fully shaped record.
func New() *Record {
	return &Record{
		Education:    []EducationEntry{},
		Experience:   []ExperienceEntry{},
		Volunteering: []VolunteeringEntry{},
		Projects:     []ProjectEntry{},
		Skills: Skills{
			Languages:  []string{},
			Frameworks: []string{},
			Tools:      []string{},
		},
	}
}

// Counts reports the number of entries per section, keyed by section name.
// Drivers use it for logging.
func (r *Record) Counts() map[string]int {
	if r == nil {
		return map[string]int{}
	}
	return map[string]int{
		"education":    len(r.Education),
		"experience":   len(r.Experience),
		"volunteering": len(r.Volunteering),
		"projects":     len(r.Projects),
		"skills":       len(r.Skills.Languages) + len(r.Skills.Frameworks) + len(r.Skills.Tools),
	}
}
