package typescript

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-cvgen/pkg/augment"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

const (
	// ShortDescriptionLimit is the rune budget of a project's short
	// description before the ellipsis marker.
	ShortDescriptionLimit = 150
	ellipsis              = "..."

	categoryLanguages  = "Programming Languages"
	categoryFrameworks = "Frameworks/Libraries"
	categoryTools      = "Tools"
	categoryGeneral    = "General"
)

var (
	idSeparatorRe = regexp.MustCompile(`[^a-z0-9]+`)
	lower         = cases.Lower(language.Und)
)

// ProjectID derives a stable identifier from a project title: lower-cased,
// every non-alphanumeric run replaced by "-", leading and trailing dashes
// trimmed.
func ProjectID(title string) string {
	id := idSeparatorRe.ReplaceAllString(lower.String(title), "-")
	return strings.Trim(id, "-")
}

// ShortDescription cuts description to ShortDescriptionLimit runes and
// appends "...". The cut ignores word boundaries and the marker is always
// appended.
func ShortDescription(description string) string {
	runes := []rune(description)
	if len(runes) > ShortDescriptionLimit {
		runes = runes[:ShortDescriptionLimit]
	}
	return string(runes) + ellipsis
}

type skillView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

type experienceView struct {
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
	Icon             string   `json:"icon"`
}

type educationView struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Period      string   `json:"period"`
	Details     []string `json:"details"`
	Icon        string   `json:"icon"`
}

type volunteeringView struct {
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Description  []string `json:"description"`
	Icon         string   `json:"icon"`
}

type certificationView struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Icon   string `json:"icon"`
}

type projectView struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Technologies     []string `json:"technologies"`
	ImageURL         string   `json:"imageUrl"`
	DataAIHint       string   `json:"dataAiHint"`
	RepoURL          string   `json:"repoUrl"`
}

type socialView struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// view is the template context. Field names follow the generated module.
type view struct {
	Imports        []string            `json:"imports"`
	Name           string              `json:"name"`
	Title          string              `json:"title"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Location       string              `json:"location"`
	ShortIntro     string              `json:"shortIntro"`
	Summary        string              `json:"summary"`
	Skills         []skillView         `json:"skills"`
	Experience     []experienceView    `json:"experience"`
	Education      []educationView     `json:"education"`
	Volunteering   []volunteeringView  `json:"volunteering"`
	Certifications []certificationView `json:"certifications"`
	Projects       []projectView       `json:"projects"`
	CVPath         string              `json:"cvPath"`
	Socials        []socialView        `json:"socials"`
}

// buildView merges the record with the augmentation layer. clean is applied
// to every free-text value taken from the record or the layer.
func buildView(record *resume.Record, layer *augment.Layer, summary string, clean func(string) string) view {
	icons := layer.Icons
	v := view{
		Name:       clean(record.Name),
		Title:      clean(layer.Title),
		Email:      clean(record.Email),
		Phone:      clean(record.Phone),
		Location:   clean(record.Location),
		ShortIntro: clean(layer.ShortIntro),
		Summary:    clean(summary),
		CVPath:     layer.CVPath,
	}

	v.Skills = make([]skillView, 0, len(record.Skills.Languages)+len(record.Skills.Frameworks)+len(record.Skills.Tools)+len(layer.GeneralSkills))
	appendSkills := func(names []string, category, icon string) {
		for _, name := range names {
			v.Skills = append(v.Skills, skillView{Name: clean(name), Category: category, Icon: icon})
		}
	}
	appendSkills(record.Skills.Languages, categoryLanguages, icons.Language)
	appendSkills(record.Skills.Frameworks, categoryFrameworks, icons.Framework)
	appendSkills(record.Skills.Tools, categoryTools, icons.Tool)
	for _, skill := range layer.GeneralSkills {
		v.Skills = append(v.Skills, skillView{Name: clean(skill.Name), Category: categoryGeneral, Icon: skill.Icon})
	}

	v.Experience = make([]experienceView, 0, len(record.Experience))
	for _, entry := range record.Experience {
		v.Experience = append(v.Experience, experienceView{
			Role:             clean(entry.Role),
			Company:          clean(entry.Company),
			Location:         clean(entry.Location),
			Period:           clean(entry.Period),
			Responsibilities: cleanAll(entry.Responsibilities, clean),
			Icon:             icons.Experience,
		})
	}

	v.Education = make([]educationView, 0, len(record.Education))
	for _, entry := range record.Education {
		v.Education = append(v.Education, educationView{
			Degree:      clean(entry.Degree),
			Institution: clean(entry.Institution),
			Period:      clean(entry.Period),
			Details:     cleanAll(entry.Details, clean),
			Icon:        icons.Education,
		})
	}

	v.Volunteering = make([]volunteeringView, 0, len(record.Volunteering))
	for _, entry := range record.Volunteering {
		v.Volunteering = append(v.Volunteering, volunteeringView{
			Role:         clean(entry.Role),
			Organization: clean(entry.Organization),
			Period:       clean(entry.Period),
			Description:  cleanAll(entry.Description, clean),
			Icon:         icons.Volunteering,
		})
	}

	v.Certifications = make([]certificationView, 0, len(layer.Certifications))
	for _, cert := range layer.Certifications {
		v.Certifications = append(v.Certifications, certificationView{
			Name:   clean(cert.Name),
			Issuer: clean(cert.Issuer),
			Date:   clean(cert.Date),
			Icon:   layer.CertificationIcon(cert),
		})
	}

	v.Projects = make([]projectView, 0, len(record.Projects))
	for _, project := range record.Projects {
		title := clean(project.Title)
		long := strings.Join(cleanAll(project.Description, clean), " ")
		v.Projects = append(v.Projects, projectView{
			ID:               ProjectID(title),
			Title:            title,
			ShortDescription: ShortDescription(long),
			LongDescription:  long,
			Technologies:     cleanAll(project.Technologies, clean),
			ImageURL:         layer.ImageURL,
			DataAIHint:       layer.DataAIHint,
			RepoURL:          project.URL,
		})
	}

	v.Socials = []socialView{
		{Name: "LinkedIn", URL: record.LinkedIn, Icon: icons.LinkedIn},
		{Name: "GitHub", URL: record.GitHub, Icon: icons.GitHub},
		{Name: "Email", URL: "mailto:" + record.Email, Icon: icons.Email},
	}

	v.Imports = layer.IconNames(augment.Usage{
		Experience:   len(v.Experience) > 0,
		Education:    len(v.Education) > 0,
		Volunteering: len(v.Volunteering) > 0,
		Languages:    len(record.Skills.Languages) > 0,
		Frameworks:   len(record.Skills.Frameworks) > 0,
		Tools:        len(record.Skills.Tools) > 0,
	})
	return v
}

func cleanAll(values []string, clean func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, clean(value))
	}
	return out
}
