package extract

import (
	"strings"

	"github.com/goliatone/go-cvgen/internal/latex"
	pkgextract "github.com/goliatone/go-cvgen/pkg/extract"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

// Extractor implements pkgextract.Extractor over the LaTeX subset used by
// two-column résumé templates.
type Extractor struct {
	options pkgextract.Options
}

// Ensure the implementation satisfies the public interface.
var _ pkgextract.Extractor = (*Extractor)(nil)

// New constructs an Extractor with the given options.
func New(options pkgextract.Options) pkgextract.Extractor {
	if options.TechnologyLimit <= 0 {
		options.TechnologyLimit = pkgextract.DefaultTechnologyLimit
	}
	return &Extractor{options: options}
}

// Extract builds a Parsed Record from document text. It never fails; fields
// and sections that are not found keep their empty defaults.
func (e *Extractor) Extract(document string) *resume.Record {
	record := resume.New()
	doc := latex.StripComments(document)

	applyRules(record, contactRules, preamble(doc), doc)

	sections := splitSections(doc)
	if text, ok := sections[SectionEducation]; ok {
		record.Education = e.education(text)
	}
	if text, ok := sections[SectionExperience]; ok {
		record.Experience = e.experience(text)
	}
	if text, ok := sections[SectionVolunteering]; ok {
		record.Volunteering = e.volunteering(text)
	}
	if text, ok := sections[SectionProjects]; ok {
		record.Projects = e.projects(text)
	}
	if text, ok := sections[SectionSkills]; ok {
		record.Skills = extractSkills(text)
	}
	return record
}

func (e *Extractor) education(section string) []resume.EducationEntry {
	spans := scanEntries(section)
	out := make([]resume.EducationEntry, 0, len(spans))
	for _, span := range spans {
		institution, rest, _ := span.bold()
		out = append(out, resume.EducationEntry{
			Institution: latex.CleanText(institution),
			Degree:      secondaryLine(rest),
			Period:      span.period(),
			Details:     span.details(),
		})
	}
	return out
}

func (e *Extractor) experience(section string) []resume.ExperienceEntry {
	spans := scanEntries(section)
	out := make([]resume.ExperienceEntry, 0, len(spans))
	for _, span := range spans {
		role, rest, _ := span.bold()
		company, location, ok := splitLocation(secondaryLine(rest))
		if !ok {
			location = e.options.DefaultLocation
		}
		out = append(out, resume.ExperienceEntry{
			Role:             latex.CleanText(role),
			Company:          company,
			Location:         location,
			Period:           span.period(),
			Responsibilities: span.details(),
		})
	}
	return out
}

func (e *Extractor) volunteering(section string) []resume.VolunteeringEntry {
	spans := scanEntries(section)
	out := make([]resume.VolunteeringEntry, 0, len(spans))
	for _, span := range spans {
		role, rest, _ := span.bold()
		organization := secondaryLine(rest)
		if args, _, _, ok := latex.FindArgs(rest, "text", 0, 1); ok {
			organization = latex.CleanText(args[0])
		}
		out = append(out, resume.VolunteeringEntry{
			Role:         strings.TrimSpace(strings.TrimSuffix(latex.CleanText(role), ",")),
			Organization: organization,
			Period:       span.period(),
			Description:  span.details(),
		})
	}
	return out
}

func (e *Extractor) projects(section string) []resume.ProjectEntry {
	spans := scanEntries(section)
	out := make([]resume.ProjectEntry, 0, len(spans))
	for _, span := range spans {
		title, _, _ := span.bold()
		url := ""
		if args, _, _, ok := latex.FindArgs(span.header, "href", 0, 1); ok {
			url = strings.TrimSpace(args[0])
		}
		description := span.details()
		out = append(out, resume.ProjectEntry{
			Title:        latex.CleanText(title),
			URL:          url,
			Description:  description,
			Technologies: InferTechnologies(description, e.options.TechnologyLimit),
		})
	}
	return out
}
