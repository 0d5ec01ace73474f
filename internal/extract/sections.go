package extract

import (
	"strings"

	"github.com/goliatone/go-cvgen/internal/latex"
)

// Section names a known résumé section. The declaration order is the fixed
// boundary order used to split the document.
type Section int

const (
	SectionEducation Section = iota
	SectionExperience
	SectionVolunteering
	SectionProjects
	SectionSkills
)

var sectionOrder = []Section{
	SectionEducation,
	SectionExperience,
	SectionVolunteering,
	SectionProjects,
	SectionSkills,
}

func (s Section) String() string {
	switch s {
	case SectionEducation:
		return "Education"
	case SectionExperience:
		return "Experience"
	case SectionVolunteering:
		return "Volunteering"
	case SectionProjects:
		return "Projects"
	case SectionSkills:
		return "Skills"
	}
	return "Unknown"
}

// matches reports whether a \section title opens s. Skills accepts any title
// starting with "Skills" ("Skills And Competences").
func (s Section) matches(title string) bool {
	title = strings.TrimSpace(title)
	if s == SectionSkills {
		return strings.HasPrefix(strings.ToLower(title), "skills")
	}
	return strings.EqualFold(title, s.String())
}

type heading struct {
	title string
	start int
	body  int
}

func headings(doc string) []heading {
	var out []heading
	from := 0
	for {
		args, at, end, ok := latex.FindArgs(doc, "section", from, 1)
		if !ok {
			return out
		}
		out = append(out, heading{title: args[0], start: at, body: end})
		from = end
	}
}

// splitSections maps each known section to the text strictly between its
// opening marker and the earliest later marker of a section that follows it
// in the fixed order. Sections whose marker is absent are left out.
func splitSections(doc string) map[Section]string {
	hs := headings(doc)

	first := make(map[Section]heading, len(sectionOrder))
	for _, sec := range sectionOrder {
		for _, h := range hs {
			if sec.matches(h.title) {
				first[sec] = h
				break
			}
		}
	}

	docEnd := len(doc)
	if idx := strings.LastIndex(doc, `\end{document}`); idx >= 0 {
		docEnd = idx
	}

	out := make(map[Section]string, len(first))
	for i, sec := range sectionOrder {
		open, ok := first[sec]
		if !ok {
			continue
		}
		end := docEnd
		for _, later := range sectionOrder[i+1:] {
			for _, h := range hs {
				if h.start >= open.body && later.matches(h.title) {
					if h.start < end {
						end = h.start
					}
					break
				}
			}
		}
		if end < open.body {
			end = open.body
		}
		out[sec] = doc[open.body:end]
	}
	return out
}

// preamble is the text before the first \section, where contact details live.
func preamble(doc string) string {
	hs := headings(doc)
	if len(hs) == 0 {
		return doc
	}
	return doc[:hs[0].start]
}
