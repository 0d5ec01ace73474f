package extract

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-cvgen/internal/latex"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

var (
	languagesRe  = regexp.MustCompile(`(?:\\textbf\{)?Languages:\}?[ \t]*([^\n]*)`)
	frameworksRe = regexp.MustCompile(`(?:\\textbf\{)?Frameworks(?:/Libraries)?:\}?[ \t]*([^\n]*)`)
	toolsRe      = regexp.MustCompile(`(?:\\textbf\{)?Tools(?:[ \t]*(?:\\\\)?[ \t]*\\?&[ \t]*Platforms)?:\}?[ \t]*([^\n]*)`)
)

func extractSkills(section string) resume.Skills {
	return resume.Skills{
		Languages:  skillList(languagesRe, section),
		Frameworks: skillList(frameworksRe, section),
		Tools:      skillList(toolsRe, section),
	}
}

// skillList splits the labelled line on commas. Items are trimmed but never
// filtered, so blanks and duplicates survive.
func skillList(re *regexp.Regexp, section string) []string {
	m := re.FindStringSubmatch(section)
	if m == nil {
		return []string{}
	}
	value := m[1]
	if idx := strings.Index(value, `\\`); idx >= 0 {
		value = value[:idx]
	}
	value = latex.CleanText(value)

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
