package extract

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-cvgen/internal/latex"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

type scope int

const (
	// scopePreamble limits a rule to the text before the first \section so
	// project links further down are not mistaken for profile links.
	scopePreamble scope = iota
	scopeDocument
)

// fieldRule extracts one scalar contact field. Rules are independent: a
// rule that does not match leaves its field at the empty default.
type fieldRule struct {
	field  string
	scope  scope
	match  func(text string) (string, bool)
	assign func(record *resume.Record, value string)
}

var (
	nameRe     = regexp.MustCompile(`\\fontsize\{[^}]*\}\{[^}]*\}\\selectfont\s+([^\n]+)`)
	emailRe    = regexp.MustCompile(`\\href(?:WithoutArrow)?\{mailto:([^}]+)\}`)
	phoneRe    = regexp.MustCompile(`\\href(?:WithoutArrow)?\{tel:[^}]*\}\{([^}]+)\}`)
	linkedinRe = regexp.MustCompile(`\\href(?:WithoutArrow)?\{(https?://(?:www\.)?linkedin\.com/in/[^}]+)\}`)
	githubRe   = regexp.MustCompile(`\\href(?:WithoutArrow)?\{(https?://(?:www\.)?github\.com/[^}]+)\}`)
	gpaRe      = regexp.MustCompile(`GPA:\s*([\d.]+/[\d.]+)`)
)

var contactRules = []fieldRule{
	{
		field: "name",
		scope: scopePreamble,
		match: cleaned(capture(nameRe), latex.TrimUnbalanced),
		assign: func(r *resume.Record, v string) {
			r.Name = v
		},
	},
	{
		field: "location",
		scope: scopePreamble,
		match: cleaned(locationBox),
		assign: func(r *resume.Record, v string) {
			r.Location = v
		},
	},
	{
		field: "email",
		scope: scopePreamble,
		match: capture(emailRe),
		assign: func(r *resume.Record, v string) {
			r.Email = v
		},
	},
	{
		field: "phone",
		scope: scopePreamble,
		match: cleaned(capture(phoneRe)),
		assign: func(r *resume.Record, v string) {
			r.Phone = v
		},
	},
	{
		field: "linkedin",
		scope: scopePreamble,
		match: capture(linkedinRe),
		assign: func(r *resume.Record, v string) {
			r.LinkedIn = v
		},
	},
	{
		field: "github",
		scope: scopePreamble,
		match: capture(githubRe),
		assign: func(r *resume.Record, v string) {
			r.GitHub = v
		},
	},
	{
		field: "gpa",
		scope: scopeDocument,
		match: capture(gpaRe),
		assign: func(r *resume.Record, v string) {
			r.GPA = v
		},
	},
}

func applyRules(record *resume.Record, rules []fieldRule, head, doc string) {
	for _, rule := range rules {
		text := doc
		if rule.scope == scopePreamble {
			text = head
		}
		if value, ok := rule.match(text); ok {
			rule.assign(record, value)
		}
	}
}

func capture(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}
}

// cleaned post-processes a match with extra steps and then CleanText.
func cleaned(match func(string) (string, bool), steps ...func(string) string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		value, ok := match(text)
		if !ok {
			return "", false
		}
		for _, step := range steps {
			value = step(value)
		}
		value = latex.CleanText(value)
		return value, value != ""
	}
}

// locationBox finds the first \mbox holding plain "City, Country" text.
func locationBox(text string) (string, bool) {
	from := 0
	for {
		args, _, end, ok := latex.FindArgs(text, "mbox", from, 1)
		if !ok {
			return "", false
		}
		if strings.Contains(args[0], ",") && !strings.Contains(args[0], `\`) {
			return args[0], true
		}
		from = end
	}
}
