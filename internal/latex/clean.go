package latex

import (
	"strings"
)

// LineBreakSeparator replaces the \\ line-break escape in free text.
const LineBreakSeparator = "&"

// emphasis wrappers whose argument is kept as plain text.
var emphasis = []string{
	"textbf", "textit", "emph", "underline", "textsc", "texttt", "textnormal", "text", "mbox",
}

// layout directives dropped together with their argument.
var layout = []string{"hspace", "vspace"}

// argument-less layout tokens.
var layoutTokens = []string{"hfill", "centering", "noindent", "newline"}

var unescaper = strings.NewReplacer(
	`\&`, "&",
	`\%`, "%",
	`\$`, "$",
	`\#`, "#",
	`\_`, "_",
	`\{`, "{",
	`\}`, "}",
)

// CleanText normalises a free-text field: line-break escapes become a visible
// separator, emphasis markup is unwrapped (nested groups included), links keep
// their label, layout-only directives disappear, escaped specials are restored
// and whitespace is collapsed and trimmed.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\\`, LineBreakSeparator)
	s = dropSizedGroups(s, "footnotesize")
	s = replaceCommand(s, "href", 2, func(args []string) string { return args[1] })
	for _, name := range emphasis {
		s = Unwrap(s, name)
	}
	for _, name := range layout {
		s = replaceCommand(s, name, 1, func([]string) string { return " " })
	}
	for _, name := range layoutTokens {
		s = dropToken(s, name)
	}
	s = unescaper.Replace(s)
	return CollapseSpace(s)
}

// CollapseSpace replaces every whitespace run with one space and trims.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Unwrap replaces every \name{X} with X, including nested occurrences.
func Unwrap(s, name string) string {
	return replaceCommand(s, name, 1, func(args []string) string { return args[0] })
}

func replaceCommand(s, name string, n int, fn func(args []string) string) string {
	if !strings.Contains(s, `\`+name) {
		return s
	}
	var b strings.Builder
	pos := 0
	for {
		at := FindCommand(s, name, pos)
		if at < 0 {
			break
		}
		after := at + 1 + len(name)
		args, end, ok := Args(s, after, n)
		if !ok {
			b.WriteString(s[pos:after])
			pos = after
			continue
		}
		for i := range args {
			args[i] = replaceCommand(args[i], name, n, fn)
		}
		b.WriteString(s[pos:at])
		b.WriteString(fn(args))
		pos = end
	}
	b.WriteString(s[pos:])
	return b.String()
}

// dropSizedGroups removes whole {\size ...} groups.
func dropSizedGroups(s, size string) string {
	marker := `{\` + size
	for {
		at := strings.Index(s, marker)
		if at < 0 {
			return s
		}
		_, end, ok := ReadGroup(s, at)
		if !ok {
			return s
		}
		s = s[:at] + " " + s[end:]
	}
}

func dropToken(s, name string) string {
	for {
		at := FindCommand(s, name, 0)
		if at < 0 {
			return s
		}
		s = s[:at] + " " + s[at+1+len(name):]
	}
}
