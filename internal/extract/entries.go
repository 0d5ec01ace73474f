package extract

import (
	"strings"

	"github.com/goliatone/go-cvgen/internal/latex"
)

const (
	entryEnv = "twocolentry"
	endEntry = `\end{twocolentry}`
)

// detail list environments, in lookup order.
var listEnvs = []string{"highlights", "itemize"}

// entrySpan is the raw text of one entry: from its start marker to just before
// the next one (or the section end).
type entrySpan struct {
	// header is the balanced first argument of the entry marker.
	header string
	// head runs from the header to \end{twocolentry}.
	head string
	// rest runs from the header to the end of the span.
	rest string
}

func scanEntries(section string) []entrySpan {
	begins := latex.Begins(section, entryEnv)
	spans := make([]entrySpan, 0, len(begins))
	for i, b := range begins {
		end := len(section)
		if i+1 < len(begins) {
			end = begins[i+1].Start
		}
		raw := section[b.Body:end]

		var span entrySpan
		header, next, ok := latex.ReadGroup(raw, 0)
		if ok {
			span.header = header
			raw = raw[next:]
		}
		span.rest = raw
		span.head = raw
		if idx := strings.Index(raw, endEntry); idx >= 0 {
			span.head = raw[:idx]
		}
		spans = append(spans, span)
	}
	return spans
}

// bold returns the first \textbf argument of the head region and the text
// that follows it. Without a bold group the whole head follows.
func (e entrySpan) bold() (string, string, bool) {
	args, _, end, ok := latex.FindArgs(e.head, "textbf", 0, 1)
	if !ok {
		return "", e.head, false
	}
	return args[0], e.head[end:], true
}

// period is the cleaned header group.
func (e entrySpan) period() string {
	return latex.CleanText(e.header)
}

// details harvests the cleaned \item texts of the first detail list in the
// span. Items that clean to nothing are skipped.
func (e entrySpan) details() []string {
	out := []string{}
	for _, env := range listEnvs {
		body, ok := latex.Environment(e.rest, env)
		if !ok {
			continue
		}
		for _, item := range latex.Items(body) {
			if text := latex.CleanText(item); text != "" {
				out = append(out, text)
			}
		}
		break
	}
	return out
}

// secondaryLine returns the field after a bold label: a leading comma is
// dropped and the text runs to the first newline, \\ line break or command.
// Escaped specials such as \& stay part of the field.
func secondaryLine(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	s = strings.TrimPrefix(s, ",")
	s = strings.TrimLeft(s, " \t")

	end := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			end = i
			break
		}
		if s[i] == '\\' && i+1 < len(s) {
			next := s[i+1]
			if next == '\\' || isLetter(next) {
				end = i
				break
			}
			i++
		}
	}
	return latex.CleanText(s[:end])
}

// splitLocation splits "Company, City" on the first comma. ok is false when
// there is no comma or nothing follows it.
func splitLocation(field string) (string, string, bool) {
	before, after, found := strings.Cut(field, ",")
	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)
	if !found || after == "" {
		return before, "", false
	}
	return before, after, true
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
