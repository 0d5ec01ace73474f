// Package latex implements the small subset of LaTeX scanning needed to read
// résumé sources: comment stripping, balanced brace groups, command arguments,
// environment bodies, list items and free-text cleaning. It is not a LaTeX
// parser; anything outside that subset is passed through as text.
package latex

import (
	"strings"
)

// StripComments drops every line whose first non-blank character is '%'.
// Inline comments after content are kept because '%' also appears escaped
// inside text.
func StripComments(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// ReadGroup reads a balanced {...} group starting at s[i], skipping leading
// whitespace. It returns the inner text and the index just past the closing
// brace. Nesting depth is unbounded; escaped braces (\{ and \}) do not count.
func ReadGroup(s string, i int) (string, int, bool) {
	j := skipSpace(s, i)
	if j >= len(s) || s[j] != '{' {
		return "", i, false
	}
	depth := 0
	for k := j; k < len(s); k++ {
		switch s[k] {
		case '\\':
			k++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[j+1 : k], k + 1, true
			}
		}
	}
	return "", i, false
}

// Args reads n consecutive brace groups starting at s[i]. A leading star and
// one optional [...] argument are skipped.
func Args(s string, i, n int) ([]string, int, bool) {
	j := skipSpace(s, i)
	if j < len(s) && s[j] == '*' {
		j++
	}
	j = skipSpace(s, j)
	if j < len(s) && s[j] == '[' {
		if end := strings.IndexByte(s[j:], ']'); end >= 0 {
			j += end + 1
		}
	}

	args := make([]string, 0, n)
	for len(args) < n {
		arg, next, ok := ReadGroup(s, j)
		if !ok {
			return nil, i, false
		}
		args = append(args, arg)
		j = next
	}
	return args, j, true
}

// FindCommand returns the index of the first \name at or after from, or -1.
// Longer command names sharing the prefix and escaped backslashes are not
// matched.
func FindCommand(s, name string, from int) int {
	needle := `\` + name
	for from >= 0 && from <= len(s) {
		idx := strings.Index(s[from:], needle)
		if idx < 0 {
			return -1
		}
		pos := from + idx
		end := pos + len(needle)
		if (end >= len(s) || !isLetter(s[end])) && !escaped(s, pos) {
			return pos
		}
		from = pos + 1
	}
	return -1
}

// FindArgs locates the first \name at or after from that carries n brace
// arguments. It returns the arguments, the command start and the index just
// past the last argument.
func FindArgs(s, name string, from, n int) ([]string, int, int, bool) {
	for {
		at := FindCommand(s, name, from)
		if at < 0 {
			return nil, -1, -1, false
		}
		args, end, ok := Args(s, at+1+len(name), n)
		if ok {
			return args, at, end, true
		}
		from = at + 1
	}
}

// Begin marks one \begin{name} occurrence: Start is the backslash, Body the
// first byte after the marker.
type Begin struct {
	Start int
	Body  int
}

// Begins lists every \begin{env} in s in document order.
func Begins(s, env string) []Begin {
	var out []Begin
	from := 0
	for {
		args, at, end, ok := FindArgs(s, "begin", from, 1)
		if !ok {
			return out
		}
		if strings.TrimSpace(args[0]) == env {
			out = append(out, Begin{Start: at, Body: end})
		}
		from = end
	}
}

// Environment returns the body of the first \begin{env}...\end{env} in s.
func Environment(s, env string) (string, bool) {
	begins := Begins(s, env)
	if len(begins) == 0 {
		return "", false
	}
	body := s[begins[0].Body:]
	end := strings.Index(body, `\end{`+env+`}`)
	if end < 0 {
		return "", false
	}
	return body[:end], true
}

// Items splits a list body on \item and returns the raw text of each item.
// Text before the first \item is ignored. An item may span several lines.
func Items(body string) []string {
	var starts []int
	for from := 0; ; {
		at := FindCommand(body, "item", from)
		if at < 0 {
			break
		}
		starts = append(starts, at)
		from = at + len(`\item`)
	}

	items := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		items = append(items, body[start+len(`\item`):end])
	}
	return items
}

// TrimUnbalanced removes trailing closing braces that have no opening partner,
// which appear when a single-line match cuts through an enclosing group.
func TrimUnbalanced(s string) string {
	s = strings.TrimSpace(s)
	for strings.HasSuffix(s, "}") && strings.Count(s, "}") > strings.Count(s, "{") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "}"))
	}
	return s
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func escaped(s string, pos int) bool {
	n := 0
	for k := pos - 1; k >= 0 && s[k] == '\\'; k-- {
		n++
	}
	return n%2 == 1
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
