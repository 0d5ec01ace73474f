package extract

import (
	"regexp"
	"strings"
)

var (
	techTokenRe = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9+#.]+`)
	plainWordRe = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// InferTechnologies collects capitalised identifier tokens from the
// description, first occurrence wins, at most limit entries. The lines are
// joined with a space and scanned as one text, so line breaks never change
// the result. A plain Title-case word opening a sentence ("Built",
// "Developed") is ordinary prose and is skipped; mixed-case or
// symbol-bearing tokens ("FastAPI", "C++") always count. The result is a
// heuristic and can both miss lower-case names and pick up capitalised prose.
func InferTechnologies(lines []string, limit int) []string {
	text := strings.Join(lines, " ")
	out := []string{}
	seen := make(map[string]struct{})
	for _, loc := range techTokenRe.FindAllStringIndex(text, -1) {
		token := strings.TrimRight(text[loc[0]:loc[1]], ".")
		if len(token) < 2 {
			continue
		}
		if sentenceStart(text, loc[0]) && plainWordRe.MatchString(token) {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// sentenceStart reports whether the token at offset at opens the text or
// follows sentence punctuation.
func sentenceStart(text string, at int) bool {
	before := strings.TrimRight(text[:at], " \t")
	if before == "" {
		return true
	}
	if len(before) == at {
		return false
	}
	return strings.ContainsAny(before[len(before)-1:], ".!?:;")
}
