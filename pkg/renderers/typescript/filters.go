package typescript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const quoteFilterName = "tsquote"

// Quote returns s as a double-quoted TypeScript string literal. Quotes,
// backslashes, control characters and line separators are escaped; HTML
// characters are left as they are.
func Quote(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// quoteFilter exposes Quote to templates as tsquote. Missing values quote as
// an empty string.
func quoteFilter(input any, _ any) (any, error) {
	if input == nil {
		return Quote("")
	}
	return Quote(fmt.Sprint(input))
}
