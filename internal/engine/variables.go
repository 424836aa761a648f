package engine

import (
	"regexp"
	"strings"
)

// placeholderPattern matches a single-brace placeholder and captures its
// name. Whitespace inside the braces is tolerated and trimmed from the
// captured name. Unbalanced braces simply fail to match.
var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ExtractVariables scans text for placeholder tokens and returns the
// distinct variable names referenced, in first-occurrence order.
func ExtractVariables(text string) []string {
	names := []string{}
	seen := map[string]bool{}

	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}
