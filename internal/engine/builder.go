package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// Persona fallback values used when the role-playing slots are not supplied.
const (
	defaultRole      = "UX Designer"
	defaultExpertise = "user experience design"
	defaultStyle     = "analytical and user-focused"
)

var blankLineRuns = regexp.MustCompile(`\n{3,}`)

// BuildConfig carries the inputs of a prompt build.
type BuildConfig struct {
	Method        Method         `json:"method"`
	Template      Template       `json:"template"`
	Variables     map[string]any `json:"variables"`
	Context       string         `json:"context"`
	FrameworkType string         `json:"framework_type"`
	Examples      []string       `json:"examples"`
}

// BuildPrompt composes the final prompt text for a build configuration:
// resolves the method skeleton, fills the substitution map, substitutes
// every placeholder in a single non-recursive pass, strips unresolved
// placeholders and blank-line artifacts, and trims the result. The only
// error source is an unrecognized method.
func BuildPrompt(cfg BuildConfig) (string, error) {
	skeleton, err := Skeleton(cfg.Method)
	if err != nil {
		return "", err
	}

	systemPrompt := cfg.Template.Body
	if persona, ok := FrameworkSystemPrompt(cfg.FrameworkType); ok {
		// A recognized framework replaces the template body outright.
		systemPrompt = persona
	}

	subs := map[string]string{
		"systemPrompt": systemPrompt,
		"task":         stringify(cfg.Variables["task"]),
		"context":      cfg.Context,
		"userInput":    stringify(cfg.Variables["userInput"]),
		"examples":     strings.Join(cfg.Examples, "\n\n"),
		"instructions": instructionList(cfg.Template),
		"role":         fallback(cfg.Variables["role"], defaultRole),
		"expertise":    fallback(cfg.Variables["expertise"], defaultExpertise),
		"style":        fallback(cfg.Variables["style"], defaultStyle),
	}

	// Caller variables merge last so matching slot names take precedence
	// over the computed defaults.
	for key, value := range cfg.Variables {
		subs[key] = stringify(value)
	}

	// One pass over the skeleton only. Placeholders introduced by
	// substituted values stay literal, and tokens with no entry in the
	// map are stripped.
	result := placeholderPattern.ReplaceAllStringFunc(skeleton, func(token string) string {
		name := strings.TrimSpace(token[1 : len(token)-1])
		return subs[name]
	})

	result = blankLineRuns.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result), nil
}

// instructionList generates the bulleted guidance block for the
// instruction-tuning skeleton: four fixed lines plus the template
// description when present.
func instructionList(t Template) string {
	lines := []string{
		fmt.Sprintf("Focus on %s best practices", t.Category),
		"Provide actionable and specific guidance",
		"Include relevant examples where helpful",
		"Structure your response clearly",
	}
	if t.Description != "" {
		lines = append(lines, t.Description)
	}

	for i, line := range lines {
		lines[i] = "- " + line
	}
	return strings.Join(lines, "\n")
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

func fallback(value any, def string) string {
	s := stringify(value)
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
