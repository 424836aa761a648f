package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// Result reports a template variable validation outcome. Failures are data,
// never errors.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateVariables checks supplied values against a template's declared
// variables. A required variable with a missing or blank value records a
// single "is required" error and skips further checks; otherwise any
// declared length or pattern constraints are checked independently, with
// one error recorded per violated rule.
func ValidateVariables(template Template, values map[string]any) Result {
	errs := []string{}

	for _, v := range template.Variables {
		raw, ok := values[v.ID]
		text := stringify(raw)

		if v.Required && (!ok || strings.TrimSpace(text) == "") {
			errs = append(errs, fmt.Sprintf("%s is required", v.Name))
			continue
		}

		if !ok || v.Validation == nil {
			continue
		}

		rule := v.Validation
		if rule.MinLength != nil && len(text) < *rule.MinLength {
			errs = append(errs, fmt.Sprintf("%s must be at least %d characters", v.Name, *rule.MinLength))
		}
		if rule.MaxLength != nil && len(text) > *rule.MaxLength {
			errs = append(errs, fmt.Sprintf("%s must be at most %d characters", v.Name, *rule.MaxLength))
		}
		if rule.Pattern != "" {
			if re, err := regexp.Compile(rule.Pattern); err == nil && !re.MatchString(text) {
				errs = append(errs, fmt.Sprintf("%s does not match the required format", v.Name))
			}
		}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
