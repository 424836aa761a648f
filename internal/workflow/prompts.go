package workflow

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ComposePrompt builds the invocation prompt for a workflow stage by
// combining the stage instructions, the immutable response specification,
// and the JSON-serialized request payload.
func ComposePrompt(stage Stage, payload any) (string, error) {
	instructions, err := Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := Spec(stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize %s payload: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nRequest payload:\n\n")
	sb.Write(payloadJSON)

	return sb.String(), nil
}
