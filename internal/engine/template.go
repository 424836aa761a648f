package engine

import (
	"encoding/json"
	"slices"
)

// Template is the value shape of a prompt template consumed by the build and
// validation pipeline. Persisted templates convert to this shape at the
// module boundary.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	Method      Method     `json:"method"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Variables   []Variable `json:"variables"`
}

// Variable is a named, typed, optionally required slot whose value is
// substituted into a template placeholder. A variable may exist without
// being referenced in the body, and a placeholder may exist without a
// declared variable; ExtractVariables reconciles the two.
type Variable struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         VariableType  `json:"type"`
	Required     bool          `json:"required"`
	Description  string        `json:"description,omitempty"`
	DefaultValue string        `json:"default_value,omitempty"`
	Options      []string      `json:"options,omitempty"`
	Validation   *VariableRule `json:"validation,omitempty"`
}

// VariableRule holds optional value constraints checked by ValidateVariables.
type VariableRule struct {
	MinLength *int   `json:"min_length,omitempty"`
	MaxLength *int   `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// VariableType represents the input control a variable renders as.
type VariableType string

// Valid variable types.
const (
	VariableText        VariableType = "text"
	VariableTextarea    VariableType = "textarea"
	VariableNumber      VariableType = "number"
	VariableSelect      VariableType = "select"
	VariableMultiselect VariableType = "multiselect"
)

var variableTypes = []VariableType{
	VariableText,
	VariableTextarea,
	VariableNumber,
	VariableSelect,
	VariableMultiselect,
}

// VariableTypes returns the list of valid variable types.
func VariableTypes() []VariableType {
	return variableTypes
}

// UnmarshalJSON validates that the decoded string is a known variable type.
func (t *VariableType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := VariableType(raw)
	if !slices.Contains(variableTypes, v) {
		return ErrInvalidVariableType
	}
	*t = v
	return nil
}
