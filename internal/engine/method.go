// Package engine implements the prompt construction pipeline: a fixed
// registry of prompting method skeletons, placeholder extraction and
// substitution, and template variable validation. Every operation is a pure
// function over its inputs.
package engine

import (
	"encoding/json"
	"slices"
)

// Method represents a prompt engineering method that determines the
// structural skeleton of a generated prompt.
type Method string

// Valid prompting methods.
const (
	MethodZeroShot          Method = "zero-shot"
	MethodFewShot           Method = "few-shot"
	MethodChainOfThought    Method = "chain-of-thought"
	MethodInstructionTuning Method = "instruction-tuning"
	MethodRolePlaying       Method = "role-playing"
	MethodStepByStep        Method = "step-by-step"
)

var methods = []Method{
	MethodZeroShot,
	MethodFewShot,
	MethodChainOfThought,
	MethodInstructionTuning,
	MethodRolePlaying,
	MethodStepByStep,
}

// Methods returns the list of valid prompting methods in declaration order.
func Methods() []Method {
	return methods
}

// UnmarshalJSON validates that the decoded string is a known method value.
func (m *Method) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Method(raw)
	if !slices.Contains(methods, v) {
		return ErrUnknownMethod
	}
	*m = v
	return nil
}

// ParseMethod validates a string as a known prompting method.
// Returns ErrUnknownMethod if the value is not recognized.
func ParseMethod(s string) (Method, error) {
	v := Method(s)
	if !slices.Contains(methods, v) {
		return "", ErrUnknownMethod
	}
	return v, nil
}
