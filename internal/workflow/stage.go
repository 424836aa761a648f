// Package workflow implements the AI invocation pipeline: a state graph
// that composes an invocation prompt, calls the chat agent, and parses the
// structured response for the enhance and respond operations.
package workflow

import (
	"encoding/json"
	"slices"
)

// Stage identifies an invocation workflow stage.
type Stage string

// Valid workflow stages.
const (
	StageEnhance Stage = "enhance"
	StageRespond Stage = "respond"
)

var stages = []Stage{
	StageEnhance,
	StageRespond,
}

// Stages returns the list of valid workflow stages.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}
