// Package catalog holds the static UX framework reference data: each
// supported framework, its ordered stages, and the tools available per
// stage. The catalog is immutable and read-only after process start.
package catalog

import (
	"encoding/json"
	"slices"
)

// Framework describes a supported UX framework and its ordered stages.
type Framework struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Stages      []Stage `json:"stages"`
}

// Stage describes one step of a framework. Order values are 1-based and
// strictly increasing within a framework; every stage with a lower order is
// a prerequisite of this one.
type Stage struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Order             int      `json:"order"`
	InputRequirements []string `json:"input_requirements"`
	ExpectedOutputs   []string `json:"expected_outputs"`
	Tools             []Tool   `json:"tools"`
}

// Tool describes a UX tool available within a framework stage.
type Tool struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime string     `json:"estimated_time"`
	Artifacts     []string   `json:"artifacts"`
}

// Difficulty represents the skill level a tool expects of its user.
type Difficulty string

// Valid tool difficulties.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Difficulties returns the list of valid tool difficulties.
func Difficulties() []Difficulty {
	return difficulties
}

// UnmarshalJSON validates that the decoded string is a known difficulty value.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Difficulty(raw)
	if !slices.Contains(difficulties, v) {
		return ErrInvalidDifficulty
	}
	*d = v
	return nil
}

// Frameworks returns every framework in the catalog.
func Frameworks() []Framework {
	return frameworks
}

// Find returns the framework with the given id.
// Returns ErrNotFound if the id is not in the catalog.
func Find(id string) (Framework, error) {
	for _, f := range frameworks {
		if f.ID == id {
			return f, nil
		}
	}
	return Framework{}, ErrNotFound
}

// FindStage returns the named stage of a framework.
// Returns ErrNotFound for an unknown framework, ErrStageNotFound for an
// unknown stage within a known framework.
func FindStage(frameworkID, stageID string) (Stage, error) {
	f, err := Find(frameworkID)
	if err != nil {
		return Stage{}, err
	}
	for _, s := range f.Stages {
		if s.ID == stageID {
			return s, nil
		}
	}
	return Stage{}, ErrStageNotFound
}

// StageTools returns the tools available in the named stage of a framework.
func StageTools(frameworkID, stageID string) ([]Tool, error) {
	s, err := FindStage(frameworkID, stageID)
	if err != nil {
		return nil, err
	}
	return s.Tools, nil
}
