// Package recommend implements the framework, stage, tool, template, and
// method recommendation engine: pure heuristic scoring over a context
// descriptor. Every function is total; sparse or malformed context degrades
// to defaults or empty results rather than failing.
package recommend

import "github.com/framepromptly/framepromptly/internal/engine"

// Confidence bounds; every reported confidence is clamped into this range.
const (
	MinConfidence = 0.1
	MaxConfidence = 1.0
)

// Complexity describes overall project complexity.
type Complexity string

// Valid project complexities.
const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Timeline describes project schedule pressure.
type Timeline string

// Valid project timelines.
const (
	TimelineTight    Timeline = "tight"
	TimelineModerate Timeline = "moderate"
	TimelineFlexible Timeline = "flexible"
)

// TeamSize describes the size of the project team.
type TeamSize string

// Valid team sizes.
const (
	TeamSolo  TeamSize = "solo"
	TeamSmall TeamSize = "small"
	TeamLarge TeamSize = "large"
)

// SkillLevel describes the user's UX experience.
type SkillLevel string

// Valid skill levels.
const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillExpert       SkillLevel = "expert"
)

// Impact estimates how much a recommendation would move the project forward.
type Impact string

// Valid impact estimates.
const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Type identifies what kind of catalog entry a recommendation targets.
type Type string

// Valid recommendation types.
const (
	TypeFramework Type = "framework"
	TypeStage     Type = "stage"
	TypeTool      Type = "tool"
	TypeTemplate  Type = "template"
	TypeMethod    Type = "method"
)

// Project describes the project fields of a recommendation context.
type Project struct {
	Domain     string     `json:"domain"`
	Complexity Complexity `json:"complexity"`
	Timeline   Timeline   `json:"timeline"`
	TeamSize   TeamSize   `json:"team_size"`
}

// History describes the user fields of a recommendation context.
type History struct {
	PreferredMethods []engine.Method `json:"preferred_methods"`
	SkillLevel       SkillLevel      `json:"skill_level"`
	PastFrameworks   []string        `json:"past_frameworks"`
}

// Context is the read-only input value object for all scoring functions.
type Context struct {
	CurrentFramework string   `json:"current_framework,omitempty"`
	CurrentStage     string   `json:"current_stage,omitempty"`
	CompletedStages  []string `json:"completed_stages,omitempty"`
	Project          *Project `json:"project,omitempty"`
	History          *History `json:"history,omitempty"`
}

// skill returns the context's skill level, empty when no history is present.
func (c Context) skill() SkillLevel {
	if c.History == nil {
		return ""
	}
	return c.History.SkillLevel
}

// timeline returns the context's timeline, empty when no project is present.
func (c Context) timeline() Timeline {
	if c.Project == nil {
		return ""
	}
	return c.Project.Timeline
}

// Recommendation is a scored, ranked suggestion. Computed fresh on each
// call; never cached or persisted by the engine.
type Recommendation struct {
	Type            Type    `json:"type"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Rationale       string  `json:"rationale"`
	Confidence      float64 `json:"confidence"`
	TargetID        string  `json:"target_id"`
	Category        string  `json:"category"`
	EstimatedImpact Impact  `json:"estimated_impact"`
}
