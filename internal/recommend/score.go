package recommend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/framepromptly/framepromptly/internal/catalog"
	"github.com/framepromptly/framepromptly/internal/engine"
)

func clamp(confidence float64) float64 {
	if confidence < MinConfidence {
		return MinConfidence
	}
	if confidence > MaxConfidence {
		return MaxConfidence
	}
	return confidence
}

func sortByConfidence(recs []Recommendation) []Recommendation {
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	return recs
}

// Frameworks recommends UX frameworks for a project context. Without
// project details it falls back to two fixed defaults; otherwise three
// independent rules each contribute at most one suggestion.
func Frameworks(ctx Context) []Recommendation {
	if ctx.Project == nil {
		return []Recommendation{
			{
				Type:            TypeFramework,
				Title:           "Start with Design Thinking",
				Description:     "A versatile human-centered framework suitable for most projects.",
				Rationale:       "No project details provided; Design Thinking is the most broadly applicable starting point.",
				Confidence:      clamp(0.8),
				TargetID:        "design-thinking",
				Category:        "framework",
				EstimatedImpact: ImpactHigh,
			},
			{
				Type:            TypeFramework,
				Title:           "Consider Double Diamond",
				Description:     "Structured divergent and convergent exploration of problem and solution.",
				Rationale:       "A strong general-purpose alternative when the problem space is unclear.",
				Confidence:      clamp(0.7),
				TargetID:        "double-diamond",
				Category:        "framework",
				EstimatedImpact: ImpactMedium,
			},
		}
	}

	recs := []Recommendation{}
	domain := strings.ToLower(ctx.Project.Domain)

	if ctx.Project.Timeline == TimelineTight {
		recs = append(recs, Recommendation{
			Type:            TypeFramework,
			Title:           "Run a Google Design Sprint",
			Description:     "Compress discovery, ideation, and validation into five days.",
			Rationale:       "A tight timeline favors the sprint's fixed five-day cadence.",
			Confidence:      clamp(0.9),
			TargetID:        "google-design-sprint",
			Category:        "framework",
			EstimatedImpact: ImpactHigh,
		})
	}

	if ctx.Project.Complexity == ComplexityComplex || strings.Contains(domain, "enterprise") {
		recs = append(recs, Recommendation{
			Type:            TypeFramework,
			Title:           "Adopt Double Diamond",
			Description:     "Separate problem exploration from solution development.",
			Rationale:       "Complex or enterprise work benefits from an explicit problem-definition diamond.",
			Confidence:      clamp(0.85),
			TargetID:        "double-diamond",
			Category:        "framework",
			EstimatedImpact: ImpactHigh,
		})
	}

	if ctx.Project.TeamSize == TeamLarge || strings.Contains(domain, "agile") {
		recs = append(recs, Recommendation{
			Type:            TypeFramework,
			Title:           "Integrate Agile UX",
			Description:     "Embed design activity directly into iterative delivery.",
			Rationale:       "Large or agile teams need design work that fits the delivery cadence.",
			Confidence:      clamp(0.8),
			TargetID:        "agile-ux",
			Category:        "framework",
			EstimatedImpact: ImpactMedium,
		})
	}

	return sortByConfidence(recs)
}

// NextStage recommends eligible next stages of a framework: stages not yet
// completed whose full chain of lower-order predecessors is completed.
func NextStage(framework catalog.Framework, ctx Context) []Recommendation {
	completed := map[string]bool{}
	for _, id := range ctx.CompletedStages {
		completed[id] = true
	}

	recs := []Recommendation{}
	for _, stage := range framework.Stages {
		if completed[stage.ID] {
			continue
		}
		if !prerequisitesMet(framework, stage, completed) {
			continue
		}

		confidence := 0.7
		rationale := fmt.Sprintf("All prerequisite stages of %s are complete.", stage.Name)

		if ctx.skill() == SkillBeginner && stage.Order == 1 {
			confidence += 0.2
			rationale = fmt.Sprintf("%s is the natural entry point for newcomers to %s.", stage.Name, framework.Name)
		}
		if len(stage.InputRequirements) > len(ctx.CompletedStages) {
			confidence -= 0.3
			rationale = fmt.Sprintf("%s expects inputs you may not have produced yet.", stage.Name)
		}

		recs = append(recs, Recommendation{
			Type:            TypeStage,
			Title:           fmt.Sprintf("Move to %s", stage.Name),
			Description:     fmt.Sprintf("The %s stage of %s.", stage.Name, framework.Name),
			Rationale:       rationale,
			Confidence:      clamp(confidence),
			TargetID:        stage.ID,
			Category:        "stage",
			EstimatedImpact: ImpactHigh,
		})
	}

	return sortByConfidence(recs)
}

// prerequisitesMet reports whether every stage ordered before the candidate
// is in the completed set. The stage list is a strict linear chain.
func prerequisitesMet(framework catalog.Framework, candidate catalog.Stage, completed map[string]bool) bool {
	for _, stage := range framework.Stages {
		if stage.Order < candidate.Order && !completed[stage.ID] {
			return false
		}
	}
	return true
}

// Tools recommends tools from a framework stage, scored by skill alignment
// and timeline fit. Tools scoring at or below 0.3 are excluded.
func Tools(stage catalog.Stage, ctx Context) []Recommendation {
	recs := []Recommendation{}
	skill := ctx.skill()
	timeline := ctx.timeline()

	for _, tool := range stage.Tools {
		confidence := 0.6
		rationale := fmt.Sprintf("%s is a standard tool in the %s stage.", tool.Name, stage.Name)

		switch {
		case skill == SkillBeginner && tool.Difficulty == catalog.DifficultyBeginner:
			confidence += 0.3
			rationale = fmt.Sprintf("%s matches your current skill level.", tool.Name)
		case skill == SkillExpert && tool.Difficulty == catalog.DifficultyAdvanced:
			confidence += 0.2
			rationale = fmt.Sprintf("%s takes full advantage of your expertise.", tool.Name)
		case skill == SkillBeginner && tool.Difficulty == catalog.DifficultyAdvanced:
			confidence -= 0.4
			rationale = fmt.Sprintf("%s has a steep learning curve.", tool.Name)
		}

		if timeline == TimelineTight {
			estimate := strings.ToLower(tool.EstimatedTime)
			if strings.Contains(estimate, "hour") {
				confidence += 0.2
			}
			if strings.Contains(estimate, "week") {
				confidence -= 0.3
			}
		}

		confidence = clamp(confidence)
		if confidence <= 0.3 {
			continue
		}

		recs = append(recs, Recommendation{
			Type:            TypeTool,
			Title:           fmt.Sprintf("Use %s", tool.Name),
			Description:     fmt.Sprintf("Estimated effort: %s.", tool.EstimatedTime),
			Rationale:       rationale,
			Confidence:      confidence,
			TargetID:        tool.ID,
			Category:        tool.Category,
			EstimatedImpact: ImpactMedium,
		})
	}

	return sortByConfidence(recs)
}

// Templates recommends prompt templates relevant to a tool, scored by tag
// overlap with the tool id and by the user's preferred methods. Templates
// scoring at or below 0.4 are excluded.
func Templates(toolID string, templates []engine.Template, ctx Context) []Recommendation {
	segment, _, _ := strings.Cut(strings.ToLower(toolID), "-")

	preferred := map[engine.Method]bool{}
	if ctx.History != nil {
		for _, m := range ctx.History.PreferredMethods {
			preferred[m] = true
		}
	}

	recs := []Recommendation{}
	for _, template := range templates {
		confidence := 0.4
		rationale := fmt.Sprintf("%s is a general-purpose template.", template.Name)

		if segment != "" && tagOverlap(template.Tags, segment) {
			confidence += 0.3
			rationale = fmt.Sprintf("%s is tagged for %s work.", template.Name, segment)
		}
		if preferred[template.Method] {
			confidence += 0.2
			rationale = fmt.Sprintf("%s uses your preferred %s method.", template.Name, template.Method)
		}

		confidence = clamp(confidence)
		if confidence <= 0.4 {
			continue
		}

		recs = append(recs, Recommendation{
			Type:            TypeTemplate,
			Title:           fmt.Sprintf("Try the %s template", template.Name),
			Description:     template.Description,
			Rationale:       rationale,
			Confidence:      confidence,
			TargetID:        template.ID,
			Category:        template.Category,
			EstimatedImpact: ImpactMedium,
		})
	}

	return sortByConfidence(recs)
}

// tagOverlap reports whether any tag matches the tool id segment as a
// substring in either direction.
func tagOverlap(tags []string, segment string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, segment) || strings.Contains(segment, lower) {
			return true
		}
	}
	return false
}

// Methods recommends all six prompting methods with skill-adjusted fixed
// confidences. Always returns exactly six entries.
func Methods(ctx Context) []Recommendation {
	skill := ctx.skill()

	score := func(method engine.Method) (float64, string) {
		switch method {
		case engine.MethodFewShot:
			if skill == SkillBeginner {
				return 0.9, "Concrete examples make few-shot prompting the easiest method to start with."
			}
			return 0.7, "Examples reliably steer output structure and tone."
		case engine.MethodChainOfThought:
			if skill == SkillExpert {
				return 0.8, "Explicit reasoning scaffolds reward experienced prompt authors."
			}
			return 0.6, "Step-wise reasoning improves answers to analytical tasks."
		case engine.MethodZeroShot:
			if skill == SkillExpert {
				return 0.7, "Experts can phrase tasks precisely enough to skip examples."
			}
			return 0.4, "Works without setup but output quality varies with phrasing."
		case engine.MethodInstructionTuning:
			return 0.8, "Structured instruction lists produce consistent, well-organized output."
		case engine.MethodRolePlaying:
			return 0.6, "A persona frame focuses the response on domain conventions."
		default: // step-by-step
			return 0.7, "A labeled execution scaffold keeps longer tasks on track."
		}
	}

	recs := make([]Recommendation, 0, len(engine.Methods()))
	for _, method := range engine.Methods() {
		confidence, rationale := score(method)
		recs = append(recs, Recommendation{
			Type:            TypeMethod,
			Title:           fmt.Sprintf("Use the %s method", method),
			Description:     fmt.Sprintf("Structure the prompt with the %s skeleton.", method),
			Rationale:       rationale,
			Confidence:      clamp(confidence),
			TargetID:        string(method),
			Category:        "method",
			EstimatedImpact: ImpactMedium,
		})
	}

	return sortByConfidence(recs)
}

// FromArtifacts recommends a next move based on the free-text content of
// produced artifacts. An empty artifact list yields a single fixed
// start-with-research suggestion.
func FromArtifacts(artifacts []string) []Recommendation {
	if len(artifacts) == 0 {
		return []Recommendation{
			{
				Type:            TypeStage,
				Title:           "Start with user research",
				Description:     "Begin by understanding your users before designing solutions.",
				Rationale:       "No artifacts exist yet; research findings anchor every later stage.",
				Confidence:      clamp(0.9),
				TargetID:        "empathize",
				Category:        "stage",
				EstimatedImpact: ImpactHigh,
			},
		}
	}

	content := strings.ToLower(strings.Join(artifacts, " "))
	recs := []Recommendation{}

	if strings.Contains(content, "user") || strings.Contains(content, "research") {
		recs = append(recs, Recommendation{
			Type:            TypeStage,
			Title:           "Move to prototyping",
			Description:     "Translate your research insights into tangible concepts.",
			Rationale:       "Research artifacts exist; prototypes are the fastest way to test what you learned.",
			Confidence:      clamp(0.85),
			TargetID:        "prototype",
			Category:        "stage",
			EstimatedImpact: ImpactHigh,
		})
	}

	if strings.Contains(content, "prototype") || strings.Contains(content, "design") {
		recs = append(recs, Recommendation{
			Type:            TypeStage,
			Title:           "Move to testing",
			Description:     "Validate your design decisions with real users.",
			Rationale:       "Design artifacts exist; usability testing will confirm or challenge them.",
			Confidence:      clamp(0.8),
			TargetID:        "test",
			Category:        "stage",
			EstimatedImpact: ImpactHigh,
		})
	}

	return sortByConfidence(recs)
}
