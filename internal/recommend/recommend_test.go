package recommend_test

import (
	"math"
	"slices"
	"testing"

	"github.com/framepromptly/framepromptly/internal/catalog"
	"github.com/framepromptly/framepromptly/internal/engine"
	"github.com/framepromptly/framepromptly/internal/recommend"
)

func designThinking(t *testing.T) catalog.Framework {
	t.Helper()
	framework, err := catalog.Find("design-thinking")
	if err != nil {
		t.Fatalf("catalog lookup failed: %v", err)
	}
	return framework
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func checkInvariants(t *testing.T, recs []recommend.Recommendation) {
	t.Helper()
	for i, rec := range recs {
		if rec.Confidence < recommend.MinConfidence || rec.Confidence > recommend.MaxConfidence {
			t.Errorf("confidence %f outside [%.1f, %.1f] for %s", rec.Confidence, recommend.MinConfidence, recommend.MaxConfidence, rec.TargetID)
		}
		if i > 0 && rec.Confidence > recs[i-1].Confidence {
			t.Errorf("recommendations not sorted descending at index %d", i)
		}
	}
}

func TestFrameworksDefaults(t *testing.T) {
	recs := recommend.Frameworks(recommend.Context{})
	checkInvariants(t, recs)

	if len(recs) != 2 {
		t.Fatalf("expected 2 default recommendations, got %d", len(recs))
	}
	if recs[0].TargetID != "design-thinking" || recs[0].Confidence != 0.8 {
		t.Errorf("expected design-thinking at 0.8, got %s at %f", recs[0].TargetID, recs[0].Confidence)
	}
	if recs[1].TargetID != "double-diamond" || recs[1].Confidence != 0.7 {
		t.Errorf("expected double-diamond at 0.7, got %s at %f", recs[1].TargetID, recs[1].Confidence)
	}
}

func TestFrameworksRules(t *testing.T) {
	tests := []struct {
		name     string
		project  recommend.Project
		expected []string
	}{
		{
			name:     "tight timeline suggests sprint",
			project:  recommend.Project{Timeline: recommend.TimelineTight},
			expected: []string{"google-design-sprint"},
		},
		{
			name:     "complex project suggests double diamond",
			project:  recommend.Project{Complexity: recommend.ComplexityComplex},
			expected: []string{"double-diamond"},
		},
		{
			name:     "enterprise domain suggests double diamond",
			project:  recommend.Project{Domain: "Enterprise SaaS"},
			expected: []string{"double-diamond"},
		},
		{
			name:     "large team suggests agile ux",
			project:  recommend.Project{TeamSize: recommend.TeamLarge},
			expected: []string{"agile-ux"},
		},
		{
			name: "all rules fire independently",
			project: recommend.Project{
				Timeline:   recommend.TimelineTight,
				Complexity: recommend.ComplexityComplex,
				TeamSize:   recommend.TeamLarge,
			},
			expected: []string{"google-design-sprint", "double-diamond", "agile-ux"},
		},
		{
			name:     "no rule fires",
			project:  recommend.Project{Complexity: recommend.ComplexitySimple},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := tt.project
			recs := recommend.Frameworks(recommend.Context{Project: &project})
			checkInvariants(t, recs)

			targets := make([]string, len(recs))
			for i, rec := range recs {
				targets[i] = rec.TargetID
			}
			if !slices.Equal(targets, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, targets)
			}
		})
	}
}

func TestNextStagePrerequisiteMonotonicity(t *testing.T) {
	framework := designThinking(t)

	tests := []struct {
		name      string
		completed []string
		expected  []string
	}{
		{
			name:      "nothing completed offers only first stage",
			completed: nil,
			expected:  []string{"empathize"},
		},
		{
			name:      "first stage completed offers second",
			completed: []string{"empathize"},
			expected:  []string{"define"},
		},
		{
			name:      "gap in chain blocks later stages",
			completed: []string{"empathize", "ideate"},
			expected:  []string{"define"},
		},
		{
			name:      "everything completed offers nothing",
			completed: []string{"empathize", "define", "ideate", "prototype", "test"},
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := recommend.NextStage(framework, recommend.Context{CompletedStages: tt.completed})
			checkInvariants(t, recs)

			targets := make([]string, len(recs))
			for i, rec := range recs {
				targets[i] = rec.TargetID
			}
			if !slices.Equal(targets, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, targets)
			}
		})
	}
}

func TestNextStageBeginnerBoost(t *testing.T) {
	framework := designThinking(t)
	ctx := recommend.Context{
		History: &recommend.History{SkillLevel: recommend.SkillBeginner},
	}

	recs := recommend.NextStage(framework, ctx)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if !approx(recs[0].Confidence, 0.9) {
		t.Errorf("expected beginner boost to 0.9 on first stage, got %f", recs[0].Confidence)
	}
}

func TestNextStageInputRequirementPenalty(t *testing.T) {
	framework := designThinking(t)
	recs := recommend.NextStage(framework, recommend.Context{CompletedStages: []string{"empathize", "define", "ideate", "prototype"}})
	checkInvariants(t, recs)

	if len(recs) != 1 || recs[0].TargetID != "test" {
		t.Fatalf("expected only the test stage, got %v", recs)
	}
	// test declares 3 input requirements against 4 completed stages: no penalty
	if recs[0].Confidence != 0.7 {
		t.Errorf("expected 0.7, got %f", recs[0].Confidence)
	}

	short := recommend.NextStage(framework, recommend.Context{CompletedStages: []string{"empathize"}})
	if len(short) != 1 || short[0].TargetID != "define" {
		t.Fatalf("expected only the define stage, got %v", short)
	}
	if short[0].Confidence != 0.7 {
		t.Errorf("expected no penalty for define after empathize, got %f", short[0].Confidence)
	}
}

func TestToolsThreshold(t *testing.T) {
	framework := designThinking(t)
	var empathize catalog.Stage
	for _, stage := range framework.Stages {
		if stage.ID == "empathize" {
			empathize = stage
		}
	}

	ctx := recommend.Context{
		Project: &recommend.Project{Timeline: recommend.TimelineTight},
		History: &recommend.History{SkillLevel: recommend.SkillBeginner},
	}

	recs := recommend.Tools(empathize, ctx)
	checkInvariants(t, recs)

	for _, rec := range recs {
		if rec.Confidence <= 0.3 {
			t.Errorf("tool %s returned with confidence %f below threshold", rec.TargetID, rec.Confidence)
		}
		// beginner + advanced + week-long estimate must be filtered out
		if rec.TargetID == "field-study" {
			t.Error("field-study should be excluded for a beginner on a tight timeline")
		}
	}

	found := false
	for _, rec := range recs {
		if rec.TargetID == "user-interviews" {
			found = true
			// 0.6 + 0.3 skill match + 0.2 hour estimate, clamped to 1.0
			if !approx(rec.Confidence, 1.0) {
				t.Errorf("expected user-interviews clamped to 1.0, got %f", rec.Confidence)
			}
		}
	}
	if !found {
		t.Error("expected user-interviews to be recommended")
	}
}

func TestTemplates(t *testing.T) {
	pool := []engine.Template{
		{
			ID:     "interview-guide",
			Name:   "Interview Guide",
			Method: engine.MethodFewShot,
			Tags:   []string{"user", "research"},
		},
		{
			ID:     "generic-brief",
			Name:   "Generic Brief",
			Method: engine.MethodZeroShot,
			Tags:   []string{"misc"},
		},
	}

	ctx := recommend.Context{
		History: &recommend.History{PreferredMethods: []engine.Method{engine.MethodFewShot}},
	}

	recs := recommend.Templates("user-interviews", pool, ctx)
	checkInvariants(t, recs)

	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation above threshold, got %d", len(recs))
	}
	if recs[0].TargetID != "interview-guide" {
		t.Errorf("expected interview-guide, got %s", recs[0].TargetID)
	}
	// 0.4 base + 0.3 tag overlap + 0.2 preferred method
	if !approx(recs[0].Confidence, 0.9) {
		t.Errorf("expected 0.9, got %f", recs[0].Confidence)
	}
}

func TestMethodsCompleteness(t *testing.T) {
	contexts := []recommend.Context{
		{},
		{History: &recommend.History{SkillLevel: recommend.SkillBeginner}},
		{History: &recommend.History{SkillLevel: recommend.SkillExpert}},
	}

	for _, ctx := range contexts {
		recs := recommend.Methods(ctx)
		checkInvariants(t, recs)

		if len(recs) != 6 {
			t.Fatalf("expected exactly 6 method recommendations, got %d", len(recs))
		}

		seen := map[string]bool{}
		for _, rec := range recs {
			seen[rec.TargetID] = true
		}
		for _, method := range engine.Methods() {
			if !seen[string(method)] {
				t.Errorf("missing method %s", method)
			}
		}
	}
}

func TestMethodsSkillAdjustment(t *testing.T) {
	byTarget := func(recs []recommend.Recommendation) map[string]float64 {
		out := map[string]float64{}
		for _, rec := range recs {
			out[rec.TargetID] = rec.Confidence
		}
		return out
	}

	beginner := byTarget(recommend.Methods(recommend.Context{
		History: &recommend.History{SkillLevel: recommend.SkillBeginner},
	}))
	expert := byTarget(recommend.Methods(recommend.Context{
		History: &recommend.History{SkillLevel: recommend.SkillExpert},
	}))

	if beginner["few-shot"] != 0.9 || expert["few-shot"] != 0.7 {
		t.Errorf("few-shot: expected 0.9 beginner / 0.7 expert, got %f / %f", beginner["few-shot"], expert["few-shot"])
	}
	if expert["chain-of-thought"] != 0.8 || beginner["chain-of-thought"] != 0.6 {
		t.Errorf("chain-of-thought: expected 0.8 expert / 0.6 beginner, got %f / %f", expert["chain-of-thought"], beginner["chain-of-thought"])
	}
	if expert["zero-shot"] != 0.7 || beginner["zero-shot"] != 0.4 {
		t.Errorf("zero-shot: expected 0.7 expert / 0.4 beginner, got %f / %f", expert["zero-shot"], beginner["zero-shot"])
	}
	if beginner["instruction-tuning"] != 0.8 || expert["instruction-tuning"] != 0.8 {
		t.Error("instruction-tuning must be 0.8 regardless of skill")
	}
}

func TestFromArtifacts(t *testing.T) {
	t.Run("empty returns fixed research start", func(t *testing.T) {
		recs := recommend.FromArtifacts([]string{})
		if len(recs) != 1 {
			t.Fatalf("expected exactly 1 recommendation, got %d", len(recs))
		}
		if recs[0].Confidence != 0.9 || recs[0].TargetID != "empathize" {
			t.Errorf("expected empathize at 0.9, got %s at %f", recs[0].TargetID, recs[0].Confidence)
		}
	})

	t.Run("research artifacts suggest prototyping", func(t *testing.T) {
		recs := recommend.FromArtifacts([]string{"User interview transcripts"})
		checkInvariants(t, recs)
		if len(recs) != 1 || recs[0].TargetID != "prototype" || recs[0].Confidence != 0.85 {
			t.Errorf("expected prototype at 0.85, got %v", recs)
		}
	})

	t.Run("design artifacts suggest testing", func(t *testing.T) {
		recs := recommend.FromArtifacts([]string{"Prototype screens v2"})
		checkInvariants(t, recs)
		if len(recs) != 1 || recs[0].TargetID != "test" || recs[0].Confidence != 0.8 {
			t.Errorf("expected test at 0.8, got %v", recs)
		}
	})

	t.Run("both substrings return both suggestions sorted", func(t *testing.T) {
		recs := recommend.FromArtifacts([]string{"User research synthesis", "Design explorations"})
		checkInvariants(t, recs)
		if len(recs) != 2 || recs[0].TargetID != "prototype" || recs[1].TargetID != "test" {
			t.Errorf("expected prototype then test, got %v", recs)
		}
	})

	t.Run("unrelated artifacts return nothing", func(t *testing.T) {
		recs := recommend.FromArtifacts([]string{"budget spreadsheet"})
		if len(recs) != 0 {
			t.Errorf("expected no recommendations, got %v", recs)
		}
	})
}
