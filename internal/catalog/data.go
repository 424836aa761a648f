package catalog

var frameworks = []Framework{
	{
		ID:          "design-thinking",
		Name:        "Design Thinking",
		Description: "Human-centered innovation through empathy, experimentation, and iteration.",
		Stages: []Stage{
			{
				ID:              "empathize",
				Name:            "Empathize",
				Order:           1,
				ExpectedOutputs: []string{"interview notes", "observation records", "empathy maps"},
				Tools: []Tool{
					{
						ID:            "user-interviews",
						Name:          "User Interviews",
						Category:      "research",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "1-2 hours",
						Artifacts:     []string{"interview notes", "quotes"},
					},
					{
						ID:            "empathy-map",
						Name:          "Empathy Map",
						Category:      "research",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "1-2 hours",
						Artifacts:     []string{"empathy map canvas"},
					},
					{
						ID:            "field-study",
						Name:          "Field Study",
						Category:      "research",
						Difficulty:    DifficultyAdvanced,
						EstimatedTime: "1-2 weeks",
						Artifacts:     []string{"field notes", "contextual observations"},
					},
				},
			},
			{
				ID:                "define",
				Name:              "Define",
				Order:             2,
				InputRequirements: []string{"interview notes"},
				ExpectedOutputs:   []string{"problem statement", "point of view"},
				Tools: []Tool{
					{
						ID:            "affinity-mapping",
						Name:          "Affinity Mapping",
						Category:      "synthesis",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "2-4 hours",
						Artifacts:     []string{"affinity diagram", "insight clusters"},
					},
					{
						ID:            "problem-statement",
						Name:          "Problem Statement",
						Category:      "synthesis",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "1-2 hours",
						Artifacts:     []string{"problem statement"},
					},
					{
						ID:            "personas",
						Name:          "Personas",
						Category:      "synthesis",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "4-8 hours",
						Artifacts:     []string{"persona profiles"},
					},
				},
			},
			{
				ID:                "ideate",
				Name:              "Ideate",
				Order:             3,
				InputRequirements: []string{"problem statement"},
				ExpectedOutputs:   []string{"idea backlog", "selected concepts"},
				Tools: []Tool{
					{
						ID:            "brainstorming",
						Name:          "Brainstorming",
						Category:      "ideation",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "1-2 hours",
						Artifacts:     []string{"idea list"},
					},
					{
						ID:            "crazy-eights",
						Name:          "Crazy Eights",
						Category:      "ideation",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "1 hour",
						Artifacts:     []string{"sketch sheets"},
					},
					{
						ID:            "scamper",
						Name:          "SCAMPER",
						Category:      "ideation",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "2-3 hours",
						Artifacts:     []string{"variation matrix"},
					},
				},
			},
			{
				ID:                "prototype",
				Name:              "Prototype",
				Order:             4,
				InputRequirements: []string{"selected concepts", "problem statement"},
				ExpectedOutputs:   []string{"prototype", "design rationale"},
				Tools: []Tool{
					{
						ID:            "paper-prototyping",
						Name:          "Paper Prototyping",
						Category:      "prototyping",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "2-4 hours",
						Artifacts:     []string{"paper screens"},
					},
					{
						ID:            "wireframing",
						Name:          "Wireframing",
						Category:      "prototyping",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "4-8 hours",
						Artifacts:     []string{"wireframes"},
					},
					{
						ID:            "interactive-prototype",
						Name:          "Interactive Prototype",
						Category:      "prototyping",
						Difficulty:    DifficultyAdvanced,
						EstimatedTime: "1-2 weeks",
						Artifacts:     []string{"clickable prototype"},
					},
				},
			},
			{
				ID:                "test",
				Name:              "Test",
				Order:             5,
				InputRequirements: []string{"prototype", "test plan", "recruited participants"},
				ExpectedOutputs:   []string{"usability findings", "iteration backlog"},
				Tools: []Tool{
					{
						ID:            "usability-testing",
						Name:          "Usability Testing",
						Category:      "evaluation",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "4-8 hours",
						Artifacts:     []string{"test reports", "task success metrics"},
					},
					{
						ID:            "a-b-testing",
						Name:          "A/B Testing",
						Category:      "evaluation",
						Difficulty:    DifficultyAdvanced,
						EstimatedTime: "1-2 weeks",
						Artifacts:     []string{"experiment results"},
					},
					{
						ID:            "feedback-survey",
						Name:          "Feedback Survey",
						Category:      "evaluation",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "1-2 hours",
						Artifacts:     []string{"survey responses"},
					},
				},
			},
		},
	},
	{
		ID:          "double-diamond",
		Name:        "Double Diamond",
		Description: "Divergent and convergent exploration across problem and solution spaces.",
		Stages: []Stage{
			{
				ID:              "discover",
				Name:            "Discover",
				Order:           1,
				ExpectedOutputs: []string{"research findings", "opportunity areas"},
				Tools: []Tool{
					{
						ID:            "stakeholder-interviews",
						Name:          "Stakeholder Interviews",
						Category:      "research",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "2-4 hours",
						Artifacts:     []string{"interview notes"},
					},
					{
						ID:            "diary-study",
						Name:          "Diary Study",
						Category:      "research",
						Difficulty:    DifficultyAdvanced,
						EstimatedTime: "2-3 weeks",
						Artifacts:     []string{"diary entries", "behavior patterns"},
					},
				},
			},
			{
				ID:                "define",
				Name:              "Define",
				Order:             2,
				InputRequirements: []string{"research findings"},
				ExpectedOutputs:   []string{"design brief"},
				Tools: []Tool{
					{
						ID:            "how-might-we",
						Name:          "How Might We",
						Category:      "synthesis",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "1-2 hours",
						Artifacts:     []string{"reframed problem statements"},
					},
					{
						ID:            "journey-mapping",
						Name:          "Journey Mapping",
						Category:      "synthesis",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "4-8 hours",
						Artifacts:     []string{"journey map"},
					},
				},
			},
			{
				ID:                "develop",
				Name:              "Develop",
				Order:             3,
				InputRequirements: []string{"design brief"},
				ExpectedOutputs:   []string{"candidate solutions"},
				Tools: []Tool{
					{
						ID:            "co-design-workshop",
						Name:          "Co-design Workshop",
						Category:      "ideation",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "4-8 hours",
						Artifacts:     []string{"concept sketches"},
					},
					{
						ID:            "storyboarding",
						Name:          "Storyboarding",
						Category:      "ideation",
						Difficulty:    DifficultyBeginner,
						EstimatedTime: "2-4 hours",
						Artifacts:     []string{"storyboards"},
					},
				},
			},
			{
				ID:                "deliver",
				Name:              "Deliver",
				Order:             4,
				InputRequirements: []string{"candidate solutions", "evaluation criteria"},
				ExpectedOutputs:   []string{"validated solution", "launch plan"},
				Tools: []Tool{
					{
						ID:            "pilot-testing",
						Name:          "Pilot Testing",
						Category:      "evaluation",
						Difficulty:    DifficultyAdvanced,
						EstimatedTime: "1-2 weeks",
						Artifacts:     []string{"pilot results"},
					},
					{
						ID:            "design-handoff",
						Name:          "Design Handoff",
						Category:      "delivery",
						Difficulty:    DifficultyIntermediate,
						EstimatedTime: "4-8 hours",
						Artifacts:     []string{"specifications", "asset library"},
					},
				},
			},
		},
	},
	{
		ID:          "lean-ux",
		Name:        "Lean UX",
		Description: "Rapid hypothesis-driven experimentation with minimal deliverables.",
	},
	{
		ID:          "google-design-sprint",
		Name:        "Google Design Sprint",
		Description: "Five-day structured process for answering critical business questions.",
	},
	{
		ID:          "agile-ux",
		Name:        "Agile UX",
		Description: "Design practice integrated into iterative agile delivery.",
	},
	{
		ID:          "human-centered-design",
		Name:        "Human-Centered Design",
		Description: "Design grounded in the needs and contexts of real users.",
	},
	{
		ID:          "jobs-to-be-done",
		Name:        "Jobs to be Done",
		Description: "Framing products around the progress customers are trying to make.",
	},
	{
		ID:          "ux-lifecycle",
		Name:        "UX Lifecycle",
		Description: "Managing user experience across the full product lifecycle.",
	},
	{
		ID:          "ux-honeycomb",
		Name:        "UX Honeycomb",
		Description: "Evaluating experiences across seven facets of user experience.",
	},
	{
		ID:          "user-centered-design",
		Name:        "User-Centered Design",
		Description: "Placing users at the center of every design phase.",
	},
	{
		ID:          "heart-framework",
		Name:        "HEART Framework",
		Description: "Measuring happiness, engagement, adoption, retention, and task success.",
	},
	{
		ID:          "hooked-model",
		Name:        "Hooked Model",
		Description: "Designing habit-forming product experiences.",
	},
}
