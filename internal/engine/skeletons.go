package engine

const zeroShotSkeleton = `{systemPrompt}

Context: {context}

Task: {task}

{userInput}`

const fewShotSkeleton = `{systemPrompt}

Context: {context}

Examples:
{examples}

Task: {task}

{userInput}`

const chainOfThoughtSkeleton = `{systemPrompt}

Context: {context}

Task: {task}

Let's work through this step by step:
1. First, analyze the requirements
2. Then, consider the available options
3. Finally, provide a well-reasoned solution

{userInput}`

const instructionTuningSkeleton = `{systemPrompt}

Instructions:
{instructions}

Context: {context}

Task: {task}

{userInput}`

const rolePlayingSkeleton = `You are {role} with expertise in {expertise}. Your communication style is {style}.

{systemPrompt}

Context: {context}

Task: {task}

{userInput}`

const stepByStepSkeleton = `{systemPrompt}

Context: {context}

Task: {task}

Follow these steps:
Step 1 - Analysis: Examine the requirements and constraints
Step 2 - Planning: Outline your approach before acting
Step 3 - Execution: Carry out the plan in order
Step 4 - Validation: Review the result against the requirements

{userInput}`

var skeletons = map[Method]string{
	MethodZeroShot:          zeroShotSkeleton,
	MethodFewShot:           fewShotSkeleton,
	MethodChainOfThought:    chainOfThoughtSkeleton,
	MethodInstructionTuning: instructionTuningSkeleton,
	MethodRolePlaying:       rolePlayingSkeleton,
	MethodStepByStep:        stepByStepSkeleton,
}

// Skeleton returns the template skeleton for a prompting method.
// Returns ErrUnknownMethod if the method is not recognized.
func Skeleton(method Method) (string, error) {
	text, ok := skeletons[method]
	if !ok {
		return "", ErrUnknownMethod
	}
	return text, nil
}

// frameworkSystemPrompts maps recognized UX framework ids to expert persona
// sentences. When a build request names one of these frameworks, the persona
// replaces the template body as the system prompt.
var frameworkSystemPrompts = map[string]string{
	"design-thinking":      "You are a Design Thinking expert focused on human-centered innovation.",
	"double-diamond":       "You are a Double Diamond practitioner guiding divergent and convergent design work.",
	"lean-ux":              "You are a Lean UX expert focused on rapid hypothesis-driven experimentation.",
	"google-design-sprint": "You are a Design Sprint facilitator focused on answering critical questions in five days.",
	"human-centered-design": "You are a Human-Centered Design expert grounding every decision in real user needs.",
	"jobs-to-be-done":      "You are a Jobs-to-be-Done strategist focused on the progress customers are trying to make.",
	"agile-ux":             "You are an Agile UX practitioner integrating design work into iterative delivery.",
	"ux-lifecycle":         "You are a UX Lifecycle expert managing user experience across the full product lifecycle.",
	"ux-honeycomb":         "You are a UX Honeycomb expert evaluating experiences across the seven facets of user experience.",
	"user-centered-design": "You are a User-Centered Design expert placing users at the center of every design phase.",
	"heart-framework":      "You are a HEART framework analyst measuring happiness, engagement, adoption, retention, and task success.",
	"hooked-model":         "You are a Hooked Model expert designing habit-forming product experiences.",
}

// FrameworkSystemPrompt returns the expert persona for a framework id and
// whether the id is recognized.
func FrameworkSystemPrompt(frameworkType string) (string, bool) {
	text, ok := frameworkSystemPrompts[frameworkType]
	return text, ok
}
