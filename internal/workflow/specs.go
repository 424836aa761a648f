package workflow

const enhanceSpec = `Respond with a JSON object matching this exact structure:

{
  "enhancedPrompt": "<the improved prompt>"
}

Field constraints:
- enhancedPrompt: The full improved prompt text, ready to send to an AI
  assistant verbatim. Preserve the original intent and any concrete
  details the user supplied.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Return exactly one prompt; do not offer alternatives
- Do not answer the prompt itself`

const respondSpec = `Respond with a JSON object matching this exact structure:

{
  "aiResponse": "<your answer to the prompt>",
  "error": ""
}

Field constraints:
- aiResponse: Your complete answer to the prompt, formatted for direct
  display to the user.
- error: Empty string on success. When you cannot produce a useful answer
  (missing context, contradictory request), a short explanation of why.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Populate exactly one of aiResponse or error with meaningful content`

var specs = map[Stage]string{
	StageEnhance: enhanceSpec,
	StageRespond: respondSpec,
}

// Spec returns the response specification for a workflow stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
