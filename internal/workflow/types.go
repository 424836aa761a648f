package workflow

// EnhanceRequest is the payload of the prompt enhancement function.
type EnhanceRequest struct {
	Prompt         string `json:"prompt"`
	AITool         string `json:"aiTool"`
	Tool           string `json:"tool"`
	Framework      string `json:"framework"`
	FrameworkStage string `json:"frameworkStage"`
}

// EnhanceResult carries the enhanced prompt returned by the provider.
type EnhanceResult struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}

// RespondRequest is the payload of the response generation function.
type RespondRequest struct {
	Prompt            string `json:"prompt"`
	ProjectContext    string `json:"projectContext"`
	SelectedFramework string `json:"selectedFramework"`
	FrameworkStage    string `json:"frameworkStage"`
	SelectedTool      string `json:"selectedTool"`
	AIModel           string `json:"aiModel"`
	AITool            string `json:"aiTool"`
}

// RespondResult carries the provider response. A provider-reported failure
// surfaces in Error rather than as a Go error.
type RespondResult struct {
	AIResponse string `json:"aiResponse"`
	Error      string `json:"error,omitempty"`
}
