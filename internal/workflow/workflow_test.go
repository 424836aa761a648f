package workflow_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/framepromptly/framepromptly/internal/workflow"
)

type mockInvoker struct {
	content string
	err     error
	prompts []string
}

func (m *mockInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.content, nil
}

func testRuntime(invoker workflow.Invoker) *workflow.Runtime {
	return &workflow.Runtime{
		Invoker: invoker,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestComposePrompt(t *testing.T) {
	req := workflow.EnhanceRequest{
		Prompt:         "Write interview questions",
		AITool:         "chatgpt",
		Tool:           "user-interviews",
		Framework:      "design-thinking",
		FrameworkStage: "empathize",
	}

	prompt, err := workflow.ComposePrompt(workflow.StageEnhance, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	instructions, _ := workflow.Instructions(workflow.StageEnhance)
	spec, _ := workflow.Spec(workflow.StageEnhance)

	if !strings.HasPrefix(prompt, instructions) {
		t.Error("expected prompt to begin with stage instructions")
	}
	if !strings.Contains(prompt, spec) {
		t.Error("expected prompt to contain response spec")
	}
	if !strings.Contains(prompt, `"Write interview questions"`) {
		t.Error("expected prompt to contain serialized payload")
	}
}

func TestComposePromptInvalidStage(t *testing.T) {
	if _, err := workflow.ComposePrompt("classify", nil); !errors.Is(err, workflow.ErrInvalidStage) {
		t.Errorf("expected ErrInvalidStage, got %v", err)
	}
}

func TestEnhance(t *testing.T) {
	invoker := &mockInvoker{
		content: `{"enhancedPrompt": "Write five open-ended interview questions for teen mobile banking users"}`,
	}

	result, err := workflow.Enhance(context.Background(), testRuntime(invoker), workflow.EnhanceRequest{
		Prompt:    "Write interview questions",
		Framework: "design-thinking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.EnhancedPrompt, "open-ended interview questions") {
		t.Errorf("unexpected enhanced prompt: %s", result.EnhancedPrompt)
	}
	if len(invoker.prompts) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(invoker.prompts))
	}
	if !strings.Contains(invoker.prompts[0], "Write interview questions") {
		t.Error("expected original prompt in invocation payload")
	}
}

func TestEnhanceParsesFencedResponse(t *testing.T) {
	invoker := &mockInvoker{
		content: "```json\n{\"enhancedPrompt\": \"Improved\"}\n```",
	}

	result, err := workflow.Enhance(context.Background(), testRuntime(invoker), workflow.EnhanceRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EnhancedPrompt != "Improved" {
		t.Errorf("expected Improved, got %s", result.EnhancedPrompt)
	}
}

func TestEnhanceInvokerFailure(t *testing.T) {
	invoker := &mockInvoker{err: fmt.Errorf("provider unavailable")}

	_, err := workflow.Enhance(context.Background(), testRuntime(invoker), workflow.EnhanceRequest{Prompt: "p"})
	if !errors.Is(err, workflow.ErrEnhanceFailed) {
		t.Errorf("expected ErrEnhanceFailed, got %v", err)
	}
}

func TestEnhanceUnparseableResponse(t *testing.T) {
	invoker := &mockInvoker{content: "not json at all"}

	_, err := workflow.Enhance(context.Background(), testRuntime(invoker), workflow.EnhanceRequest{Prompt: "p"})
	if !errors.Is(err, workflow.ErrEnhanceFailed) {
		t.Errorf("expected ErrEnhanceFailed, got %v", err)
	}
}

func TestRespond(t *testing.T) {
	invoker := &mockInvoker{
		content: `{"aiResponse": "Start with five moderated sessions.", "error": ""}`,
	}

	result, err := workflow.Respond(context.Background(), testRuntime(invoker), workflow.RespondRequest{
		Prompt:            "How should we test the prototype?",
		SelectedFramework: "design-thinking",
		FrameworkStage:    "test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AIResponse != "Start with five moderated sessions." {
		t.Errorf("unexpected response: %s", result.AIResponse)
	}
	if result.Error != "" {
		t.Errorf("expected no provider error, got %s", result.Error)
	}
}

func TestRespondProviderErrorIsData(t *testing.T) {
	invoker := &mockInvoker{
		content: `{"aiResponse": "", "error": "missing project context"}`,
	}

	result, err := workflow.Respond(context.Background(), testRuntime(invoker), workflow.RespondRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("provider-reported failure should not be a Go error: %v", err)
	}
	if result.Error != "missing project context" {
		t.Errorf("expected provider error surfaced as data, got %q", result.Error)
	}
}
