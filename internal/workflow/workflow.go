package workflow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/framepromptly/framepromptly/pkg/formatting"
)

// State bag keys shared across workflow nodes.
const (
	KeyStage   = "stage"
	KeyPayload = "payload"
	KeyPrompt  = "prompt"
	KeyContent = "content"
	KeyResult  = "result"
)

// Enhance runs the enhancement workflow: compose → invoke → parse.
// Returns the improved prompt produced by the provider.
func Enhance(ctx context.Context, rt *Runtime, req EnhanceRequest) (*EnhanceResult, error) {
	result, err := execute(ctx, rt, StageEnhance, req, parseAs[EnhanceResult])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnhanceFailed, err)
	}

	enhanced, ok := result.(EnhanceResult)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type %T", ErrEnhanceFailed, result)
	}

	rt.Logger.InfoContext(ctx, "prompt enhanced", "framework", req.Framework, "tool", req.Tool)
	return &enhanced, nil
}

// Respond runs the response workflow: compose → invoke → parse. A failure
// reported by the provider surfaces in the result's Error field; transport
// and parse failures return ErrRespondFailed.
func Respond(ctx context.Context, rt *Runtime, req RespondRequest) (*RespondResult, error) {
	result, err := execute(ctx, rt, StageRespond, req, parseAs[RespondResult])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRespondFailed, err)
	}

	response, ok := result.(RespondResult)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type %T", ErrRespondFailed, result)
	}

	rt.Logger.InfoContext(ctx, "response generated", "framework", req.SelectedFramework, "tool", req.SelectedTool)
	return &response, nil
}

type parseFunc func(content string) (any, error)

func parseAs[T any](content string) (any, error) {
	return formatting.Parse[T](content)
}

// execute builds and runs the three-node invocation graph for a stage and
// extracts the parsed result from the final state.
func execute(ctx context.Context, rt *Runtime, stage Stage, payload any, parse parseFunc) (any, error) {
	graph, err := buildGraph(rt, stage, parse)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initial := state.New(nil)
	initial = initial.Set(KeyStage, stage)
	initial = initial.Set(KeyPayload, payload)

	final, err := graph.Execute(ctx, initial)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	result, ok := final.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyResult)
	}
	return result, nil
}

func buildGraph(rt *Runtime, stage Stage, parse parseFunc) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig(fmt.Sprintf("framepromptly-%s", stage))
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("compose", composeNode()); err != nil {
		return nil, err
	}

	if err := graph.AddNode("invoke", invokeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("parse", parseNode(parse)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("compose", "invoke", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("invoke", "parse", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("compose"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("parse"); err != nil {
		return nil, err
	}

	return graph, nil
}

func composeNode() state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		stage, err := extractStage(s)
		if err != nil {
			return s, fmt.Errorf("compose: %w", err)
		}

		payload, ok := s.Get(KeyPayload)
		if !ok {
			return s, fmt.Errorf("compose: missing %s in state", KeyPayload)
		}

		prompt, err := ComposePrompt(stage, payload)
		if err != nil {
			return s, fmt.Errorf("compose: %w", err)
		}

		s = s.Set(KeyPrompt, prompt)
		return s, nil
	})
}

func invokeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		prompt, err := extractString(s, KeyPrompt)
		if err != nil {
			return s, fmt.Errorf("invoke: %w", err)
		}

		content, err := rt.invoker().Invoke(ctx, prompt)
		if err != nil {
			return s, fmt.Errorf("invoke: %w", err)
		}

		s = s.Set(KeyContent, content)
		return s, nil
	})
}

func parseNode(parse parseFunc) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		content, err := extractString(s, KeyContent)
		if err != nil {
			return s, fmt.Errorf("parse: %w", err)
		}

		result, err := parse(content)
		if err != nil {
			return s, fmt.Errorf("parse: %w", err)
		}

		s = s.Set(KeyResult, result)
		return s, nil
	})
}

func extractStage(s state.State) (Stage, error) {
	val, ok := s.Get(KeyStage)
	if !ok {
		return "", fmt.Errorf("missing %s in state", KeyStage)
	}

	stage, ok := val.(Stage)
	if !ok {
		return "", fmt.Errorf("%s is not Stage", KeyStage)
	}
	return stage, nil
}

func extractString(s state.State, key string) (string, error) {
	val, ok := s.Get(key)
	if !ok {
		return "", fmt.Errorf("missing %s in state", key)
	}

	text, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not string", key)
	}
	return text, nil
}
