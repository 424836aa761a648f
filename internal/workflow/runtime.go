package workflow

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Invoker sends a composed prompt to a completion provider and returns the
// raw response content.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Runtime bundles the dependencies that workflow nodes require. When Invoker
// is nil, a chat agent built from the Agent config is used.
type Runtime struct {
	Agent   gaconfig.AgentConfig
	Invoker Invoker
	Logger  *slog.Logger
}

func (rt *Runtime) invoker() Invoker {
	if rt.Invoker != nil {
		return rt.Invoker
	}
	return &agentInvoker{cfg: &rt.Agent}
}

type agentInvoker struct {
	cfg *gaconfig.AgentConfig
}

func (a *agentInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	ag, err := agent.New(a.cfg)
	if err != nil {
		return "", err
	}

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
