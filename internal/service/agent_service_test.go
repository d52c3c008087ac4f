package service

import (
	"context"
	"testing"

	"doc-agent-be/internal/constant"
	"doc-agent-be/internal/session"
	"doc-agent-be/pkg/letta"
)

func TestBootstrapAdoptsExistingAgent(t *testing.T) {
	api := &fakeAPI{agents: []letta.Agent{
		{ID: "agent-other", Name: "someone-else"},
		{ID: "agent-ours", Name: constant.DefaultAgentName},
	}}
	sess := session.NewContext()
	svc := NewAgentService(api, sess, constant.DefaultAgentName, nopLogger{})

	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	agent := svc.Active()
	if agent == nil || agent.ID != "agent-ours" {
		t.Errorf("agent = %+v, want adoption of agent-ours", agent)
	}
	if len(api.createdAgents) != 0 {
		t.Errorf("created = %d, want no new agent", len(api.createdAgents))
	}
}

func TestBootstrapCreatesAgentWhenMissing(t *testing.T) {
	api := &fakeAPI{}
	sess := session.NewContext()
	svc := NewAgentService(api, sess, constant.DefaultAgentName, nopLogger{})

	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if len(api.createdAgents) != 1 {
		t.Fatalf("created = %d, want 1", len(api.createdAgents))
	}
	req := api.createdAgents[0]
	if req.Name != constant.DefaultAgentName {
		t.Errorf("name = %q", req.Name)
	}
	if req.LLMConfig.Model != constant.DefaultLLMModel {
		t.Errorf("model = %q", req.LLMConfig.Model)
	}
	if req.EmbeddingConfig.EmbeddingModel != constant.DefaultEmbeddingModel {
		t.Errorf("embedding = %q", req.EmbeddingConfig.EmbeddingModel)
	}
	if len(req.Tools) == 0 {
		t.Error("tools must be configured")
	}
	if svc.Active() == nil {
		t.Error("active agent must be set after creation")
	}
}

func TestActiveNilBeforeBootstrap(t *testing.T) {
	svc := NewAgentService(&fakeAPI{}, session.NewContext(), constant.DefaultAgentName, nopLogger{})
	if svc.Active() != nil {
		t.Error("no agent expected before bootstrap")
	}
}
