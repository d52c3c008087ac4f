package service

import (
	"context"

	"doc-agent-be/internal/constant"
	"doc-agent-be/internal/pkg/logger"
	"doc-agent-be/internal/session"
	"doc-agent-be/pkg/letta"
	"doc-agent-be/pkg/store"
)

// IAgentService owns the active-agent bootstrap: adopt the configured agent
// if the backend already has it, create it with the fixed default
// configuration otherwise.
type IAgentService interface {
	Bootstrap(ctx context.Context) error
	Active() *store.Agent
}

type agentService struct {
	api       letta.API
	session   *session.Context
	agentName string
	logger    logger.ILogger
}

func NewAgentService(api letta.API, sess *session.Context, agentName string, log logger.ILogger) IAgentService {
	return &agentService{
		api:       api,
		session:   sess,
		agentName: agentName,
		logger:    log,
	}
}

// Bootstrap selects or creates the session agent and stores it in the
// session context. Must complete before the reconciler's first pass; the
// agent reference is not reassigned afterwards.
func (as *agentService) Bootstrap(ctx context.Context) error {
	agents, err := as.api.ListAgents(ctx)
	if err != nil {
		return err
	}

	for _, a := range agents {
		if a.Name == as.agentName {
			as.session.SetAgent(&store.Agent{ID: a.ID, Name: a.Name, Description: a.Description})
			as.logger.Info("Agent", "Adopted existing agent", map[string]interface{}{"agent_id": a.ID})
			return nil
		}
	}

	created, err := as.api.CreateAgent(ctx, letta.CreateAgentRequest{
		Name:        as.agentName,
		Description: constant.DefaultAgentDescription,
		AgentType:   constant.DefaultAgentType,
		LLMConfig: letta.LLMConfig{
			Model:             constant.DefaultLLMModel,
			ModelEndpointType: constant.DefaultLLMEndpointType,
			ContextWindow:     constant.DefaultLLMContextWindow,
		},
		EmbeddingConfig: defaultEmbeddingConfig(),
		Tools:           constant.DefaultAgentTools,
		System:          constant.DefaultAgentSystemPrompt,
	})
	if err != nil {
		return err
	}

	as.session.SetAgent(&store.Agent{ID: created.ID, Name: created.Name, Description: created.Description})
	as.logger.Info("Agent", "Created new agent", map[string]interface{}{"agent_id": created.ID})
	return nil
}

func (as *agentService) Active() *store.Agent {
	return as.session.Agent()
}

// defaultEmbeddingConfig is shared by agent creation and document creation:
// sources must be embedded with the same configuration the agent retrieves with.
func defaultEmbeddingConfig() letta.EmbeddingConfig {
	return letta.EmbeddingConfig{
		EmbeddingModel:        constant.DefaultEmbeddingModel,
		EmbeddingEndpointType: constant.DefaultEmbeddingEndpointType,
		EmbeddingDim:          constant.DefaultEmbeddingDim,
		EmbeddingChunkSize:    constant.DefaultEmbeddingChunkSize,
	}
}
